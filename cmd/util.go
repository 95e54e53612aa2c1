package cmd

import (
	"fmt"
	"os"

	"github.com/Worcrow/wyag/repo"
	"github.com/fatih/color"
	homedir "github.com/mitchellh/go-homedir"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/afero"
	"github.com/urfave/cli"
)

// ExitCode is an error that maps the error interface to a specific error
// message and a unix exit code
type ExitCode struct {
	Code    int
	Message string
}

func (err ExitCode) Error() string {
	return err.Message
}

// kindExitCodes maps repository errors to the code the process exits with.
var kindExitCodes = map[repo.Kind]int{
	repo.NotADirectory:      NotARepository,
	repo.NotAGitRepository:  NotARepository,
	repo.ConfigMissing:      BadConfig,
	repo.ConfigUnreadable:   BadConfig,
	repo.UnsupportedVersion: BadConfig,
	repo.RepositoryNotEmpty: BadArgs,
}

// toExitCode converts any error returned by a handler into an ExitCode.
func toExitCode(err error) ExitCode {
	if exitErr, ok := err.(ExitCode); ok {
		return exitErr
	}

	code, ok := kindExitCodes[repo.KindOf(err)]
	if !ok {
		code = UnknownError
	}

	return ExitCode{Code: code, Message: err.Error()}
}

func yesify(val bool) string {
	if val {
		return color.GreenString("yes")
	}

	return color.RedString("no")
}

// expandDir returns the first argument (or "." if there is none)
// with a leading ~ replaced by the home directory.
func expandDir(ctx *cli.Context) (string, error) {
	dir := ctx.Args().First()
	if dir == "" {
		dir = "."
	}

	expanded, err := homedir.Expand(dir)
	if err != nil {
		return "", ExitCode{BadArgs, fmt.Sprintf("failed to expand %s: %v", dir, err)}
	}

	return expanded, nil
}

// openEnclosingRepo opens the repository that contains `dir`.
// If there is none, opening `dir` itself produces a proper error.
func openEnclosingRepo(dir string) (*repo.Repository, error) {
	worktree := repo.FindRepo(afero.NewOsFs(), dir)
	if worktree == "" {
		worktree = dir
	} else {
		log.Debugf("Found repository at %s", worktree)
	}

	return repo.Open(worktree)
}

type checkFunc func(ctx *cli.Context) int

func withArgCheck(checker checkFunc, handler cli.ActionFunc) cli.ActionFunc {
	return func(ctx *cli.Context) error {
		if code := checker(ctx); code != Success {
			return ExitCode{code, fmt.Sprintf("bad arguments for `%s`", ctx.Command.Name)}
		}

		return handler(ctx)
	}
}

func needAtLeast(min int) checkFunc {
	return func(ctx *cli.Context) int {
		if ctx.NArg() < min {
			if min == 1 {
				log.Warningf("Need at least %d argument.", min)
			} else {
				log.Warningf("Need at least %d arguments.", min)
			}

			if err := cli.ShowCommandHelp(ctx, ctx.Command.Name); err != nil {
				log.Warningf("Failed to display --help: %v", err)
			}

			return BadArgs
		}

		return Success
	}
}

func needAtMost(max int) checkFunc {
	return func(ctx *cli.Context) int {
		if ctx.NArg() > max {
			log.Warningf("Too many arguments; need at most %d.", max)
			return BadArgs
		}

		return Success
	}
}

func printError(msg string) {
	if msg == "" {
		return
	}

	fmt.Fprintf(os.Stderr, "%s %s\n", color.RedString("error:"), msg)
}

func needExactly(n int) checkFunc {
	atLeast, atMost := needAtLeast(n), needAtMost(n)
	return func(ctx *cli.Context) int {
		if code := atLeast(ctx); code != Success {
			return code
		}

		return atMost(ctx)
	}
}
