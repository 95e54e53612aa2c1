package cmd

import (
	"fmt"
	"strings"

	"github.com/Worcrow/wyag/version"
	"github.com/urfave/cli"
)

func formatGroup(category string) string {
	return strings.ToUpper(category) + " COMMANDS"
}

// RunCmdline starts a wyag commandline tool and returns its exit code.
func RunCmdline(args []string) int {
	app := cli.NewApp()
	app.Name = "wyag"
	app.Usage = "Manage the on-disk layout of git repositories"
	app.EnableBashCompletion = true
	app.Version = fmt.Sprintf("%s [buildtime: %s]", version.String(), version.BuildTime)
	app.CommandNotFound = commandNotFound

	// Groups:
	repoGroup := formatGroup("repository")
	miscGroup := formatGroup("misc")
	todoGroup := formatGroup("not yet implemented")

	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:   "log-level,L",
			Value:  "warning",
			Usage:  "Only log messages of this severity or above",
			EnvVar: "WYAG_LOG_LEVEL",
		},
		cli.StringFlag{
			Name:   "log-path,l",
			Value:  "stderr",
			Usage:  "Where to output the log. May be 'stderr' (default), 'stdout' or a file",
			EnvVar: "WYAG_LOG_PATH",
		},
	}

	app.Before = func(ctx *cli.Context) error {
		if err := setLogLevel(ctx.GlobalString("log-level")); err != nil {
			return ExitCode{BadArgs, fmt.Sprintf("bad log level: %v", err)}
		}

		if err := setLogPath(ctx.GlobalString("log-path")); err != nil {
			return ExitCode{BadArgs, err.Error()}
		}

		return nil
	}

	// Runs when no known command was given:
	app.Action = func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return cli.ShowAppHelp(ctx)
		}

		commandNotFound(ctx, ctx.Args().First())
		return ExitCode{BadArgs, ""}
	}

	commands := []cli.Command{
		{
			Name:     "init",
			Category: repoGroup,
			Action:   withArgCheck(needAtMost(1), handleInit),
		}, {
			Name:     "info",
			Category: repoGroup,
			Action:   withArgCheck(needAtMost(1), handleInfo),
		}, {
			Name:     "config",
			Aliases:  []string{"cfg"},
			Category: repoGroup,
			Action:   handleConfigFallback,
			Subcommands: []cli.Command{
				{
					Name:   "list",
					Action: withArgCheck(needAtMost(0), handleConfigList),
				}, {
					Name:   "get",
					Action: withArgCheck(needExactly(1), handleConfigGet),
				}, {
					Name:   "set",
					Action: withArgCheck(needExactly(2), handleConfigSet),
				},
			},
		}, {
			Name:     "version",
			Category: miscGroup,
			Action:   handleVersion,
		},
	}

	for _, name := range notImplemented {
		commands = append(commands, cli.Command{
			Name:            name,
			Category:        todoGroup,
			SkipFlagParsing: true,
			Action:          handleNotImplemented,
		})
	}

	app.Commands = TranslateHelp(commands)

	if err := app.Run(args); err != nil {
		exitErr := toExitCode(err)
		printError(exitErr.Message)
		return exitErr.Code
	}

	return Success
}
