package cmd

import (
	"fmt"
	"strconv"

	"github.com/Worcrow/wyag/repo"
	"github.com/Worcrow/wyag/version"
	"github.com/fatih/color"
	log "github.com/sirupsen/logrus"
	"github.com/urfave/cli"
)

func handleInit(ctx *cli.Context) error {
	dir, err := expandDir(ctx)
	if err != nil {
		return err
	}

	rp, err := repo.Init(dir)
	if err != nil {
		return err
	}

	fmt.Printf("Initialized empty repository in %s\n", rp.MetaDir)
	return nil
}

func handleInfo(ctx *cli.Context) error {
	dir, err := expandDir(ctx)
	if err != nil {
		return err
	}

	rp, err := openEnclosingRepo(dir)
	if err != nil {
		return err
	}

	row := func(name, value string) {
		fmt.Printf("%10s: %s\n", name, value)
	}

	row("Work tree", color.CyanString(rp.WorkTree))
	row("Metadata", rp.MetaDir)
	row("Version", strconv.Itoa(rp.Config.Core.RepositoryFormatVersion))
	row("Bare", yesify(rp.Config.Core.Bare))
	row("File mode", yesify(rp.Config.Core.FileMode))
	return nil
}

func handleConfigList(ctx *cli.Context) error {
	rp, err := openEnclosingRepo(ctx.String("dir"))
	if err != nil {
		return err
	}

	for _, key := range rp.Config.Keys() {
		val, _ := rp.Config.Get(key)
		fmt.Printf("%s = %s\n", color.YellowString(key), val)
	}

	return nil
}

func handleConfigGet(ctx *cli.Context) error {
	rp, err := openEnclosingRepo(ctx.String("dir"))
	if err != nil {
		return err
	}

	key := ctx.Args().Get(0)
	val, ok := rp.Config.Get(key)
	if !ok {
		return ExitCode{BadArgs, fmt.Sprintf("config get: no such key: %s", key)}
	}

	fmt.Println(val)
	return nil
}

func handleConfigSet(ctx *cli.Context) error {
	rp, err := openEnclosingRepo(ctx.String("dir"))
	if err != nil {
		return err
	}

	key, val := ctx.Args().Get(0), ctx.Args().Get(1)
	if err := rp.Config.Set(key, val); err != nil {
		return ExitCode{BadArgs, fmt.Sprintf("config set: %v", err)}
	}

	if err := rp.SaveConfig(); err != nil {
		return ExitCode{UnknownError, fmt.Sprintf("config set: %v", err)}
	}

	log.Debugf("Set %s to %q in %s", key, val, rp.MetaDir)
	return nil
}

// handleConfigFallback runs for `config` without a known subcommand.
func handleConfigFallback(ctx *cli.Context) error {
	if ctx.NArg() == 0 {
		if err := cli.ShowSubcommandHelp(ctx); err != nil {
			log.Warningf("Failed to display --help: %v", err)
		}

		return ExitCode{BadArgs, ""}
	}

	commandNotFound(ctx, ctx.Args().First())
	return ExitCode{BadArgs, ""}
}

func handleVersion(ctx *cli.Context) error {
	row := func(name, value string) {
		fmt.Printf("%10s: %s\n", name, value)
	}

	row("Version", version.String())
	row("Rev", version.GitRev)
	row("Build time", version.BuildTime)
	return nil
}

func handleNotImplemented(ctx *cli.Context) error {
	return ExitCode{
		NotImplemented,
		fmt.Sprintf("`%s` is not implemented yet", ctx.Command.Name),
	}
}
