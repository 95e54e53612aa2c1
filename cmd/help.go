package cmd

import (
	"fmt"
	"strings"

	"github.com/urfave/cli"
)

// Help holds the documentation of a single command.
type Help struct {
	Usage       string
	ArgsUsage   string
	Description string
	Flags       []cli.Flag

	// Misspellings are names people type when they mean this command.
	Misspellings []string
}

func die(msg string) {
	// be really pedantic when help is missing.
	panic(msg)
}

var dirFlag = cli.StringFlag{
	Name:  "dir,C",
	Value: ".",
	Usage: "Look for the repository starting at this directory",
}

// HelpTexts maps the dotted path of a command to its documentation.
var HelpTexts = map[string]Help{
	"init": {
		Usage:        "Create an empty repository",
		ArgsUsage:    "[DIRECTORY]",
		Misspellings: []string{"create", "new", "setup"},
		Description: `Create the metadata directory (.git) inside DIRECTORY, which defaults
   to the current working directory. DIRECTORY is created if it does not exist.

   The command refuses to run when the metadata directory exists and is not empty.

EXAMPLES:

   $ wyag init ~/code/project
   $ wyag init`,
	},
	"info": {
		Usage:        "Show the layout of the enclosing repository",
		ArgsUsage:    "[DIRECTORY]",
		Misspellings: []string{"show", "inspect"},
		Description: `Search DIRECTORY and its parents for a repository, open it and print
   the work tree, the metadata directory and the [core] settings.

   This is a quick way to check whether a repository is usable.`,
	},
	"config": {
		Usage:        "Inspect and change the repository config",
		Description:  "Read and write keys of the config file in the metadata directory.",
		Misspellings: []string{"conf", "settings"},
	},
	"config.list": {
		Usage:        "Print every key of the config",
		Flags:        []cli.Flag{dirFlag},
		Misspellings: []string{"ls", "all", "show"},
		Description: `Print all keys in "section.key = value" form, sorted by key.
   Subsections like [remote "origin"] show up as remote.origin.<key>.`,
	},
	"config.get": {
		Usage:     "Print the value of a single key",
		ArgsUsage: "SECTION.KEY",
		Flags:     []cli.Flag{dirFlag},
	},
	"config.set": {
		Usage:     "Set the value of a single key",
		ArgsUsage: "SECTION.KEY VALUE",
		Flags:     []cli.Flag{dirFlag},
		Description: `Store VALUE under SECTION.KEY and save the config.

   Values for core.repositoryformatversion, core.filemode and core.bare are
   checked before they are stored. Every other key is stored as is.`,
	},
	"version": {
		Usage:        "Show the version of wyag",
		Misspellings: []string{"ver", "about"},
	},
}

// notImplemented lists git commands that are reserved but do nothing yet.
var notImplemented = []string{
	"add",
	"cat-file",
	"check-ignore",
	"checkout",
	"commit",
	"hash-object",
	"log",
	"ls-files",
	"ls-tree",
	"rev-parse",
	"rm",
	"show-ref",
	"status",
	"tag",
}

func init() {
	for _, name := range notImplemented {
		HelpTexts[name] = Help{
			Usage: fmt.Sprintf("Reserved for `git %s`; not implemented yet", name),
		}
	}
}

func injectHelp(cmd *cli.Command, path string) {
	help, ok := HelpTexts[path]
	if !ok {
		die(fmt.Sprintf("bug: no such help entry: %v", path))
	}

	cmd.Usage = help.Usage
	cmd.ArgsUsage = help.ArgsUsage
	cmd.Description = help.Description
	cmd.Flags = help.Flags
}

func translateHelp(cmds []cli.Command, prefix []string) {
	for idx := range cmds {
		path := append(append([]string{}, prefix...), cmds[idx].Name)
		injectHelp(&cmds[idx], strings.Join(path, "."))
		translateHelp(cmds[idx].Subcommands, path)
	}
}

// TranslateHelp fills in the usage and description for each command.
// This is separated from the command definition to make things more readable,
// and separate logic from the (lengthy) documentation.
func TranslateHelp(cmds []cli.Command) []cli.Command {
	translateHelp(cmds, nil)
	return cmds
}
