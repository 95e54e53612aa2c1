package cmd

import (
	"fmt"
	"sort"
	"strings"

	"github.com/fatih/color"
	"github.com/urfave/cli"
	"github.com/xrash/smetrics"
)

// minSimilarity is the lowest ratio that still looks like a typo.
const minSimilarity = 0.6

type suggestion struct {
	name  string
	score float64
}

// similarity is 1.0 for equal strings and drops towards 0.0 with every edit.
// Substitutions cost as much as a deletion plus an insertion.
func similarity(typed, candidate string) float64 {
	lensum := float64(len(typed) + len(candidate))
	if lensum == 0 {
		return 1.0
	}

	dist := float64(smetrics.WagnerFischer(typed, candidate, 1, 1, 2))
	return (lensum - dist) / lensum
}

// resolvedPath follows the arguments of the root context down the command
// tree. It returns the names that resolved to a command with subcommands
// and the commands one level below the last of them.
// The last argument is never resolved since it is the one that was not found.
func resolvedPath(ctx *cli.Context) ([]string, []cli.Command) {
	root := ctx
	for root.Parent() != nil {
		root = root.Parent()
	}

	path := []string{}
	cmds := root.App.Commands
	args := root.Args()

	for ; len(args) > 1; args = args[1:] {
		next := findCommand(cmds, args[0])
		if next == nil || len(next.Subcommands) == 0 {
			break
		}

		path = append(path, next.Name)
		cmds = next.Subcommands
	}

	return path, cmds
}

func findCommand(cmds []cli.Command, name string) *cli.Command {
	for idx := range cmds {
		if cmds[idx].HasName(name) {
			return &cmds[idx]
		}
	}

	return nil
}

// rankCommands scores `typed` against every command in `cmds`, best first.
// Names listed as misspellings in the help of a command always match.
// `prefix` is the path of the parent command, used to find the help entry.
func rankCommands(typed string, cmds []cli.Command, prefix []string) []suggestion {
	ranked := []suggestion{}

	for _, cmd := range cmds {
		best := 0.0
		for _, name := range append([]string{cmd.Name}, cmd.Aliases...) {
			if score := similarity(typed, name); score > best {
				best = score
			}
		}

		helpPath := strings.Join(append(append([]string{}, prefix...), cmd.Name), ".")
		for _, misspelling := range HelpTexts[helpPath].Misspellings {
			if strings.EqualFold(typed, misspelling) {
				best = 1.0
			}
		}

		if best >= minSimilarity {
			ranked = append(ranked, suggestion{name: cmd.Name, score: best})
		}
	}

	sort.SliceStable(ranked, func(i, j int) bool {
		return ranked[i].score > ranked[j].score
	})

	return ranked
}

func commandNotFound(ctx *cli.Context, typed string) {
	path, cmds := resolvedPath(ctx)
	out := ctx.App.Writer

	badCmd := color.RedString(typed)
	if len(path) == 0 {
		fmt.Fprintf(out, "`%s` is not a wyag command. ", badCmd)
	} else {
		parent := color.YellowString(strings.Join(path, " "))
		fmt.Fprintf(out, "`%s` is not a subcommand of `%s`. ", badCmd, parent)
	}

	ranked := rankCommands(typed, cmds, path)
	switch len(ranked) {
	case 0:
		fmt.Fprintf(out, "See `wyag help` for a list.\n")
	case 1:
		fmt.Fprintf(out, "Did you mean `%s`?\n", color.GreenString(ranked[0].name))
	default:
		fmt.Fprintln(out, "Did you mean one of these?")
		for _, sug := range ranked {
			fmt.Fprintf(out, "  * %s\n", color.GreenString(sug.name))
		}
	}
}
