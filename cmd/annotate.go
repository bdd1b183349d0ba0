package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/internal/annotate"
	"github.com/masmgr/aicommit-go/internal/output"
)

// AnnotateCmd returns the annotate command.
func AnnotateCmd() *cli.Command {
	return &cli.Command{
		Name:    "annotate",
		Aliases: []string{"a"},
		Usage:   "Print the staged diff with added and removed lines marked",
		Flags:   commonFlags(),
		Action:  annotateAction,
	}
}

func annotateAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		return output.WriteText(annotate.Annotate(ctx.FilteredDiff()), c.String("output"))
	})
}
