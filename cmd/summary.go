package cmd

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/internal/annotate"
	"github.com/masmgr/aicommit-go/internal/output"
	"github.com/masmgr/aicommit-go/internal/staged"
)

// SummaryCmd returns the summary command.
func SummaryCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.StringFlag{
			Name:    "format",
			Aliases: []string{"f"},
			Usage:   "Output format (console, json, csv, markdown, ci)",
			Value:   "console",
		},
	)

	return &cli.Command{
		Name:    "summary",
		Aliases: []string{"s"},
		Usage:   "Classify staged binary and structure changes",
		Flags:   flags,
		Action:  summaryAction,
	}
}

func summaryAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		summary, err := staged.Classify(ctx.Reports.Status, ctx.Reports.Numstat)
		if err != nil {
			return fmt.Errorf("failed to classify staged changes: %w", err)
		}

		report := &output.SummaryReport{
			RepoPath:    ctx.RepoPath,
			GeneratedAt: time.Now(),
			Summary:     summary,
			Stats:       annotate.Stats(ctx.FilteredDiff()),
		}

		return writeSummaryReport(ctx, c, report)
	})
}
