package cmd

import (
	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/internal/output"
)

func writeSummaryReport(ctx *CommandContext, c *cli.Context, report *output.SummaryReport) error {
	opts := ctx.OutputOptions(c)
	writer := output.NewSummaryReportWriter(opts.Format)
	return writer.Write(report, opts)
}
