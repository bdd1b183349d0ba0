package cmd

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/config"
	"github.com/masmgr/aicommit-go/internal/annotate"
	"github.com/masmgr/aicommit-go/internal/git"
	"github.com/masmgr/aicommit-go/internal/output"
)

// CommandContext holds common state for command execution.
// It encapsulates the shared setup logic across all commands.
type CommandContext struct {
	Config   *config.Config
	RepoPath string
	Reports  *git.StagedReports
}

// NewCommandContext creates a context from CLI flags.
// It performs configuration loading and reads the staged-change reports.
func NewCommandContext(c *cli.Context) (*CommandContext, error) {
	cfg, err := loadConfig(c)
	if err != nil {
		return nil, err
	}

	repoPath := repoRoot(c.String("repo"))
	source := reportSourceFor(c, repoPath)

	reports, err := source.ReadReports(c.Context)
	if err != nil {
		return nil, fmt.Errorf("failed to read staged changes: %w", err)
	}

	return &CommandContext{
		Config:   cfg,
		RepoPath: repoPath,
		Reports:  reports,
	}, nil
}

// reportSourceFor picks the source of the staged-change reports.
var reportSourceFor = newReportSource

// repoRoot returns the top-level worktree directory containing path. Captured
// reports may come from outside any repository, so path is kept as given when
// no repository is found.
func repoRoot(path string) string {
	repo, err := git.OpenRepository(path)
	if err != nil {
		return path
	}
	return repo.Root()
}

// newReportSource reads captured reports from files when any file flag is
// given and runs git otherwise.
func newReportSource(c *cli.Context, repoPath string) git.ReportSource {
	statusFile := c.String("status-file")
	numstatFile := c.String("numstat-file")
	diffFile := c.String("diff-file")

	if statusFile != "" || numstatFile != "" || diffFile != "" {
		return &git.FileSource{
			StatusPath:  statusFile,
			NumstatPath: numstatFile,
			DiffPath:    diffFile,
		}
	}

	return git.NewCollector(git.CollectOptions{
		RepoPath: repoPath,
		Logf:     verboseLogf(c),
	})
}

// FilteredDiff returns the staged diff without the sections of excluded files.
func (ctx *CommandContext) FilteredDiff() string {
	return annotate.ExcludeFiles(ctx.Reports.Diff, ctx.Config.Filters.Exclude)
}

// HasChanges returns true if anything is staged.
func (ctx *CommandContext) HasChanges() bool {
	return ctx.Reports.HasStagedChanges()
}

// PrintNoChangesMessage prints a message when nothing is staged.
func (ctx *CommandContext) PrintNoChangesMessage() {
	fmt.Fprintln(os.Stderr, "No staged changes found.")
}

// OutputOptions creates OutputOptions from CLI flags and configuration.
func (ctx *CommandContext) OutputOptions(c *cli.Context) output.OutputOptions {
	return output.OutputOptions{
		Format:     getOutputFormat(ctx.Config.Output.Format),
		OutputPath: c.String("output"),
	}
}

// executeWithContext sets up the command context and runs fn when something
// is staged.
func executeWithContext(c *cli.Context, fn func(ctx *CommandContext, c *cli.Context) error) error {
	ctx, err := NewCommandContext(c)
	if err != nil {
		return err
	}
	if !ctx.HasChanges() {
		ctx.PrintNoChangesMessage()
		return nil
	}
	return fn(ctx, c)
}
