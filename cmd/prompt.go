package cmd

import (
	"errors"
	"fmt"

	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/config"
	"github.com/masmgr/aicommit-go/internal/git"
	"github.com/masmgr/aicommit-go/internal/output"
	"github.com/masmgr/aicommit-go/internal/prompt"
	"github.com/masmgr/aicommit-go/internal/staged"
)

var errNothingToAmend = errors.New("no previous commit to amend")

// PromptCmd returns the prompt command.
func PromptCmd() *cli.Command {
	flags := append(commonFlags(),
		&cli.IntFlag{
			Name:    "variations",
			Aliases: []string{"n"},
			Usage:   "Number of alternative messages to request (default from config)",
		},
		&cli.BoolFlag{
			Name:  "amend",
			Usage: "Include the previous commit message so it can be improved",
		},
	)

	return &cli.Command{
		Name:    "prompt",
		Aliases: []string{"p"},
		Usage:   "Assemble the commit message prompt for the staged changes",
		Flags:   flags,
		Action:  promptAction,
	}
}

func promptAction(c *cli.Context) error {
	return executeWithContext(c, func(ctx *CommandContext, c *cli.Context) error {
		summary, err := staged.Classify(ctx.Reports.Status, ctx.Reports.Numstat)
		if err != nil {
			return fmt.Errorf("failed to classify staged changes: %w", err)
		}

		opts := promptOptions(ctx.Config, c.Int("variations"))
		if c.Bool("amend") {
			msg, err := previousMessage(ctx.RepoPath)
			if err != nil {
				return err
			}
			opts.PreviousMessage = msg
		}

		text := prompt.Build(ctx.FilteredDiff(), summary, opts)
		return output.WriteText(text, c.String("output"))
	})
}

// promptOptions maps configuration onto prompt options; a positive
// variations flag wins over the configured value.
func promptOptions(cfg *config.Config, variations int) prompt.Options {
	opts := prompt.Options{
		Variations:          cfg.Prompt.Variations,
		MinDescriptionChars: cfg.Prompt.MinDescriptionChars,
		MaxDescriptionChars: cfg.Prompt.MaxDescriptionChars,
		OmitSummary:         !cfg.Prompt.IncludeSummary,
	}
	if variations > 0 {
		opts.Variations = variations
	}
	return opts
}

func previousMessage(repoPath string) (string, error) {
	repo, err := git.OpenRepository(repoPath)
	if err != nil {
		return "", fmt.Errorf("failed to open repository: %w", err)
	}
	msg, ok, err := repo.PreviousCommitMessage()
	if err != nil {
		return "", fmt.Errorf("failed to read previous commit message: %w", err)
	}
	if !ok {
		return "", errNothingToAmend
	}
	return msg, nil
}
