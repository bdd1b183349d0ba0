package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/config"
	"github.com/masmgr/aicommit-go/internal/output"
)

// App creates the CLI application.
func App() *cli.App {
	return &cli.App{
		Name:    "aicommit",
		Usage:   "Analyze staged Git changes and assemble commit message prompts",
		Version: "0.1.0",
		Commands: []*cli.Command{
			SummaryCmd(),
			AnnotateCmd(),
			PromptCmd(),
		},
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Path to configuration file",
			},
			&cli.BoolFlag{
				Name:  "verbose",
				Usage: "Log the git commands being run to stderr",
			},
		},
		Action: func(c *cli.Context) error {
			return cli.ShowAppHelp(c)
		},
	}
}

// Common flags shared across commands
func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "repo",
			Aliases: []string{"r"},
			Usage:   "Path to Git repository",
			Value:   ".",
		},
		&cli.StringSliceFlag{
			Name:  "exclude",
			Usage: "Glob patterns of files to leave out of the diff (can be specified multiple times)",
		},
		&cli.StringFlag{
			Name:    "output",
			Aliases: []string{"o"},
			Usage:   "Output file path (default: stdout)",
		},
		&cli.StringFlag{
			Name:  "status-file",
			Usage: "Read the porcelain -z status report from this file instead of running git",
		},
		&cli.StringFlag{
			Name:  "numstat-file",
			Usage: "Read the numstat -z report from this file instead of running git",
		},
		&cli.StringFlag{
			Name:  "diff-file",
			Usage: "Read the unified diff from this file instead of running git",
		},
	}
}

// getOutputFormat parses the output format flag.
func getOutputFormat(s string) output.OutputFormat {
	switch s {
	case "json":
		return output.FormatJSON
	case "csv":
		return output.FormatCSV
	case "markdown", "md":
		return output.FormatMarkdown
	case "ci", "ndjson":
		return output.FormatCI
	default:
		return output.FormatConsole
	}
}

// loadConfig loads configuration from file or defaults.
func loadConfig(c *cli.Context) (*config.Config, error) {
	configPath := c.String("config")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	// Apply overrides from CLI
	if excludes := c.StringSlice("exclude"); len(excludes) > 0 {
		cfg.Filters.Exclude = excludes
	}
	if c.IsSet("format") {
		cfg.Output.Format = c.String("format")
	}

	return cfg, nil
}

// verboseLogf returns a logger writing dimmed lines to stderr, or nil when
// --verbose is off.
func verboseLogf(c *cli.Context) func(format string, args ...any) {
	if !c.Bool("verbose") {
		return nil
	}
	dim := color.New(color.Faint)
	return func(format string, args ...any) {
		dim.Fprintf(os.Stderr, format+"\n", args...)
	}
}

// Run executes the CLI application.
func Run() {
	if err := App().Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
