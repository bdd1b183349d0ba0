package git

import (
	"bytes"
	"context"
	"fmt"
	"os/exec"
	"strings"
)

// Collector captures the staged-change reports by running the git CLI.
type Collector struct {
	opts CollectOptions
}

// NewCollector creates a collector for the repository at opts.RepoPath.
func NewCollector(opts CollectOptions) *Collector {
	if opts.RepoPath == "" {
		opts.RepoPath = "."
	}
	if opts.GitBinary == "" {
		opts.GitBinary = "git"
	}
	return &Collector{opts: opts}
}

// ReadReports runs the status, numstat and diff commands and returns their
// output unmodified.
func (c *Collector) ReadReports(ctx context.Context) (*StagedReports, error) {
	status, err := c.run(ctx, statusArgs...)
	if err != nil {
		return nil, err
	}

	numstat, err := c.run(ctx, numstatArgs...)
	if err != nil {
		return nil, err
	}

	diff, err := c.run(ctx, diffArgs...)
	if err != nil {
		return nil, err
	}

	return &StagedReports{
		Status:  status,
		Numstat: numstat,
		Diff:    string(diff),
	}, nil
}

func (c *Collector) run(ctx context.Context, args ...string) ([]byte, error) {
	if c.opts.Logf != nil {
		c.opts.Logf("running git %s in %s", strings.Join(args, " "), c.opts.RepoPath)
	}

	fullArgs := append([]string{"-C", c.opts.RepoPath}, args...)
	cmd := exec.CommandContext(ctx, c.opts.GitBinary, fullArgs...)

	// -z output must not be interleaved with diagnostics.
	var stdout, stderr bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr

	if err := cmd.Run(); err != nil {
		return nil, fmt.Errorf("git %s failed: %w: %s", strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}
	return stdout.Bytes(), nil
}
