package cmd

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	gogit "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/urfave/cli/v2"

	"github.com/masmgr/aicommit-go/config"
	"github.com/masmgr/aicommit-go/internal/git"
	"github.com/masmgr/aicommit-go/internal/output"
)

func TestGetOutputFormat(t *testing.T) {
	tests := []struct {
		input string
		want  output.OutputFormat
	}{
		{input: "json", want: output.FormatJSON},
		{input: "csv", want: output.FormatCSV},
		{input: "markdown", want: output.FormatMarkdown},
		{input: "md", want: output.FormatMarkdown},
		{input: "ci", want: output.FormatCI},
		{input: "ndjson", want: output.FormatCI},
		{input: "unknown", want: output.FormatConsole},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := getOutputFormat(tt.input); got != tt.want {
				t.Fatalf("getOutputFormat(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestPromptOptions(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Prompt.Variations = 2
	cfg.Prompt.IncludeSummary = false

	t.Run("FromConfig", func(t *testing.T) {
		opts := promptOptions(cfg, 0)
		if opts.Variations != 2 {
			t.Errorf("Variations = %d, want 2", opts.Variations)
		}
		if !opts.OmitSummary {
			t.Error("OmitSummary = false, want true")
		}
		if opts.MinDescriptionChars != 10 || opts.MaxDescriptionChars != 72 {
			t.Errorf("bounds = %d..%d, want 10..72", opts.MinDescriptionChars, opts.MaxDescriptionChars)
		}
	})

	t.Run("FlagOverrides", func(t *testing.T) {
		if opts := promptOptions(cfg, 5); opts.Variations != 5 {
			t.Errorf("Variations = %d, want 5", opts.Variations)
		}
	})
}

// captured report fixtures, as produced by the porcelain -z and numstat -z commands
const (
	fixtureStatus  = "A  logo.png\x00D  old.txt\x00R  new.go\x00orig.go\x00M  main.go\x00"
	fixtureNumstat = "-\t-\tlogo.png\x001\t1\t\x00orig.go\x00new.go\x003\t1\tmain.go\x00"
	fixtureDiff    = "diff --git a/main.go b/main.go\n" +
		"index 1111111..2222222 100644\n" +
		"--- a/main.go\n" +
		"+++ b/main.go\n" +
		"@@ -1,3 +1,5 @@\n" +
		" package main\n" +
		"-var x = 1\n" +
		"+var x = 2\n" +
		"+var y = 3\n" +
		"diff --git a/vendor/lib.go b/vendor/lib.go\n" +
		"--- a/vendor/lib.go\n" +
		"+++ b/vendor/lib.go\n" +
		"@@ -1 +1 @@\n" +
		"-old\n" +
		"+new\n"
)

func writeFixtures(t *testing.T) (dir string, args []string) {
	t.Helper()
	dir = t.TempDir()
	files := map[string]string{
		"status":  fixtureStatus,
		"numstat": fixtureNumstat,
		"diff":    fixtureDiff,
	}
	for name, content := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(content), 0o644); err != nil {
			t.Fatalf("write fixture: %v", err)
		}
	}
	return dir, []string{
		"--status-file", filepath.Join(dir, "status"),
		"--numstat-file", filepath.Join(dir, "numstat"),
		"--diff-file", filepath.Join(dir, "diff"),
	}
}

func runApp(t *testing.T, args ...string) {
	t.Helper()
	// Keep a user config file from leaking into the run.
	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	if err := App().Run(append([]string{"aicommit"}, args...)); err != nil {
		t.Fatalf("App().Run(%v) failed: %v", args, err)
	}
}

func readOutput(t *testing.T, path string) string {
	t.Helper()
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	return string(data)
}

func TestSummaryCommand_JSON(t *testing.T) {
	dir, fileArgs := writeFixtures(t)
	out := filepath.Join(dir, "summary.json")

	args := append([]string{"summary", "--format", "json", "--output", out}, fileArgs...)
	runApp(t, args...)

	got := readOutput(t, out)
	for _, want := range []string{
		`"added binary file: logo.png"`,
		`"deleted file: old.txt"`,
		`"renamed: orig.go to new.go"`,
		`"addedLines": 3`,
		`"removedLines": 2`,
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output missing %s:\n%s", want, got)
		}
	}
}

func TestAnnotateCommand_Exclude(t *testing.T) {
	dir, fileArgs := writeFixtures(t)
	out := filepath.Join(dir, "annotated.txt")

	args := append([]string{"annotate", "--exclude", "vendor/**", "--output", out}, fileArgs...)
	runApp(t, args...)

	got := readOutput(t, out)
	if !strings.Contains(got, "[ADDED_LINE]: var y = 3") {
		t.Errorf("annotated output missing marked line:\n%s", got)
	}
	if strings.Contains(got, "vendor/lib.go") {
		t.Errorf("excluded file still present:\n%s", got)
	}
}

func TestPromptCommand(t *testing.T) {
	dir, fileArgs := writeFixtures(t)
	out := filepath.Join(dir, "prompt.txt")

	args := append([]string{"prompt", "--variations", "2", "--output", out}, fileArgs...)
	runApp(t, args...)

	got := readOutput(t, out)
	for _, want := range []string{
		"generate 2 *alternative* Git commit messages",
		"added binary file: logo.png",
		"renamed: orig.go to new.go",
		"[REMOVED_LINE]: var x = 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("prompt output missing %q", want)
		}
	}
}

func TestSummaryCommand_NothingStaged(t *testing.T) {
	dir := t.TempDir()
	empty := filepath.Join(dir, "empty")
	if err := os.WriteFile(empty, nil, 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}
	out := filepath.Join(dir, "summary.json")

	runApp(t, "summary", "--status-file", empty, "--output", out)

	if _, err := os.Stat(out); !os.IsNotExist(err) {
		t.Errorf("expected no output file when nothing is staged, stat err = %v", err)
	}
}

func TestSummaryCommand_MalformedStatus(t *testing.T) {
	dir := t.TempDir()
	status := filepath.Join(dir, "status")
	if err := os.WriteFile(status, []byte("R  new.go\x00"), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	err := App().Run([]string{"aicommit", "summary", "--status-file", status})
	if err == nil {
		t.Fatal("expected error for truncated rename entry")
	}
	if !strings.Contains(err.Error(), "failed to classify staged changes") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPreviousMessage(t *testing.T) {
	dir := t.TempDir()
	repo, err := gogit.PlainInit(dir, false)
	if err != nil {
		t.Fatalf("PlainInit: %v", err)
	}

	if _, err := previousMessage(dir); !errors.Is(err, errNothingToAmend) {
		t.Fatalf("previousMessage on empty repo error = %v, want %v", err, errNothingToAmend)
	}

	wt, err := repo.Worktree()
	if err != nil {
		t.Fatalf("Worktree: %v", err)
	}
	if err := os.WriteFile(filepath.Join(dir, "a.txt"), []byte("a\n"), 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	if _, err := wt.Add("a.txt"); err != nil {
		t.Fatalf("Add: %v", err)
	}
	sig := &object.Signature{Name: "Test", Email: "test@example.com", When: time.Now()}
	if _, err := wt.Commit("fix: handle empty input\n", &gogit.CommitOptions{Author: sig, Committer: sig}); err != nil {
		t.Fatalf("Commit: %v", err)
	}

	msg, err := previousMessage(dir)
	if err != nil {
		t.Fatalf("previousMessage: %v", err)
	}
	if msg != "fix: handle empty input" {
		t.Errorf("previousMessage = %q, want %q", msg, "fix: handle empty input")
	}
}

func TestApp_VerboseFlag(t *testing.T) {
	dir, fileArgs := writeFixtures(t)
	out := filepath.Join(dir, "summary.json")

	args := append([]string{"--verbose", "summary", "--format", "json", "--output", out}, fileArgs...)
	runApp(t, args...)

	if !strings.Contains(readOutput(t, out), `"deleted file: old.txt"`) {
		t.Error("summary not written with --verbose set")
	}
}

func TestApp_VersionFlag(t *testing.T) {
	app := App()
	app.Writer = &strings.Builder{}
	if err := app.Run([]string{"aicommit", "-v"}); err != nil {
		t.Fatalf("App().Run(-v) failed: %v", err)
	}
}

// useReportSource replaces the report source for the duration of the test.
func useReportSource(t *testing.T, src git.ReportSource) {
	t.Helper()
	prev := reportSourceFor
	reportSourceFor = func(*cli.Context, string) git.ReportSource { return src }
	t.Cleanup(func() { reportSourceFor = prev })
}

func TestSummaryCommand_ReportSource(t *testing.T) {
	useReportSource(t, git.NewMockReportSource(&git.StagedReports{
		Status:  []byte(fixtureStatus),
		Numstat: []byte(fixtureNumstat),
		Diff:    fixtureDiff,
	}, nil))
	out := filepath.Join(t.TempDir(), "summary.csv")

	runApp(t, "summary", "--format", "csv", "--output", out)

	got := readOutput(t, out)
	for _, want := range []string{
		"1,binary,added binary file: logo.png",
		"structure,renamed: orig.go to new.go",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary output missing %q:\n%s", want, got)
		}
	}
}

func TestSummaryCommand_ReportSourceError(t *testing.T) {
	useReportSource(t, git.NewMockReportSource(nil, errors.New("git exploded")))

	t.Setenv("HOME", t.TempDir())
	chdir(t, t.TempDir())
	err := App().Run([]string{"aicommit", "summary"})
	if err == nil {
		t.Fatal("expected error from report source")
	}
	if !strings.Contains(err.Error(), "failed to read staged changes: git exploded") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestRepoRoot(t *testing.T) {
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	sub := filepath.Join(dir, "pkg", "inner")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	want, _ := filepath.EvalSymlinks(dir)
	got, _ := filepath.EvalSymlinks(repoRoot(sub))
	if got != want {
		t.Errorf("repoRoot(%q) = %q, want %q", sub, got, want)
	}

	outside := t.TempDir()
	if got := repoRoot(outside); got != outside {
		t.Errorf("repoRoot(%q) = %q, want path unchanged", outside, got)
	}
}

func TestSummaryCommand_ReportsRepoRoot(t *testing.T) {
	dir := t.TempDir()
	if _, err := gogit.PlainInit(dir, false); err != nil {
		t.Fatalf("PlainInit: %v", err)
	}
	sub := filepath.Join(dir, "nested")
	if err := os.MkdirAll(sub, 0o755); err != nil {
		t.Fatal(err)
	}

	var gotRepo string
	prev := reportSourceFor
	reportSourceFor = func(_ *cli.Context, repoPath string) git.ReportSource {
		gotRepo = repoPath
		return git.NewMockReportSource(&git.StagedReports{Status: []byte(fixtureStatus)}, nil)
	}
	t.Cleanup(func() { reportSourceFor = prev })

	out := filepath.Join(t.TempDir(), "summary.json")
	runApp(t, "summary", "--repo", sub, "--format", "json", "--output", out)

	want, _ := filepath.EvalSymlinks(dir)
	if got, _ := filepath.EvalSymlinks(gotRepo); got != want {
		t.Errorf("report source repo = %q, want %q", gotRepo, dir)
	}
	if !strings.Contains(readOutput(t, out), `"repo": "`+gotRepo+`"`) {
		t.Errorf("summary does not report the repository root %q", gotRepo)
	}
}

// chdir changes the working directory for the duration of the test,
// equivalent to testing.T.Chdir (Go 1.24+).
func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatalf("getwd: %v", err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatalf("chdir %s: %v", dir, err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatalf("restore working directory: %v", err)
		}
	})
}
