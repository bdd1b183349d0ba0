package prompt

import (
	"fmt"
	"sort"
	"strings"
)

// CommitType is a conventional commit type offered to the model.
type CommitType struct {
	Name        string
	Description string
	Example     string
	Priority    int // Higher is listed first
}

// CommitTypes is the fixed table of types the prompt offers.
var CommitTypes = []CommitType{
	{
		Name:        "feat",
		Description: "A new feature or significant functionality addition (e.g., adding new endpoints, UI components, initial project setup).",
		Example:     "feat: Implement user authentication via OAuth",
		Priority:    9,
	},
	{
		Name:        "fix",
		Description: "A bug fix (e.g., correcting calculation errors, addressing crashes, security vulnerabilities).",
		Example:     "fix: Correct off-by-one error in pagination",
		Priority:    8,
	},
	{
		Name:        "perf",
		Description: "A code change that improves performance without adding features or fixing bugs.",
		Example:     "perf: Optimize image loading by using WebP format",
		Priority:    7,
	},
	{
		Name:        "refactor",
		Description: "A code change that neither fixes a bug nor adds a feature (e.g., renaming variables, improving code structure, reorganizing files).",
		Example:     "refactor: Extract user service from main controller",
		Priority:    6,
	},
	{
		Name:        "build",
		Description: "Changes that affect the build system or external dependencies (e.g., Makefile, go.mod, package.json updates).",
		Example:     "build: Configure webpack for tree shaking optimization",
		Priority:    5,
	},
	{
		Name:        "ci",
		Description: "Changes to CI configuration files and scripts (e.g., GitHub Actions, deployment pipelines).",
		Example:     "ci: Add automated deployment step to GitHub Actions",
		Priority:    5,
	},
	{
		Name:        "test",
		Description: "Adding missing tests or correcting existing tests without changing application logic.",
		Example:     "test: Add unit tests for payment processor",
		Priority:    4,
	},
	{
		Name:        "docs",
		Description: "Documentation only changes that don't affect code functionality (e.g., updating README, API docs, comments).",
		Example:     "docs: Update README with setup instructions",
		Priority:    3,
	},
	{
		Name:        "style",
		Description: "Changes that do not affect the meaning of the code (white-space, formatting, missing semi-colons, etc).",
		Example:     "style: Format code according to project guidelines",
		Priority:    2,
	},
	{
		Name:        "chore",
		Description: "Maintenance tasks, dependency updates, or tooling changes that don't modify application code.",
		Example:     "chore: Update golangci-lint to v1.61.0",
		Priority:    3,
	},
	{
		Name:        "revert",
		Description: "Reverts a previous commit.",
		Example:     "revert: Revert commit 'abcdef12' due to critical bug",
		Priority:    8,
	},
	{
		Name:        "readme",
		Description: "Specifically for standalone changes to the README file only.",
		Example:     "readme: Add contribution guidelines and code of conduct",
		Priority:    2,
	},
}

// formatCommitTypes renders one line per type, highest priority first and
// by name within equal priority.
func formatCommitTypes(types []CommitType) string {
	sorted := make([]CommitType, len(types))
	copy(sorted, types)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Priority != sorted[j].Priority {
			return sorted[i].Priority > sorted[j].Priority
		}
		return sorted[i].Name < sorted[j].Name
	})

	var b strings.Builder
	for _, ct := range sorted {
		fmt.Fprintf(&b, "- %s: %s (Example: %q)\n", ct.Name, ct.Description, ct.Example)
	}
	return b.String()
}

const typeSelectionGuidance = `CRITICAL: Type Selection Hierarchy - When determining the commit type, follow this decision process:
1. If creating new functionality, features, or initial project setup → use 'feat'
2. If fixing bugs, errors, or security issues → use 'fix'
3. If improving performance without adding features → use 'perf'
4. If restructuring code without changing behavior → use 'refactor'
5. If changing build configuration or dependencies → use 'build'
6. If modifying CI/CD pipelines → use 'ci'
7. If only adding/updating tests → use 'test'
8. If only updating documentation → use 'docs'
9. If only formatting/style changes → use 'style'
10. If maintenance tasks or dependency updates → use 'chore'

IMPORTANT: Even if individual files (like README.md, go.mod, etc.) are part of a larger change, choose the type that represents the PRIMARY PURPOSE of the entire commit. For example: Initial project setup that includes README.md, go.mod, and source files should be 'feat', not 'docs' or 'chore', because the primary purpose is creating new functionality.`
