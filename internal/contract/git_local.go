package contract

import (
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"

	"github.com/huangsam/workscope/schema"
)

// LocalGitClient implements the GitClient interface by executing the
// local 'git' binary installed on the machine.
type LocalGitClient struct{}

var _ GitClient = &LocalGitClient{} // Compile-time check

// NewLocalGitClient creates a new instance of the local Git client.
func NewLocalGitClient() *LocalGitClient {
	return &LocalGitClient{}
}

// Run executes a git command and returns its stdout output.
func (c *LocalGitClient) Run(_ context.Context, repoPath string, args ...string) ([]byte, error) {
	fullArgs := append([]string{"-C", repoPath}, args...)
	cmd := exec.Command("git", fullArgs...)
	out, err := cmd.Output()
	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		stderr := strings.TrimSpace(string(exitErr.Stderr))
		return nil, fmt.Errorf("git command failed in %q: %s. If this is not a Git repository, verify the path or run 'git init'", repoPath, stderr)
	} else if err != nil {
		return nil, fmt.Errorf("git command failed: %w. Ensure Git is installed and available on your PATH", err)
	}
	return out, nil
}

// RepoRoot implements the GitClient interface by executing 'git rev-parse --show-toplevel'.
func (c *LocalGitClient) RepoRoot(ctx context.Context, contextPath string) (string, error) {
	out, err := c.Run(ctx, contextPath, "rev-parse", "--show-toplevel")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// HeadHash implements the GitClient interface.
func (c *LocalGitClient) HeadHash(ctx context.Context, repoPath string) (string, error) {
	out, err := c.Run(ctx, repoPath, "rev-parse", "HEAD")
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(string(out)), nil
}

// CommitLog implements the GitClient interface.
func (c *LocalGitClient) CommitLog(ctx context.Context, repoPath string, dr schema.DateRange, ref string, allBranches bool) ([]byte, error) {
	args := []string{
		"log",
		"--numstat",
		"--pretty=format:--%H|%an|%ad|%s",
		"--date=iso-strict",
	}
	if !dr.Start.IsZero() {
		args = append(args, fmt.Sprintf("--since=%s", dr.Start.Format(DateTimeFormat)))
	}
	if !dr.End.IsZero() {
		args = append(args, fmt.Sprintf("--until=%s", dr.End.Format(DateTimeFormat)))
	}
	if allBranches {
		args = append(args, "--all")
	} else if ref != "" {
		args = append(args, ref)
	}
	return c.Run(ctx, repoPath, args...)
}
