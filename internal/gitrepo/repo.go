package gitrepo

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"
)

// Repo runs git plumbing commands against the working directory the process
// was started in. All mutation goes through the git executable so commit
// atomicity is git's own.
type Repo struct {
	runner Runner
}

func New() *Repo {
	return &Repo{runner: Runner{Timeout: 2 * time.Minute}}
}

type Runner struct {
	Timeout time.Duration
}

func (r Runner) Git(ctx context.Context, args ...string) (string, error) {
	c := exec.CommandContext(ctx, "git", args...)
	var stdout, stderr bytes.Buffer
	c.Stdout = &stdout
	c.Stderr = &stderr
	if err := c.Start(); err != nil {
		return "", formatGitError(args, err, stderr.String())
	}
	done := make(chan error, 1)
	go func() { done <- c.Wait() }()
	select {
	case err := <-done:
		if err != nil {
			return "", formatGitError(args, err, stderr.String())
		}
		return stdout.String(), nil
	case <-time.After(r.Timeout):
		_ = c.Process.Kill()
		<-done
		return "", formatGitTimeoutError(args, r.Timeout, stderr.String())
	case <-ctx.Done():
		_ = c.Process.Kill()
		<-done
		return "", formatGitContextError(args, ctx.Err(), stderr.String())
	}
}

func formatGitError(args []string, cause error, stderr string) error {
	cmd := strings.Join(args, " ")
	stderr = strings.TrimSpace(stderr)
	if stderr != "" {
		return fmt.Errorf("git %s: %w: %s", cmd, cause, stderr)
	}
	return fmt.Errorf("git %s: %w", cmd, cause)
}

func formatGitTimeoutError(args []string, timeout time.Duration, stderr string) error {
	return formatGitError(args, fmt.Errorf("command timed out after %s", timeout), stderr)
}

func formatGitContextError(args []string, cause error, stderr string) error {
	if cause == nil {
		cause = errors.New("context canceled")
	}
	return formatGitError(args, cause, stderr)
}

// IsInsideWorkTree reports whether the current directory is inside a git
// working tree. A failing rev-parse means "not a repository", never an error.
func (r *Repo) IsInsideWorkTree(ctx context.Context) bool {
	out, err := r.runner.Git(ctx, "rev-parse", "--is-inside-work-tree")
	return err == nil && strings.TrimSpace(out) == "true"
}

// StagedDiff returns the diff of changes staged for the next commit. An empty
// string means there is nothing staged.
func (r *Repo) StagedDiff(ctx context.Context) (string, error) {
	out, err := r.runner.Git(ctx, "diff", "--cached", "--histogram", "--no-color", "--no-ext-diff")
	if err != nil {
		return "", err
	}
	return out, nil
}

// Commit creates a signed-off commit from the currently staged changes.
// Hook rejections and other git failures are surfaced verbatim.
func (r *Repo) Commit(ctx context.Context, message string) (string, error) {
	out, err := r.runner.Git(ctx, "commit", "-s", "-m", message)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(out), nil
}
