// Package gitget fetches a single file or folder (or just the root
// files) from a git repository using sparse checkout, so a manifest
// can be inspected without cloning the whole repo.
package gitget

import (
	"bytes"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
)

// Runner executes a git command. It exists so tests can record the
// issued commands without a git binary.
type Runner func(ctx context.Context, args ...string) error

// Client drives git sparse checkouts.
type Client struct {
	run Runner
}

// NewClient returns a Client backed by the git CLI.
func NewClient() *Client {
	return &Client{run: runGit}
}

// NewClientWithRunner returns a Client using a custom command runner.
func NewClientWithRunner(run Runner) *Client {
	return &Client{run: run}
}

// runGit executes a git command. Stderr is captured and included in
// error messages on failure.
func runGit(ctx context.Context, args ...string) error {
	var stderr bytes.Buffer

	command := exec.CommandContext(ctx, "git", args...)
	command.Stderr = &stderr

	if err := command.Run(); err != nil {
		return fmt.Errorf("git %s: %w (stderr: %s)",
			strings.Join(args, " "), err, strings.TrimSpace(stderr.String()))
	}

	return nil
}

// CheckoutFile sparse-checks-out the given file or folder from the
// repo into localDir.
func (c *Client) CheckoutFile(ctx context.Context, repoURL, branch, path, localDir string) error {
	return c.checkout(ctx, repoURL, branch, path+"\n", localDir)
}

// CheckoutRootFiles sparse-checks-out only the files at the repo root
// into localDir.
func (c *Client) CheckoutRootFiles(ctx context.Context, repoURL, branch, localDir string) error {
	return c.checkout(ctx, repoURL, branch, "/*\n!/*/*\n", localDir)
}

// checkout runs the init / remote add / sparse-checkout config / pull
// sequence with the given sparse-checkout pattern file content.
func (c *Client) checkout(ctx context.Context, repoURL, branch, patterns, localDir string) error {
	if err := c.run(ctx, "init", localDir); err != nil {
		return err
	}

	if err := c.run(ctx, "-C", localDir, "remote", "add", "origin", repoURL); err != nil {
		return err
	}

	if err := c.run(ctx, "-C", localDir, "config", "core.sparseCheckout", "true"); err != nil {
		return err
	}

	sparseFile := filepath.Join(localDir, ".git", "info", "sparse-checkout")
	if err := os.WriteFile(sparseFile, []byte(patterns), 0o644); err != nil {
		return fmt.Errorf("writing sparse-checkout patterns: %w", err)
	}

	return c.run(ctx, "-C", localDir, "pull", "origin", branch)
}
