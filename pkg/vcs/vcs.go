// Package vcs seeds a version-control repository with a freshly
// scaffolded tree. The contract is narrow: given a root path and the
// paths to include, produce an initial commit and return its id.
package vcs

import (
	"fmt"
	"path/filepath"
	"time"

	git "github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"
	"github.com/haliatech/sassy/pkg/logging"
)

// DefaultCommitMessage is used when no message is configured.
const DefaultCommitMessage = "Initial commit."

// Initializer creates a repository at root, stages items and commits
// them, returning the commit id. Implementations may fail for any
// underlying reason; callers own the catch-and-convert boundary.
type Initializer interface {
	Init(root string, items []string) (string, error)
}

// GitInitializer is the production Initializer backed by go-git.
type GitInitializer struct {
	// CommitMessage overrides DefaultCommitMessage when non-empty.
	CommitMessage string
	// Author and Email identify the commit author when the host has no
	// usable git configuration.
	Author string
	Email  string
}

// NewGit returns a GitInitializer with the default commit identity.
func NewGit(message string) *GitInitializer {
	return &GitInitializer{
		CommitMessage: message,
		Author:        "sassy",
		Email:         "sassy@localhost",
	}
}

// Init creates a repository at root, stages every item (paths anchored
// the same way root is; directories are staged recursively) and records
// the initial commit.
func (g *GitInitializer) Init(root string, items []string) (string, error) {
	log := logging.GetLogger("vcs.git")

	repo, err := git.PlainInit(root, false)
	if err != nil {
		return "", fmt.Errorf("git init %s: %w", root, err)
	}

	wt, err := repo.Worktree()
	if err != nil {
		return "", fmt.Errorf("git worktree: %w", err)
	}

	for _, item := range items {
		// Items arrive as the scaffolder built them, anchored wherever
		// root is anchored; go-git wants them relative to the worktree.
		rel, err := filepath.Rel(root, item)
		if err != nil {
			return "", fmt.Errorf("stage %s: %w", item, err)
		}
		if _, err := wt.Add(filepath.ToSlash(rel)); err != nil {
			return "", fmt.Errorf("git add %s: %w", rel, err)
		}
	}

	msg := g.CommitMessage
	if msg == "" {
		msg = DefaultCommitMessage
	}
	commit, err := wt.Commit(msg, &git.CommitOptions{
		Author: &object.Signature{
			Name:  g.Author,
			Email: g.Email,
			When:  time.Now(),
		},
	})
	if err != nil {
		return "", fmt.Errorf("git commit: %w", err)
	}

	log.Debug().Str("root", root).Str("commit", commit.String()).Msg("repository seeded")
	return commit.String(), nil
}
