// Package vcs reads build metadata from the git repository a binary is run in.
package vcs

import (
	"errors"
	"fmt"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing"
)

// ErrNotRepository is returned when no repository encloses the directory.
var ErrNotRepository = errors.New("not a git repository")

// Commit describes the commit HEAD points at.
type Commit struct {
	Hash    string
	Branch  string
	Author  string
	Message string
}

// Short returns the abbreviated hash.
func (c Commit) Short() string {
	if len(c.Hash) > 12 {
		return c.Hash[:12]
	}
	return c.Hash
}

// HeadCommit opens the repository containing dir, searching parent
// directories for .git, and returns its HEAD commit.
func HeadCommit(dir string) (Commit, error) {
	repo, err := git.PlainOpenWithOptions(dir, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		if errors.Is(err, git.ErrRepositoryNotExists) {
			return Commit{}, fmt.Errorf("%s: %w", dir, ErrNotRepository)
		}
		return Commit{}, fmt.Errorf("failed to open repository: %w", err)
	}

	head, err := repo.Head()
	if err != nil {
		return Commit{}, fmt.Errorf("failed to resolve HEAD: %w", err)
	}

	commit, err := repo.CommitObject(head.Hash())
	if err != nil {
		return Commit{}, fmt.Errorf("failed to read commit %s: %w", head.Hash(), err)
	}

	c := Commit{
		Hash:    head.Hash().String(),
		Author:  commit.Author.Name,
		Message: firstLine(commit.Message),
	}
	if head.Name().IsBranch() {
		c.Branch = head.Name().Short()
	} else if head.Name() != plumbing.HEAD {
		c.Branch = head.Name().String()
	}
	return c, nil
}

func firstLine(s string) string {
	for i, r := range s {
		if r == '\n' {
			return s[:i]
		}
	}
	return s
}
