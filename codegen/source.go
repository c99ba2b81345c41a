package codegen

import (
	"path/filepath"
	"time"

	"github.com/go-git/go-git/v5"
	"github.com/go-git/go-git/v5/plumbing/object"

	"github.com/teranos/ontogen/errors"
)

// SourceInfo identifies the ontology revision a file was generated from.
type SourceInfo struct {
	Hash         string
	LastModified time.Time
}

// Short returns the abbreviated commit hash.
func (s SourceInfo) Short() string {
	if len(s.Hash) >= 7 {
		return s.Hash[:7]
	}
	return s.Hash
}

// SourceVersion returns the last commit that touched path. It returns
// (nil, nil) when path is not inside a git repository or has never been
// committed, since uncommitted ontologies are normal during development.
func SourceVersion(path string) (*SourceInfo, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to resolve %s", path)
	}

	repo, err := git.PlainOpenWithOptions(filepath.Dir(abs), &git.PlainOpenOptions{DetectDotGit: true})
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return nil, nil
	}
	if err != nil {
		return nil, errors.Wrap(err, "failed to open git repository")
	}

	wt, err := repo.Worktree()
	if err != nil {
		// bare repository
		return nil, nil
	}
	rel, err := filepath.Rel(wt.Filesystem.Root(), abs)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to relate %s to the worktree", path)
	}
	rel = filepath.ToSlash(rel)

	iter, err := repo.Log(&git.LogOptions{FileName: &rel})
	if err != nil {
		// no HEAD yet
		return nil, nil
	}
	defer iter.Close()

	commit, err := iter.Next()
	if err != nil {
		return nil, nil
	}
	return sourceInfoFrom(commit), nil
}

func sourceInfoFrom(c *object.Commit) *SourceInfo {
	return &SourceInfo{
		Hash:         c.Hash.String(),
		LastModified: c.Committer.When.UTC(),
	}
}
