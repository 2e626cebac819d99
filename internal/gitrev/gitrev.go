// Package gitrev stamps bench history rows with the revision of the
// checkout under test.
package gitrev

import (
	git "github.com/go-git/go-git/v5"
)

// Head returns the HEAD commit hash of the repository containing path,
// or "" when path is not inside a repository or HEAD cannot be resolved.
// Revision stamping is best-effort: a missing revision never fails a
// bench run.
func Head(path string) string {
	repo, err := git.PlainOpenWithOptions(path, &git.PlainOpenOptions{DetectDotGit: true})
	if err != nil {
		return ""
	}
	ref, err := repo.Head()
	if err != nil {
		return ""
	}
	return ref.Hash().String()
}
