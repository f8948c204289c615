package core

import (
	"io/fs"
	"os"
	"path/filepath"

	"github.com/mlcortez/footprint/schema"
)

// DiscoverRepositories performs one traversal of the directory tree below
// root and returns every repository root found. A directory containing a
// .git entry is recorded and never descended into, so nested repositories
// and submodule checkouts do not show up as separate entries. Directory
// names in skipDirs are pruned at any depth to bound cost on dependency
// heavy trees. Unreadable directories are skipped; discovery never aborts
// the run on a single inaccessible subtree.
func DiscoverRepositories(root string, skipDirs map[string]struct{}) []schema.RepositoryRef {
	var repos []schema.RepositoryRef
	_ = filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			// Inaccessible subtree: skip and move on.
			return nil
		}
		if !d.IsDir() {
			return nil
		}
		if path != root {
			if _, skip := skipDirs[d.Name()]; skip {
				return fs.SkipDir
			}
		}
		if isRepositoryRoot(path) {
			repos = append(repos, schema.RepositoryRef{
				Path: path,
				Name: filepath.Base(path),
			})
			return fs.SkipDir
		}
		return nil
	})
	return repos
}

// isRepositoryRoot reports whether dir carries the Git metadata marker.
// The marker is a directory in regular checkouts and a file in worktrees,
// so a bare existence check covers both.
func isRepositoryRoot(dir string) bool {
	_, err := os.Lstat(filepath.Join(dir, ".git"))
	return err == nil
}
