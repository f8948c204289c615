// Package contract provides interfaces and shared utilities for the footprint CLI's internal architecture.
package contract

import (
	"context"
	"time"

	"github.com/mlcortez/footprint/schema"
)

// GitClient defines the narrow set of Git operations the mining pipeline
// needs. This allows the core logic to run against canned text in tests
// without invoking a real git executable.
type GitClient interface {
	// Run executes a git command and returns the combined output.
	// Its use should be minimized in favor of the explicit methods below.
	Run(ctx context.Context, repoPath string, args ...string) ([]byte, error)

	// CommitLog returns the raw full-history commit log with per-file
	// numstat churn, across all refs and excluding merge commits.
	CommitLog(ctx context.Context, repoPath string) ([]byte, error)

	// ListTrackedFiles returns the paths of all files currently tracked
	// by the repository.
	ListTrackedFiles(ctx context.Context, repoPath string) ([]string, error)
}

// RunStore defines the interface for the run ledger, which records the
// bookkeeping of completed mining runs. Ledger failures must never stop a
// run, so callers downgrade errors to warnings.
type RunStore interface {
	// BeginRun creates a new run row and returns its unique ID.
	BeginRun(startedAt time.Time, rootPath string) (int64, error)

	// EndRun finalizes a run row with its outcome.
	EndRun(runID int64, summary schema.RunSummary) error

	// GetStatus returns basic information about the ledger store.
	GetStatus() (schema.LedgerStatus, error)

	// Close closes the underlying connection.
	Close() error
}
