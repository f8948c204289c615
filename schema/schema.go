// Package schema has configs, models and constants for all parts of footprint.
package schema

import "time"

// RepositoryRef identifies a discovered repository root. Discovered once
// per run and never mutated afterwards.
type RepositoryRef struct {
	Path string // Absolute path to the repository root
	Name string // Final path segment, used as the repository label
}

// CommitRecord is one commit attributed to the target identity, with churn
// already filtered down to countable files. Records are never mutated once
// the parser emits them.
type CommitRecord struct {
	Hash         string    // Full commit hash
	Timestamp    time.Time // Author time, offset-aware
	AuthorName   string    // Author name as recorded by Git
	AuthorEmail  string    // Author email, lower-cased
	Additions    int       // Added lines across non-filtered files
	Deletions    int       // Deleted lines across non-filtered files
	FilesTouched int       // Changed files that survived filtering
	RepoName     string    // Label of the repository the commit belongs to
}

// Impact is the commit's churn: added plus deleted lines after filtering.
func (c CommitRecord) Impact() int {
	return c.Additions + c.Deletions
}

// FlatCommit is the flattened per-commit entry in the output dataset.
type FlatCommit struct {
	Date      string `json:"date" parquet:"date,snappy"`
	Repo      string `json:"repo" parquet:"repo,snappy"`
	Additions int    `json:"additions" parquet:"additions,snappy"`
	Deletions int    `json:"deletions" parquet:"deletions,snappy"`
	Impact    int    `json:"impact" parquet:"impact,snappy"`
}

// Dataset is the pipeline's sole output, assembled entirely in memory and
// written exactly once per run.
type Dataset struct {
	DetailedCommits []FlatCommit   `json:"detailed_commits"`
	Languages       map[string]int `json:"languages"`
	Repos           map[string]int `json:"repos"`
	TotalHours      float64        `json:"total_hours_estimated"`
	GeneratedAt     string         `json:"generated_at"`
}

// RunSummary captures the bookkeeping of one completed mining run for the
// run ledger. It records outcomes only; runs are never resumed from it.
type RunSummary struct {
	RunID       int64
	StartedAt   time.Time
	FinishedAt  time.Time
	RepoCount   int
	CommitCount int
	TotalHours  float64
	DatasetPath string
}

// LedgerStatus reports basic information about the run ledger store.
type LedgerStatus struct {
	Backend  DatabaseBackend
	Location string
	RunCount int
}
