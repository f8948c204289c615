// Package core has the mining pipeline: discovery, identity matching,
// history parsing, language snapshots and the session-gap time estimate.
package core

import (
	"context"
	"time"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/internal/outwriter"
	"github.com/mlcortez/footprint/schema"
)

// ExecuteMine runs the pipeline end to end, writes the dataset once, and
// prints a console summary. It serves as the main entry point for the
// 'mine' command. The run ledger records the outcome when configured;
// ledger failures downgrade to warnings and never block the run.
func ExecuteMine(ctx context.Context, cfg *contract.Config, client contract.GitClient, store contract.RunStore) error {
	start := time.Now()

	var runID int64
	if store != nil {
		id, err := store.BeginRun(start, cfg.RootPath)
		if err != nil {
			contract.LogWarn("Run ledger unavailable", err)
		} else {
			runID = id
		}
	}

	dataset, err := MineFootprint(ctx, cfg, client)
	if err != nil {
		return err
	}

	if err := outwriter.WriteDataset(dataset, cfg.OutputFile); err != nil {
		return err
	}
	if cfg.ParquetFile != "" {
		if err := outwriter.WriteParquet(dataset, cfg.ParquetFile); err != nil {
			return err
		}
	}

	if store != nil && runID > 0 {
		summary := schema.RunSummary{
			RunID:       runID,
			StartedAt:   start,
			FinishedAt:  time.Now(),
			RepoCount:   len(dataset.Repos),
			CommitCount: len(dataset.DetailedCommits),
			TotalHours:  dataset.TotalHours,
			DatasetPath: cfg.OutputFile,
		}
		if err := store.EndRun(runID, summary); err != nil {
			contract.LogWarn("Failed to finalize run ledger entry", err)
		}
	}

	return outwriter.PrintSummary(dataset, cfg, time.Since(start))
}

// ExecuteRepos runs discovery only and lists the repository roots found.
func ExecuteRepos(_ context.Context, cfg *contract.Config) error {
	repos := DiscoverRepositories(cfg.RootPath, cfg.SkipDirs)
	return outwriter.PrintRepositories(repos, cfg)
}
