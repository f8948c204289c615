package core

import (
	"context"
	"sort"
	"time"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/schema"
)

// MineFootprint runs the full aggregation pipeline: discovery once, then
// strictly sequential per-repository history extraction and language
// snapshots, followed by the cross-repository merge and the active-time
// estimate. The returned dataset is assembled entirely in memory as one
// atomic snapshot; nothing is written here.
//
// A repository whose history extraction fails contributes zero commits and
// zero language entries but never halts the run.
func MineFootprint(ctx context.Context, cfg *contract.Config, client contract.GitClient) (*schema.Dataset, error) {
	repos := DiscoverRepositories(cfg.RootPath, cfg.SkipDirs)
	contract.LogInfo("Found %d repositories under %s", len(repos), cfg.RootPath)

	matcher := NewIdentityMatcher(cfg.Identity)

	var merged []schema.CommitRecord
	languages := make(map[string]int)
	repoTotals := make(map[string]int)

	for _, repo := range repos {
		records, err := ParseHistory(ctx, client, repo, matcher, cfg.Filters)
		if err != nil {
			contract.LogWarn("Skipping "+repo.Name+": history extraction failed", err)
			continue
		}

		langs, err := SnapshotLanguages(ctx, client, repo, cfg.Languages)
		if err != nil {
			contract.LogWarn("Language snapshot failed for "+repo.Name, err)
		} else {
			for lang, n := range langs {
				languages[lang] += n
			}
		}

		// Only repositories with at least one matched commit appear in
		// the repo totals; their snapshots still count above.
		if len(records) > 0 {
			repoTotals[repo.Name] = len(records)
		}
		merged = append(merged, records...)
	}

	sort.SliceStable(merged, func(i, j int) bool {
		return merged[i].Timestamp.Before(merged[j].Timestamp)
	})

	detailed := make([]schema.FlatCommit, 0, len(merged))
	timeline := make([]time.Time, 0, len(merged))
	for _, c := range merged {
		detailed = append(detailed, schema.FlatCommit{
			Date:      c.Timestamp.Format(time.RFC3339),
			Repo:      c.RepoName,
			Additions: c.Additions,
			Deletions: c.Deletions,
			Impact:    c.Impact(),
		})
		timeline = append(timeline, c.Timestamp)
	}

	return &schema.Dataset{
		DetailedCommits: detailed,
		Languages:       languages,
		Repos:           repoTotals,
		TotalHours:      EstimateActiveHours(timeline),
		GeneratedAt:     time.Now().Format(time.RFC3339),
	}, nil
}
