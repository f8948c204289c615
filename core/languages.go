package core

import (
	"context"
	"path/filepath"
	"strings"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/schema"
)

// SnapshotLanguages computes a present-day file-extension histogram over
// the repository's currently tracked files. This is a single point-in-time
// measurement of composition, distinct in meaning from historical churn;
// the two are never conflated in aggregation. Files whose extension is not
// in the table are ignored. Extensionless files fall back to a lower-cased
// basename lookup so entries like "dockerfile" can match.
func SnapshotLanguages(ctx context.Context, client contract.GitClient, repo schema.RepositoryRef, table map[string]string) (map[string]int, error) {
	files, err := client.ListTrackedFiles(ctx, repo.Path)
	if err != nil {
		return nil, err
	}
	languages := make(map[string]int)
	for _, f := range files {
		base := strings.ToLower(filepath.Base(f))
		key := filepath.Ext(base)
		if key == "" {
			key = base
		}
		if lang, ok := table[key]; ok {
			languages[lang]++
		}
	}
	return languages, nil
}
