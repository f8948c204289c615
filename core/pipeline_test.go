package core

import (
	"context"
	"errors"
	"path/filepath"
	"strings"
	"testing"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func pipelineConfig(root string) *contract.Config {
	return &contract.Config{
		RootPath: root,
		Identity: contract.IdentityConfig{
			Emails: map[string]struct{}{"jane@example.com": {}},
			Names:  map[string]struct{}{},
		},
		Filters: contract.FilterConfig{
			IgnoreBasenames:  map[string]struct{}{},
			IgnoreExtensions: map[string]struct{}{},
		},
		SkipDirs:  map[string]struct{}{},
		Languages: map[string]string{".go": "Go", ".py": "Python"},
	}
}

func TestMineFootprint_MergesAcrossRepositories(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	alpha := makeRepo(t, root, "alpha")
	beta := makeRepo(t, root, "beta")

	alphaLog := strings.Join([]string{
		// Most-recent-first, the way git log emits it.
		"HEADER|a2|2024-03-01T10:00:00Z|Jane Doe|jane@example.com",
		"5\t1\tcore/agg.go",
		"HEADER|a1|2024-03-01T09:00:00Z|Jane Doe|jane@example.com",
		"10\t2\tmain.go",
	}, "\n")
	betaLog := strings.Join([]string{
		"HEADER|b1|2024-03-01T09:30:00Z|Bot|bot@ci.example.com",
		"100\t100\tgenerated.go",
	}, "\n")

	mockClient := &contract.MockGitClient{}
	mockClient.On("CommitLog", ctx, alpha).Return([]byte(alphaLog), nil)
	mockClient.On("CommitLog", ctx, beta).Return([]byte(betaLog), nil)
	mockClient.On("ListTrackedFiles", ctx, alpha).Return([]string{"main.go", "core/agg.go"}, nil)
	mockClient.On("ListTrackedFiles", ctx, beta).Return([]string{"app.py"}, nil)

	dataset, err := MineFootprint(ctx, pipelineConfig(root), mockClient)

	require.NoError(t, err)
	require.Len(t, dataset.DetailedCommits, 2)
	assert.Equal(t, "2024-03-01T09:00:00Z", dataset.DetailedCommits[0].Date, "commits are sorted ascending")
	assert.Equal(t, "2024-03-01T10:00:00Z", dataset.DetailedCommits[1].Date)
	assert.Equal(t, 12, dataset.DetailedCommits[0].Impact)
	assert.Equal(t, "alpha", dataset.DetailedCommits[0].Repo)

	assert.Equal(t, map[string]int{"alpha": 2}, dataset.Repos, "repos without matched commits stay out of the totals")
	assert.Equal(t, map[string]int{"Go": 2, "Python": 1}, dataset.Languages, "snapshots count even without matched commits")

	// 1h seed + 1h gap between the two alpha commits
	assert.InDelta(t, 2.0, dataset.TotalHours, 1e-9)
	assert.NotEmpty(t, dataset.GeneratedAt)
	mockClient.AssertExpectations(t)
}

func TestMineFootprint_SessionSpansRepositories(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	alpha := makeRepo(t, root, "alpha")
	beta := makeRepo(t, root, "beta")

	alphaLog := strings.Join([]string{
		"HEADER|a1|2024-03-01T09:00:00Z|Jane Doe|jane@example.com",
		"10\t2\tmain.go",
	}, "\n")
	betaLog := strings.Join([]string{
		"HEADER|b1|2024-03-01T09:30:00Z|Jane Doe|jane@example.com",
		"3\t1\tserver.go",
	}, "\n")

	mockClient := &contract.MockGitClient{}
	mockClient.On("CommitLog", ctx, alpha).Return([]byte(alphaLog), nil)
	mockClient.On("CommitLog", ctx, beta).Return([]byte(betaLog), nil)
	mockClient.On("ListTrackedFiles", ctx, alpha).Return([]string{"main.go"}, nil)
	mockClient.On("ListTrackedFiles", ctx, beta).Return([]string{"server.go"}, nil)

	dataset, err := MineFootprint(ctx, pipelineConfig(root), mockClient)

	require.NoError(t, err)
	require.Len(t, dataset.DetailedCommits, 2)
	assert.Equal(t, "alpha", dataset.DetailedCommits[0].Repo)
	assert.Equal(t, "beta", dataset.DetailedCommits[1].Repo, "timelines interleave across repositories")

	// One merged timeline: 1h seed + the 30m hop to the other repo.
	// Two independent timelines would have billed a seed hour each.
	assert.InDelta(t, 1.5, dataset.TotalHours, 1e-9)
	mockClient.AssertExpectations(t)
}

func TestMineFootprint_FailedRepoSkippedEntirely(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	alpha := makeRepo(t, root, "alpha")
	broken := makeRepo(t, root, "broken")

	alphaLog := strings.Join([]string{
		"HEADER|a1|2024-03-01T09:00:00Z|Jane Doe|jane@example.com",
		"1\t0\tmain.go",
	}, "\n")

	mockClient := &contract.MockGitClient{}
	mockClient.On("CommitLog", ctx, alpha).Return([]byte(alphaLog), nil)
	mockClient.On("CommitLog", ctx, broken).Return([]byte(nil), errors.New("corrupt object database"))
	mockClient.On("ListTrackedFiles", ctx, alpha).Return([]string{"main.go"}, nil)

	dataset, err := MineFootprint(ctx, pipelineConfig(root), mockClient)

	require.NoError(t, err, "a broken repository never halts the run")
	assert.Len(t, dataset.DetailedCommits, 1)
	assert.Equal(t, map[string]int{"alpha": 1}, dataset.Repos)
	assert.Equal(t, map[string]int{"Go": 1}, dataset.Languages, "no language snapshot from a repo whose history failed")
	mockClient.AssertExpectations(t)
}

func TestMineFootprint_SnapshotFailureDowngraded(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	alpha := makeRepo(t, root, "alpha")

	alphaLog := strings.Join([]string{
		"HEADER|a1|2024-03-01T09:00:00Z|Jane Doe|jane@example.com",
		"1\t0\tmain.go",
	}, "\n")

	mockClient := &contract.MockGitClient{}
	mockClient.On("CommitLog", ctx, alpha).Return([]byte(alphaLog), nil)
	mockClient.On("ListTrackedFiles", ctx, alpha).Return([]string(nil), errors.New("index locked"))

	dataset, err := MineFootprint(ctx, pipelineConfig(root), mockClient)

	require.NoError(t, err)
	assert.Len(t, dataset.DetailedCommits, 1, "churn survives a failed snapshot")
	assert.Empty(t, dataset.Languages)
	mockClient.AssertExpectations(t)
}

func TestMineFootprint_NoRepositories(t *testing.T) {
	ctx := context.Background()
	root := t.TempDir()
	mockClient := &contract.MockGitClient{}

	dataset, err := MineFootprint(ctx, pipelineConfig(filepath.Clean(root)), mockClient)

	require.NoError(t, err)
	assert.Empty(t, dataset.DetailedCommits)
	assert.Empty(t, dataset.Repos)
	assert.Equal(t, 0.0, dataset.TotalHours)
}
