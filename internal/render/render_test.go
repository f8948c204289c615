package render

import (
	"bytes"
	"path/filepath"
	"testing"

	"github.com/mlcortez/footprint/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func renderDataset() *schema.Dataset {
	return &schema.Dataset{
		DetailedCommits: []schema.FlatCommit{
			{Date: "2024-02-15T09:00:00Z", Repo: "alpha", Additions: 10, Deletions: 2, Impact: 12},
			{Date: "2024-03-01T09:00:00Z", Repo: "alpha", Additions: 5, Deletions: 1, Impact: 6},
			{Date: "2024-03-02T09:00:00Z", Repo: "beta", Additions: 1, Deletions: 0, Impact: 1},
		},
		Languages:   map[string]int{"Go": 12, "Python": 3},
		Repos:       map[string]int{"alpha": 2, "beta": 1},
		TotalHours:  3.5,
		GeneratedAt: "2024-03-02T09:05:00Z",
	}
}

func TestAggregateMonthlyChurn(t *testing.T) {
	months, additions, deletions := aggregateMonthlyChurn(renderDataset().DetailedCommits)

	require.Equal(t, []string{"2024-02", "2024-03"}, months)
	assert.Equal(t, []int{10, 6}, additions)
	assert.Equal(t, []int{2, 1}, deletions)
}

func TestAggregateMonthlyChurn_SkipsMalformedDates(t *testing.T) {
	months, _, _ := aggregateMonthlyChurn([]schema.FlatCommit{{Date: "bad"}})

	assert.Empty(t, months)
}

func TestTopCounts(t *testing.T) {
	counts := map[string]int{"a": 5, "b": 3, "c": 2, "d": 1}

	names, values := topCounts(counts, 2)

	require.Equal(t, []string{"a", "b", "Other"}, names, "the tail collapses into one bucket")
	assert.Equal(t, []int{5, 3, 3}, values)
}

func TestTopCounts_TiesBreakByName(t *testing.T) {
	names, _ := topCounts(map[string]int{"z": 1, "a": 1}, 5)

	assert.Equal(t, []string{"a", "z"}, names)
}

func TestRenderDashboard(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderDashboard(renderDataset(), &buf))

	out := buf.String()
	assert.Contains(t, out, "Monthly Churn")
	assert.Contains(t, out, "Language Composition")
	assert.Contains(t, out, "Repositories")
	assert.Contains(t, out, "2024-02")
}

func TestRenderDashboard_EmptyDataset(t *testing.T) {
	var buf bytes.Buffer

	require.NoError(t, RenderDashboard(&schema.Dataset{}, &buf))
	assert.NotEmpty(t, buf.String())
}

func TestWriteDashboard(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dash.html")

	require.NoError(t, WriteDashboard(renderDataset(), path))

	assert.FileExists(t, path)
}
