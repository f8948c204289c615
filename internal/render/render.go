// Package render turns a mined dataset into a static HTML dashboard.
package render

import (
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/mlcortez/footprint/schema"
)

const (
	churnStackName = "churn"
	fullZoomPct    = 100
	maxPieSlices   = 10
	maxRepoBars    = 15
	monthKeyWidth  = 7 // "2006-01"
)

// WriteDashboard renders the dashboard for a dataset into an HTML file.
func WriteDashboard(dataset *schema.Dataset, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create dashboard file: %w", err)
	}
	defer f.Close()

	return RenderDashboard(dataset, f)
}

// RenderDashboard writes the full dashboard page to the writer.
func RenderDashboard(dataset *schema.Dataset, writer io.Writer) error {
	page := components.NewPage()
	page.PageTitle = "Footprint Dashboard"
	page.AddCharts(
		buildMonthlyChurnChart(dataset),
		buildLanguagePie(dataset),
		buildRepoChart(dataset),
	)

	if err := page.Render(writer); err != nil {
		return fmt.Errorf("render dashboard: %w", err)
	}

	return nil
}

// buildMonthlyChurnChart stacks added and deleted lines per calendar month.
func buildMonthlyChurnChart(dataset *schema.Dataset) *charts.Bar {
	months, additions, deletions := aggregateMonthlyChurn(dataset.DetailedCommits)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Monthly Churn",
			Subtitle: "Added and deleted lines per month, attributed commits only",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "axis"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Top: "5px", Left: "40%"}),
		charts.WithDataZoomOpts(opts.DataZoom{Type: "slider", Start: 0, End: fullZoomPct}, opts.DataZoom{Type: "inside"}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Month"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Lines"}),
	)
	bar.SetXAxis(months)
	bar.AddSeries("Additions", toBarData(additions), charts.WithBarChartOpts(opts.BarChart{Stack: churnStackName}))
	bar.AddSeries("Deletions", toBarData(deletions), charts.WithBarChartOpts(opts.BarChart{Stack: churnStackName}))

	return bar
}

// buildLanguagePie shows the tracked-file language composition. Languages
// past the slice limit collapse into an "Other" bucket.
func buildLanguagePie(dataset *schema.Dataset) *charts.Pie {
	names, counts := topCounts(dataset.Languages, maxPieSlices)

	data := make([]opts.PieData, len(names))
	for i, name := range names {
		data[i] = opts.PieData{Name: name, Value: counts[i]}
	}

	pie := charts.NewPie()
	pie.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Language Composition",
			Subtitle: "Tracked files per language across all repositories",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true), Trigger: "item"}),
		charts.WithLegendOpts(opts.Legend{Show: opts.Bool(true), Type: "scroll", Top: "5px", Left: "40%"}),
	)
	pie.AddSeries("Languages", data).SetSeriesOptions(
		charts.WithLabelOpts(opts.Label{Show: opts.Bool(true), Formatter: "{b}: {c}"}),
	)

	return pie
}

// buildRepoChart ranks repositories by attributed commit count.
func buildRepoChart(dataset *schema.Dataset) *charts.Bar {
	names, counts := topCounts(dataset.Repos, maxRepoBars)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title:    "Repositories",
			Subtitle: "Attributed commits per repository (Top 15)",
			Left:     "2%",
		}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
		charts.WithXAxisOpts(opts.XAxis{Name: "Repository", AxisLabel: &opts.AxisLabel{Rotate: 45, Show: opts.Bool(true)}}),
		charts.WithYAxisOpts(opts.YAxis{Name: "Commits"}),
	)
	bar.SetXAxis(names)
	bar.AddSeries("Commits", toBarData(counts))

	return bar
}

// aggregateMonthlyChurn buckets commits by "YYYY-MM" in chronological order.
// Commit dates are RFC 3339, so the month key is a plain prefix.
func aggregateMonthlyChurn(commits []schema.FlatCommit) (months []string, additions, deletions []int) {
	addByMonth := make(map[string]int)
	delByMonth := make(map[string]int)

	for _, c := range commits {
		if len(c.Date) < monthKeyWidth {
			continue
		}

		key := c.Date[:monthKeyWidth]
		addByMonth[key] += c.Additions
		delByMonth[key] += c.Deletions
	}

	months = make([]string, 0, len(addByMonth))
	for key := range addByMonth {
		months = append(months, key)
	}

	sort.Strings(months)

	additions = make([]int, len(months))
	deletions = make([]int, len(months))

	for i, key := range months {
		additions[i] = addByMonth[key]
		deletions[i] = delByMonth[key]
	}

	return months, additions, deletions
}

// topCounts sorts a count map descending and collapses the tail into "Other".
func topCounts(counts map[string]int, limit int) (names []string, values []int) {
	type kv struct {
		k string
		v int
	}

	items := make([]kv, 0, len(counts))
	for k, v := range counts {
		items = append(items, kv{k, v})
	}

	sort.Slice(items, func(i, j int) bool {
		if items[i].v != items[j].v {
			return items[i].v > items[j].v
		}

		return items[i].k < items[j].k
	})

	other := 0

	if len(items) > limit {
		for _, item := range items[limit:] {
			other += item.v
		}

		items = items[:limit]
	}

	names = make([]string, 0, len(items)+1)
	values = make([]int, 0, len(items)+1)

	for _, item := range items {
		names = append(names, item.k)
		values = append(values, item.v)
	}

	if other > 0 {
		names = append(names, "Other")
		values = append(values, other)
	}

	return names, values
}

func toBarData(values []int) []opts.BarData {
	data := make([]opts.BarData, len(values))
	for i, v := range values {
		data[i] = opts.BarData{Value: v}
	}

	return data
}
