package outwriter

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"
	"strconv"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/schema"
	"github.com/montanaflynn/stats"
	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/tw"
	"golang.org/x/term"
)

// topRepoLimit caps the repository rows shown in the console summary.
const topRepoLimit = 15

// repoAggregate is one repository's share of the mined footprint,
// accumulated with explicit passes over the flattened commit sequence.
type repoAggregate struct {
	name       string
	commits    int
	impact     int
	lastCommit string
}

// PrintSummary writes the run summary to stdout in the configured format.
// JSON mode echoes the full dataset; text mode prints headline figures,
// impact statistics and a top-repositories table.
func PrintSummary(dataset *schema.Dataset, cfg *contract.Config, duration time.Duration) error {
	if cfg.Output == schema.JSONOut {
		return writeJSON(os.Stdout, dataset)
	}
	return writeTextSummary(os.Stdout, dataset, cfg, duration)
}

// PrintRepositories lists discovered repository roots.
func PrintRepositories(repos []schema.RepositoryRef, cfg *contract.Config) error {
	if cfg.Output == schema.JSONOut {
		return writeJSON(os.Stdout, repos)
	}
	for _, r := range repos {
		if _, err := fmt.Fprintf(os.Stdout, "%s\t%s\n", r.Name, r.Path); err != nil {
			return err
		}
	}
	_, err := fmt.Fprintf(os.Stdout, "Found %d repositories\n", len(repos))
	return err
}

func writeTextSummary(w io.Writer, dataset *schema.Dataset, cfg *contract.Config, duration time.Duration) error {
	header := func(s string) string { return s }
	if cfg.UseColors {
		header = func(s string) string { return contract.HeaderColor.Sprint(s) }
	}

	if _, err := fmt.Fprintf(w, "%s\n", header("Footprint summary")); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Commits:   %s across %s repositories\n",
		humanize.Comma(int64(len(dataset.DetailedCommits))), humanize.Comma(int64(len(dataset.Repos)))); err != nil {
		return err
	}
	if _, err := fmt.Fprintf(w, "  Active:    %.1f estimated hours (session-gap heuristic)\n", dataset.TotalHours); err != nil {
		return err
	}

	if mean, median, p90, ok := impactStats(dataset.DetailedCommits); ok {
		if _, err := fmt.Fprintf(w, "  Impact:    mean %.0f, median %.0f, p90 %.0f lines per commit\n", mean, median, p90); err != nil {
			return err
		}
	}

	if line := formatTopLanguages(dataset.Languages); line != "" {
		if _, err := fmt.Fprintf(w, "  Languages: %s\n", line); err != nil {
			return err
		}
	}

	if len(dataset.Repos) > 0 {
		if err := writeRepoTable(w, dataset); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(w, "Mining completed in %v. Dataset written to %s\n", duration.Round(time.Millisecond), cfg.OutputFile)
	return err
}

// impactStats computes headline statistics over per-commit impact.
func impactStats(commits []schema.FlatCommit) (mean, median, p90 float64, ok bool) {
	if len(commits) == 0 {
		return 0, 0, 0, false
	}
	impacts := make([]float64, len(commits))
	for i, c := range commits {
		impacts[i] = float64(c.Impact)
	}
	mean, err := stats.Mean(impacts)
	if err != nil {
		return 0, 0, 0, false
	}
	median, err = stats.Median(impacts)
	if err != nil {
		return 0, 0, 0, false
	}
	p90, err = stats.Percentile(impacts, 90)
	if err != nil {
		return 0, 0, 0, false
	}
	return mean, median, p90, true
}

// aggregateRepos folds the flattened commit sequence into per-repository
// totals (group-by-sum) and last-commit dates (group-by-latest). The
// sequence is sorted ascending, so the last occurrence per repo wins.
func aggregateRepos(dataset *schema.Dataset) []repoAggregate {
	byName := make(map[string]*repoAggregate, len(dataset.Repos))
	for _, c := range dataset.DetailedCommits {
		agg, ok := byName[c.Repo]
		if !ok {
			agg = &repoAggregate{name: c.Repo}
			byName[c.Repo] = agg
		}
		agg.commits++
		agg.impact += c.Impact
		agg.lastCommit = c.Date
	}

	ranked := make([]repoAggregate, 0, len(byName))
	for _, agg := range byName {
		ranked = append(ranked, *agg)
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].impact != ranked[j].impact {
			return ranked[i].impact > ranked[j].impact
		}
		return ranked[i].name < ranked[j].name
	})
	return ranked
}

func writeRepoTable(w io.Writer, dataset *schema.Dataset) error {
	ranked := aggregateRepos(dataset)
	if len(ranked) > topRepoLimit {
		ranked = ranked[:topRepoLimit]
	}

	table := tablewriter.NewWriter(w)
	table.Header([]string{"Rank", "Repo", "Commits", "Impact", "Last Commit"})
	table.Configure(func(cfg *tablewriter.Config) {
		cfg.Row.Alignment.Global = tw.AlignRight
	})

	maxName := maxRepoNameWidth()
	var data [][]string
	for i, agg := range ranked {
		data = append(data, []string{
			strconv.Itoa(i + 1),
			truncateName(agg.name, maxName),
			humanize.Comma(int64(agg.commits)),
			humanize.Comma(int64(agg.impact)),
			formatCommitDate(agg.lastCommit),
		})
	}
	if err := table.Bulk(data); err != nil {
		return err
	}
	return table.Render()
}

// formatTopLanguages renders the biggest language buckets on one line.
func formatTopLanguages(languages map[string]int) string {
	type langCount struct {
		name  string
		count int
	}
	ranked := make([]langCount, 0, len(languages))
	for name, count := range languages {
		ranked = append(ranked, langCount{name, count})
	}
	sort.Slice(ranked, func(i, j int) bool {
		if ranked[i].count != ranked[j].count {
			return ranked[i].count > ranked[j].count
		}
		return ranked[i].name < ranked[j].name
	})
	if len(ranked) > 5 {
		ranked = ranked[:5]
	}
	line := ""
	for i, lc := range ranked {
		if i > 0 {
			line += ", "
		}
		line += fmt.Sprintf("%s (%s files)", lc.name, humanize.Comma(int64(lc.count)))
	}
	return line
}

// formatCommitDate shortens an RFC 3339 date for table display.
func formatCommitDate(date string) string {
	if t, err := time.Parse(time.RFC3339, date); err == nil {
		return t.Format("2006-01-02")
	}
	return date
}

// maxRepoNameWidth bounds repository names by the terminal width so the
// table stays readable on narrow terminals.
func maxRepoNameWidth() int {
	width, _, err := term.GetSize(int(os.Stdout.Fd()))
	if err != nil || width <= 0 {
		width = 120
	}
	// Leave room for the numeric columns.
	maxName := width - 50
	if maxName < 20 {
		maxName = 20
	}
	return maxName
}

// truncateName truncates a repository name with an ellipsis prefix.
func truncateName(name string, maxWidth int) string {
	runes := []rune(name)
	if len(runes) > maxWidth && maxWidth > 3 {
		return "..." + string(runes[len(runes)-maxWidth+3:])
	}
	return name
}

// writeJSON is a generic JSON encoder that handles indentation consistently.
func writeJSON(w io.Writer, data any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(data); err != nil {
		return fmt.Errorf("failed to encode JSON: %w", err)
	}
	return nil
}
