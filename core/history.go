package core

import (
	"context"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/mlcortez/footprint/internal/contract"
	"github.com/mlcortez/footprint/schema"
)

// headerPrefix marks the start of a commit in the raw log output.
// See contract.CommitLogFormat for the full line layout.
const headerPrefix = "HEADER|"

// binarySentinel is what numstat reports for both counts of a binary file.
const binarySentinel = "-"

// ParseHistory extracts the repository's complete commit history across
// all refs, excluding merges, with per-file churn filtered down to
// countable files. Only commits whose author the matcher accepts are
// returned. Output follows the log's traversal order (most-recent-first);
// callers needing chronological order must re-sort.
func ParseHistory(ctx context.Context, client contract.GitClient, repo schema.RepositoryRef, matcher *IdentityMatcher, filters contract.FilterConfig) ([]schema.CommitRecord, error) {
	out, err := client.CommitLog(ctx, repo.Path)
	if err != nil {
		return nil, err
	}
	return parseCommitLog(out, repo.Name, matcher, filters), nil
}

// parseCommitLog walks the raw log text commit by commit. Malformed
// headers drop the commit; malformed stat lines drop only that line.
func parseCommitLog(out []byte, repoName string, matcher *IdentityMatcher, filters contract.FilterConfig) []schema.CommitRecord {
	var records []schema.CommitRecord
	var current *schema.CommitRecord

	flush := func() {
		if current != nil && matcher.Matches(current.AuthorName, current.AuthorEmail) {
			records = append(records, *current)
		}
		current = nil
	}

	for _, line := range strings.Split(string(out), "\n") {
		line = strings.TrimRight(line, "\r")
		if strings.HasPrefix(line, headerPrefix) {
			flush()
			current = parseCommitHeader(line, repoName)
			continue
		}
		if current == nil || strings.TrimSpace(line) == "" {
			continue
		}
		applyStatLine(current, line, filters)
	}
	flush()

	return records
}

// parseCommitHeader parses a HEADER|hash|date|name|email line. Returns nil
// when the line is structurally broken or the date does not parse; the
// following stat lines are then ignored until the next header.
func parseCommitHeader(line, repoName string) *schema.CommitRecord {
	parts := strings.SplitN(line, "|", 5)
	if len(parts) < 5 {
		return nil
	}
	ts, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return nil
	}
	return &schema.CommitRecord{
		Hash:        parts[1],
		Timestamp:   ts,
		AuthorName:  strings.TrimSpace(parts[3]),
		AuthorEmail: strings.ToLower(strings.TrimSpace(parts[4])),
		RepoName:    repoName,
	}
}

// applyStatLine folds one numstat line ("added\tdeleted\tpath") into the
// commit. Filtered files are skipped entirely; binary files count toward
// FilesTouched but contribute zero lines; unparsable numeric fields
// discard the line without affecting the rest of the commit.
func applyStatLine(c *schema.CommitRecord, line string, filters contract.FilterConfig) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return
	}
	addStr, delStr, path := parts[0], parts[1], strings.TrimSpace(parts[2])

	if _, ok := filters.IgnoreBasenames[filepath.Base(path)]; ok {
		return
	}
	if hasIgnoredExtension(path, filters.IgnoreExtensions) {
		return
	}

	added, okAdd := parseChurnValue(addStr)
	deleted, okDel := parseChurnValue(delStr)
	if !okAdd || !okDel {
		return
	}
	c.Additions += added
	c.Deletions += deleted
	c.FilesTouched++
}

// parseChurnValue converts a numstat count to an int. The binary sentinel
// maps to zero lines; anything else non-numeric marks the line malformed.
func parseChurnValue(s string) (int, bool) {
	if s == binarySentinel {
		return 0, true
	}
	val, err := strconv.Atoi(s)
	if err != nil || val < 0 {
		return 0, false
	}
	return val, true
}

// hasIgnoredExtension checks the file's extension (case-insensitive)
// against the ignore set, including compound entries like ".min.js" that
// span the last two extension segments.
func hasIgnoredExtension(path string, exts map[string]struct{}) bool {
	base := strings.ToLower(filepath.Base(path))
	ext := filepath.Ext(base)
	if ext == "" {
		return false
	}
	if _, ok := exts[ext]; ok {
		return true
	}
	if prev := filepath.Ext(strings.TrimSuffix(base, ext)); prev != "" {
		if _, ok := exts[prev+ext]; ok {
			return true
		}
	}
	return false
}
