// Package agg has aggregation logic for Git activity data.
package agg

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/huangsam/workscope/schema"
)

// commitHeaderPrefix marks commit header lines in the log output.
const commitHeaderPrefix = "--"

// rollupDateFormat is the calendar-day bucket key.
const rollupDateFormat = "2006-01-02"

// BuildActivity parses raw 'git log --numstat' output and aggregates it into
// a GitActivity: the commit listing, running raw added/removed/files-changed
// totals, per-day rollups, and the global partitioned counts.
func BuildActivity(out []byte) schema.GitActivity {
	commits, stats, rollups := parseCommitLog(out)

	activity := schema.GitActivity{
		CommitCount:  len(commits),
		Commits:      commits,
		DailyRollups: rollups,
	}
	for _, st := range stats {
		activity.RawLinesAdded += st.LinesAdded
		activity.RawLinesRemoved += st.LinesRemoved
		activity.FilesChanged += st.FilesChanged
	}

	// The partition step runs once over the global totals, never per commit.
	activity.LinesAdded, activity.LinesRemoved, activity.LinesModified =
		Partition(activity.RawLinesAdded, activity.RawLinesRemoved)
	return activity
}

// Partition splits raw added/removed totals with the modification inference:
// modified = min(added, removed), and the complements shrink accordingly.
func Partition(rawAdded, rawRemoved int) (added, removed, modified int) {
	modified = min(rawAdded, rawRemoved)
	return rawAdded - modified, rawRemoved - modified, modified
}

// parseCommitLog processes the git log output line by line. Header lines
// carry commit metadata; the numstat lines that follow accumulate into that
// commit's diff stat and its calendar-day rollup.
func parseCommitLog(out []byte) ([]schema.Commit, []schema.DiffStat, []schema.DailyRollup) {
	var commits []schema.Commit
	var stats []schema.DiffStat
	dayMap := make(map[string]*schema.DailyRollup)

	var current *schema.DiffStat
	var currentDay *schema.DailyRollup

	for _, l := range strings.Split(string(out), "\n") {
		l = strings.Trim(l, " \t\r\n")

		if strings.HasPrefix(l, commitHeaderPrefix) {
			commit, ok := parseCommitHeader(l)
			if !ok {
				// Malformed header: skip its stat lines too.
				current = nil
				currentDay = nil
				continue
			}
			commits = append(commits, commit)
			stats = append(stats, schema.DiffStat{CommitHash: commit.Hash})
			current = &stats[len(stats)-1]

			day := commit.Timestamp.Format(rollupDateFormat)
			if _, ok := dayMap[day]; !ok {
				dayMap[day] = &schema.DailyRollup{Date: day}
			}
			currentDay = dayMap[day]
			continue
		}
		if l == "" || current == nil {
			continue
		}

		add, del, ok := parseStatsLine(l)
		if !ok {
			continue
		}
		current.FilesChanged++
		current.LinesAdded += add
		current.LinesRemoved += del

		currentDay.FilesChanged++
		currentDay.LinesAdded += add
		currentDay.LinesRemoved += del
	}

	return commits, stats, finalizeRollups(dayMap)
}

// parseCommitHeader extracts hash, author, timestamp and subject from a
// header line of the form --hash|author|date|subject.
func parseCommitHeader(line string) (schema.Commit, bool) {
	parts := strings.SplitN(line[len(commitHeaderPrefix):], "|", 4)
	if len(parts) < 4 {
		return schema.Commit{}, false
	}
	ts, err := time.Parse(time.RFC3339, parts[2])
	if err != nil {
		return schema.Commit{}, false
	}
	return schema.Commit{
		Hash:      parts[0],
		Author:    parts[1],
		Subject:   parts[3],
		Timestamp: ts.Local(),
	}, true
}

// parseStatsLine parses one numstat line. Binary-file diffs use a "-"
// placeholder: the line still counts as a changed file, but contributes
// nothing to the numeric sums.
func parseStatsLine(line string) (add, del int, ok bool) {
	parts := strings.SplitN(line, "\t", 3)
	if len(parts) < 3 {
		return 0, 0, false
	}
	return parseChurnValue(parts[0]), parseChurnValue(parts[1]), true
}

// parseChurnValue converts a churn string to int, handling "-" as 0.
func parseChurnValue(s string) int {
	if s == "-" {
		return 0
	}
	if val, err := strconv.Atoi(s); err == nil && val >= 0 {
		return val
	}
	return 0
}

// finalizeRollups orders the day buckets chronologically and applies the
// day-level modification inference to each bucket.
func finalizeRollups(dayMap map[string]*schema.DailyRollup) []schema.DailyRollup {
	rollups := make([]schema.DailyRollup, 0, len(dayMap))
	for _, r := range dayMap {
		_, _, r.LinesModified = Partition(r.LinesAdded, r.LinesRemoved)
		rollups = append(rollups, *r)
	}
	sort.Slice(rollups, func(i, j int) bool {
		return rollups[i].Date < rollups[j].Date
	})
	return rollups
}
