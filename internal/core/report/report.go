// Package report buckets tracked time per project across three window
// shapes: all of history, a single logical day, and a rolling 7-day
// grid. Every function is pure over the entry slice and an explicit
// "now" instant; the clock is never read inside this package.
package report

import (
	"math"
	"sort"
	"time"

	"github.com/temps-cli/temps/internal/core/entry"
)

// DaysPerWeek is the width of the weekly grid.
const DaysPerWeek = 7

// ProjectTotal is one project's accumulated duration, used by the full
// and daily shapes.
type ProjectTotal struct {
	Project string        `json:"project"`
	Total   time.Duration `json:"total"`
}

// ProjectWeek is one project's per-day durations. Days are indexed by
// distance from today: index 0 is today, index 6 is six days ago.
type ProjectWeek struct {
	Project string                     `json:"project"`
	Days    [DaysPerWeek]time.Duration `json:"days"`
}

// DailySummary is the report for a single logical day.
type DailySummary struct {
	Date     time.Time      `json:"date"` // midnight of the reported day
	Projects []ProjectTotal `json:"projects"`
	Total    time.Duration  `json:"total"`
}

// WeeklySummary is the report for the 7 days ending today.
type WeeklySummary struct {
	Date      time.Time                  `json:"date"` // midnight of day index 0
	Projects  []ProjectWeek              `json:"projects"`
	DayTotals [DaysPerWeek]time.Duration `json:"dayTotals"`
	Total     time.Duration              `json:"total"`
}

// Ongoing describes the currently open entry for report footers.
type Ongoing struct {
	Project string        `json:"project"`
	Elapsed time.Duration `json:"elapsed"`
}

// OngoingOf returns footer info for the open entry, or nil when the
// last entry is closed.
func OngoingOf(entries []entry.Entry, now time.Time) *Ongoing {
	if len(entries) == 0 {
		return nil
	}
	last := entries[len(entries)-1]
	if !last.Ongoing() {
		return nil
	}
	return &Ongoing{Project: last.Project, Elapsed: now.Sub(last.Start)}
}

// Full accumulates every entry's span into its project bucket, with an
// open end counting up to now. No day boundary applies.
func Full(entries []entry.Entry, now time.Time) []ProjectTotal {
	totals := make(map[string]time.Duration)
	for _, e := range entries {
		totals[e.Project] += clampSpan(e.Duration(now))
	}
	return sortTotals(totals)
}

// Daily reports the logical day containing now-offset. An entry counts
// only when its offset-shifted end falls on that day, and its span is
// clipped to start no earlier than the day boundary. Entries ending on
// any other day are excluded entirely, even when they overlap today;
// a daily report shows only the day an entry ended on.
func Daily(entries []entry.Entry, now time.Time, offset time.Duration) DailySummary {
	today := dayStart(now.Add(-offset))
	totals := make(map[string]time.Duration)
	var grand time.Duration

	for _, e := range entries {
		end := e.EndOr(now).Add(-offset)
		if !dayStart(end).Equal(today) {
			continue
		}
		start := e.Start.Add(-offset)
		if start.Before(today) {
			start = today
		}
		d := clampSpan(end.Sub(start))
		totals[e.Project] += d
		grand += d
	}

	return DailySummary{Date: today, Projects: sortTotals(totals), Total: grand}
}

// Weekly splits every entry across the day windows it overlaps within
// the 7 days ending today, intersecting the offset-shifted span with
// each day's [start, end) window. Spans older than six days fall
// outside the index range and drop out by construction.
func Weekly(entries []entry.Entry, now time.Time, offset time.Duration) WeeklySummary {
	today := dayStart(now.Add(-offset))
	weeks := make(map[string]*[DaysPerWeek]time.Duration)
	var summary WeeklySummary
	summary.Date = today

	for _, e := range entries {
		start := e.Start.Add(-offset)
		end := e.EndOr(now).Add(-offset)

		from := daysBetween(dayStart(end), today)
		to := daysBetween(dayStart(start), today)
		if to > DaysPerWeek-1 {
			to = DaysPerWeek - 1
		}
		for delta := from; delta <= to; delta++ {
			if delta < 0 {
				continue
			}
			winStart := today.AddDate(0, 0, -delta)
			winEnd := winStart.AddDate(0, 0, 1)

			s, en := start, end
			if s.Before(winStart) {
				s = winStart
			}
			if en.After(winEnd) {
				en = winEnd
			}
			d := clampSpan(en.Sub(s))

			days, ok := weeks[e.Project]
			if !ok {
				days = new([DaysPerWeek]time.Duration)
				weeks[e.Project] = days
			}
			days[delta] += d
			summary.DayTotals[delta] += d
			summary.Total += d
		}
	}

	projects := make([]ProjectWeek, 0, len(weeks))
	for project, days := range weeks {
		projects = append(projects, ProjectWeek{Project: project, Days: *days})
	}
	sort.Slice(projects, func(i, j int) bool {
		return projects[i].Project < projects[j].Project
	})
	summary.Projects = projects
	return summary
}

// dayStart returns midnight of t's calendar date, in t's location.
func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

// daysBetween counts calendar days from a to b, both midnights.
// Rounding absorbs DST transitions where a day is 23 or 25 hours.
func daysBetween(a, b time.Time) int {
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// clampSpan floors a span at zero. Negative spans cannot occur when
// the log invariants hold; clamping keeps reports robust to minor
// clock skew instead of failing.
func clampSpan(d time.Duration) time.Duration {
	if d < 0 {
		return 0
	}
	return d
}

func sortTotals(totals map[string]time.Duration) []ProjectTotal {
	result := make([]ProjectTotal, 0, len(totals))
	for project, total := range totals {
		result = append(result, ProjectTotal{Project: project, Total: total})
	}
	sort.Slice(result, func(i, j int) bool {
		return result[i].Project < result[j].Project
	})
	return result
}
