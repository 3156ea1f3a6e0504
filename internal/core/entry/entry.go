package entry

import (
	"errors"
	"fmt"
	"time"
)

var (
	// ErrInvalidEntry wraps every validation failure raised while
	// constructing or closing an entry.
	ErrInvalidEntry = errors.New("invalid entry")

	// ErrNoOngoing is returned by operations that require an open entry.
	ErrNoOngoing = errors.New("no ongoing entry")

	// ErrNoEntries is returned by operations on an empty log.
	ErrNoEntries = errors.New("no previous entry exists")
)

// Entry is one tracked span of work on a project. A nil End marks the
// entry as ongoing.
type Entry struct {
	Project string     `json:"project"`
	Start   time.Time  `json:"start"`
	End     *time.Time `json:"end,omitempty"`
}

// StartFrom creates an open entry beginning at start. Sub-second
// precision is discarded. Future start instants and empty project names
// are rejected.
func StartFrom(project string, start, now time.Time) (Entry, error) {
	if project == "" {
		return Entry{}, fmt.Errorf("%w: empty project name", ErrInvalidEntry)
	}
	if start.After(now) {
		return Entry{}, fmt.Errorf("%w: start date %s is in the future", ErrInvalidEntry, start.Format(time.RFC3339))
	}
	return Entry{Project: project, Start: start.Truncate(time.Second)}, nil
}

// StopAt closes the entry at end. The end instant must not precede the
// start and must not lie in the future.
func (e *Entry) StopAt(end, now time.Time) error {
	if e.End != nil {
		return fmt.Errorf("%w: entry already stopped", ErrInvalidEntry)
	}
	if end.After(now) {
		return fmt.Errorf("%w: end date %s is in the future", ErrInvalidEntry, end.Format(time.RFC3339))
	}
	if end.Before(e.Start) {
		return fmt.Errorf("%w: end date is before start date", ErrInvalidEntry)
	}
	t := end.Truncate(time.Second)
	e.End = &t
	return nil
}

// Ongoing reports whether the entry is still tracking time.
func (e Entry) Ongoing() bool {
	return e.End == nil
}

// EndOr returns the end instant, or now for an ongoing entry.
func (e Entry) EndOr(now time.Time) time.Time {
	if e.End != nil {
		return *e.End
	}
	return now
}

// Duration returns the elapsed span, treating an open end as now.
func (e Entry) Duration(now time.Time) time.Duration {
	return e.EndOr(now).Sub(e.Start)
}

// Validate checks the log-wide invariants on an ordered entry slice:
// every entry well formed, non-decreasing start order, and at most one
// ongoing entry which must be last.
func Validate(entries []Entry) error {
	for i, e := range entries {
		if e.Project == "" {
			return fmt.Errorf("%w: entry %d has an empty project name", ErrInvalidEntry, i+1)
		}
		if e.End != nil && e.End.Before(e.Start) {
			return fmt.Errorf("%w: entry %d ends before it starts", ErrInvalidEntry, i+1)
		}
		if e.End == nil && i != len(entries)-1 {
			return fmt.Errorf("%w: entry %d is ongoing but not last", ErrInvalidEntry, i+1)
		}
		if i > 0 && e.Start.Before(entries[i-1].Start) {
			return fmt.Errorf("%w: entry %d starts before the previous entry", ErrInvalidEntry, i+1)
		}
	}
	return nil
}
