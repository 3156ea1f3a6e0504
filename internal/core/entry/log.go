package entry

import (
	"fmt"
	"time"
)

// Log is the ordered, append-mostly sequence of entries backing every
// report. Mutations only ever touch the tail: a new entry is appended,
// the last entry is closed, or the last entry is cancelled while still
// open.
type Log struct {
	entries []Entry
}

// NewLog wraps an already validated entry slice.
func NewLog(entries []Entry) *Log {
	return &Log{entries: entries}
}

// Entries exposes the backing slice. Callers treat it as read-only.
func (l *Log) Entries() []Entry {
	return l.entries
}

// Len returns the number of entries.
func (l *Log) Len() int {
	return len(l.entries)
}

// Ongoing returns the open entry, or nil if the last entry is closed.
func (l *Log) Ongoing() *Entry {
	if len(l.entries) == 0 {
		return nil
	}
	last := &l.entries[len(l.entries)-1]
	if !last.Ongoing() {
		return nil
	}
	return last
}

// LastProject returns the most recent entry's project name, or "" for
// an empty log. Used to default the project on `start`.
func (l *Log) LastProject() string {
	if len(l.entries) == 0 {
		return ""
	}
	return l.entries[len(l.entries)-1].Project
}

// Start appends a new open entry, closing any ongoing entry at now
// first. It returns the project that was stopped, if any. The start
// instant must not precede the previous entry's start; entries are
// kept in non-decreasing start order, and a log written out of order
// would be rejected on the next load.
func (l *Log) Start(project string, start, now time.Time) (stopped string, err error) {
	if len(l.entries) > 0 && start.Before(l.entries[len(l.entries)-1].Start) {
		return "", fmt.Errorf("%w: start date is before the previous entry", ErrInvalidEntry)
	}
	if open := l.Ongoing(); open != nil {
		if err := open.StopAt(now, now); err != nil {
			return "", err
		}
		stopped = open.Project
	}
	e, err := StartFrom(project, start, now)
	if err != nil {
		return stopped, err
	}
	l.entries = append(l.entries, e)
	return stopped, nil
}

// Stop closes the ongoing entry at the given instant.
func (l *Log) Stop(at, now time.Time) (*Entry, error) {
	if len(l.entries) == 0 {
		return nil, ErrNoEntries
	}
	open := l.Ongoing()
	if open == nil {
		return nil, ErrNoOngoing
	}
	if err := open.StopAt(at, now); err != nil {
		return nil, err
	}
	return open, nil
}

// Cancel removes the ongoing entry and returns it.
func (l *Log) Cancel() (Entry, error) {
	if len(l.entries) == 0 {
		return Entry{}, ErrNoEntries
	}
	last := l.entries[len(l.entries)-1]
	if !last.Ongoing() {
		return Entry{}, ErrNoOngoing
	}
	l.entries = l.entries[:len(l.entries)-1]
	return last, nil
}
