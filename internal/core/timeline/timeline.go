// Package timeline renders one day of tracked time as a block-glyph
// chart at quarter-hour resolution. Building slots and rendering rows
// are separate steps so the slot layout stays testable on its own.
package timeline

import (
	"math"
	"strings"
	"time"

	"github.com/temps-cli/temps/internal/core/entry"
)

const (
	// slotMinutes is the width of one timeline cell.
	slotMinutes = 15
	// slotsPerMark is the number of slots between clock labels (2h).
	slotsPerMark = 8
	// blockWidth is the number of glyphs drawn per row.
	blockWidth = 8

	fullBlock      = "█"
	upperHalfBlock = "▀"
	lowerHalfBlock = "▅"
	bottomBorder   = "▁▁▁▁▁▁"
	labelSeparator = " / "
)

// Slot is one quarter-hour cell. Entry indexes into the source entry
// slice and is -1 for an empty cell, so a slot can never diverge from
// the list it was built from within a render call.
type Slot struct {
	Index int
	Entry int
}

// Empty reports whether no project occupies the slot.
func (s Slot) Empty() bool {
	return s.Entry < 0
}

// Build converts the entries overlapping the day starting at dayStart
// into a contiguous slot sequence. Entries whose endpoints round to the
// same quarter-hour index are invisible at this resolution and are
// skipped. The sequence begins with a short blank lead-in aligned to a
// half-hour boundary and, when the last entry ends within two slots of
// a two-hour mark, is padded out to that mark.
func Build(entries []entry.Entry, now, dayStart time.Time) []Slot {
	dayEnd := dayStart.AddDate(0, 0, 1)

	var slots []Slot
	prevEnd := -1
	started := false

	for i, e := range entries {
		start := e.Start
		end := e.EndOr(now)

		if !start.Before(dayEnd) || end.Before(dayStart) {
			continue
		}

		s := slotIndex(laterOf(start, dayStart), dayStart)
		en := slotIndex(earlierOf(end, dayEnd), dayStart)
		if s == en {
			// Too short to show.
			continue
		}

		if !started {
			// Lead-in starts slightly before the first visible
			// entry, on a half-hour boundary so the clock labels
			// line up.
			prevEnd = (s/slotsPerMark)*slotsPerMark - 2
			started = true
		}
		for j := prevEnd; j < s; j++ {
			slots = append(slots, Slot{Index: j, Entry: -1})
		}
		for j := s; j < en; j++ {
			slots = append(slots, Slot{Index: j, Entry: i})
		}
		prevEnd = en
	}

	if len(slots) > 0 {
		last := slots[len(slots)-1].Index
		if last%slotsPerMark >= slotsPerMark-2 {
			for j := last + 1; j <= (last/slotsPerMark+1)*slotsPerMark; j++ {
				slots = append(slots, Slot{Index: j, Entry: -1})
			}
		}
	}

	return slots
}

// Render draws the slots as half-hour rows. Each row shows a full,
// upper-half, or lower-half block depending on which of its two slots
// are occupied, labeled with the project name on transitions only.
// Every fourth row carries the clock time and the row before a
// two-hour mark a light bottom border.
func Render(entries []entry.Entry, slots []Slot, dayStart time.Time) []string {
	var rows []string
	previous := ""

	for at := 0; at < len(slots); at += 2 {
		pair := slots[at:min(at+2, len(slots))]
		i := pair[0].Index

		var row strings.Builder
		switch {
		case i%slotsPerMark == 0:
			row.WriteString(dayStart.Add(time.Duration(i) * slotMinutes * time.Minute).Format("15:04"))
			row.WriteString(" ")
		case i%slotsPerMark == slotsPerMark-2:
			row.WriteString(bottomBorder)
		default:
			row.WriteString(strings.Repeat(" ", 6))
		}

		first, second := pair[0], Slot{Entry: -1}
		if len(pair) == 2 {
			second = pair[1]
		}

		switch {
		case first.Empty() && second.Empty():
			previous = ""
		case first.Empty():
			p1 := entries[second.Entry].Project
			row.WriteString(strings.Repeat(lowerHalfBlock, blockWidth))
			row.WriteString(" ")
			row.WriteString(p1)
			previous = p1
		case second.Empty():
			p0 := entries[first.Entry].Project
			row.WriteString(strings.Repeat(upperHalfBlock, blockWidth))
			if previous != p0 {
				row.WriteString(" ")
				row.WriteString(p0)
			}
			previous = ""
		default:
			p0 := entries[first.Entry].Project
			p1 := entries[second.Entry].Project
			row.WriteString(strings.Repeat(fullBlock, blockWidth))
			if previous != p0 {
				row.WriteString(" ")
				row.WriteString(p0)
				if p0 != p1 {
					row.WriteString(labelSeparator)
					row.WriteString(p1)
				}
			} else if p0 != p1 {
				row.WriteString(" ")
				row.WriteString(p1)
			}
			previous = p1
		}

		rows = append(rows, strings.TrimRight(row.String(), " "))
	}

	return rows
}

// slotIndex rounds an instant within the day to its quarter-hour index.
func slotIndex(t, dayStart time.Time) int {
	return int(math.Round(t.Sub(dayStart).Minutes() / slotMinutes))
}

func laterOf(a, b time.Time) time.Time {
	if a.After(b) {
		return a
	}
	return b
}

func earlierOf(a, b time.Time) time.Time {
	if a.Before(b) {
		return a
	}
	return b
}
