package timeline

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temps-cli/temps/internal/core/entry"
)

var (
	day = time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)
	now = time.Date(2024, 3, 15, 23, 0, 0, 0, time.UTC)
)

func clock(hour, minute int) time.Time {
	return day.Add(time.Duration(hour)*time.Hour + time.Duration(minute)*time.Minute)
}

func closed(project string, start, end time.Time) entry.Entry {
	return entry.Entry{Project: project, Start: start, End: &end}
}

func TestBuild(t *testing.T) {
	t.Run("lead-in aligns to a half-hour boundary", func(t *testing.T) {
		entries := []entry.Entry{closed("a", clock(9, 0), clock(10, 30))}
		slots := Build(entries, now, day)

		// 09:00 is index 36; the lead-in starts at (36/8)*8 - 2 = 30.
		require.NotEmpty(t, slots)
		assert.Equal(t, 30, slots[0].Index)
		for _, s := range slots[:6] {
			assert.True(t, s.Empty())
		}
		assert.Equal(t, 36, slots[6].Index)
		for _, s := range slots[6:] {
			assert.Equal(t, 0, s.Entry)
		}
		// 10:30 is index 42; 41 % 8 < 6, so no trailing padding.
		assert.Equal(t, 41, slots[len(slots)-1].Index)
	})

	t.Run("zero width span is skipped", func(t *testing.T) {
		// 09:01 and 09:06 both round to index 36.
		entries := []entry.Entry{closed("a", clock(9, 1), clock(9, 6))}
		assert.Empty(t, Build(entries, now, day))
	})

	t.Run("short span crossing a rounding boundary stays visible", func(t *testing.T) {
		// 09:07 rounds to 36, 09:12 rounds to 37: one slot.
		entries := []entry.Entry{closed("a", clock(9, 7), clock(9, 12))}
		slots := Build(entries, now, day)
		require.NotEmpty(t, slots)
		assert.Equal(t, 36, slots[len(slots)-1].Index)
		assert.Equal(t, 0, slots[len(slots)-1].Entry)
	})

	t.Run("gap between entries fills with empty slots", func(t *testing.T) {
		entries := []entry.Entry{
			closed("a", clock(9, 0), clock(9, 30)),
			closed("b", clock(10, 0), clock(10, 30)),
		}
		slots := Build(entries, now, day)

		byIndex := make(map[int]int)
		for _, s := range slots {
			byIndex[s.Index] = s.Entry
		}
		assert.Equal(t, 0, byIndex[36])
		assert.Equal(t, 0, byIndex[37])
		assert.Equal(t, -1, byIndex[38])
		assert.Equal(t, -1, byIndex[39])
		assert.Equal(t, 1, byIndex[40])
		assert.Equal(t, 1, byIndex[41])
	})

	t.Run("pads to the next two-hour mark when close", func(t *testing.T) {
		// Ends at 11:45, index 47; 46 % 8 == 6 triggers padding up
		// to index 48.
		entries := []entry.Entry{closed("a", clock(11, 0), clock(11, 45))}
		slots := Build(entries, now, day)
		require.NotEmpty(t, slots)
		assert.Equal(t, 48, slots[len(slots)-1].Index)
		assert.True(t, slots[len(slots)-1].Empty())
	})

	t.Run("entry outside the day contributes nothing", func(t *testing.T) {
		entries := []entry.Entry{
			closed("a", clock(-10, 0), clock(-9, 0)),
			closed("b", clock(30, 0), clock(31, 0)),
		}
		assert.Empty(t, Build(entries, now, day))
	})

	t.Run("entry spanning midnight is clipped to the day", func(t *testing.T) {
		entries := []entry.Entry{closed("a", clock(-1, 0), clock(1, 0))}
		slots := Build(entries, now, day)
		require.NotEmpty(t, slots)
		first := slots[0]
		assert.Equal(t, -2, first.Index) // lead-in before index 0
		assert.Equal(t, 3, slots[len(slots)-1].Index)
	})

	t.Run("open entry extends to now", func(t *testing.T) {
		entries := []entry.Entry{{Project: "a", Start: clock(22, 0)}}
		slots := Build(entries, now, day)
		require.NotEmpty(t, slots)
		// now is 23:00, index 92.
		assert.Equal(t, 91, slots[len(slots)-1].Index)
		assert.Equal(t, 0, slots[len(slots)-1].Entry)
	})
}

func TestRender(t *testing.T) {
	t.Run("labels and clock marks", func(t *testing.T) {
		entries := []entry.Entry{closed("a", clock(9, 0), clock(10, 30))}
		slots := Build(entries, now, day)
		rows := Render(entries, slots, day)

		require.Len(t, rows, 6)
		// Lead-in rows: border at index 30, clock mark at 32, blank at 34.
		assert.Equal(t, "▁▁▁▁▁▁", rows[0])
		assert.Equal(t, "08:00", rows[1])
		assert.Equal(t, "", rows[2])
		// 09:00 starts the span with a label; the later rows of the
		// same project carry none.
		assert.Equal(t, "      ████████ a", rows[3])
		assert.Equal(t, "▁▁▁▁▁▁████████", rows[4])
		assert.Equal(t, "10:00 ████████", rows[5])
	})

	t.Run("half blocks at span edges", func(t *testing.T) {
		entries := []entry.Entry{closed("a", clock(9, 30), clock(10, 15))}
		slots := Build(entries, now, day)
		rows := Render(entries, slots, day)

		joined := strings.Join(rows, "\n")
		assert.Contains(t, joined, "████████ a")
		assert.Contains(t, joined, "▀▀▀▀▀▀▀▀")
		assert.NotContains(t, joined, "▅")
	})

	t.Run("activity starting mid-row uses the lower half block", func(t *testing.T) {
		entries := []entry.Entry{closed("a", clock(9, 15), clock(10, 0))}
		slots := Build(entries, now, day)
		rows := Render(entries, slots, day)

		joined := strings.Join(rows, "\n")
		assert.Contains(t, joined, "▅▅▅▅▅▅▅▅ a")
	})

	t.Run("two projects in one row join with a separator", func(t *testing.T) {
		entries := []entry.Entry{
			closed("a", clock(9, 0), clock(9, 15)),
			closed("b", clock(9, 15), clock(9, 45)),
		}
		slots := Build(entries, now, day)
		rows := Render(entries, slots, day)

		joined := strings.Join(rows, "\n")
		assert.Contains(t, joined, "████████ a / b")
	})

	t.Run("label repeats only on project change", func(t *testing.T) {
		entries := []entry.Entry{
			closed("a", clock(9, 0), clock(10, 0)),
			closed("b", clock(10, 0), clock(11, 0)),
		}
		slots := Build(entries, now, day)
		rows := Render(entries, slots, day)

		joined := strings.Join(rows, "\n")
		assert.Equal(t, 1, strings.Count(joined, " a"))
		assert.Equal(t, 1, strings.Count(joined, " b"))
	})

	t.Run("rendering is deterministic for closed entries", func(t *testing.T) {
		entries := []entry.Entry{
			closed("a", clock(9, 0), clock(12, 30)),
			closed("b", clock(14, 0), clock(16, 45)),
		}
		first := Render(entries, Build(entries, now, day), day)
		second := Render(entries, Build(entries, now, day), day)
		assert.Equal(t, first, second)
	})
}
