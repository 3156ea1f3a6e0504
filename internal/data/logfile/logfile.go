// Package logfile reads and writes the tracking log: a tab-separated
// file with one entry per line and a header row. Timestamps are
// RFC3339. An empty end field marks the ongoing entry. The file is the
// single source of truth and stays hand-editable (`temps edit`).
package logfile

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	log "github.com/sirupsen/logrus"

	"github.com/temps-cli/temps/internal/core/entry"
)

var header = []string{"project", "start", "end"}

// Read loads and validates every entry from path. A missing file is an
// empty log. Timestamps are converted into loc so day boundaries follow
// the configured timezone.
func Read(path string, loc *time.Location) ([]entry.Entry, error) {
	f, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			log.Debugf("tracking file %s does not exist, starting empty", path)
			return nil, nil
		}
		return nil, fmt.Errorf("could not open tracking file: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = '\t'
	r.FieldsPerRecord = -1

	var entries []entry.Entry
	line := 0
	for {
		record, err := r.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("could not read entries: %w", err)
		}
		line++
		if line == 1 && isHeader(record) {
			continue
		}

		e, err := parseRecord(record, loc)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", path, line, err)
		}
		entries = append(entries, e)
	}

	if err := entry.Validate(entries); err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return entries, nil
}

// Write rewrites the whole log atomically: entries go to a temp file in
// the same directory which then replaces the original.
func Write(path string, entries []entry.Entry) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, ".temps-*.tsv")
	if err != nil {
		return fmt.Errorf("could not open tracking file: %w", err)
	}
	defer os.Remove(tmp.Name())

	w := csv.NewWriter(tmp)
	w.Comma = '\t'

	if err := w.Write(header); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write entry to file: %w", err)
	}
	for _, e := range entries {
		end := ""
		if e.End != nil {
			end = e.End.Format(time.RFC3339)
		}
		record := []string{e.Project, e.Start.Format(time.RFC3339), end}
		if err := w.Write(record); err != nil {
			tmp.Close()
			return fmt.Errorf("could not write entry to file: %w", err)
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write entry to file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not write tracking file: %w", err)
	}
	if err := os.Chmod(tmp.Name(), 0644); err != nil {
		return fmt.Errorf("could not write tracking file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not write tracking file: %w", err)
	}
	log.Debugf("wrote %d entries to %s", len(entries), path)
	return nil
}

func parseRecord(record []string, loc *time.Location) (entry.Entry, error) {
	if len(record) < 2 || len(record) > 3 {
		return entry.Entry{}, fmt.Errorf("%w: expected 2 or 3 fields, got %d", entry.ErrInvalidEntry, len(record))
	}

	start, err := time.Parse(time.RFC3339, record[1])
	if err != nil {
		return entry.Entry{}, fmt.Errorf("%w: bad start date %q: %v", entry.ErrInvalidEntry, record[1], err)
	}

	e := entry.Entry{Project: record[0], Start: start.In(loc)}
	if len(record) == 3 && record[2] != "" {
		end, err := time.Parse(time.RFC3339, record[2])
		if err != nil {
			return entry.Entry{}, fmt.Errorf("%w: bad end date %q: %v", entry.ErrInvalidEntry, record[2], err)
		}
		endLoc := end.In(loc)
		e.End = &endLoc
	}
	return e, nil
}

func isHeader(record []string) bool {
	return len(record) == len(header) && record[0] == header[0] &&
		record[1] == header[1] && record[2] == header[2]
}
