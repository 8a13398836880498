// Package importer normalizes raw vehicle-data exports into the clean
// history CSV the engine consumes. Column names in these exports vary
// wildly, so columns are auto-detected unless the caller pins them.
package importer

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"maintenance-tracker/internal/repair"
	"maintenance-tracker/internal/schedule"
)

var (
	milesPattern = regexp.MustCompile(`\b(odo|odometer|mileage|miles|mi)\b`)
	taskPattern  = regexp.MustCompile(`\b(service|task|work|description|item|maintenance|operation)\b`)
	notesPattern = regexp.MustCompile(`\b(note|comment|remark|details|vendor|shop)\b`)
	nonNumeric   = regexp.MustCompile(`[^0-9.]`)
	whitespace   = regexp.MustCompile(`\s+`)
)

// Options pins specific column headers; empty fields are auto-detected.
type Options struct {
	DateCol  string
	MilesCol string
	TaskCol  string
	NotesCol string
}

// Result is the normalized history plus the columns that were used, so a
// dry run can report what detection decided.
type Result struct {
	Events   []schedule.Event
	DateCol  string
	MilesCol string
	TaskCol  string
	NotesCol string
	Skipped  int
}

// Normalize converts raw CSV records (header row first) into chronological
// events. Dates are decoded from digit tokens or MM/DD/YYYY text; rows
// carrying no date, mileage, or task at all are dropped; exact duplicates
// collapse to one.
func Normalize(records [][]string, opts Options) (*Result, error) {
	if len(records) == 0 {
		return nil, fmt.Errorf("input CSV is empty")
	}
	header := records[0]
	rows := records[1:]

	dateIdx, err := resolveColumn(header, opts.DateCol, func() int { return detectDateColumn(rows, header) })
	if err != nil {
		return nil, fmt.Errorf("date column: %w", err)
	}
	milesIdx, err := resolveColumn(header, opts.MilesCol, func() int { return matchHeader(header, milesPattern, dateIdx) })
	if err != nil {
		return nil, fmt.Errorf("miles column: %w", err)
	}
	taskIdx, err := resolveColumn(header, opts.TaskCol, func() int { return matchHeader(header, taskPattern, dateIdx) })
	if err != nil {
		return nil, fmt.Errorf("task column: %w", err)
	}
	notesIdx, err := resolveColumn(header, opts.NotesCol, func() int { return matchHeader(header, notesPattern, dateIdx) })
	if err != nil {
		return nil, fmt.Errorf("notes column: %w", err)
	}

	result := &Result{
		DateCol:  headerName(header, dateIdx),
		MilesCol: headerName(header, milesIdx),
		TaskCol:  headerName(header, taskIdx),
		NotesCol: headerName(header, notesIdx),
	}

	seen := make(map[string]bool)
	for _, row := range rows {
		ev := schedule.Event{
			Date:        normalizeDate(cell(row, dateIdx)),
			Description: whitespace.ReplaceAllString(strings.TrimSpace(cell(row, taskIdx)), " "),
			Note:        strings.TrimSpace(cell(row, notesIdx)),
		}
		if raw := nonNumeric.ReplaceAllString(cell(row, milesIdx), ""); raw != "" {
			if mi, err := strconv.ParseFloat(raw, 64); err == nil {
				ev.Mileage = &mi
			}
		}
		if ev.Date == "" && ev.Description == "" && ev.Mileage == nil {
			result.Skipped++
			continue
		}

		key := strings.Join([]string{ev.Date, mileageKey(ev.Mileage), ev.Description, ev.Note}, "|")
		if seen[key] {
			result.Skipped++
			continue
		}
		seen[key] = true
		result.Events = append(result.Events, ev)
	}

	sort.SliceStable(result.Events, func(i, j int) bool {
		di, _ := result.Events[i].ParsedDate()
		dj, _ := result.Events[j].ParsedDate()
		if !di.Equal(dj) {
			return di.Before(dj)
		}
		return mileageOr(result.Events[i].Mileage) < mileageOr(result.Events[j].Mileage)
	})

	return result, nil
}

// detectDateColumn scores every column by how many of its first hundred
// values parse as digit-token dates and picks the best scorer.
func detectDateColumn(rows [][]string, header []string) int {
	best, bestScore := -1, 0
	for c := range header {
		score := 0
		for i, row := range rows {
			if i >= 100 {
				break
			}
			if _, ok := repair.ParseDigitToken(cell(row, c)); ok {
				score++
			} else if _, ok := schedule.ParseDateUS(cell(row, c)); ok {
				score++
			}
		}
		if score > bestScore {
			best, bestScore = c, score
		}
	}
	return best
}

func resolveColumn(header []string, pinned string, detect func() int) (int, error) {
	if pinned != "" {
		for i, name := range header {
			if strings.EqualFold(strings.TrimSpace(name), pinned) {
				return i, nil
			}
		}
		return -1, fmt.Errorf("column %q not found in header %v", pinned, header)
	}
	return detect(), nil
}

func matchHeader(header []string, pattern *regexp.Regexp, exclude int) int {
	for i, name := range header {
		if i == exclude {
			continue
		}
		if pattern.MatchString(strings.ToLower(strings.TrimSpace(name))) {
			return i
		}
	}
	return -1
}

func normalizeDate(raw string) string {
	if _, ok := schedule.ParseDateUS(raw); ok {
		return strings.TrimSpace(raw)
	}
	if t, ok := repair.ParseDigitToken(raw); ok {
		return schedule.FormatDateUS(t)
	}
	return ""
}

func headerName(header []string, idx int) string {
	if idx < 0 || idx >= len(header) {
		return ""
	}
	return header[idx]
}

func cell(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return row[idx]
}

func mileageOr(mi *float64) float64 {
	if mi == nil {
		return -1
	}
	return *mi
}

func mileageKey(mi *float64) string {
	if mi == nil {
		return ""
	}
	return strconv.FormatFloat(*mi, 'f', -1, 64)
}
