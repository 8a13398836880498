package loaders

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"strings"

	"maintenance-tracker/internal/schedule"
)

// historyHeader is the column layout of the service history CSV.
var historyHeader = []string{"date", "mileage", "service", "notes"}

// LoadHistory reads the service history CSV into an immutable event
// snapshot. Dates are kept as raw text (the engine parses them and treats
// failures as "date unknown"); a malformed mileage degrades to nil rather
// than failing the load. An unreadable file is fatal for the caller.
func LoadHistory(filename string) ([]schedule.Event, error) {
	file, err := os.Open(filename)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	records, err := reader.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("failed to parse history CSV: %w", err)
	}
	if len(records) == 0 {
		return nil, nil
	}

	cols, err := headerIndex(records[0])
	if err != nil {
		return nil, err
	}

	var events []schedule.Event
	for _, row := range records[1:] {
		ev := schedule.Event{
			Date:        field(row, cols["date"]),
			Description: field(row, cols["service"]),
			Note:        field(row, cols["notes"]),
		}
		if raw := field(row, cols["mileage"]); raw != "" {
			if mi, err := strconv.ParseFloat(raw, 64); err == nil && mi >= 0 {
				ev.Mileage = &mi
			}
		}
		if ev.Date == "" && ev.Description == "" && ev.Mileage == nil {
			continue
		}
		events = append(events, ev)
	}

	return events, nil
}

// AppendEvent appends one service record to the history CSV, creating the
// file with a header when it does not exist. Appending never rewrites
// existing rows: loaded snapshots stay valid.
func AppendEvent(filename string, ev schedule.Event) error {
	info, err := os.Stat(filename)
	writeHeader := os.IsNotExist(err) || (err == nil && info.Size() == 0)

	file, err := os.OpenFile(filename, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0600)
	if err != nil {
		return fmt.Errorf("failed to open history file for append: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if writeHeader {
		if err := writer.Write(historyHeader); err != nil {
			return fmt.Errorf("failed to write history header: %w", err)
		}
	}

	mileage := ""
	if ev.Mileage != nil {
		mileage = strconv.FormatFloat(*ev.Mileage, 'f', -1, 64)
	}
	if err := writer.Write([]string{ev.Date, mileage, ev.Description, ev.Note}); err != nil {
		return fmt.Errorf("failed to write history record: %w", err)
	}

	writer.Flush()
	return writer.Error()
}

// WriteHistory writes a complete history CSV, replacing any existing file.
// Used by the importer when materializing a normalized snapshot; routine
// logging goes through AppendEvent instead.
func WriteHistory(filename string, events []schedule.Event) error {
	file, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("failed to create history file: %w", err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(historyHeader); err != nil {
		return fmt.Errorf("failed to write history header: %w", err)
	}
	for _, ev := range events {
		mileage := ""
		if ev.Mileage != nil {
			mileage = strconv.FormatFloat(*ev.Mileage, 'f', -1, 64)
		}
		if err := writer.Write([]string{ev.Date, mileage, ev.Description, ev.Note}); err != nil {
			return fmt.Errorf("failed to write history record: %w", err)
		}
	}

	writer.Flush()
	return writer.Error()
}

// headerIndex maps the required history columns to their positions. The
// notes column is optional.
func headerIndex(header []string) (map[string]int, error) {
	cols := map[string]int{"date": -1, "mileage": -1, "service": -1, "notes": -1}
	for i, name := range header {
		key := strings.ToLower(strings.TrimSpace(name))
		if _, known := cols[key]; known {
			cols[key] = i
		}
	}
	for _, required := range []string{"date", "mileage", "service"} {
		if cols[required] < 0 {
			return nil, fmt.Errorf("history CSV is missing required column %q (have %v)", required, header)
		}
	}
	return cols, nil
}

func field(row []string, idx int) string {
	if idx < 0 || idx >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[idx])
}
