package formatters

import (
	"encoding/json"
	"fmt"
	"log"
	"strings"
	"time"

	"maintenance-tracker/internal/schedule"
)

// Row is one rule's evaluation rendered for output. Nullable figures stay
// pointers so JSON output distinguishes "no basis" from zero.
type Row struct {
	Key            string   `json:"key"`
	Label          string   `json:"label"`
	Trigger        string   `json:"trigger"`
	Status         string   `json:"status"`
	LastService    string   `json:"last_service"`
	LastDate       string   `json:"last_date,omitempty"`
	LastMileage    *float64 `json:"last_mileage,omitempty"`
	Baseline       bool     `json:"baseline,omitempty"`
	DueMileage     *int     `json:"due_mileage"`
	DueDate        string   `json:"due_date,omitempty"`
	MilesRemaining *int     `json:"miles_remaining"`
	DaysRemaining  *int     `json:"days_remaining"`
	Urgency        int      `json:"urgency_metric"`
	Note           string   `json:"note,omitempty"`
}

// ReportData is the complete reminder report.
type ReportData struct {
	VehicleName      string   `json:"vehicle_name"`
	GeneratedAt      string   `json:"generated_at"`
	ReferenceDate    string   `json:"reference_date"`
	ReferenceMileage *float64 `json:"reference_mileage"`
	TotalRules       int      `json:"total_rules"`
	OverdueCount     int      `json:"overdue_count"`
	Results          []Row    `json:"results"`
}

// BuildReport converts ranked evaluation results into the report shape
// shared by every output format.
func BuildReport(vehicle string, refMileage *float64, refDate time.Time, results []schedule.EvaluatedRule) ReportData {
	report := ReportData{
		VehicleName:      vehicle,
		GeneratedAt:      time.Now().Format(time.RFC3339),
		ReferenceDate:    schedule.FormatDateUS(refDate),
		ReferenceMileage: refMileage,
		TotalRules:       len(results),
	}

	for _, r := range results {
		row := Row{
			Key:            r.Rule.Key,
			Label:          r.Rule.DisplayLabel(),
			Trigger:        r.Rule.TriggerMode(),
			Status:         string(r.Status),
			LastService:    "(none recorded)",
			MilesRemaining: r.MilesRemaining,
			DaysRemaining:  r.DaysRemaining,
			Urgency:        r.Urgency,
			Note:           r.Rule.Note,
		}
		if r.Matched != nil {
			row.LastService = r.Matched.Description
			row.LastDate = r.Matched.Date
			row.LastMileage = r.Matched.Mileage
			row.Baseline = r.Matched.Baseline
		}
		if r.Projection.DueMileage != nil {
			due := int(*r.Projection.DueMileage)
			row.DueMileage = &due
		}
		if r.Projection.DueDate != nil {
			row.DueDate = schedule.FormatDateUS(*r.Projection.DueDate)
		}
		if r.Status == schedule.StatusOverdue {
			report.OverdueCount++
		}
		report.Results = append(report.Results, row)
	}

	return report
}

// Text prints the report in human-readable form.
func Text(report ReportData) {
	fmt.Printf("%s - Maintenance Reminders\n", report.VehicleName)
	fmt.Printf("Reference: %s | Odometer: %s\n", report.ReferenceDate, formatMileage(report.ReferenceMileage))
	fmt.Printf("%s\n", strings.Repeat("-", 70))

	if len(report.Results) == 0 {
		fmt.Println("No rules configured.")
		return
	}

	for _, row := range report.Results {
		var due []string
		if row.DueMileage != nil {
			due = append(due, fmt.Sprintf("due @ %d mi (in %s mi)", *row.DueMileage, formatInt(row.MilesRemaining)))
		}
		if row.DueDate != "" {
			due = append(due, fmt.Sprintf("due by %s (in %s days)", row.DueDate, formatInt(row.DaysRemaining)))
		}
		if len(due) == 0 {
			due = append(due, "no computed due date (check rule intervals/history)")
		}

		fmt.Printf("[%s] %s: %s\n", row.Status, row.Label, strings.Join(due, "; "))
		last := fmt.Sprintf("  last: %s", row.LastService)
		if row.LastDate != "" {
			last += fmt.Sprintf(" on %s", row.LastDate)
		}
		if row.LastMileage != nil {
			last += fmt.Sprintf(" @ %.0f mi", *row.LastMileage)
		}
		fmt.Println(last)
		if row.Note != "" {
			fmt.Printf("  note: %s\n", row.Note)
		}
		fmt.Println()
	}
}

// JSON prints the report as indented JSON.
func JSON(report ReportData) {
	data, err := json.MarshalIndent(report, "", "  ")
	if err != nil {
		log.Fatalf("Error marshaling JSON: %v", err)
	}
	fmt.Println(string(data))
}

// Markdown renders the report as a digest table suitable for an email
// body. Upcoming rules inside the given margins show as "Due soon".
func Markdown(report ReportData, milesSoon, daysSoon int) string {
	var out strings.Builder

	out.WriteString(fmt.Sprintf("%s reminders as of %s (odometer: %s)\n\n",
		report.VehicleName, report.ReferenceDate, formatMileage(report.ReferenceMileage)))
	out.WriteString("TASK | Next Due (Miles) | Next Due (Date) | Miles Left | Days Left | Status\n")
	out.WriteString("-----|------------------:|-----------------|-----------:|----------:|--------\n")

	for _, row := range report.Results {
		out.WriteString(fmt.Sprintf("%s | %s | %s | %s | %s | %s\n",
			row.Label,
			formatInt(row.DueMileage),
			orDash(row.DueDate),
			formatInt(row.MilesRemaining),
			formatInt(row.DaysRemaining),
			digestStatus(row, milesSoon, daysSoon)))
	}

	return out.String()
}

// digestStatus folds the engine's binary status and the due-soon margins
// into the three-way digest column.
func digestStatus(row Row, milesSoon, daysSoon int) string {
	if row.Status == string(schedule.StatusOverdue) {
		return "OVERDUE"
	}
	if row.MilesRemaining != nil && *row.MilesRemaining <= milesSoon {
		return "Due soon"
	}
	if row.DaysRemaining != nil && *row.DaysRemaining <= daysSoon {
		return "Due soon"
	}
	return "OK"
}

func formatMileage(mi *float64) string {
	if mi == nil {
		return "n/a"
	}
	return fmt.Sprintf("%.0f mi", *mi)
}

func formatInt(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

func orDash(s string) string {
	if s == "" {
		return "-"
	}
	return s
}
