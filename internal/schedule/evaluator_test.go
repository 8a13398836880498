package schedule

import "testing"

func TestEvaluate(t *testing.T) {
	engine := NewEngine()
	refDate, _ := ParseDateUS("07/15/2023")
	due, _ := ParseDateUS("07/01/2023")
	futureDue, _ := ParseDateUS("09/01/2023")

	tests := []struct {
		name       string
		projection DueProjection
		refMileage *float64
		wantMiles  *int
		wantDays   *int
		wantStatus Status
		wantUrg    int
	}{
		{
			name:       "both overdue",
			projection: DueProjection{DueMileage: fptr(15000), DueDate: &due},
			refMileage: fptr(15500),
			wantMiles:  iptr(-500),
			wantDays:   iptr(-14),
			wantStatus: StatusOverdue,
			wantUrg:    -500,
		},
		{
			name:       "mileage overdue alone suffices",
			projection: DueProjection{DueMileage: fptr(15000), DueDate: &futureDue},
			refMileage: fptr(15000),
			wantMiles:  iptr(0),
			wantDays:   iptr(48),
			wantStatus: StatusOverdue,
			wantUrg:    0,
		},
		{
			name:       "upcoming takes tighter margin",
			projection: DueProjection{DueMileage: fptr(15540), DueDate: &futureDue},
			refMileage: fptr(15500),
			wantMiles:  iptr(40),
			wantDays:   iptr(48),
			wantStatus: StatusUpcoming,
			wantUrg:    40,
		},
		{
			name:       "days margin can be the minimum",
			projection: DueProjection{DueMileage: fptr(25000), DueDate: &futureDue},
			refMileage: fptr(15500),
			wantMiles:  iptr(9500),
			wantDays:   iptr(48),
			wantStatus: StatusUpcoming,
			wantUrg:    48,
		},
		{
			name:       "missing reference mileage nulls mileage figures only",
			projection: DueProjection{DueMileage: fptr(15000), DueDate: &futureDue},
			refMileage: nil,
			wantMiles:  nil,
			wantDays:   iptr(48),
			wantStatus: StatusUpcoming,
			wantUrg:    48,
		},
		{
			name:       "no due basis at all",
			projection: DueProjection{},
			refMileage: fptr(15500),
			wantMiles:  nil,
			wantDays:   nil,
			wantStatus: StatusUpcoming,
			wantUrg:    UrgencyUnknown,
		},
		{
			name:       "fractional mileage truncates",
			projection: DueProjection{DueMileage: fptr(15000.9)},
			refMileage: fptr(14000.2),
			wantMiles:  iptr(1000),
			wantDays:   nil,
			wantStatus: StatusUpcoming,
			wantUrg:    1000,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			miles, days, status, urgency := engine.Evaluate(tt.projection, tt.refMileage, refDate)
			checkIntPtr(t, "miles remaining", miles, tt.wantMiles)
			checkIntPtr(t, "days remaining", days, tt.wantDays)
			if status != tt.wantStatus {
				t.Errorf("status = %s, want %s", status, tt.wantStatus)
			}
			if urgency != tt.wantUrg {
				t.Errorf("urgency = %d, want %d", urgency, tt.wantUrg)
			}
		})
	}
}

func iptr(v int) *int { return &v }

func checkIntPtr(t *testing.T, label string, got, want *int) {
	t.Helper()
	switch {
	case got == nil && want == nil:
	case got == nil || want == nil:
		t.Errorf("%s = %v, want %v", label, ptrVal(got), ptrVal(want))
	case *got != *want:
		t.Errorf("%s = %d, want %d", label, *got, *want)
	}
}

func ptrVal(p *int) interface{} {
	if p == nil {
		return nil
	}
	return *p
}
