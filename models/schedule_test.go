package models

import "testing"

func TestBusinessHoursWeekly(t *testing.T) {
	hours := BusinessHours{Schedule: map[string]DaySchedule{
		"0":  {Enabled: false},
		"2":  {Enabled: true, Start: "09:00", End: "17:00"},
		"6":  {Enabled: true, Start: "10:00", End: "14:00"},
		"7":  {Enabled: true, Start: "08:00", End: "20:00"}, // out of range, dropped
		"xx": {Enabled: true},
	}}

	weekly := hours.Weekly()
	if len(weekly) != 3 {
		t.Fatalf("expected 3 configured days, got %d: %v", len(weekly), weekly)
	}
	tuesday, ok := weekly[2]
	if !ok || !tuesday.Enabled || tuesday.Start != "09:00" || tuesday.End != "17:00" {
		t.Fatalf("tuesday entry wrong: %+v", tuesday)
	}
	if _, ok := weekly[7]; ok {
		t.Fatal("weekday index 7 must be dropped")
	}
}

func TestValidStatus(t *testing.T) {
	for _, s := range []AppointmentStatus{AppointmentPending, AppointmentConfirmed, AppointmentCompleted, AppointmentCancelled} {
		if !ValidStatus(s) {
			t.Errorf("%s should be valid", s)
		}
	}
	if ValidStatus("archived") || ValidStatus("") {
		t.Error("unknown statuses must be invalid")
	}
}
