package schedule

import (
	"reflect"
	"testing"
	"time"

	"pawspa/models"
)

func mustDate(t *testing.T, s string) time.Time {
	t.Helper()
	d, err := time.Parse(dayFormat, s)
	if err != nil {
		t.Fatalf("bad test date %q: %v", s, err)
	}
	return d
}

func weekdaySchedule(day int, start, end string) models.WeeklySchedule {
	return models.WeeklySchedule{
		day: {Enabled: true, Start: start, End: end},
	}
}

func TestTruncateToMinute(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"14:00", "14:00"},
		{"14:00:00", "14:00"},
		{"09:05:59", "09:05"},
		{"9:00", "9:00"},     // not zero padded, unparseable, returned as-is
		{"banana", "banana"}, // malformed values surface unchanged
		{"25:00", "25:00"},
	}
	for _, c := range cases {
		if got := TruncateToMinute(c.in); got != c.want {
			t.Errorf("TruncateToMinute(%q) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestDaySlotsHalfOpenRange(t *testing.T) {
	// 2026-03-03 is a Tuesday.
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "18:00", "21:00")

	got := DaySlots(date, sched, 60, nil)
	want := []string{"18:00", "19:00", "20:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaySlots = %v, want %v", got, want)
	}
}

func TestDaySlotsOmitsTrailingPartialSlot(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "10:30")

	got := DaySlots(date, sched, 45, nil)
	want := []string{"09:00", "09:45"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaySlots = %v, want %v", got, want)
	}
}

func TestDaySlotsCountMatchesDuration(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "17:00")

	// Durations that evenly divide the 480 minute range.
	for _, duration := range []int{15, 30, 60, 120} {
		got := DaySlots(date, sched, duration, nil)
		want := (17*60 - 9*60) / duration
		if len(got) != want {
			t.Errorf("duration %d: got %d labels, want %d", duration, len(got), want)
		}
	}
}

func TestDaySlotsNonDivisibleDuration(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "17:00")

	// 90 does not divide 480: a slot starting before 17:00 is still
	// generated even though it runs past closing.
	got := DaySlots(date, sched, 90, nil)
	want := []string{"09:00", "10:30", "12:00", "13:30", "15:00", "16:30"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaySlots = %v, want %v", got, want)
	}
}

func TestDaySlotsSortedAndDistinct(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "08:00", "12:00")

	appts := []models.Appointment{
		{Date: "2026-03-03", Time: "09:00:00"}, // duplicates the derived 09:00 label
		{Date: "2026-03-03", Time: "07:30"},
	}
	got := DaySlots(date, sched, 60, appts)
	want := []string{"07:30", "08:00", "09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaySlots = %v, want %v", got, want)
	}
	for i := 1; i < len(got); i++ {
		if got[i-1] >= got[i] {
			t.Fatalf("labels not strictly increasing: %v", got)
		}
	}
}

func TestDaySlotsDisabledDayKeepsAppointmentRows(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := models.WeeklySchedule{
		int(time.Tuesday): {Enabled: false, Start: "09:00", End: "17:00"},
	}

	appts := []models.Appointment{
		{Date: "2026-03-03", Time: "10:00"},
		{Date: "2026-03-04", Time: "11:00"}, // different day, excluded
	}
	got := DaySlots(date, sched, 60, appts)
	want := []string{"10:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("DaySlots = %v, want %v", got, want)
	}
}

func TestDaySlotsOutOfHoursAppointmentGetsRow(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "17:00")

	appts := []models.Appointment{{Date: "2026-03-03", Time: "22:00"}}
	got := DaySlots(date, sched, 60, appts)
	if got[len(got)-1] != "22:00" {
		t.Fatalf("expected trailing 22:00 row, got %v", got)
	}
}

func TestDaySlotsZeroDuration(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "17:00")

	if got := DaySlots(date, sched, 0, nil); len(got) != 0 {
		t.Fatalf("expected no labels for zero duration, got %v", got)
	}
}

func TestWeekSlotsSharedAxis(t *testing.T) {
	// Week of Monday 2026-03-02.
	dates := WeekDates(mustDate(t, "2026-03-02"))
	sched := models.WeeklySchedule{
		int(time.Monday):  {Enabled: true, Start: "09:00", End: "11:00"},
		int(time.Tuesday): {Enabled: true, Start: "10:00", End: "12:00"},
	}

	got := WeekSlots(dates, sched, 60, nil)
	want := []string{"09:00", "10:00", "11:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekSlots = %v, want %v", got, want)
	}
}

func TestWeekSlotsIgnoresAppointmentsOutsideWeek(t *testing.T) {
	dates := WeekDates(mustDate(t, "2026-03-02"))
	sched := weekdaySchedule(int(time.Monday), "09:00", "10:00")

	appts := []models.Appointment{
		{Date: "2026-03-04", Time: "14:00"}, // inside the week
		{Date: "2026-03-12", Time: "15:00"}, // next week
	}
	got := WeekSlots(dates, sched, 60, appts)
	want := []string{"09:00", "14:00"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("WeekSlots = %v, want %v", got, want)
	}
}

func TestSlotStatusEmptySlot(t *testing.T) {
	slot := SlotStatus("2026-03-03", "14:00", nil, nil)
	if !slot.Available || slot.Blocked || slot.BlockedBy != nil {
		t.Fatalf("empty slot should be available: %+v", slot)
	}
	if slot.Appointments == nil || len(slot.Appointments) != 0 {
		t.Fatalf("appointments must be an empty list, got %v", slot.Appointments)
	}
}

func TestSlotStatusOccupied(t *testing.T) {
	appts := []models.Appointment{
		{ID: "a1", Date: "2026-03-03", Time: "14:00:00"},
		{ID: "a2", Date: "2026-03-03", Time: "14:00"},
		{ID: "a3", Date: "2026-03-03", Time: "15:00"},
	}

	slot := SlotStatus("2026-03-03", "14:00", appts, nil)
	if slot.Available {
		t.Fatal("occupied slot reported available")
	}
	if len(slot.Appointments) != 2 {
		t.Fatalf("expected both 14:00 appointments, got %d", len(slot.Appointments))
	}
}

func TestSlotStatusBlocked(t *testing.T) {
	blocks := []models.BlockedSlot{
		{ID: "b1", Date: "2026-03-03", StartTime: "14:00:00", EndTime: "16:00:00"},
	}

	slot := SlotStatus("2026-03-03", "14:00", nil, blocks)
	if slot.Available || !slot.Blocked {
		t.Fatalf("blocked slot state wrong: %+v", slot)
	}
	if slot.BlockedBy == nil || slot.BlockedBy.ID != "b1" {
		t.Fatalf("BlockedBy not populated: %+v", slot.BlockedBy)
	}

	// Only the exact start label is blocked; the block's range is not
	// expanded over later slots.
	inside := SlotStatus("2026-03-03", "15:00", nil, blocks)
	if inside.Blocked || !inside.Available {
		t.Fatalf("15:00 should not be blocked by a 14:00 block: %+v", inside)
	}
}

func TestSlotStatusAppointmentsTakePrecedence(t *testing.T) {
	appts := []models.Appointment{{ID: "a1", Date: "2026-03-03", Time: "14:00"}}
	blocks := []models.BlockedSlot{{ID: "b1", Date: "2026-03-03", StartTime: "14:00:00"}}

	slot := SlotStatus("2026-03-03", "14:00", appts, blocks)
	if slot.Available {
		t.Fatal("slot with appointment and block reported available")
	}
	if len(slot.Appointments) != 1 {
		t.Fatalf("appointment must stay visible on a blocked slot, got %d", len(slot.Appointments))
	}
	if !slot.Blocked {
		t.Fatal("block flag lost when slot is also occupied")
	}
}

func TestSlotStatusIdempotent(t *testing.T) {
	appts := []models.Appointment{{ID: "a1", Date: "2026-03-03", Time: "14:00"}}
	blocks := []models.BlockedSlot{{ID: "b1", Date: "2026-03-03", StartTime: "09:00:00"}}

	first := SlotStatus("2026-03-03", "14:00", appts, blocks)
	second := SlotStatus("2026-03-03", "14:00", appts, blocks)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("repeated derivation differs:\n%+v\n%+v", first, second)
	}
}

func TestWithinSchedule(t *testing.T) {
	date := mustDate(t, "2026-03-03")
	sched := weekdaySchedule(int(time.Tuesday), "09:00", "17:00")

	cases := []struct {
		label string
		want  bool
	}{
		{"09:00", true},
		{"16:59", true},
		{"17:00", false}, // end is exclusive
		{"08:59", false},
		{"banana", false},
	}
	for _, c := range cases {
		if got := WithinSchedule(date, c.label, sched); got != c.want {
			t.Errorf("WithinSchedule(%q) = %v, want %v", c.label, got, c.want)
		}
	}

	monday := mustDate(t, "2026-03-02")
	if WithinSchedule(monday, "10:00", sched) {
		t.Error("unconfigured weekday should be outside schedule")
	}
}

func TestWeekDates(t *testing.T) {
	dates := WeekDates(mustDate(t, "2026-03-02"))
	if len(dates) != 7 {
		t.Fatalf("expected 7 dates, got %d", len(dates))
	}
	for i, d := range dates {
		want := mustDate(t, "2026-03-02").AddDate(0, 0, i)
		if !d.Equal(want) {
			t.Errorf("dates[%d] = %v, want %v", i, d, want)
		}
	}
}
