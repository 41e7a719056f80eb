package schedule

import (
	"sort"
	"time"

	"pawspa/models"
)

// The derivation engine is pure: given the configured weekly hours, the slot
// duration, and the raw appointment/blocked-slot lists, it computes the time
// labels and per-cell state for the calendar grid. Nothing here touches
// storage and nothing is cached; callers recompute on every view.

const dayFormat = "2006-01-02"

// parseClock converts "HH:MM" or "HH:MM:SS" into minutes from midnight.
func parseClock(s string) (int, bool) {
	if len(s) < 5 || s[2] != ':' {
		return 0, false
	}
	h := int(s[0]-'0')*10 + int(s[1]-'0')
	m := int(s[3]-'0')*10 + int(s[4]-'0')
	if s[0] < '0' || s[0] > '9' || s[1] < '0' || s[1] > '9' ||
		s[3] < '0' || s[3] > '9' || s[4] < '0' || s[4] > '9' {
		return 0, false
	}
	if h > 23 || m > 59 {
		return 0, false
	}
	return h*60 + m, true
}

// formatClock renders minutes from midnight as a zero-padded "HH:MM" label.
func formatClock(minutes int) string {
	h := minutes / 60
	m := minutes % 60
	return string([]byte{
		byte('0' + h/10), byte('0' + h%10), ':',
		byte('0' + m/10), byte('0' + m%10),
	})
}

// TruncateToMinute normalizes a stored time ("HH:MM" or "HH:MM:SS") to a
// zero-padded "HH:MM" label. Unparseable values are returned unchanged so a
// malformed record surfaces as its own row instead of silently vanishing.
func TruncateToMinute(s string) string {
	m, ok := parseClock(s)
	if !ok {
		return s
	}
	return formatClock(m)
}

// scheduleLabels generates the half-open [start, end) label sequence for one
// day's hours, stepped by slotDuration. A trailing partial slot is omitted
// because the loop condition is start < end.
func scheduleLabels(day models.DaySchedule, slotDuration int, into map[string]struct{}) {
	if !day.Enabled || slotDuration <= 0 {
		return
	}
	start, okStart := parseClock(day.Start)
	end, okEnd := parseClock(day.End)
	if !okStart || !okEnd {
		return
	}
	for m := start; m < end; m += slotDuration {
		into[formatClock(m)] = struct{}{}
	}
}

func sortedLabels(set map[string]struct{}) []string {
	labels := make([]string, 0, len(set))
	for l := range set {
		labels = append(labels, l)
	}
	// Lexicographic order is chronological for zero-padded 24h labels.
	sort.Strings(labels)
	return labels
}

// DaySlots returns the ordered, distinct time labels for one day: the
// schedule-derived sequence for that weekday (when enabled) unioned with the
// times of every appointment on that date. The union guarantees a row exists
// for appointments booked outside current business hours, e.g. after a
// schedule change.
func DaySlots(date time.Time, sched models.WeeklySchedule, slotDuration int, appointments []models.Appointment) []string {
	set := make(map[string]struct{})
	scheduleLabels(sched[int(date.Weekday())], slotDuration, set)

	dateStr := date.Format(dayFormat)
	for _, a := range appointments {
		if a.Date == dateStr {
			set[TruncateToMinute(a.Time)] = struct{}{}
		}
	}
	return sortedLabels(set)
}

// WeekSlots returns a single shared row axis for a week view: the union of
// every weekday's schedule-derived labels plus every appointment time falling
// on one of weekDates. All days share the same rows for grid alignment even
// though their enabled ranges may differ.
func WeekSlots(weekDates []time.Time, sched models.WeeklySchedule, slotDuration int, appointments []models.Appointment) []string {
	set := make(map[string]struct{})
	inWeek := make(map[string]struct{}, len(weekDates))
	for _, d := range weekDates {
		scheduleLabels(sched[int(d.Weekday())], slotDuration, set)
		inWeek[d.Format(dayFormat)] = struct{}{}
	}
	for _, a := range appointments {
		if _, ok := inWeek[a.Date]; ok {
			set[TruncateToMinute(a.Time)] = struct{}{}
		}
	}
	return sortedLabels(set)
}

// SlotStatus computes the derived state of one (date, timeLabel) cell. Times
// are compared after truncation to the minute on both sides, so a stored
// "14:00:00" matches a derived "14:00" label. A slot is blocked only when a
// blocked-slot record's start time equals the label exactly; range overlap is
// intentionally not considered. Appointments take precedence: any occupied
// slot is unavailable regardless of the blocked flag.
func SlotStatus(date, timeLabel string, appointments []models.Appointment, blockedSlots []models.BlockedSlot) models.DerivedSlot {
	label := TruncateToMinute(timeLabel)

	matched := []models.Appointment{}
	for _, a := range appointments {
		if a.Date == date && TruncateToMinute(a.Time) == label {
			matched = append(matched, a)
		}
	}

	var blockedBy *models.BlockedSlot
	for i := range blockedSlots {
		b := blockedSlots[i]
		if b.Date == date && TruncateToMinute(b.StartTime) == label {
			blockedBy = &b
			break
		}
	}

	return models.DerivedSlot{
		Time:         label,
		Available:    len(matched) == 0 && blockedBy == nil,
		Blocked:      blockedBy != nil,
		BlockedBy:    blockedBy,
		Appointments: matched,
	}
}

// WithinSchedule reports whether timeLabel falls inside the configured
// [start, end) range for date's weekday. Used to decide whether an empty cell
// is offered as bookable/blockable.
func WithinSchedule(date time.Time, timeLabel string, sched models.WeeklySchedule) bool {
	day, ok := sched[int(date.Weekday())]
	if !ok || !day.Enabled {
		return false
	}
	t, okT := parseClock(timeLabel)
	start, okS := parseClock(day.Start)
	end, okE := parseClock(day.End)
	if !okT || !okS || !okE {
		return false
	}
	return t >= start && t < end
}

// WeekDates returns the seven consecutive dates starting at weekStart.
func WeekDates(weekStart time.Time) []time.Time {
	dates := make([]time.Time, 7)
	for i := range dates {
		dates[i] = weekStart.AddDate(0, 0, i)
	}
	return dates
}
