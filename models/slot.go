package models

// DerivedSlot is the computed state of one (date, time) calendar cell.
// It is recomputed from raw data on every view and never persisted.
type DerivedSlot struct {
	Time         string        `json:"time"` // "HH:MM"
	Available    bool          `json:"available"`
	Blocked      bool          `json:"blocked"`
	BlockedBy    *BlockedSlot  `json:"blockedBy,omitempty"`
	Appointments []Appointment `json:"appointments"`
}

// CalendarDay is one day's column in the admin calendar grid.
type CalendarDay struct {
	Date           string        `json:"date"`
	Slots          []DerivedSlot `json:"slots"`
	WithinSchedule []bool        `json:"withinSchedule"` // parallel to Slots
}

// DayViewResponse is the admin day view: one ordered row axis plus the day.
type DayViewResponse struct {
	Times []string    `json:"times"`
	Day   CalendarDay `json:"day"`
}

// WeekViewResponse shares a single row axis across all seven days.
type WeekViewResponse struct {
	Times []string      `json:"times"`
	Days  []CalendarDay `json:"days"`
}
