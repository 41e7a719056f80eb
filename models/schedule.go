package models

// DaySchedule is the business-hours entry for a single weekday.
// Start and End are "HH:MM" in 24h format and ignored when Enabled is false.
type DaySchedule struct {
	Enabled bool   `bson:"enabled" json:"enabled"`
	Start   string `bson:"start" json:"start"`
	End     string `bson:"end" json:"end"`
}

// WeeklySchedule maps weekday index (0=Sunday..6=Saturday) to its hours.
type WeeklySchedule map[int]DaySchedule

// BusinessHours is the persisted shape of the business_hours setting:
// {"schedule": {"0": {...}, ..., "6": {...}}}.
type BusinessHours struct {
	Schedule map[string]DaySchedule `bson:"schedule" json:"schedule"`
}

// Weekly converts the persisted string-keyed schedule into a WeeklySchedule.
// Keys outside "0".."6" are dropped.
func (b BusinessHours) Weekly() WeeklySchedule {
	ws := make(WeeklySchedule, len(b.Schedule))
	for k, day := range b.Schedule {
		if len(k) != 1 || k[0] < '0' || k[0] > '6' {
			continue
		}
		ws[int(k[0]-'0')] = day
	}
	return ws
}
