package calendar

import "pawspa/models"

// allowedTransitions is the effective appointment state machine. Completed is
// terminal; cancelled keeps two reactivation edges back to pending/confirmed.
var allowedTransitions = map[models.AppointmentStatus][]models.AppointmentStatus{
	models.AppointmentPending:   {models.AppointmentConfirmed, models.AppointmentCancelled},
	models.AppointmentConfirmed: {models.AppointmentCompleted, models.AppointmentCancelled},
	models.AppointmentCancelled: {models.AppointmentPending, models.AppointmentConfirmed},
	models.AppointmentCompleted: {},
}

// CanTransition reports whether an appointment may move from one status to
// another. Consulted before every status write.
func CanTransition(from, to models.AppointmentStatus) bool {
	for _, allowed := range allowedTransitions[from] {
		if allowed == to {
			return true
		}
	}
	return false
}
