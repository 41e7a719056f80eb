package handlers

// HandlerBundle groups the handler instances passed to route registration.
type HandlerBundle struct {
	Calendar *CalendarHandler
	Booking  *BookingHandler
	Pets     *PetHandler
	Services *ServiceHandler
	Settings *SettingsHandler
	Reminder *ReminderHandler
	Email    *EmailHandler
	Users    *UserHandler
}
