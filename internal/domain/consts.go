package domain

// Setting keys persisted by the configuration store
const (
	KeyStartDate    = "start_date"
	KeyShiftsConfig = "shifts_config"
)

// Built-in shift identifiers used by the default cycle
const (
	ShiftDay   = "day"
	ShiftNight = "night"
	ShiftRest  = "rest"
)

// NewShiftLabel is the label given to a shift added without one
const NewShiftLabel = "新班次"

// NewShiftColor is the ARGB color given to a shift added without one
const NewShiftColor uint32 = 0xFF757575

// MaxLabelLength bounds shift labels accepted from users
const MaxLabelLength = 64

// WeekdayNames holds short Sunday-first weekday headers for month views
var WeekdayNames = []string{"Sun", "Mon", "Tue", "Wed", "Thu", "Fri", "Sat"}
