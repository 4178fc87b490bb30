package rrule

// Weekday is a day of the week. The numeric values give the canonical order,
// Sunday first.
type Weekday int

const (
	Sunday Weekday = iota + 1
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayCodes = [...]string{
	Sunday:    "SU",
	Monday:    "MO",
	Tuesday:   "TU",
	Wednesday: "WE",
	Thursday:  "TH",
	Friday:    "FR",
	Saturday:  "SA",
}

// Weekdays returns all days in canonical order.
func Weekdays() []Weekday {
	return []Weekday{Sunday, Monday, Tuesday, Wednesday, Thursday, Friday, Saturday}
}

// IsValid reports whether d is one of the seven days.
func (d Weekday) IsValid() bool {
	return d >= Sunday && d <= Saturday
}

// Code returns the two-letter day code, or "" for an invalid day.
func (d Weekday) Code() string {
	if !d.IsValid() {
		return ""
	}
	return weekdayCodes[d]
}

func (d Weekday) String() string {
	switch d {
	case Sunday:
		return "Sunday"
	case Monday:
		return "Monday"
	case Tuesday:
		return "Tuesday"
	case Wednesday:
		return "Wednesday"
	case Thursday:
		return "Thursday"
	case Friday:
		return "Friday"
	case Saturday:
		return "Saturday"
	default:
		return "Unknown"
	}
}

// ParseWeekday maps a two-letter day code to a Weekday. Matching is case-sensitive.
func ParseWeekday(code string) (Weekday, bool) {
	for _, d := range Weekdays() {
		if weekdayCodes[d] == code {
			return d, true
		}
	}
	return 0, false
}
