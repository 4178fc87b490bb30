package rrule

// Frequency is the repetition unit of a rule.
type Frequency int

const (
	FrequencyUnset Frequency = iota
	Daily
	Weekly
)

var frequencyCodes = map[Frequency]string{
	Daily:  "DAILY",
	Weekly: "WEEKLY",
}

// Code returns the FREQ value for f, or "" if f is not a supported frequency.
func (f Frequency) Code() string {
	return frequencyCodes[f]
}

// IsValid reports whether f is one of the supported frequencies.
func (f Frequency) IsValid() bool {
	_, ok := frequencyCodes[f]
	return ok
}

// String provides a human-readable representation of the Frequency.
func (f Frequency) String() string {
	switch f {
	case Daily:
		return "Daily"
	case Weekly:
		return "Weekly"
	default:
		return "Unset"
	}
}

// ParseFrequency maps a FREQ code to a Frequency. Matching is case-sensitive.
func ParseFrequency(code string) (Frequency, bool) {
	for f, c := range frequencyCodes {
		if c == code {
			return f, true
		}
	}
	return FrequencyUnset, false
}
