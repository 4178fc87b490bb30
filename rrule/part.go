package rrule

// PartKey identifies one KEY of the rule grammar.
type PartKey int

const (
	KeyFreq PartKey = iota
	KeyInterval
	KeyByMinute
	KeyByHour
	KeyByDay
	KeyWeekStart
)

var partKeyCodes = [...]string{
	KeyFreq:      "FREQ",
	KeyInterval:  "INTERVAL",
	KeyByMinute:  "BYMINUTE",
	KeyByHour:    "BYHOUR",
	KeyByDay:     "BYDAY",
	KeyWeekStart: "WKST",
}

// PartKeys returns every key in canonical order. Validation failures and
// formatted output both follow this order.
func PartKeys() []PartKey {
	return []PartKey{KeyFreq, KeyInterval, KeyByMinute, KeyByHour, KeyByDay, KeyWeekStart}
}

// String returns the grammar code of the key, e.g. "BYHOUR".
func (k PartKey) String() string {
	if k < KeyFreq || k > KeyWeekStart {
		return "UNKNOWN"
	}
	return partKeyCodes[k]
}

// ParsePartKey matches code exactly against the known keys.
func ParsePartKey(code string) (PartKey, bool) {
	for _, k := range PartKeys() {
		if partKeyCodes[k] == code {
			return k, true
		}
	}
	return 0, false
}
