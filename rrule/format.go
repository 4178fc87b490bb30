package rrule

import (
	"strconv"
	"strings"
)

// Format validates r and renders it as canonical rule text.
//
// Parts are emitted in canonical key order. INTERVAL is left out when it is 1,
// empty sets and an absent WKST are left out, set elements are sorted
// ascending (BYDAY from SU to SA). A validation failure is returned unchanged
// and no text is produced.
func Format(r Rule) (string, error) {
	if err := Validate(r); err != nil {
		return "", err
	}

	segments := make([]string, 0, len(partKeyCodes))
	for _, key := range PartKeys() {
		if value, ok := formatPart(r, key); ok {
			segments = append(segments, key.String()+"="+value)
		}
	}
	return strings.Join(segments, ";"), nil
}

// formatPart renders one part; ok is false when the part is absent or default.
func formatPart(r Rule, key PartKey) (value string, ok bool) {
	switch key {
	case KeyFreq:
		return r.Frequency.Code(), true
	case KeyInterval:
		if r.Interval == 1 {
			return "", false
		}
		return strconv.Itoa(r.Interval), true
	case KeyByMinute:
		return joinSet(r.ByMinute, strconv.Itoa)
	case KeyByHour:
		return joinSet(r.ByHour, strconv.Itoa)
	case KeyByDay:
		return joinSet(r.ByDay, Weekday.Code)
	case KeyWeekStart:
		if d, present := r.WeekStart.Get(); present {
			return d.Code(), true
		}
		return "", false
	default:
		return "", false
	}
}

func joinSet[T int | Weekday](s Set[T], render func(T) string) (string, bool) {
	if s.Len() == 0 {
		return "", false
	}
	vals := s.Sorted()
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = render(v)
	}
	return strings.Join(out, ","), true
}
