package rrule

import (
	"maps"

	"github.com/samber/mo"
)

// Rule is a parsed recurrence rule.
//
// The zero value has no frequency and an interval of 0; both are reported by
// Validate. Use New to start from the defaults.
type Rule struct {
	Frequency Frequency
	// Interval is the number of frequency units between repetitions.
	Interval int
	// ByMinute and ByHour combine distributively: each minute applies to each hour.
	ByMinute  Set[int]
	ByHour    Set[int]
	ByDay     Set[Weekday]
	WeekStart mo.Option[Weekday]
}

// New returns a rule with the given frequency, an interval of 1 and no constraints.
func New(freq Frequency) Rule {
	return Rule{Frequency: freq, Interval: 1}
}

// Clone returns a copy of r that shares no sets with it.
func (r Rule) Clone() Rule {
	out := r
	out.ByMinute = maps.Clone(r.ByMinute)
	out.ByHour = maps.Clone(r.ByHour)
	out.ByDay = maps.Clone(r.ByDay)
	return out
}

// Equal compares every part of both rules. Sets compare by content.
func (r Rule) Equal(other Rule) bool {
	return r.Frequency == other.Frequency &&
		r.Interval == other.Interval &&
		r.ByMinute.Equal(other.ByMinute) &&
		r.ByHour.Equal(other.ByHour) &&
		r.ByDay.Equal(other.ByDay) &&
		r.WeekStart.OrEmpty() == other.WeekStart.OrEmpty() &&
		r.WeekStart.IsPresent() == other.WeekStart.IsPresent()
}

// MarshalText implements encoding.TextMarshaler using Format.
func (r Rule) MarshalText() ([]byte, error) {
	s, err := Format(r)
	if err != nil {
		return nil, err
	}
	return []byte(s), nil
}

// UnmarshalText implements encoding.TextUnmarshaler using Parse followed by Validate.
func (r *Rule) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	if err := Validate(parsed); err != nil {
		return err
	}
	*r = parsed
	return nil
}
