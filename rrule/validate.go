package rrule

import "github.com/samber/mo"

// check inspects one part of a rule and returns the failure, if any.
type check func(r Rule) mo.Option[FailedValidation]

// checks runs in canonical key order; Validate relies on that for the order of
// reported failures.
var checks = []check{
	checkFrequency,
	checkInterval,
	checkByMinute,
	checkByHour,
	checkByDay,
	checkWeekStart,
}

// Validate runs every range check on r. It never stops at the first problem:
// a single failure is returned as KindInvalidInput, several as KindMultiple.
func Validate(r Rule) error {
	var failures []FailedValidation
	for _, c := range checks {
		if f, ok := c(r).Get(); ok {
			failures = append(failures, f)
		}
	}

	switch len(failures) {
	case 0:
		return nil
	case 1:
		return &RuleError{Kind: KindInvalidInput, Failures: failures}
	default:
		return &RuleError{Kind: KindMultiple, Failures: failures}
	}
}

func checkFrequency(r Rule) mo.Option[FailedValidation] {
	switch {
	case r.Frequency == FrequencyUnset:
		return mo.Some(FrequencyFailure())
	case !r.Frequency.IsValid():
		return mo.Some(FrequencyFailure(int(r.Frequency)))
	}
	return mo.None[FailedValidation]()
}

func checkInterval(r Rule) mo.Option[FailedValidation] {
	if r.Interval <= 0 {
		return mo.Some(IntervalFailure(r.Interval))
	}
	return mo.None[FailedValidation]()
}

func checkByMinute(r Rule) mo.Option[FailedValidation] {
	if bad := outOfRange(r.ByMinute, 0, 59); len(bad) > 0 {
		return mo.Some(ByMinuteFailure(bad...))
	}
	return mo.None[FailedValidation]()
}

func checkByHour(r Rule) mo.Option[FailedValidation] {
	if bad := outOfRange(r.ByHour, 0, 23); len(bad) > 0 {
		return mo.Some(ByHourFailure(bad...))
	}
	return mo.None[FailedValidation]()
}

func checkByDay(r Rule) mo.Option[FailedValidation] {
	var bad []int
	for _, d := range r.ByDay.Sorted() {
		if !d.IsValid() {
			bad = append(bad, int(d))
		}
	}
	if len(bad) > 0 {
		return mo.Some(ByDayFailure(bad...))
	}
	return mo.None[FailedValidation]()
}

func checkWeekStart(r Rule) mo.Option[FailedValidation] {
	if d, ok := r.WeekStart.Get(); ok && !d.IsValid() {
		return mo.Some(WeekStartFailure(int(d)))
	}
	return mo.None[FailedValidation]()
}

// outOfRange returns the elements of s outside [lo,hi], ascending.
func outOfRange(s Set[int], lo, hi int) []int {
	var bad []int
	for _, v := range s.Sorted() {
		if v < lo || v > hi {
			bad = append(bad, v)
		}
	}
	return bad
}
