package rrule

import (
	"fmt"
	"strconv"
	"strings"
)

// ErrorKind classifies a RuleError.
type ErrorKind string

const (
	KindEmptyRule            ErrorKind = "empty_rule"
	KindInvalidRuleString    ErrorKind = "invalid_rule_string"
	KindInvalidRulePart      ErrorKind = "invalid_rule_part"
	KindDuplicateRulePart    ErrorKind = "duplicate_rule_part"
	KindMissingFrequency     ErrorKind = "missing_frequency"
	KindInvalidInput         ErrorKind = "invalid_input"
	KindMultiple             ErrorKind = "multiple"
	KindUnknownOrUnsupported ErrorKind = "unknown_or_unsupported"
)

// RuleError is returned by every operation in this package.
//
// Which fields are set depends on Kind:
//   - KindEmptyRule: none
//   - KindInvalidRuleString, KindMissingFrequency: Text
//   - KindInvalidRulePart, KindDuplicateRulePart: Key, Value, Text
//   - KindInvalidInput: Failures holds exactly one entry
//   - KindMultiple: Failures holds two or more entries, in canonical key order
//   - KindUnknownOrUnsupported: Description
type RuleError struct {
	Kind        ErrorKind
	Text        string
	Key         PartKey
	Value       string
	Failures    []FailedValidation
	Description string
}

// Sentinels for errors.Is. They match any RuleError of the same kind.
var (
	ErrEmptyRule            = &RuleError{Kind: KindEmptyRule}
	ErrInvalidRuleString    = &RuleError{Kind: KindInvalidRuleString}
	ErrInvalidRulePart      = &RuleError{Kind: KindInvalidRulePart}
	ErrDuplicateRulePart    = &RuleError{Kind: KindDuplicateRulePart}
	ErrMissingFrequency     = &RuleError{Kind: KindMissingFrequency}
	ErrInvalidInput         = &RuleError{Kind: KindInvalidInput}
	ErrMultiple             = &RuleError{Kind: KindMultiple}
	ErrUnknownOrUnsupported = &RuleError{Kind: KindUnknownOrUnsupported}
)

func (e *RuleError) Error() string {
	switch e.Kind {
	case KindEmptyRule:
		return "empty recurrence rule"
	case KindInvalidRuleString:
		return fmt.Sprintf("invalid recurrence rule %q", e.Text)
	case KindInvalidRulePart:
		return fmt.Sprintf("invalid %s value %q in recurrence rule %q", e.Key, e.Value, e.Text)
	case KindDuplicateRulePart:
		return fmt.Sprintf("duplicate %s part (value %q) in recurrence rule %q", e.Key, e.Value, e.Text)
	case KindMissingFrequency:
		return fmt.Sprintf("recurrence rule %q has no FREQ part", e.Text)
	case KindInvalidInput, KindMultiple:
		msgs := make([]string, 0, len(e.Failures))
		for _, f := range e.Failures {
			msgs = append(msgs, f.String())
		}
		return "invalid recurrence rule: " + strings.Join(msgs, "; ")
	case KindUnknownOrUnsupported:
		return "unknown or unsupported recurrence rule: " + e.Description
	default:
		return fmt.Sprintf("recurrence rule error: %s", e.Kind)
	}
}

// Is matches on Kind only, so the package sentinels work with errors.Is.
func (e *RuleError) Is(target error) bool {
	t, ok := target.(*RuleError)
	return ok && t.Kind == e.Kind
}

func newInvalidRuleString(text string) *RuleError {
	return &RuleError{Kind: KindInvalidRuleString, Text: text}
}

func newInvalidRulePart(key PartKey, value, text string) *RuleError {
	return &RuleError{Kind: KindInvalidRulePart, Key: key, Value: value, Text: text}
}

func newDuplicateRulePart(key PartKey, value, text string) *RuleError {
	return &RuleError{Kind: KindDuplicateRulePart, Key: key, Value: value, Text: text}
}

// Unsupported reports a rule feature outside the modelled subset.
func Unsupported(format string, args ...any) *RuleError {
	return &RuleError{Kind: KindUnknownOrUnsupported, Description: fmt.Sprintf(format, args...)}
}

// FailedValidation describes one part rejected by Validate. Values holds the
// raw offending values: none for a missing frequency, the single interval,
// or every out-of-range element of a set.
type FailedValidation struct {
	Key    PartKey
	Values []int
}

func FrequencyFailure(values ...int) FailedValidation {
	return FailedValidation{Key: KeyFreq, Values: values}
}

func IntervalFailure(interval int) FailedValidation {
	return FailedValidation{Key: KeyInterval, Values: []int{interval}}
}

func ByMinuteFailure(values ...int) FailedValidation {
	return FailedValidation{Key: KeyByMinute, Values: values}
}

func ByHourFailure(values ...int) FailedValidation {
	return FailedValidation{Key: KeyByHour, Values: values}
}

func ByDayFailure(values ...int) FailedValidation {
	return FailedValidation{Key: KeyByDay, Values: values}
}

func WeekStartFailure(value int) FailedValidation {
	return FailedValidation{Key: KeyWeekStart, Values: []int{value}}
}

func (f FailedValidation) String() string {
	switch f.Key {
	case KeyFreq:
		if len(f.Values) > 0 {
			return fmt.Sprintf("FREQ must be DAILY or WEEKLY, got unknown frequency %s", joinInts(f.Values))
		}
		return "FREQ is required"
	case KeyInterval:
		return fmt.Sprintf("INTERVAL must be greater than 0, got %s", joinInts(f.Values))
	case KeyByMinute:
		return fmt.Sprintf("BYMINUTE values must be within [0,59], got %s", joinInts(f.Values))
	case KeyByHour:
		return fmt.Sprintf("BYHOUR values must be within [0,23], got %s", joinInts(f.Values))
	case KeyByDay:
		return fmt.Sprintf("BYDAY contains unknown weekdays %s", joinInts(f.Values))
	case KeyWeekStart:
		return fmt.Sprintf("WKST is not a weekday: %s", joinInts(f.Values))
	default:
		return fmt.Sprintf("%s is invalid", f.Key)
	}
}

func joinInts(vals []int) string {
	parts := make([]string, len(vals))
	for i, v := range vals {
		parts[i] = strconv.Itoa(v)
	}
	return strings.Join(parts, ",")
}
