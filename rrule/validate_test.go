package rrule

import (
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidate_Valid(t *testing.T) {
	rules := map[string]Rule{
		"Daily defaults": New(Daily),
		"Full weekly": {
			Frequency: Weekly,
			Interval:  2,
			ByMinute:  NewSet(0, 59),
			ByHour:    NewSet(0, 23),
			ByDay:     NewSet(Weekdays()...),
			WeekStart: mo.Some(Sunday),
		},
	}

	for name, rule := range rules {
		t.Run(name, func(t *testing.T) {
			assert.NoError(t, Validate(rule))
		})
	}
}

func TestValidate_Failures(t *testing.T) {
	withHours := New(Daily)
	withHours.ByHour = NewSet(24)

	tests := []struct {
		name     string
		rule     Rule
		kind     ErrorKind
		failures []FailedValidation
	}{
		{
			name:     "Hour out of range",
			rule:     withHours,
			kind:     KindInvalidInput,
			failures: []FailedValidation{ByHourFailure(24)},
		},
		{
			name:     "Zero value reports frequency and interval",
			rule:     Rule{},
			kind:     KindMultiple,
			failures: []FailedValidation{FrequencyFailure(), IntervalFailure(0)},
		},
		{
			name:     "Negative interval",
			rule:     Rule{Frequency: Weekly, Interval: -3},
			kind:     KindInvalidInput,
			failures: []FailedValidation{IntervalFailure(-3)},
		},
		{
			name:     "Unknown frequency value",
			rule:     Rule{Frequency: Frequency(9), Interval: 1},
			kind:     KindInvalidInput,
			failures: []FailedValidation{FrequencyFailure(9)},
		},
		{
			name: "Every offending minute is collected",
			rule: Rule{Frequency: Daily, Interval: 1, ByMinute: NewSet(61, 5, -1, 60)},
			kind: KindInvalidInput,
			failures: []FailedValidation{
				ByMinuteFailure(-1, 60, 61),
			},
		},
		{
			name: "Failures come back in canonical key order",
			rule: Rule{
				Frequency: Daily,
				Interval:  0,
				ByMinute:  NewSet(99),
				ByHour:    NewSet(30, 1),
				ByDay:     NewSet(Weekday(0), Monday),
				WeekStart: mo.Some(Weekday(8)),
			},
			kind: KindMultiple,
			failures: []FailedValidation{
				IntervalFailure(0),
				ByMinuteFailure(99),
				ByHourFailure(30),
				ByDayFailure(0),
				WeekStartFailure(8),
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.rule)
			require.Error(t, err)

			var ruleErr *RuleError
			require.ErrorAs(t, err, &ruleErr)
			assert.Equal(t, tt.kind, ruleErr.Kind)
			assert.Equal(t, tt.failures, ruleErr.Failures)
		})
	}
}

func TestValidate_ErrorMessages(t *testing.T) {
	err := Validate(Rule{})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMultiple)
	assert.Equal(t, "invalid recurrence rule: FREQ is required; INTERVAL must be greater than 0, got 0", err.Error())

	r := New(Daily)
	r.ByHour = NewSet(24, 25)
	err = Validate(r)
	assert.ErrorIs(t, err, ErrInvalidInput)
	assert.Equal(t, "invalid recurrence rule: BYHOUR values must be within [0,23], got 24,25", err.Error())
}

func TestRuleError_Messages(t *testing.T) {
	tests := []struct {
		err      *RuleError
		expected string
	}{
		{&RuleError{Kind: KindEmptyRule}, "empty recurrence rule"},
		{&RuleError{Kind: KindInvalidRuleString, Text: "FOO"}, `invalid recurrence rule "FOO"`},
		{
			&RuleError{Kind: KindInvalidRulePart, Key: KeyByHour, Value: "1,x", Text: "FREQ=DAILY;BYHOUR=1,x"},
			`invalid BYHOUR value "1,x" in recurrence rule "FREQ=DAILY;BYHOUR=1,x"`,
		},
		{&RuleError{Kind: KindMissingFrequency, Text: "INTERVAL=2"}, `recurrence rule "INTERVAL=2" has no FREQ part`},
		{Unsupported("element %s", "count"), "unknown or unsupported recurrence rule: element count"},
	}

	for _, tt := range tests {
		t.Run(string(tt.err.Kind), func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.err.Error())
		})
	}
}
