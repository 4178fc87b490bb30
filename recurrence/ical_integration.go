package recurrence

import (
	"strings"

	"github.com/cyp0633/rrulekit/rrule"
	"github.com/emersion/go-ical"
)

// RawRule returns the RRULE value of comp, trimmed, and whether one was present
func RawRule(comp *ical.Component) (string, bool) {
	if comp == nil {
		return "", false
	}
	prop := comp.Props.Get(ical.PropRecurrenceRule)
	if prop == nil {
		return "", false
	}
	value := strings.TrimSpace(prop.Value)
	return value, value != ""
}

// ExtractRule parses and validates the RRULE of comp with the default parser
func ExtractRule(comp *ical.Component) (rrule.Rule, error) {
	raw, ok := RawRule(comp)
	if !ok {
		return rrule.Rule{}, ErrNoRecurrence
	}
	rule, err := rrule.Parse(raw)
	if err != nil {
		return rrule.Rule{}, err
	}
	if err := rrule.Validate(rule); err != nil {
		return rrule.Rule{}, err
	}
	return rule, nil
}

// SetRule replaces the RRULE property of comp with the canonical text of rule.
// Nothing is changed if rule is invalid.
func SetRule(comp *ical.Component, rule rrule.Rule) error {
	text, err := rrule.Format(rule)
	if err != nil {
		return err
	}
	prop := ical.NewProp(ical.PropRecurrenceRule)
	prop.Value = text
	comp.Props.Set(prop)
	return nil
}

func componentUID(comp *ical.Component) string {
	if prop := comp.Props.Get(ical.PropUID); prop != nil {
		return prop.Value
	}
	return ""
}
