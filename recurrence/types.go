package recurrence

import (
	"errors"

	"github.com/cyp0633/rrulekit/rrule"
)

// ErrNoRecurrence is returned when a component carries no RRULE property
var ErrNoRecurrence = errors.New("component has no RRULE property")

// ComponentRule is the recurrence rule read from a calendar component
type ComponentRule struct {
	Component string     // VEVENT, VTODO, etc.
	UID       string     // UID of the component, empty if missing
	Raw       string     // RRULE value as found on the component
	Rule      rrule.Rule // Parsed and validated rule
}

// Canonical reports whether the component already carries the canonical form of its rule
func (cr ComponentRule) Canonical() bool {
	s, err := rrule.Format(cr.Rule)
	return err == nil && s == cr.Raw
}
