/*
Package rrule models the recurrence rule grammar used by iCalendar's RRULE property.

A rule is a ';'-separated list of KEY=value parts. Only a subset of the parts defined by
RFC 5545 is modelled here:

	FREQ      DAILY | WEEKLY (required)
	INTERVAL  positive integer, defaults to 1
	BYMINUTE  comma-separated minutes in [0,59]
	BYHOUR    comma-separated hours in [0,23]
	BYDAY     comma-separated day codes SU, MO, TU, WE, TH, FR, SA
	WKST      a single day code

# Basic Usage

	r, err := rrule.Parse("FREQ=WEEKLY;BYDAY=TU,SU,FR")
	if err != nil {
		log.Fatal(err)
	}
	if err := rrule.Validate(r); err != nil {
		log.Fatal(err)
	}
	s, _ := rrule.Format(r) // "FREQ=WEEKLY;BYDAY=SU,TU,FR"

Parse only checks syntax. Range checks live in Validate, which reports every failing part
at once. Format always validates before it emits anything.

BYMINUTE and BYHOUR are distributive: every minute combines with every hour. The package
keeps both sets intact and leaves expanding them to concrete instants to the caller.

# Errors

All failures are *RuleError values. Match on the kind with errors.Is:

	if errors.Is(err, rrule.ErrMissingFrequency) {
		...
	}

and use errors.As to get at the offending key, raw value and original text.
*/
package rrule
