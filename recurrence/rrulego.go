package recurrence

import (
	"time"

	"github.com/cyp0633/rrulekit/rrule"
	rrulego "github.com/teambition/rrule-go"
)

var frequencies = map[rrule.Frequency]rrulego.Frequency{
	rrule.Daily:  rrulego.DAILY,
	rrule.Weekly: rrulego.WEEKLY,
}

var weekdays = map[rrule.Weekday]rrulego.Weekday{
	rrule.Sunday:    rrulego.SU,
	rrule.Monday:    rrulego.MO,
	rrule.Tuesday:   rrulego.TU,
	rrule.Wednesday: rrulego.WE,
	rrule.Thursday:  rrulego.TH,
	rrule.Friday:    rrulego.FR,
	rrule.Saturday:  rrulego.SA,
}

// ToROption converts a valid rule into rrule-go options anchored at dtstart,
// ready to hand to an expansion engine. BYMINUTE and BYHOUR are passed through
// as independent lists; the engine combines them.
func ToROption(rule rrule.Rule, dtstart time.Time) (rrulego.ROption, error) {
	if err := rrule.Validate(rule); err != nil {
		return rrulego.ROption{}, err
	}

	freq, ok := frequencies[rule.Frequency]
	if !ok {
		return rrulego.ROption{}, rrule.Unsupported("frequency %s has no rrule-go equivalent", rule.Frequency)
	}

	opt := rrulego.ROption{
		Freq:     freq,
		Dtstart:  dtstart,
		Interval: rule.Interval,
	}
	if rule.ByMinute.Len() > 0 {
		opt.Byminute = rule.ByMinute.Sorted()
	}
	if rule.ByHour.Len() > 0 {
		opt.Byhour = rule.ByHour.Sorted()
	}
	for _, d := range rule.ByDay.Sorted() {
		opt.Byweekday = append(opt.Byweekday, weekdays[d])
	}
	if d, ok := rule.WeekStart.Get(); ok {
		opt.Wkst = weekdays[d]
	}
	return opt, nil
}
