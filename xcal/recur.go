// Package xcal maps recurrence rules to and from the <recur> element of xCal, the XML
// representation of iCalendar defined in RFC 6321.
//
// Each list value gets its own element:
//
//	<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">
//	  <freq>WEEKLY</freq>
//	  <interval>2</interval>
//	  <byday>MO</byday>
//	  <byday>FR</byday>
//	</recur>
package xcal

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
	"github.com/cyp0633/rrulekit/rrule"
)

// Encode validates rule and builds its <recur> element. Child elements follow
// the order of the xCal schema, which matches canonical key order.
func Encode(rule rrule.Rule) (*etree.Element, error) {
	if err := rrule.Validate(rule); err != nil {
		return nil, err
	}

	recur := etree.NewElement("recur")
	add := func(key rrule.PartKey, value string) {
		recur.CreateElement(strings.ToLower(key.String())).SetText(value)
	}

	add(rrule.KeyFreq, rule.Frequency.Code())
	if rule.Interval != 1 {
		add(rrule.KeyInterval, strconv.Itoa(rule.Interval))
	}
	for _, m := range rule.ByMinute.Sorted() {
		add(rrule.KeyByMinute, strconv.Itoa(m))
	}
	for _, h := range rule.ByHour.Sorted() {
		add(rrule.KeyByHour, strconv.Itoa(h))
	}
	for _, d := range rule.ByDay.Sorted() {
		add(rrule.KeyByDay, d.Code())
	}
	if d, ok := rule.WeekStart.Get(); ok {
		add(rrule.KeyWeekStart, d.Code())
	}
	return recur, nil
}

// EncodeString renders rule as a standalone <recur> document in the xCal namespace
func EncodeString(rule rrule.Rule) (string, error) {
	recur, err := Encode(rule)
	if err != nil {
		return "", err
	}
	doc := etree.NewDocument()
	doc.SetRoot(recur)
	AddNamespace(doc)
	return doc.WriteToString()
}

// Decode reads a <recur> element. Namespace prefixes are ignored. Elements for
// rule parts outside the supported set (count, until, bymonth, ...) are
// reported as unsupported. The decoded rule is parsed and validated the same
// way as rule text.
func Decode(recur *etree.Element) (rrule.Rule, error) {
	if recur == nil {
		return rrule.Rule{}, rrule.Unsupported("missing recur element")
	}
	if !strings.EqualFold(recur.Tag, "recur") {
		return rrule.Rule{}, rrule.Unsupported("expected recur element, got %s", recur.Tag)
	}

	var order []rrule.PartKey
	values := make(map[rrule.PartKey][]string)
	for _, child := range recur.ChildElements() {
		key, ok := rrule.ParsePartKey(strings.ToUpper(child.Tag))
		if !ok {
			return rrule.Rule{}, rrule.Unsupported("recur element %s", child.Tag)
		}
		value := strings.TrimSpace(child.Text())
		if strings.ContainsAny(value, ",;=") {
			return rrule.Rule{}, &rrule.RuleError{
				Kind:  rrule.KindInvalidRulePart,
				Key:   key,
				Value: value,
				Text:  fmt.Sprintf("<%s>%s</%s>", child.Tag, value, child.Tag),
			}
		}
		if _, seen := values[key]; !seen {
			order = append(order, key)
		}
		values[key] = append(values[key], value)
	}

	segments := make([]string, 0, len(order))
	for _, key := range order {
		vals := values[key]
		if isListPart(key) {
			segments = append(segments, key.String()+"="+strings.Join(vals, ","))
			continue
		}
		// Repeated scalar elements become repeated parts, which the parser rejects
		for _, v := range vals {
			segments = append(segments, key.String()+"="+v)
		}
	}

	rule, err := rrule.Parse(strings.Join(segments, ";"))
	if err != nil {
		return rrule.Rule{}, err
	}
	if err := rrule.Validate(rule); err != nil {
		return rrule.Rule{}, err
	}
	return rule, nil
}

// DecodeString parses an XML document whose root is a <recur> element
func DecodeString(s string) (rrule.Rule, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromString(s); err != nil {
		return rrule.Rule{}, fmt.Errorf("failed to parse xCal recur: %w", err)
	}
	return Decode(doc.Root())
}

func isListPart(key rrule.PartKey) bool {
	switch key {
	case rrule.KeyByMinute, rrule.KeyByHour, rrule.KeyByDay:
		return true
	default:
		return false
	}
}
