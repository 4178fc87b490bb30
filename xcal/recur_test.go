package xcal

import (
	"testing"

	"github.com/beevik/etree"
	"github.com/cyp0633/rrulekit/rrule"
	"github.com/samber/mo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createElementFromXML is a test helper that creates an etree Element from XML string
func createElementFromXML(t *testing.T, xmlStr string) *etree.Element {
	doc := etree.NewDocument()
	err := doc.ReadFromString(xmlStr)
	if err != nil {
		t.Fatalf("Failed to parse XML: %v", err)
	}
	return doc.Root()
}

func TestEncodeString(t *testing.T) {
	rule := rrule.Rule{
		Frequency: rrule.Weekly,
		Interval:  2,
		ByMinute:  rrule.NewSet(30),
		ByHour:    rrule.NewSet(18, 9),
		ByDay:     rrule.NewSet(rrule.Friday, rrule.Monday),
		WeekStart: mo.Some(rrule.Sunday),
	}

	s, err := EncodeString(rule)
	require.NoError(t, err)
	assert.Equal(t,
		`<recur xmlns="urn:ietf:params:xml:ns:icalendar-2.0">`+
			`<freq>WEEKLY</freq><interval>2</interval>`+
			`<byminute>30</byminute><byhour>9</byhour><byhour>18</byhour>`+
			`<byday>MO</byday><byday>FR</byday><wkst>SU</wkst></recur>`,
		s)
}

func TestEncode_DefaultIntervalOmitted(t *testing.T) {
	recur, err := Encode(rrule.New(rrule.Daily))
	require.NoError(t, err)
	require.Len(t, recur.ChildElements(), 1)
	assert.Equal(t, "freq", recur.ChildElements()[0].Tag)
	assert.Nil(t, recur.SelectElement("interval"))
}

func TestEncode_Invalid(t *testing.T) {
	_, err := Encode(rrule.Rule{Frequency: rrule.Daily, Interval: 1, ByMinute: rrule.NewSet(60)})
	assert.ErrorIs(t, err, rrule.ErrInvalidInput)
}

func TestDecode(t *testing.T) {
	recur := createElementFromXML(t, `
    <X:recur xmlns:X="urn:ietf:params:xml:ns:icalendar-2.0">
        <X:freq>DAILY</X:freq>
        <X:byminute>15</X:byminute>
        <X:byminute>30</X:byminute>
        <X:byhour> 1 </X:byhour>
        <X:byhour>2</X:byhour>
    </X:recur>
    `)

	rule, err := Decode(recur)
	require.NoError(t, err)
	assert.Equal(t, rrule.Daily, rule.Frequency)
	assert.Equal(t, 1, rule.Interval)
	assert.Equal(t, []int{15, 30}, rule.ByMinute.Sorted())
	assert.Equal(t, []int{1, 2}, rule.ByHour.Sorted())
}

func TestDecode_RoundTrip(t *testing.T) {
	rule := rrule.Rule{
		Frequency: rrule.Weekly,
		Interval:  3,
		ByDay:     rrule.NewSet(rrule.Saturday, rrule.Sunday),
		WeekStart: mo.Some(rrule.Monday),
	}

	s, err := EncodeString(rule)
	require.NoError(t, err)

	decoded, err := DecodeString(s)
	require.NoError(t, err)
	assert.True(t, rule.Equal(decoded))
}

func TestDecode_Errors(t *testing.T) {
	tests := []struct {
		name string
		xml  string
		kind error
	}{
		{
			name: "Unsupported part",
			xml:  `<recur><freq>DAILY</freq><count>10</count></recur>`,
			kind: rrule.ErrUnknownOrUnsupported,
		},
		{
			name: "Wrong root",
			xml:  `<rrule><freq>DAILY</freq></rrule>`,
			kind: rrule.ErrUnknownOrUnsupported,
		},
		{
			name: "Empty recur",
			xml:  `<recur/>`,
			kind: rrule.ErrEmptyRule,
		},
		{
			name: "Missing frequency",
			xml:  `<recur><interval>2</interval></recur>`,
			kind: rrule.ErrMissingFrequency,
		},
		{
			name: "Repeated frequency",
			xml:  `<recur><freq>DAILY</freq><freq>WEEKLY</freq></recur>`,
			kind: rrule.ErrDuplicateRulePart,
		},
		{
			name: "Bad day code",
			xml:  `<recur><freq>WEEKLY</freq><byday>XX</byday></recur>`,
			kind: rrule.ErrInvalidRulePart,
		},
		{
			name: "Separators inside a value",
			xml:  `<recur><freq>DAILY;BYHOUR=5</freq></recur>`,
			kind: rrule.ErrInvalidRulePart,
		},
		{
			name: "Out of range values",
			xml:  `<recur><freq>DAILY</freq><interval>0</interval><byhour>24</byhour></recur>`,
			kind: rrule.ErrMultiple,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeString(tt.xml)
			assert.ErrorIs(t, err, tt.kind)
		})
	}

	_, err := Decode(nil)
	assert.ErrorIs(t, err, rrule.ErrUnknownOrUnsupported)

	_, err = DecodeString("")
	assert.Error(t, err)
}

func TestAddNamespace(t *testing.T) {
	doc := etree.NewDocument()
	AddNamespace(doc) // no root, no-op

	doc.SetRoot(etree.NewElement("recur"))
	AddNamespace(doc)
	assert.Equal(t, Namespace, doc.Root().SelectAttrValue("xmlns", ""))
}
