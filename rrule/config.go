package rrule

// ParserConfig controls how strictly Parse treats values it cannot decode.
type ParserConfig struct {
	// StrictValues fails the parse on any undecodable FREQ, INTERVAL or WKST
	// value. When false those values are dropped: FREQ becomes unset, INTERVAL
	// keeps its previous value and WKST is left alone. BYMINUTE, BYHOUR and
	// BYDAY always fail on a bad token.
	StrictValues bool
	// RejectDuplicateKeys fails the parse when a key appears twice. When false
	// the last occurrence wins.
	RejectDuplicateKeys bool
}

// DefaultParserConfig fails on every bad token and on repeated keys.
var DefaultParserConfig = ParserConfig{
	StrictValues:        true,
	RejectDuplicateKeys: true,
}

// LenientParserConfig accepts what older RRULE producers emit: unknown FREQ,
// INTERVAL and WKST values are ignored and the last duplicate key wins.
var LenientParserConfig = ParserConfig{
	StrictValues:        false,
	RejectDuplicateKeys: false,
}
