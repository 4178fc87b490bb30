package rrule

import (
	"strconv"
	"strings"

	"github.com/samber/mo"
)

// Parser turns rule text into a Rule. It only checks syntax; call Validate
// for range checks.
type Parser struct {
	config ParserConfig
}

// NewParser creates a parser with the given configuration.
func NewParser(config ParserConfig) *Parser {
	return &Parser{config: config}
}

var defaultParser = NewParser(DefaultParserConfig)

// Parse parses text with DefaultParserConfig.
func Parse(text string) (Rule, error) {
	return defaultParser.Parse(text)
}

// TryParse is Parse with the outcome packed into a mo.Result.
func TryParse(text string) mo.Result[Rule] {
	r, err := Parse(text)
	return mo.TupleToResult(r, err)
}

// Config returns the parser's configuration.
func (p *Parser) Config() ParserConfig {
	return p.config
}

// Parse splits text into KEY=value parts and decodes each one. Any failing
// part aborts the whole parse; the returned Rule is only meaningful when err
// is nil.
func (p *Parser) Parse(text string) (Rule, error) {
	if text == "" {
		return Rule{}, &RuleError{Kind: KindEmptyRule}
	}

	rule := New(FrequencyUnset)
	seen := make(map[PartKey]bool, len(partKeyCodes))

	for _, part := range strings.Split(text, ";") {
		tokens := strings.Split(part, "=")
		if len(tokens) != 2 {
			return Rule{}, newInvalidRuleString(text)
		}
		key, ok := ParsePartKey(tokens[0])
		if !ok {
			return Rule{}, newInvalidRuleString(text)
		}
		value := strings.TrimSpace(tokens[1])
		if value == "" {
			return Rule{}, newInvalidRulePart(key, value, text)
		}
		if seen[key] && p.config.RejectDuplicateKeys {
			return Rule{}, newDuplicateRulePart(key, value, text)
		}
		seen[key] = true

		if err := p.decodePart(&rule, key, value, text); err != nil {
			return Rule{}, err
		}
	}

	if rule.Frequency == FrequencyUnset {
		return Rule{}, &RuleError{Kind: KindMissingFrequency, Text: text}
	}
	return rule, nil
}

func (p *Parser) decodePart(rule *Rule, key PartKey, value, text string) error {
	switch key {
	case KeyFreq:
		freq, ok := ParseFrequency(value)
		if !ok && p.config.StrictValues {
			return newInvalidRulePart(key, value, text)
		}
		rule.Frequency = freq

	case KeyInterval:
		n, err := strconv.Atoi(value)
		if err != nil {
			if p.config.StrictValues {
				return newInvalidRulePart(key, value, text)
			}
			return nil
		}
		rule.Interval = n

	case KeyByMinute, KeyByHour:
		vals, ok := splitList(value, func(tok string) (int, bool) {
			n, err := strconv.Atoi(tok)
			return n, err == nil
		})
		if !ok {
			return newInvalidRulePart(key, value, text)
		}
		if key == KeyByMinute {
			rule.ByMinute = NewSet(vals...)
		} else {
			rule.ByHour = NewSet(vals...)
		}

	case KeyByDay:
		days, ok := splitList(value, ParseWeekday)
		if !ok {
			return newInvalidRulePart(key, value, text)
		}
		rule.ByDay = NewSet(days...)

	case KeyWeekStart:
		day, ok := ParseWeekday(value)
		if !ok {
			if p.config.StrictValues {
				return newInvalidRulePart(key, value, text)
			}
			return nil
		}
		rule.WeekStart = mo.Some(day)
	}
	return nil
}

// splitList decodes a comma-separated value; it fails if any token does not decode.
func splitList[T any](value string, decode func(string) (T, bool)) ([]T, bool) {
	tokens := strings.Split(value, ",")
	out := make([]T, 0, len(tokens))
	for _, tok := range tokens {
		v, ok := decode(strings.TrimSpace(tok))
		if !ok {
			return nil, false
		}
		out = append(out, v)
	}
	return out, true
}
