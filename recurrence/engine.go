package recurrence

import (
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/cyp0633/rrulekit/rrule"
	"github.com/emersion/go-ical"
	"github.com/samber/mo"
)

// Engine reads, validates and canonicalises recurrence rules on calendar data
type Engine struct {
	parser *rrule.Parser
	cache  *RuleCache
	config EngineConfig
	logger *slog.Logger
}

// Option configures an Engine
type Option func(*Engine)

// WithLogger sets the logger for the engine and its cache
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// NewEngine creates a recurrence engine with DefaultEngineConfig
func NewEngine(opts ...Option) *Engine {
	return NewEngineWithConfig(DefaultEngineConfig, opts...)
}

// NewEngineWithConfig creates a new recurrence engine with custom configuration
func NewEngineWithConfig(config EngineConfig, opts ...Option) *Engine {
	e := &Engine{
		parser: rrule.NewParser(config.Parser),
		config: config,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}

	if config.CacheEnabled {
		e.cache = NewRuleCache(config.CacheConfig, WithCacheLogger(e.logger))
	}
	return e
}

// Close releases the engine's cache
func (e *Engine) Close() {
	if e.cache != nil {
		e.cache.Close()
	}
}

// CacheStats reports the cache contents; it is zero when caching is disabled
func (e *Engine) CacheStats() CacheStats {
	if e.cache == nil {
		return CacheStats{}
	}
	return e.cache.Stats()
}

// Rule parses and validates an RRULE value
func (e *Engine) Rule(text string) (rrule.Rule, error) {
	if e.cache != nil {
		if entry, ok := e.cache.Get(e.config.Parser, text); ok {
			return entry.Rule, entry.Err
		}
	}

	rule, err := e.parser.Parse(text)
	if err == nil {
		err = rrule.Validate(rule)
	}
	if err != nil {
		rule = rrule.Rule{}
	}

	if e.cache != nil {
		e.cache.Set(e.config.Parser, text, rule, err)
	}
	return rule, err
}

// Resolve is Rule with the outcome packed into a mo.Result
func (e *Engine) Resolve(text string) mo.Result[rrule.Rule] {
	rule, err := e.Rule(text)
	return mo.TupleToResult(rule, err)
}

// FromComponent reads the RRULE of comp. It returns ErrNoRecurrence when
// there is none.
func (e *Engine) FromComponent(comp *ical.Component) (ComponentRule, error) {
	raw, ok := RawRule(comp)
	if !ok {
		return ComponentRule{}, ErrNoRecurrence
	}

	cr := ComponentRule{Component: comp.Name, UID: componentUID(comp), Raw: raw}
	rule, err := e.Rule(raw)
	if err != nil {
		return cr, fmt.Errorf("failed to read RRULE of %s %q: %w", comp.Name, cr.UID, err)
	}
	cr.Rule = rule
	return cr, nil
}

// Canonicalize rewrites the RRULE of comp to its canonical form. It reports
// whether the property changed. Components without RRULE are left alone.
func (e *Engine) Canonicalize(comp *ical.Component) (bool, error) {
	cr, err := e.FromComponent(comp)
	if errors.Is(err, ErrNoRecurrence) {
		return false, nil
	}
	if err != nil {
		return false, err
	}
	if cr.Canonical() {
		return false, nil
	}

	if err := SetRule(comp, cr.Rule); err != nil {
		return false, err
	}
	e.logger.Debug("canonicalized RRULE",
		"component", cr.Component,
		"uid", cr.UID,
		"from", cr.Raw,
	)
	return true, nil
}

// CanonicalizeCalendar canonicalises every recurring child of cal. Components
// with an invalid RRULE are skipped and logged; their errors are joined into
// the returned error. The count of rewritten components is returned either way.
func (e *Engine) CanonicalizeCalendar(cal *ical.Calendar) (int, error) {
	changed := 0
	var errs []error
	for _, child := range cal.Children {
		ok, err := e.Canonicalize(child)
		if err != nil {
			e.logger.Warn("skipping component with invalid RRULE",
				"component", child.Name,
				"uid", componentUID(child),
				"error", err,
			)
			errs = append(errs, err)
			continue
		}
		if ok {
			changed++
		}
	}
	return changed, errors.Join(errs...)
}
