// Package intl formats and parses locale-aware dates and money
// without locale-specific parsing code. Formatting goes through a
// pluggable facility; parsing is derived from it by formatting a
// probe value whose fields cannot be confused with one another,
// decomposing the rendered string into a typed schema, and
// generalizing that schema into a match pattern. Whatever a facility
// can format, the derived parsers can read back.
//
// The package-level functions delegate to a shared default Registry
// covering the bundled locales. Construct a Registry directly to plug
// in another formatting facility, overlay locale tables, or register
// currency synonyms.
package intl

import (
	"sync"
	"time"
)

var (
	defaultMu       sync.RWMutex
	defaultRegistry *Registry
)

// Default returns the shared registry, building it on first use.
func Default() *Registry {
	defaultMu.RLock()
	r := defaultRegistry
	defaultMu.RUnlock()
	if r != nil {
		return r
	}

	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRegistry == nil {
		r, err := New()
		if err != nil {
			panic("intl: build default registry: " + err.Error())
		}
		defaultRegistry = r
	}
	return defaultRegistry
}

// Configure replaces the shared registry with one built from the
// given options.
func Configure(opts ...Option) error {
	r, err := New(opts...)
	if err != nil {
		return err
	}
	defaultMu.Lock()
	defaultRegistry = r
	defaultMu.Unlock()
	return nil
}

// FormatDate renders a date for a locale using the shared registry.
func FormatDate(t time.Time, locale string, opts DateOptions) (string, error) {
	return Default().FormatDate(t, locale, opts)
}

// FormatDateToParts renders a date as typed parts.
func FormatDateToParts(t time.Time, locale string, opts DateOptions) ([]Part, error) {
	return Default().FormatDateToParts(t, locale, opts)
}

// ParseDate parses text as a date at midnight UTC. Without options
// the locale's candidate formats are tried most specific first.
func ParseDate(text, locale string, opts ...DateOptions) (time.Time, error) {
	return Default().ParseDate(text, locale, opts...)
}

// ParseDates scans a document for dates in any of the locale's
// candidate formats.
func ParseDates(text, locale string) ([]DateMatch, error) {
	return Default().ParseDates(text, locale)
}

// FormatMoney renders an amount with its currency for a locale.
func FormatMoney(m Money, locale string, opts MoneyOptions) (string, error) {
	return Default().FormatMoney(m, locale, opts)
}

// FormatMoneyToParts renders money as typed parts.
func FormatMoneyToParts(m Money, locale string, opts MoneyOptions) ([]Part, error) {
	return Default().FormatMoneyToParts(m, locale, opts)
}

// ParseMoney parses text as an amount with a currency.
func ParseMoney(text, locale string, opts ...MoneyOptions) (Money, error) {
	return Default().ParseMoney(text, locale, opts...)
}
