package intl

import (
	"strings"
	"time"
)

// PartType identifies the role a fragment of formatted output plays.
type PartType string

const (
	PartYear     PartType = "year"
	PartMonth    PartType = "month"
	PartDay      PartType = "day"
	PartWeekday  PartType = "weekday"
	PartLiteral  PartType = "literal"
	PartInteger  PartType = "integer"
	PartGroup    PartType = "group"
	PartDecimal  PartType = "decimal"
	PartFraction PartType = "fraction"
	PartCurrency PartType = "currency"

	// partText marks a matched run of letters whose role (month or
	// weekday) is only decided once the surrounding match is known.
	partText PartType = "text"
)

// Part is one typed fragment of formatted output. Concatenating the
// values of a full part slice reproduces the formatted string.
type Part struct {
	Type  PartType `json:"type"`
	Value string   `json:"value"`
}

// Width selects how wide a date field renders.
type Width string

const (
	WidthNumeric  Width = "numeric"
	WidthTwoDigit Width = "2-digit"
	WidthShort    Width = "short"
	WidthLong     Width = "long"
)

// Strategy selects how a currency is displayed.
type Strategy string

const (
	StrategyCode   Strategy = "code"
	StrategySymbol Strategy = "symbol"
)

// DateOptions mirrors the option surface of a locale-aware date
// formatter. Zero-valued fields are omitted from output; a fully zero
// DateOptions asks for the locale's numeric day/month/year rendering.
//
// Format, when set, bypasses the locale pattern entirely: it is a
// template over the sentinel letters y (year), M (month), d (day) and
// E (weekday), where run length selects the width (yy two-digit, yyyy
// numeric, M numeric, MM two-digit, MMM short, MMMM long, E or EEE
// short, EEEE long). Any other rune is emitted verbatim.
type DateOptions struct {
	Year    Width  `json:"year,omitempty"`
	Month   Width  `json:"month,omitempty"`
	Day     Width  `json:"day,omitempty"`
	Weekday Width  `json:"weekday,omitempty"`
	Format  string `json:"format,omitempty"`
}

// IsZero reports whether no field and no template was requested.
func (o DateOptions) IsZero() bool {
	return o.Year == "" && o.Month == "" && o.Day == "" && o.Weekday == "" && o.Format == ""
}

// key renders a canonical cache key for the option set.
func (o DateOptions) key() string {
	var b strings.Builder
	b.WriteString("y=")
	b.WriteString(string(o.Year))
	b.WriteString(";M=")
	b.WriteString(string(o.Month))
	b.WriteString(";d=")
	b.WriteString(string(o.Day))
	b.WriteString(";E=")
	b.WriteString(string(o.Weekday))
	if o.Format != "" {
		b.WriteString(";f=")
		b.WriteString(o.Format)
	}
	return b.String()
}

// MoneyOptions mirrors the option surface of a locale-aware currency
// formatter.
//
// Format, when set, bypasses the locale pattern: it is a template over
// the sentinel letters i (amount), C (currency code) and CC (currency
// symbol), with every other rune emitted verbatim.
type MoneyOptions struct {
	Currency Strategy `json:"currency,omitempty"`
	Format   string   `json:"format,omitempty"`
}

func (o MoneyOptions) key() string {
	var b strings.Builder
	b.WriteString("c=")
	b.WriteString(string(o.Currency))
	if o.Format != "" {
		b.WriteString(";f=")
		b.WriteString(o.Format)
	}
	return b.String()
}

// Money pairs an amount with its ISO 4217 currency code.
type Money struct {
	Currency string  `json:"currency"`
	Amount   float64 `json:"amount"`
}

// Datum is one named entry of a lookup table: a month name bound to
// its 1-12 number, or a weekday name bound to its ISO 1-7 number.
type Datum struct {
	Name  string `json:"name"`
	Value int    `json:"value"`
}

// CurrencyDatum binds a displayed currency token to its ISO 4217 code.
type CurrencyDatum struct {
	Name string `json:"name"`
	Code string `json:"code"`
}

// isoWeekday converts Go's Sunday-first weekday to ISO numbering,
// where Monday is 1 and Sunday is 7.
func isoWeekday(d time.Weekday) int {
	if d == time.Sunday {
		return 7
	}
	return int(d)
}

// utcDate builds the midnight-UTC instant every parse result uses.
func utcDate(year, month, day int) time.Time {
	return time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC)
}
