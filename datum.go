package intl

import (
	"regexp"
	"sort"
	"strconv"
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/currency"
	"golang.org/x/text/language"
)

// currencyCodes is the set of ISO 4217 codes every currency lookup
// carries. Codes outside the set still parse when they name a real
// currency; they just never surface as locale symbols.
var currencyCodes = []string{
	"USD", "EUR", "JPY", "GBP", "CHF",
	"AUD", "NZD", "CAD", "SEK", "NOK",
	"BRL", "CNY", "DKK", "INR", "RUB",
	"HKD", "IDR", "KRW", "MXN", "PLN",
	"SAR", "THB", "TRY", "TWD", "ZAR",
}

// DatumLookup maps a locale's displayed names for a date field to
// their numeric values: months to 1-12, weekdays to ISO 1-7. Name
// matching is case-insensitive under the locale's casing rules.
type DatumLookup struct {
	table  string
	locale string
	tag    language.Tag
	data   []Datum
	index  map[string]int
}

func newDatumLookup(table, locale string, data []Datum) *DatumLookup {
	l := &DatumLookup{
		table:  table,
		locale: locale,
		tag:    localeTag(locale),
		data:   data,
		index:  make(map[string]int, len(data)),
	}
	for _, d := range data {
		folded := l.fold(d.Name)
		if _, exists := l.index[folded]; !exists {
			l.index[folded] = d.Value
		}
	}
	return l
}

// Get resolves a displayed name to its value.
func (l *DatumLookup) Get(name string) (int, error) {
	if v, ok := l.index[l.fold(strings.TrimSpace(name))]; ok {
		return v, nil
	}
	return 0, &NotFoundError{Name: name, Table: l.table, Locale: l.locale}
}

// Has reports whether a name is present without the error ceremony.
func (l *DatumLookup) Has(name string) bool {
	_, ok := l.index[l.fold(strings.TrimSpace(name))]
	return ok
}

// name returns the displayed name bound to a value, or "" when the
// table has none.
func (l *DatumLookup) name(value int) string {
	for _, d := range l.data {
		if d.Value == value {
			return d.Name
		}
	}
	return ""
}

// Pattern renders the lookup as a regular expression alternation,
// longest name first so no name can shadow a longer one that shares
// its prefix.
func (l *DatumLookup) Pattern() string {
	names := make([]string, 0, len(l.data))
	for _, d := range l.data {
		names = append(names, d.Name)
	}
	return alternation(names)
}

func (l *DatumLookup) fold(s string) string {
	return cases.Lower(l.tag).String(s)
}

// CurrencyLookup maps displayed currency tokens (ISO codes, locale
// symbols, caller-supplied synonyms) to ISO 4217 codes.
type CurrencyLookup struct {
	locale string
	tag    language.Tag
	data   []CurrencyDatum
	index  map[string]string
}

func newCurrencyLookup(locale string, data []CurrencyDatum) *CurrencyLookup {
	l := &CurrencyLookup{
		locale: locale,
		tag:    localeTag(locale),
		data:   data,
		index:  make(map[string]string, len(data)),
	}
	for _, d := range data {
		folded := l.fold(d.Name)
		if _, exists := l.index[folded]; !exists {
			l.index[folded] = d.Code
		}
	}
	return l
}

// Get resolves a displayed token to an ISO code. Tokens absent from
// the table still resolve when they are themselves valid ISO codes.
func (l *CurrencyLookup) Get(name string) (string, error) {
	trimmed := strings.TrimSpace(name)
	if code, ok := l.index[l.fold(trimmed)]; ok {
		return code, nil
	}
	if unit, err := currency.ParseISO(trimmed); err == nil {
		return unit.String(), nil
	}
	return "", &NotFoundError{Name: name, Table: "currency", Locale: l.locale}
}

// Pattern renders the known tokens as a longest-first alternation,
// with a trailing three-letter arm so unlisted ISO codes still match.
func (l *CurrencyLookup) Pattern() string {
	names := make([]string, 0, len(l.data))
	for _, d := range l.data {
		names = append(names, d.Name)
	}
	return alternation(names) + `|[A-Za-z]{3}`
}

func (l *CurrencyLookup) fold(s string) string {
	return cases.Lower(l.tag).String(s)
}

// monthLookup builds the month table for a locale by rendering a
// reference date in each month through the formatting facility.
func monthLookup(f Formatter, locale string, width Width) (*DatumLookup, error) {
	data := make([]Datum, 0, 12)
	for m := 1; m <= 12; m++ {
		name, err := f.FormatDate(utcDate(2000, m, 1), locale, DateOptions{Month: width})
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &NotFoundError{Name: "month " + strconv.Itoa(m), Table: "month", Locale: locale}
		}
		data = append(data, Datum{Name: name, Value: m})
	}
	return newDatumLookup("month", locale, data), nil
}

// weekdayLookup builds the weekday table for a locale. The reference
// week starts at 2001-01-01, a Monday, so day offsets line up with
// ISO weekday numbers.
func weekdayLookup(f Formatter, locale string, width Width) (*DatumLookup, error) {
	data := make([]Datum, 0, 7)
	for wd := 1; wd <= 7; wd++ {
		name, err := f.FormatDate(utcDate(2001, 1, wd), locale, DateOptions{Weekday: width})
		if err != nil {
			return nil, err
		}
		name = strings.TrimSpace(name)
		if name == "" {
			return nil, &NotFoundError{Name: "weekday " + strconv.Itoa(wd), Table: "weekday", Locale: locale}
		}
		data = append(data, Datum{Name: name, Value: wd})
	}
	return newDatumLookup("weekday", locale, data), nil
}

// currencyLookup builds the currency table for a locale: caller
// synonyms first so they win name collisions, then every known ISO
// code, then the locale's displayed symbol for each code.
func currencyLookup(f Formatter, locale string, synonyms map[string]string) *CurrencyLookup {
	data := make([]CurrencyDatum, 0, len(currencyCodes)*2+len(synonyms))

	names := make([]string, 0, len(synonyms))
	for name := range synonyms {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		data = append(data, CurrencyDatum{Name: name, Code: synonyms[name]})
	}

	for _, code := range currencyCodes {
		data = append(data, CurrencyDatum{Name: code, Code: code})

		rendered, err := f.FormatMoney(Money{Currency: code, Amount: 1}, locale, MoneyOptions{Currency: StrategySymbol})
		if err != nil {
			continue
		}
		symbol := strings.TrimSpace(stripAmount(rendered))
		if symbol != "" && symbol != code {
			data = append(data, CurrencyDatum{Name: symbol, Code: code})
		}
	}

	return newCurrencyLookup(locale, data)
}

// stripAmount removes the numeric portion of a rendered money string,
// leaving whatever the locale displays around it.
func stripAmount(s string) string {
	return strings.Map(func(r rune) rune {
		switch {
		case unicode.IsDigit(r):
			return -1
		case r == '.' || r == ',' || r == '\'' || r == '-':
			return -1
		case unicode.IsSpace(r):
			return -1
		}
		return r
	}, s)
}

// alternation joins names into a regular expression alternation,
// longest first, with every name quoted.
func alternation(names []string) string {
	sorted := make([]string, len(names))
	copy(sorted, names)
	sort.Slice(sorted, func(i, j int) bool {
		if len(sorted[i]) != len(sorted[j]) {
			return len(sorted[i]) > len(sorted[j])
		}
		return sorted[i] < sorted[j]
	})

	var b strings.Builder
	seen := make(map[string]struct{}, len(sorted))
	for _, name := range sorted {
		if name == "" {
			continue
		}
		if _, dup := seen[name]; dup {
			continue
		}
		seen[name] = struct{}{}
		if b.Len() > 0 {
			b.WriteByte('|')
		}
		b.WriteString(regexp.QuoteMeta(name))
	}
	return b.String()
}
