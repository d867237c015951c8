// Package monday adapts github.com/goodsign/monday as a date
// formatting facility. The registry treats it like any other black-box
// formatter: field order, literals and name tables are learned from
// its rendered output, so parsing works against monday's own localized
// names rather than the bundled tables.
package monday

import (
	"strings"
	"time"

	intl "github.com/goliatone/go-intl"
	goodsign "github.com/goodsign/monday"
)

type options struct {
	money   intl.Formatter
	locales map[string]goodsign.Locale
}

// Option configures the adapter.
type Option func(*options)

// WithMoneyFormatter sets the facility used for money rendering;
// goodsign/monday only covers dates. Defaults to the bundled facility.
func WithMoneyFormatter(f intl.Formatter) Option {
	return func(o *options) {
		o.money = f
	}
}

// WithLocale maps an additional locale onto a monday locale.
func WithLocale(locale string, target goodsign.Locale) Option {
	return func(o *options) {
		o.locales[strings.ToLower(strings.TrimSpace(locale))] = target
	}
}

// Formatter renders dates through goodsign/monday. It implements
// intl.Formatter.
type Formatter struct {
	money   intl.Formatter
	locales map[string]goodsign.Locale
}

// New builds the adapter facility.
func New(opts ...Option) *Formatter {
	cfg := options{
		locales: map[string]goodsign.Locale{
			"en":    goodsign.LocaleEnUS,
			"en-us": goodsign.LocaleEnUS,
			"en-gb": goodsign.LocaleEnGB,
			"nl":    goodsign.LocaleNlNL,
			"fr":    goodsign.LocaleFrFR,
			"de":    goodsign.LocaleDeDE,
			"es":    goodsign.LocaleEsES,
		},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	if cfg.money == nil {
		cfg.money = intl.BundledFormatter()
	}
	return &Formatter{money: cfg.money, locales: cfg.locales}
}

// layoutSet holds the Go reference layouts one monday locale renders
// with, widest to narrowest.
type layoutSet struct {
	full   string // weekday and long month
	long   string // long month
	medium string // abbreviated month
	short  string // all numeric
}

var layouts = map[goodsign.Locale]layoutSet{
	goodsign.LocaleEnUS: {"Monday, January 2, 2006", "January 2, 2006", "Jan 2, 2006", "1/2/2006"},
	goodsign.LocaleEnGB: {"Monday, 2 January 2006", "2 January 2006", "2 Jan 2006", "02/01/2006"},
	goodsign.LocaleNlNL: {"Monday 2 January 2006", "2 January 2006", "2 Jan 2006", "2-1-2006"},
	goodsign.LocaleFrFR: {"Monday 2 January 2006", "2 January 2006", "2 Jan 2006", "02/01/2006"},
	goodsign.LocaleDeDE: {"Monday, 2. January 2006", "2. January 2006", "2. Jan 2006", "02.01.2006"},
	goodsign.LocaleEsES: {"Monday, 2 de January de 2006", "2 de January de 2006", "2 Jan 2006", "2/1/2006"},
}

var defaultLayouts = layoutSet{"Monday, January 2, 2006", "January 2, 2006", "Jan 2, 2006", "1/2/2006"}

// FormatDate renders a date with monday's localized names.
func (f *Formatter) FormatDate(t time.Time, locale string, opts intl.DateOptions) (string, error) {
	target := f.localeFor(locale)

	if opts.Format != "" {
		return goodsign.Format(t, layoutFromTemplate(opts.Format), target), nil
	}
	if opts.IsZero() {
		opts = intl.DateOptions{Year: intl.WidthNumeric, Month: intl.WidthNumeric, Day: intl.WidthNumeric}
	}

	set, ok := layouts[target]
	if !ok {
		set = defaultLayouts
	}

	base := set.short
	switch opts.Month {
	case intl.WidthLong:
		base = set.long
		if opts.Weekday != "" {
			base = set.full
		}
	case intl.WidthShort:
		base = set.medium
	}

	layout := adjustLayout(base, opts)
	return goodsign.Format(t, layout, target), nil
}

// FormatMoney delegates to the wrapped money facility.
func (f *Formatter) FormatMoney(m intl.Money, locale string, opts intl.MoneyOptions) (string, error) {
	return f.money.FormatMoney(m, locale, opts)
}

func (f *Formatter) localeFor(locale string) goodsign.Locale {
	key := strings.ToLower(strings.ReplaceAll(strings.TrimSpace(locale), "_", "-"))
	if target, ok := f.locales[key]; ok {
		return target
	}
	if idx := strings.IndexByte(key, '-'); idx > 0 {
		if target, ok := f.locales[key[:idx]]; ok {
			return target
		}
	}
	return goodsign.LocaleEnUS
}

type layoutToken int

const (
	tokLiteral layoutToken = iota
	tokYear
	tokMonth
	tokDay
	tokWeekday
)

type layoutPiece struct {
	kind layoutToken
	text string
}

// Longest tokens first so "January" wins over "Jan" and "2006" over
// "2" at the same position.
var layoutTokens = []layoutPiece{
	{tokYear, "2006"},
	{tokMonth, "January"},
	{tokWeekday, "Monday"},
	{tokMonth, "Jan"},
	{tokWeekday, "Mon"},
	{tokYear, "06"},
	{tokMonth, "01"},
	{tokDay, "02"},
	{tokMonth, "1"},
	{tokDay, "2"},
}

func tokenizeLayout(layout string) []layoutPiece {
	var pieces []layoutPiece
	lit := strings.Builder{}

	flush := func() {
		if lit.Len() > 0 {
			pieces = append(pieces, layoutPiece{tokLiteral, lit.String()})
			lit.Reset()
		}
	}

	for i := 0; i < len(layout); {
		matched := false
		for _, tok := range layoutTokens {
			if strings.HasPrefix(layout[i:], tok.text) {
				flush()
				pieces = append(pieces, layoutPiece{tok.kind, tok.text})
				i += len(tok.text)
				matched = true
				break
			}
		}
		if !matched {
			lit.WriteByte(layout[i])
			i++
		}
	}
	flush()
	return pieces
}

// adjustLayout rewrites a base layout to the requested field widths,
// dropping fields the options leave out. Fields made adjacent by a
// dropped neighbour are rejoined with a single space; a requested
// weekday missing from the base layout is prepended.
func adjustLayout(base string, opts intl.DateOptions) string {
	var b strings.Builder
	pending := ""
	emitted := false
	skipped := false
	sawWeekday := false

	for _, piece := range tokenizeLayout(base) {
		if piece.kind == tokLiteral {
			pending += piece.text
			continue
		}

		value := ""
		switch piece.kind {
		case tokYear:
			value = yearToken(opts.Year)
		case tokMonth:
			value = monthToken(opts.Month)
		case tokDay:
			value = dayToken(opts.Day)
		case tokWeekday:
			value = weekdayToken(opts.Weekday)
			sawWeekday = value != ""
		}

		if value == "" {
			skipped = true
			pending = ""
			continue
		}
		if emitted {
			if skipped {
				b.WriteString(" ")
			} else {
				b.WriteString(pending)
			}
		}
		b.WriteString(value)
		pending = ""
		skipped = false
		emitted = true
	}

	layout := b.String()
	if opts.Weekday != "" && !sawWeekday {
		name := weekdayToken(opts.Weekday)
		if layout == "" {
			return name
		}
		return name + ", " + layout
	}
	return layout
}

// layoutFromTemplate translates a yyyy/MM/dd/EEE style template into a
// Go reference layout. Runs of the field letters map by length; every
// other character passes through as a literal.
func layoutFromTemplate(template string) string {
	var b strings.Builder
	runes := []rune(template)

	for i := 0; i < len(runes); {
		r := runes[i]
		if r != 'y' && r != 'M' && r != 'd' && r != 'E' {
			b.WriteRune(r)
			i++
			continue
		}

		j := i
		for j < len(runes) && runes[j] == r {
			j++
		}
		count := j - i
		switch r {
		case 'y':
			if count == 2 {
				b.WriteString("06")
			} else {
				b.WriteString("2006")
			}
		case 'M':
			switch {
			case count >= 4:
				b.WriteString("January")
			case count == 3:
				b.WriteString("Jan")
			case count == 2:
				b.WriteString("01")
			default:
				b.WriteString("1")
			}
		case 'd':
			if count >= 2 {
				b.WriteString("02")
			} else {
				b.WriteString("2")
			}
		case 'E':
			if count >= 4 {
				b.WriteString("Monday")
			} else {
				b.WriteString("Mon")
			}
		}
		i = j
	}
	return b.String()
}

func yearToken(w intl.Width) string {
	switch w {
	case "":
		return ""
	case intl.WidthTwoDigit:
		return "06"
	default:
		return "2006"
	}
}

func monthToken(w intl.Width) string {
	switch w {
	case "":
		return ""
	case intl.WidthLong:
		return "January"
	case intl.WidthShort:
		return "Jan"
	case intl.WidthTwoDigit:
		return "01"
	default:
		return "1"
	}
}

func dayToken(w intl.Width) string {
	switch w {
	case "":
		return ""
	case intl.WidthTwoDigit:
		return "02"
	default:
		return "2"
	}
}

func weekdayToken(w intl.Width) string {
	switch w {
	case "":
		return ""
	case intl.WidthLong:
		return "Monday"
	default:
		return "Mon"
	}
}
