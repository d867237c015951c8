package intl

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"golang.org/x/text/currency"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// Formatter is the formatting facility a registry drives. Rendering
// must be deterministic per (locale, options) pair, and single-field
// option sets must render just that field: the name tables are built
// by formatting reference dates month by month and weekday by weekday.
type Formatter interface {
	FormatDate(t time.Time, locale string, opts DateOptions) (string, error)
	FormatMoney(m Money, locale string, opts MoneyOptions) (string, error)
}

// DatePartsFormatter is implemented by facilities that can emit typed
// date parts natively. Facilities without it have their part structure
// inferred from rendered probe output instead.
type DatePartsFormatter interface {
	FormatDateToParts(t time.Time, locale string, opts DateOptions) ([]Part, error)
}

// MoneyPartsFormatter is the money counterpart of DatePartsFormatter.
type MoneyPartsFormatter interface {
	FormatMoneyToParts(m Money, locale string, opts MoneyOptions) ([]Part, error)
}

// BundledFormatter returns the built-in formatting facility backed by
// the bundled locale tables. New uses it when no WithFormatter option
// is given; companion modules can wrap it to cover concerns their
// backend does not handle.
func BundledFormatter() Formatter {
	return newLocaleFormatter(newTablesProvider(nil, ""))
}

// localeFormatter is the bundled Formatter. Dates render from the
// locale tables; money amounts render from the locale's separator
// rules with currency symbols resolved through golang.org/x/text.
type localeFormatter struct {
	tables *tablesProvider
}

func newLocaleFormatter(tables *tablesProvider) *localeFormatter {
	return &localeFormatter{tables: tables}
}

func (f *localeFormatter) FormatDate(t time.Time, locale string, opts DateOptions) (string, error) {
	opts, err := resolveDateOptions(opts)
	if err != nil {
		return "", err
	}

	cal, _, ok := f.tables.calendarFor(locale)
	if !ok {
		return "", fmt.Errorf("intl: no calendar rules for %q", locale)
	}

	if opts.Format != "" {
		tokens, err := parseDateTemplate(opts.Format)
		if err != nil {
			return "", err
		}
		return renderDateTemplate(t, cal, tokens), nil
	}

	pattern := cal.NumericPattern
	if opts.Month == WidthShort || opts.Month == WidthLong {
		pattern = cal.TextPattern
	}

	body := renderDatePattern(pattern, t, cal, opts)
	if opts.Weekday == "" {
		return body, nil
	}

	name := weekdayName(cal, t, opts.Weekday)
	if body == "" {
		return name, nil
	}
	prefix := strings.ReplaceAll(cal.WeekdayPrefix, "{weekday}", name)
	if prefix == "" {
		prefix = name + ", "
	}
	return prefix + body, nil
}

func (f *localeFormatter) FormatMoney(m Money, locale string, opts MoneyOptions) (string, error) {
	opts, err := resolveMoneyOptions(opts)
	if err != nil {
		return "", err
	}

	unit, err := currency.ParseISO(m.Currency)
	if err != nil {
		return "", fmt.Errorf("intl: invalid currency code %q: %w", m.Currency, err)
	}

	rules, _, ok := f.tables.moneyFor(locale)
	if !ok {
		rules = MoneyRules{DecimalSep: ".", GroupSep: ",", CodePattern: "{code} {amount}", SymbolPattern: "{symbol}{amount}"}
	}

	if opts.Format != "" {
		tokens, err := parseMoneyTemplate(opts.Format)
		if err != nil {
			return "", err
		}
		return f.renderMoneyTemplate(m, locale, unit, rules, tokens), nil
	}

	amount := renderAmount(m.Amount, rules, -1)
	if opts.Currency == StrategySymbol {
		out := strings.ReplaceAll(rules.SymbolPattern, "{symbol}", f.currencySymbol(locale, unit))
		return strings.ReplaceAll(out, "{amount}", amount), nil
	}
	out := strings.ReplaceAll(rules.CodePattern, "{code}", unit.String())
	return strings.ReplaceAll(out, "{amount}", amount), nil
}

func (f *localeFormatter) renderMoneyTemplate(m Money, locale string, unit currency.Unit, rules MoneyRules, tokens []formatToken) string {
	fracDigits := -1
	for _, tok := range tokens {
		if tok.field == PartFraction {
			fracDigits = tok.count
		}
	}

	intPart, fracPart := splitAmount(m.Amount, fracDigits)

	var b strings.Builder
	for _, tok := range tokens {
		switch tok.field {
		case PartLiteral:
			b.WriteString(tok.literal)
		case PartInteger:
			b.WriteString(groupDigits(intPart, rules.GroupSep, rules.groupSize()))
			if fracDigits < 0 && fracPart != "" {
				b.WriteString(rules.DecimalSep)
				b.WriteString(fracPart)
			}
		case PartFraction:
			b.WriteString(fracPart)
		case PartCurrency:
			if tok.width == WidthLong {
				b.WriteString(f.currencySymbol(locale, unit))
			} else {
				b.WriteString(unit.String())
			}
		}
	}
	return b.String()
}

// currencySymbol derives the locale's displayed symbol for a currency
// by formatting a reference amount through x/text and stripping the
// numeric portion back out. Locales whose CLDR data carries no symbol
// fall back to the English rendering, then to the ISO code itself.
func (f *localeFormatter) currencySymbol(locale string, unit currency.Unit) string {
	if symbol := extractSymbol(message.NewPrinter(localeTag(locale)), unit); symbol != "" && symbol != unit.String() {
		return symbol
	}
	if symbol := extractSymbol(message.NewPrinter(language.English), unit); symbol != "" {
		return symbol
	}
	return unit.String()
}

func extractSymbol(p *message.Printer, unit currency.Unit) string {
	value := unit.Amount(1.0)
	full := p.Sprintf("%v", currency.Symbol(value))
	bare := p.Sprintf("%v", number.Decimal(1.0, number.MinFractionDigits(2), number.MaxFractionDigits(2)))
	symbol := strings.TrimSpace(strings.ReplaceAll(full, bare, ""))
	if strings.ContainsAny(symbol, "0123456789") {
		// Zero-decimal currencies render with fewer digits than the
		// reference amount, so the diff leaves the number behind.
		symbol = strings.TrimSpace(stripAmount(full))
	}
	return symbol
}

// renderDatePattern walks a {day}/{month}/{year} pattern, emitting the
// requested fields and the literal text joining them. Literals next to
// an omitted field are dropped; fields that end up adjacent across an
// omission are joined with a single space.
func renderDatePattern(pattern string, t time.Time, cal CalendarRules, opts DateOptions) string {
	var b strings.Builder
	pending := ""
	emitted := false
	skipped := false

	rest := pattern
	for rest != "" {
		open := strings.IndexByte(rest, '{')
		if open < 0 {
			pending += rest
			break
		}
		end := strings.IndexByte(rest[open:], '}')
		if end < 0 {
			pending += rest
			break
		}

		pending += rest[:open]
		field := rest[open+1 : open+end]
		rest = rest[open+end+1:]

		value := ""
		switch field {
		case "day":
			value = numericField(t.Day(), opts.Day)
		case "month":
			value = monthField(t, cal, opts.Month)
		case "year":
			value = yearField(t.Year(), opts.Year)
		default:
			pending += "{" + field + "}"
			continue
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

	return b.String()
}

func renderDateTemplate(t time.Time, cal CalendarRules, tokens []formatToken) string {
	var b strings.Builder
	for _, tok := range tokens {
		switch tok.field {
		case PartLiteral:
			b.WriteString(tok.literal)
		case PartYear:
			b.WriteString(yearField(t.Year(), tok.width))
		case PartMonth:
			b.WriteString(monthField(t, cal, tok.width))
		case PartDay:
			b.WriteString(numericField(t.Day(), tok.width))
		case PartWeekday:
			b.WriteString(weekdayName(cal, t, tok.width))
		}
	}
	return b.String()
}

func yearField(year int, width Width) string {
	switch width {
	case "":
		return ""
	case WidthTwoDigit:
		return fmt.Sprintf("%02d", year%100)
	default:
		return strconv.Itoa(year)
	}
}

func numericField(v int, width Width) string {
	switch width {
	case "":
		return ""
	case WidthTwoDigit:
		return fmt.Sprintf("%02d", v)
	default:
		return strconv.Itoa(v)
	}
}

func monthField(t time.Time, cal CalendarRules, width Width) string {
	m := int(t.Month())
	switch width {
	case "":
		return ""
	case WidthShort:
		if len(cal.MonthsAbbrev) == 12 {
			return cal.MonthsAbbrev[m-1]
		}
	case WidthLong:
		if len(cal.MonthsWide) == 12 {
			return cal.MonthsWide[m-1]
		}
	case WidthTwoDigit:
		return fmt.Sprintf("%02d", m)
	}
	return strconv.Itoa(m)
}

func weekdayName(cal CalendarRules, t time.Time, width Width) string {
	idx := isoWeekday(t.Weekday()) - 1
	if width == WidthLong {
		if len(cal.DaysWide) == 7 {
			return cal.DaysWide[idx]
		}
	} else if len(cal.DaysAbbrev) == 7 {
		return cal.DaysAbbrev[idx]
	}
	return t.Weekday().String()
}

// splitAmount renders an amount's integer and fraction digit runs.
// A negative digit count keeps the value's own fraction length.
func splitAmount(v float64, fracDigits int) (string, string) {
	formatted := strconv.FormatFloat(v, 'f', fracDigits, 64)
	if idx := strings.IndexByte(formatted, '.'); idx >= 0 {
		return formatted[:idx], formatted[idx+1:]
	}
	return formatted, ""
}

// renderAmount renders an amount with the locale's separators.
func renderAmount(v float64, rules MoneyRules, fracDigits int) string {
	intPart, fracPart := splitAmount(v, fracDigits)
	out := groupDigits(intPart, rules.GroupSep, rules.groupSize())
	if fracPart != "" {
		out += rules.DecimalSep + fracPart
	}
	return out
}

// groupDigits inserts the group separator into a digit run, right to
// left, leaving any leading sign alone.
func groupDigits(digits, sep string, size int) string {
	if sep == "" || size <= 0 {
		return digits
	}

	sign := ""
	if strings.HasPrefix(digits, "-") {
		sign = "-"
		digits = digits[1:]
	}
	if len(digits) <= size {
		return sign + digits
	}

	var b strings.Builder
	lead := len(digits) % size
	if lead > 0 {
		b.WriteString(digits[:lead])
	}
	for i := lead; i < len(digits); i += size {
		if b.Len() > 0 {
			b.WriteString(sep)
		}
		b.WriteString(digits[i : i+size])
	}
	return sign + b.String()
}
