// Command intl-tables regenerates the bundled locale tables from a
// CLDR core data directory.
//
// Usage:
//
//	intl-tables -cldr /path/to/cldr/common -locale en,en-GB,nl -out tables_data.go
package main

import (
	"bytes"
	"errors"
	"flag"
	"fmt"
	"go/format"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"

	cldr "golang.org/x/text/unicode/cldr"
)

type generatorConfig struct {
	pkg      string
	out      string
	cldrPath string
	locales  []string
}

type tablesPayload struct {
	Locale       string
	MonthsWide   []string
	MonthsAbbrev []string
	DaysWide     []string
	DaysAbbrev   []string

	TextPattern    string
	NumericPattern string
	WeekdayPrefix  string

	DecimalSep    string
	GroupSep      string
	CodePattern   string
	SymbolPattern string
}

// dayOrder maps CLDR day identifiers onto Monday-first slots.
var dayOrder = map[string]int{
	"mon": 0, "tue": 1, "wed": 2, "thu": 3, "fri": 4, "sat": 5, "sun": 6,
}

type localeFlag struct {
	items []string
}

func (f *localeFlag) String() string {
	return strings.Join(f.items, ",")
}

func (f *localeFlag) Set(value string) error {
	for _, part := range strings.Split(value, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		f.items = append(f.items, part)
	}
	return nil
}

func main() {
	cfg, err := parseFlags()
	if err != nil {
		reportError(err)
	}

	if err := run(cfg); err != nil {
		reportError(err)
	}
}

func reportError(err error) {
	fmt.Fprintf(os.Stderr, "intl-tables: %v\n", err)
	os.Exit(1)
}

func parseFlags() (generatorConfig, error) {
	var cfg generatorConfig
	var localeList localeFlag

	flag.StringVar(&cfg.pkg, "pkg", "intl", "package name for generated file")
	flag.StringVar(&cfg.out, "out", "tables_data.go", "path to generated Go file")
	flag.StringVar(&cfg.cldrPath, "cldr", "", "path to CLDR core data directory (expects subdirectories like main/)")
	flag.Var(&localeList, "locale", "locale to generate. Repeat flag or comma-separate to add more.")

	flag.Parse()

	if len(localeList.items) == 0 {
		return generatorConfig{}, errors.New("at least one -locale value is required")
	}

	for _, item := range localeList.items {
		cfg.locales = append(cfg.locales, strings.ReplaceAll(item, "_", "-"))
	}

	if cfg.cldrPath == "" {
		cfg.cldrPath = os.Getenv("CLDR_CORE_DIR")
	}

	if cfg.cldrPath == "" {
		return generatorConfig{}, errors.New("missing CLDR data directory (set -cldr or CLDR_CORE_DIR)")
	}

	return cfg, nil
}

func run(cfg generatorConfig) error {
	data, err := loadCLDR(cfg.cldrPath)
	if err != nil {
		return err
	}

	var payloads []tablesPayload
	for _, locale := range cfg.locales {
		payload, err := buildTables(data, locale)
		if err != nil {
			return fmt.Errorf("build tables for %s: %w", locale, err)
		}
		payloads = append(payloads, payload)
	}

	sort.Slice(payloads, func(i, j int) bool {
		return payloads[i].Locale < payloads[j].Locale
	})

	source, err := renderSource(cfg.pkg, payloads)
	if err != nil {
		return err
	}

	if err := ensureDir(cfg.out); err != nil {
		return err
	}

	return os.WriteFile(cfg.out, source, 0o644)
}

func loadCLDR(path string) (*cldr.CLDR, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, fmt.Errorf("stat CLDR directory: %w", err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("CLDR path %q is not a directory", path)
	}

	var decoder cldr.Decoder
	decoder.SetSectionFilter("main")

	data, err := decoder.DecodePath(path)
	if err != nil {
		return nil, fmt.Errorf("decode CLDR data: %w", err)
	}
	return data, nil
}

func buildTables(data *cldr.CLDR, locale string) (tablesPayload, error) {
	payload := tablesPayload{Locale: locale}

	ldml := findLDML(data, locale)
	if ldml == nil {
		return payload, errors.New("missing LDML data")
	}

	cal := gregorianCalendar(ldml)
	if cal == nil {
		return payload, errors.New("missing gregorian calendar")
	}

	payload.MonthsWide = extractMonths(cal, "wide")
	payload.MonthsAbbrev = extractMonths(cal, "abbreviated")
	payload.DaysWide = extractDays(cal, "wide")
	payload.DaysAbbrev = extractDays(cal, "abbreviated")

	long := skeletonize(datePattern(cal, "long"))
	short := skeletonize(datePattern(cal, "short"))
	full := skeletonize(datePattern(cal, "full"))

	payload.TextPattern = stripWeekday(long)
	payload.NumericPattern = stripWeekday(short)
	payload.WeekdayPrefix = weekdayPrefix(full)

	payload.DecimalSep, payload.GroupSep = numberSymbols(ldml)
	payload.SymbolPattern, payload.CodePattern = moneyPatterns(ldml)

	if err := validatePayload(payload); err != nil {
		return payload, err
	}
	return payload, nil
}

func validatePayload(payload tablesPayload) error {
	if len(payload.MonthsWide) != 12 || len(payload.MonthsAbbrev) != 12 {
		return errors.New("incomplete month names")
	}
	if len(payload.DaysWide) != 7 || len(payload.DaysAbbrev) != 7 {
		return errors.New("incomplete weekday names")
	}
	if payload.TextPattern == "" || payload.NumericPattern == "" {
		return errors.New("missing date patterns")
	}
	if payload.DecimalSep == "" {
		return errors.New("missing number symbols")
	}
	return nil
}

func findLDML(data *cldr.CLDR, locale string) *cldr.LDML {
	if data == nil {
		return nil
	}
	candidate := strings.ReplaceAll(locale, "-", "_")
	for {
		if candidate == "" {
			break
		}
		if ldml := data.RawLDML(candidate); ldml != nil {
			return ldml
		}
		if idx := strings.LastIndex(candidate, "_"); idx >= 0 {
			candidate = candidate[:idx]
			continue
		}
		break
	}
	return data.RawLDML("root")
}

func gregorianCalendar(ldml *cldr.LDML) *cldr.Calendar {
	if ldml == nil || ldml.Dates == nil || ldml.Dates.Calendars == nil {
		return nil
	}
	for _, cal := range ldml.Dates.Calendars.Calendar {
		if cal != nil && cal.Type == "gregorian" {
			return cal
		}
	}
	return nil
}

func extractMonths(cal *cldr.Calendar, width string) []string {
	if cal.Months == nil {
		return nil
	}

	names := make([]string, 12)
	found := 0
	for _, ctx := range cal.Months.MonthContext {
		if ctx == nil || (ctx.Type != "" && ctx.Type != "format") {
			continue
		}
		for _, w := range ctx.MonthWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, m := range w.Month {
				if m == nil {
					continue
				}
				idx := monthIndex(m.Type)
				if idx < 0 || names[idx] != "" {
					continue
				}
				names[idx] = m.Data()
				found++
			}
		}
	}

	if found != 12 {
		return nil
	}
	return names
}

func monthIndex(typ string) int {
	n, err := strconv.Atoi(typ)
	if err != nil || n < 1 || n > 12 {
		return -1
	}
	return n - 1
}

func extractDays(cal *cldr.Calendar, width string) []string {
	if cal.Days == nil {
		return nil
	}

	names := make([]string, 7)
	found := 0
	for _, ctx := range cal.Days.DayContext {
		if ctx == nil || (ctx.Type != "" && ctx.Type != "format") {
			continue
		}
		for _, w := range ctx.DayWidth {
			if w == nil || w.Type != width {
				continue
			}
			for _, d := range w.Day {
				if d == nil {
					continue
				}
				idx, ok := dayOrder[d.Type]
				if !ok || names[idx] != "" {
					continue
				}
				names[idx] = d.Data()
				found++
			}
		}
	}

	if found != 7 {
		return nil
	}
	return names
}

func datePattern(cal *cldr.Calendar, length string) string {
	if cal.DateFormats == nil {
		return ""
	}
	for _, l := range cal.DateFormats.DateFormatLength {
		if l == nil || l.Type != length {
			continue
		}
		for _, f := range l.DateFormat {
			if f == nil {
				continue
			}
			for _, p := range f.Pattern {
				if p == nil {
					continue
				}
				if data := p.Data(); data != "" {
					return data
				}
			}
		}
	}
	return ""
}

// skeletonize rewrites a CLDR date pattern into the placeholder form
// the formatter consumes: field letter runs become {year}, {month},
// {day} or {weekday}, quoted sections become plain literals, and
// unsupported fields are dropped.
func skeletonize(pattern string) string {
	var b strings.Builder
	runes := []rune(pattern)

	for i := 0; i < len(runes); {
		r := runes[i]

		if r == '\'' {
			if i+1 < len(runes) && runes[i+1] == '\'' {
				b.WriteRune('\'')
				i += 2
				continue
			}
			j := i + 1
			for j < len(runes) && runes[j] != '\'' {
				b.WriteRune(runes[j])
				j++
			}
			i = j + 1
			continue
		}

		if isPatternLetter(r) {
			j := i
			for j < len(runes) && runes[j] == r {
				j++
			}
			switch r {
			case 'y', 'Y', 'u':
				b.WriteString("{year}")
			case 'M', 'L':
				b.WriteString("{month}")
			case 'd':
				b.WriteString("{day}")
			case 'E', 'e', 'c':
				b.WriteString("{weekday}")
			}
			i = j
			continue
		}

		b.WriteRune(r)
		i++
	}

	return b.String()
}

func isPatternLetter(r rune) bool {
	return (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z')
}

// stripWeekday removes a leading or trailing {weekday} placeholder
// together with its separator; the weekday slot is handled by
// WeekdayPrefix instead.
func stripWeekday(pattern string) string {
	if idx := strings.Index(pattern, "{weekday}"); idx >= 0 {
		rest := pattern[idx+len("{weekday}"):]
		if idx == 0 {
			return strings.TrimLeft(rest, ", ")
		}
		pattern = strings.TrimRight(pattern[:idx], ", ") + rest
	}
	return pattern
}

// weekdayPrefix extracts the "{weekday}, " style lead-in from the full
// date pattern, falling back to a plain comma join.
func weekdayPrefix(full string) string {
	if !strings.HasPrefix(full, "{weekday}") {
		return "{weekday}, "
	}
	rest := full[len("{weekday}"):]
	if idx := strings.Index(rest, "{"); idx >= 0 {
		return "{weekday}" + rest[:idx]
	}
	return "{weekday} "
}

func numberSymbols(ldml *cldr.LDML) (decimal, group string) {
	if ldml.Numbers == nil {
		return "", ""
	}
	for _, sym := range ldml.Numbers.Symbols {
		if sym == nil {
			continue
		}
		if sym.NumberSystem != "" && sym.NumberSystem != "latn" {
			continue
		}
		if decimal == "" && len(sym.Decimal) > 0 && sym.Decimal[0] != nil {
			decimal = sym.Decimal[0].Data()
		}
		if group == "" && len(sym.Group) > 0 && sym.Group[0] != nil {
			group = sym.Group[0].Data()
		}
	}
	return decimal, group
}

// moneyPatterns derives the symbol and code arrangements from the
// standard CLDR currency pattern, e.g. "¤#,##0.00" or "#,##0.00 ¤".
func moneyPatterns(ldml *cldr.LDML) (symbolPattern, codePattern string) {
	pattern := currencyPattern(ldml)
	if pattern == "" {
		return "{symbol}{amount}", "{code} {amount}"
	}

	// Positive subpattern only.
	if idx := strings.Index(pattern, ";"); idx >= 0 {
		pattern = pattern[:idx]
	}

	before, after, found := strings.Cut(pattern, "¤")
	if !found {
		return "{symbol}{amount}", "{code} {amount}"
	}

	if strings.ContainsAny(before, "#0") {
		sep := trailingSeparator(before)
		symbolPattern = "{amount}" + sep + "{symbol}"
		codePattern = "{amount}" + orSpace(sep) + "{code}"
		return symbolPattern, codePattern
	}

	sep := leadingSeparator(after)
	symbolPattern = "{symbol}" + sep + "{amount}"
	codePattern = "{code}" + orSpace(sep) + "{amount}"
	return symbolPattern, codePattern
}

// trailingSeparator returns the run of non-numeric characters at the
// end of the numeric half of a currency pattern.
func trailingSeparator(numeric string) string {
	end := len(numeric)
	for end > 0 {
		r := numeric[end-1]
		if r == '#' || r == '0' || r == ',' || r == '.' {
			break
		}
		end--
	}
	return numeric[end:]
}

func leadingSeparator(numeric string) string {
	start := 0
	for start < len(numeric) {
		r := numeric[start]
		if r == '#' || r == '0' || r == ',' || r == '.' {
			break
		}
		start++
	}
	return numeric[:start]
}

// orSpace keeps ISO codes readable: a bare "USD111,222.33" never
// appears in CLDR output, so an empty separator widens to one space.
func orSpace(sep string) string {
	if sep == "" {
		return " "
	}
	return sep
}

func currencyPattern(ldml *cldr.LDML) string {
	if ldml.Numbers == nil {
		return ""
	}
	for _, cf := range ldml.Numbers.CurrencyFormats {
		if cf == nil {
			continue
		}
		if cf.NumberSystem != "" && cf.NumberSystem != "latn" {
			continue
		}
		for _, l := range cf.CurrencyFormatLength {
			if l == nil || (l.Type != "" && l.Type != "standard") {
				continue
			}
			for _, f := range l.CurrencyFormat {
				if f == nil || (f.Type != "" && f.Type != "standard") {
					continue
				}
				for _, p := range f.Pattern {
					if p == nil {
						continue
					}
					if data := p.Data(); data != "" {
						return data
					}
				}
			}
		}
	}
	return ""
}

func renderSource(pkg string, payloads []tablesPayload) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteString("// Code generated by intl-tables. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n\n", pkg)

	buf.WriteString("var localeTablesData = map[string]LocaleTables{\n")
	for _, p := range payloads {
		fmt.Fprintf(&buf, "\t%q: {\n", p.Locale)
		fmt.Fprintf(&buf, "\t\tLocale: %q,\n", p.Locale)

		buf.WriteString("\t\tCalendar: CalendarRules{\n")
		writeNameList(&buf, "MonthsWide", p.MonthsWide, 6)
		writeNameList(&buf, "MonthsAbbrev", p.MonthsAbbrev, 6)
		writeNameList(&buf, "DaysWide", p.DaysWide, 7)
		writeNameList(&buf, "DaysAbbrev", p.DaysAbbrev, 7)
		fmt.Fprintf(&buf, "\t\t\tTextPattern:    %q,\n", p.TextPattern)
		fmt.Fprintf(&buf, "\t\t\tNumericPattern: %q,\n", p.NumericPattern)
		fmt.Fprintf(&buf, "\t\t\tWeekdayPrefix:  %q,\n", p.WeekdayPrefix)
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t\tMoney: MoneyRules{\n")
		fmt.Fprintf(&buf, "\t\t\tDecimalSep:    %q,\n", p.DecimalSep)
		fmt.Fprintf(&buf, "\t\t\tGroupSep:      %q,\n", p.GroupSep)
		fmt.Fprintf(&buf, "\t\t\tCodePattern:   %q,\n", p.CodePattern)
		fmt.Fprintf(&buf, "\t\t\tSymbolPattern: %q,\n", p.SymbolPattern)
		buf.WriteString("\t\t},\n")

		buf.WriteString("\t},\n")
	}
	buf.WriteString("}\n")

	return format.Source(buf.Bytes())
}

func writeNameList(buf *bytes.Buffer, field string, names []string, perLine int) {
	fmt.Fprintf(buf, "\t\t\t%s: []string{\n", field)
	for i := 0; i < len(names); i += perLine {
		end := i + perLine
		if end > len(names) {
			end = len(names)
		}
		buf.WriteString("\t\t\t\t")
		for j := i; j < end; j++ {
			fmt.Fprintf(buf, "%q,", names[j])
			if j < end-1 {
				buf.WriteString(" ")
			}
		}
		buf.WriteString("\n")
	}
	buf.WriteString("\t\t\t},\n")
}

func ensureDir(path string) error {
	dir := filepath.Dir(path)
	if dir == "." || dir == "" {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}
