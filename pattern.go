package intl

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// nameTables bundles every lookup a compiled pattern consults when it
// classifies matched tokens.
type nameTables struct {
	monthShort   *DatumLookup
	monthLong    *DatumLookup
	weekdayShort *DatumLookup
	weekdayLong  *DatumLookup
	currencies   *CurrencyLookup

	union string
}

// unionPattern is the single text alternation every name slot matches:
// month and weekday names of both widths together, longest first. The
// matched token's actual role is decided after the match.
func (t *nameTables) unionPattern() string {
	if t.union != "" {
		return t.union
	}
	var names []string
	for _, l := range []*DatumLookup{t.monthLong, t.monthShort, t.weekdayLong, t.weekdayShort} {
		if l == nil {
			continue
		}
		for _, d := range l.data {
			names = append(names, d.Name)
		}
	}
	t.union = alternation(names)
	return t.union
}

// monthName returns the display name for a month value at a width.
func (t *nameTables) monthName(value int, width Width) string {
	l := t.monthShort
	if width == WidthLong {
		l = t.monthLong
	}
	if l == nil {
		return ""
	}
	return l.name(value)
}

// weekdayName returns the display name for an ISO weekday at a width.
func (t *nameTables) weekdayName(value int, width Width) string {
	l := t.weekdayShort
	if width == WidthLong {
		l = t.weekdayLong
	}
	if l == nil {
		return ""
	}
	return l.name(value)
}

// classifyMonth resolves a token against the month tables, trying the
// short names before the long ones.
func (t *nameTables) classifyMonth(token string) (int, bool) {
	for _, l := range []*DatumLookup{t.monthShort, t.monthLong} {
		if l == nil {
			continue
		}
		if v, err := l.Get(token); err == nil {
			return v, true
		}
	}
	return 0, false
}

func (t *nameTables) classifyWeekday(token string) (int, bool) {
	for _, l := range []*DatumLookup{t.weekdayShort, t.weekdayLong} {
		if l == nil {
			continue
		}
		if v, err := l.Get(token); err == nil {
			return v, true
		}
	}
	return 0, false
}

// patternGroup records the role of one capture group.
type patternGroup struct {
	ptype    PartType
	width    Width
	groupSep string
}

// formatPattern is a schema compiled into matchable form: an anchored
// expression for whole-input parsing, an unanchored one for document
// scanning, and the role of every capture group in match order.
type formatPattern struct {
	schema *formatSchema
	re     *regexp.Regexp
	scanRe *regexp.Regexp
	groups []patternGroup
	tables *nameTables
}

// patternBuilder compiles schemas against one registry's lookups.
type patternBuilder struct {
	tables   *nameTables
	groupSep string
}

func (b *patternBuilder) compile(schema *formatSchema) (*formatPattern, error) {
	var body strings.Builder
	var groups []patternGroup
	signed := false

	emit := func(g patternGroup, expr string) {
		fmt.Fprintf(&body, "(?P<g%d>%s)", len(groups), expr)
		groups = append(groups, g)
	}

	parts := schema.parts
	for i := 0; i < len(parts); i++ {
		part := parts[i]
		switch part.ptype {
		case PartLiteral:
			body.WriteString(literalPattern(part.literal))
		case PartYear:
			expr := `\d{4}`
			if part.width == WidthTwoDigit {
				expr = `\d{2}`
			}
			emit(patternGroup{ptype: PartYear, width: part.width}, expr)
		case PartDay:
			emit(patternGroup{ptype: PartDay, width: part.width}, `\d{1,2}`)
		case PartMonth:
			union := b.tables.unionPattern()
			if part.width == WidthShort || part.width == WidthLong {
				if union == "" {
					return nil, &SchemaInferenceError{Locale: schema.locale, Missing: []string{"month names"}}
				}
				emit(patternGroup{ptype: partText, width: part.width}, union)
			} else if union == "" {
				emit(patternGroup{ptype: PartMonth, width: part.width}, `\d{1,2}`)
			} else {
				emit(patternGroup{ptype: PartMonth, width: part.width}, `\d{1,2}|`+union)
			}
		case PartWeekday:
			union := b.tables.unionPattern()
			if union == "" {
				return nil, &SchemaInferenceError{Locale: schema.locale, Missing: []string{"weekday names"}}
			}
			emit(patternGroup{ptype: partText, width: part.width}, union)
		case PartInteger:
			sep, j := b.groupSep, i
			for j+2 < len(parts) && parts[j+1].ptype == PartGroup && parts[j+2].ptype == PartInteger {
				sep = parts[j+1].literal
				j += 2
			}
			i = j
			expr := integerPattern(sep)
			if schema.kind == "money" && !signed {
				// The sign rides the amount's leading cluster.
				expr = `-?` + expr
				signed = true
			}
			emit(patternGroup{ptype: PartInteger, groupSep: sep}, expr)
		case PartDecimal:
			if i+1 < len(parts) && parts[i+1].ptype == PartFraction {
				frac := parts[i+1]
				expr := fractionExpr(frac.count)
				decimal := literalExact(part.literal)
				if frac.count > 0 {
					body.WriteString(decimal)
					emit(patternGroup{ptype: PartFraction}, expr)
				} else {
					body.WriteString("(?:" + decimal)
					emit(patternGroup{ptype: PartFraction}, expr)
					body.WriteString(")?")
				}
				i++
				continue
			}
			body.WriteString(literalExact(part.literal))
		case PartFraction:
			emit(patternGroup{ptype: PartFraction}, fractionExpr(part.count))
		case PartCurrency:
			if b.tables.currencies == nil {
				return nil, fmt.Errorf("intl: no currency table for %q", schema.locale)
			}
			emit(patternGroup{ptype: PartCurrency, width: part.width}, b.tables.currencies.Pattern())
		case PartGroup:
			// consumed by the integer cluster above
		}
	}

	expr := body.String()
	re, err := regexp.Compile(`(?i)^\s*` + expr + `\s*$`)
	if err != nil {
		return nil, fmt.Errorf("intl: compile pattern for %q: %w", schema.locale, err)
	}
	scanRe, err := regexp.Compile(`(?i)\b(?:` + expr + `)\b`)
	if err != nil {
		return nil, fmt.Errorf("intl: compile scan pattern for %q: %w", schema.locale, err)
	}

	return &formatPattern{schema: schema, re: re, scanRe: scanRe, groups: groups, tables: b.tables}, nil
}

// literalPattern renders learned literal text as a tolerant character
// class: the exact runes observed, with any whitespace accepted
// wherever the probe showed whitespace.
func literalPattern(lit string) string {
	if lit == "" {
		return ""
	}

	var class strings.Builder
	hasSpace := false
	seen := make(map[rune]struct{}, len(lit))
	for _, r := range lit {
		if unicode.IsSpace(r) {
			hasSpace = true
			continue
		}
		if _, dup := seen[r]; dup {
			continue
		}
		seen[r] = struct{}{}
		class.WriteString(escapeClassRune(r))
	}

	if class.Len() == 0 {
		return `[\s\p{Zs}]+`
	}
	if hasSpace {
		return `[` + class.String() + `\s\p{Zs}]+`
	}
	return `[` + class.String() + `]+`
}

// literalExact renders a literal that must match as observed, used for
// decimal separators where tolerance would change the value.
func literalExact(lit string) string {
	return regexp.QuoteMeta(lit)
}

// integerPattern matches a digit run with the locale's group
// separator permitted between digits.
func integerPattern(groupSep string) string {
	var class strings.Builder
	class.WriteString(`\d`)
	hasSpace := false
	for _, r := range groupSep {
		if unicode.IsSpace(r) {
			hasSpace = true
			continue
		}
		class.WriteString(escapeClassRune(r))
	}
	if hasSpace {
		class.WriteString(`\s\p{Zs}`)
	}
	return `\d[` + class.String() + `]*`
}

func fractionExpr(count int) string {
	if count > 0 {
		return fmt.Sprintf(`\d{%d}`, count)
	}
	return `\d+`
}

func escapeClassRune(r rune) string {
	switch r {
	case '\\', ']', '^', '-':
		return `\` + string(r)
	}
	return string(r)
}

// dateFields accumulates classified values during assembly. A parsed
// weekday is validated against the tables but carries no date
// information of its own, so only its presence is tracked.
type dateFields struct {
	year, month, day          int
	hasYear, hasMonth, hasDay bool
	hasWeekday                bool
}

// parseDate matches the whole input and assembles a UTC-midnight
// instant from the classified groups. Components the format does not
// carry stay at Go's zero date, year 0 January 1.
func (p *formatPattern) parseDate(text string) (time.Time, error) {
	m := p.re.FindStringSubmatchIndex(text)
	if m == nil {
		return time.Time{}, &NoMatchError{Input: text, Expr: p.re.String()}
	}
	return p.assembleDate(text, m)
}

func (p *formatPattern) assembleDate(text string, m []int) (time.Time, error) {
	var fields dateFields

	setMonth := func(v int) error {
		if fields.hasMonth {
			return &UnparseableError{Input: text}
		}
		fields.month, fields.hasMonth = v, true
		return nil
	}
	setWeekday := func(int) error {
		if fields.hasWeekday {
			return &UnparseableError{Input: text}
		}
		fields.hasWeekday = true
		return nil
	}

	for i, g := range p.groups {
		start, end := m[2*(i+1)], m[2*(i+1)+1]
		if start < 0 {
			continue
		}
		token := text[start:end]

		switch g.ptype {
		case PartYear:
			v, _ := strconv.Atoi(token)
			if g.width == WidthTwoDigit {
				v = expandTwoDigitYear(v)
			}
			fields.year, fields.hasYear = v, true
		case PartDay:
			fields.day, _ = strconv.Atoi(token)
			fields.hasDay = true
		case PartMonth:
			if isDigits(token) {
				v, _ := strconv.Atoi(token)
				if err := setMonth(v); err != nil {
					return time.Time{}, err
				}
				continue
			}
			if err := p.classifyText(token, setMonth, setWeekday); err != nil {
				return time.Time{}, err
			}
		case partText:
			if err := p.classifyText(token, setMonth, setWeekday); err != nil {
				return time.Time{}, err
			}
		}
	}

	year, month, day := 0, 1, 1
	if fields.hasYear {
		year = fields.year
	}
	if fields.hasMonth {
		month = fields.month
	}
	if fields.hasDay {
		day = fields.day
	}

	built := utcDate(year, month, day)
	if fields.hasMonth && int(built.Month()) != month {
		return time.Time{}, &UnparseableError{Input: text}
	}
	if fields.hasDay && built.Day() != day {
		return time.Time{}, &UnparseableError{Input: text}
	}
	if fields.hasYear && built.Year() != year {
		return time.Time{}, &UnparseableError{Input: text}
	}

	return built, nil
}

// classifyText decides whether a matched name token is a month or a
// weekday, month first. A token in neither table is demoted to a
// literal and contributes no field.
func (p *formatPattern) classifyText(token string, setMonth, setWeekday func(int) error) error {
	if v, ok := p.tables.classifyMonth(token); ok {
		return setMonth(v)
	}
	if v, ok := p.tables.classifyWeekday(token); ok {
		return setWeekday(v)
	}
	return nil
}

// parseMoney matches the whole input and assembles the amount and
// currency from the matched groups.
func (p *formatPattern) parseMoney(text string) (Money, error) {
	m := p.re.FindStringSubmatchIndex(text)
	if m == nil {
		return Money{}, &NoMatchError{Input: text, Expr: p.re.String()}
	}

	var money Money
	var intDigits, fracDigits string
	negative := false

	for i, g := range p.groups {
		start, end := m[2*(i+1)], m[2*(i+1)+1]
		if start < 0 {
			continue
		}
		token := text[start:end]

		switch g.ptype {
		case PartCurrency:
			code, err := p.tables.currencies.Get(token)
			if err != nil {
				return Money{}, err
			}
			money.Currency = code
		case PartInteger:
			if strings.HasPrefix(token, "-") {
				negative = true
				token = token[1:]
			}
			for _, run := range splitIntegerRun(token) {
				if run.Type == PartInteger {
					intDigits += run.Value
				}
			}
		case PartFraction:
			fracDigits = token
		}
	}

	if intDigits == "" {
		return Money{}, &UnparseableError{Input: text}
	}
	amount, err := strconv.ParseFloat(intDigits+"."+zeroWhenEmpty(fracDigits), 64)
	if err != nil {
		return Money{}, &UnparseableError{Input: text}
	}
	if negative {
		amount = -amount
	}
	money.Amount = amount
	return money, nil
}

// decompose splits a rendered string into typed parts using the
// compiled pattern: capture groups become field parts, the text
// around them becomes literal, decimal and group parts. Rebuilding
// the parts in order yields the rendered string byte for byte.
func (p *formatPattern) decompose(rendered string) ([]Part, error) {
	m := p.re.FindStringSubmatchIndex(rendered)
	if m == nil {
		return nil, &NoMatchError{Input: rendered, Expr: p.re.String()}
	}

	var parts []Part
	cursor := m[0]

	for i, g := range p.groups {
		start, end := m[2*(i+1)], m[2*(i+1)+1]
		if start < 0 {
			continue
		}
		token := rendered[start:end]
		if g.ptype == PartInteger && strings.HasPrefix(token, "-") {
			// The sign reads as literal text, not as digits.
			start++
			token = token[1:]
		}
		if start > cursor {
			gap := rendered[cursor:start]
			if g.ptype == PartFraction {
				parts = append(parts, Part{Type: PartDecimal, Value: gap})
			} else {
				parts = append(parts, Part{Type: PartLiteral, Value: gap})
			}
		}

		switch g.ptype {
		case partText:
			if _, ok := p.tables.classifyMonth(token); ok {
				parts = append(parts, Part{Type: PartMonth, Value: token})
			} else if _, ok := p.tables.classifyWeekday(token); ok {
				parts = append(parts, Part{Type: PartWeekday, Value: token})
			} else {
				parts = append(parts, Part{Type: PartLiteral, Value: token})
			}
		case PartMonth:
			parts = append(parts, Part{Type: PartMonth, Value: token})
		case PartInteger:
			parts = append(parts, splitIntegerRun(token)...)
		default:
			parts = append(parts, Part{Type: g.ptype, Value: token})
		}
		cursor = end
	}
	if cursor < m[1] {
		parts = append(parts, Part{Type: PartLiteral, Value: rendered[cursor:m[1]]})
	}

	return parts, nil
}

// splitIntegerRun splits a matched integer run into digit and group
// separator parts with a locale-agnostic sweep.
func splitIntegerRun(run string) []Part {
	var parts []Part
	start := 0
	digits := len(run) > 0 && isDigitByte(run[0])
	for i := 0; i < len(run); {
		r, size := utf8.DecodeRuneInString(run[i:])
		isDigit := r >= '0' && r <= '9'
		if isDigit != digits {
			parts = append(parts, integerOrGroup(run[start:i], digits))
			start, digits = i, isDigit
		}
		i += size
	}
	if start < len(run) {
		parts = append(parts, integerOrGroup(run[start:], digits))
	}
	return parts
}

func integerOrGroup(text string, digits bool) Part {
	if digits {
		return Part{Type: PartInteger, Value: text}
	}
	return Part{Type: PartGroup, Value: text}
}

func expandTwoDigitYear(v int) int {
	if v < 50 {
		return 2000 + v
	}
	return 1900 + v
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if !isDigitByte(s[i]) {
			return false
		}
	}
	return true
}

func isDigitByte(b byte) bool { return b >= '0' && b <= '9' }

func zeroWhenEmpty(s string) string {
	if s == "" {
		return "0"
	}
	return s
}
