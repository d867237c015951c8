package intl

import (
	"fmt"
	"regexp"
	"strings"
)

// probeDate is the reference date formatted to learn a locale's field
// order: year 3333, month 11 and day 20 render as digit runs no other
// field can produce, and the date falls on a Friday.
var probeDate = utcDate(3333, 11, 20)

// probeMoney is the reference amount for money schemas. The integer
// digits 111222 expose the group separator and the four fraction
// digits expose the decimal separator.
var probeMoney = Money{Currency: "USD", Amount: 111222.3333}

// schemaPart is one slot of a learned format schema: a date or money
// field with its width, or a run of literal text between fields.
type schemaPart struct {
	ptype   PartType
	width   Width
	count   int
	literal string
}

// formatSchema is the learned shape of one (locale, options) pair's
// output: the field order, widths and joining literals a formatting
// facility produces for it.
type formatSchema struct {
	kind      string
	locale    string
	dateOpts  DateOptions
	moneyOpts MoneyOptions
	parts     []schemaPart
}

// probeNames carries the locale's renderings of the probe date's
// month and weekday, used to spot those fields in probe output.
type probeNames struct {
	monthShort   string
	monthLong    string
	weekdayShort string
	weekdayLong  string
}

// probeField is one field the date learner looks for: the renderings
// it may take in probe output, and the subset of those renderings that
// honor the requested width.
type probeField struct {
	ptype PartType
	width Width
	alts  []string
	want  []string
}

// inferDateSchema formats the probe date through the facility and
// decomposes the rendering into a schema. Fields that never surface
// make the schema unlearnable; fields that surface at a different
// width than requested mean the facility ignored the options.
func inferDateSchema(f Formatter, locale string, opts DateOptions, names probeNames) (*formatSchema, error) {
	if opts.Format != "" {
		return dateTemplateSchema(locale, opts)
	}

	rendered, err := f.FormatDate(probeDate, locale, opts)
	if err != nil {
		return nil, err
	}

	fields, err := dateProbeFields(opts, names, locale, rendered)
	if err != nil {
		return nil, err
	}

	hits, err := scanProbe(rendered, fields)
	if err != nil {
		return nil, err
	}

	if err := checkProbeHits(locale, rendered, fields, hits); err != nil {
		return nil, err
	}

	schema := &formatSchema{kind: "date", locale: locale, dateOpts: opts}
	schema.parts = partsFromHits(rendered, hits)
	return schema, nil
}

// dateProbeFields builds the per-field rendering alternatives for the
// requested options.
func dateProbeFields(opts DateOptions, names probeNames, locale, rendered string) ([]probeField, error) {
	var fields []probeField
	missing := func(what string) error {
		return &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{what + " names"}}
	}

	if opts.Weekday != "" {
		want := names.weekdayLong
		if opts.Weekday == WidthShort {
			want = names.weekdayShort
		}
		if want == "" {
			return nil, missing("weekday")
		}
		fields = append(fields, probeField{
			ptype: PartWeekday,
			width: opts.Weekday,
			alts:  dedupeNonEmpty(names.weekdayLong, names.weekdayShort),
			want:  []string{want},
		})
	}

	if opts.Month != "" {
		alts := dedupeNonEmpty(names.monthLong, names.monthShort, "11")
		var want []string
		switch opts.Month {
		case WidthShort:
			if names.monthShort == "" {
				return nil, missing("month")
			}
			want = []string{names.monthShort}
		case WidthLong:
			if names.monthLong == "" {
				return nil, missing("month")
			}
			want = []string{names.monthLong}
		default:
			want = []string{"11"}
		}
		fields = append(fields, probeField{ptype: PartMonth, width: opts.Month, alts: alts, want: want})
	}

	if opts.Year != "" {
		want := "3333"
		if opts.Year == WidthTwoDigit {
			want = "33"
		}
		fields = append(fields, probeField{
			ptype: PartYear,
			width: opts.Year,
			alts:  []string{"3333", "33"},
			want:  []string{want},
		})
	}

	if opts.Day != "" {
		fields = append(fields, probeField{
			ptype: PartDay,
			width: opts.Day,
			alts:  []string{"20"},
			want:  []string{"20"},
		})
	}

	return fields, nil
}

// probeHit records one field occurrence in probe output.
type probeHit struct {
	field      probeField
	start, end int
}

// scanProbe sweeps the rendering with one alternation per field and
// returns the occurrences in positional order.
func scanProbe(rendered string, fields []probeField) ([]probeHit, error) {
	arms := make([]string, 0, len(fields))
	for i, field := range fields {
		arms = append(arms, fmt.Sprintf("(?P<f%d>%s)", i, alternation(field.alts)))
	}

	re, err := regexp.Compile(strings.Join(arms, "|"))
	if err != nil {
		return nil, fmt.Errorf("intl: compile probe scan: %w", err)
	}

	var hits []probeHit
	for _, m := range re.FindAllStringSubmatchIndex(rendered, -1) {
		for i := range fields {
			group := 2 * (i + 1)
			if m[group] >= 0 {
				hits = append(hits, probeHit{field: fields[i], start: m[group], end: m[group+1]})
				break
			}
		}
	}
	return hits, nil
}

// checkProbeHits verifies every requested field surfaced exactly once
// and at its requested width.
func checkProbeHits(locale, rendered string, fields []probeField, hits []probeHit) error {
	counts := make(map[PartType]int, len(fields))
	for _, hit := range hits {
		counts[hit.field.ptype]++
	}

	var missing []string
	for _, field := range fields {
		switch counts[field.ptype] {
		case 0:
			missing = append(missing, string(field.ptype))
		case 1:
		default:
			missing = append(missing, string(field.ptype)+" (ambiguous)")
		}
	}
	if len(missing) > 0 {
		return &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: missing}
	}

	for _, hit := range hits {
		matched := rendered[hit.start:hit.end]
		honored := false
		for _, want := range hit.field.want {
			if matched == want {
				honored = true
				break
			}
		}
		if !honored {
			return &UnsupportedOptionsError{
				Reason: fmt.Sprintf("%s width %q rendered as %q for %q", hit.field.ptype, hit.field.width, matched, locale),
			}
		}
	}
	return nil
}

// partsFromHits turns positional hits plus the text between them into
// an ordered schema part list.
func partsFromHits(rendered string, hits []probeHit) []schemaPart {
	var parts []schemaPart
	cursor := 0
	for _, hit := range hits {
		if hit.start > cursor {
			parts = append(parts, schemaPart{ptype: PartLiteral, literal: rendered[cursor:hit.start]})
		}
		parts = append(parts, schemaPart{ptype: hit.field.ptype, width: hit.field.width})
		cursor = hit.end
	}
	if cursor < len(rendered) {
		parts = append(parts, schemaPart{ptype: PartLiteral, literal: rendered[cursor:]})
	}
	return parts
}

// inferMoneySchema formats the probe amount through the facility and
// decomposes the rendering: digit runs must reassemble the probe's
// integer and fraction digits, the text between runs becomes the
// group and decimal separators, and the remaining non-numeric text
// must be the currency token.
func inferMoneySchema(f Formatter, locale string, opts MoneyOptions) (*formatSchema, error) {
	if opts.Format != "" {
		return moneyTemplateSchema(locale, opts)
	}

	rendered, err := f.FormatMoney(probeMoney, locale, opts)
	if err != nil {
		return nil, err
	}

	token := strings.TrimSpace(stripAmount(rendered))
	if token == "" {
		return nil, &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{"currency"}}
	}

	re, err := regexp.Compile(`(?P<currency>` + regexp.QuoteMeta(token) + `)|(?P<run>\d+)`)
	if err != nil {
		return nil, fmt.Errorf("intl: compile probe scan: %w", err)
	}

	type runHit struct {
		text       string
		start, end int
		currency   bool
	}
	var runs []runHit
	for _, m := range re.FindAllStringSubmatchIndex(rendered, -1) {
		hit := runHit{start: m[0], end: m[1], text: rendered[m[0]:m[1]]}
		hit.currency = m[2] >= 0
		runs = append(runs, hit)
	}

	schema := &formatSchema{kind: "money", locale: locale, moneyOpts: opts}
	var digits strings.Builder
	sawCurrency := false
	sawFraction := false
	cursor := 0

	flushGap := func(from, to int, ptype PartType) {
		if to > from {
			schema.parts = append(schema.parts, schemaPart{ptype: ptype, literal: rendered[from:to]})
		}
	}

	for _, run := range runs {
		if run.currency {
			if sawCurrency {
				return nil, &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{"currency (ambiguous)"}}
			}
			flushGap(cursor, run.start, PartLiteral)
			schema.parts = append(schema.parts, schemaPart{ptype: PartCurrency, width: currencyWidth(opts)})
			sawCurrency = true
			cursor = run.end
			continue
		}

		sofar := digits.Len()
		switch {
		case sofar == 0:
			flushGap(cursor, run.start, PartLiteral)
			schema.parts = append(schema.parts, schemaPart{ptype: PartInteger})
		case sofar < len("111222"):
			flushGap(cursor, run.start, PartGroup)
			schema.parts = append(schema.parts, schemaPart{ptype: PartInteger})
		case sofar == len("111222") && !sawFraction:
			flushGap(cursor, run.start, PartDecimal)
			schema.parts = append(schema.parts, schemaPart{ptype: PartFraction})
			sawFraction = true
		default:
			return nil, &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{"amount (ambiguous)"}}
		}
		digits.WriteString(run.text)
		cursor = run.end
	}
	flushGap(cursor, len(rendered), PartLiteral)

	if digits.String() != "1112223333" {
		return nil, &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{"amount"}}
	}
	if !sawCurrency {
		return nil, &SchemaInferenceError{Locale: locale, Rendered: rendered, Missing: []string{"currency"}}
	}

	return schema, nil
}

func currencyWidth(opts MoneyOptions) Width {
	if opts.Currency == StrategySymbol {
		return WidthLong
	}
	return WidthShort
}

// dateTemplateSchema compiles an explicit date template straight to a
// schema, no probing involved.
func dateTemplateSchema(locale string, opts DateOptions) (*formatSchema, error) {
	tokens, err := parseDateTemplate(opts.Format)
	if err != nil {
		return nil, err
	}

	schema := &formatSchema{kind: "date", locale: locale, dateOpts: opts}
	for _, tok := range tokens {
		if tok.isLiteral() {
			schema.parts = append(schema.parts, schemaPart{ptype: PartLiteral, literal: tok.literal})
			continue
		}
		schema.parts = append(schema.parts, schemaPart{ptype: tok.field, width: tok.width})
	}
	return schema, nil
}

// moneyTemplateSchema compiles an explicit money template to a
// schema. The literal between the amount and fraction sentinels is
// the decimal separator, so it keeps its typed role.
func moneyTemplateSchema(locale string, opts MoneyOptions) (*formatSchema, error) {
	tokens, err := parseMoneyTemplate(opts.Format)
	if err != nil {
		return nil, err
	}

	schema := &formatSchema{kind: "money", locale: locale, moneyOpts: opts}
	for i, tok := range tokens {
		switch {
		case tok.isLiteral():
			ptype := PartLiteral
			if i > 0 && i+1 < len(tokens) && tokens[i-1].field == PartInteger && tokens[i+1].field == PartFraction {
				ptype = PartDecimal
			}
			schema.parts = append(schema.parts, schemaPart{ptype: ptype, literal: tok.literal})
		case tok.field == PartFraction:
			schema.parts = append(schema.parts, schemaPart{ptype: PartFraction, count: tok.count})
		default:
			schema.parts = append(schema.parts, schemaPart{ptype: tok.field, width: tok.width})
		}
	}
	return schema, nil
}

func dedupeNonEmpty(values ...string) []string {
	out := make([]string, 0, len(values))
	seen := make(map[string]struct{}, len(values))
	for _, v := range values {
		if v == "" {
			continue
		}
		if _, dup := seen[v]; dup {
			continue
		}
		seen[v] = struct{}{}
		out = append(out, v)
	}
	return out
}
