package intl

import (
	"sort"
	"time"
)

// candidateDateOptions are the formats a parse without options tries,
// most specific first: named months with and without weekdays, then
// all-numeric forms, then a fixed day-first fallback for input that
// ignores the locale's own field order.
var candidateDateOptions = []DateOptions{
	{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric, Weekday: WidthLong},
	{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric, Weekday: WidthShort},
	{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric},
	{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric},
	{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric, Weekday: WidthLong},
	{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric},
	{Format: "d/M/yyyy"},
}

// candidateMoneyOptions are the money formats a parse without options
// tries: the ISO code rendering first, then the symbol rendering.
var candidateMoneyOptions = []MoneyOptions{
	{Currency: StrategyCode},
	{Currency: StrategySymbol},
}

// DateParser parses text against one learned date format.
type DateParser struct {
	locale  string
	opts    DateOptions
	pattern *formatPattern
}

// Parse matches the whole input against the learned format and
// returns the date at midnight UTC.
func (p *DateParser) Parse(text string) (time.Time, error) {
	return p.pattern.parseDate(text)
}

// Pattern exposes the learned match expression.
func (p *DateParser) Pattern() string {
	return p.pattern.re.String()
}

// Options returns the option set this parser was built for.
func (p *DateParser) Options() DateOptions {
	return p.opts
}

// MoneyParser parses text against one learned money format.
type MoneyParser struct {
	locale  string
	opts    MoneyOptions
	pattern *formatPattern
}

func (p *MoneyParser) Parse(text string) (Money, error) {
	return p.pattern.parseMoney(text)
}

func (p *MoneyParser) Pattern() string {
	return p.pattern.re.String()
}

func (p *MoneyParser) Options() MoneyOptions {
	return p.opts
}

// DateMatch is one date found while scanning a document.
type DateMatch struct {
	Value time.Time
	Text  string
	Start int
	End   int
}

// compositeDateParser tries candidate parsers in order and keeps the
// first value any of them produces.
type compositeDateParser struct {
	parsers []*DateParser
}

func (c *compositeDateParser) parse(text string) (time.Time, error) {
	for _, p := range c.parsers {
		if t, err := p.Parse(text); err == nil {
			return t, nil
		}
	}
	return time.Time{}, &UnparseableError{Input: text}
}

// parseAll sweeps a document with every candidate pattern and returns
// the non-overlapping matches in reading order. At equal starting
// positions the more specific candidate wins, and a span only counts
// once no matter how many candidates match it.
func (c *compositeDateParser) parseAll(text string) []DateMatch {
	type span struct {
		start, end, priority int
		parser               *DateParser
		match                []int
	}

	var spans []span
	for priority, p := range c.parsers {
		for _, m := range p.pattern.scanRe.FindAllStringSubmatchIndex(text, -1) {
			spans = append(spans, span{start: m[0], end: m[1], priority: priority, parser: p, match: m})
		}
	}

	sort.Slice(spans, func(i, j int) bool {
		if spans[i].start != spans[j].start {
			return spans[i].start < spans[j].start
		}
		if spans[i].priority != spans[j].priority {
			return spans[i].priority < spans[j].priority
		}
		return spans[i].end > spans[j].end
	})

	var matches []DateMatch
	cursor := 0
	for _, s := range spans {
		if s.start < cursor {
			continue
		}
		value, err := s.parser.pattern.assembleDate(text, s.match)
		if err != nil {
			continue
		}
		matches = append(matches, DateMatch{
			Value: value,
			Text:  text[s.start:s.end],
			Start: s.start,
			End:   s.end,
		})
		cursor = s.end
	}
	return matches
}

// compositeMoneyParser is the money counterpart of the composite date
// parser.
type compositeMoneyParser struct {
	parsers []*MoneyParser
}

func (c *compositeMoneyParser) parse(text string) (Money, error) {
	for _, p := range c.parsers {
		if m, err := p.Parse(text); err == nil {
			return m, nil
		}
	}
	return Money{}, &UnparseableError{Input: text}
}
