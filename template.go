package intl

import (
	"fmt"
	"strings"
)

// formatToken is one unit of an explicit format template: a literal
// run, or a field sentinel expanded to its width.
type formatToken struct {
	field   PartType
	width   Width
	count   int
	literal string
}

func (t formatToken) isLiteral() bool { return t.field == PartLiteral }

// parseDateTemplate splits an explicit date template into tokens. The
// sentinel letters y, M, d and E select fields, and run length selects
// width: yy renders a two-digit year, yyyy a full year, M a bare month
// number, MM a zero-padded one, MMM the abbreviated name, MMMM the
// full name, E or EEE the abbreviated weekday and EEEE the full one.
// Every other rune passes through as a literal.
func parseDateTemplate(template string) ([]formatToken, error) {
	tokens, err := splitTemplate(template, map[rune]func(int) (PartType, Width, error){
		'y': yearWidth,
		'M': monthWidth,
		'd': dayWidth,
		'E': weekdayWidth,
	})
	if err != nil {
		return nil, err
	}
	return requireFields(tokens, template)
}

// parseMoneyTemplate splits an explicit money template into tokens:
// i renders the amount, an f run pins the fraction digit count, C
// renders the ISO code and CC the locale symbol.
func parseMoneyTemplate(template string) ([]formatToken, error) {
	tokens, err := splitTemplate(template, map[rune]func(int) (PartType, Width, error){
		'i': func(int) (PartType, Width, error) { return PartInteger, "", nil },
		'f': func(int) (PartType, Width, error) { return PartFraction, "", nil },
		'C': func(n int) (PartType, Width, error) {
			if n >= 2 {
				return PartCurrency, WidthLong, nil
			}
			return PartCurrency, WidthShort, nil
		},
	})
	if err != nil {
		return nil, err
	}
	return requireFields(tokens, template)
}

func splitTemplate(template string, fields map[rune]func(int) (PartType, Width, error)) ([]formatToken, error) {
	var tokens []formatToken
	var literal strings.Builder

	flush := func() {
		if literal.Len() > 0 {
			tokens = append(tokens, formatToken{field: PartLiteral, literal: literal.String()})
			literal.Reset()
		}
	}

	runes := []rune(template)
	for i := 0; i < len(runes); {
		r := runes[i]
		classify, ok := fields[r]
		if !ok {
			literal.WriteRune(r)
			i++
			continue
		}

		n := 1
		for i+n < len(runes) && runes[i+n] == r {
			n++
		}
		field, width, err := classify(n)
		if err != nil {
			return nil, err
		}

		flush()
		tokens = append(tokens, formatToken{field: field, width: width, count: n})
		i += n
	}
	flush()

	return tokens, nil
}

// requireFields rejects templates a parser could never use: ones with
// no fields at all, or with the same field twice.
func requireFields(tokens []formatToken, template string) ([]formatToken, error) {
	seen := make(map[PartType]bool, 4)
	fields := 0
	for _, tok := range tokens {
		if tok.isLiteral() {
			continue
		}
		fields++
		if seen[tok.field] {
			return nil, &UnsupportedOptionsError{
				Reason: fmt.Sprintf("field %s repeats in format template %q", tok.field, template),
			}
		}
		seen[tok.field] = true
	}
	if fields == 0 {
		return nil, &UnsupportedOptionsError{
			Reason: fmt.Sprintf("format template %q has no fields", template),
		}
	}
	return tokens, nil
}

func yearWidth(n int) (PartType, Width, error) {
	if n == 2 {
		return PartYear, WidthTwoDigit, nil
	}
	return PartYear, WidthNumeric, nil
}

func monthWidth(n int) (PartType, Width, error) {
	switch {
	case n <= 1:
		return PartMonth, WidthNumeric, nil
	case n == 2:
		return PartMonth, WidthTwoDigit, nil
	case n == 3:
		return PartMonth, WidthShort, nil
	default:
		return PartMonth, WidthLong, nil
	}
}

func dayWidth(n int) (PartType, Width, error) {
	if n >= 2 {
		return PartDay, WidthTwoDigit, nil
	}
	return PartDay, WidthNumeric, nil
}

func weekdayWidth(n int) (PartType, Width, error) {
	if n >= 4 {
		return PartWeekday, WidthLong, nil
	}
	return PartWeekday, WidthShort, nil
}
