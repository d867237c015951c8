package intl

import (
	"errors"
	"reflect"
	"testing"
	"time"
)

var enGBProbeNames = probeNames{
	monthShort:   "Nov",
	monthLong:    "November",
	weekdayShort: "Fri",
	weekdayLong:  "Friday",
}

func TestInferDateSchema(t *testing.T) {
	f := BundledFormatter()

	tests := []struct {
		name   string
		locale string
		opts   DateOptions
		names  probeNames
		want   []schemaPart
	}{
		{
			name:   "en-GB text with weekday",
			locale: "en-GB",
			opts:   DateOptions{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric, Weekday: WidthShort},
			names:  enGBProbeNames,
			want: []schemaPart{
				{ptype: PartWeekday, width: WidthShort},
				{ptype: PartLiteral, literal: ", "},
				{ptype: PartDay, width: WidthNumeric},
				{ptype: PartLiteral, literal: " "},
				{ptype: PartMonth, width: WidthShort},
				{ptype: PartLiteral, literal: " "},
				{ptype: PartYear, width: WidthNumeric},
			},
		},
		{
			name:   "en-US numeric",
			locale: "en-US",
			opts:   DateOptions{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric},
			names:  probeNames{monthShort: "Nov", monthLong: "November", weekdayShort: "Fri", weekdayLong: "Friday"},
			want: []schemaPart{
				{ptype: PartMonth, width: WidthNumeric},
				{ptype: PartLiteral, literal: "/"},
				{ptype: PartDay, width: WidthNumeric},
				{ptype: PartLiteral, literal: "/"},
				{ptype: PartYear, width: WidthNumeric},
			},
		},
		{
			name:   "es long",
			locale: "es",
			opts:   DateOptions{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric, Weekday: WidthLong},
			names:  probeNames{monthShort: "nov.", monthLong: "noviembre", weekdayShort: "vie.", weekdayLong: "viernes"},
			want: []schemaPart{
				{ptype: PartWeekday, width: WidthLong},
				{ptype: PartLiteral, literal: ", "},
				{ptype: PartDay, width: WidthNumeric},
				{ptype: PartLiteral, literal: " de "},
				{ptype: PartMonth, width: WidthLong},
				{ptype: PartLiteral, literal: " de "},
				{ptype: PartYear, width: WidthNumeric},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := inferDateSchema(f, tt.locale, tt.opts, tt.names)
			if err != nil {
				t.Fatalf("inferDateSchema(%q, %+v): %v", tt.locale, tt.opts, err)
			}
			if !reflect.DeepEqual(schema.parts, tt.want) {
				t.Fatalf("inferDateSchema(%q) parts = %+v, want %+v", tt.locale, schema.parts, tt.want)
			}
		})
	}
}

func TestInferDateSchemaMissingFields(t *testing.T) {
	f := scriptedFormatter{date: "gibberish"}
	opts := DateOptions{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric, Weekday: WidthShort}

	_, err := inferDateSchema(f, "en-GB", opts, enGBProbeNames)
	var inferErr *SchemaInferenceError
	if !errors.As(err, &inferErr) {
		t.Fatalf("inferDateSchema on constant output: %v", err)
	}
	want := []string{"weekday", "month", "year", "day"}
	if !reflect.DeepEqual(inferErr.Missing, want) {
		t.Fatalf("Missing = %v, want %v", inferErr.Missing, want)
	}
	if !errors.Is(err, ErrSchemaInference) {
		t.Fatalf("error does not unwrap to ErrSchemaInference: %v", err)
	}
}

func TestInferDateSchemaAmbiguousField(t *testing.T) {
	f := scriptedFormatter{date: "20/11/3333 (20)"}
	opts := DateOptions{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric}

	_, err := inferDateSchema(f, "en-GB", opts, enGBProbeNames)
	var inferErr *SchemaInferenceError
	if !errors.As(err, &inferErr) {
		t.Fatalf("inferDateSchema on duplicated day: %v", err)
	}
	if want := []string{"day (ambiguous)"}; !reflect.DeepEqual(inferErr.Missing, want) {
		t.Fatalf("Missing = %v, want %v", inferErr.Missing, want)
	}
}

func TestInferDateSchemaIgnoredWidth(t *testing.T) {
	f := clampYearFormatter{inner: BundledFormatter()}
	opts := DateOptions{Year: WidthTwoDigit, Month: WidthNumeric, Day: WidthNumeric}

	_, err := inferDateSchema(f, "en-GB", opts, enGBProbeNames)
	if !errors.Is(err, ErrUnsupportedOptions) {
		t.Fatalf("inferDateSchema with clamped year width: %v", err)
	}
}

func TestInferDateSchemaMissingNames(t *testing.T) {
	f := BundledFormatter()
	opts := DateOptions{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric}

	_, err := inferDateSchema(f, "en-GB", opts, probeNames{})
	var inferErr *SchemaInferenceError
	if !errors.As(err, &inferErr) {
		t.Fatalf("inferDateSchema without month names: %v", err)
	}
	if want := []string{"month names"}; !reflect.DeepEqual(inferErr.Missing, want) {
		t.Fatalf("Missing = %v, want %v", inferErr.Missing, want)
	}
}

func TestInferMoneySchema(t *testing.T) {
	f := BundledFormatter()

	tests := []struct {
		name   string
		locale string
		opts   MoneyOptions
		want   []schemaPart
	}{
		{
			name:   "en-US code",
			locale: "en-US",
			opts:   MoneyOptions{Currency: StrategyCode},
			want: []schemaPart{
				{ptype: PartCurrency, width: WidthShort},
				{ptype: PartLiteral, literal: " "},
				{ptype: PartInteger},
				{ptype: PartGroup, literal: ","},
				{ptype: PartInteger},
				{ptype: PartDecimal, literal: "."},
				{ptype: PartFraction},
			},
		},
		{
			name:   "en-GB symbol",
			locale: "en-GB",
			opts:   MoneyOptions{Currency: StrategySymbol},
			want: []schemaPart{
				{ptype: PartCurrency, width: WidthLong},
				{ptype: PartInteger},
				{ptype: PartGroup, literal: ","},
				{ptype: PartInteger},
				{ptype: PartDecimal, literal: "."},
				{ptype: PartFraction},
			},
		},
		{
			name:   "es trailing code",
			locale: "es",
			opts:   MoneyOptions{Currency: StrategyCode},
			want: []schemaPart{
				{ptype: PartInteger},
				{ptype: PartGroup, literal: "."},
				{ptype: PartInteger},
				{ptype: PartDecimal, literal: ","},
				{ptype: PartFraction},
				{ptype: PartLiteral, literal: " "},
				{ptype: PartCurrency, width: WidthShort},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			schema, err := inferMoneySchema(f, tt.locale, tt.opts)
			if err != nil {
				t.Fatalf("inferMoneySchema(%q, %+v): %v", tt.locale, tt.opts, err)
			}
			if !reflect.DeepEqual(schema.parts, tt.want) {
				t.Fatalf("inferMoneySchema(%q) parts = %+v, want %+v", tt.locale, schema.parts, tt.want)
			}
		})
	}
}

// A facility may group however it likes; the digit runs just have to
// reassemble the probe amount.
func TestInferMoneySchemaUnevenGrouping(t *testing.T) {
	f := scriptedFormatter{money: "USD 1,11,222.3333"}

	schema, err := inferMoneySchema(f, "en-IN", MoneyOptions{Currency: StrategyCode})
	if err != nil {
		t.Fatalf("inferMoneySchema: %v", err)
	}

	var integers, groups int
	for _, part := range schema.parts {
		switch part.ptype {
		case PartInteger:
			integers++
		case PartGroup:
			groups++
		}
	}
	if integers != 3 || groups != 2 {
		t.Fatalf("schema has %d integer and %d group parts, want 3 and 2", integers, groups)
	}
}

func TestInferMoneySchemaErrors(t *testing.T) {
	tests := []struct {
		name     string
		rendered string
		missing  string
	}{
		{"digits truncated", "USD 111,222.33", "amount"},
		{"no currency token", "111,222.3333", "currency"},
		{"currency repeated", "USD 111,222.3333 USD", "currency"},
		{"run after fraction", "USD 111,222.33.33", "amount (ambiguous)"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := scriptedFormatter{money: tt.rendered}
			_, err := inferMoneySchema(f, "en", MoneyOptions{Currency: StrategyCode})
			var inferErr *SchemaInferenceError
			if !errors.As(err, &inferErr) {
				t.Fatalf("inferMoneySchema(%q): %v", tt.rendered, err)
			}
			if len(inferErr.Missing) != 1 || inferErr.Missing[0] != tt.missing {
				t.Fatalf("Missing = %v, want [%s]", inferErr.Missing, tt.missing)
			}
		})
	}
}

func TestDateTemplateSchema(t *testing.T) {
	schema, err := dateTemplateSchema("en", DateOptions{Format: "yyyy-MM-dd"})
	if err != nil {
		t.Fatalf("dateTemplateSchema: %v", err)
	}

	want := []schemaPart{
		{ptype: PartYear, width: WidthNumeric},
		{ptype: PartLiteral, literal: "-"},
		{ptype: PartMonth, width: WidthTwoDigit},
		{ptype: PartLiteral, literal: "-"},
		{ptype: PartDay, width: WidthTwoDigit},
	}
	if !reflect.DeepEqual(schema.parts, want) {
		t.Fatalf("parts = %+v, want %+v", schema.parts, want)
	}
}

// The literal between the amount and fraction sentinels is the decimal
// separator, and a templated fraction pins its digit count.
func TestMoneyTemplateSchema(t *testing.T) {
	schema, err := moneyTemplateSchema("en", MoneyOptions{Format: "C i.ff"})
	if err != nil {
		t.Fatalf("moneyTemplateSchema: %v", err)
	}

	want := []schemaPart{
		{ptype: PartCurrency, width: WidthShort},
		{ptype: PartLiteral, literal: " "},
		{ptype: PartInteger},
		{ptype: PartDecimal, literal: "."},
		{ptype: PartFraction, count: 2},
	}
	if !reflect.DeepEqual(schema.parts, want) {
		t.Fatalf("parts = %+v, want %+v", schema.parts, want)
	}
}

// Gaps always alternate with fields, so no schema ever carries two
// adjacent untyped literal runs.
func TestSchemasHaveNoAdjacentLiterals(t *testing.T) {
	f := BundledFormatter()

	dateOpts := []DateOptions{
		{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric, Weekday: WidthLong},
		{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric, Weekday: WidthShort},
		{Year: WidthNumeric, Month: WidthLong, Day: WidthNumeric},
		{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric},
		{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric, Weekday: WidthLong},
		{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric},
	}
	moneyOpts := []MoneyOptions{
		{Currency: StrategyCode},
		{Currency: StrategySymbol},
	}

	for locale, tables := range localeTablesData {
		names := probeNames{
			monthShort:   tables.Calendar.MonthsAbbrev[10],
			monthLong:    tables.Calendar.MonthsWide[10],
			weekdayShort: tables.Calendar.DaysAbbrev[4],
			weekdayLong:  tables.Calendar.DaysWide[4],
		}
		for _, opts := range dateOpts {
			schema, err := inferDateSchema(f, locale, opts, names)
			if err != nil {
				t.Fatalf("inferDateSchema(%q, %+v): %v", locale, opts, err)
			}
			checkNoAdjacentLiterals(t, locale, schema)
		}
		for _, opts := range moneyOpts {
			schema, err := inferMoneySchema(f, locale, opts)
			if err != nil {
				t.Fatalf("inferMoneySchema(%q, %+v): %v", locale, opts, err)
			}
			checkNoAdjacentLiterals(t, locale, schema)
		}
	}
}

func checkNoAdjacentLiterals(t *testing.T, locale string, schema *formatSchema) {
	t.Helper()
	for i := 1; i < len(schema.parts); i++ {
		if schema.parts[i].ptype == PartLiteral && schema.parts[i-1].ptype == PartLiteral {
			t.Fatalf("%s schema for %q has adjacent literals: %+v", schema.kind, locale, schema.parts)
		}
	}
}

// scriptedFormatter returns canned renderings whatever it is asked.
type scriptedFormatter struct {
	date  string
	money string
}

func (f scriptedFormatter) FormatDate(time.Time, string, DateOptions) (string, error) {
	return f.date, nil
}

func (f scriptedFormatter) FormatMoney(Money, string, MoneyOptions) (string, error) {
	return f.money, nil
}

// clampYearFormatter wraps a facility and silently downgrades year
// widths to numeric, the way a backend without two-digit support would.
type clampYearFormatter struct {
	inner Formatter
}

func (f clampYearFormatter) FormatDate(t time.Time, locale string, opts DateOptions) (string, error) {
	if opts.Year != "" {
		opts.Year = WidthNumeric
	}
	return f.inner.FormatDate(t, locale, opts)
}

func (f clampYearFormatter) FormatMoney(m Money, locale string, opts MoneyOptions) (string, error) {
	return f.inner.FormatMoney(m, locale, opts)
}
