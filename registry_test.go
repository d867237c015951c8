package intl

import (
	"errors"
	"fmt"
	"reflect"
	"strconv"
	"strings"
	"sync"
	"testing"
	"time"
)

func TestNewOptionErrors(t *testing.T) {
	tests := []struct {
		name string
		opt  Option
	}{
		{"nil formatter", WithFormatter(nil)},
		{"empty tables locale", WithTables(map[string]LocaleTables{"": {}})},
		{"empty synonym name", WithCurrencySynonyms("en", map[string]string{"": "USD"})},
		{"empty synonym code", WithCurrencySynonyms("en", map[string]string{"bucks": ""})},
		{"empty default locale", WithDefaultLocale("")},
		{"missing tables file", WithTablesFile("testdata/absent.json")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.opt); err == nil {
				t.Fatal("New succeeded, want error")
			}
		})
	}
}

func TestRegistryDefaultLocale(t *testing.T) {
	r := newTestRegistry(t)
	got, err := r.FormatDate(refDate, "", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "1/25/2019" {
		t.Fatalf("FormatDate with empty locale = %q, want en rendering", got)
	}

	r = newTestRegistry(t, WithDefaultLocale("en-GB"))
	got, err = r.FormatDate(refDate, "", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "25/1/2019" {
		t.Fatalf("FormatDate with en-GB default = %q", got)
	}
}

func TestRegistryLocales(t *testing.T) {
	r := newTestRegistry(t)

	want := []string{"de", "en", "en-GB", "en-US", "es", "fr", "nl"}
	if got := r.Locales(); !reflect.DeepEqual(got, want) {
		t.Fatalf("Locales() = %v, want %v", got, want)
	}

	r = newTestRegistry(t, WithTables(map[string]LocaleTables{
		"xx": {Locale: "xx", Calendar: localeTablesData["en"].Calendar, Money: localeTablesData["en"].Money},
	}))
	if got := r.Locales(); len(got) != 8 || got[7] != "xx" {
		t.Fatalf("Locales() = %v, want bundled plus xx", got)
	}
	if got, err := r.FormatDate(refDate, "xx", DateOptions{}); err != nil || got != "1/25/2019" {
		t.Fatalf("FormatDate(xx) = %q, %v", got, err)
	}
}

func TestFormatDateToParts(t *testing.T) {
	r := newTestRegistry(t)

	parts, err := r.FormatDateToParts(refDate, "en-GB", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	want := []Part{
		{Type: PartDay, Value: "25"},
		{Type: PartLiteral, Value: "/"},
		{Type: PartMonth, Value: "1"},
		{Type: PartLiteral, Value: "/"},
		{Type: PartYear, Value: "2019"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts = %+v, want %+v", parts, want)
	}

	parts, err = r.FormatDateToParts(refDate, "en-GB", DateOptions{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric, Weekday: WidthShort})
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	want = []Part{
		{Type: PartWeekday, Value: "Fri"},
		{Type: PartLiteral, Value: ", "},
		{Type: PartDay, Value: "25"},
		{Type: PartLiteral, Value: " "},
		{Type: PartMonth, Value: "Jan"},
		{Type: PartLiteral, Value: " "},
		{Type: PartYear, Value: "2019"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts = %+v, want %+v", parts, want)
	}
}

func TestFormatMoneyToParts(t *testing.T) {
	r := newTestRegistry(t)

	parts, err := r.FormatMoneyToParts(Money{Currency: "USD", Amount: 111222.33}, "en-US", MoneyOptions{})
	if err != nil {
		t.Fatalf("FormatMoneyToParts: %v", err)
	}
	want := []Part{
		{Type: PartCurrency, Value: "USD"},
		{Type: PartLiteral, Value: " "},
		{Type: PartInteger, Value: "111"},
		{Type: PartGroup, Value: ","},
		{Type: PartInteger, Value: "222"},
		{Type: PartDecimal, Value: "."},
		{Type: PartFraction, Value: "33"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts = %+v, want %+v", parts, want)
	}
}

func TestNativePartsFacility(t *testing.T) {
	canned := []Part{{Type: PartYear, Value: "2019"}}
	r := newTestRegistry(t, WithFormatter(partsEmitter{parts: canned}))

	parts, err := r.FormatDateToParts(refDate, "en", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	if !reflect.DeepEqual(parts, canned) {
		t.Fatalf("parts = %+v, want the facility's own", parts)
	}

	parts, err = r.FormatMoneyToParts(Money{Currency: "USD", Amount: 1}, "en", MoneyOptions{})
	if err != nil {
		t.Fatalf("FormatMoneyToParts: %v", err)
	}
	if !reflect.DeepEqual(parts, canned) {
		t.Fatalf("money parts = %+v, want the facility's own", parts)
	}
}

func TestRegistryMemoization(t *testing.T) {
	r := newTestRegistry(t)
	opts := DateOptions{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric}

	p1, err := r.datePattern("en-GB", opts)
	if err != nil {
		t.Fatalf("datePattern: %v", err)
	}
	p2, err := r.datePattern("en-GB", opts)
	if err != nil {
		t.Fatalf("datePattern: %v", err)
	}
	if p1 != p2 {
		t.Fatal("datePattern built twice for one key")
	}

	r.Reset()
	p3, err := r.datePattern("en-GB", opts)
	if err != nil {
		t.Fatalf("datePattern after Reset: %v", err)
	}
	if p3 == p1 {
		t.Fatal("Reset kept the memoized pattern")
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	r := newTestRegistry(t)

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 25; j++ {
				if _, err := r.FormatDate(refDate, "en-GB", DateOptions{}); err != nil {
					t.Errorf("FormatDate: %v", err)
					return
				}
				if _, err := r.ParseDate("18/12/2018", "en-GB"); err != nil {
					t.Errorf("ParseDate: %v", err)
					return
				}
				if _, err := r.ParseMoney("GBP 45.00", "en-GB"); err != nil {
					t.Errorf("ParseMoney: %v", err)
					return
				}
			}
		}()
	}
	wg.Wait()
}

func TestWithTablesOverride(t *testing.T) {
	r := newTestRegistry(t, WithTables(map[string]LocaleTables{
		"en-GB": {Calendar: CalendarRules{NumericPattern: "{year}-{month}-{day}"}},
	}))

	got, err := r.FormatDate(refDate, "en-GB", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "2019-1-25" {
		t.Fatalf("FormatDate with pattern override = %q", got)
	}

	// Merging is field by field, so the bundled names survive.
	got, err = r.FormatDate(refDate, "en-GB", DateOptions{Month: WidthLong})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "January" {
		t.Fatalf("FormatDate month long = %q, want bundled name", got)
	}

	// Parsing follows the overridden shape.
	parsed, err := r.ParseDate("2019-1-25", "en-GB", DateOptions{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric})
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(refDate) {
		t.Fatalf("ParseDate = %v", parsed)
	}
}

func TestWithTablesFileJSON(t *testing.T) {
	r := newTestRegistry(t, WithTablesFile("testdata/tables.json"))

	got, err := r.FormatDate(refDate, "en-GB", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "2019-1-25" {
		t.Fatalf("FormatDate = %q, want file override applied", got)
	}

	money, err := r.ParseMoney("US$1,234.56", "en-US")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if money.Currency != "USD" || money.Amount != 1234.56 {
		t.Fatalf("ParseMoney = %+v", money)
	}
}

func TestWithTablesFileYAML(t *testing.T) {
	r := newTestRegistry(t, WithTablesFile("testdata/tables.yaml"))

	got, err := r.FormatMoney(Money{Currency: "EUR", Amount: 5.5}, "es", MoneyOptions{})
	if err != nil {
		t.Fatalf("FormatMoney: %v", err)
	}
	if got != "EUR 5,5" {
		t.Fatalf("FormatMoney = %q, want code-first override", got)
	}

	money, err := r.ParseMoney("pavos 45", "es")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if money.Currency != "EUR" || money.Amount != 45 {
		t.Fatalf("ParseMoney = %+v", money)
	}
}

func TestCurrencySynonyms(t *testing.T) {
	r := newTestRegistry(t,
		WithCurrencySynonyms("", map[string]string{"US$": "USD"}),
		WithCurrencySynonyms("en", map[string]string{"bucks": "USD", "quid": "GBP"}),
	)

	money, err := r.ParseMoney("US$1,234.56", "en-US")
	if err != nil {
		t.Fatalf("ParseMoney(US$): %v", err)
	}
	if money != (Money{Currency: "USD", Amount: 1234.56}) {
		t.Fatalf("ParseMoney = %+v", money)
	}

	money, err = r.ParseMoney("bucks 45", "en")
	if err != nil {
		t.Fatalf("ParseMoney(bucks): %v", err)
	}
	if money != (Money{Currency: "USD", Amount: 45}) {
		t.Fatalf("ParseMoney = %+v", money)
	}

	money, err = r.ParseMoney("quid 99.50", "en")
	if err != nil {
		t.Fatalf("ParseMoney(quid): %v", err)
	}
	if money != (Money{Currency: "GBP", Amount: 99.5}) {
		t.Fatalf("ParseMoney = %+v", money)
	}

	if _, err := r.Currencies("en").Get("bucks"); err != nil {
		t.Fatalf("Currencies Get(bucks): %v", err)
	}
}

func TestRegistryLookupAccessors(t *testing.T) {
	r := newTestRegistry(t)

	months, err := r.Months("en-GB", WidthShort)
	if err != nil {
		t.Fatalf("Months: %v", err)
	}
	if got, _ := months.Get("Sep"); got != 9 {
		t.Errorf("Get(Sep) = %d", got)
	}

	weekdays, err := r.Weekdays("es", WidthLong)
	if err != nil {
		t.Fatalf("Weekdays: %v", err)
	}
	if got, _ := weekdays.Get("miércoles"); got != 3 {
		t.Errorf("Get(miércoles) = %d", got)
	}

	// Names resolve only against their own locale's tables.
	if _, err := months.Get("janvier"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Get(janvier) in en-GB error = %v, want not found", err)
	}

	if _, err := r.Currencies("en").Get("£"); err != nil {
		t.Errorf("Currencies Get(£): %v", err)
	}

	// A facility that renders nothing has no name tables to expose.
	empty := newTestRegistry(t, WithFormatter(scriptedFormatter{}))
	if _, err := empty.Months("en", WidthShort); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Months on blank facility: %v", err)
	}
	if _, err := empty.Weekdays("en", WidthLong); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Weekdays on blank facility: %v", err)
	}
}

// A caller-supplied facility with an unfamiliar layout is learned by
// probing: formatting, parsing and parts all follow its own shape.
func TestCustomFacility(t *testing.T) {
	r := newTestRegistry(t, WithFormatter(isoFormatter{}))

	opts := DateOptions{Year: WidthNumeric, Month: WidthShort, Day: WidthNumeric}
	got, err := r.FormatDate(refDate, "en", opts)
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "2019.Jan.25" {
		t.Fatalf("FormatDate = %q", got)
	}

	parsed, err := r.ParseDate("2024.Mar.5", "en", opts)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(utcDate(2024, 3, 5)) {
		t.Fatalf("ParseDate = %v", parsed)
	}

	// Candidate parsing works against the learned layouts too.
	parsed, err = r.ParseDate("2024.Mar.5", "en")
	if err != nil {
		t.Fatalf("ParseDate without options: %v", err)
	}
	if !parsed.Equal(utcDate(2024, 3, 5)) {
		t.Fatalf("ParseDate = %v", parsed)
	}

	parts, err := r.FormatDateToParts(refDate, "en", opts)
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	want := []Part{
		{Type: PartYear, Value: "2019"},
		{Type: PartLiteral, Value: "."},
		{Type: PartMonth, Value: "Jan"},
		{Type: PartLiteral, Value: "."},
		{Type: PartDay, Value: "25"},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts = %+v, want %+v", parts, want)
	}

	money, err := r.ParseMoney("EUR 45.5", "en")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if money != (Money{Currency: "EUR", Amount: 45.5}) {
		t.Fatalf("ParseMoney = %+v", money)
	}

	money, err = r.ParseMoney("45.5 EUR", "en")
	if err != nil {
		t.Fatalf("ParseMoney trailing code: %v", err)
	}
	if money != (Money{Currency: "EUR", Amount: 45.5}) {
		t.Fatalf("ParseMoney = %+v", money)
	}
}

// A facility that wraps its renderings in caption text keeps the
// framing in the learned schema: parsing requires it and the parts
// rebuild it.
func TestLabeledFacility(t *testing.T) {
	r := newTestRegistry(t, WithFormatter(labeledFormatter{}))

	opts := DateOptions{Year: WidthNumeric, Month: WidthNumeric, Day: WidthNumeric}
	got, err := r.FormatDate(refDate, "en", opts)
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "Date: 1/25/2019." {
		t.Fatalf("FormatDate = %q", got)
	}

	parsed, err := r.ParseDate("Date: 1/25/2019.", "en", opts)
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if !parsed.Equal(refDate) {
		t.Fatalf("ParseDate = %v", parsed)
	}

	parts, err := r.FormatDateToParts(refDate, "en", opts)
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	want := []Part{
		{Type: PartLiteral, Value: "Date: "},
		{Type: PartMonth, Value: "1"},
		{Type: PartLiteral, Value: "/"},
		{Type: PartDay, Value: "25"},
		{Type: PartLiteral, Value: "/"},
		{Type: PartYear, Value: "2019"},
		{Type: PartLiteral, Value: "."},
	}
	if !reflect.DeepEqual(parts, want) {
		t.Fatalf("parts = %+v, want %+v", parts, want)
	}

	var rebuilt string
	for _, part := range parts {
		rebuilt += part.Value
	}
	if rebuilt != "Date: 1/25/2019." {
		t.Fatalf("parts rebuild %q", rebuilt)
	}
}

func TestFacilityIgnoringWidths(t *testing.T) {
	r := newTestRegistry(t, WithFormatter(clampYearFormatter{inner: BundledFormatter()}))

	_, err := r.DateParser("en-GB", DateOptions{Year: WidthTwoDigit, Month: WidthNumeric, Day: WidthNumeric})
	if !errors.Is(err, ErrUnsupportedOptions) {
		t.Fatalf("DateParser error = %v, want unsupported options", err)
	}
}

func TestCompositeWithUnlearnableFacility(t *testing.T) {
	r := newTestRegistry(t, WithFormatter(scriptedFormatter{date: "same thing every time", money: "same thing every time"}))

	if _, err := r.ParseDate("anything", "en"); !errors.Is(err, ErrSchemaInference) {
		t.Fatalf("ParseDate error = %v, want schema inference failure", err)
	}
	if _, err := r.ParseMoney("anything", "en"); !errors.Is(err, ErrSchemaInference) {
		t.Fatalf("ParseMoney error = %v, want schema inference failure", err)
	}
}

// isoFormatter renders year-first with dots and its own month and
// weekday names, a layout none of the bundled tables share.
type isoFormatter struct{}

func (isoFormatter) FormatDate(t time.Time, _ string, opts DateOptions) (string, error) {
	var segs []string
	switch opts.Year {
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", t.Year()%100))
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(t.Year()))
	}
	switch opts.Month {
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(int(t.Month())))
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", int(t.Month())))
	case WidthShort:
		segs = append(segs, t.Month().String()[:3])
	case WidthLong:
		segs = append(segs, t.Month().String())
	}
	switch opts.Day {
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(t.Day()))
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", t.Day()))
	}
	switch opts.Weekday {
	case WidthShort:
		segs = append(segs, t.Weekday().String()[:3])
	case WidthLong:
		segs = append(segs, t.Weekday().String())
	}
	return strings.Join(segs, "."), nil
}

func (isoFormatter) FormatMoney(m Money, _ string, opts MoneyOptions) (string, error) {
	amount := strconv.FormatFloat(m.Amount, 'f', -1, 64)
	if opts.Currency == StrategySymbol {
		return amount + " " + m.Currency, nil
	}
	return m.Currency + " " + amount, nil
}

// labeledFormatter frames multi-field renderings in caption text but
// answers single-field name requests bare, the way a cooperative
// facility exposes its tables.
type labeledFormatter struct{}

func (labeledFormatter) FormatDate(t time.Time, _ string, opts DateOptions) (string, error) {
	var segs []string
	switch opts.Month {
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(int(t.Month())))
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", int(t.Month())))
	case WidthShort:
		segs = append(segs, t.Month().String()[:3])
	case WidthLong:
		segs = append(segs, t.Month().String())
	}
	switch opts.Day {
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(t.Day()))
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", t.Day()))
	}
	switch opts.Year {
	case WidthTwoDigit:
		segs = append(segs, fmt.Sprintf("%02d", t.Year()%100))
	case WidthNumeric:
		segs = append(segs, strconv.Itoa(t.Year()))
	}
	switch opts.Weekday {
	case WidthShort:
		segs = append(segs, t.Weekday().String()[:3])
	case WidthLong:
		segs = append(segs, t.Weekday().String())
	}
	if len(segs) == 1 {
		return segs[0], nil
	}
	return "Date: " + strings.Join(segs, "/") + ".", nil
}

func (labeledFormatter) FormatMoney(m Money, _ string, _ MoneyOptions) (string, error) {
	return "Total: " + m.Currency + " " + strconv.FormatFloat(m.Amount, 'f', -1, 64) + ".", nil
}

// partsEmitter exercises the native-parts interfaces.
type partsEmitter struct {
	scriptedFormatter
	parts []Part
}

func (p partsEmitter) FormatDateToParts(time.Time, string, DateOptions) ([]Part, error) {
	return p.parts, nil
}

func (p partsEmitter) FormatMoneyToParts(Money, string, MoneyOptions) ([]Part, error) {
	return p.parts, nil
}
