package intl

import (
	"fmt"
	"sort"
	"sync"
	"time"
)

// registryConfig collects option state before a Registry is built.
type registryConfig struct {
	formatter     Formatter
	overrides     map[string]LocaleTables
	synonyms      map[string]map[string]string
	defaultLocale string
}

// Option configures a Registry under construction.
type Option func(*registryConfig) error

// WithFormatter swaps in a caller-supplied formatting facility. Its
// output structure is learned by probing, so the facility only has to
// render strings, not parts.
func WithFormatter(f Formatter) Option {
	return func(cfg *registryConfig) error {
		if f == nil {
			return fmt.Errorf("intl: nil formatter")
		}
		cfg.formatter = f
		return nil
	}
}

// WithTables overlays locale tables on the bundled data. Partial
// tables merge field by field, so an override may replace just a
// pattern or just the month names.
func WithTables(tables map[string]LocaleTables) Option {
	return func(cfg *registryConfig) error {
		if cfg.overrides == nil {
			cfg.overrides = make(map[string]LocaleTables, len(tables))
		}
		for locale, t := range tables {
			normalized := normalizeLocale(locale)
			if normalized == "" {
				return fmt.Errorf("intl: empty locale in tables")
			}
			if base, ok := cfg.overrides[normalized]; ok {
				cfg.overrides[normalized] = mergeLocaleTables(base, t)
			} else {
				cfg.overrides[normalized] = t
			}
		}
		return nil
	}
}

// WithTablesFile loads a JSON or YAML tables file and overlays it
// like WithTables.
func WithTablesFile(path string) Option {
	return func(cfg *registryConfig) error {
		file, err := LoadTablesFile(path)
		if err != nil {
			return err
		}
		if len(file.Locales) > 0 {
			if err := WithTables(file.Locales)(cfg); err != nil {
				return err
			}
		}
		for locale, synonyms := range file.CurrencySynonyms {
			if err := WithCurrencySynonyms(locale, synonyms)(cfg); err != nil {
				return err
			}
		}
		return nil
	}
}

// WithCurrencySynonyms registers extra currency spellings for parsing,
// mapping each displayed name to an ISO 4217 code. An empty locale
// applies the synonyms everywhere.
func WithCurrencySynonyms(locale string, synonyms map[string]string) Option {
	return func(cfg *registryConfig) error {
		if cfg.synonyms == nil {
			cfg.synonyms = make(map[string]map[string]string)
		}
		normalized := normalizeLocale(locale)
		bucket := cfg.synonyms[normalized]
		if bucket == nil {
			bucket = make(map[string]string, len(synonyms))
			cfg.synonyms[normalized] = bucket
		}
		for name, code := range synonyms {
			if name == "" || code == "" {
				return fmt.Errorf("intl: empty currency synonym for %q", locale)
			}
			bucket[name] = code
		}
		return nil
	}
}

// WithDefaultLocale sets the locale used when callers pass none, and
// the final fallback for table resolution.
func WithDefaultLocale(locale string) Option {
	return func(cfg *registryConfig) error {
		normalized := normalizeLocale(locale)
		if normalized == "" {
			return fmt.Errorf("intl: empty default locale")
		}
		cfg.defaultLocale = normalized
		return nil
	}
}

// Registry binds a formatting facility to the learned schemas,
// compiled patterns and name tables derived from it. Everything
// derived is memoized per (locale, options) pair; all methods are safe
// for concurrent use.
type Registry struct {
	formatter     Formatter
	tables        *tablesProvider
	synonyms      map[string]map[string]string
	defaultLocale string

	mu              sync.RWMutex
	lookups         map[string]*nameTables
	datePatterns    map[string]*formatPattern
	moneyPatterns   map[string]*formatPattern
	dateComposites  map[string]*compositeDateParser
	moneyComposites map[string]*compositeMoneyParser
}

// New builds a Registry. Without options it serves the bundled
// locales with the bundled formatter.
func New(opts ...Option) (*Registry, error) {
	cfg := registryConfig{defaultLocale: "en"}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt(&cfg); err != nil {
			return nil, err
		}
	}

	tables := newTablesProvider(cfg.overrides, cfg.defaultLocale)
	formatter := cfg.formatter
	if formatter == nil {
		formatter = newLocaleFormatter(tables)
	}

	return &Registry{
		formatter:       formatter,
		tables:          tables,
		synonyms:        cfg.synonyms,
		defaultLocale:   cfg.defaultLocale,
		lookups:         make(map[string]*nameTables),
		datePatterns:    make(map[string]*formatPattern),
		moneyPatterns:   make(map[string]*formatPattern),
		dateComposites:  make(map[string]*compositeDateParser),
		moneyComposites: make(map[string]*compositeMoneyParser),
	}, nil
}

// Reset drops every memoized schema, pattern and lookup so they are
// relearned on next use.
func (r *Registry) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.lookups = make(map[string]*nameTables)
	r.datePatterns = make(map[string]*formatPattern)
	r.moneyPatterns = make(map[string]*formatPattern)
	r.dateComposites = make(map[string]*compositeDateParser)
	r.moneyComposites = make(map[string]*compositeMoneyParser)
}

// Locales lists the locales with bundled or overlaid tables, sorted.
func (r *Registry) Locales() []string {
	locales := make([]string, 0, len(r.tables.tables))
	for locale := range r.tables.tables {
		locales = append(locales, locale)
	}
	sort.Strings(locales)
	return locales
}

// FormatDate renders a date for a locale.
func (r *Registry) FormatDate(t time.Time, locale string, opts DateOptions) (string, error) {
	resolved, err := resolveDateOptions(opts)
	if err != nil {
		return "", err
	}
	return r.formatter.FormatDate(t, r.effectiveLocale(locale), resolved)
}

// FormatDateToParts renders a date and decomposes it into typed
// parts. Facilities that emit parts natively are used as is; for the
// rest the learned schema splits the rendered string.
func (r *Registry) FormatDateToParts(t time.Time, locale string, opts DateOptions) ([]Part, error) {
	resolved, err := resolveDateOptions(opts)
	if err != nil {
		return nil, err
	}
	loc := r.effectiveLocale(locale)

	if pf, ok := r.formatter.(DatePartsFormatter); ok {
		return pf.FormatDateToParts(t, loc, resolved)
	}

	pattern, err := r.datePattern(loc, resolved)
	if err != nil {
		return nil, err
	}
	rendered, err := r.formatter.FormatDate(t, loc, resolved)
	if err != nil {
		return nil, err
	}
	return pattern.decompose(rendered)
}

// ParseDate parses text as a date. With explicit options only that
// format is tried; without them the locale's candidate formats are
// tried most specific first.
func (r *Registry) ParseDate(text, locale string, opts ...DateOptions) (time.Time, error) {
	loc := r.effectiveLocale(locale)

	if len(opts) > 0 && !opts[0].IsZero() {
		parser, err := r.DateParser(loc, opts[0])
		if err != nil {
			return time.Time{}, err
		}
		return parser.Parse(text)
	}

	composite, err := r.dateComposite(loc)
	if err != nil {
		return time.Time{}, err
	}
	return composite.parse(text)
}

// ParseDates scans a document for dates in any of the locale's
// candidate formats, returning non-overlapping matches in reading
// order.
func (r *Registry) ParseDates(text, locale string) ([]DateMatch, error) {
	composite, err := r.dateComposite(r.effectiveLocale(locale))
	if err != nil {
		return nil, err
	}
	return composite.parseAll(text), nil
}

// DateParser builds a parser for one explicit option set.
func (r *Registry) DateParser(locale string, opts DateOptions) (*DateParser, error) {
	resolved, err := resolveDateOptions(opts)
	if err != nil {
		return nil, err
	}
	loc := r.effectiveLocale(locale)
	pattern, err := r.datePattern(loc, resolved)
	if err != nil {
		return nil, err
	}
	return &DateParser{locale: loc, opts: resolved, pattern: pattern}, nil
}

// FormatMoney renders an amount with its currency for a locale.
func (r *Registry) FormatMoney(m Money, locale string, opts MoneyOptions) (string, error) {
	resolved, err := resolveMoneyOptions(opts)
	if err != nil {
		return "", err
	}
	return r.formatter.FormatMoney(m, r.effectiveLocale(locale), resolved)
}

// FormatMoneyToParts renders money and decomposes it into typed
// parts, splitting the integer run into digit and group parts.
func (r *Registry) FormatMoneyToParts(m Money, locale string, opts MoneyOptions) ([]Part, error) {
	resolved, err := resolveMoneyOptions(opts)
	if err != nil {
		return nil, err
	}
	loc := r.effectiveLocale(locale)

	if pf, ok := r.formatter.(MoneyPartsFormatter); ok {
		return pf.FormatMoneyToParts(m, loc, resolved)
	}

	pattern, err := r.moneyPattern(loc, resolved)
	if err != nil {
		return nil, err
	}
	rendered, err := r.formatter.FormatMoney(m, loc, resolved)
	if err != nil {
		return nil, err
	}
	return pattern.decompose(rendered)
}

// ParseMoney parses text as an amount with a currency.
func (r *Registry) ParseMoney(text, locale string, opts ...MoneyOptions) (Money, error) {
	loc := r.effectiveLocale(locale)

	if len(opts) > 0 && (opts[0].Currency != "" || opts[0].Format != "") {
		parser, err := r.MoneyParser(loc, opts[0])
		if err != nil {
			return Money{}, err
		}
		return parser.Parse(text)
	}

	composite, err := r.moneyComposite(loc)
	if err != nil {
		return Money{}, err
	}
	return composite.parse(text)
}

// MoneyParser builds a parser for one explicit money option set.
func (r *Registry) MoneyParser(locale string, opts MoneyOptions) (*MoneyParser, error) {
	resolved, err := resolveMoneyOptions(opts)
	if err != nil {
		return nil, err
	}
	loc := r.effectiveLocale(locale)
	pattern, err := r.moneyPattern(loc, resolved)
	if err != nil {
		return nil, err
	}
	return &MoneyParser{locale: loc, opts: resolved, pattern: pattern}, nil
}

func (r *Registry) effectiveLocale(locale string) string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return r.defaultLocale
	}
	return normalized
}

func (r *Registry) datePattern(locale string, opts DateOptions) (*formatPattern, error) {
	key := locale + "|" + opts.key()

	r.mu.RLock()
	if p, ok := r.datePatterns[key]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.datePatterns[key]; ok {
		return p, nil
	}

	p, err := r.datePatternLocked(locale, opts)
	if err != nil {
		return nil, err
	}
	r.datePatterns[key] = p
	return p, nil
}

func (r *Registry) datePatternLocked(locale string, opts DateOptions) (*formatPattern, error) {
	tables := r.lookupsLocked(locale)
	names := probeNames{
		monthShort:   tables.monthName(11, WidthShort),
		monthLong:    tables.monthName(11, WidthLong),
		weekdayShort: tables.weekdayName(5, WidthShort),
		weekdayLong:  tables.weekdayName(5, WidthLong),
	}

	schema, err := inferDateSchema(r.formatter, locale, opts, names)
	if err != nil {
		return nil, err
	}

	builder := &patternBuilder{tables: tables, groupSep: r.groupSep(locale)}
	return builder.compile(schema)
}

func (r *Registry) moneyPattern(locale string, opts MoneyOptions) (*formatPattern, error) {
	key := locale + "|" + opts.key()

	r.mu.RLock()
	if p, ok := r.moneyPatterns[key]; ok {
		r.mu.RUnlock()
		return p, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if p, ok := r.moneyPatterns[key]; ok {
		return p, nil
	}

	p, err := r.moneyPatternLocked(locale, opts)
	if err != nil {
		return nil, err
	}
	r.moneyPatterns[key] = p
	return p, nil
}

func (r *Registry) moneyPatternLocked(locale string, opts MoneyOptions) (*formatPattern, error) {
	schema, err := inferMoneySchema(r.formatter, locale, opts)
	if err != nil {
		return nil, err
	}
	builder := &patternBuilder{tables: r.lookupsLocked(locale), groupSep: r.groupSep(locale)}
	return builder.compile(schema)
}

func (r *Registry) dateComposite(locale string) (*compositeDateParser, error) {
	r.mu.RLock()
	if c, ok := r.dateComposites[locale]; ok {
		r.mu.RUnlock()
		return c, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.dateComposites[locale]; ok {
		return c, nil
	}

	composite := &compositeDateParser{}
	var lastErr error
	for _, cand := range candidateDateOptions {
		resolved, err := resolveDateOptions(cand)
		if err != nil {
			lastErr = err
			continue
		}
		key := locale + "|" + resolved.key()
		pattern, ok := r.datePatterns[key]
		if !ok {
			pattern, err = r.datePatternLocked(locale, resolved)
			if err != nil {
				lastErr = err
				continue
			}
			r.datePatterns[key] = pattern
		}
		composite.parsers = append(composite.parsers, &DateParser{locale: locale, opts: resolved, pattern: pattern})
	}

	if len(composite.parsers) == 0 {
		if lastErr == nil {
			lastErr = &SchemaInferenceError{Locale: locale}
		}
		return nil, lastErr
	}

	r.dateComposites[locale] = composite
	return composite, nil
}

func (r *Registry) moneyComposite(locale string) (*compositeMoneyParser, error) {
	r.mu.RLock()
	if c, ok := r.moneyComposites[locale]; ok {
		r.mu.RUnlock()
		return c, nil
	}
	r.mu.RUnlock()

	r.mu.Lock()
	defer r.mu.Unlock()
	if c, ok := r.moneyComposites[locale]; ok {
		return c, nil
	}

	composite := &compositeMoneyParser{}
	var lastErr error
	for _, cand := range candidateMoneyOptions {
		resolved, err := resolveMoneyOptions(cand)
		if err != nil {
			lastErr = err
			continue
		}
		key := locale + "|" + resolved.key()
		pattern, ok := r.moneyPatterns[key]
		if !ok {
			pattern, err = r.moneyPatternLocked(locale, resolved)
			if err != nil {
				lastErr = err
				continue
			}
			r.moneyPatterns[key] = pattern
		}
		composite.parsers = append(composite.parsers, &MoneyParser{locale: locale, opts: resolved, pattern: pattern})
	}

	if len(composite.parsers) == 0 {
		if lastErr == nil {
			lastErr = &SchemaInferenceError{Locale: locale}
		}
		return nil, lastErr
	}

	r.moneyComposites[locale] = composite
	return composite, nil
}

// lookupsLocked builds or returns the cached name tables for a
// locale. Lookups a facility cannot serve stay nil; patterns needing
// them fail at compile time instead.
func (r *Registry) lookupsLocked(locale string) *nameTables {
	if t, ok := r.lookups[locale]; ok {
		return t
	}

	t := &nameTables{}
	t.monthShort, _ = monthLookup(r.formatter, locale, WidthShort)
	t.monthLong, _ = monthLookup(r.formatter, locale, WidthLong)
	t.weekdayShort, _ = weekdayLookup(r.formatter, locale, WidthShort)
	t.weekdayLong, _ = weekdayLookup(r.formatter, locale, WidthLong)
	t.currencies = currencyLookup(r.formatter, locale, r.synonymsFor(locale))

	r.lookups[locale] = t
	return t
}

// Months returns the month lookup the registry uses for a locale.
func (r *Registry) Months(locale string, width Width) (*DatumLookup, error) {
	loc := r.effectiveLocale(locale)
	r.mu.Lock()
	tables := r.lookupsLocked(loc)
	r.mu.Unlock()

	l := tables.monthShort
	if width == WidthLong {
		l = tables.monthLong
	}
	if l == nil {
		return nil, &NotFoundError{Name: string(width), Table: "month", Locale: loc}
	}
	return l, nil
}

// Weekdays returns the weekday lookup the registry uses for a locale.
func (r *Registry) Weekdays(locale string, width Width) (*DatumLookup, error) {
	loc := r.effectiveLocale(locale)
	r.mu.Lock()
	tables := r.lookupsLocked(loc)
	r.mu.Unlock()

	l := tables.weekdayShort
	if width == WidthLong {
		l = tables.weekdayLong
	}
	if l == nil {
		return nil, &NotFoundError{Name: string(width), Table: "weekday", Locale: loc}
	}
	return l, nil
}

// Currencies returns the currency lookup the registry uses for a
// locale, synonyms included.
func (r *Registry) Currencies(locale string) *CurrencyLookup {
	loc := r.effectiveLocale(locale)
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.lookupsLocked(loc).currencies
}

func (r *Registry) synonymsFor(locale string) map[string]string {
	if len(r.synonyms) == 0 {
		return nil
	}
	merged := make(map[string]string)
	for name, code := range r.synonyms[""] {
		merged[name] = code
	}
	for _, candidate := range localeCandidates(locale, "") {
		if bucket, ok := r.synonyms[candidate]; ok {
			for name, code := range bucket {
				merged[name] = code
			}
			break
		}
	}
	return merged
}

func (r *Registry) groupSep(locale string) string {
	rules, _, ok := r.tables.moneyFor(locale)
	if !ok {
		return ","
	}
	return rules.GroupSep
}
