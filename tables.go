package intl

// CalendarRules carries the per-locale date data the bundled formatter
// renders from: display names for months and weekdays plus skeleton
// patterns over {day}, {month}, {year} and {weekday} placeholders.
type CalendarRules struct {
	// MonthsWide holds the twelve full month names, January first.
	MonthsWide []string `json:"months_wide" yaml:"months_wide"`
	// MonthsAbbrev holds the twelve abbreviated month names.
	MonthsAbbrev []string `json:"months_abbrev" yaml:"months_abbrev"`
	// DaysWide holds the seven full weekday names, Monday first.
	DaysWide []string `json:"days_wide" yaml:"days_wide"`
	// DaysAbbrev holds the seven abbreviated weekday names.
	DaysAbbrev []string `json:"days_abbrev" yaml:"days_abbrev"`

	// TextPattern formats dates whose month renders as a name.
	TextPattern string `json:"text_pattern" yaml:"text_pattern"`
	// NumericPattern formats dates whose month renders as a number.
	NumericPattern string `json:"numeric_pattern" yaml:"numeric_pattern"`
	// WeekdayPrefix is prepended when a weekday is requested.
	WeekdayPrefix string `json:"weekday_prefix" yaml:"weekday_prefix"`
}

// IsZero reports whether the rules carry no data.
func (r CalendarRules) IsZero() bool {
	return len(r.MonthsWide) == 0 && len(r.MonthsAbbrev) == 0 && r.TextPattern == "" && r.NumericPattern == ""
}

// MoneyRules carries the per-locale currency data the bundled
// formatter renders from.
type MoneyRules struct {
	DecimalSep string `json:"decimal_separator" yaml:"decimal_separator"`
	GroupSep   string `json:"group_separator" yaml:"group_separator"`
	// GroupSize is the digits-per-group count, 3 when zero.
	GroupSize int `json:"group_size,omitempty" yaml:"group_size,omitempty"`

	// CodePattern formats amounts with an ISO code over {code} and
	// {amount}; SymbolPattern does the same over {symbol}.
	CodePattern   string `json:"code_pattern" yaml:"code_pattern"`
	SymbolPattern string `json:"symbol_pattern" yaml:"symbol_pattern"`
}

func (r MoneyRules) IsZero() bool {
	return r.DecimalSep == "" && r.GroupSep == "" && r.CodePattern == "" && r.SymbolPattern == ""
}

func (r MoneyRules) groupSize() int {
	if r.GroupSize <= 0 {
		return 3
	}
	return r.GroupSize
}

// LocaleTables bundles everything the library knows about one locale.
type LocaleTables struct {
	Locale   string        `json:"locale" yaml:"locale"`
	Calendar CalendarRules `json:"calendar" yaml:"calendar"`
	Money    MoneyRules    `json:"money" yaml:"money"`
}

// tablesProvider resolves locale tables through the locale's parent
// chain, landing on the fallback locale when nothing closer matches.
type tablesProvider struct {
	tables   map[string]LocaleTables
	fallback string
}

func newTablesProvider(overrides map[string]LocaleTables, fallback string) *tablesProvider {
	if fallback == "" {
		fallback = "en"
	}

	tables := make(map[string]LocaleTables, len(localeTablesData)+len(overrides))
	for k, v := range localeTablesData {
		tables[k] = v
	}
	for k, v := range overrides {
		normalized := normalizeLocale(k)
		if base, ok := tables[normalized]; ok {
			tables[normalized] = mergeLocaleTables(base, v)
		} else {
			v.Locale = normalized
			tables[normalized] = v
		}
	}

	return &tablesProvider{tables: tables, fallback: fallback}
}

// calendarFor returns the calendar rules for a locale along with the
// locale they were resolved from.
func (p *tablesProvider) calendarFor(locale string) (CalendarRules, string, bool) {
	for _, candidate := range localeCandidates(locale, p.fallback) {
		if t, ok := p.tables[candidate]; ok && !t.Calendar.IsZero() {
			return t.Calendar, candidate, true
		}
	}
	return CalendarRules{}, "", false
}

// moneyFor returns the money rules for a locale along with the locale
// they were resolved from.
func (p *tablesProvider) moneyFor(locale string) (MoneyRules, string, bool) {
	for _, candidate := range localeCandidates(locale, p.fallback) {
		if t, ok := p.tables[candidate]; ok && !t.Money.IsZero() {
			return t.Money, candidate, true
		}
	}
	return MoneyRules{}, "", false
}

// mergeLocaleTables overlays src on base field by field so partial
// override files keep the bundled data they do not mention.
func mergeLocaleTables(base, src LocaleTables) LocaleTables {
	out := base
	if src.Locale != "" {
		out.Locale = src.Locale
	}

	if len(src.Calendar.MonthsWide) > 0 {
		out.Calendar.MonthsWide = src.Calendar.MonthsWide
	}
	if len(src.Calendar.MonthsAbbrev) > 0 {
		out.Calendar.MonthsAbbrev = src.Calendar.MonthsAbbrev
	}
	if len(src.Calendar.DaysWide) > 0 {
		out.Calendar.DaysWide = src.Calendar.DaysWide
	}
	if len(src.Calendar.DaysAbbrev) > 0 {
		out.Calendar.DaysAbbrev = src.Calendar.DaysAbbrev
	}
	if src.Calendar.TextPattern != "" {
		out.Calendar.TextPattern = src.Calendar.TextPattern
	}
	if src.Calendar.NumericPattern != "" {
		out.Calendar.NumericPattern = src.Calendar.NumericPattern
	}
	if src.Calendar.WeekdayPrefix != "" {
		out.Calendar.WeekdayPrefix = src.Calendar.WeekdayPrefix
	}

	if src.Money.DecimalSep != "" {
		out.Money.DecimalSep = src.Money.DecimalSep
	}
	if src.Money.GroupSep != "" {
		out.Money.GroupSep = src.Money.GroupSep
	}
	if src.Money.GroupSize > 0 {
		out.Money.GroupSize = src.Money.GroupSize
	}
	if src.Money.CodePattern != "" {
		out.Money.CodePattern = src.Money.CodePattern
	}
	if src.Money.SymbolPattern != "" {
		out.Money.SymbolPattern = src.Money.SymbolPattern
	}

	return out
}
