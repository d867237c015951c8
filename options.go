package intl

import "fmt"

// defaultDateOptions is what a zero DateOptions resolves to: the
// locale's all-numeric day, month and year rendering.
var defaultDateOptions = DateOptions{
	Year:  WidthNumeric,
	Month: WidthNumeric,
	Day:   WidthNumeric,
}

// resolveDateOptions validates an option set and fills in defaults.
// Widths a date formatter cannot honor surface as unsupported-option
// errors rather than being silently dropped.
func resolveDateOptions(opts DateOptions) (DateOptions, error) {
	if opts.IsZero() {
		return defaultDateOptions, nil
	}

	if err := checkWidth("year", opts.Year, WidthNumeric, WidthTwoDigit); err != nil {
		return DateOptions{}, err
	}
	if err := checkWidth("month", opts.Month, WidthNumeric, WidthTwoDigit, WidthShort, WidthLong); err != nil {
		return DateOptions{}, err
	}
	if err := checkWidth("day", opts.Day, WidthNumeric, WidthTwoDigit); err != nil {
		return DateOptions{}, err
	}
	if err := checkWidth("weekday", opts.Weekday, WidthShort, WidthLong); err != nil {
		return DateOptions{}, err
	}

	if opts.Format == "" && opts.Year == "" && opts.Month == "" && opts.Day == "" && opts.Weekday == "" {
		return defaultDateOptions, nil
	}
	return opts, nil
}

// resolveMoneyOptions validates a money option set, defaulting the
// currency display to its ISO code.
func resolveMoneyOptions(opts MoneyOptions) (MoneyOptions, error) {
	switch opts.Currency {
	case "":
		opts.Currency = StrategyCode
	case StrategyCode, StrategySymbol:
	default:
		return MoneyOptions{}, &UnsupportedOptionsError{
			Reason: fmt.Sprintf("currency display %q", opts.Currency),
		}
	}
	return opts, nil
}

func checkWidth(field string, got Width, allowed ...Width) error {
	if got == "" {
		return nil
	}
	for _, w := range allowed {
		if got == w {
			return nil
		}
	}
	return &UnsupportedOptionsError{
		Reason: fmt.Sprintf("%s width %q", field, got),
	}
}
