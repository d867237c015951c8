package intl

import (
	"testing"
)

func TestDefaultRegistryReuse(t *testing.T) {
	if Default() != Default() {
		t.Fatal("Default() built a new registry per call")
	}
}

func TestPackageLevelDelegation(t *testing.T) {
	got, err := FormatDate(refDate, "en-US", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "1/25/2019" {
		t.Errorf("FormatDate = %q, want 1/25/2019", got)
	}

	when, err := ParseDate("25 December 2019", "en-GB")
	if err != nil {
		t.Fatalf("ParseDate: %v", err)
	}
	if want := utcDate(2019, 12, 25); !when.Equal(want) {
		t.Errorf("ParseDate = %v, want %v", when, want)
	}

	money, err := ParseMoney("USD 45.50", "en-US")
	if err != nil {
		t.Fatalf("ParseMoney: %v", err)
	}
	if money.Currency != "USD" || money.Amount != 45.5 {
		t.Errorf("ParseMoney = %+v", money)
	}

	rendered, err := FormatMoney(Money{Currency: "EUR", Amount: 1999.99}, "nl", MoneyOptions{Currency: StrategySymbol})
	if err != nil {
		t.Fatalf("FormatMoney: %v", err)
	}
	if rendered != "€ 1.999,99" {
		t.Errorf("FormatMoney = %q", rendered)
	}

	matches, err := ParseDates("due 14/10/2024, paid 15/10/2024", "en-GB")
	if err != nil {
		t.Fatalf("ParseDates: %v", err)
	}
	if len(matches) != 2 {
		t.Fatalf("ParseDates found %d matches, want 2", len(matches))
	}

	parts, err := FormatDateToParts(refDate, "en-US", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDateToParts: %v", err)
	}
	if len(parts) == 0 || parts[0].Type != PartMonth {
		t.Errorf("FormatDateToParts = %+v", parts)
	}

	moneyParts, err := FormatMoneyToParts(Money{Currency: "USD", Amount: 45}, "en-US", MoneyOptions{})
	if err != nil {
		t.Fatalf("FormatMoneyToParts: %v", err)
	}
	if len(moneyParts) == 0 || moneyParts[0].Type != PartCurrency {
		t.Errorf("FormatMoneyToParts = %+v", moneyParts)
	}
}

func TestConfigureReplacesDefault(t *testing.T) {
	if err := Configure(WithDefaultLocale("en-GB")); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	defer func() {
		if err := Configure(); err != nil {
			t.Errorf("restore default registry: %v", err)
		}
	}()

	got, err := FormatDate(refDate, "", DateOptions{})
	if err != nil {
		t.Fatalf("FormatDate: %v", err)
	}
	if got != "25/1/2019" {
		t.Errorf("FormatDate with en-GB default = %q, want 25/1/2019", got)
	}
}
