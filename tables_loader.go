package intl

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// TablesFile is the on-disk shape WithTablesFile loads: locale tables
// to overlay on the bundled data, plus currency synonyms to register.
type TablesFile struct {
	Locales          map[string]LocaleTables      `json:"locales" yaml:"locales"`
	CurrencySynonyms map[string]map[string]string `json:"currency_synonyms" yaml:"currency_synonyms"`
}

// LoadTablesFile reads a tables file, picking the decoder from the
// extension: .json, .yaml or .yml.
func LoadTablesFile(path string) (*TablesFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("intl: read %s: %w", path, err)
	}

	format := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	file, err := DecodeTables(data, format)
	if err != nil {
		return nil, fmt.Errorf("intl: decode %s: %w", path, err)
	}
	return file, nil
}

// DecodeTables decodes tables data in the named format, "json",
// "yaml" or "yml".
func DecodeTables(data []byte, format string) (*TablesFile, error) {
	var file TablesFile
	switch format {
	case "json":
		if err := json.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	case "yaml", "yml":
		if err := yaml.Unmarshal(data, &file); err != nil {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}

	if err := validateTablesFile(&file); err != nil {
		return nil, err
	}
	return &file, nil
}

func validateTablesFile(file *TablesFile) error {
	for locale, t := range file.Locales {
		if strings.TrimSpace(locale) == "" {
			return fmt.Errorf("empty locale key")
		}
		for _, months := range [][]string{t.Calendar.MonthsWide, t.Calendar.MonthsAbbrev} {
			if len(months) != 0 && len(months) != 12 {
				return fmt.Errorf("locale %q: month table needs 12 names, got %d", locale, len(months))
			}
		}
		for _, days := range [][]string{t.Calendar.DaysWide, t.Calendar.DaysAbbrev} {
			if len(days) != 0 && len(days) != 7 {
				return fmt.Errorf("locale %q: weekday table needs 7 names, got %d", locale, len(days))
			}
		}
	}

	for locale, synonyms := range file.CurrencySynonyms {
		for name, code := range synonyms {
			if strings.TrimSpace(name) == "" || strings.TrimSpace(code) == "" {
				return fmt.Errorf("locale %q: empty currency synonym", locale)
			}
		}
	}
	return nil
}
