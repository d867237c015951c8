package intl

import (
	"strings"

	"golang.org/x/text/language"
)

// normalizeLocale normalizes a locale identifier by replacing
// underscores with hyphens and trimming whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// localeTag parses a locale into an x/text tag, accepting the closest
// well-formed prefix rather than failing.
func localeTag(locale string) language.Tag {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		return language.English
	}
	tag, err := language.Parse(normalized)
	if err != nil {
		return language.Make(normalized)
	}
	return tag
}

func localeParentTag(locale string) string {
	if locale == "" {
		return ""
	}

	tag, err := language.Parse(locale)
	if err == nil {
		parent := tag.Parent()
		if parent == language.Und {
			return ""
		}
		value := parent.String()
		if value == "" || value == "und" {
			return ""
		}
		return value
	}

	if idx := strings.LastIndex(locale, "-"); idx > 0 {
		return locale[:idx]
	}

	return ""
}

func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := make(map[string]struct{}, 4)

	if tag, err := language.Parse(locale); err == nil {
		for parent := tag.Parent(); parent != language.Und; parent = parent.Parent() {
			parentValue := parent.String()
			if parentValue == "" || parentValue == "und" {
				break
			}
			if _, exists := seen[parentValue]; exists {
				break
			}
			seen[parentValue] = struct{}{}
			chain = append(chain, parentValue)
		}
	}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			continue
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// localeCandidates returns the lookup order for locale data: the
// normalized locale itself, its parents from closest to root, then the
// fallback locale when it is not already present.
func localeCandidates(locale, fallback string) []string {
	normalized := normalizeLocale(locale)
	if normalized == "" {
		normalized = fallback
	}

	candidates := append([]string{normalized}, localeParentChain(normalized)...)
	if fallback == "" {
		return candidates
	}
	for _, candidate := range candidates {
		if candidate == fallback {
			return candidates
		}
	}
	return append(candidates, fallback)
}
