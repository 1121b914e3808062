package era

import (
	"strings"

	"golang.org/x/text/language"
)

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

// localeParentChain lists the parents of locale from closest to root,
// e.g. "de-CH-1996" yields ["de-CH", "de"].
func localeParentChain(locale string) []string {
	if locale == "" {
		return nil
	}

	var chain []string
	seen := map[string]struct{}{locale: {}}

	for current := localeParentTag(locale); current != ""; current = localeParentTag(current) {
		if _, exists := seen[current]; exists {
			break
		}
		seen[current] = struct{}{}
		chain = append(chain, current)
	}

	return chain
}

// normalizeLocale replaces underscores with hyphens and trims whitespace.
func normalizeLocale(locale string) string {
	return strings.ReplaceAll(strings.TrimSpace(locale), "_", "-")
}

// canonicalLocale normalizes locale and canonicalizes its casing through
// BCP 47 parsing, so "lb_lu" and "LB-LU" both become "lb-LU". Locales that do
// not parse are lower cased.
func canonicalLocale(locale string) string {
	locale = normalizeLocale(locale)
	if locale == "" {
		return ""
	}
	if tag, err := language.Parse(locale); err == nil {
		return tag.String()
	}
	return strings.ToLower(locale)
}
