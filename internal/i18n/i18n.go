// Package i18n defines the supported storefront locales.
//
// Supported languages:
//   - cs (čeština) - default
//   - en (English)
//   - he (עברית)
package i18n

// Locales lists the supported locale codes, default first.
var Locales = []string{"cs", "en", "he"}

// DefaultLocale is used whenever a request carries no valid locale.
const DefaultLocale = "cs"

// IsValid reports whether locale is one of the supported codes.
func IsValid(locale string) bool {
	for _, l := range Locales {
		if l == locale {
			return true
		}
	}
	return false
}
