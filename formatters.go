package era

import "time"

// The Format helpers take the locale first, like template formatters do.
// The locale goes through LanguageFromCode, so unknown codes render in English.

// FormatDay renders year, month and day at day precision.
func FormatDay(locale string, year, month, day int) string {
	return FromYearMonthDay(year, month, day).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatMonth renders year and month at month precision.
func FormatMonth(locale string, year, month int) string {
	return FromYearMonth(year, month).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatYear renders the plain year.
func FormatYear(locale string, year int) string {
	return FromYear(year).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatDecade renders the decade of year in the language of locale.
func FormatDecade(locale string, year int) string {
	return FromYearAsDecade(year).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatCentury renders the century of year in the language of locale.
func FormatCentury(locale string, year int) string {
	return FromYearAsCentury(year).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatMillennium renders the millennium of year in the language of locale.
func FormatMillennium(locale string, year int) string {
	return FromYearAsMillennium(year).WithLanguage(LanguageFromCode(locale)).String()
}

// FormatDate renders t at precision.
func FormatDate(locale string, t time.Time, precision Precision) string {
	return FromTime(t, precision).WithLanguage(LanguageFromCode(locale)).String()
}
