package era

import "time"

// TemplateHelpers exposes era formatters for text/template and html/template.
// Locales are resolved through cfg; a nil cfg uses LanguageFromCode.
func TemplateHelpers(cfg *Config) map[string]any {
	render := func(locale string, r Renderer) string {
		return cfg.Localize(locale, r).String()
	}

	return map[string]any{
		"format_day": func(locale string, year, month, day int) string {
			return render(locale, FromYearMonthDay(year, month, day))
		},
		"format_month": func(locale string, year, month int) string {
			return render(locale, FromYearMonth(year, month))
		},
		"format_year": func(locale string, year int) string {
			return render(locale, FromYear(year))
		},
		"format_decade": func(locale string, year int) string {
			return render(locale, FromYearAsDecade(year))
		},
		"format_century": func(locale string, year int) string {
			return render(locale, FromYearAsCentury(year))
		},
		"format_millennium": func(locale string, year int) string {
			return render(locale, FromYearAsMillennium(year))
		},
		"format_year_precision": func(locale string, year, rank int) (string, error) {
			precision, err := PrecisionFromRank(rank)
			if err != nil {
				return "", err
			}
			return render(locale, New(year, 0, 0, precision)), nil
		},
		"format_precision": func(locale string, t time.Time, rank int) (string, error) {
			precision, err := PrecisionFromRank(rank)
			if err != nil {
				return "", err
			}
			return render(locale, FromTime(t, precision)), nil
		},
	}
}
