package era

import (
	"fmt"
	"strconv"
	"time"
)

// CalendarDate is anything that can report a calendar year, month and day.
// time.Time satisfies it.
type CalendarDate interface {
	Date() (year int, month time.Month, day int)
}

// Renderer turns a year, month and day into a label at a given precision.
// Month and day are ignored when the precision is coarser than them.
// Renderer is an immutable value; WithLanguage returns a modified copy.
type Renderer struct {
	year      int
	month     int
	day       int
	precision Precision
	language  Language
}

// New builds a Renderer with English vocabulary.
func New(year, month, day int, precision Precision) Renderer {
	return Renderer{
		year:      year,
		month:     month,
		day:       day,
		precision: precision,
		language:  English,
	}
}

// FromYearMonthDay renders as "2024-10-02".
func FromYearMonthDay(year, month, day int) Renderer {
	return New(year, month, day, PrecisionDay)
}

// FromYearMonth renders as "2024-10".
func FromYearMonth(year, month int) Renderer {
	return New(year, month, 0, PrecisionMonth)
}

// FromYear renders the plain signed year.
func FromYear(year int) Renderer {
	return New(year, 0, 0, PrecisionYear)
}

// FromYearAsDecade renders the decade of year, e.g. "910s BCE".
func FromYearAsDecade(year int) Renderer {
	return New(year, 0, 0, PrecisionDecade)
}

// FromYearAsCentury renders the century of year, e.g. "3rd century".
func FromYearAsCentury(year int) Renderer {
	return New(year, 0, 0, PrecisionCentury)
}

// FromYearAsMillennium renders the millennium of year, e.g. "2nd millennium".
func FromYearAsMillennium(year int) Renderer {
	return New(year, 0, 0, PrecisionMillennium)
}

// FromDate reads year, month and day off date and applies precision.
// The values are trusted as given; no calendar validation happens here.
func FromDate(date CalendarDate, precision Precision) Renderer {
	year, month, day := date.Date()
	return New(year, int(month), day, precision)
}

// FromTime is FromDate for time.Time values.
func FromTime(t time.Time, precision Precision) Renderer {
	return FromDate(t, precision)
}

// WithLanguage returns a copy of r using language.
func (r Renderer) WithLanguage(language Language) Renderer {
	r.language = language
	return r
}

// WithPrecision returns a copy of r rendered at precision.
func (r Renderer) WithPrecision(precision Precision) Renderer {
	r.precision = precision
	return r
}

func (r Renderer) Year() int { return r.year }
func (r Renderer) Month() int { return r.month }
func (r Renderer) Day() int { return r.day }
func (r Renderer) Precision() Precision { return r.precision }
func (r Renderer) Language() Language { return r.language }

// Render produces the label for r.
func (r Renderer) Render() string {
	switch r.precision {
	case PrecisionMillennium:
		return r.millennium()
	case PrecisionCentury:
		return r.century()
	case PrecisionDecade:
		return r.decade()
	case PrecisionMonth:
		return fmt.Sprintf("%d-%02d", r.year, r.month)
	case PrecisionDay:
		return fmt.Sprintf("%d-%02d-%02d", r.year, r.month, r.day)
	default:
		return strconv.Itoa(r.year)
	}
}

func (r Renderer) String() string {
	return r.Render()
}

// year zero has no decade, century or millennium and renders as "0"
func (r Renderer) decade() string {
	if r.year == 0 {
		return "0"
	}
	start := magnitude(r.year) / 10 * 10
	return strconv.FormatUint(start, 10) + r.language.DecadeFragment() + r.language.EraSuffix(r.year)
}

func (r Renderer) century() string {
	if r.year == 0 {
		return "0"
	}
	return r.ordinalLabel((magnitude(r.year)+99)/100, r.language.CenturyFragment())
}

func (r Renderer) millennium() string {
	if r.year == 0 {
		return "0"
	}
	return r.ordinalLabel((magnitude(r.year)+999)/1000, r.language.MillenniumFragment())
}

func (r Renderer) ordinalLabel(n uint64, noun string) string {
	ext := r.language.vocabulary().ordinal(n)
	return strconv.FormatUint(n, 10) + ext + " " + noun + r.language.EraSuffix(r.year)
}

// magnitude returns |n| without overflowing on math.MinInt.
func magnitude(n int) uint64 {
	if n < 0 {
		return uint64(-(n + 1)) + 1
	}
	return uint64(n)
}
