package era

import (
	"math"
	"testing"
	"time"
)

func TestRendererDay(t *testing.T) {
	if got := FromYearMonthDay(2024, 10, 2).String(); got != "2024-10-02" {
		t.Fatalf("day = %q", got)
	}
	if got := FromYearMonthDay(-2024, 10, 2).String(); got != "-2024-10-02" {
		t.Fatalf("negative day = %q", got)
	}
	if got := FromYearMonthDay(7, 1, 9).String(); got != "7-01-09" {
		t.Fatalf("year must not be padded, got %q", got)
	}
}

func TestRendererMonth(t *testing.T) {
	if got := FromYearMonth(2024, 10).String(); got != "2024-10" {
		t.Fatalf("month = %q", got)
	}
	if got := FromYearMonth(-2024, 3).String(); got != "-2024-03" {
		t.Fatalf("negative month = %q", got)
	}
}

func TestRendererYear(t *testing.T) {
	tests := map[int]string{
		2024:  "2024",
		-2024: "-2024",
		0:     "0",
	}
	for year, expected := range tests {
		if got := FromYear(year).String(); got != expected {
			t.Errorf("FromYear(%d) = %q; want %q", year, got, expected)
		}
	}
}

func TestRendererDecade(t *testing.T) {
	tests := []struct {
		year     int
		expected string
	}{
		{910, "910s"},
		{919, "910s"},
		{5, "0s"},
		{-910, "910s BCE"},
		{-909, "900s BCE"},
		{-900, "900s BCE"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FromYearAsDecade(tt.year).String(); got != tt.expected {
			t.Errorf("decade(%d) = %q; want %q", tt.year, got, tt.expected)
		}
	}
}

func TestRendererCentury(t *testing.T) {
	tests := []struct {
		year     int
		expected string
	}{
		{10, "1st century"},
		{100, "1st century"},
		{110, "2nd century"},
		{210, "3rd century"},
		{310, "4th century"},
		{1010, "11st century"},
		{-10, "1st century BCE"},
		{-110, "2nd century BCE"},
		{-210, "3rd century BCE"},
		{-310, "4th century BCE"},
		{-1000, "10th century BCE"},
		{-901, "10th century BCE"},
		{-900, "9th century BCE"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := New(tt.year, 1, 1, PrecisionCentury).String(); got != tt.expected {
			t.Errorf("century(%d) = %q; want %q", tt.year, got, tt.expected)
		}
	}
}

func TestRendererMillennium(t *testing.T) {
	tests := []struct {
		year     int
		expected string
	}{
		{1, "1st millennium"},
		{1000, "1st millennium"},
		{1001, "2nd millennium"},
		{2001, "3rd millennium"},
		{3001, "4th millennium"},
		{-1000, "1st millennium BCE"},
		{-1001, "2nd millennium BCE"},
		{-2001, "3rd millennium BCE"},
		{-3001, "4th millennium BCE"},
		{0, "0"},
	}

	for _, tt := range tests {
		if got := FromYearAsMillennium(tt.year).String(); got != tt.expected {
			t.Errorf("millennium(%d) = %q; want %q", tt.year, got, tt.expected)
		}
	}
}

func TestRendererYearZeroIsOrigin(t *testing.T) {
	for _, lang := range Languages() {
		for _, p := range []Precision{PrecisionDecade, PrecisionCentury, PrecisionMillennium} {
			if got := New(0, 5, 5, p).WithLanguage(lang).Render(); got != "0" {
				t.Errorf("%s/%s year 0 = %q; want \"0\"", lang, p.Name(), got)
			}
		}
	}
}

func TestRendererGerman(t *testing.T) {
	tests := []struct {
		renderer Renderer
		expected string
	}{
		{FromYearAsDecade(910), "910er"},
		{FromYearAsDecade(-910), "910er v.Chr."},
		{FromYearAsCentury(910), "10. Jahrhundert"},
		{FromYearAsCentury(-910), "10. Jahrhundert v.Chr."},
		{FromYearAsMillennium(910), "1. Jahrtausend"},
		{FromYearAsMillennium(-910), "1. Jahrtausend v.Chr."},
		{FromYearMonthDay(-910, 9, 17), "-910-09-17"},
	}

	for _, tt := range tests {
		if got := tt.renderer.WithLanguage(German).String(); got != tt.expected {
			t.Errorf("German render = %q; want %q", got, tt.expected)
		}
	}
}

func TestRendererWithLanguageReturnsCopy(t *testing.T) {
	base := FromYearAsCentury(-210)
	german := base.WithLanguage(German)

	if base.Language() != English {
		t.Fatalf("receiver language changed to %v", base.Language())
	}
	if german.Language() != German {
		t.Fatalf("copy language = %v", german.Language())
	}
	if base.String() != "3rd century BCE" || german.String() != "3. Jahrhundert v.Chr." {
		t.Fatalf("unexpected renders %q / %q", base, german)
	}
	if base.WithPrecision(PrecisionYear).String() != "-210" {
		t.Fatal("WithPrecision should re-render at year precision")
	}
	if base.Precision() != PrecisionCentury {
		t.Fatal("WithPrecision must not mutate the receiver")
	}
}

func TestRendererConstructorsNormalize(t *testing.T) {
	r := FromYearAsMillennium(1500)
	if r.Month() != 0 || r.Day() != 0 || r.Year() != 1500 {
		t.Fatalf("unexpected fields %+v", r)
	}
	if r.Precision() != PrecisionMillennium || r.Language() != English {
		t.Fatalf("unexpected precision/language %v/%v", r.Precision(), r.Language())
	}

	m := FromYearMonth(2024, 9)
	if m.Day() != 0 || m.Precision() != PrecisionMonth {
		t.Fatalf("unexpected month renderer %+v", m)
	}
}

func TestRendererFromDate(t *testing.T) {
	date := time.Date(2024, time.September, 1, 0, 0, 0, 0, time.UTC)
	if got := FromDate(date, PrecisionDay).String(); got != "2024-09-01" {
		t.Fatalf("FromDate = %q", got)
	}

	bce := time.Date(-910, time.September, 17, 12, 0, 0, 0, time.UTC)
	tests := []struct {
		precision Precision
		expected  string
	}{
		{PrecisionMillennium, "1st millennium BCE"},
		{PrecisionCentury, "10th century BCE"},
		{PrecisionDecade, "910s BCE"},
		{PrecisionYear, "-910"},
		{PrecisionMonth, "-910-09"},
		{PrecisionDay, "-910-09-17"},
	}

	for _, tt := range tests {
		t.Run(tt.precision.Name(), func(t *testing.T) {
			if got := FromTime(bce, tt.precision).String(); got != tt.expected {
				t.Fatalf("FromTime(%s) = %q; want %q", tt.precision.Name(), got, tt.expected)
			}
		})
	}
}

type fixedDate struct {
	year, month, day int
}

func (d fixedDate) Date() (int, time.Month, int) {
	return d.year, time.Month(d.month), d.day
}

func TestRendererFromCalendarDateTrustsAdapter(t *testing.T) {
	// values outside the calendar are rendered as given
	got := FromDate(fixedDate{year: 2024, month: 13, day: 45}, PrecisionDay).String()
	if got != "2024-13-45" {
		t.Fatalf("FromDate = %q", got)
	}
}

func TestRendererEraSuffixFollowsSign(t *testing.T) {
	for _, year := range []int{-1, -99, -12345, 1, 99, 12345} {
		for _, p := range []Precision{PrecisionDecade, PrecisionCentury, PrecisionMillennium} {
			got := New(year, 0, 0, p).String()
			hasSuffix := len(got) > 4 && got[len(got)-4:] == " BCE"
			if hasSuffix != (year < 0) {
				t.Errorf("year %d at %s rendered %q", year, p.Name(), got)
			}
		}
	}
}

func TestMagnitudeHandlesMinInt(t *testing.T) {
	if got := magnitude(math.MinInt); got != uint64(math.MaxInt)+1 {
		t.Fatalf("magnitude(MinInt) = %d", got)
	}
	if got := magnitude(-42); got != 42 {
		t.Fatalf("magnitude(-42) = %d", got)
	}
	if got := FromYearAsMillennium(math.MinInt).String(); got == "" {
		t.Fatal("expected a label for MinInt")
	}
}
