package converter

import (
	"sync"
	"testing"
	"time"
)

func TestFormatPersian(t *testing.T) {
	c := newTestConverter()

	tests := []struct {
		name string
		date string
		want string
	}{
		{"mid Mordad", "2023-08-06", "1402/05/15"},
		{"Nowruz", "2025-03-21", "1404/01/01"},
		{"leap Esfand 30", "2025-03-20", "1403/12/30"},
		{"single digit padding", "2023-07-23", "1402/05/01"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FormatPersian(mustDay(t, tt.date)); got != tt.want {
				t.Errorf("FormatPersian(%s): expected %s, got %s", tt.date, tt.want, got)
			}
		})
	}
}

func TestFormatPersianWithMonthName(t *testing.T) {
	c := newTestConverter()

	tests := []struct {
		name string
		date string
		want string
	}{
		{"mid Mordad", "2023-08-06", "15 Mordad 1402"},
		{"Nowruz", "2025-03-21", "1 Farvardin 1404"},
		{"Esfand", "2025-03-20", "30 Esfand 1403"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := c.FormatPersianWithMonthName(mustDay(t, tt.date)); got != tt.want {
				t.Errorf("FormatPersianWithMonthName(%s): expected %s, got %s", tt.date, tt.want, got)
			}
		})
	}
}

func TestFormatGregorian(t *testing.T) {
	c := newTestConverter()

	if got := c.FormatGregorian(mustDay(t, "2023-08-06")); got != "2023/08/06" {
		t.Errorf("FormatGregorian: expected 2023/08/06, got %s", got)
	}
	if got := c.FormatGregorian(mustDay(t, "2024-03-04")); got != "2024/03/04" {
		t.Errorf("FormatGregorian: expected 2024/03/04, got %s", got)
	}
	if got := c.Stats().FormatEntries; got != 0 {
		t.Errorf("gregorian formatting must not populate the format cache, got %d entries", got)
	}
}

func TestFormatVariantsDoNotCollide(t *testing.T) {
	c := newTestConverter()
	day := mustDay(t, "2023-08-06")

	plain := c.FormatPersian(day)
	named := c.FormatPersianWithMonthName(day)
	if plain == named {
		t.Fatalf("expected distinct renderings, both %q", plain)
	}
	if got := c.Stats().FormatEntries; got != 2 {
		t.Errorf("expected 2 format entries, got %d", got)
	}

	// Cached round.
	if got := c.FormatPersian(day); got != plain {
		t.Errorf("cached FormatPersian: expected %s, got %s", plain, got)
	}
	if got := c.FormatPersianWithMonthName(day); got != named {
		t.Errorf("cached FormatPersianWithMonthName: expected %s, got %s", named, got)
	}
	if got := c.Stats().FormatEntries; got != 2 {
		t.Errorf("expected 2 format entries after repeats, got %d", got)
	}
}

func TestFormatIgnoresClock(t *testing.T) {
	c := newTestConverter()

	morning := time.Date(2023, time.August, 6, 8, 15, 0, 0, time.UTC)
	evening := time.Date(2023, time.August, 6, 23, 45, 0, 0, time.UTC)
	if a, b := c.FormatPersian(morning), c.FormatPersian(evening); a != b {
		t.Errorf("same civil day rendered differently: %s vs %s", a, b)
	}
	if got := c.Stats().FormatEntries; got != 1 {
		t.Errorf("expected 1 format entry for one civil day, got %d", got)
	}
}

func TestFormatParseInverse(t *testing.T) {
	c := newTestConverter()

	for _, date := range []string{"2023-08-06", "2024-02-11", "2025-03-20", "2025-03-21", "1996-12-31"} {
		day := mustDay(t, date)
		formatted := c.FormatPersian(day)
		back, ok := c.ParseAny(formatted)
		if !ok {
			t.Fatalf("ParseAny(%q): expected success", formatted)
		}
		if !back.Equal(day) {
			t.Errorf("%s -> %q -> %s: expected round trip", date, formatted, back)
		}
	}
}

func TestReset(t *testing.T) {
	c := newTestConverter()
	day := mustDay(t, "2023-08-06")

	c.FormatPersian(day)
	c.ParseAny("1402/05/15")
	c.ParseAny("garbage")

	stats := c.Stats()
	if stats.ConversionEntries != 2 || stats.FormatEntries != 1 {
		t.Fatalf("unexpected stats before reset: %+v", stats)
	}

	c.Reset()
	stats = c.Stats()
	if stats.ConversionEntries != 0 || stats.FormatEntries != 0 {
		t.Errorf("expected empty caches after reset, got %+v", stats)
	}

	// Results are unchanged after a reset.
	if got := c.FormatPersian(day); got != "1402/05/15" {
		t.Errorf("FormatPersian after reset: expected 1402/05/15, got %s", got)
	}
	if got, ok := c.ParseAny("1402/05/15"); !ok || !got.Equal(day) {
		t.Errorf("ParseAny after reset: expected %s, got %s (ok=%v)", day, got, ok)
	}
}

func TestConcurrentAccess(t *testing.T) {
	c := newTestConverter()
	day := mustDay(t, "2023-08-06")

	inputs := []string{"1402/05/15", "2023-08-06", "garbage", "1403/12/30", "03/04/2024"}

	var wg sync.WaitGroup
	for worker := 0; worker < 16; worker++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < 200; i++ {
				input := inputs[i%len(inputs)]
				if got, ok := c.ParseAny(input); ok && got.IsZero() {
					t.Errorf("ParseAny(%q): ok with zero time", input)
				}
				if got := c.FormatPersian(day); got != "1402/05/15" {
					t.Errorf("FormatPersian: expected 1402/05/15, got %s", got)
				}
				if got := c.FormatPersianWithMonthName(day); got != "15 Mordad 1402" {
					t.Errorf("FormatPersianWithMonthName: expected 15 Mordad 1402, got %s", got)
				}
			}
		}()
	}
	wg.Wait()

	// One entry per distinct raw string, negatives included, and one
	// format entry per render variant.
	stats := c.Stats()
	if stats.ConversionEntries != 5 {
		t.Errorf("expected 5 conversion entries, got %d", stats.ConversionEntries)
	}
	if stats.FormatEntries != 2 {
		t.Errorf("expected 2 format entries, got %d", stats.FormatEntries)
	}
}
