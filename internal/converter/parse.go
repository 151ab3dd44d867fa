package converter

import (
	"regexp"
	"strconv"
	"strings"
	"time"

	"metargb/datepicker-service/pkg/helpers"
	"metargb/datepicker-service/pkg/jalali"
)

// gregorianLayouts are tried in order. The month-first US forms come
// before the day-first forms, so "03/04/2024" reads as March 4.
var gregorianLayouts = []string{
	"2006/01/02",
	"2006-01-02",
	"2006/01/02 15:04:05",
	"2006-01-02 15:04:05",
	"01/02/2006",
	"01-02-2006",
	"02/01/2006",
	"02-01-2006",
}

// persianDatePattern matches Y/m/d or Y-m-d with a four digit year.
var persianDatePattern = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)

// ParseAny interprets text as a date, trying the Persian reading first
// and falling back to the Gregorian format list. It returns false for
// anything unparseable; parsing never returns an error.
func (c *Converter) ParseAny(text string) (time.Time, bool) {
	if strings.TrimSpace(text) == "" {
		return time.Time{}, false
	}
	if t, ok := c.ParsePersian(text); ok {
		return t, true
	}
	return c.ParseGregorian(text)
}

// ParsePersian interprets text as a Jalali Y/m/d date and returns the
// corresponding Gregorian day at UTC midnight. Outcomes are cached by
// the exact input string, misses included.
func (c *Converter) ParsePersian(text string) (time.Time, bool) {
	c.convMu.RLock()
	res, found := c.conversions[text]
	c.convMu.RUnlock()
	if found {
		c.metrics.RecordCacheLookup(conversionCacheName, true)
		return res.t, res.ok
	}
	c.metrics.RecordCacheLookup(conversionCacheName, false)

	res = interpretPersian(text)

	c.convMu.Lock()
	if cached, exists := c.conversions[text]; exists {
		res = cached
	} else {
		c.conversions[text] = res
	}
	size := len(c.conversions)
	c.convMu.Unlock()
	c.metrics.SetCacheEntries(conversionCacheName, size)

	c.log.WithField("text", text).WithField("valid", res.ok).Debug("persian date interpreted")

	return res.t, res.ok
}

// ParseGregorian tries the Gregorian layouts in order. The result is
// truncated to a UTC midnight civil date. Stateless.
func (c *Converter) ParseGregorian(text string) (time.Time, bool) {
	trimmed := strings.TrimSpace(text)
	for _, layout := range gregorianLayouts {
		if t, err := time.Parse(layout, trimmed); err == nil {
			year, month, day := t.Date()
			return time.Date(year, month, day, 0, 0, 0, 0, time.UTC), true
		}
	}
	return time.Time{}, false
}

// interpretPersian validates and converts one Persian date string
// without touching the cache. Digits are normalized first, so Persian
// and Arabic-Indic numerals are accepted.
func interpretPersian(text string) conversionResult {
	normalized := helpers.NormalizePersianNumbers(strings.TrimSpace(text))
	m := persianDatePattern.FindStringSubmatch(normalized)
	if m == nil {
		return conversionResult{}
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	// Quick bounds ahead of the exact month-length check in ToGregorian.
	if year < jalali.MinYear || year > jalali.MaxYear || month < 1 || month > 12 || day < 1 || day > 31 {
		return conversionResult{}
	}

	t, err := jalali.ToGregorian(jalali.New(year, month, day))
	if err != nil {
		return conversionResult{}
	}
	return conversionResult{t: t, ok: true}
}
