// Package converter implements the string-facing date engine: Persian
// and Gregorian formatting, multi-format parsing, and the two
// process-lifetime caches behind them.
package converter

import (
	"fmt"
	"sync"
	"time"

	"metargb/datepicker-service/pkg/jalali"
	"metargb/datepicker-service/pkg/logger"
	"metargb/datepicker-service/pkg/metrics"
)

const (
	conversionCacheName = "conversion"
	formatCacheName     = "format"
)

// conversionResult records the outcome of interpreting a raw string as
// a Persian date. Failed interpretations are cached too, so repeated
// garbage input is rejected without re-validation.
type conversionResult struct {
	t  time.Time
	ok bool
}

// formatKey identifies one rendered day. The month-name flag is part of
// the key so the two Persian render variants never collide.
type formatKey struct {
	year          int
	month         int
	day           int
	withMonthName bool
}

// Stats reports cache sizes.
type Stats struct {
	ConversionEntries int `json:"conversion_entries"`
	FormatEntries     int `json:"format_entries"`
}

// Converter owns the conversion and format caches and every
// string-facing date operation. Safe for concurrent use; results are
// identical with or without the caches.
type Converter struct {
	log     *logger.Logger
	metrics *metrics.Metrics

	convMu      sync.RWMutex
	conversions map[string]conversionResult

	formatMu sync.RWMutex
	formats  map[formatKey]string
}

// New creates a converter with empty caches.
func New(log *logger.Logger, m *metrics.Metrics) *Converter {
	return &Converter{
		log:         log,
		metrics:     m,
		conversions: make(map[string]conversionResult),
		formats:     make(map[formatKey]string),
	}
}

// FormatPersian formats the civil date of t as a Jalali Y/m/d string.
// Example: 2023-08-06 -> "1402/05/15"
func (c *Converter) FormatPersian(t time.Time) string {
	return c.formatPersian(t, false)
}

// FormatPersianWithMonthName formats the civil date of t with the
// Jalali month name.
// Example: 2023-08-06 -> "15 Mordad 1402"
func (c *Converter) FormatPersianWithMonthName(t time.Time) string {
	return c.formatPersian(t, true)
}

// FormatGregorian formats the civil date of t as Y/m/d. Stateless.
func (c *Converter) FormatGregorian(t time.Time) string {
	return t.Format("2006/01/02")
}

func (c *Converter) formatPersian(t time.Time, withMonthName bool) string {
	year, month, day := t.Date()
	key := formatKey{year: year, month: int(month), day: day, withMonthName: withMonthName}

	c.formatMu.RLock()
	s, ok := c.formats[key]
	c.formatMu.RUnlock()
	if ok {
		c.metrics.RecordCacheLookup(formatCacheName, true)
		return s
	}
	c.metrics.RecordCacheLookup(formatCacheName, false)

	d := jalali.FromTime(t)
	if withMonthName {
		s = fmt.Sprintf("%d %s %d", d.Day, jalali.MonthName(d.Month), d.Year)
	} else {
		s = d.String()
	}

	// Re-check under the write lock; concurrent first calls must agree
	// on a single cached value.
	c.formatMu.Lock()
	if cached, exists := c.formats[key]; exists {
		s = cached
	} else {
		c.formats[key] = s
	}
	size := len(c.formats)
	c.formatMu.Unlock()
	c.metrics.SetCacheEntries(formatCacheName, size)

	return s
}

// Stats returns the current cache entry counts.
func (c *Converter) Stats() Stats {
	c.convMu.RLock()
	conversions := len(c.conversions)
	c.convMu.RUnlock()

	c.formatMu.RLock()
	formats := len(c.formats)
	c.formatMu.RUnlock()

	return Stats{ConversionEntries: conversions, FormatEntries: formats}
}

// Reset empties both caches.
func (c *Converter) Reset() {
	c.convMu.Lock()
	c.conversions = make(map[string]conversionResult)
	c.convMu.Unlock()

	c.formatMu.Lock()
	c.formats = make(map[formatKey]string)
	c.formatMu.Unlock()

	c.metrics.SetCacheEntries(conversionCacheName, 0)
	c.metrics.SetCacheEntries(formatCacheName, 0)

	c.log.Debug("converter caches reset")
}
