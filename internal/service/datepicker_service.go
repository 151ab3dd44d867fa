package service

import (
	"fmt"
	"time"

	"metargb/datepicker-service/internal/converter"
	"metargb/datepicker-service/internal/models"
	"metargb/datepicker-service/pkg/helpers"
	"metargb/datepicker-service/pkg/jalali"
)

// DateConverter is the converter surface the service depends on.
type DateConverter interface {
	FormatPersian(t time.Time) string
	FormatPersianWithMonthName(t time.Time) string
	FormatGregorian(t time.Time) string
	ParseAny(text string) (time.Time, bool)
	ParsePersian(text string) (time.Time, bool)
	ParseGregorian(text string) (time.Time, bool)
	Stats() converter.Stats
}

// DatePickerService composes calendar arithmetic and the converter into
// the picker-level operations served over HTTP and the CLI.
type DatePickerService struct {
	converter DateConverter
	location  *time.Location
	now       func() time.Time
}

// NewDatePickerService creates a date picker service. The location
// decides which day counts as "today".
func NewDatePickerService(conv DateConverter, location *time.Location) *DatePickerService {
	return &DatePickerService{
		converter: conv,
		location:  location,
		now:       time.Now,
	}
}

// DateInfoFor builds the both-calendars payload for the civil date of t.
func (s *DatePickerService) DateInfoFor(t time.Time) models.DateInfo {
	d := jalali.FromTime(t)
	weekday := (int(t.Weekday()) + 1) % 7

	long := fmt.Sprintf("%d %s %d", d.Day, jalali.MonthName(d.Month), d.Year)
	longFa := helpers.PersianDigits(fmt.Sprintf("%d %s %d", d.Day, jalali.PersianMonthName(d.Month), d.Year))

	return models.DateInfo{
		Gregorian:     s.converter.FormatGregorian(t),
		GregorianISO:  t.Format("2006-01-02"),
		Jalali:        d,
		JalaliText:    s.converter.FormatPersian(t),
		JalaliLong:    long,
		JalaliLongFa:  longFa,
		Weekday:       weekday,
		WeekdayName:   jalali.WeekdayName(weekday),
		WeekdayNameFa: jalali.PersianWeekdayName(weekday),
	}
}

// Parse interprets a free-form date text. Unparseable input yields a
// response with Valid=false, never an error.
func (s *DatePickerService) Parse(text string) models.ParseResponse {
	t, ok := s.converter.ParseAny(text)
	if !ok {
		return models.ParseResponse{Valid: false}
	}

	source := "gregorian"
	if _, isPersian := s.converter.ParsePersian(text); isPersian {
		source = "jalali"
	}

	info := s.DateInfoFor(t)
	return models.ParseResponse{Valid: true, Source: source, Date: &info}
}

// ToGregorian converts an explicit Jalali triple.
func (s *DatePickerService) ToGregorian(year, month, day int) (*models.DateInfo, error) {
	t, err := jalali.ToGregorian(jalali.New(year, month, day))
	if err != nil {
		return nil, err
	}
	info := s.DateInfoFor(t)
	return &info, nil
}

// ToJalali converts a Gregorian date text in any accepted format.
func (s *DatePickerService) ToJalali(date string) (*models.DateInfo, bool) {
	t, ok := s.converter.ParseGregorian(date)
	if !ok {
		return nil, false
	}
	info := s.DateInfoFor(t)
	return &info, true
}

// Format renders a Jalali date string in the requested variant.
func (s *DatePickerService) Format(jalaliText string, withMonthName bool) (*models.FormatResponse, error) {
	t, ok := s.converter.ParsePersian(jalaliText)
	if !ok {
		return nil, fmt.Errorf("%w: %q", jalali.ErrInvalidDate, jalaliText)
	}

	formatted := s.converter.FormatPersian(t)
	if withMonthName {
		formatted = s.converter.FormatPersianWithMonthName(t)
	}

	return &models.FormatResponse{Formatted: formatted, Date: s.DateInfoFor(t)}, nil
}

// Today returns the current day in the configured timezone.
func (s *DatePickerService) Today() models.TodayResponse {
	now := s.now().In(s.location)
	return models.TodayResponse{
		DateInfo: s.DateInfoFor(now),
		Timezone: s.location.String(),
		UnixTime: now.Unix(),
	}
}

// MonthGrid assembles the Saturday-first month matrix for the picker.
func (s *DatePickerService) MonthGrid(year, month int) (*models.MonthGrid, error) {
	if err := jalali.New(year, month, 1).Validate(); err != nil {
		return nil, err
	}

	first, err := jalali.FirstWeekdayOfMonth(year, month)
	if err != nil {
		return nil, err
	}
	days := jalali.DaysInMonth(year, month)

	grid := &models.MonthGrid{
		Year:         year,
		Month:        month,
		MonthName:    jalali.MonthName(month),
		MonthNameFa:  jalali.PersianMonthName(month),
		DaysInMonth:  days,
		FirstWeekday: first,
		Weeks:        buildWeeks(first, days),
	}

	if today := jalali.FromTime(s.now().In(s.location)); today.Year == year && today.Month == month {
		grid.Today = today.Day
	}

	prev := jalali.AddMonths(jalali.New(year, month, 1), -1)
	next := jalali.AddMonths(jalali.New(year, month, 1), 1)
	grid.Previous = models.MonthRef{Year: prev.Year, Month: prev.Month}
	grid.Next = models.MonthRef{Year: next.Year, Month: next.Month}

	return grid, nil
}

// CacheStats reports the converter cache sizes.
func (s *DatePickerService) CacheStats() converter.Stats {
	return s.converter.Stats()
}

// buildWeeks lays the days of a month into Saturday-first rows, with 0
// marking cells outside the month.
func buildWeeks(firstWeekday, daysInMonth int) [][7]int {
	rows := (firstWeekday + daysInMonth + 6) / 7
	weeks := make([][7]int, rows)

	day := 1
	for cell := firstWeekday; day <= daysInMonth; cell++ {
		weeks[cell/7][cell%7] = day
		day++
	}
	return weeks
}
