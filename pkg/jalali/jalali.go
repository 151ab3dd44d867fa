// Package jalali implements Jalali (Solar Hijri) calendar arithmetic and
// conversion to and from Gregorian dates. All functions are pure; callers
// that need caching or formatting build on top of this package.
package jalali

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidDate is returned when a date fails validation. Callers can
// match it with errors.Is.
var ErrInvalidDate = errors.New("invalid jalali date")

// Supported year range for conversion. Matches the input rules of the
// date-picker surfaces built on this package.
const (
	MinYear = 1000
	MaxYear = 1500
)

// Date is a Jalali calendar date. The zero value is not a valid date;
// use Validate or IsValid before converting untrusted values.
type Date struct {
	Year  int `json:"year"`
	Month int `json:"month"`
	Day   int `json:"day"`
}

// New returns the Jalali date year/month/day without validating it.
func New(year, month, day int) Date {
	return Date{Year: year, Month: month, Day: day}
}

var monthNames = [12]string{
	"Farvardin", "Ordibehesht", "Khordad", "Tir", "Mordad", "Shahrivar",
	"Mehr", "Aban", "Azar", "Dey", "Bahman", "Esfand",
}

var persianMonthNames = [12]string{
	"فروردین", "اردیبهشت", "خرداد", "تیر", "مرداد", "شهریور",
	"مهر", "آبان", "آذر", "دی", "بهمن", "اسفند",
}

// Weekday names are Saturday-first: index 0 is Saturday, 6 is Friday.
var weekdayNames = [7]string{
	"Saturday", "Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday",
}

var persianWeekdayNames = [7]string{
	"شنبه", "یکشنبه", "دوشنبه", "سه‌شنبه", "چهارشنبه", "پنجشنبه", "جمعه",
}

// IsLeapYear reports whether year is a Jalali leap year. The calendar
// follows a 33-year arithmetic cycle with 8 leap years; the closed form
// below is consistent with the day-number arithmetic in this package,
// including the five-year gap between 1403 and 1408.
func IsLeapYear(year int) bool {
	r := (year + 1596) % 33
	if r < 0 {
		r += 33
	}
	return r%4 == 1
}

// DaysInMonth returns the number of days in the given Jalali month:
// 31 for months 1-6, 30 for 7-11, and 29 or 30 for Esfand depending on
// the leap year. Returns 0 when month is out of range.
func DaysInMonth(year, month int) int {
	switch {
	case month >= 1 && month <= 6:
		return 31
	case month >= 7 && month <= 11:
		return 30
	case month == 12:
		if IsLeapYear(year) {
			return 30
		}
		return 29
	}
	return 0
}

// Validate checks year range, month range and day-in-month. The returned
// error wraps ErrInvalidDate.
func (d Date) Validate() error {
	if d.Year < MinYear || d.Year > MaxYear {
		return fmt.Errorf("%w: year %d out of range %d..%d", ErrInvalidDate, d.Year, MinYear, MaxYear)
	}
	if d.Month < 1 || d.Month > 12 {
		return fmt.Errorf("%w: month %d out of range 1..12", ErrInvalidDate, d.Month)
	}
	if max := DaysInMonth(d.Year, d.Month); d.Day < 1 || d.Day > max {
		return fmt.Errorf("%w: day %d out of range 1..%d for %d/%02d", ErrInvalidDate, d.Day, max, d.Year, d.Month)
	}
	return nil
}

// IsValid reports whether d is a valid date in the supported range.
func (d Date) IsValid() bool {
	return d.Validate() == nil
}

// String formats the date as Y/m/d (e.g., "1402/05/15").
func (d Date) String() string {
	return fmt.Sprintf("%d/%02d/%02d", d.Year, d.Month, d.Day)
}

// MonthName returns the Latin-script month name (Farvardin..Esfand),
// or "" when month is out of range.
func MonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return monthNames[month-1]
}

// PersianMonthName returns the native-script month name, or "" when
// month is out of range.
func PersianMonthName(month int) string {
	if month < 1 || month > 12 {
		return ""
	}
	return persianMonthNames[month-1]
}

// WeekdayName returns the name for a Saturday-based weekday index
// (0=Saturday..6=Friday), or "" when out of range.
func WeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return weekdayNames[weekday]
}

// PersianWeekdayName returns the native-script name for a Saturday-based
// weekday index, or "" when out of range.
func PersianWeekdayName(weekday int) string {
	if weekday < 0 || weekday > 6 {
		return ""
	}
	return persianWeekdayNames[weekday]
}

// ToGregorian converts d to the corresponding Gregorian date at UTC
// midnight. Invalid dates return the zero time and an error wrapping
// ErrInvalidDate; the function never panics.
func ToGregorian(d Date) (time.Time, error) {
	if err := d.Validate(); err != nil {
		return time.Time{}, err
	}
	gy, gm, gd := civilFromDayNumber(dayNumber(d))
	return time.Date(gy, gm, gd, 0, 0, 0, 0, time.UTC), nil
}

// FromTime converts the civil date carried by t (in its own location)
// to a Jalali date. Time-of-day is discarded.
func FromTime(t time.Time) Date {
	gy, gm, gd := t.Date()
	n := gregorianDayNumber(gy, gm, gd)

	// Settle on the Jalali year containing day n, starting from a
	// below-or-equal guess and climbing.
	jy := floorDiv(n+persianEpochShift, 366) - 1595
	for jalaliYearStart(jy) >= n {
		jy--
	}
	for jalaliYearStart(jy+1) < n {
		jy++
	}

	yday := n - jalaliYearStart(jy)
	if yday <= 186 {
		return Date{Year: jy, Month: (yday-1)/31 + 1, Day: (yday-1)%31 + 1}
	}
	yday -= 187
	return Date{Year: jy, Month: 7 + yday/30, Day: yday%30 + 1}
}

// Weekday returns the Saturday-based weekday of d: 0=Saturday..6=Friday.
// The host weekday (Sunday=0) is rebased with (wd+1) mod 7.
func Weekday(d Date) (int, error) {
	t, err := ToGregorian(d)
	if err != nil {
		return 0, err
	}
	return (int(t.Weekday()) + 1) % 7, nil
}

// FirstWeekdayOfMonth returns the Saturday-based weekday of the first
// day of the given month.
func FirstWeekdayOfMonth(year, month int) (int, error) {
	return Weekday(Date{Year: year, Month: month, Day: 1})
}

// AddMonths moves d by delta months, clamping the day to the length of
// the target month. It does not validate the resulting year range.
func AddMonths(d Date, delta int) Date {
	months := d.Year*12 + (d.Month - 1) + delta
	year := floorDiv(months, 12)
	month := months - year*12 + 1
	day := d.Day
	if max := DaysInMonth(year, month); day > max {
		day = max
	}
	return Date{Year: year, Month: month, Day: day}
}

// The two calendars are aligned on a single day count: the count a
// Gregorian date produces in gregorianDayNumber equals the count the
// Jalali formulas produce after the epoch shift below.
const persianEpochShift = 355668

var gregorianDaysBeforeMonth = [12]int{0, 31, 59, 90, 120, 151, 181, 212, 243, 273, 304, 334}

func isGregorianLeap(year int) bool {
	return (year%4 == 0 && year%100 != 0) || year%400 == 0
}

// floorDiv divides rounding toward negative infinity.
func floorDiv(a, b int) int {
	q := a / b
	if (a%b != 0) && ((a < 0) != (b < 0)) {
		q--
	}
	return q
}

// jalaliYearStart returns the day number of the last day before
// Farvardin 1 of the given year. Each 33-year cycle carries 8 leap days.
func jalaliYearStart(year int) int {
	y := year + 1595
	return 365*y + floorDiv(y, 33)*8 + floorDiv(y%33+3, 4) - persianEpochShift
}

// dayNumber returns the day number of a valid Jalali date.
func dayNumber(d Date) int {
	n := jalaliYearStart(d.Year) + d.Day
	if d.Month < 7 {
		n += (d.Month - 1) * 31
	} else {
		n += (d.Month-7)*30 + 186
	}
	return n
}

// gregorianDayNumber returns the day number of a Gregorian civil date.
func gregorianDayNumber(year int, month time.Month, day int) int {
	py := year - 1
	n := 365*year + floorDiv(py, 4) - floorDiv(py, 100) + floorDiv(py, 400)
	n += gregorianDaysBeforeMonth[month-1]
	if month > 2 && isGregorianLeap(year) {
		n++
	}
	return n + day
}

// civilFromDayNumber converts a day number back to a Gregorian civil
// date using 400/100/4-year cycle division.
func civilFromDayNumber(days int) (int, time.Month, int) {
	gy := 400 * (days / 146097)
	days %= 146097

	if days > 36524 {
		days--
		gy += 100 * (days / 36524)
		days %= 36524
		if days >= 365 {
			days++
		}
	}

	gy += 4 * (days / 1461)
	days %= 1461

	if days > 365 {
		gy += (days - 1) / 365
		days = (days - 1) % 365
	}

	gd := days + 1

	feb := 28
	if isGregorianLeap(gy) {
		feb = 29
	}
	monthDays := [12]int{31, feb, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

	gm := 0
	for gm < 12 && gd > monthDays[gm] {
		gd -= monthDays[gm]
		gm++
	}
	return gy, time.Month(gm + 1), gd
}
