package models

import "metargb/datepicker-service/pkg/jalali"

// ParseRequest asks for a free-form date text to be interpreted.
type ParseRequest struct {
	Text string `json:"text"`
}

// ToGregorianRequest converts an explicit Jalali triple.
type ToGregorianRequest struct {
	Year  int `json:"year" validate:"required,min=1000,max=1500"`
	Month int `json:"month" validate:"required,min=1,max=12"`
	Day   int `json:"day" validate:"required,min=1,max=31"`
}

// ToJalaliRequest converts a Gregorian date in any accepted format.
type ToJalaliRequest struct {
	Date string `json:"date" validate:"required"`
}

// FormatRequest renders a Jalali date string.
type FormatRequest struct {
	Jalali        string `json:"jalali" validate:"required,jalali_date"`
	WithMonthName bool   `json:"with_month_name"`
}

// DateInfo carries one day in both calendars with its rendered forms.
// Weekday is Saturday-based: 0=Saturday .. 6=Friday.
type DateInfo struct {
	Gregorian     string      `json:"gregorian"`
	GregorianISO  string      `json:"gregorian_iso"`
	Jalali        jalali.Date `json:"jalali"`
	JalaliText    string      `json:"jalali_text"`
	JalaliLong    string      `json:"jalali_long"`
	JalaliLongFa  string      `json:"jalali_long_fa"`
	Weekday       int         `json:"weekday"`
	WeekdayName   string      `json:"weekday_name"`
	WeekdayNameFa string      `json:"weekday_name_fa"`
}

// ParseResponse reports the outcome of interpreting a date text.
// Unparseable input is a valid response, not an error.
type ParseResponse struct {
	Valid  bool      `json:"valid"`
	Source string    `json:"source,omitempty"` // jalali or gregorian
	Date   *DateInfo `json:"date,omitempty"`
}

// FormatResponse carries the requested rendering next to the full
// date payload.
type FormatResponse struct {
	Formatted string   `json:"formatted"`
	Date      DateInfo `json:"date"`
}

// TodayResponse is the current day in the configured timezone.
type TodayResponse struct {
	DateInfo
	Timezone string `json:"timezone"`
	UnixTime int64  `json:"unix_time"`
}

// MonthRef points at a month for grid navigation.
type MonthRef struct {
	Year  int `json:"year"`
	Month int `json:"month"`
}

// MonthGrid is the month matrix a picker renders: Saturday-first weeks
// with 0 marking blank cells.
type MonthGrid struct {
	Year         int      `json:"year"`
	Month        int      `json:"month"`
	MonthName    string   `json:"month_name"`
	MonthNameFa  string   `json:"month_name_fa"`
	DaysInMonth  int      `json:"days_in_month"`
	FirstWeekday int      `json:"first_weekday"`
	Weeks        [][7]int `json:"weeks"`
	Today        int      `json:"today,omitempty"`
	Previous     MonthRef `json:"previous"`
	Next         MonthRef `json:"next"`
}

// HealthResponse is the liveness payload.
type HealthResponse struct {
	Status  string `json:"status"`
	Service string `json:"service"`
	Uptime  string `json:"uptime"`
}
