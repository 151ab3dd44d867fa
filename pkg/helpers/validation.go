package helpers

import (
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"

	"metargb/datepicker-service/pkg/jalali"
)

// jalaliDatePattern matches Y/m/d or Y-m-d with a four digit year.
var jalaliDatePattern = regexp.MustCompile(`^(\d{4})[/-](\d{1,2})[/-](\d{1,2})$`)

// CustomValidator wraps go-playground validator with the custom date
// rules used by this service's request types.
type CustomValidator struct {
	validate *validator.Validate
}

// NewCustomValidator creates a new custom validator
func NewCustomValidator() *CustomValidator {
	v := validator.New()

	v.RegisterValidation("jalali_date", validateJalaliDate)

	return &CustomValidator{validate: v}
}

// Validate validates a struct
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validate.Struct(i)
}

// validateJalaliDate accepts a Jalali date written as Y/m/d or Y-m-d,
// in Latin or Persian digits, that denotes a real calendar day.
func validateJalaliDate(fl validator.FieldLevel) bool {
	text := NormalizePersianNumbers(strings.TrimSpace(fl.Field().String()))
	m := jalaliDatePattern.FindStringSubmatch(text)
	if m == nil {
		return false
	}

	year, _ := strconv.Atoi(m[1])
	month, _ := strconv.Atoi(m[2])
	day, _ := strconv.Atoi(m[3])

	return jalali.New(year, month, day).IsValid()
}
