package helpers

import (
	"testing"

	"github.com/go-playground/validator/v10"
)

type dateForm struct {
	Date string `validate:"required,jalali_date"`
}

func TestValidateJalaliDate(t *testing.T) {
	cv := NewCustomValidator()

	valid := []string{
		"1402/05/15",
		"1402-05-15",
		"1403/12/30",
		"۱۴۰۲/۰۵/۱۵",
		" 1402/5/1 ",
	}
	for _, s := range valid {
		if err := cv.Validate(dateForm{Date: s}); err != nil {
			t.Errorf("Validate(%q): expected nil, got %v", s, err)
		}
	}

	invalid := []string{
		"1402/13/01",
		"1402/12/30",
		"999/01/01",
		"1402/05",
		"1402|05|15",
		"hello",
		"2023-08-06 12:00:00",
	}
	for _, s := range invalid {
		if err := cv.Validate(dateForm{Date: s}); err == nil {
			t.Errorf("Validate(%q): expected error, got nil", s)
		}
	}
}

func TestValidateRequired(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(dateForm{})
	if err == nil {
		t.Fatal("Validate empty form: expected error, got nil")
	}

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		t.Fatalf("expected validator.ValidationErrors, got %T", err)
	}
	if len(validationErrors) != 1 {
		t.Errorf("expected 1 validation error, got %d", len(validationErrors))
	}
	if validationErrors[0].Tag() != "required" {
		t.Errorf("expected required tag, got %s", validationErrors[0].Tag())
	}
}

func TestFormatValidationError(t *testing.T) {
	cv := NewCustomValidator()

	err := cv.Validate(dateForm{Date: "not a date"})
	if err == nil {
		t.Fatal("expected validation error, got nil")
	}

	validationErrors := err.(validator.ValidationErrors)
	en := FormatValidationError(validationErrors[0], "en")
	if en != "The date field must be a valid Jalali date (Y/m/d)" {
		t.Errorf("unexpected en message: %q", en)
	}

	fa := FormatValidationError(validationErrors[0], "fa")
	if fa == "" || fa == en {
		t.Errorf("expected fa translation, got %q", fa)
	}

	// Unknown locales fall back to the default.
	def := FormatValidationError(validationErrors[0], "de")
	if def != en {
		t.Errorf("expected default locale fallback, got %q", def)
	}
}
