package helpers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ValidationErrorResponse represents the validation error response format
type ValidationErrorResponse struct {
	Message string            `json:"message"`
	Errors  map[string]string `json:"errors"`
}

// LocaleTranslations holds error message translations for different locales
type LocaleTranslations struct {
	Required   string
	Min        string
	Max        string
	JalaliDate string
	Invalid    string
}

// translations holds locale-specific translations
var translations = map[string]LocaleTranslations{
	"en": {
		Required:   "The %s field is required",
		Min:        "The %s field must be at least %s",
		Max:        "The %s field must not exceed %s",
		JalaliDate: "The %s field must be a valid Jalali date (Y/m/d)",
		Invalid:    "The %s field is invalid",
	},
	"fa": {
		Required:   "فیلد %s الزامی است",
		Min:        "فیلد %s باید حداقل %s باشد",
		Max:        "فیلد %s نباید بیشتر از %s باشد",
		JalaliDate: "فیلد %s باید یک تاریخ شمسی معتبر باشد",
		Invalid:    "فیلد %s نامعتبر است",
	},
}

// GetDefaultLocale returns the default locale
func GetDefaultLocale() string {
	return "en"
}

// GetLocaleTranslations returns translations for a given locale, or default locale if not found
func GetLocaleTranslations(locale string) LocaleTranslations {
	if t, ok := translations[locale]; ok {
		return t
	}
	return translations[GetDefaultLocale()]
}

// FormatValidationError formats a validator.FieldError into a localized error message
func FormatValidationError(fe validator.FieldError, locale string) string {
	t := GetLocaleTranslations(locale)
	fieldName := getFieldName(fe)

	switch fe.Tag() {
	case "required":
		return fmt.Sprintf(t.Required, fieldName)
	case "min":
		return fmt.Sprintf(t.Min, fieldName, fe.Param())
	case "max":
		return fmt.Sprintf(t.Max, fieldName, fe.Param())
	case "jalali_date":
		return fmt.Sprintf(t.JalaliDate, fieldName)
	default:
		return fmt.Sprintf(t.Invalid, fieldName)
	}
}

// getFieldName extracts a human-readable field name from the FieldError
func getFieldName(fe validator.FieldError) string {
	fieldName := fe.Field()

	fieldName = strings.ToLower(fieldName)
	fieldName = strings.ReplaceAll(fieldName, "_", " ")

	return fieldName
}

// WriteValidationErrorResponse writes a validation error response in the specified format
// It accepts validator.ValidationErrors and formats them according to the locale
func WriteValidationErrorResponse(w http.ResponseWriter, validationErrors validator.ValidationErrors, locale string) {
	errors := make(map[string]string)
	var firstMessage string

	for i, err := range validationErrors {
		fieldName := getFieldName(err)
		errorMessage := FormatValidationError(err, locale)

		errors[fieldName] = errorMessage

		// First error message becomes the main message
		if i == 0 {
			firstMessage = errorMessage
		}
	}

	response := ValidationErrorResponse{
		Message: firstMessage,
		Errors:  errors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}

// WriteValidationErrorResponseFromMap writes a validation error response from a map of field errors
// This is useful for validation failures that do not come from the struct validator
func WriteValidationErrorResponseFromMap(w http.ResponseWriter, fieldErrors map[string]string, locale string) {
	var firstMessage string
	for _, msg := range fieldErrors {
		firstMessage = msg
		break
	}
	if firstMessage == "" {
		t := GetLocaleTranslations(locale)
		firstMessage = fmt.Sprintf(t.Invalid, "request")
	}

	response := ValidationErrorResponse{
		Message: firstMessage,
		Errors:  fieldErrors,
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusUnprocessableEntity)
	json.NewEncoder(w).Encode(response)
}
