package helpers

import (
	"strconv"
	"strings"
)

// Digit mapping between Persian (۰-۹), Arabic-Indic (٠-٩) and Latin forms.
var persianToLatin = map[rune]rune{
	'۰': '0', '۱': '1', '۲': '2', '۳': '3', '۴': '4',
	'۵': '5', '۶': '6', '۷': '7', '۸': '8', '۹': '9',
	'٠': '0', '١': '1', '٢': '2', '٣': '3', '٤': '4',
	'٥': '5', '٦': '6', '٧': '7', '٨': '8', '٩': '9',
}

var latinToPersian = [10]rune{'۰', '۱', '۲', '۳', '۴', '۵', '۶', '۷', '۸', '۹'}

// NormalizePersianNumbers converts Persian/Arabic numerals to Latin.
// Other characters pass through unchanged.
func NormalizePersianNumbers(input string) string {
	var result strings.Builder
	result.Grow(len(input))
	for _, char := range input {
		if latinDigit, found := persianToLatin[char]; found {
			result.WriteRune(latinDigit)
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// PersianDigits converts Latin digits to Persian numerals for fa-facing
// output. Other characters pass through unchanged.
func PersianDigits(input string) string {
	var result strings.Builder
	result.Grow(len(input) * 2)
	for _, char := range input {
		if char >= '0' && char <= '9' {
			result.WriteRune(latinToPersian[char-'0'])
		} else {
			result.WriteRune(char)
		}
	}
	return result.String()
}

// ParseInt parses a string to int64 after normalizing Persian numbers
func ParseInt(s string) (int64, error) {
	normalized := NormalizePersianNumbers(s)
	return strconv.ParseInt(normalized, 10, 64)
}
