package helpers

import "testing"

func TestNormalizePersianNumbers(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"persian digits", "۱۴۰۲/۰۵/۱۵", "1402/05/15"},
		{"arabic digits", "١٤٠٢-٠٥-١٥", "1402-05-15"},
		{"mixed digits", "۱402/0۵/15", "1402/05/15"},
		{"latin passthrough", "1402/05/15", "1402/05/15"},
		{"text preserved", "سال ۱۴۰۳", "سال 1403"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NormalizePersianNumbers(tt.input); got != tt.want {
				t.Errorf("NormalizePersianNumbers(%q): expected %q, got %q", tt.input, tt.want, got)
			}
		})
	}
}

func TestPersianDigits(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"date", "1402/05/15", "۱۴۰۲/۰۵/۱۵"},
		{"no digits", "Mordad", "Mordad"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := PersianDigits(tt.input); got != tt.want {
				t.Errorf("PersianDigits(%q): expected %q, got %q", tt.input, tt.want, got)
			}
		})
	}
}

func TestParseInt(t *testing.T) {
	got, err := ParseInt("۱۴۰۲")
	if err != nil {
		t.Fatalf("ParseInt persian digits: unexpected error %v", err)
	}
	if got != 1402 {
		t.Errorf("ParseInt persian digits: expected 1402, got %d", got)
	}

	got, err = ParseInt("12")
	if err != nil {
		t.Fatalf("ParseInt latin digits: unexpected error %v", err)
	}
	if got != 12 {
		t.Errorf("ParseInt latin digits: expected 12, got %d", got)
	}

	if _, err := ParseInt("abc"); err == nil {
		t.Error("ParseInt non-numeric: expected error, got nil")
	}
}
