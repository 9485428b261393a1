// Package validation holds the form validation rules shared by the auth and
// checkout handlers.
package validation

import (
	"fmt"
	"regexp"
	"strings"
)

const PasswordMinLength = 8

var (
	// Peruvian mobile numbers: optional +51 prefix, nine digits starting
	// with 9. Spaces are stripped before matching.
	phoneRegex = regexp.MustCompile(`^(\+51)?[9]\d{8}$`)
	emailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

	upperRegex = regexp.MustCompile(`[A-Z]`)
	lowerRegex = regexp.MustCompile(`[a-z]`)
	digitRegex = regexp.MustCompile(`[0-9]`)
)

func ValidEmail(email string) bool {
	return emailRegex.MatchString(strings.TrimSpace(email))
}

// ValidPhone accepts +51999888777, 999888777 and spaced variants.
func ValidPhone(phone string) bool {
	clean := strings.ReplaceAll(phone, " ", "")
	return phoneRegex.MatchString(clean)
}

// ValidatePassword returns the list of unmet password rules, empty when the
// password is acceptable.
func ValidatePassword(password string) []string {
	var errs []string
	if len(password) < PasswordMinLength {
		errs = append(errs, fmt.Sprintf("Mínimo %d caracteres", PasswordMinLength))
	}
	if !upperRegex.MatchString(password) {
		errs = append(errs, "Al menos una letra mayúscula")
	}
	if !lowerRegex.MatchString(password) {
		errs = append(errs, "Al menos una letra minúscula")
	}
	if !digitRegex.MatchString(password) {
		errs = append(errs, "Al menos un número")
	}
	return errs
}

// FormatPhone renders a nine digit number as +51 999 888 777.
func FormatPhone(phone string) string {
	clean := strings.ReplaceAll(phone, " ", "")
	clean = strings.TrimPrefix(clean, "+51")
	if len(clean) == 9 {
		return fmt.Sprintf("+51 %s %s %s", clean[:3], clean[3:6], clean[6:])
	}
	return phone
}
