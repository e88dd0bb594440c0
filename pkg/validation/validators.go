package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Regex patterns
var (
	// one "@", a dot somewhere in the domain part, no whitespace anywhere
	contactEmailRegex = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

// RegisterValidators registers custom validators to the validator instance
func RegisterValidators(v *validator.Validate) {
	_ = v.RegisterValidation("contact_email", ContactEmail)
	_ = v.RegisterValidation("notblank", NotBlank)
}

// IsContactEmail reports whether s has the local@domain.tld shape accepted by the contact form.
func IsContactEmail(s string) bool {
	return contactEmailRegex.MatchString(s)
}

// ContactEmail validates the trimmed field against the contact email shape
func ContactEmail(fl validator.FieldLevel) bool {
	val := strings.TrimSpace(fl.Field().String())
	if val == "" {
		return true // Optional, use required/notblank if needed
	}
	return IsContactEmail(val)
}

// NotBlank rejects strings that are empty after trimming whitespace
func NotBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
