package utils

import (
	"regexp"
	"time"
)

// Server-side copies of the client form predicates. The client runs the
// same checks before submitting, but a client bypassing the forms must not
// be able to store unvalidated data.

var (
	upperRe = regexp.MustCompile(`[A-Z]`)
	lowerRe = regexp.MustCompile(`[a-z]`)
	digitRe = regexp.MustCompile(`\d`)
	nameRe  = regexp.MustCompile(`^[A-Za-z][A-Za-z \-]+$`)
	phoneRe = regexp.MustCompile(`^[0-9 ()\-]+$`)
)

// ValidatePassword requires at least 8 characters with an upper-case
// letter, a lower-case letter and a digit.
func ValidatePassword(password string) bool {
	if len(password) < 8 {
		return false
	}
	return upperRe.MatchString(password) &&
		lowerRe.MatchString(password) &&
		digitRe.MatchString(password)
}

// ValidateName accepts letters, spaces and hyphens, two characters minimum.
func ValidateName(name string) bool {
	return len(name) >= 2 && nameRe.MatchString(name)
}

// ValidatePhone accepts digits, spaces, parentheses and hyphens, with at
// least five digits overall.
func ValidatePhone(phone string) bool {
	if !phoneRe.MatchString(phone) {
		return false
	}
	return len(digitRe.FindAllString(phone, -1)) >= 5
}

// ValidateDate accepts ISO-8601 calendar dates (YYYY-MM-DD).
func ValidateDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}
