package validation

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// emailPattern accepts the usual local@domain.tld shape: no whitespace or
// extra "@" in either part, and a TLD of at least two letters.
var emailPattern = regexp.MustCompile(`(?i)^[^\s@]+@[^\s@]+\.[a-z]{2,}$`)

const (
	nameMinLen    = 2
	nameMaxLen    = 100
	messageMinLen = 10
)

// ValidateContactInput checks a contact form submission and returns every
// violated rule, not just the first. An empty slice means the input is valid.
// Lengths are measured in characters, after trimming surrounding whitespace.
func ValidateContactInput(name, email, message string) []string {
	var errors []string

	name = strings.TrimSpace(name)
	if nameLen := utf8.RuneCountInString(name); nameLen == 0 {
		errors = append(errors, "Name is required")
	} else if nameLen < nameMinLen || nameLen > nameMaxLen {
		errors = append(errors, "Name must be between 2 and 100 characters")
	}

	email = strings.TrimSpace(email)
	if email == "" {
		errors = append(errors, "Email is required")
	} else if !emailPattern.MatchString(email) {
		errors = append(errors, "Please enter a valid email address")
	}

	message = strings.TrimSpace(message)
	if messageLen := utf8.RuneCountInString(message); messageLen == 0 {
		errors = append(errors, "Message is required")
	} else if messageLen < messageMinLen {
		errors = append(errors, "Message must be at least 10 characters long")
	}

	return errors
}
