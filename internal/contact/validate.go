package contact

import (
	"regexp"
	"strings"
	"unicode/utf8"
)

// Field limits for the contact form. The same bounds are enforced by the
// interactive form and re-checked at the trust boundary.
const (
	maxNameLen    = 60
	maxContactLen = 120
	minMessageLen = 10
	maxMessageLen = 5000

	minPhoneDigits = 10
	maxPhoneDigits = 15
)

// FormValues holds the raw contact form fields as submitted.
type FormValues struct {
	Name           string
	Contact        string // email or phone
	Message        string
	TurnstileToken string
}

// FormErrors maps each form field to a human-readable error message.
// An empty string means the field is acceptable.
type FormErrors struct {
	Name      string
	Contact   string
	Message   string
	Turnstile string
}

// HasErrors reports whether any field failed validation.
func (e FormErrors) HasErrors() bool {
	return e.Name != "" || e.Contact != "" || e.Message != "" || e.Turnstile != ""
}

var emailShape = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// IsEmailShaped reports whether s looks like an email address:
// one @, no whitespace, at least one dot after the @.
func IsEmailShaped(s string) bool {
	return emailShape.MatchString(strings.TrimSpace(s))
}

// isPhoneShaped reports whether s carries a plausible phone number once
// formatting characters are ignored.
func isPhoneShaped(s string) bool {
	digits := 0
	for _, r := range s {
		if r >= '0' && r <= '9' {
			digits++
		}
	}
	return digits >= minPhoneDigits && digits <= maxPhoneDigits
}

// Validate checks the contact form fields and returns per-field errors.
// It is pure and deterministic: every field is always evaluated so the
// caller sees all violations at once. Within the contact slot the length
// check runs after the shape check and overwrites it when both fire.
func Validate(v FormValues) FormErrors {
	var errs FormErrors

	name := strings.TrimSpace(v.Name)
	contact := strings.TrimSpace(v.Contact)
	message := strings.TrimSpace(v.Message)

	if utf8.RuneCountInString(name) < 1 {
		errs.Name = "Name is too short"
	}
	if utf8.RuneCountInString(name) > maxNameLen {
		errs.Name = "Name is too long"
	}

	if contact == "" {
		errs.Contact = "Contact is required"
	} else {
		if !IsEmailShaped(contact) && !isPhoneShaped(contact) {
			errs.Contact = "Enter a valid email or phone number"
		}
		if utf8.RuneCountInString(contact) > maxContactLen {
			errs.Contact = "Contact is too long"
		}
	}

	if utf8.RuneCountInString(message) < minMessageLen {
		errs.Message = "Message is too short"
	}
	if utf8.RuneCountInString(message) > maxMessageLen {
		errs.Message = "Message is too long"
	}

	if v.TurnstileToken == "" {
		errs.Turnstile = "Complete the captcha"
	}

	return errs
}
