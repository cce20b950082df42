package usecase

import (
	"fmt"
	"net/mail"
	"regexp"
	"strings"

	"github.com/xavierca1/ligue-leads/internal/entity"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors aggregates every violated field of a request so the
// caller can surface them all at once.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msg := "validation failed: "
	for i, v := range e {
		if i > 0 {
			msg += ", "
		}
		msg += v.Field + " (" + v.Message + ")"
	}
	return msg
}

var (
	phoneFormatting = regexp.MustCompile(`[\s\-\+\(\)]`)
	digitsOnly      = regexp.MustCompile(`^\d+$`)
)

// NormalizePhone strips the formatting characters callers commonly type
// (dashes, plus signs, parentheses, whitespace). Everything else stays and
// is caught by validation.
func NormalizePhone(phone string) string {
	return phoneFormatting.ReplaceAllString(phone, "")
}

// NormalizeEmail lowers the address to its canonical form before the
// uniqueness check.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ValidateCreateLeadInput checks a full candidate record. Violations are
// reported in field-declaration order: name, email, phone, status, notes.
func ValidateCreateLeadInput(input CreateLeadInput) ValidationErrors {
	var errs ValidationErrors

	errs = append(errs, validateName(input.Name)...)
	errs = append(errs, validateEmail(input.Email)...)

	phone := NormalizePhone(input.Phone)
	if phone == "" {
		errs = append(errs, ValidationError{"phone", "Phone number is required"})
	} else {
		errs = append(errs, validatePhone(phone)...)
	}

	if input.Status != "" && !entity.ValidStatus(input.Status) {
		errs = append(errs, ValidationError{"status", "Status must be one of new, contacted, qualified or lost"})
	}

	errs = append(errs, validateNotes(input.Notes)...)

	return errs
}

// ValidateUpdateLeadInput checks only the fields present in a partial
// update. Present fields follow the same rules as on create.
func ValidateUpdateLeadInput(input UpdateLeadInput) ValidationErrors {
	var errs ValidationErrors

	if input.Name != nil {
		errs = append(errs, validateName(*input.Name)...)
	}

	if input.Email != nil {
		errs = append(errs, validateEmail(*input.Email)...)
	}

	if input.Phone != nil {
		phone := NormalizePhone(*input.Phone)
		if phone == "" {
			errs = append(errs, ValidationError{"phone", "Phone number is required"})
		} else {
			errs = append(errs, validatePhone(phone)...)
		}
	}

	if input.Status != nil && !entity.ValidStatus(*input.Status) {
		errs = append(errs, ValidationError{"status", "Status must be one of new, contacted, qualified or lost"})
	}

	if input.Notes != nil {
		errs = append(errs, validateNotes(*input.Notes)...)
	}

	return errs
}

func validateName(name string) ValidationErrors {
	trimmed := strings.TrimSpace(name)
	if trimmed == "" {
		return ValidationErrors{{"name", "Name is required"}}
	}
	if len(trimmed) > 100 {
		return ValidationErrors{{"name", "Name cannot be more than 100 characters"}}
	}
	return nil
}

func validateEmail(email string) ValidationErrors {
	trimmed := strings.TrimSpace(email)
	if trimmed == "" {
		return ValidationErrors{{"email", "Email is required"}}
	}
	if _, err := mail.ParseAddress(trimmed); err != nil {
		return ValidationErrors{{"email", "Please enter a valid email address"}}
	}
	return nil
}

// The three phone checks run independently, not short-circuited, so a
// value that is both short and non-numeric reports both violations.
func validatePhone(phone string) ValidationErrors {
	var errs ValidationErrors
	if len(phone) < 10 {
		errs = append(errs, ValidationError{"phone", "Phone number must be at least 10 digits"})
	}
	if len(phone) > 10 {
		errs = append(errs, ValidationError{"phone", "Maximum 10 digits allowed"})
	}
	if !digitsOnly.MatchString(phone) {
		errs = append(errs, ValidationError{"phone", "Only numbers are allowed"})
	}
	return errs
}

func validateNotes(notes string) ValidationErrors {
	if len(notes) > 500 {
		return ValidationErrors{{"notes", "Notes cannot be more than 500 characters"}}
	}
	return nil
}
