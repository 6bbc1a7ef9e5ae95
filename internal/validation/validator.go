// Package validation provides input validation for catalog examples and API
// requests.
//
// The central entry point is ValidateExample, which lints a single example
// record: required fields, slug format, known difficulty, and well-formed
// template placeholders. Results carry field-level errors and warnings and
// convert to the shared AppError format for CLI and HTTP display.
package validation

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/promptdeck/promptdeck/internal/errors"
	"github.com/promptdeck/promptdeck/internal/models"
)

var (
	slugPattern = regexp.MustCompile(`^[a-z0-9]+(-[a-z0-9]+)*$`)

	// An opening brace starts a placeholder only when a word-character run and
	// a closing brace follow. Anything else is reported as malformed.
	placeholderPattern = regexp.MustCompile(`\{(\w*)\}?`)
)

// ValidationResult represents the result of validating one example
type ValidationResult struct {
	Valid    bool                `json:"valid"`
	Errors   []ValidationError   `json:"errors,omitempty"`
	Warnings []ValidationWarning `json:"warnings,omitempty"`
}

// ValidationError represents a field validation error
type ValidationError struct {
	Field   string `json:"field"`
	Code    string `json:"code"`
	Message string `json:"message"`
}

// ValidationWarning represents a field validation warning
type ValidationWarning struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// addError records a field error and marks the result invalid
func (r *ValidationResult) addError(field, code, message string) {
	r.Valid = false
	r.Errors = append(r.Errors, ValidationError{Field: field, Code: code, Message: message})
}

// addWarning records a field warning without affecting validity
func (r *ValidationResult) addWarning(field, message string) {
	r.Warnings = append(r.Warnings, ValidationWarning{Field: field, Message: message})
}

// ToAppError converts a failed validation into an AppError
func (r *ValidationResult) ToAppError() *errors.AppError {
	if r.Valid {
		return nil
	}

	var messages []string
	for _, e := range r.Errors {
		messages = append(messages, fmt.Sprintf("%s: %s", e.Field, e.Message))
	}

	return errors.ValidationError("Validation failed").WithDetails(strings.Join(messages, "; "))
}

// ValidateExample lints a catalog example record
func ValidateExample(example *models.Example) *ValidationResult {
	result := &ValidationResult{Valid: true}

	if example.Slug == "" {
		result.addError("slug", "MISSING_FIELD", "slug is required")
	} else if !slugPattern.MatchString(example.Slug) {
		result.addError("slug", "INVALID_FORMAT", "slug must be lowercase letters, digits, and hyphens")
	}

	if example.Name == "" {
		result.addError("title", "MISSING_FIELD", "title is required")
	}

	if example.Template == "" {
		result.addError("template", "MISSING_FIELD", "template is required")
	} else {
		checkPlaceholders(example.Template, result)
	}

	if example.Difficulty != "" && !isKnownDifficulty(example.Difficulty) {
		result.addError("difficulty", "INVALID_FORMAT",
			fmt.Sprintf("unknown difficulty %q (expected one of %s)",
				example.Difficulty, strings.Join(models.Difficulties, ", ")))
	}

	if example.Summary == "" {
		result.addWarning("description", "description is empty; the catalog listing will look bare")
	}

	for i, item := range example.Checklist {
		if strings.TrimSpace(item) == "" {
			result.addError("checklist", "INVALID_INPUT", fmt.Sprintf("checklist entry %d is empty", i+1))
		}
	}
	for i, item := range example.Pitfalls {
		if strings.TrimSpace(item) == "" {
			result.addError("pitfalls", "INVALID_INPUT", fmt.Sprintf("pitfalls entry %d is empty", i+1))
		}
	}

	return result
}

// checkPlaceholders warns about brace sequences that look like placeholders
// but will not be matched by the extractor
func checkPlaceholders(template string, result *ValidationResult) {
	for _, match := range placeholderPattern.FindAllString(template, -1) {
		switch {
		case match == "{}":
			result.addWarning("template", "empty placeholder {} is treated as literal text")
		case !strings.HasSuffix(match, "}"):
			result.addWarning("template", fmt.Sprintf("unclosed placeholder %q is treated as literal text", match))
		}
	}
}

// ValidateSlug checks a user-supplied slug before it is used in a file path
func ValidateSlug(slug string) error {
	if slug == "" {
		return errors.NewAppError(errors.ErrCodeMissingField, "slug is required")
	}
	if !slugPattern.MatchString(slug) {
		return errors.NewAppError(errors.ErrCodeInvalidFormat,
			fmt.Sprintf("invalid slug %q: use lowercase letters, digits, and hyphens", slug))
	}
	return nil
}

// SanitizeString removes control characters and trims whitespace from input
func SanitizeString(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r == '\n' || r == '\t' || r >= 32 {
			b.WriteRune(r)
		}
	}
	return strings.TrimSpace(b.String())
}

func isKnownDifficulty(difficulty string) bool {
	for _, d := range models.Difficulties {
		if d == difficulty {
			return true
		}
	}
	return false
}
