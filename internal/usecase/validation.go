package usecase

import (
	"fmt"
	"net/mail"
	"net/url"
	"strings"
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

func ValidateCaptureLeadInput(input CaptureLeadInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if input.PageURL != "" && !isValidPageURL(input.PageURL) {
		errors = append(errors, ValidationError{"pageUrl", "must be a valid http(s) URL"})
	}

	return errors
}

func ValidateCreateQuoteInput(input CreateQuoteInput) []ValidationError {
	var errors []ValidationError

	if strings.TrimSpace(input.Email) == "" {
		errors = append(errors, ValidationError{"email", "is required"})
	} else if _, err := mail.ParseAddress(input.Email); err != nil {
		errors = append(errors, ValidationError{"email", "is invalid"})
	}

	if strings.TrimSpace(input.ToolName) == "" {
		errors = append(errors, ValidationError{"toolName", "is required"})
	}

	return errors
}

func isValidPageURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

func joinValidationErrors(errs []ValidationError) string {
	parts := make([]string, len(errs))
	for i, e := range errs {
		parts[i] = e.Error()
	}
	return "validation failed: " + strings.Join(parts, ", ")
}
