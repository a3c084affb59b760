package application

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-playground/validator/v10"

	"kennel/internal/domain"
)

var validate = validator.New()

// ValidateRequired checks if a string field is non-empty (after trimming whitespace).
// Returns a ValidationError if the field is empty.
func ValidateRequired(fieldName, value string) error {
	if strings.TrimSpace(value) == "" {
		return &ValidationError{
			Field:   fieldName,
			Message: fmt.Sprintf("%s is required", formatFieldName(fieldName)),
		}
	}
	return nil
}

// formatFieldName converts snake_case and camelCase field names to words
// for more readable error messages (e.g., "ownerID" -> "owner ID")
func formatFieldName(fieldName string) string {
	replacements := map[string]string{
		"ownerID":  "owner ID",
		"petID":    "pet ID",
		"columnID": "column ID",
		"check_in": "check-in",
		"pageSize": "page size",
	}
	if formatted, ok := replacements[fieldName]; ok {
		return formatted
	}
	return strings.ReplaceAll(fieldName, "_", " ")
}

// ValidateStatus checks that status is one of allowed
func ValidateStatus(fieldName, status string, allowed ...string) error {
	if slices.Contains(allowed, status) {
		return nil
	}
	return &ValidationError{
		Field:   fieldName,
		Message: fmt.Sprintf("must be one of %s, got %q", strings.Join(allowed, ", "), status),
	}
}

// ValidateEmail checks an optional email address
func ValidateEmail(fieldName, value string) error {
	if err := validate.Var(value, "omitempty,email"); err != nil {
		return &ValidationError{Field: fieldName, Message: fmt.Sprintf("invalid email %q", value)}
	}
	return nil
}

// ValidatePage checks pagination arguments coming from user input
func ValidatePage(page, pageSize int) error {
	if page < 1 {
		return fmt.Errorf("%w: page must be at least 1, got %d", ErrInvalidPage, page)
	}
	return ValidatePageSize(pageSize)
}

// ValidatePageSize checks a page size coming from user input
func ValidatePageSize(pageSize int) error {
	if pageSize < 1 {
		return fmt.Errorf("%w: page size must be positive, got %d", ErrInvalidPage, pageSize)
	}
	return nil
}

// ValidateColumn checks that columnID is a column of kind
func ValidateColumn(kind domain.EntityKind, columnID string) error {
	for _, col := range kind.Columns() {
		if col.ID == columnID {
			return nil
		}
	}
	return &ColumnError{Kind: kind.String(), ColumnID: columnID}
}
