package service

import (
	"fmt"
	"strconv"
	"strings"

	"go-stockroom/internal/apperr"
	"go-stockroom/pkg/validator"

	"github.com/shopspring/decimal"
)

// validateRequest applies a request struct's declared schema (validate tags)
// and converts failures into the handler-facing error taxonomy.
func validateRequest(req interface{}) error {
	errs := validator.ValidateStruct(req)
	if len(errs) == 0 {
		return nil
	}
	ve := &apperr.ValidationError{}
	for _, e := range errs {
		ve.Add(e.FailedField, reasonForTag(e))
	}
	return ve
}

func reasonForTag(e *validator.ErrorResponse) string {
	switch e.Tag {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "oneof":
		return "must be one of: " + strings.ReplaceAll(e.Value, " ", ", ")
	default:
		return "is invalid (" + e.Tag + ")"
	}
}

// Form fields arrive as strings. Numeric parsing is explicit so a malformed
// value is rejected per field instead of being coerced to zero.

func parseDecimalField(field, raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return decimal.Zero, apperr.NewValidation(field, "is required")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, apperr.NewValidation(field, "must be a number")
	}
	if d.IsNegative() {
		return decimal.Zero, apperr.NewValidation(field, "must not be negative")
	}
	return d, nil
}

// parseIntField treats an empty optional field as zero; anything else must be
// a whole number.
func parseIntField(field, raw string) (int, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, apperr.NewValidation(field, "must be a whole number")
	}
	return n, nil
}

func parseIDField(field, raw string) (uint, error) {
	s := strings.TrimSpace(raw)
	if s == "" {
		return 0, apperr.NewValidation(field, "is required")
	}
	n, err := strconv.ParseUint(s, 10, 32)
	if err != nil || n == 0 {
		return 0, apperr.NewValidation(field, fmt.Sprintf("%q is not a valid id", raw))
	}
	return uint(n), nil
}
