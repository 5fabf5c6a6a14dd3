package services

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"

	"ppalog/internal/core/domain"
)

// newValidator builds the shared struct validator. Tag-based rules
// cover the static constraints; value-dependent rules (hours range,
// join-code format) are checked by hand next to their callers.
func newValidator() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
}

// checkStruct runs tag validation and converts failures into the
// client-side validation error shape, keyed by struct field name.
func checkStruct(v *validator.Validate, s any) error {
	err := v.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	fields := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		fields[fe.Field()] = append(fields[fe.Field()], validationMessage(fe))
	}
	return &domain.ValidationError{Fields: fields}
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "min":
		return fmt.Sprintf("must be at least %s characters long", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}
