package config

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator and renders its errors as one
// readable message per failed field.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a validator for the config structs' validate tags
func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

// Validate checks a struct against its validation tags
func (v *Validator) Validate(i interface{}) error {
	if err := v.validate.Struct(i); err != nil {
		return v.formatValidationError(err)
	}
	return nil
}

func (v *Validator) formatValidationError(err error) error {
	validationErrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return err
	}

	messages := make([]string, 0, len(validationErrs))
	for _, e := range validationErrs {
		messages = append(messages, fmt.Sprintf(
			"field '%s' failed validation: %s (value: '%v')",
			e.Field(), e.Tag(), e.Value(),
		))
	}
	return fmt.Errorf("validation failed:\n  %s", strings.Join(messages, "\n  "))
}

// ValidateConfig validates the entire loaded configuration
func ValidateConfig(cfg *Config) error {
	return NewValidator().Validate(cfg)
}
