// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	domainerrors "scubakeep/internal/domain/errors"

	playground "github.com/go-playground/validator/v10"
)

// echoValidator wraps a validator instance for use as echo.Echo.Validator.
type echoValidator struct {
	validate *playground.Validate
}

// New creates the request validator. Struct rules live in the usecase input
// DTOs as `validate` tags.
func New() *echoValidator {
	return &echoValidator{
		validate: playground.New(playground.WithRequiredStructEnabled()),
	}
}

// Validate implements echo.Validator. Failures surface as the domain's
// validation error so the error middleware renders a 400 with details.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
