// Package validator bridges go-playground/validator into echo's Validator interface.
package validator

import (
	domainerrors "hbnb/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator wraps a validator instance for echo.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates the echo validator.
func New() *CustomValidator {
	return &CustomValidator{validate: validator.New(validator.WithRequiredStructEnabled())}
}

// Validate checks struct tags and converts failures into the application
// error taxonomy so the error handler renders a 400.
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
