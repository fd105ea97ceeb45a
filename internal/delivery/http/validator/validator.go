// Package validator adapts go-playground/validator to echo's Validator
// interface so handlers can call c.Validate on bound request structs.
package validator

import (
	domainerrors "scanbox/internal/domain/errors"

	"github.com/go-playground/validator/v10"
)

type echoValidator struct {
	validate *validator.Validate
}

// New builds the request validator mounted on the echo server.
func New() *echoValidator {
	return &echoValidator{validate: validator.New()}
}

// Validate checks struct tags and converts failures into the 400 taxonomy
// error so the central error handler produces the JSON envelope.
func (v *echoValidator) Validate(i any) error {
	if err := v.validate.Struct(i); err != nil {
		return domainerrors.ErrValidationFailed.WithDetails(err.Error())
	}

	return nil
}
