package utils

import "github.com/go-playground/validator/v10"

// CustomValidator adapts validator/v10 to echo's Validator interface.
type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
