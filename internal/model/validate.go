package model

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// ValidateStruct runs the shared validator against a table record. Callers
// wrap the returned error with the record's table position.
func ValidateStruct(s any) error {
	return validate.Struct(s)
}
