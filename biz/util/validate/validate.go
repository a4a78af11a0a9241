package validate

import "github.com/go-playground/validator/v10"

var v = validator.New()

// Struct checks the `validate` tags on a bound request DTO. Runs at the
// transport boundary so the service layer only ever sees well-formed input.
func Struct(s any) error {
	return v.Struct(s)
}
