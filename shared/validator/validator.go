package validator

import (
	"infopage/shared/failure"
	"infopage/shared/timezone"

	val "github.com/go-playground/validator/v10"
)

var validate = newValidate()

func newValidate() *val.Validate {
	validate := val.New(val.WithRequiredStructEnabled())

	err := validate.RegisterValidation("strftime", func(fl val.FieldLevel) bool {
		return timezone.ValidStrftime(fl.Field().String())
	})
	if err != nil {
		panic(err)
	}

	return validate
}

// ValidateStruct validates data against its `validate` tags and turns the
// first violation into a bad request failure.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
