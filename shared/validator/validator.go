package validator

import (
	"encoding/json"
	"fmt"
	"io"

	val "github.com/go-playground/validator/v10"

	"turnero/shared/failure"
)

var validate *val.Validate

// registerClockValidation accepts zero-padded 24-hour "HH:MM" strings only.
func registerClockValidation(field val.FieldLevel) bool {
	str, ok := field.Field().Interface().(string)
	if !ok || len(str) != 5 || str[2] != ':' {
		return false
	}

	hour := int(str[0]-'0')*10 + int(str[1]-'0')
	minute := int(str[3]-'0')*10 + int(str[4]-'0')

	for _, idx := range []int{0, 1, 3, 4} {
		if str[idx] < '0' || str[idx] > '9' {
			return false
		}
	}

	return hour < 24 && minute < 60
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("hhmm", registerClockValidation); err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
