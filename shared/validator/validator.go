package validator

import (
	"strconv"
	"strings"
	"time"

	"hotel/shared/constant"
	"hotel/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerDateValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := time.Parse(constant.DateFormat, strings.TrimSpace(value))

	return err == nil
}

func registerYesNoValidation(field val.FieldLevel) bool {
	value, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	switch strings.ToLower(strings.TrimSpace(value)) {
	case "y", "yes", "n", "no":
		return true
	}

	_, err := strconv.ParseBool(value)

	return err == nil
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	if err := validate.RegisterValidation("date", registerDateValidation); err != nil {
		panic(err)
	}

	if err := validate.RegisterValidation("yesno", registerYesNoValidation); err != nil {
		panic(err)
	}
}

// ValidateStruct runs the `validate` tags of data and turns the first
// violation into a readable failure.Invalid.
// https://github.com/go-playground/validator
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		return failure.Invalid(message(err)) //nolint:wrapcheck
	}

	return nil
}
