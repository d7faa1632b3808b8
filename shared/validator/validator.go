package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"reflect"
	"regexp"
	"seatpos/shared/constant"
	"seatpos/shared/failure"
	"strings"
	"time"
	"unicode"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

// emailPattern is the address check the sign-in and booking forms apply before calling the
// remote service. It is looser than the RFC check behind the "email" tag.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

func registerNoWhitespaceValidation(field val.FieldLevel) bool {
	return !strings.ContainsFunc(field.Field().String(), unicode.IsSpace)
}

func registerMailValidation(field val.FieldLevel) bool {
	return IsMail(field.Field().String())
}

func layoutValidation(layouts ...string) val.Func {
	return func(field val.FieldLevel) bool {
		value := field.Field().String()

		for _, layout := range layouts {
			if _, err := time.Parse(layout, value); err == nil {
				return true
			}
		}

		return false
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())

	validate.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "" || name == "-" {
			return field.Name
		}

		return name
	})

	validations := map[string]val.Func{
		"nowhitespace": registerNoWhitespaceValidation,
		"mail":         registerMailValidation,
		"clock":        layoutValidation(constant.ClockFormat, constant.ClockFormatSecs),
		"day":          layoutValidation(constant.DayFormat),
	}

	for tag, fn := range validations {
		if err := validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// IsMail reports whether value looks like an email address.
func IsMail(value string) bool {
	return emailPattern.MatchString(value)
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
