package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// messages are keyed by tag. {field} is the JSON name of the field, {param} the tag parameter.
var messages = map[string]string{
	"required":     "{field} is required",
	"gte":          "{field} must be greater than or equal to {param}",
	"lte":          "{field} must be less than or equal to {param}",
	"min":          "{field} must be greater than or equal to {param}",
	"max":          "{field} must be less than or equal to {param}",
	"oneof":        "{field} must be one of {param}",
	"email":        "{field} must be a valid email address",
	"mail":         "{field} must be a valid email address",
	"nowhitespace": "{field} must not contain spaces",
	"clock":        "{field} must be a time of day like 09:30",
	"day":          "{field} must be a date like 2024-01-31",
}

// message renders the first failed rule that has a message. Var checks have no field name and
// report as "value".
func message(err error) string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return err.Error()
	}

	for _, valErr := range valErrors {
		template, ok := messages[valErr.Tag()]
		if !ok {
			continue
		}

		field := valErr.Field()
		if field == "" {
			field = "value"
		}

		param := valErr.Param()
		if valErr.Tag() == "oneof" {
			param = strings.Join(strings.Fields(param), ", ")
		}

		return strings.NewReplacer("{field}", field, "{param}", param).Replace(template)
	}

	return valErrors.Error()
}
