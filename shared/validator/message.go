package validator

import (
	"errors"
	"strings"

	val "github.com/go-playground/validator/v10"
)

var (
	messages = map[string]string{
		"required": "is required",
		"gte":      "must be greater than or equal to {param}",
		"lte":      "must be less than or equal to {param}",
		"oneof":    "must be one of {param}",
		"max":      "must be less than or equal to {param}",
		"min":      "must be greater than or equal to {param}",
		"email":    "must be a valid email address",
		"uuid":     "must be a valid UUID",
		"isodate":  "must be a date in YYYY-MM-DD format",
		"notblank": "must not be blank",
	}
)

// message returns the offending field and a reason for the first validation error.
func message(err error) (string, string) {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) {
		for _, valErr := range valErrors {
			field := valErr.Field()
			param := valErr.Param()

			errStr := messages[valErr.Tag()]
			if errStr != "" {
				return field, strings.ReplaceAll(errStr, "{param}", param)
			}
		}

		return valErrors[0].Field(), "failed on " + valErrors[0].Tag()
	}

	return "", err.Error()
}
