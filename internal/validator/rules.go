package validator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var slugPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// registerCustomRules attaches the project's custom tags.
func registerCustomRules(v *validator.Validate) error {
	return v.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugPattern.MatchString(fl.Field().String())
	})
}
