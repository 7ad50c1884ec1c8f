package validation

import (
	"errors"
	"strings"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// NotBlankTag rejects strings that are empty after trimming whitespace.
const NotBlankTag = "notblank"

// RegisterRules adds the custom rules to v.
func RegisterRules(v *validator.Validate) error {
	return v.RegisterValidation(NotBlankTag, notBlank)
}

// RegisterGinRules adds the custom rules to the validator gin uses for binding.
func RegisterGinRules() error {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return errors.New("gin binding validator is not go-playground/validator")
	}
	return RegisterRules(v)
}

func notBlank(fl validator.FieldLevel) bool {
	return strings.TrimSpace(fl.Field().String()) != ""
}
