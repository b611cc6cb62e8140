package handlers

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

var amountFormatRegex = regexp.MustCompile(`^\d+(\.\d{1,2})?$`)

// registerCustomValidations adds the shared binding rules to gin's validator
// engine. The service layer re-checks these; bind-time rejection just gives
// callers a faster, field-level error.
func registerCustomValidations() {
	v, ok := binding.Validator.Engine().(*validator.Validate)
	if !ok {
		return
	}
	_ = v.RegisterValidation("amountfmt", func(fl validator.FieldLevel) bool {
		return amountFormatRegex.MatchString(fl.Field().String())
	})
}
