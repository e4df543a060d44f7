// Package validator provides the shared struct validator and the custom
// validation tags used by service inputs.
package validator

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"vault/internal/models"
)

var currencyCodeRegex = regexp.MustCompile(`^[A-Za-z]{3}$`)

var (
	validate *validator.Validate
	once     sync.Once
)

// Get returns the process-wide validator with all custom tags registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		// Messages name fields by their `label` tag when present.
		validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
			if label := fld.Tag.Get("label"); label != "" {
				return label
			}
			return fld.Name
		})
		_ = validate.RegisterValidation("currency_code", validateCurrencyCode)
		_ = validate.RegisterValidation("normal_side", validateNormalSide)
	})
	return validate
}

// Struct validates s and flattens the first failure into a readable message.
func Struct(s interface{}) error {
	err := Get().Struct(s)
	if err == nil {
		return nil
	}
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		return fmt.Errorf("%s", describe(errs[0]))
	}
	return err
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s cannot be empty", field)
	case "currency_code":
		return fmt.Sprintf("%s must be exactly three letters", field)
	case "normal_side":
		return fmt.Sprintf("%s must be DEBIT or CREDIT", field)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", field, fe.Param())
	case "min":
		return fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "gtefield":
		return fmt.Sprintf("%s must be greater or equal than %s", field, fe.Param())
	}
	return fmt.Sprintf("%s is invalid (%s)", field, fe.Tag())
}

func validateCurrencyCode(fl validator.FieldLevel) bool {
	return currencyCodeRegex.MatchString(strings.TrimSpace(fl.Field().String()))
}

func validateNormalSide(fl validator.FieldLevel) bool {
	return models.NormalSide(fl.Field().String()).Valid()
}
