// Package validation checks user input before it reaches the backend.
package validation

import (
	"reflect"
	"strings"

	"growguard/internal/domain/entity"
	domainerrors "growguard/internal/domain/errors"
	"growguard/internal/errors"

	"github.com/go-playground/validator/v10"
)

// Validator wraps go-playground/validator with the client's custom tags.
// It satisfies echo.Validator.
type Validator struct {
	validate *validator.Validate
	messages map[string]string
}

var defaultMessages = map[string]string{
	"required": "Please fill in all required fields",
	"email":    "Please enter a valid email address",
	"province": "Please select a province",
	"min":      "Value is too small",
	"max":      "Value is too large",
	"mobile":   "Please enter a valid 10-digit mobile number",
	"otp":      "Please enter all 4 digits",
	"language": "Unsupported language",
}

// New creates a Validator with the province, mobile, otp and language tags registered.
func New() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}

		return name
	})

	mustRegister(v, "province", func(fl validator.FieldLevel) bool {
		return entity.IsProvince(fl.Field().String())
	})
	mustRegister(v, "mobile", func(fl validator.FieldLevel) bool {
		return entity.IsCompleteMobile(fl.Field().String())
	})
	mustRegister(v, "otp", func(fl validator.FieldLevel) bool {
		_, ok := entity.ParseOTP(fl.Field().String())

		return ok
	})
	mustRegister(v, "language", func(fl validator.FieldLevel) bool {
		return entity.Language(fl.Field().String()).IsValid()
	})

	return &Validator{validate: v, messages: defaultMessages}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Validate checks a struct and reports the first failing field as a *ValidationError.
func (v *Validator) Validate(i any) error {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return errors.WithStack(err)
	}

	first := fieldErrs[0]
	msg := v.messages[first.Tag()]
	if msg == "" {
		msg = first.Error()
	}

	return errors.WithStack(domainerrors.NewValidationError(first.Field(), msg))
}
