package api

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var (
	gstRegex     = regexp.MustCompile(`^[0-9]{2}[A-Z]{5}[0-9]{4}[A-Z]{1}[1-9A-Z]{1}Z[0-9A-Z]{1}$`)
	inPhoneRegex = regexp.MustCompile(`^(\+91|91)?[6-9]\d{9}$`)
	pincodeRegex = regexp.MustCompile(`^\d{6}$`)
)

type Validator struct {
	validator *validator.Validate
}

// NewValidator builds the echo validator with the marketplace-specific
// tags: gst, inphone, pincode.
func NewValidator() *Validator {
	v := validator.New()

	v.RegisterValidation("gst", func(fl validator.FieldLevel) bool {
		return gstRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("inphone", func(fl validator.FieldLevel) bool {
		return inPhoneRegex.MatchString(fl.Field().String())
	})
	v.RegisterValidation("pincode", func(fl validator.FieldLevel) bool {
		return pincodeRegex.MatchString(fl.Field().String())
	})

	return &Validator{validator: v}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validator.Struct(i)
}
