package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("notblank", func(fl validator.FieldLevel) bool {
		return strings.TrimSpace(fl.Field().String()) != ""
	})
	return v
}

// check validates in and turns the first failure into a ValidationError.
func check(in any) error {
	err := validate.Struct(in)
	if err == nil {
		return nil
	}
	var fails validator.ValidationErrors
	if !errors.As(err, &fails) || len(fails) == 0 {
		return err
	}
	f := fails[0]
	return invalid(f.Field(), message(f))
}

func message(f validator.FieldError) string {
	switch f.Tag() {
	case "required", "notblank":
		return fmt.Sprintf("%s is required", f.Field())
	case "email":
		return fmt.Sprintf("%s must be a valid email address", f.Field())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", f.Field(), strings.ReplaceAll(f.Param(), " ", ", "))
	case "min":
		if f.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at least %s characters", f.Field(), f.Param())
		}
		return fmt.Sprintf("%s must be at least %s", f.Field(), f.Param())
	case "max":
		if f.Kind() == reflect.String {
			return fmt.Sprintf("%s must be at most %s characters", f.Field(), f.Param())
		}
		return fmt.Sprintf("%s must be at most %s", f.Field(), f.Param())
	}
	return fmt.Sprintf("%s is invalid", f.Field())
}
