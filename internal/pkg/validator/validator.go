package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	registerCustomValidations()
}

func registerCustomValidations() {
	// Report type validation
	validate.RegisterValidation("report_type", func(fl validator.FieldLevel) bool {
		t := fl.Field().String()
		return t == "lost" || t == "found"
	})

	// Report status validation
	validate.RegisterValidation("report_status", func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		switch s {
		case "active", "claimed", "deleted":
			return true
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "url":
			errors[field] = "Invalid URL format"
		case "report_type":
			errors[field] = "Invalid type. Must be: lost or found"
		case "report_status":
			errors[field] = "Invalid status. Must be: active, claimed, or deleted"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}
