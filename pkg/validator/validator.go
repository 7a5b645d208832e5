package validator

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	validators "github.com/go-playground/validator/v10"
)

// Validator interface
type Validator interface {
	ValidateStruct(inf interface{}) error
}

type validator struct {
	validator *validators.Validate
}

// New Validator func - field errors are reported under their json names
func New() Validator {
	v := validators.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return field.Name
		}
		return name
	})
	return &validator{
		validator: v,
	}
}

// ValidateStruct func - returns one readable message per failing field
func (v *validator) ValidateStruct(inf interface{}) error {
	err := v.validator.Struct(inf)
	var fieldErrs validators.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	messages := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		messages = append(messages, describe(fe))
	}
	return errors.New(strings.Join(messages, "; "))
}

func describe(fe validators.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required", fe.Field())
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", fe.Field(), fe.Param())
	case "url":
		return fmt.Sprintf("%s must be a link", fe.Field())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	case "lte":
		return fmt.Sprintf("%s must be at most %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed on %s", fe.Field(), fe.Tag())
	}
}
