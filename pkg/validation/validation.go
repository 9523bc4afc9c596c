package validation

import (
	"errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	requiredMessage = "This field is required."
	invalidMessage  = "Invalid value."
)

// MessageProvider lets a form override the message shown for a failed rule.
// Keys are "<form field>.<tag>", e.g. "username.min".
type MessageProvider interface {
	ValidationMessages() map[string]string
}

// New returns a validator that reports fields by their form tag name.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name := strings.SplitN(field.Tag.Get("form"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return field.Name
		}
		return name
	})
	return v
}

// FieldErrors turns a validator error into a form field to message map.
// Only the first failing rule of each field is reported.
func FieldErrors(err error, form interface{}) map[string]string {
	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		return nil
	}

	var messages map[string]string
	if provider, ok := form.(MessageProvider); ok {
		messages = provider.ValidationMessages()
	}

	out := make(map[string]string, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := out[fe.Field()]; seen {
			continue
		}
		if msg, ok := messages[fe.Field()+"."+fe.Tag()]; ok {
			out[fe.Field()] = msg
			continue
		}
		if fe.Tag() == "required" {
			out[fe.Field()] = requiredMessage
			continue
		}
		out[fe.Field()] = invalidMessage
	}
	return out
}
