// internal/app/system/inputval/inputval.go

// Package inputval validates request payload structs and returns
// ordered, human-readable field errors instead of raising.
//
// Rules are declared with `validate` struct tags; the optional `label`
// tag supplies the human name used in messages. Field names in the
// returned errors come from the `json` tag so they match what the
// client sent.
package inputval

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
)

// FieldError describes a single invalid field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// Result collects the field errors from one Validate call.
type Result struct {
	Errors []FieldError
}

// HasErrors reports whether any field failed validation.
func (r *Result) HasErrors() bool { return len(r.Errors) > 0 }

// First returns the first error message, or "" if there are none.
func (r *Result) First() string {
	if len(r.Errors) == 0 {
		return ""
	}
	return r.Errors[0].Message
}

// All returns every error message joined with "; ".
func (r *Result) All() string {
	return strings.Join(r.Messages(), "; ")
}

// Messages returns the error messages in declaration order.
func (r *Result) Messages() []string {
	if len(r.Errors) == 0 {
		return nil
	}
	msgs := make([]string, len(r.Errors))
	for i, fe := range r.Errors {
		msgs[i] = fe.Message
	}
	return msgs
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Report fields by their json names so errors match the wire format.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" || tag == "-" {
			return f.Name
		}
		return tag
	})

	// isodate: an ISO calendar date, e.g. 2023-01-15. Future dates are
	// allowed; a hire date may be scheduled ahead.
	_ = v.RegisterValidation("isodate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse("2006-01-02", fl.Field().String())
		return err == nil
	})

	return v
}

// Validate checks v's `validate` tags and returns a Result. It never
// panics on decodable input; non-field errors (e.g. validating a
// non-struct) surface as a single generic entry.
func Validate(v any) *Result {
	res := &Result{}
	err := validate.Struct(v)
	if err == nil {
		return res
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		res.Errors = append(res.Errors, FieldError{Message: "Invalid input."})
		return res
	}

	t := reflect.TypeOf(v)
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}
	for _, fe := range verrs {
		res.Errors = append(res.Errors, FieldError{
			Field:   fe.Field(),
			Message: message(t, fe),
		})
	}
	return res
}

// labelFor resolves the human name for a field: the `label` tag if
// present, otherwise the reported (json) field name.
func labelFor(t reflect.Type, fe validator.FieldError) string {
	if t.Kind() == reflect.Struct {
		if sf, ok := t.FieldByName(fe.StructField()); ok {
			if label := sf.Tag.Get("label"); label != "" {
				return label
			}
		}
	}
	return fe.Field()
}

func message(t reflect.Type, fe validator.FieldError) string {
	label := labelFor(t, fe)
	switch fe.Tag() {
	case "required":
		return label + " is required."
	case "min":
		return label + " must be at least " + fe.Param() + " characters."
	case "max":
		return label + " must be at most " + fe.Param() + " characters."
	case "email":
		return "A valid email address is required."
	case "isodate":
		return label + " must be a valid date in YYYY-MM-DD format."
	case "gt":
		if fe.Param() == "0" {
			return label + " must be a positive number."
		}
		return label + " must be greater than " + fe.Param() + "."
	default:
		return label + " is invalid."
	}
}
