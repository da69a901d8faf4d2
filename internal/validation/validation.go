// Package validation adapts go-playground/validator failures into the
// field→message-list maps the API returns with a 422 status.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"time"

	"easybill/internal/model"

	"github.com/go-playground/validator/v10"
)

// New builds the validator instance wired into Echo: field names come from
// json tags and the txdate rule checks the fixed transaction_date format.
func New() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	// never errors for a non-nil func
	_ = v.RegisterValidation("txdate", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(model.TransactionDateLayout, fl.Field().String())
		return err == nil
	})
	return v
}

// Errors converts a validation failure into the 422 response body. Every
// violated rule contributes one message under its field's name. Returns nil
// when err does not carry field-level errors.
func Errors(err error) map[string][]string {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = append(out[fe.Field()], message(fe))
	}
	return out
}

// FieldError builds a single-field 422 body, used for violations detected
// outside the validator (duplicate email).
func FieldError(field, msg string) map[string][]string {
	return map[string][]string{field: {msg}}
}

func message(fe validator.FieldError) string {
	field := strings.ReplaceAll(fe.Field(), "_", " ")
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", field)
	case "email":
		return fmt.Sprintf("The %s field must be a valid email address.", field)
	case "max":
		return fmt.Sprintf("The %s field must not be greater than %s characters.", field, fe.Param())
	case "min":
		return fmt.Sprintf("The %s field must be at least %s characters.", field, fe.Param())
	case "gte":
		return fmt.Sprintf("The %s field must be at least %s.", field, fe.Param())
	case "lte":
		return fmt.Sprintf("The %s field must not be greater than %s.", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("The selected %s is invalid.", field)
	case "txdate":
		return fmt.Sprintf("The %s field must match the format %s.", field, model.TransactionDateLayout)
	default:
		return fmt.Sprintf("The %s field is invalid.", field)
	}
}
