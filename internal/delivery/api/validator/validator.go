// Package validator adapts go-playground/validator to echo's Validator interface.
package validator

import (
	"encoding/json"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"healthhub/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator validates request structs using their `validate` tags.
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator that reports fields by their JSON names.
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(field reflect.StructField) string {
		name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}

		return name
	})

	return &CustomValidator{validate: v}
}

// Validate implements echo.Validator. Rule violations come back as *ValidationError.
func (cv *CustomValidator) Validate(i any) error {
	err := cv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.WithStack(err)
	}

	fields := make([]FieldError, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		fields = append(fields, FieldError{
			Field:   fe.Field(),
			Rule:    fe.Tag(),
			Message: describe(fe),
		})
	}

	return &ValidationError{Fields: fields}
}

// TypeMismatch reports a JSON value whose type does not fit its target field.
func TypeMismatch(err *json.UnmarshalTypeError) *ValidationError {
	field := err.Field
	if field == "" {
		field = "body"
	}
	expected := "a different type"
	if err.Type != nil {
		expected = err.Type.String()
	}

	return &ValidationError{Fields: []FieldError{{
		Field:   field,
		Rule:    "type",
		Message: fmt.Sprintf("value of type %s cannot be used as %s", err.Value, expected),
	}}}
}

// FieldError describes one failed rule on one request field.
type FieldError struct {
	Field   string `json:"field"`
	Rule    string `json:"rule"`
	Message string `json:"message"`
}

// ValidationError is returned when a request body breaks its validation rules.
// It satisfies domainerrors.AppError.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, f.Field+": "+f.Message)
	}

	return "validation failed: " + strings.Join(parts, "; ")
}

func (e *ValidationError) HTTPCode() int {
	return http.StatusUnprocessableEntity
}

func (e *ValidationError) ErrorCode() string {
	return "VALIDATION_FAILED"
}

func (e *ValidationError) Message() string {
	return "Input validation failed"
}

func (e *ValidationError) Details() string {
	return e.Error()
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "field required"
	case "email":
		return "value is not a valid email address"
	case "oneof":
		return "value must be one of: " + strings.ReplaceAll(fe.Param(), " ", ", ")
	case "max":
		return "value must be at most " + fe.Param() + lengthUnit(fe)
	case "min":
		return "value must be at least " + fe.Param() + lengthUnit(fe)
	case "gte":
		return "value must be greater than or equal to " + fe.Param()
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}

func lengthUnit(fe validator.FieldError) string {
	if fe.Kind() == reflect.String {
		return " characters"
	}

	return ""
}
