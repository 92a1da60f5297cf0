package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator checks report inputs against their `validate` tags and the
// struct-level rules registered in NewValidator.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a new validator instance
func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return fld.Name
		}
		return name
	})
	v.RegisterStructValidation(validateReportRequestInput, ReportRequestInput{})
	v.RegisterStructValidation(validateTimeLineInput, TimeLineInput{})

	return &Validator{validate: v}
}

// Struct validates s and returns a *ValidationError describing every
// failing field, or nil.
func (v *Validator) Struct(s interface{}) error {
	err := v.validate.Struct(s)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return err
	}

	validationError := &ValidationError{}
	for _, fe := range fieldErrs {
		errorType, message := describe(fe)
		validationError.AddError(fe.Field(), errorType, message, fe.Value())
	}
	return validationError
}

func describe(fe validator.FieldError) (ValidationErrorType, string) {
	field := fe.Field()
	switch fe.Tag() {
	case "required":
		return ErrorTypeRequired, fmt.Sprintf("%s is required", field)
	case "email":
		return ErrorTypeInvalidFormat, fmt.Sprintf("%s has invalid format, expected: email address", field)
	case "min", "max":
		if fe.Kind() == reflect.String {
			return ErrorTypeInvalidLength, fmt.Sprintf("%s must be %s %s characters long", field, boundWord(fe.Tag()), fe.Param())
		}
		return ErrorTypeInvalidRange, fmt.Sprintf("%s must be %s %s", field, boundWord(fe.Tag()), fe.Param())
	case "gt":
		return ErrorTypeInvalidValue, fmt.Sprintf("%s must be greater than %s", field, fe.Param())
	case "gte":
		return ErrorTypeInvalidRange, fmt.Sprintf("%s must be at least %s", field, fe.Param())
	case "lte":
		return ErrorTypeInvalidRange, fmt.Sprintf("%s must be at most %s", field, fe.Param())
	case "date_order":
		return ErrorTypeInvalidRange, fmt.Sprintf("%s must not be before %s", field, fe.Param())
	default:
		return ErrorTypeInvalidValue, fmt.Sprintf("%s has invalid value", field)
	}
}

func boundWord(tag string) string {
	if tag == "min" {
		return "at least"
	}
	return "at most"
}
