package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New()

	// Report fields by their JSON name so messages match the request body.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "" || name == "-" {
			return strings.ToLower(fld.Name)
		}
		return name
	})
	v.RegisterValidation("positive_number", isPositiveNumber)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// FormatValidationErrors turns a validation error into human readable
// messages, one per failing field, in struct field order.
func (cv *CustomValidator) FormatValidationErrors(err error) []string {
	var messages []string

	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		if err != nil {
			messages = append(messages, err.Error())
		}
		return messages
	}

	for _, e := range validationErrors {
		field := e.Field()
		switch e.Tag() {
		case "required":
			messages = append(messages, field+" is required")
		case "min":
			messages = append(messages, field+" must be at least "+e.Param()+" characters")
		case "max":
			messages = append(messages, field+" must be at most "+e.Param()+" characters")
		case "positive_number":
			messages = append(messages, field+" must be a positive number")
		case "number":
			messages = append(messages, field+" must be a non-negative integer")
		case "url":
			messages = append(messages, field+" must be a valid URL")
		case "oneof":
			messages = append(messages, field+" must be one of: "+strings.Join(strings.Fields(e.Param()), ", "))
		default:
			messages = append(messages, field+" is invalid")
		}
	}

	return messages
}

func isPositiveNumber(fl validator.FieldLevel) bool {
	d, err := decimal.NewFromString(strings.TrimSpace(fl.Field().String()))
	if err != nil {
		return false
	}
	return d.IsPositive()
}
