// Package validation wraps go-playground/validator with the custom rules used
// by the component endpoints.
package validation

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"walletview/internal/models"
)

// Validator wraps the go-playground validator with custom rules and error formatting
type Validator struct {
	validate *validator.Validate
}

// singleton instance of the validator
var instance *Validator

// GetValidator returns the singleton validator instance
func GetValidator() *Validator {
	if instance == nil {
		instance = NewValidator()
	}
	return instance
}

// NewValidator creates a new validator instance with custom rules and configuration
func NewValidator() *Validator {
	v := validator.New()

	_ = v.RegisterValidation("category", validateCategory)
	_ = v.RegisterValidation("payment_status", validatePaymentStatus)

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("form"), ",", 2)[0]
		if name == "" {
			name = strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		}
		if name == "-" {
			return ""
		}
		return name
	})

	return &Validator{validate: v}
}

// Validate validates a struct and returns the raw validator error
func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}

// ValidateStruct validates a struct and returns field errors keyed by field name
func (v *Validator) ValidateStruct(i interface{}) map[string]string {
	err := v.validate.Struct(i)
	if err == nil {
		return nil
	}

	fieldErrors := make(map[string]string)
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		fieldErrors["_"] = err.Error()
		return fieldErrors
	}

	for _, fe := range validationErrors {
		fieldErrors[fe.Field()] = messageForTag(fe)
	}
	return fieldErrors
}

func messageForTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "category":
		return "must be a known category"
	case "payment_status":
		return "must be a known payment status"
	case "max":
		return fmt.Sprintf("must be at most %s characters", fe.Param())
	default:
		return fmt.Sprintf("failed %s validation", fe.Tag())
	}
}

// validateCategory accepts only registered category variants
func validateCategory(fl validator.FieldLevel) bool {
	return models.IsValidCategory(fl.Field().String())
}

// validatePaymentStatus accepts only registered payment status variants
func validatePaymentStatus(fl validator.FieldLevel) bool {
	return models.IsValidPaymentStatus(fl.Field().String())
}
