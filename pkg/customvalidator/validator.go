package customvalidator

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

// RegisterCustomValidations wires the domain rules into the validator
// instance echo uses for request DTOs.
func RegisterCustomValidations(v *validator.Validate) error {
	if err := v.RegisterValidation("priority", isPriority); err != nil {
		return err
	}
	if err := v.RegisterValidation("request_status", isRequestStatus); err != nil {
		return err
	}
	if err := v.RegisterValidation("email", isGoodEmailFormat); err != nil {
		return err
	}
	return nil
}

func isPriority(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "High", "Medium", "Low":
		return true
	}
	return false
}

func isRequestStatus(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "new", "in_progress", "repaired", "scrap":
		return true
	}
	return false
}

func isGoodEmailFormat(fl validator.FieldLevel) bool {
	emailRegex := regexp.MustCompile(`^[a-zA-Z0-9._%+-]+@[a-zA-Z0-9.-]+\.[a-zA-Z]{2,}$`)
	return emailRegex.MatchString(fl.Field().String())
}
