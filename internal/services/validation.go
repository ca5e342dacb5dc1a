package services

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ideaboard/backend/internal/models"
)

// requestValidator checks request DTOs against their `validate` struct tags.
// Field names in messages use the json tag so clients see the names they sent.
var requestValidator = newRequestValidator()

func newRequestValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// validateRequest validates req and wraps the first failure in models.ErrValidation
func validateRequest(req any) error {
	err := requestValidator.Struct(req)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return fmt.Errorf("%w: %v", models.ErrValidation, err)
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "required":
		return fmt.Errorf("%w: %s is required", models.ErrValidation, fe.Field())
	case "email":
		return fmt.Errorf("%w: invalid email format", models.ErrValidation)
	case "min":
		return fmt.Errorf("%w: %s must be at least %s characters", models.ErrValidation, fe.Field(), fe.Param())
	case "max":
		return fmt.Errorf("%w: %s must be at most %s characters", models.ErrValidation, fe.Field(), fe.Param())
	default:
		return fmt.Errorf("%w: %s is invalid", models.ErrValidation, fe.Field())
	}
}
