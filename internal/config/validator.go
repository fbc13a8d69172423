package config

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	tourerrors "github.com/nhoussay/a11ytour/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// validatorInstance returns the shared validator used across the package.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		validateInst = validator.New()
	})
	return validateInst
}

// Validate performs structural validation on the settings model.
func Validate(settings *Settings) error {
	if settings == nil {
		return tourerrors.NewValidationError("settings", "settings are nil", nil)
	}

	if err := validatorInstance().Struct(settings); err != nil {
		return convertValidationError(err)
	}

	return nil
}

func convertValidationError(err error) error {
	var fieldErrors validator.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return tourerrors.NewValidationError("settings", err.Error(), err)
	}

	messages := make([]string, 0, len(fieldErrors))
	field := "settings"
	for i, fe := range fieldErrors {
		if i == 0 {
			field = strings.ToLower(fe.Field())
		}
		messages = append(messages, fmt.Sprintf("%s failed %q validation", strings.ToLower(fe.Field()), fe.Tag()))
	}

	return tourerrors.NewValidationError(field, strings.Join(messages, "; "), err)
}
