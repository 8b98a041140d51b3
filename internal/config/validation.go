package config

import (
	"fmt"

	"github.com/go-playground/validator/v10"

	almanacerrors "github.com/alexisbeaulieu97/almanac/pkg/errors"
)

// ValidateConfig runs structural validation, then the cross-field
// checks the tag language cannot express.
func ValidateConfig(cfg *Config) error {
	if cfg == nil {
		return almanacerrors.NewValidationError("config", "configuration is empty", nil)
	}

	if err := validatorInstance().Struct(cfg); err != nil {
		if fieldErrs, ok := err.(validator.ValidationErrors); ok && len(fieldErrs) > 0 {
			first := fieldErrs[0]
			msg := fmt.Sprintf("failed %q validation", first.Tag())
			return almanacerrors.NewValidationError(first.Namespace(), msg, err)
		}
		return almanacerrors.NewValidationError("config", "structural validation failed", err)
	}

	// The resolved constraints enforce bound ordering and weekday
	// ranges.
	if err := cfg.Constraints().Validate(); err != nil {
		return err
	}

	return nil
}
