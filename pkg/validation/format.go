package validation

import (
	"fmt"

	"github.com/iwvelando/perspective-retraites/pkg/constants"
)

// ValidateOutputFormat checks if the output format is one of the supported formats.
func ValidateOutputFormat(format string) error {
	if format != constants.OutputFormatPretty && format != constants.OutputFormatJSON {
		return fmt.Errorf("expected output format of %s or %s, got %s",
			constants.OutputFormatPretty, constants.OutputFormatJSON, format)
	}
	return nil
}

// ValidateMode checks that mode is one of the two calculator modes.
func ValidateMode(mode string) error {
	if mode != constants.ModeTemporal && mode != constants.ModeFinancial {
		return NewFieldError(FieldMode, ErrUnknownOption, mode)
	}
	return nil
}
