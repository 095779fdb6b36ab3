// Package share builds the text a user sends when sharing a result.
package share

import (
	"fmt"
	"strings"

	"github.com/iwvelando/perspective-retraites/internal/session"
	"github.com/iwvelando/perspective-retraites/pkg/constants"
	"github.com/iwvelando/perspective-retraites/pkg/format"
)

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// ErrNoResult is returned when the session has nothing to share in the
// requested mode.
const ErrNoResult = constError("no result to share")

// Message returns the share text for the last result of mode. Temporal
// results are introduced by the example label, or by the amount when it was
// typed by hand; comparisons are already full sentences.
func Message(mode string, s session.Session, url string) (string, error) {
	text := strings.TrimSpace(s.ResultText(mode))
	if text == "" {
		return "", ErrNoResult
	}
	if url == "" {
		url = constants.DefaultShareURL
	}

	if mode == constants.ModeFinancial {
		return fmt.Sprintf("J'ai calculé : %s.\nÀ vous de tester sur %s",
			strings.TrimSuffix(text, "."), url), nil
	}

	description := s.LastExampleLabel
	if description == "" {
		description = format.Currency(s.LastAmount)
	}
	return fmt.Sprintf("J'ai calculé : %s = %s de retraites.\nÀ vous de tester sur %s",
		description, text, url), nil
}
