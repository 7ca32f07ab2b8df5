package greeting

import (
	"errors"
	"fmt"
)

// Sentinel errors. Wrap with fmt.Errorf("%w: ...") for context.
var (
	ErrLocaleNotFound  = errors.New(ErrMsgLocaleNotFound)
	ErrInvalidTimeSlot = errors.New(ErrMsgInvalidTimeSlot)
	ErrInvalidKey      = errors.New(ErrMsgInvalidKey)
)

// LocaleNotFoundError is returned when a locale has no language table.
type LocaleNotFoundError struct {
	Locale string
}

func (e LocaleNotFoundError) Error() string {
	return fmt.Sprintf(ErrFmtLocaleNotFound, ErrMsgLocaleNotFound, e.Locale)
}

// Is allows errors.Is() to match both ErrLocaleNotFound and any LocaleNotFoundError
func (e LocaleNotFoundError) Is(target error) bool {
	if target == ErrLocaleNotFound {
		return true
	}
	_, ok := target.(LocaleNotFoundError)
	return ok
}
