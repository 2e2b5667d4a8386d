package ledger

import "errors"

// ErrNotFound covers both a genuinely missing record and a record owned by
// another user. The two are deliberately indistinguishable so trade ids
// cannot be enumerated across accounts.
var ErrNotFound = errors.New("trade not found")

// ValidationError rejects a mutation before it reaches storage. Reason is
// safe to surface to the caller.
type ValidationError struct {
	Reason string
}

func (e *ValidationError) Error() string {
	return e.Reason
}

func validationError(reason string) error {
	return &ValidationError{Reason: reason}
}

// IsValidation reports whether err is a ValidationError.
func IsValidation(err error) bool {
	var verr *ValidationError
	return errors.As(err, &verr)
}
