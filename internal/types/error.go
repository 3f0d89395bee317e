package types

import (
	"errors"
	"fmt"
)

// ErrorCode classifies a per-address failure.
type ErrorCode string

const (
	// ErrInvalidAddressFormat marks an address that failed bech32 validation
	// for its category. Raised before any external query.
	ErrInvalidAddressFormat ErrorCode = "INVALID_ADDRESS_FORMAT"
	// ErrAddressDerivation marks a failed operator-to-account derivation.
	ErrAddressDerivation ErrorCode = "ADDRESS_DERIVATION_FAILURE"
	// ErrQueryTimeout marks a sub-query that exceeded its per-call deadline.
	ErrQueryTimeout ErrorCode = "QUERY_TIMEOUT"
	// ErrQueryFailure marks any other remote or transport error.
	ErrQueryFailure ErrorCode = "QUERY_FAILURE"
)

func (c ErrorCode) String() string {
	return string(c)
}

// Error carries an ErrorCode alongside its underlying cause. Errors of this
// type isolate to the affected balance record only.
type Error struct {
	Code ErrorCode
	Err  error
}

func NewError(code ErrorCode, err error) *Error {
	return &Error{Code: code, Err: err}
}

func (e *Error) Error() string {
	if e.Err == nil {
		return string(e.Code)
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// CodeOf extracts the ErrorCode from err. Unclassified errors map to
// ErrQueryFailure.
func CodeOf(err error) ErrorCode {
	var e *Error
	if errors.As(err, &e) {
		return e.Code
	}
	return ErrQueryFailure
}

func IsInvalidAddressFormat(err error) bool {
	return hasCode(err, ErrInvalidAddressFormat)
}

func IsAddressDerivation(err error) bool {
	return hasCode(err, ErrAddressDerivation)
}

func IsQueryTimeout(err error) bool {
	return hasCode(err, ErrQueryTimeout)
}

func hasCode(err error, code ErrorCode) bool {
	var e *Error
	return errors.As(err, &e) && e.Code == code
}
