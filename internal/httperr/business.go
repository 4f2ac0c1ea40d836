package httperr

import "errors"

// Kind classifies a failure so callers can branch on it without
// parsing messages.
type Kind int

const (
	KindValidation Kind = iota
	KindNotFound
	KindConflict
	KindInternal
)

type Error struct {
	Kind    Kind
	Code    string
	Message string
	cause   error
}

func (e *Error) Error() string {
	if e.cause != nil {
		return e.Code + ": " + e.cause.Error()
	}
	return e.Code
}

func (e *Error) Unwrap() error {
	return e.cause
}

func Validation(code, message string) *Error {
	return &Error{Kind: KindValidation, Code: code, Message: message}
}

func NotFound(code, message string) *Error {
	return &Error{Kind: KindNotFound, Code: code, Message: message}
}

func Conflict(code, message string) *Error {
	return &Error{Kind: KindConflict, Code: code, Message: message}
}

// Internal keeps the cause for logging; the cause never reaches the
// response body.
func Internal(code string, cause error) *Error {
	return &Error{Kind: KindInternal, Code: code, Message: "An internal error occurred.", cause: cause}
}

func IsKind(err error, kind Kind) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Kind == kind
	}
	return false
}

func IsCode(err error, code string) bool {
	var he *Error
	if errors.As(err, &he) {
		return he.Code == code
	}
	return false
}
