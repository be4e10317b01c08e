package httperr

import "errors"

// ===============================
// Business Errors
// ===============================

type Kind int

const (
	KindInvalid Kind = iota
	KindNotFound
	KindConflict
	KindPermission
	KindUpload
	KindUnhandled
)

type BusinessError struct {
	Kind Kind
	Code string
}

func (e BusinessError) Error() string {
	return e.Code
}

func ErrInvalid(code string) error {
	return BusinessError{Kind: KindInvalid, Code: code}
}

func ErrNotFound(code string) error {
	return BusinessError{Kind: KindNotFound, Code: code}
}

func ErrConflict(code string) error {
	return BusinessError{Kind: KindConflict, Code: code}
}

func ErrPermission(code string) error {
	return BusinessError{Kind: KindPermission, Code: code}
}

func ErrUpload(code string) error {
	return BusinessError{Kind: KindUpload, Code: code}
}

func IsBusiness(err error, code string) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Code == code
	}
	return false
}

func IsKind(err error, kind Kind) bool {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind == kind
	}
	return false
}

// KindOf classifies any error; non-business errors are unhandled.
func KindOf(err error) Kind {
	var be BusinessError
	if errors.As(err, &be) {
		return be.Kind
	}
	return KindUnhandled
}
