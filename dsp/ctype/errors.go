package ctype

import "errors"

// ErrUnsupportedType matches every *UnsupportedTypeError via errors.Is.
var ErrUnsupportedType = errors.New("ctype: unsupported type")

// UnsupportedTypeError reports a C type tag outside the supported set.
type UnsupportedTypeError struct {
	Tag string
}

func (e *UnsupportedTypeError) Error() string {
	return "ctype: unsupported type: " + e.Tag
}

// Is makes errors.Is(err, ErrUnsupportedType) succeed.
func (e *UnsupportedTypeError) Is(target error) bool {
	return target == ErrUnsupportedType
}
