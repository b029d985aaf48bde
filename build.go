package fold

import (
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
)

// Build creates a value with supplier and hands it to modifier, then to each
// additional modifier in turn, returning the modified value
func Build[T any](supplier func() T, modifier func(T), more ...func(T)) (T, error) {
	var zero T
	if supplier == nil {
		return zero, ferrors.InvalidArgumentError{Name: "supplier"}
	}
	if modifier == nil {
		return zero, ferrors.InvalidArgumentError{Name: "modifier"}
	}
	for _, m := range more {
		if m == nil {
			return zero, ferrors.InvalidArgumentError{Name: "additional modifier"}
		}
	}
	res := supplier()
	modifier(res)
	for _, m := range more {
		m(res)
	}
	return res, nil
}

// BuildWith creates an intermediate with supplier, hands it to modifier, and
// returns the result of finisher applied to it
func BuildWith[I any, T any](supplier func() I, modifier func(I), finisher func(I) T) (T, error) {
	var zero T
	if supplier == nil {
		return zero, ferrors.InvalidArgumentError{Name: "supplier"}
	}
	if modifier == nil {
		return zero, ferrors.InvalidArgumentError{Name: "modifier"}
	}
	if finisher == nil {
		return zero, ferrors.InvalidArgumentError{Name: "finisher"}
	}
	intermediate := supplier()
	modifier(intermediate)
	return finisher(intermediate), nil
}

// NonEmpty returns s and true, unless s is empty
func NonEmpty(s string) (string, bool) {
	return s, len(s) > 0
}

// RequireElement returns an InvalidArgumentError if elem is nil
func RequireElement(elem interface{}) error {
	if util.IsNil(elem) {
		return ferrors.InvalidArgumentError{Name: "element"}
	}
	return nil
}
