package util

import (
	"fmt"
)

// SafeEncode calls encode, recovering panics and turning them into errors
func SafeEncode[T any](encode func(T) (string, error), elem T) (res string, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Encoder Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Encoder Panic: %v\n%s", r, GetTrace())
			}
		}
	}()
	res, err = encode(elem)
	return
}

// SafeKey calls keyFn, recovering panics and turning them into errors
func SafeKey[T any, K any](keyFn func(T) (K, error), elem T) (key K, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Keying Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Keying Panic: %v\n%s", r, GetTrace())
			}
		}
	}()
	key, err = keyFn(elem)
	return
}

// SafeValue calls valueFn, recovering panics and turning them into errors
func SafeValue[T any](valueFn func(T) float64, elem T) (v float64, err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Value Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Value Panic: %v\n%s", r, GetTrace())
			}
		}
	}()
	v = valueFn(elem)
	return
}

// SafeOperation calls op, recovering panics and turning them into errors.
// Map operations on an unhashable dynamic key panic, so inserts of
// caller-supplied keys go through here.
func SafeOperation(op func()) (err error) {
	defer func() {
		if r := recover(); r != nil {
			if anErr, ok := r.(error); ok {
				err = fmt.Errorf("Operation Panic: %w\n%s", anErr, GetTrace())
			} else {
				err = fmt.Errorf("Operation Panic: %v\n%s", r, GetTrace())
			}
		}
	}()
	op()
	return
}
