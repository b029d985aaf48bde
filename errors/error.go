package errors

import (
	"fmt"
)

// InvalidArgumentError occurs when a required collaborator or element is nil or otherwise unusable
type InvalidArgumentError struct {
	Name string
	Err  error
}

// Error returns a textual representation of this InvalidArgumentError
func (e InvalidArgumentError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Invalid argument %s: %s", e.Name, e.Err)
	}
	return fmt.Sprintf("Invalid argument %s: must not be nil", e.Name)
}

// Unwrap returns the underlying cause of this InvalidArgumentError, if any
func (e InvalidArgumentError) Unwrap() error {
	return e.Err
}

// SerializationError occurs when an explicit encoder fails to encode an element
type SerializationError struct {
	Element interface{}
	Err     error
}

// Error returns a textual representation of this SerializationError
func (e SerializationError) Error() string {
	return fmt.Sprintf("Unable to encode element %v: %s", e.Element, e.Err)
}

// Unwrap returns the error raised by the encoder
func (e SerializationError) Unwrap() error {
	return e.Err
}

// DegradedEncodingError describes an element which the default encoder could not
// encode, and which was replaced by a null placeholder. It is logged, never returned.
type DegradedEncodingError struct {
	Element interface{}
	Err     error
}

// Error returns a textual representation of this DegradedEncodingError
func (e DegradedEncodingError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("Could not encode %v to JSON, substituting null: %s", e.Element, e.Err)
	}
	return fmt.Sprintf("Could not encode %v to JSON, substituting null: element is not Encodable", e.Element)
}

// Unwrap returns the underlying cause of this DegradedEncodingError, if any
func (e DegradedEncodingError) Unwrap() error {
	return e.Err
}

// UnsupportedOperationError occurs when a finished, read-only result is mutated
type UnsupportedOperationError struct{ Op string }

// Error returns a textual representation of this UnsupportedOperationError
func (e UnsupportedOperationError) Error() string {
	return fmt.Sprintf("%s is not supported on a read-only result", e.Op)
}

// IncompatibleIntermediateError occurs when a serialized intermediate does not decode into the expected shape
type IncompatibleIntermediateError struct{ Expected string }

// Error returns a textual representation of this IncompatibleIntermediateError
func (e IncompatibleIntermediateError) Error() string {
	return fmt.Sprintf("Incoming intermediate is not a %s", e.Expected)
}
