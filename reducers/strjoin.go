package reducers

import (
	"strings"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
)

// StringParts is the intermediate of a StringJoining reducer
type StringParts struct {
	parts []string
}

// StringJoining joins strings with a delimiter, surrounding the result with a
// prefix and suffix only when the joined result is not empty
type StringJoining struct {
	delimiter string
	prefix    string
	suffix    string
}

// JoinIfNotEmpty returns a StringJoining reducer without prefix or suffix
func JoinIfNotEmpty(delimiter string) *StringJoining {
	return &StringJoining{delimiter: delimiter}
}

// JoinIfNotEmptyWith returns a StringJoining reducer which wraps a non-empty result in prefix and suffix
func JoinIfNotEmptyWith(delimiter, prefix, suffix string) *StringJoining {
	return &StringJoining{delimiter: delimiter, prefix: prefix, suffix: suffix}
}

// Identity produces an empty StringParts
func (j *StringJoining) Identity() *StringParts {
	return &StringParts{parts: make([]string, 0)}
}

// Accumulate appends elem to acc
func (j *StringJoining) Accumulate(acc *StringParts, elem string) error {
	acc.parts = append(acc.parts, elem)
	return nil
}

// Merge appends the parts of donor after those of receiver
func (j *StringJoining) Merge(receiver, donor *StringParts) (*StringParts, error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	receiver.parts = append(receiver.parts, donor.parts...)
	return receiver, nil
}

// Finish joins the accumulated strings
func (j *StringJoining) Finish(acc *StringParts) (string, error) {
	joined := strings.Join(acc.parts, j.delimiter)
	if s, ok := fold.NonEmpty(joined); ok {
		return j.prefix + s + j.suffix, nil
	}
	return joined, nil
}

// Characteristics returns no characteristics
func (j *StringJoining) Characteristics() fold.Characteristics {
	return 0
}
