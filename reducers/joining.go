package reducers

import (
	"strings"
	"sync"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/codec"
	"github.com/go-sif/fold/internal/util"
	"github.com/go-sif/fold/logging"
	jsoniter "github.com/json-iterator/go"
)

// JSONParts is the intermediate of a Joining reducer: encoded elements in the order
// they were accumulated. lock guards parts, and is held only while appending,
// merging or finishing.
type JSONParts struct {
	lock  sync.Mutex
	parts []string
}

// Len returns the number of encoded elements
func (p *JSONParts) Len() int {
	p.lock.Lock()
	defer p.lock.Unlock()
	return len(p.parts)
}

type jsonPartsSnapshot struct {
	Parts []string
}

// MarshalBinary serializes this intermediate
func (p *JSONParts) MarshalBinary() ([]byte, error) {
	p.lock.Lock()
	defer p.lock.Unlock()
	return codec.Compress(jsonPartsSnapshot{Parts: p.parts})
}

// UnmarshalBinary replaces the contents of this intermediate with serialized data
func (p *JSONParts) UnmarshalBinary(buf []byte) error {
	var snap jsonPartsSnapshot
	if err := codec.Decompress(buf, &snap); err != nil {
		return err
	}
	p.lock.Lock()
	defer p.lock.Unlock()
	p.parts = snap.Parts
	return nil
}

// Joining encodes each element and joins the results into a JSON array
type Joining[T any] struct {
	encode fold.Encoder[T]
}

// ToJSON returns a Joining reducer which uses fold.DefaultEncoder. Elements which
// cannot be encoded are logged to logger and contribute null to the array.
func ToJSON[T any](logger logging.Logger) *Joining[T] {
	return &Joining[T]{encode: fold.DefaultEncoder[T](logger)}
}

// ToJSONWith returns a Joining reducer which uses encoder. Any encoder failure
// aborts the reduction with a SerializationError.
func ToJSONWith[T any](encoder fold.Encoder[T]) (*Joining[T], error) {
	if encoder == nil {
		return nil, ferrors.InvalidArgumentError{Name: "encoder"}
	}
	return &Joining[T]{encode: encoder}, nil
}

// MarshalEncoder returns an Encoder which marshals elements with encoding/json semantics
func MarshalEncoder[T any]() fold.Encoder[T] {
	json := jsoniter.ConfigCompatibleWithStandardLibrary
	return func(elem T) (string, error) {
		return json.MarshalToString(elem)
	}
}

// Identity produces an empty JSONParts
func (j *Joining[T]) Identity() *JSONParts {
	return &JSONParts{parts: make([]string, 0)}
}

// Accumulate encodes elem and appends it to acc. It is safe to call concurrently on the same acc.
func (j *Joining[T]) Accumulate(acc *JSONParts, elem T) error {
	if err := fold.RequireElement(elem); err != nil {
		return err
	}
	encoded, err := util.SafeEncode[T](j.encode, elem)
	if err != nil {
		return ferrors.SerializationError{Element: elem, Err: err}
	}
	acc.lock.Lock()
	defer acc.lock.Unlock()
	acc.parts = append(acc.parts, encoded)
	return nil
}

// Merge appends the parts of donor after those of receiver
func (j *Joining[T]) Merge(receiver, donor *JSONParts) (*JSONParts, error) {
	if receiver == donor {
		return nil, ferrors.InvalidArgumentError{Name: "donor", Err: errSelfMerge}
	}
	donor.lock.Lock()
	parts := donor.parts
	donor.parts = nil
	donor.lock.Unlock()

	receiver.lock.Lock()
	defer receiver.lock.Unlock()
	receiver.parts = append(receiver.parts, parts...)
	return receiver, nil
}

// Finish joins the encoded elements with ", " and wraps them in square brackets
func (j *Joining[T]) Finish(acc *JSONParts) (string, error) {
	acc.lock.Lock()
	defer acc.lock.Unlock()
	return "[" + strings.Join(acc.parts, ", ") + "]", nil
}

// Characteristics returns fold.Concurrent
func (j *Joining[T]) Characteristics() fold.Characteristics {
	return fold.Concurrent
}
