package fold

import (
	"fmt"

	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/internal/util"
	"github.com/go-sif/fold/logging"
)

// NullText is contributed in place of an element which the default encoder cannot encode
const NullText = "null"

// An Encoder turns a single element into its JSON representation
type Encoder[T any] func(elem T) (string, error)

// Encodable is implemented by elements which know how to encode themselves to JSON
type Encodable interface {
	ToJSON() (string, error)
}

// DefaultEncoder returns an Encoder which never fails. Encodable elements encode
// themselves. Elements which are not Encodable, or whose ToJSON fails or panics, are
// logged at ErrorLevel as a DegradedEncodingError and encoded as NullText.
// A nil logger is replaced by logging.Default().
func DefaultEncoder[T any](logger logging.Logger) Encoder[T] {
	if logger == nil {
		logger = logging.Default()
	}
	return func(elem T) (string, error) {
		switch e := any(elem).(type) {
		case Encodable:
			res, err := util.SafeEncode[Encodable](func(e Encodable) (string, error) { return e.ToJSON() }, e)
			if err != nil {
				degrade(logger, elem, err)
				return NullText, nil
			}
			return res, nil
		default:
			degrade(logger, elem, nil)
			return NullText, nil
		}
	}
}

func degrade(logger logging.Logger, elem interface{}, err error) {
	logger.Logf(logging.ErrorLevel, "%s. Make sure '%s' implements fold.Encodable",
		ferrors.DegradedEncodingError{Element: elem, Err: err}, fmt.Sprintf("%T", elem))
}
