package reducers

import (
	"errors"
	"fmt"
	"strconv"
	"sync"
	"testing"

	"github.com/go-sif/fold"
	ferrors "github.com/go-sif/fold/errors"
	"github.com/go-sif/fold/logging"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"
)

func quote(s string) (string, error) {
	return strconv.Quote(s), nil
}

type fruit struct {
	Name string
	Ripe bool
}

func (f *fruit) ToJSON() (string, error) {
	if f.Name == "" {
		return "", errors.New("fruit without a name")
	}
	return fmt.Sprintf(`{"name": %q, "ripe": %t}`, f.Name, f.Ripe), nil
}

func TestJoiningEmpty(t *testing.T) {
	r, err := ToJSONWith(quote)
	require.Nil(t, err)
	res, err := r.Finish(r.Identity())
	require.Nil(t, err)
	require.Equal(t, "[]", res)
	require.True(t, gjson.Valid(res))
}

func TestJoiningSingle(t *testing.T) {
	r, err := ToJSONWith(quote)
	require.Nil(t, err)
	acc := r.Identity()
	require.Nil(t, r.Accumulate(acc, "a"))
	res, err := r.Finish(acc)
	require.Nil(t, err)
	require.Equal(t, `["a"]`, res)
}

func TestJoiningSequential(t *testing.T) {
	r, err := ToJSONWith(quote)
	require.Nil(t, err)
	acc := r.Identity()
	for _, s := range []string{"a", "b", "c"} {
		require.Nil(t, r.Accumulate(acc, s))
	}
	require.Equal(t, 3, acc.Len())
	res, err := r.Finish(acc)
	require.Nil(t, err)
	require.Equal(t, `["a", "b", "c"]`, res)
	parsed := gjson.Parse(res)
	require.True(t, parsed.IsArray())
	require.Equal(t, "b", parsed.Get("1").String())

	// finishing again yields the same result
	again, err := r.Finish(acc)
	require.Nil(t, err)
	require.Equal(t, res, again)
}

func TestJoiningMerge(t *testing.T) {
	r, err := ToJSONWith(quote)
	require.Nil(t, err)
	left, right := r.Identity(), r.Identity()
	require.Nil(t, r.Accumulate(left, "a"))
	require.Nil(t, r.Accumulate(right, "b"))
	require.Nil(t, r.Accumulate(right, "c"))
	merged, err := r.Merge(left, right)
	require.Nil(t, err)
	res, err := r.Finish(merged)
	require.Nil(t, err)
	require.Equal(t, `["a", "b", "c"]`, res)

	_, err = r.Merge(merged, merged)
	var ierr ferrors.InvalidArgumentError
	require.True(t, errors.As(err, &ierr))
}

func TestJoiningNilEncoder(t *testing.T) {
	_, err := ToJSONWith[string](nil)
	var ierr ferrors.InvalidArgumentError
	require.True(t, errors.As(err, &ierr))
	require.Equal(t, "encoder", ierr.Name)
}

func TestJoiningExplicitEncoderFails(t *testing.T) {
	cause := errors.New("unencodable")
	r, err := ToJSONWith(func(s string) (string, error) {
		if s == "bad" {
			return "", cause
		}
		return strconv.Quote(s), nil
	})
	require.Nil(t, err)
	acc := r.Identity()
	require.Nil(t, r.Accumulate(acc, "good"))
	err = r.Accumulate(acc, "bad")
	var serr ferrors.SerializationError
	require.True(t, errors.As(err, &serr))
	require.Equal(t, "bad", serr.Element)
	require.True(t, errors.Is(err, cause))
	// nothing was emitted for the failing element
	require.Equal(t, 1, acc.Len())
}

func TestJoiningExplicitEncoderPanics(t *testing.T) {
	r, err := ToJSONWith(func(s string) (string, error) { panic("no") })
	require.Nil(t, err)
	err = r.Accumulate(r.Identity(), "x")
	var serr ferrors.SerializationError
	require.True(t, errors.As(err, &serr))
}

func TestJoiningDefaultEncoder(t *testing.T) {
	logger := logging.NewRecorder()
	r := ToJSON[*fruit](logger)
	acc := r.Identity()
	require.Nil(t, r.Accumulate(acc, &fruit{Name: "apple", Ripe: true}))
	require.Nil(t, r.Accumulate(acc, &fruit{}))
	require.Nil(t, r.Accumulate(acc, &fruit{Name: "kiwi"}))
	res, err := r.Finish(acc)
	require.Nil(t, err)
	require.Equal(t, `[{"name": "apple", "ripe": true}, null, {"name": "kiwi", "ripe": false}]`, res)
	require.True(t, gjson.Valid(res))
	require.Equal(t, gjson.Null, gjson.Get(res, "1").Type)
	require.Len(t, logger.AtLevel(logging.ErrorLevel), 1)
}

func TestJoiningDefaultEncoderNotEncodable(t *testing.T) {
	logger := logging.NewRecorder()
	r := ToJSON[int](logger)
	res, err := fold.Reduce[int, *JSONParts, string](r, 1, 2)
	require.Nil(t, err)
	require.Equal(t, "[null, null]", res)
	require.Len(t, logger.AtLevel(logging.ErrorLevel), 2)
}

func TestJoiningRejectsNilElement(t *testing.T) {
	r := ToJSON[*fruit](logging.Discard)
	acc := r.Identity()
	err := r.Accumulate(acc, nil)
	var ierr ferrors.InvalidArgumentError
	require.True(t, errors.As(err, &ierr))
	require.Equal(t, "element", ierr.Name)
	require.Equal(t, 0, acc.Len())
}

func TestMarshalEncoder(t *testing.T) {
	r, err := ToJSONWith(MarshalEncoder[fruit]())
	require.Nil(t, err)
	res, err := fold.Reduce[fruit, *JSONParts, string](r, fruit{Name: "pear"}, fruit{Name: "fig", Ripe: true})
	require.Nil(t, err)
	require.Equal(t, `[{"Name":"pear","Ripe":false}, {"Name":"fig","Ripe":true}]`, res)
	require.Equal(t, "fig", gjson.Get(res, "1.Name").String())
}

func TestJoiningConcurrentAccumulate(t *testing.T) {
	require.True(t, ToJSON[int](nil).Characteristics().Has(fold.Concurrent))
	r, err := ToJSONWith(func(i int) (string, error) { return strconv.Itoa(i), nil })
	require.Nil(t, err)
	acc := r.Identity()
	errs := make(chan error, 800)
	var wg sync.WaitGroup
	for w := 0; w < 8; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < 100; i++ {
				if err := r.Accumulate(acc, w*100+i); err != nil {
					errs <- err
				}
			}
		}(w)
	}
	wg.Wait()
	close(errs)
	require.Empty(t, errs)
	res, err := r.Finish(acc)
	require.Nil(t, err)
	parsed := gjson.Parse(res).Array()
	require.Len(t, parsed, 800)
	seen := make(map[int64]bool)
	for _, v := range parsed {
		seen[v.Int()] = true
	}
	require.Len(t, seen, 800)
}

func TestJSONPartsSnapshot(t *testing.T) {
	r, err := ToJSONWith(quote)
	require.Nil(t, err)
	worker := r.Identity()
	require.Nil(t, r.Accumulate(worker, "b"))
	require.Nil(t, r.Accumulate(worker, "c"))
	buf, err := worker.MarshalBinary()
	require.Nil(t, err)

	shipped := r.Identity()
	require.Nil(t, shipped.UnmarshalBinary(buf))
	local := r.Identity()
	require.Nil(t, r.Accumulate(local, "a"))
	merged, err := r.Merge(local, shipped)
	require.Nil(t, err)
	res, err := r.Finish(merged)
	require.Nil(t, err)
	require.Equal(t, `["a", "b", "c"]`, res)
}
