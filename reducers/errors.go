package reducers

import "errors"

var errSelfMerge = errors.New("cannot merge an intermediate into itself")
