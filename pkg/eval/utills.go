package eval

import (
	"context"
	"errors"
	"reflect"

	"github.com/ib-77/infoutils/pkg/out"
)

// ErrNoValue is stored by Fail and Cancel when they are given a nil error.
var ErrNoValue = errors.New("eval: no value")

func IsNil(i interface{}) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	switch v.Kind() {
	case reflect.Ptr, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}
	return false
}

func IsCancellationError(err error) bool {
	return errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled)
}

func reporter(r *out.Reporter) *out.Reporter {
	if r == nil {
		return out.Default()
	}
	return r
}
