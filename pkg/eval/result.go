package eval

import "github.com/ib-77/infoutils/pkg/out"

type Result[T any] struct {
	result    T
	err       error
	isSuccess bool
	isCancel  bool
}

func Success[T any](r T) Result[T] {
	return Result[T]{
		result:    r,
		err:       nil,
		isSuccess: true,
		isCancel:  false,
	}
}

func Fail[T any](err error) Result[T] {
	return Result[T]{
		err:       orNoValue(err),
		isSuccess: false,
		isCancel:  false,
	}
}

func Cancel[T any](err error) Result[T] {
	return Result[T]{
		err:       orNoValue(err),
		isSuccess: false,
		isCancel:  true,
	}
}

// FromPair builds a Result from a (value, error) return. Context
// cancellation and deadline errors produce a cancelled result.
func FromPair[T any](v T, err error) Result[T] {
	if IsNil(err) {
		return Success(v)
	}
	if IsCancellationError(err) {
		return Cancel[T](err)
	}
	return Fail[T](err)
}

// FromFallible copies any Fallible into a Result.
func FromFallible[T any](f Fallible[T]) Result[T] {
	if IsNil(f) {
		return Fail[T](ErrNoValue)
	}
	v, err := f.Get()
	if c, ok := f.(WithCancel[T]); ok && c.IsCancel() {
		return Cancel[T](err)
	}
	return FromPair(v, err)
}

func orNoValue(err error) error {
	if IsNil(err) {
		return ErrNoValue
	}
	return err
}

func (r Result[T]) Get() (T, error) {
	return r.result, r.Err()
}

// Err returns nil on success and a non-nil error otherwise, ErrNoValue for
// the zero Result.
func (r Result[T]) Err() error {
	if !r.isSuccess && r.err == nil {
		return ErrNoValue
	}
	return r.err
}

func (r Result[T]) IsSuccess() bool {
	return r.isSuccess
}

func (r Result[T]) IsFailure() bool {
	return !r.isSuccess
}

func (r Result[T]) IsCancel() bool {
	return r.isCancel
}

// Option drops the error.
func (r Result[T]) Option() Option[T] {
	return FromOk(r.result, r.isSuccess)
}

// Eval returns the value or calls out.Default().Fatal with the error.
func (r Result[T]) Eval() T {
	return r.EvalWith(nil)
}

// EvalWith is Eval reporting through rep, so a unit's name stays on the
// message. A nil rep means out.Default().
func (r Result[T]) EvalWith(rep *out.Reporter) T {
	if r.isSuccess {
		return r.result
	}
	if r.isCancel {
		reporter(rep).Fatalf("called Result.Eval() on a cancelled value: %+v", r.Err())
	} else {
		reporter(rep).Fatalf("called Result.Eval() on a failed value: %+v", r.Err())
	}
	panic("unreachable")
}

func (r Result[T]) EvalOr(sub T) T {
	if r.isSuccess {
		return r.result
	}
	return sub
}

func (r Result[T]) EvalOrDefault() T {
	if r.isSuccess {
		return r.result
	}
	var zero T
	return zero
}

// EvalOrElse returns the value, or calls fn once with the error and returns
// its result.
func (r Result[T]) EvalOrElse(fn func(err error) T) T {
	if r.isSuccess {
		return r.result
	}
	return fn(r.Err())
}

// Should returns the value or calls out.Default().Fatal with msg followed by
// the error.
func (r Result[T]) Should(msg any) T {
	return r.ShouldWith(nil, msg)
}

func (r Result[T]) ShouldWith(rep *out.Reporter, msg any) T {
	if r.isSuccess {
		return r.result
	}
	reporter(rep).Fatalf("%v. Error: %+v", msg, r.Err())
	panic("unreachable")
}

// Must returns v or calls out.Fatal with err.
func Must[T any](v T, err error) T {
	return FromPair(v, err).Eval()
}

// MustOk returns v or calls out.Fatal when ok is false.
func MustOk[T any](v T, ok bool) T {
	return FromOk(v, ok).Eval()
}
