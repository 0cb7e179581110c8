package eval

import (
	"fmt"

	"github.com/ib-77/infoutils/pkg/out"
)

type Option[T any] struct {
	value T
	ok    bool
}

func Some[T any](v T) Option[T] {
	return Option[T]{value: v, ok: true}
}

func None[T any]() Option[T] {
	return Option[T]{}
}

// FromOk builds an Option from a comma-ok pair such as a map lookup.
func FromOk[T any](v T, ok bool) Option[T] {
	if !ok {
		return None[T]()
	}
	return Some(v)
}

// FromPtr returns None for a nil pointer and Some(*p) otherwise.
func FromPtr[T any](p *T) Option[T] {
	if p == nil {
		return None[T]()
	}
	return Some(*p)
}

// FromOptional copies any Optional into an Option.
func FromOptional[T any](o Optional[T]) Option[T] {
	if IsNil(o) {
		return None[T]()
	}
	v, ok := o.Get()
	return FromOk(v, ok)
}

func (o Option[T]) IsSome() bool {
	return o.ok
}

func (o Option[T]) IsNone() bool {
	return !o.ok
}

func (o Option[T]) Get() (T, bool) {
	return o.value, o.ok
}

// Eval returns the value or calls out.Fatal.
func (o Option[T]) Eval() T {
	return o.EvalWith(nil)
}

// EvalWith is Eval reporting through rep; nil means out.Default().
func (o Option[T]) EvalWith(rep *out.Reporter) T {
	if o.ok {
		return o.value
	}
	reporter(rep).Fatal("called Option.Eval() on a None value")
	panic("unreachable")
}

func (o Option[T]) EvalOr(sub T) T {
	if o.ok {
		return o.value
	}
	return sub
}

func (o Option[T]) EvalOrDefault() T {
	if o.ok {
		return o.value
	}
	var zero T
	return zero
}

// EvalOrElse returns the value, or calls fn once and returns its result.
func (o Option[T]) EvalOrElse(fn func() T) T {
	if o.ok {
		return o.value
	}
	return fn()
}

// Should returns the value or calls out.Fatal with msg.
func (o Option[T]) Should(msg any) T {
	return o.ShouldWith(nil, msg)
}

func (o Option[T]) ShouldWith(rep *out.Reporter, msg any) T {
	if o.ok {
		return o.value
	}
	reporter(rep).Fatal(fmt.Sprint(msg))
	panic("unreachable")
}

func (o Option[T]) String() string {
	if !o.ok {
		return "None"
	}
	return fmt.Sprintf("Some(%v)", o.value)
}
