package eval

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ib-77/infoutils/pkg/out"
)

type pair[T any] struct {
	value T
	err   error
}

func (p pair[T]) Get() (T, error) { return p.value, p.err }

type cancelled[T any] struct{ pair[T] }

func (cancelled[T]) IsCancel() bool { return true }

func TestResult_Success(t *testing.T) {
	t.Parallel()

	calls := 0
	fallback := func(error) uint16 {
		calls++
		return 0
	}

	r := Success[uint16](7)
	assert.True(t, r.IsSuccess())
	assert.False(t, r.IsFailure())
	assert.NoError(t, r.Err())
	assert.Equal(t, uint16(7), r.Eval())
	assert.Equal(t, uint16(7), r.EvalOr(3))
	assert.Equal(t, uint16(7), r.EvalOrDefault())
	assert.Equal(t, uint16(7), r.EvalOrElse(fallback))
	assert.Equal(t, uint16(7), r.Should("Should be set in initializer"))
	assert.Zero(t, calls)
}

func TestResult_EvalOr(t *testing.T) {
	t.Parallel()

	r := Fail[uint16](errors.New("error"))
	assert.Equal(t, uint16(3), r.EvalOr(3))
	assert.Equal(t, uint16(0), r.EvalOrDefault())
}

func TestResult_EvalOrElse(t *testing.T) {
	t.Parallel()

	boom := errors.New("boom")
	var seen error
	calls := 0

	got := Fail[int](boom).EvalOrElse(func(err error) int {
		calls++
		seen = err
		return len(err.Error())
	})

	assert.Equal(t, 4, got)
	assert.Equal(t, 1, calls)
	assert.Same(t, boom, seen)
}

func TestResult_NilErrorIsStillFailure(t *testing.T) {
	t.Parallel()

	r := Fail[int](nil)
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrNoValue)

	c := Cancel[int](nil)
	assert.True(t, c.IsCancel())
	assert.ErrorIs(t, c.Err(), ErrNoValue)
}

func TestFromPair(t *testing.T) {
	t.Parallel()

	n, err := strconv.Atoi("12")
	assert.Equal(t, Success(12), FromPair(n, err))

	n, err = strconv.Atoi("x")
	r := FromPair(n, err)
	assert.True(t, r.IsFailure())
	assert.False(t, r.IsCancel())
	assert.Equal(t, 0, r.EvalOrDefault())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	c := FromPair(0, fmt.Errorf("fetch: %w", ctx.Err()))
	assert.True(t, c.IsCancel())
	assert.ErrorIs(t, c.Err(), context.Canceled)
}

func TestFromFallible(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Success("ok"), FromFallible[string](pair[string]{value: "ok"}))

	failed := FromFallible[string](pair[string]{err: errors.New("nope")})
	assert.True(t, failed.IsFailure())
	assert.EqualError(t, failed.Err(), "nope")

	c := FromFallible[int](cancelled[int]{pair[int]{err: errors.New("stopped")}})
	assert.True(t, c.IsCancel())

	assert.ErrorIs(t, FromFallible[int](nil).Err(), ErrNoValue)
}

func TestResult_Option(t *testing.T) {
	t.Parallel()

	assert.Equal(t, Some(1), Success(1).Option())
	assert.True(t, Fail[int](errors.New("x")).Option().IsNone())
}

func TestResult_Eval_Failure(t *testing.T) {
	buf := useAbortReporter(t)

	reached := false
	u := out.Go("", func(*out.Reporter) {
		Fail[int](errors.New("disk full")).Eval()
		reached = true
	})

	require.True(t, u.Aborted())
	assert.False(t, reached)
	assert.Equal(t, "error called Result.Eval() on a failed value: disk full\n", buf.String())
}

func TestResult_Eval_Cancelled(t *testing.T) {
	buf := useAbortReporter(t)

	u := out.Go("", func(*out.Reporter) {
		Cancel[int](context.Canceled).Eval()
	})

	require.True(t, u.Aborted())
	assert.Equal(t, "error called Result.Eval() on a cancelled value: context canceled\n", buf.String())
}

func TestResult_Should_Failure(t *testing.T) {
	buf := useAbortReporter(t)

	u := out.Go("", func(*out.Reporter) {
		Fail[int](errors.New("missing key")).Should("config must be loaded")
	})

	require.True(t, u.Aborted())
	assert.Equal(t, "error config must be loaded. Error: missing key\n", buf.String())
}

func TestMust(t *testing.T) {
	buf := useAbortReporter(t)

	assert.Equal(t, 12, Must(strconv.Atoi("12")))

	u := out.Go("", func(*out.Reporter) { Must(strconv.Atoi("twelve")) })
	require.True(t, u.Aborted())
	assert.Contains(t, buf.String(), "called Result.Eval() on a failed value")
	assert.Contains(t, buf.String(), "invalid syntax")
}

func TestEval_SiblingUnaffected(t *testing.T) {
	buf := useAbortReporter(t)

	ticks := make(chan int)
	sibling := out.Go("sibling", func(r *out.Reporter) {
		for i := range ticks {
			r.Infof("tick %d", i)
		}
	})

	victim := out.Go("victim", func(*out.Reporter) { None[int]().Eval() })
	require.True(t, victim.Aborted())

	ticks <- 1
	ticks <- 2
	close(ticks)
	sibling.Wait()

	assert.False(t, sibling.Aborted())
	assert.Nil(t, sibling.Fault())
	assert.Equal(t,
		"error called Option.Eval() on a None value\ninfo [sibling] tick 1\ninfo [sibling] tick 2\n",
		buf.String())
}

func TestResult_ZeroValue(t *testing.T) {
	t.Parallel()

	var r Result[int]
	assert.True(t, r.IsFailure())
	assert.ErrorIs(t, r.Err(), ErrNoValue)

	_, err := r.Get()
	assert.ErrorIs(t, err, ErrNoValue)

	var seen error
	assert.Equal(t, -1, r.EvalOrElse(func(err error) int {
		seen = err
		return -1
	}))
	assert.ErrorIs(t, seen, ErrNoValue)
}

func TestResult_ZeroValue_Eval(t *testing.T) {
	buf := useAbortReporter(t)

	u := out.Go("", func(*out.Reporter) { Result[int]{}.Eval() })

	require.True(t, u.Aborted())
	assert.Equal(t, "error called Result.Eval() on a failed value: eval: no value\n", buf.String())
}

func TestResult_ShouldWith_KeepsUnitName(t *testing.T) {
	buf := useAbortReporter(t)

	u := out.Go("worker", func(r *out.Reporter) {
		Fail[int](errors.New("missing key")).ShouldWith(r, "config must be loaded")
	})

	require.True(t, u.Aborted())
	assert.Equal(t, "error [worker] config must be loaded. Error: missing key\n", buf.String())
}
