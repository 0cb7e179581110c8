package out

import (
	"runtime/debug"

	"github.com/google/uuid"
)

// Unit is a goroutine started by Reporter.Go.
type Unit struct {
	id      uuid.UUID
	name    string
	done    chan struct{}
	aborted bool
	fault   any
}

// Go runs fn in a new goroutine with a reporter named name.
//
// A panic in fn is recovered and printed with the error tag unless the
// suppression latch is set. runtime.Goexit in fn, which is what Abort and
// Fatal in ModeAbort do, marks the unit aborted. Neither affects other
// goroutines.
func (r *Reporter) Go(name string, fn func(r *Reporter)) *Unit {
	u := &Unit{
		id:   uuid.New(),
		name: name,
		done: make(chan struct{}),
	}

	go u.run(r.Named(name), fn)

	return u
}

func (u *Unit) run(r *Reporter, fn func(r *Reporter)) {
	returned := false

	defer close(u.done)
	defer func() {
		if returned {
			return
		}

		// recover yields nil only when fn left through runtime.Goexit.
		if v := recover(); v != nil {
			u.fault = v
			if !Silenced() {
				r.Errorf("unit %s panicked: %v\n%s", u.id, v, debug.Stack())
			}
			return
		}
		u.aborted = true
	}()

	fn(r)
	returned = true
}

func (u *Unit) ID() uuid.UUID {
	return u.id
}

// Name returns the unit name, or "<unknown>" when none was given.
func (u *Unit) Name() string {
	if u.name == "" {
		return unknownName
	}
	return u.name
}

func (u *Unit) Done() <-chan struct{} {
	return u.done
}

// Wait blocks until the unit's goroutine has ended.
func (u *Unit) Wait() {
	<-u.done
}

// Aborted waits for the unit and reports whether it ended through
// runtime.Goexit.
func (u *Unit) Aborted() bool {
	<-u.done
	return u.aborted
}

// Fault waits for the unit and returns the recovered panic value, if any.
func (u *Unit) Fault() any {
	<-u.done
	return u.fault
}
