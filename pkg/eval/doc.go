// Package eval contains Option[T] and Result[T] together with accessors that
// extract the held value or apply a fallback:
//
//   - Eval: the value, or a fatal error through out.Default()
//   - EvalOr: the value, or a substitute
//   - EvalOrDefault: the value, or the zero value of T
//   - EvalOrElse: the value, or the result of a lazily called function
//   - Should: the value, or a fatal error with a caller message
//
// Eval and Should never panic on their own: whether the failure path exits
// the process or only ends the calling goroutine is decided by the Mode of
// the default out.Reporter.
package eval
