package forth

import "fmt"

// haltError wraps any error that should stop the engine's run loop.
// Internal code calls halt(err), which panics with haltError{err}; Run
// recovers exactly one haltError and returns err unwrapped.
type haltError struct{ err error }

func (he haltError) Error() string { return he.err.Error() }
func (he haltError) Unwrap() error { return he.err }

// halt stops the engine immediately by panicking with a haltError. Called
// from primitive implementations and from the REPL; never from ordinary
// control flow.
func (e *Engine) halt(err error) {
	if err == nil {
		err = errHalt
	}
	panic(haltError{err})
}

func (e *Engine) haltf(format string, args ...interface{}) {
	e.halt(fmt.Errorf(format, args...))
}

var errHalt = fmt.Errorf("halt")

type stackUnderflowError struct{ stack string }

func (e stackUnderflowError) Error() string { return e.stack + " stack underflow" }

type stackOverflowError struct{ stack string }

func (e stackOverflowError) Error() string { return e.stack + " stack overflow" }

type arenaExhaustedError struct{ want, limit Addr }

func (e arenaExhaustedError) Error() string {
	return fmt.Sprintf("dictionary arena exhausted: need %d cells, limit %d", e.want, e.limit)
}

type unknownWordError struct{ token string }

func (e unknownWordError) Error() string { return fmt.Sprintf("failed to find %s", e.token) }

type stateError struct{ mess string }

func (e stateError) Error() string { return e.mess }

type tokenTooLongError struct{ partial string }

func (e tokenTooLongError) Error() string {
	return fmt.Sprintf("token too long: %q...", e.partial)
}

// errExplicit is the error produced by the `error` primitive: an
// unconditional, process-terminating failure.
type errExplicit struct{ mess string }

func (e errExplicit) Error() string {
	if e.mess == "" {
		return "error"
	}
	return e.mess
}
