package errx

// Adapters between the error-return world and the panic world.
//
// A returned error is the recoverable ("checked") failure channel; a panic is
// the unrecoverable ("unchecked") one. MustCall bridges the two: it runs a
// fallible computation in a context where the caller cannot handle errors,
// converting any returned error into a single well-known panic value while
// letting panics raised by the computation itself travel through untouched.

// CodeUnchecked is the code carried by errors produced by Uncheck.
const CodeUnchecked = "UNCHECKED"

// Uncheck wraps err into an internal *Error suitable for panicking with.
// The original error stays reachable through errors.Is / errors.As.
// Returns nil if err is nil.
func Uncheck(err error) *Error {
	if err == nil {
		return nil
	}
	return &Error{
		Code:    CodeUnchecked,
		Message: "unchecked failure",
		Type:    TypeInternal,
		Err:     err,
	}
}

// MustCall invokes fn once and returns its value.
// If fn returns an error, MustCall panics with Uncheck(err).
// If fn panics, the panic propagates unchanged.
func MustCall[T any](fn func() (T, error)) T {
	v, err := fn()
	if err != nil {
		panic(Uncheck(err))
	}
	return v
}

// MustRun invokes fn once, panicking with Uncheck(err) if it fails.
func MustRun(fn func() error) {
	if err := fn(); err != nil {
		panic(Uncheck(err))
	}
}

// Must unwraps a (value, error) pair, panicking with Uncheck(err) on failure.
// Handy for wrapping constructor calls whose failure is a programmer error.
func Must[T any](v T, err error) T {
	if err != nil {
		panic(Uncheck(err))
	}
	return v
}
