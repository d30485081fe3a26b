package throw

import "github.com/pkg/errors"

// Threading errors through every ring update in the kernel would add a lot of
// noise for conditions that only occur when an internal invariant is broken.
// Instead, we panic with a KernelError, and the public API recovers it.

// A KernelError wraps the error passed to Fatalf, so that runtime panics are
// never mistaken for one.
type KernelError struct {
	error
}

// Panic with a KernelError.
func Fatalf(format string, args ...interface{}) {
	panic(KernelError{errors.Errorf(format, args...)})
}

// Convert a value recovered from a Fatalf panic into an error. Any other panic
// is re-raised.
func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(KernelError); ok {
			return kernelError.error
		}
		panic(r)
	}
	return nil
}
