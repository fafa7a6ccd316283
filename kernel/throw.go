package kernel

import "github.com/pkg/errors"

// Validation failures are raised as panics so the algorithms don't have to
// thread error returns through every internal helper. The public facade in the
// root package recovers and converts them back to ordinary errors.

type KernelError error

// Panic with a KernelError.
func fatalf(format string, args ...interface{}) {
	panic(KernelError(errors.Errorf(format, args...)))
}

func HandleKernelPanicRecover(r interface{}) error {
	if r != nil {
		if kernelError, ok := r.(KernelError); ok {
			return kernelError
		}
		panic(r)
	}
	return nil
}
