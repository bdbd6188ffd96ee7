// Package librt defines the contracts of a freestanding runtime shim: the
// syscall gateway, the architecture trap capability, and the error values
// both report.
package librt

// Well-known console descriptors supplied by the hosting environment.
const (
	Stdout int32 = 1
	Stderr int32 = 2
)

// Gateway is the only path to the kernel. Every call issues at most one
// kernel request and reports any failure to the immediate caller; the
// gateway never retries, never buffers, and never logs.
//
// Interleaved writes from concurrent callers are not serialized here.
// Callers sharing a descriptor across goroutines must wrap the gateway in
// their own lock.
type Gateway interface {
	// RawWrite writes length bytes of buf to the descriptor and returns
	// the number of bytes the kernel accepted, which may be less than
	// length. Precondition violations are reported without touching the
	// kernel: ErrInvalidDescriptor, ErrNullBuffer, ErrNegativeLength.
	// A kernel-reported failure surfaces as *KernelError.
	RawWrite(fd int32, buf []byte, length int32) (int32, error)

	// Terminate destroys the process with the given status. It does not
	// return.
	Terminate(status int32)
}
