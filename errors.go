package librt

import (
	"errors"
	"strconv"
)

// Precondition violations, detected at the gateway before any kernel call.
var (
	ErrInvalidDescriptor = errors.New("invalid descriptor")
	ErrNullBuffer        = errors.New("null buffer")
	ErrNegativeLength    = errors.New("negative length")
)

// KernelError reports a request the kernel rejected. The errno is carried
// as-is; this layer does not decode it further.
type KernelError struct {
	Errno Errno
}

func (e *KernelError) Error() string {
	return "kernel rejected: " + e.Errno.String()
}

// PartialWriteError reports a write that moved fewer bytes than requested.
// Retrying with the remainder is the caller's decision.
type PartialWriteError struct {
	Requested int32
	Written   int32
}

func (e *PartialWriteError) Error() string {
	return "partial write: " + strconv.Itoa(int(e.Written)) +
		" of " + strconv.Itoa(int(e.Requested)) + " bytes"
}
