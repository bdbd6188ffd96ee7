// Package kernel implements the syscall gateway over the platform trap.
package kernel

import (
	"runtime"
	"unsafe"

	"github.com/beanstalk-lang/librt"
)

type Kernel struct {
	trap librt.Trap
}

// NewKernel builds a gateway over the host trap. Platforms without a trap
// implementation report errors.ErrUnsupported.
func NewKernel() (*Kernel, error) {
	trap, err := newHostTrap()
	if err != nil {
		return nil, err
	}
	return &Kernel{trap: trap}, nil
}

// NewKernelTrap builds a gateway over an injected trap.
func NewKernelTrap(trap librt.Trap) *Kernel {
	return &Kernel{trap: trap}
}

// RawWrite checks the call contract, then issues exactly one write trap.
// A violated precondition returns before the kernel is involved.
func (k *Kernel) RawWrite(fd int32, buf []byte, length int32) (int32, error) {
	if fd == -1 {
		return 0, librt.ErrInvalidDescriptor
	}
	if length < 0 {
		return 0, librt.ErrNegativeLength
	}
	if length > 0 && len(buf) < int(length) {
		return 0, librt.ErrNullBuffer
	}
	var ptr unsafe.Pointer
	if length > 0 {
		ptr = unsafe.Pointer(&buf[0])
	}
	r, errno := k.trap.Invoke(librt.NR_write, uintptr(fd), uintptr(ptr), uintptr(length))
	runtime.KeepAlive(buf)
	if errno != 0 {
		return 0, &librt.KernelError{Errno: errno}
	}
	return int32(r), nil
}

func (k *Kernel) Terminate(status int32) {
	k.trap.Exit(status)
}
