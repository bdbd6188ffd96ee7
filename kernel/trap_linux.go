//go:build linux && (amd64 || arm64)

package kernel

import (
	"github.com/beanstalk-lang/librt"
	"golang.org/x/sys/unix"
)

type hostTrap struct{}

func newHostTrap() (librt.Trap, error) {
	return hostTrap{}, nil
}

func (hostTrap) Invoke(nr librt.NR, a1, a2, a3 uintptr) (uintptr, librt.Errno) {
	r1, _, errno := unix.RawSyscall(uintptr(nr), a1, a2, a3)
	return r1, librt.Errno(errno)
}

func (hostTrap) Exit(status int32) {
	// exit_group destroys the process; the loop is unreachable.
	for {
		unix.RawSyscall(uintptr(librt.NR_exit_group), uintptr(status), 0, 0)
	}
}
