package librt

// NR is a kernel request number under the build platform's ABI.
type NR uint64

// Trap issues one kernel request using the machine calling convention.
// Implementations are selected per GOOS/GOARCH at build time; tests inject
// recording stubs.
type Trap interface {
	// Invoke traps into the kernel with up to three arguments. A nonzero
	// errno means the kernel rejected the request.
	Invoke(nr NR, a1, a2, a3 uintptr) (uintptr, Errno)

	// Exit requests process destruction. It does not return.
	Exit(status int32)
}
