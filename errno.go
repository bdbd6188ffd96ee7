package librt

import "strconv"

// Errno is a kernel error code as reported by the trap.
type Errno int32

const (
	EPERM  Errno = 1
	ENOENT Errno = 2
	EINTR  Errno = 4
	EIO    Errno = 5
	EBADF  Errno = 9
	EAGAIN Errno = 11
	ENOMEM Errno = 12
	EACCES Errno = 13
	EFAULT Errno = 14
	EINVAL Errno = 22
	ENOSPC Errno = 28
	EPIPE  Errno = 32
	ENOSYS Errno = 38
)

var errnoNames = map[Errno]string{
	EPERM:  "EPERM",
	ENOENT: "ENOENT",
	EINTR:  "EINTR",
	EIO:    "EIO",
	EBADF:  "EBADF",
	EAGAIN: "EAGAIN",
	ENOMEM: "ENOMEM",
	EACCES: "EACCES",
	EFAULT: "EFAULT",
	EINVAL: "EINVAL",
	ENOSPC: "ENOSPC",
	EPIPE:  "EPIPE",
	ENOSYS: "ENOSYS",
}

func (e Errno) String() string {
	if name, ok := errnoNames[e]; ok {
		return name
	}
	return "errno " + strconv.Itoa(int(e))
}

func (e Errno) Error() string {
	return e.String()
}
