//go:build windows

package host

import "golang.org/x/sys/windows"

var (
	kernel32               = windows.NewLazySystemDLL("kernel32.dll")
	procSetConsoleOutputCP = kernel32.NewProc("SetConsoleOutputCP")
	procGetConsoleOutputCP = kernel32.NewProc("GetConsoleOutputCP")
)

func SetConsoleOutputCP(codePage uint32) error {
	r, _, err := procSetConsoleOutputCP.Call(uintptr(codePage))
	if r == 0 {
		return err
	}
	return nil
}

func GetConsoleOutputCP() (uint32, error) {
	r, _, err := procGetConsoleOutputCP.Call()
	if r == 0 {
		return 0, err
	}
	return uint32(r), nil
}
