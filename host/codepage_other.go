//go:build !windows

package host

import "errors"

func SetConsoleOutputCP(codePage uint32) error {
	return errors.ErrUnsupported
}

func GetConsoleOutputCP() (uint32, error) {
	return 0, errors.ErrUnsupported
}
