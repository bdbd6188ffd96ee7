//go:build !linux || (!amd64 && !arm64)

package kernel

import (
	"errors"

	"github.com/beanstalk-lang/librt"
)

func newHostTrap() (librt.Trap, error) {
	return nil, errors.ErrUnsupported
}
