// Package trace decorates a gateway with structured call logging. The
// wrapped gateway stays silent by contract; every log line originates here.
package trace

import (
	"github.com/hashicorp/go-hclog"

	"github.com/beanstalk-lang/librt"
)

type Gateway struct {
	next librt.Gateway
	log  hclog.Logger
}

func Wrap(next librt.Gateway, log hclog.Logger) *Gateway {
	if log == nil {
		log = hclog.NewNullLogger()
	}
	return &Gateway{next: next, log: log}
}

func (g *Gateway) RawWrite(fd int32, buf []byte, length int32) (int32, error) {
	n, err := g.next.RawWrite(fd, buf, length)
	if err != nil {
		g.log.Debug("write", "fd", fd, "len", length, "err", err)
		return n, err
	}
	g.log.Trace("write", "fd", fd, "len", length, "n", n)
	return n, nil
}

func (g *Gateway) Terminate(status int32) {
	g.log.Debug("exit", "status", status)
	g.next.Terminate(status)
}
