package trace_test

import (
	"bytes"
	"testing"

	"github.com/hashicorp/go-hclog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beanstalk-lang/librt"
	"github.com/beanstalk-lang/librt/trace"
)

type fakeGateway struct {
	writes int
	fd     int32
	length int32
	err    error
	exits  []int32
}

func (g *fakeGateway) RawWrite(fd int32, buf []byte, length int32) (int32, error) {
	g.writes++
	g.fd = fd
	g.length = length
	if g.err != nil {
		return 0, g.err
	}
	return length, nil
}

func (g *fakeGateway) Terminate(status int32) {
	g.exits = append(g.exits, status)
}

func TestWrapDelegatesAndLogs(t *testing.T) {
	var out bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Level: hclog.Trace, Output: &out})
	next := &fakeGateway{}
	gw := trace.Wrap(next, log)

	n, err := gw.RawWrite(librt.Stdout, []byte("42"), 2)
	require.NoError(t, err)
	assert.Equal(t, int32(2), n)
	assert.Equal(t, 1, next.writes)
	assert.Equal(t, librt.Stdout, next.fd)
	assert.Contains(t, out.String(), "write")
	assert.Contains(t, out.String(), "fd=1")
}

func TestWrapLogsFailure(t *testing.T) {
	var out bytes.Buffer
	log := hclog.New(&hclog.LoggerOptions{Level: hclog.Debug, Output: &out})
	next := &fakeGateway{err: librt.ErrInvalidDescriptor}
	gw := trace.Wrap(next, log)

	_, err := gw.RawWrite(-1, nil, 0)
	assert.ErrorIs(t, err, librt.ErrInvalidDescriptor)
	assert.Contains(t, out.String(), "invalid descriptor")
}

func TestWrapNilLogger(t *testing.T) {
	next := &fakeGateway{}
	gw := trace.Wrap(next, nil)

	_, err := gw.RawWrite(librt.Stdout, []byte("x"), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, next.writes)
}

func TestWrapTerminate(t *testing.T) {
	next := &fakeGateway{}
	gw := trace.Wrap(next, hclog.NewNullLogger())

	gw.Terminate(3)
	assert.Equal(t, []int32{3}, next.exits)
}
