// Package host exposes the environment features the runtime shim leaves to
// collaborators: wall-clock time, a host resource snapshot, and console
// code-page control. The gateway and formatter never import this package.
package host

import (
	"time"

	pshost "github.com/shirou/gopsutil/v4/host"
	"github.com/shirou/gopsutil/v4/mem"
	"github.com/shirou/gopsutil/v4/process"
)

// Now returns wall-clock seconds since the Unix epoch.
func Now() int64 {
	return time.Now().Unix()
}

type Info struct {
	Uptime    uint64
	TotalRAM  uint64
	FreeRAM   uint64
	SharedRAM uint64
	BufferRAM uint64
	TotalSwap uint64
	FreeSwap  uint64
	Procs     uint16
}

func ReadInfo() (Info, error) {
	uptime, err := pshost.Uptime()
	if err != nil {
		return Info{}, err
	}
	vm, err := mem.VirtualMemory()
	if err != nil {
		return Info{}, err
	}
	sm, err := mem.SwapMemory()
	if err != nil {
		return Info{}, err
	}
	pids, err := process.Pids()
	if err != nil {
		return Info{}, err
	}
	return Info{
		Uptime:    uptime,
		TotalRAM:  vm.Total,
		FreeRAM:   vm.Free,
		SharedRAM: vm.Shared,
		BufferRAM: vm.Buffers,
		TotalSwap: sm.Total,
		FreeSwap:  sm.Free,
		Procs:     uint16(len(pids)),
	}, nil
}
