// Package procx exposes process-scoped facts about the running program.
//
// Its single concern today is the root of the process tree the program runs
// in: the topmost ancestor that can still be resolved. The walk is done once
// per process and memoized; every caller observes the identical value.
package procx

import (
	"os"
	"sync/atomic"

	"github.com/Abraxas-365/corekit/pkg/errx"
	"github.com/Abraxas-365/corekit/pkg/lazyx"
	"github.com/Abraxas-365/corekit/pkg/logx"
	"github.com/shirou/gopsutil/v4/process"
)

var log = logx.Named("procx")

// maxDepth bounds the ancestry walk; no sane process tree is this deep.
const maxDepth = 512

// root holds the process-wide memoized slot. It is swappable only so tests
// can Reset it; production code sees a stable singleton.
var root atomic.Pointer[lazyx.Supplier[*process.Process]]

func init() {
	Reset()
}

// Root returns the topmost resolvable ancestor of the current process.
// The walk runs once per process; subsequent calls return the same value.
func Root() *process.Process {
	return root.Load().Get()
}

// RootPid returns the pid of the process-tree root.
func RootPid() int32 {
	return Root().Pid
}

// Reset reinstalls the memoized slot so the next Root call recomputes.
// Intended for tests.
func Reset() {
	root.Store(lazyx.Memoize(findRoot))
}

func findRoot() *process.Process {
	self, err := process.NewProcess(int32(os.Getpid()))
	if err != nil {
		// The current process always exists; failing to resolve it means
		// the platform lookup itself is broken.
		panic(errx.Wrap(err, "procx: cannot resolve current process", errx.TypeInternal))
	}

	p := self
	for depth := 0; depth < maxDepth; depth++ {
		parent, err := p.Parent()
		if err != nil || parent == nil || parent.Pid == p.Pid || parent.Pid <= 0 {
			break
		}
		p = parent
	}

	log.WithField("root_pid", p.Pid).Debug("resolved process-tree root")
	return p
}
