//go:build !wasm

package internal

import (
	"sync"

	"github.com/petermattis/goid"
)

var runtimes sync.Map

// GetRuntime returns the runtime of the calling goroutine, creating it if needed.
func GetRuntime() *Runtime {
	gid := getGID()

	if r, ok := runtimes.Load(gid); ok {
		return r.(*Runtime)
	}

	r := NewRuntime()
	runtimes.Store(gid, r)
	return r
}

// LookupRuntime returns the runtime of the calling goroutine without creating one.
func LookupRuntime() (*Runtime, bool) {
	r, ok := runtimes.Load(getGID())
	if !ok {
		return nil, false
	}

	return r.(*Runtime), true
}

// ReleaseRuntime forgets the runtime of the calling goroutine.
// It is a no-op while an invocation is running on it.
func ReleaseRuntime() bool {
	gid := getGID()

	r, ok := runtimes.Load(gid)
	if !ok || r.(*Runtime).Busy() {
		return false
	}

	runtimes.Delete(gid)
	return true
}

func getGID() int64 {
	return goid.Get()
}
