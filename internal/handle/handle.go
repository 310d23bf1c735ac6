// ©Hayabusa Cloud Co., Ltd. 2026. All rights reserved.
// Use of this source code is governed by a MIT-style
// license that can be found in the LICENSE file.

// Package handle implements the integer handle table that backs the public
// dill.Handle type: a small int64 stands in for a *dill.Endpoint so the
// rest of the package can expose query/close/done operations by value
// instead of by pointer. The table itself is a concurrent map in the style
// of hsfzxjy-dgo's go/pin/table.go.
package handle

import (
	"errors"
	"sync/atomic"

	"github.com/puzpuzpuz/xsync/v2"
)

// ErrNotFound is returned by Query, Close and Done when a Handle does not
// resolve to any currently-registered object.
var ErrNotFound = errors.New("handle: not found")

// Handle is an opaque reference to a registered VFS. The zero Handle never
// refers to a live object.
type Handle int64

// VFS is the minimal virtual file system contract a registered object must
// satisfy: query a typed token, tear down, or poison one direction. dill's
// *Endpoint implements this directly.
type VFS interface {
	// Query resolves token to an implementation-defined value, or returns
	// an error if this object doesn't support it.
	Query(token any) (any, error)
	// Close releases the object and removes it from the table.
	Close()
	// Done poisons the object without removing it from the table.
	Done() error
}

type table struct {
	m    *xsync.MapOf[int64, VFS]
	next atomic.Int64
}

var t table

func init() {
	t.m = xsync.NewIntegerMapOf[int64, VFS]()
}

// Make registers vfs under a freshly allocated Handle.
func Make(vfs VFS) Handle {
	id := t.next.Add(1)
	t.m.Store(id, vfs)
	return Handle(id)
}

// Query resolves h to its registered VFS and forwards token to its Query
// method. It returns ErrNotFound if h is unknown.
func Query(h Handle, token any) (any, error) {
	vfs, ok := t.m.Load(int64(h))
	if !ok {
		return nil, ErrNotFound
	}
	return vfs.Query(token)
}

// Lookup resolves h to its registered VFS directly, without going through
// Query's token indirection. It returns ErrNotFound if h is unknown.
func Lookup(h Handle) (VFS, error) {
	vfs, ok := t.m.Load(int64(h))
	if !ok {
		return nil, ErrNotFound
	}
	return vfs, nil
}

// Close removes h from the table and closes its VFS. It returns
// ErrNotFound if h is unknown.
func Close(h Handle) error {
	vfs, ok := t.m.LoadAndDelete(int64(h))
	if !ok {
		return ErrNotFound
	}
	vfs.Close()
	return nil
}

// Remove deletes h from the table without invoking its VFS's Close
// method. It exists for a VFS implementation whose own Close method is
// already performing teardown and only needs to deregister itself,
// avoiding the Close-calls-Close recursion that calling package-level
// Close from inside a VFS's own Close method would cause.
func Remove(h Handle) {
	t.m.Delete(int64(h))
}

// Done poisons h's VFS without removing it from the table. It returns
// ErrNotFound if h is unknown.
func Done(h Handle) error {
	vfs, ok := t.m.Load(int64(h))
	if !ok {
		return ErrNotFound
	}
	return vfs.Done()
}
