// This file is part of Gopher1626.
//
// Gopher1626 is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Gopher1626 is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Gopher1626.  If not, see <https://www.gnu.org/licenses/>.

package storage

import (
	"sync/atomic"

	"github.com/jetsetilly/gopher1626/curated"
)

// RegionBorrowed is the sentinel error pattern returned when a region is
// accessed in a way that conflicts with an existing borrow.
const RegionBorrowed = "storage: region borrowed: %s"

// Loadable is implemented by storage that can be initialised with a block of
// data, regardless of whether the storage is read-only.
type Loadable interface {
	Load(offset uint16, data []uint8) error
}

// values for the borrow field of the Shared type. positive values count the
// number of active readers
const (
	unborrowed = 0
	exclusive  = -1
)

// Shared wraps a Storage implementation so that it can be held by more than
// one owner. Every access is a borrow for the duration of the call: reads
// take a shared borrow and writes take an exclusive borrow. An access that
// conflicts with a borrow that is already active fails immediately, leaving
// the storage untouched.
//
// In a single threaded emulation a conflict can only happen through
// re-entrancy, for example a storage implementation whose Write() function
// eventually writes back to itself.
type Shared struct {
	label  string
	store  Storage
	borrow atomic.Int32
}

// NewShared is the preferred method of initialisation for the Shared type.
// The label is used in error messages.
func NewShared(label string, store Storage) *Shared {
	return &Shared{
		label: label,
		store: store,
	}
}

func (sh *Shared) String() string {
	return sh.label
}

// Label returns the label given to the shared region.
func (sh *Shared) Label() string {
	return sh.label
}

func (sh *Shared) acquireRead() bool {
	for {
		b := sh.borrow.Load()
		if b == exclusive {
			return false
		}
		if sh.borrow.CompareAndSwap(b, b+1) {
			return true
		}
	}
}

func (sh *Shared) releaseRead() {
	sh.borrow.Add(-1)
}

func (sh *Shared) acquireWrite() bool {
	return sh.borrow.CompareAndSwap(unborrowed, exclusive)
}

func (sh *Shared) releaseWrite() {
	sh.borrow.Store(unborrowed)
}

// Read implements the Storage interface. If the region is exclusively
// borrowed the read fails and returns a zero value and a validity flag of
// false.
func (sh *Shared) Read(offset uint16) (uint8, bool) {
	if !sh.acquireRead() {
		return 0, false
	}
	defer sh.releaseRead()
	return sh.store.Read(offset)
}

// Write implements the Storage interface.
func (sh *Shared) Write(offset uint16, data uint8) error {
	if !sh.acquireWrite() {
		return curated.Errorf(RegionBorrowed, sh.label)
	}
	defer sh.releaseWrite()
	return sh.store.Write(offset, data)
}

// Size implements the Storage interface.
func (sh *Shared) Size() int {
	return sh.store.Size()
}

// Borrow gives the function exclusive access to the underlying storage for
// the duration of the call. Any access to the Shared instance from inside
// the function will fail.
func (sh *Shared) Borrow(f func(Storage) error) error {
	if !sh.acquireWrite() {
		return curated.Errorf(RegionBorrowed, sh.label)
	}
	defer sh.releaseWrite()
	return f(sh.store)
}

// BorrowRead gives the function shared access to the underlying storage for
// the duration of the call. Reads of the Shared instance from inside the
// function will succeed but writes will fail.
func (sh *Shared) BorrowRead(f func(Storage) error) error {
	if !sh.acquireRead() {
		return curated.Errorf(RegionBorrowed, sh.label)
	}
	defer sh.releaseRead()
	return f(sh.store)
}

// Load implements the Loadable interface. The underlying storage must also
// implement Loadable.
func (sh *Shared) Load(offset uint16, data []uint8) error {
	return sh.Borrow(func(s Storage) error {
		l, ok := s.(Loadable)
		if !ok {
			return curated.Errorf("storage: %s: cannot be loaded", sh.label)
		}
		return l.Load(offset, data)
	})
}
