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

package addrspace

import (
	"fmt"
	"sort"
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/hardware/memory/storage"
)

// Sentinel error patterns.
const (
	MappingConflict = "addrspace: mapping conflict: %s (%#04x -> %#04x) overlaps %s (%#04x -> %#04x)"
	UnmappedAccess  = "addrspace: unmapped access: %#04x"
	InvalidMapping  = "addrspace: invalid mapping: %s: %s"
)

// BusDefault is the value returned when reading an address that has no owner.
const BusDefault = uint8(0x00)

// Mapping is a single entry in the address space.
type Mapping struct {
	Label  string
	Origin uint16
	Memtop uint16
	Region storage.Storage
}

func (m Mapping) String() string {
	return fmt.Sprintf("%04x -> %04x\t%s", m.Origin, m.Memtop, m.Label)
}

// Contains returns true if the address is inside the mapping.
func (m Mapping) Contains(address uint16) bool {
	return address >= m.Origin && address <= m.Memtop
}

// Overlaps returns true if any address is inside both mappings.
func (m Mapping) Overlaps(o Mapping) bool {
	return m.Origin <= o.Memtop && m.Memtop >= o.Origin
}

// Space is an ordered list of mappings.
type Space struct {
	label    string
	mappings []Mapping
}

// NewSpace is the preferred method of initialisation for the Space type.
func NewSpace(label string) *Space {
	return &Space{
		label: label,
	}
}

func (sp *Space) String() string {
	return sp.label
}

func (sp *Space) mapping(origin uint16, label string, region storage.Storage) (Mapping, error) {
	if region == nil {
		return Mapping{}, curated.Errorf(InvalidMapping, label, "nil region")
	}

	size := region.Size()
	if size <= 0 {
		return Mapping{}, curated.Errorf(InvalidMapping, label, "zero size")
	}
	if int(origin)+size > 0x10000 {
		return Mapping{}, curated.Errorf(InvalidMapping, label, "extends beyond top of address space")
	}

	return Mapping{
		Label:  label,
		Origin: origin,
		Memtop: uint16(int(origin) + size - 1),
		Region: region,
	}, nil
}

// Add registers the region at the origin address. The region will not be
// registered if it overlaps with an existing mapping.
func (sp *Space) Add(origin uint16, label string, region storage.Storage) error {
	m, err := sp.mapping(origin, label, region)
	if err != nil {
		return err
	}

	for _, e := range sp.mappings {
		if m.Overlaps(e) {
			return curated.Errorf(MappingConflict, m.Label, m.Origin, m.Memtop, e.Label, e.Origin, e.Memtop)
		}
	}

	sp.mappings = append(sp.mappings, m)
	return nil
}

// AddUnchecked registers the region at the origin address even if it overlaps
// with an existing mapping. An address in the overlapping area continues to
// be owned by the earliest registered mapping.
//
// Use Validate() to find overlaps after using this function.
func (sp *Space) AddUnchecked(origin uint16, label string, region storage.Storage) error {
	m, err := sp.mapping(origin, label, region)
	if err != nil {
		return err
	}
	sp.mappings = append(sp.mappings, m)
	return nil
}

// Conflicts checks every pair of mappings for overlaps. Returns a
// MappingConflict error for every overlap found.
func (sp *Space) Conflicts() []error {
	var conflicts []error

	for i := range sp.mappings {
		for j := i + 1; j < len(sp.mappings); j++ {
			a := sp.mappings[i]
			b := sp.mappings[j]
			if a.Overlaps(b) {
				conflicts = append(conflicts, curated.Errorf(MappingConflict,
					b.Label, b.Origin, b.Memtop, a.Label, a.Origin, a.Memtop))
			}
		}
	}

	return conflicts
}

// Validate returns nil if there are no overlaps in the address space. If
// there are overlaps the error wraps the first conflict found and notes how
// many more there are. Use Conflicts() for the complete list.
func (sp *Space) Validate() error {
	conflicts := sp.Conflicts()
	switch len(conflicts) {
	case 0:
		return nil
	case 1:
		return curated.Errorf("addrspace: %s: %v", sp.label, conflicts[0])
	}
	return curated.Errorf("addrspace: %s: %v (and %d more)", sp.label, conflicts[0], len(conflicts)-1)
}

// Lookup returns the mapping that owns the address.
func (sp *Space) Lookup(address uint16) (Mapping, bool) {
	for _, m := range sp.mappings {
		if m.Contains(address) {
			return m, true
		}
	}
	return Mapping{}, false
}

// Mappings returns a copy of the mappings in registration order.
func (sp *Space) Mappings() []Mapping {
	c := make([]Mapping, len(sp.mappings))
	copy(c, sp.mappings)
	return c
}

// Read implements the storage.Storage interface.
func (sp *Space) Read(address uint16) (uint8, bool) {
	m, ok := sp.Lookup(address)
	if !ok {
		return BusDefault, false
	}
	return m.Region.Read(address - m.Origin)
}

// Write implements the storage.Storage interface.
func (sp *Space) Write(address uint16, data uint8) error {
	m, ok := sp.Lookup(address)
	if !ok {
		return curated.Errorf(UnmappedAccess, address)
	}

	err := m.Region.Write(address-m.Origin, data)
	if err != nil {
		return curated.Errorf("addrspace: %s: %v", m.Label, err)
	}

	return nil
}

// Size implements the storage.Storage interface. The size of an address
// space is one more than the highest mapped address. Gaps in the address
// space count towards the size.
func (sp *Space) Size() int {
	var size int
	for _, m := range sp.mappings {
		if int(m.Memtop)+1 > size {
			size = int(m.Memtop) + 1
		}
	}
	return size
}

// Summary returns a single multiline string detailing all the mappings in
// the address space, in address order. Useful for reference.
func (sp *Space) Summary() string {
	m := sp.Mappings()
	sort.SliceStable(m, func(i, j int) bool {
		return m[i].Origin < m[j].Origin
	})

	s := strings.Builder{}
	for _, e := range m {
		s.WriteString(e.String())
		s.WriteString("\n")
	}
	return s.String()
}
