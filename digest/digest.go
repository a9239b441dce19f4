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

// Package digest produces cryptographic hashes of an emulation so that the
// results of two runs can be compared. If a new hash differs from a
// previously recorded value then something has changed.
//
// Execution hashes every instruction as it is executed. The hash is chained
// so that it represents the entire run and not just the most recent
// instructions. State hashes the machine state at a single moment.
package digest

// Digest implementations return a cryptographic hash of what they have seen.
type Digest interface {
	Hash() string
	ResetDigest()
}
