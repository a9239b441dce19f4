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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface.
//
// Curated errors are created with the Errorf() function. This is similar to
// the Errorf() function in the fmt package. It takes a formatting pattern,
// placeholder values and returns an error.
//
// The Is() function can be used to check whether an error was created with a
// specific pattern. Packages that raise errors the caller is expected to react
// to declare the pattern as an exported const string. For example, the
// storage package declares:
//
//	const ReadOnlyViolation = "storage: read-only: write to %#04x dropped"
//
// and a caller checks for it with:
//
//	if curated.Is(err, storage.ReadOnlyViolation) {
//		...
//	}
//
// The Has() function is similar but checks if a pattern occurs somewhere in
// the error chain. A chain is formed by passing an error as one of the values
// to Errorf(), usually with the %v verb.
//
//	e := curated.Errorf(storage.ReadOnlyViolation, 0x10)
//	f := curated.Errorf("cpu: %v", e)
//
//	curated.Has(f, storage.ReadOnlyViolation) // true
//	curated.Is(f, storage.ReadOnlyViolation)  // false
//
// The Error() function normalises the error chain so that it does not contain
// duplicate adjacent parts. This means that a function can wrap an error
// with its own package prefix without worrying whether the error has already
// been prefixed:
//
//	hexfile: hexfile: file not found
//
// becomes:
//
//	hexfile: file not found
//
// Curated errors also implement the Unwrap() function so errors.Is() and
// errors.As() from the standard library can see through a curated error to
// any non-curated errors in its values (eg. an *fs.PathError).
package curated
