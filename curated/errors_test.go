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

package curated_test

import (
	"errors"
	"io/fs"
	"testing"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/jetsetilly/gopher1626/test"
)

const testError = "test error: %s"
const wrapError = "wrap: %v"

func TestDuplicateErrors(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectEquality(t, e.Error(), "test error: foo")

	// packing errors of the same type next to each other causes
	// one of them to be dropped
	f := curated.Errorf(testError, e)
	test.ExpectEquality(t, f.Error(), "test error: foo")

	g := curated.Errorf("hexfile: %v", curated.Errorf("hexfile: %v", "file not found"))
	test.ExpectEquality(t, g.Error(), "hexfile: file not found")
}

func TestIs(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	test.ExpectSuccess(t, curated.IsAny(e))
	test.ExpectSuccess(t, curated.Is(e, testError))

	// Has() should fail because we haven't included testError anywhere in the chain
	f := curated.Errorf(wrapError, errors.New("plain error"))
	test.ExpectFailure(t, curated.Has(f, testError))

	// IsAny() should return false for plain errors
	test.ExpectFailure(t, curated.IsAny(errors.New("plain error")))
	test.ExpectFailure(t, curated.IsAny(nil))
}

func TestHas(t *testing.T) {
	e := curated.Errorf(testError, "foo")
	f := curated.Errorf(wrapError, e)
	test.ExpectSuccess(t, curated.Has(f, testError))
	test.ExpectFailure(t, curated.Is(f, testError))
	test.ExpectSuccess(t, curated.Is(f, wrapError))
}

func TestUnwrap(t *testing.T) {
	e := curated.Errorf(wrapError, fs.ErrNotExist)
	test.ExpectSuccess(t, errors.Is(e, fs.ErrNotExist))

	f := curated.Errorf(wrapError, "no errors here")
	test.ExpectFailure(t, errors.Is(f, fs.ErrNotExist))
}
