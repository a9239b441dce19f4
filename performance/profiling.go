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

package performance

import (
	"strings"

	"github.com/jetsetilly/gopher1626/curated"
	"github.com/pkg/profile"
)

// Sentinel error patterns.
const (
	ProfileError = "performance: %v"
)

// Profile identifies the type of profile to generate.
type Profile string

// List of valid Profile values.
const (
	ProfileNone  Profile = ""
	ProfileCPU   Profile = "cpu"
	ProfileMem   Profile = "mem"
	ProfileBlock Profile = "block"
	ProfileTrace Profile = "trace"
)

// ParseProfile converts the string to a Profile value. The empty string is
// ProfileNone.
func ParseProfile(s string) (Profile, error) {
	p := Profile(strings.ToLower(strings.TrimSpace(s)))
	switch p {
	case ProfileNone, ProfileCPU, ProfileMem, ProfileBlock, ProfileTrace:
		return p, nil
	}
	return ProfileNone, curated.Errorf(ProfileError, curated.Errorf("unknown profile: %s", s))
}

func (p Profile) option() func(*profile.Profile) {
	switch p {
	case ProfileMem:
		return profile.MemProfile
	case ProfileBlock:
		return profile.BlockProfile
	case ProfileTrace:
		return profile.TraceProfile
	}
	return profile.CPUProfile
}

// RunProfiler runs the function with the profile enabled. The profile is
// written to the dir directory. If the profile is ProfileNone then the
// function is run without profiling.
func RunProfiler(p Profile, dir string, run func() error) error {
	if p == ProfileNone {
		return run()
	}

	opts := []func(*profile.Profile){p.option(), profile.Quiet, profile.NoShutdownHook}
	if dir != "" {
		opts = append(opts, profile.ProfilePath(dir))
	}

	defer profile.Start(opts...).Stop()

	return run()
}
