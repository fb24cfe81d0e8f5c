package version

import "cmp"

// Compare returns -1 if v < other, 0 if v == other, 1 if v > other.
func (v Version) Compare(other Version) int {
	if c := cmp.Compare(v.Major, other.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(v.Minor, other.Minor); c != 0 {
		return c
	}
	return cmp.Compare(v.Patch, other.Patch)
}

// AtLeast reports whether (major, minor) of v is lexicographically >= that
// of minimum. Patch levels are ignored, so 3.11.0 satisfies a 3.11.9 minimum.
func (v Version) AtLeast(minimum Version) bool {
	v.Patch, minimum.Patch = 0, 0
	return v.Compare(minimum) >= 0
}
