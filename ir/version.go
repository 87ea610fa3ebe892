package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is the four-part document format version.
type Version struct {
	Major, Minor, Revision, Build uint32
}

// DefaultVersion is the baseline used when a source document carries no
// version information.
func DefaultVersion() Version {
	return Version{Major: 4, Minor: 0, Revision: 9, Build: 331}
}

func (v Version) String() string {
	return fmt.Sprintf("%d.%d.%d.%d", v.Major, v.Minor, v.Revision, v.Build)
}

// ParseVersion reads a dotted version string. Parsing is tolerant:
// whatever integer prefix parses is kept and the remaining parts take
// their baseline defaults.
func ParseVersion(s string) Version {
	v := DefaultVersion()
	dst := []*uint32{&v.Major, &v.Minor, &v.Revision, &v.Build}
	parts := strings.Split(s, ".")
	for i, part := range parts {
		if i >= len(dst) {
			break
		}
		u, err := strconv.ParseUint(part, 10, 32)
		if err != nil {
			break
		}
		*dst[i] = uint32(u)
	}
	return v
}
