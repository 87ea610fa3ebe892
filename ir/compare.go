package ir

import (
	"cmp"
	"strings"
)

// Equal reports structural equality of two documents.
func Equal(a, b *Document) bool {
	return Compare(a, b) == 0
}

// Compare returns an integer comparing two documents.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Document) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := compareVersions(a.Version, b.Version); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Regions), len(b.Regions)); c != 0 {
		return c
	}
	for i := range a.Regions {
		if c := strings.Compare(a.Regions[i].ID, b.Regions[i].ID); c != 0 {
			return c
		}
		if c := CompareNodes(a.Regions[i].Root, b.Regions[i].Root); c != 0 {
			return c
		}
	}
	return 0
}

func compareVersions(a, b Version) int {
	if c := cmp.Compare(a.Major, b.Major); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Minor, b.Minor); c != 0 {
		return c
	}
	if c := cmp.Compare(a.Revision, b.Revision); c != 0 {
		return c
	}
	return cmp.Compare(a.Build, b.Build)
}

// CompareNodes orders nodes by id, then member by member in recorded
// order. Attribute members sort before group members of the same id.
func CompareNodes(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if c := strings.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if c := cmp.Compare(len(a.Members), len(b.Members)); c != 0 {
		return c
	}
	for i := range a.Members {
		if c := compareMembers(&a.Members[i], &b.Members[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareMembers(a, b *Member) int {
	if c := strings.Compare(a.ID, b.ID); c != 0 {
		return c
	}
	if a.IsAttr() != b.IsAttr() {
		if a.IsAttr() {
			return -1
		}
		return 1
	}
	if a.IsAttr() {
		return compareAttrs(a.Attr, b.Attr)
	}
	if c := cmp.Compare(len(a.Group), len(b.Group)); c != 0 {
		return c
	}
	for i := range a.Group {
		if c := CompareNodes(a.Group[i], b.Group[i]); c != 0 {
			return c
		}
	}
	return 0
}

func compareAttrs(a, b *Attribute) int {
	if c := strings.Compare(a.Type, b.Type); c != 0 {
		return c
	}
	if c := compareOptString(a.Value, b.Value); c != 0 {
		return c
	}
	if c := compareOptString(a.Handle, b.Handle); c != 0 {
		return c
	}
	return cmp.Compare(a.Version, b.Version)
}

// nil orders before present, including present-but-empty.
func compareOptString(a, b *string) int {
	if a == nil && b == nil {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	return strings.Compare(*a, *b)
}
