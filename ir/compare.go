package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two nodes structurally.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
// Leaves order before containers; leaves compare by text, containers
// by name, then slot by slot. Owned slots compare recursively and
// order before alias slots; alias slots compare by the aliased name,
// never by content, so alias cycles terminate.
func Compare(a, b *Node) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}
	if a.container != b.container {
		if !a.container {
			return -1
		}
		return 1
	}
	if !a.container {
		return strings.Compare(a.field, b.field)
	}
	if c := strings.Compare(a.field, b.field); c != 0 {
		return c
	}
	n := min(len(a.kids), len(b.kids))
	for i := 0; i < n; i++ {
		ka, kb := a.kids[i], b.kids[i]
		ownA, ownB := ka.parent == a, kb.parent == b
		if ownA != ownB {
			if ownA {
				return -1
			}
			return 1
		}
		if !ownA {
			if c := strings.Compare(ka.field, kb.field); c != 0 {
				return c
			}
			continue
		}
		if c := Compare(ka, kb); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.kids), len(b.kids))
}

// Equal reports structural equivalence: same shape, names, leaf text,
// and alias-vs-owned slot kinds.
func Equal(a, b *Node) bool {
	return Compare(a, b) == 0
}
