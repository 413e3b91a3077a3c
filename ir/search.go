package ir

// Find resolves name among n's own declarations: the name table first,
// then owned container children, depth first, in child order. Alias
// slots are skipped during descent since they are not this container's
// declarations; besides, alias links may point back up the tree.
// A miss returns nil.
func (n *Node) Find(name string) *Node {
	return n.find(name, nil)
}

func (n *Node) find(name string, skip *Node) *Node {
	if !n.container {
		return nil
	}
	if hit, ok := n.names[name]; ok {
		return hit
	}
	for _, kid := range n.kids {
		if kid == skip || kid.parent != n || !kid.container {
			continue
		}
		if hit := kid.find(name, nil); hit != nil {
			return hit
		}
	}
	return nil
}

// Resolve looks name up from n outward: first among n's own
// declarations, then at each ancestor in turn, skipping descent back
// into the branch just ascended from. The first match on the way up
// wins; a miss at the root returns nil.
func (n *Node) Resolve(name string) *Node {
	var prev *Node
	for y := n; y != nil; y = y.parent {
		if hit := y.find(name, prev); hit != nil {
			return hit
		}
		prev = y
	}
	return nil
}
