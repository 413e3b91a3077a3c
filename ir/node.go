package ir

import (
	"fmt"
	"strconv"
)

// Node is a single tree node. The zero value is not usable; create
// nodes with NewRoot, NewContainer, NewLeaf, or Alias.
//
// The field string is the raw text of the node: a leaf's literal value,
// or a container's declared name. Whether a node is a container is
// fixed at creation and never changes.
type Node struct {
	parent    *Node
	field     string
	container bool
	kids      []*Node
	names     map[string]*Node
	f64       *float64
}

// NewRoot returns an anonymous container with no owner, the root of a
// fresh tree.
func NewRoot() *Node {
	return &Node{
		container: true,
		kids:      []*Node{},
		names:     map[string]*Node{},
	}
}

// NewContainer creates a container child of p and appends it to p's
// owned children. A non-empty name registers the child in p's name
// table at creation time, before the child has any content; an empty
// name creates an anonymous container. Duplicate names fail with
// ErrKey.
func (p *Node) NewContainer(name string) (*Node, error) {
	if !p.container {
		return nil, fmt.Errorf("%w: child of leaf %q", ErrUsage, p.field)
	}
	c := &Node{
		parent:    p,
		field:     name,
		container: true,
		kids:      []*Node{},
		names:     map[string]*Node{},
	}
	if name != "" {
		if err := p.register(name, c); err != nil {
			return nil, err
		}
	}
	p.kids = append(p.kids, c)
	return c, nil
}

// NewLeaf creates a leaf child of p holding text and appends it to p's
// owned children. Leaf text is fixed for the life of the node and never
// enters a name table.
func (p *Node) NewLeaf(text string) (*Node, error) {
	if !p.container {
		return nil, fmt.Errorf("%w: child of leaf %q", ErrUsage, p.field)
	}
	c := &Node{parent: p, field: text}
	p.kids = append(p.kids, c)
	return c, nil
}

// Alias appends a non-owning slot for target to p's child sequence and
// registers target in p's name table under name. The target keeps its
// original owner; empty and duplicate names fail with ErrKey.
func (p *Node) Alias(name string, target *Node) error {
	if !p.container {
		return fmt.Errorf("%w: alias in leaf %q", ErrUsage, p.field)
	}
	if !target.container {
		return fmt.Errorf("%w: alias target %q is a leaf", ErrUsage, target.field)
	}
	if err := p.register(name, target); err != nil {
		return err
	}
	p.kids = append(p.kids, target)
	return nil
}

func (p *Node) register(name string, c *Node) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrKey)
	}
	if _, ok := p.names[name]; ok {
		return fmt.Errorf("%w: duplicate name %q", ErrKey, name)
	}
	p.names[name] = c
	return nil
}

// IsContainer reports whether n holds children rather than text.
func (n *Node) IsContainer() bool {
	return n.container
}

// Name returns a container's declared name, or "" for anonymous
// containers and for leaves.
func (n *Node) Name() string {
	if !n.container {
		return ""
	}
	return n.field
}

// Text returns the raw text field: a leaf's value, or a container's
// declared name.
func (n *Node) Text() string {
	return n.field
}

// Owner returns the container owning n, or nil for the root.
func (n *Node) Owner() *Node {
	return n.parent
}

// Owns reports whether c sits in n's child sequence as an owned child
// rather than an alias slot.
func (n *Node) Owns(c *Node) bool {
	return c.parent == n
}

// Len returns the number of child slots, owned and aliased. Leaves have
// no child count; asking for one is a usage error.
func (n *Node) Len() (int, error) {
	if !n.container {
		return 0, fmt.Errorf("%w: child count of leaf %q", ErrUsage, n.field)
	}
	return len(n.kids), nil
}

// Child returns the i'th child slot.
func (n *Node) Child(i int) (*Node, error) {
	if !n.container {
		return nil, fmt.Errorf("%w: indexed access on leaf %q", ErrUsage, n.field)
	}
	if i < 0 || i >= len(n.kids) {
		return nil, fmt.Errorf("%w: index %d out of range [0,%d)", ErrUsage, i, len(n.kids))
	}
	return n.kids[i], nil
}

// Named looks up a name in n's own name table. A missing name returns
// nil with no error; only named access on a leaf is an error.
func (n *Node) Named(name string) (*Node, error) {
	if !n.container {
		return nil, fmt.Errorf("%w: named access on leaf %q", ErrUsage, n.field)
	}
	return n.names[name], nil
}

// Children returns the raw child slot sequence, nil for leaves. The
// slice is shared with the node; callers must not modify it.
func (n *Node) Children() []*Node {
	return n.kids
}

// Root returns the top of the tree n belongs to.
func (n *Node) Root() *Node {
	res := n
	for res.parent != nil {
		res = res.parent
	}
	return res
}

// Float64 parses a leaf's text as a floating point number. The parse
// happens on first use and is cached; it is never performed implicitly.
func (n *Node) Float64() (float64, error) {
	if n.container {
		return 0, fmt.Errorf("%w: numeric value of container %q", ErrUsage, n.field)
	}
	if n.f64 != nil {
		return *n.f64, nil
	}
	f, err := strconv.ParseFloat(n.field, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not numeric", ErrValue, n.field)
	}
	n.f64 = &f
	return f, nil
}

// Visit walks n and its owned descendants. f is called before and after
// each node's children; returning false from the pre call skips the
// children. Alias slots are not entered, so cyclic alias links cannot
// recurse.
func (n *Node) Visit(f func(n *Node, isPost bool) (bool, error)) error {
	dive, err := f(n, false)
	if err != nil {
		return err
	}
	if dive {
		for _, kid := range n.kids {
			if kid.parent != n {
				continue
			}
			if err := kid.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(n, true); err != nil {
		return err
	}
	return nil
}
