// Package ir is the in-memory representation of knot trees.
//
// A Node is either a container, holding an ordered sequence of child
// slots and a name table, or a leaf, holding literal text. A child slot
// is owned when the child's Owner is this container, and is an alias
// slot when it points at a container owned elsewhere in the tree. Alias
// slots never own their target; the Owner back-pointer is a pure
// traversal link.
//
// # Related Packages
//
//   - github.com/knotfmt/go-knot/parse - Parse text into nodes
//   - github.com/knotfmt/go-knot/encode - Encode nodes to text
package ir
