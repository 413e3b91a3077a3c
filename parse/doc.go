// Package parse parses knot notation into ir nodes.
//
// # Usage
//
//	node, err := parse.ParseString(`root(a(1,2), b(@a), "x,y")`)
//	if err != nil {
//	    return err
//	}
//
//	// Extend an existing container with more notation.
//	err = parse.Append(node, []byte(`c(3)`))
//
// Scanning a container's body registers each named child at its open
// delimiter, before the child's own body is parsed. An alias therefore
// resolves against every name opened before the point it is scanned,
// even when the named container's body has not been parsed yet.
//
// # Related Packages
//
//   - github.com/knotfmt/go-knot/ir - node representation
//   - github.com/knotfmt/go-knot/encode - encode nodes to text
//   - github.com/knotfmt/go-knot/token - tokenization
package parse
