// Package format defines the reserved character set of the knot
// notation.
package format
