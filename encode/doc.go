// Package encode serializes ir nodes back into knot notation.
//
// # Usage
//
//	node, _ := parse.ParseString(`root(a(1,2), b(@a))`)
//	err := encode.Encode(node, os.Stdout, encode.AutoColors(os.Stdout))
//
// Re-parsing the output yields a structurally equivalent tree; original
// whitespace is not preserved.
package encode
