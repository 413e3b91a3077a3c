// Package token tokenizes knot notation text.
//
// Tokenize splits input into open/close delimiters, separators, and
// field runs, treating reserved characters inside quotes as literal
// text. Balance validates delimiter nesting before parsing.
package token
