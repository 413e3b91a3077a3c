package parse

import (
	"github.com/knotfmt/go-knot/format"
	"github.com/knotfmt/go-knot/token"
)

type parseOpts struct {
	syntax format.Syntax
}

func (o *parseOpts) TokenizeOpts() []token.TokenOpt {
	return []token.TokenOpt{token.WithSyntax(o.syntax)}
}

type ParseOption func(*parseOpts)

// WithSyntax parses with a non-default reserved character set.
func WithSyntax(s format.Syntax) ParseOption {
	return func(o *parseOpts) { o.syntax = s }
}
