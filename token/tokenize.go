package token

import (
	"github.com/knotfmt/go-knot/format"
)

type tokenOpts struct {
	syntax format.Syntax
}

type TokenOpt func(*tokenOpts)

// WithSyntax tokenizes with a non-default reserved character set.
func WithSyntax(s format.Syntax) TokenOpt {
	return func(o *tokenOpts) { o.syntax = s }
}

// Tokenize splits d into tokens, appending to dst. Reserved characters
// inside quotes are treated as literal field text; the quote characters
// themselves are kept in the field bytes so the parser can classify
// quoted fields. Runs consisting only of whitespace are dropped.
func Tokenize(dst []Token, d []byte, opts ...TokenOpt) ([]Token, error) {
	opt := &tokenOpts{syntax: format.Default}
	for _, o := range opts {
		o(opt)
	}
	if err := opt.syntax.Check(); err != nil {
		return nil, err
	}
	syn := opt.syntax
	pd := NewPosDoc(d)
	quoted := false
	run := -1 // start of the current field run, -1 if none
	flush := func(end int) {
		if run == -1 {
			return
		}
		dst = append(dst, Token{
			Type:  TField,
			Pos:   pd.Pos(run),
			Bytes: d[run:end],
		})
		run = -1
	}
	for i := 0; i < len(d); i++ {
		c := d[i]
		if c == '\n' {
			pd.nl(i)
		}
		if c == syn.Quote {
			quoted = !quoted
			if run == -1 {
				run = i
			}
			continue
		}
		if quoted {
			if run == -1 {
				run = i
			}
			continue
		}
		switch c {
		case syn.Open, syn.Close, syn.Sep:
			flush(i)
			tt := TSep
			switch c {
			case syn.Open:
				tt = TOpen
			case syn.Close:
				tt = TClose
			}
			dst = append(dst, Token{Type: tt, Pos: pd.Pos(i), Bytes: d[i : i+1]})
		case ' ', '\t', '\n', '\r':
			// whitespace joins a run but never starts one
		default:
			if run == -1 {
				run = i
			}
		}
	}
	flush(len(d))
	return dst, nil
}
