package parse

import (
	"fmt"
	"strings"

	"github.com/knotfmt/go-knot/debug"
	"github.com/knotfmt/go-knot/format"
	"github.com/knotfmt/go-knot/ir"
	"github.com/knotfmt/go-knot/token"
)

// Parse reads knot notation into a fresh anonymous root container.
func Parse(d []byte, opts ...ParseOption) (*ir.Node, error) {
	root := ir.NewRoot()
	if err := Append(root, d, opts...); err != nil {
		return nil, err
	}
	return root, nil
}

// ParseString is Parse on a string.
func ParseString(s string, opts ...ParseOption) (*ir.Node, error) {
	return Parse([]byte(s), opts...)
}

// Append parses d and extends p with the resulting children. The text
// must be balanced on its own; p is treated like the top level, so a
// close delimiter with no matching open in d is a syntax error.
func Append(p *ir.Node, d []byte, opts ...ParseOption) error {
	pOpts := &parseOpts{syntax: format.Default}
	for _, f := range opts {
		f(pOpts)
	}
	if !p.IsContainer() {
		return fmt.Errorf("%w: cannot append to leaf %q", ir.ErrUsage, p.Text())
	}
	toks, err := token.Tokenize(nil, d, pOpts.TokenizeOpts()...)
	if err != nil {
		return err
	}
	if err := token.Balance(toks); err != nil {
		return fmt.Errorf("%w: %w", ErrSyntax, err)
	}
	if debug.Parse() {
		debug.Logf("parse %d bytes -> %d tokens into %q", len(d), len(toks), p.Name())
	}
	return body(toks, p, 0, len(toks), true, pOpts)
}

// deferredParse records a container child whose raw token span is
// parsed only once the enclosing body has been fully scanned, in the
// order the containers were opened. Scanning registers every direct
// child's name before any body is parsed, which is what makes sibling
// names visible to aliases regardless of declaration order.
type deferredParse struct {
	node   *ir.Node
	lo, hi int
}

// body populates p from toks[lo:hi). atEOF marks the top level of a
// Parse or Append call; a child's span is close-terminated instead,
// which changes how the trailing slot commits (an explicit close
// commits an empty final slot, end of input does not).
func body(toks []token.Token, p *ir.Node, lo, hi int, atEOF bool, opts *parseOpts) error {
	var pending *token.Token
	justClosed := false
	var defs []deferredParse
	i := lo
	for i < hi {
		t := &toks[i]
		switch t.Type {
		case token.TField:
			if justClosed {
				return fmt.Errorf("%w: stray text %q after closed child %s",
					ErrSyntax, strings.TrimSpace(t.String()), t.Pos)
			}
			pending = t
			i++
		case token.TOpen:
			if justClosed {
				return fmt.Errorf("%w: missing separator before %q %s",
					ErrSyntax, t.String(), t.Pos)
			}
			name := ""
			if pending != nil {
				name = strings.TrimSpace(pending.String())
				if !opts.syntax.Bare(name) {
					return fmt.Errorf("%w: container name %q %s",
						ErrInvalidField, name, pending.Pos)
				}
			}
			child, err := p.NewContainer(name)
			if err != nil {
				return fmt.Errorf("%w %s", err, t.Pos)
			}
			end := token.MatchClose(toks, i)
			defs = append(defs, deferredParse{node: child, lo: i + 1, hi: end})
			i = end + 1
			pending = nil
			justClosed = true
		case token.TSep:
			if justClosed {
				justClosed = false
			} else if err := commit(p, pending, opts); err != nil {
				return err
			}
			pending = nil
			i++
		case token.TClose:
			return fmt.Errorf("%w: unopened %q %s", ErrSyntax, t.String(), t.Pos)
		}
	}
	if atEOF {
		// Top level: deferred children first, then a trailing field
		// only if there is one. Names declared anywhere below are
		// visible to a trailing alias.
		if err := runDeferred(toks, defs, opts); err != nil {
			return err
		}
		if !justClosed && pending != nil {
			return commit(p, pending, opts)
		}
		return nil
	}
	// Close-terminated body: the final slot always commits, so () holds
	// one empty leaf and (1,2,) ends with one.
	if !justClosed {
		if err := commit(p, pending, opts); err != nil {
			return err
		}
	}
	return runDeferred(toks, defs, opts)
}

func runDeferred(toks []token.Token, defs []deferredParse, opts *parseOpts) error {
	for _, df := range defs {
		if err := body(toks, df.node, df.lo, df.hi, false, opts); err != nil {
			return err
		}
	}
	return nil
}

// commit classifies a pending field and adds the resulting child to p.
// A nil token is an empty slot and becomes an anonymous empty leaf.
func commit(p *ir.Node, t *token.Token, opts *parseOpts) error {
	if t == nil {
		_, err := p.NewLeaf("")
		return err
	}
	syn := opts.syntax
	raw := strings.TrimSpace(t.String())
	q := syn.Quote
	switch {
	case len(raw) >= 2 && raw[0] == q && raw[len(raw)-1] == q:
		_, err := p.NewLeaf(raw[1 : len(raw)-1])
		return err
	case syn.Bare(raw):
		_, err := p.NewLeaf(raw)
		return err
	case raw[0] == syn.Alias && syn.Bare(raw[1:]):
		return alias(p, raw[1:], t)
	}
	return fmt.Errorf("%w: %q %s", ErrInvalidField, raw, t.Pos)
}

func alias(p *ir.Node, name string, t *token.Token) error {
	if name == "" {
		return fmt.Errorf("%w: empty alias name %s", ir.ErrKey, t.Pos)
	}
	if dup, _ := p.Named(name); dup != nil {
		return fmt.Errorf("%w: duplicate name %q %s", ir.ErrKey, name, t.Pos)
	}
	target := p.Resolve(name)
	if debug.Resolve() {
		debug.Logf("resolve %q from %q: found=%t", name, p.Name(), target != nil)
	}
	if target == nil {
		return fmt.Errorf("%w: no visible container named %q %s", ErrReference, name, t.Pos)
	}
	if err := p.Alias(name, target); err != nil {
		return fmt.Errorf("%w %s", err, t.Pos)
	}
	return nil
}
