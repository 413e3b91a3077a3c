package encode

import (
	"io"

	"github.com/knotfmt/go-knot/format"
	"github.com/knotfmt/go-knot/ir"
	"github.com/knotfmt/go-knot/token"
)

type EncState struct {
	syntax format.Syntax

	Color func(ColorAttr, string) string
}

// Encode writes node as knot notation. A leaf emits its text, quoted
// when the text would not survive a re-parse bare. A container emits
// its name and, unless it is the unowned root, wraps its children in
// delimiters; alias slots emit the alias marker and name instead of
// recursing.
func Encode(node *ir.Node, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{syntax: format.Default}
	for _, opt := range opts {
		opt(es)
	}
	if err := es.syntax.Check(); err != nil {
		return err
	}
	return encode(node, w, es)
}

func encode(n *ir.Node, w io.Writer, es *EncState) error {
	if !n.IsContainer() {
		return writeString(w, es.color(ValueColor, leafText(n.Text(), es.syntax)))
	}
	if n.Name() != "" {
		if err := writeString(w, es.color(NameColor, n.Name())); err != nil {
			return err
		}
	}
	wrapped := n.Owner() != nil
	if wrapped {
		if err := writeString(w, es.color(MarkColor, string(es.syntax.Open))); err != nil {
			return err
		}
	}
	for i, kid := range n.Children() {
		if i > 0 {
			if err := writeString(w, es.color(SepColor, string(es.syntax.Sep))+" "); err != nil {
				return err
			}
		}
		if !n.Owns(kid) {
			s := es.color(MarkColor, string(es.syntax.Alias)) + es.color(NameColor, kid.Name())
			if err := writeString(w, s); err != nil {
				return err
			}
			continue
		}
		if err := encode(kid, w, es); err != nil {
			return err
		}
	}
	if wrapped {
		return writeString(w, es.color(MarkColor, string(es.syntax.Close)))
	}
	return nil
}

func leafText(v string, syn format.Syntax) string {
	if token.NeedsQuote(v, syn) {
		return token.Quote(v, syn)
	}
	return v
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func (es *EncState) color(attr ColorAttr, s string) string {
	if es.Color == nil {
		return s
	}
	return es.Color(attr, s)
}
