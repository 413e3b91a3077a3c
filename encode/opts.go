package encode

import (
	"io"
	"os"

	"github.com/knotfmt/go-knot/format"

	"github.com/mattn/go-isatty"
)

type EncodeOption func(*EncState)

// WithSyntax encodes with a non-default reserved character set.
func WithSyntax(s format.Syntax) EncodeOption {
	return func(es *EncState) { es.syntax = s }
}

func EncodeColors(c *Colors) EncodeOption {
	return func(es *EncState) { es.Color = c.Color }
}

// AutoColors enables colors only when w is a terminal.
func AutoColors(w io.Writer) EncodeOption {
	f, ok := w.(*os.File)
	if !ok || !(isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())) {
		return func(es *EncState) {}
	}
	return EncodeColors(NewColors())
}
