package parse

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/sergi/go-diff/diffmatchpatch"

	"github.com/knotfmt/go-knot/encode"
	"github.com/knotfmt/go-knot/ir"
)

// Parsing, encoding, and re-parsing yields a structurally equivalent
// tree, and the encoded form is a fixed point.
func TestRoundTrip(t *testing.T) {
	ins := []string{
		``,
		`hello`,
		`hello world`,
		`""`,
		`"x,y"`,
		`" padded "`,
		`()`,
		`(1,2,)`,
		`(,a)`,
		`(a,,b)`,
		`a(b(c))`,
		`name(a, b)`,
		`x(1), y(2)`,
		`root(a(1,2), b(@a), "x,y")`,
		`outer(a(1), alias(@a), )`,
		`b(@a), a(1)`,
		`a(b(c(1))), @c`,
		`p(x(1), y(@x))`,
		`x(a(1)), y(a(2))`,
		`"a(b"`,
		`"he said ""go"""`,
	}
	for _, in := range ins {
		n1, err := ParseString(in)
		if err != nil {
			t.Errorf("parse %q: %v", in, err)
			continue
		}
		out1 := encode.MustString(n1)
		n2, err := ParseString(out1)
		if err != nil {
			t.Errorf("reparse %q -> %q: %v", in, out1, err)
			continue
		}
		if !ir.Equal(n1, n2) {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(in, out1, false)
			t.Errorf("round trip changed %q:\n%s", in, dmp.DiffPrettyText(diffs))
			continue
		}
		out2 := encode.MustString(n2)
		if d := cmp.Diff(out1, out2); d != "" {
			t.Errorf("canonical form unstable for %q: (-first +second)\n%s", in, d)
		}
	}
}

func FuzzParse(f *testing.F) {
	seeds := []string{
		``,
		`hello`,
		`"quoted, (text)"`,
		`()`,
		`(1,2,)`,
		`(a, (b, (c)))`,
		`name(a, b)`,
		`root(a(1,2), b(@a), "x,y")`,
		`outer(a(1), alias(@a), )`,
		`b(@a), a(1)`,
		`a(b(c(1))), @c`,
		`@`,
		`@x`,
		`(`,
		`)`,
		`a(1)(2)`,
		`x"y`,
	}
	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		node, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}
		// a parsed tree must encode, reparse, and compare equal
		out := encode.MustString(node)
		again, err := Parse([]byte(out))
		if err != nil {
			t.Fatalf("reparse of %q failed: %v", out, err)
		}
		if !ir.Equal(node, again) {
			t.Fatalf("round trip changed %q -> %q", string(data), out)
		}
	})
}
