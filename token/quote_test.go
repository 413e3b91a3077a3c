package token

import (
	"testing"

	"github.com/knotfmt/go-knot/format"
)

func TestNeedsQuote(t *testing.T) {
	tests := []struct {
		v    string
		want bool
	}{
		{"", true},
		{"hello", false},
		{"hello world", false},
		{"x,y", true},
		{"a(b", true},
		{"@name", true},
		{`has"quote`, true},
		{" padded ", true},
		{"tab\t", true},
	}
	for _, tt := range tests {
		if got := NeedsQuote(tt.v, format.Default); got != tt.want {
			t.Errorf("NeedsQuote(%q) = %t", tt.v, got)
		}
	}
}

func TestQuote(t *testing.T) {
	if got := Quote("x,y", format.Default); got != `"x,y"` {
		t.Errorf("got %q", got)
	}
	syn := format.Default
	syn.Quote = '\''
	if got := Quote("x", syn); got != `'x'` {
		t.Errorf("got %q", got)
	}
}
