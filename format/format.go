package format

import (
	"errors"
	"fmt"
	"strings"
)

// Syntax defines the reserved characters of the notation. The roles are
// fixed; the characters themselves are configurable as long as they are
// printable, distinct, and not whitespace.
type Syntax struct {
	Open  byte
	Close byte
	Sep   byte
	Alias byte
	Quote byte
}

// Default is the standard character set: name(a, b, @c, "d,e").
var Default = Syntax{
	Open:  '(',
	Close: ')',
	Sep:   ',',
	Alias: '@',
	Quote: '"',
}

var ErrBadSyntax = errors.New("bad syntax")

// Check reports whether the syntax table is usable.
func (s Syntax) Check() error {
	cs := s.chars()
	for i, c := range cs {
		if c <= ' ' || c >= 0x7f {
			return fmt.Errorf("%w: reserved char %q not printable", ErrBadSyntax, c)
		}
		for _, d := range cs[i+1:] {
			if c == d {
				return fmt.Errorf("%w: reserved char %q has two roles", ErrBadSyntax, c)
			}
		}
	}
	return nil
}

func (s Syntax) chars() [5]byte {
	return [5]byte{s.Open, s.Close, s.Sep, s.Alias, s.Quote}
}

// Reserved reports whether c is one of the five reserved characters.
func (s Syntax) Reserved(c byte) bool {
	switch c {
	case s.Open, s.Close, s.Sep, s.Alias, s.Quote:
		return true
	}
	return false
}

// Bare reports whether v contains no reserved characters. Bare text
// serves both as leaf content and, when non-empty, as a declarable
// name. The empty string is bare.
func (s Syntax) Bare(v string) bool {
	for i := 0; i < len(v); i++ {
		if s.Reserved(v[i]) {
			return false
		}
	}
	return true
}

func (s Syntax) String() string {
	var b strings.Builder
	b.WriteByte(s.Open)
	b.WriteByte(s.Close)
	b.WriteByte(s.Sep)
	b.WriteByte(s.Alias)
	b.WriteByte(s.Quote)
	return b.String()
}
