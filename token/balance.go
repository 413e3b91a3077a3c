package token

import (
	"errors"
	"fmt"
)

var ErrBalance = errors.New("unbalanced")

// Balance validates delimiter nesting over a token stream: every close
// matches an open at its level and every open is eventually closed.
func Balance(toks []Token) error {
	d := 0
	var open *Token
	for i := range toks {
		t := &toks[i]
		switch t.Type {
		case TOpen:
			if d == 0 {
				open = t
			}
			d++
		case TClose:
			d--
			if d < 0 {
				return fmt.Errorf("%w: unopened %q %s", ErrBalance, t.String(), t.Pos)
			}
			if d == 0 {
				open = nil
			}
		}
	}
	if d != 0 {
		return fmt.Errorf("%w: unclosed %q %s", ErrBalance, open.String(), open.Pos)
	}
	return nil
}

// MatchClose returns the index of the close token matching the open at
// toks[at]. The stream must already be balanced.
func MatchClose(toks []Token, at int) int {
	d := 0
	for i := at; i < len(toks); i++ {
		switch toks[i].Type {
		case TOpen:
			d++
		case TClose:
			d--
			if d == 0 {
				return i
			}
		}
	}
	return -1
}
