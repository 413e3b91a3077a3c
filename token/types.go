package token

import "fmt"

type TokenType int

const (
	TField TokenType = iota
	TOpen
	TClose
	TSep
)

func (t TokenType) String() string {
	return map[TokenType]string{
		TField: "TField",
		TOpen:  "TOpen",
		TClose: "TClose",
		TSep:   "TSep",
	}[t]
}

// Token is a lexical element. For TField, Bytes holds the raw run of
// text, quotes included, surrounding whitespace untrimmed.
type Token struct {
	Type  TokenType
	Pos   *Pos
	Bytes []byte
}

func (t *Token) String() string {
	return string(t.Bytes)
}

func (t *Token) Info() string {
	return fmt.Sprintf("%s %s", t.Type, t.Pos.String())
}
