package token

import (
	"strings"

	"github.com/knotfmt/go-knot/format"
)

// NeedsQuote reports whether leaf text must be quoted on output to
// survive a re-parse: text holding reserved characters or surrounding
// whitespace would otherwise be re-read as delimiters or be trimmed,
// and empty text would vanish entirely.
func NeedsQuote(v string, syn format.Syntax) bool {
	if v == "" {
		return true
	}
	if !syn.Bare(v) {
		return true
	}
	return strings.TrimSpace(v) != v
}

// Quote wraps v in quote delimiters. The notation has no escapes; a
// quoted field is stripped of exactly its first and last character on
// input, so interior quote characters round-trip as-is.
func Quote(v string, syn format.Syntax) string {
	q := string(syn.Quote)
	return q + v + q
}
