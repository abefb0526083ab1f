package forth

import (
	"strings"

	"github.com/mccoy-forth/jforth/internal/runeio"
)

// scanToken implements `word`: skip whitespace, discard #-to-EOL comments,
// accumulate a whitespace-delimited run of characters. Returns ok=false if
// EOF is reached before any character is collected — the signal the REPL
// uses to stop reading from the current stream.
//
// A token that would overflow the shared token buffer halts with a
// diagnostic rather than silently truncating, so a long paste or a typo
// doesn't get mistaken for a different, shorter identifier.
func (e *Engine) scanToken() (string, bool) {
	var r rune
	var ok bool

	skipComment := func() {
		for {
			r, ok = e.readRune()
			if !ok || r == '\n' {
				return
			}
		}
	}

	for {
		r, ok = e.readRune()
		if !ok {
			return "", false
		}
		if r == '#' {
			skipComment()
			continue
		}
		if !isSpace(r) {
			break
		}
	}

	var sb strings.Builder
	for {
		if sb.Len()+len(string(r)) >= tokCap {
			partial := sb.String()
			if name := runeio.Name(r); name != "" {
				partial += name
			} else if caret := runeio.CaretForm(r); caret != "" {
				partial += caret
			} else {
				partial += string(r)
			}
			e.halt(tokenTooLongError{partial: partial})
		}
		sb.WriteRune(r)
		r, ok = e.readRune()
		if !ok {
			break
		}
		if r == '#' {
			skipComment()
			break
		}
		if isSpace(r) {
			break
		}
	}
	return sb.String(), true
}

func isSpace(r rune) bool {
	switch r {
	case ' ', '\t', '\n', '\r', '\v', '\f':
		return true
	}
	return false
}

// prWord implements the `word` primitive: scan a token and push the
// address of its copy in the shared token buffer. On end-of-stream it
// halts — a bare `word` call (as opposed to the REPL's own use of
// scanToken) has no fallback stream to pop.
func prWord(e *Engine) {
	t, ok := e.scanToken()
	if !ok {
		e.haltf("word: end of input on %s", e.streamAt(e.curStream).name)
	}
	e.param.push(e, e.writeToken(t))
}

// parseNumber parses a signed base-10 integer: optional leading '-', then
// one or more ASCII decimal digits, and no other characters.
func parseNumber(tok string) (Cell, bool) {
	if tok == "" {
		return 0, false
	}
	neg := false
	i := 0
	if tok[0] == '-' {
		neg = true
		i = 1
	}
	if i == len(tok) {
		return 0, false
	}
	var v Cell
	for ; i < len(tok); i++ {
		c := tok[i]
		if c < '0' || c > '9' {
			return 0, false
		}
		v = v*10 + Cell(c-'0')
	}
	if neg {
		v = -v
	}
	return v, true
}
