package forth

// repl implements the outer interpreter: read a token, classify it as a
// number or a word, and either execute or compile it depending on state.
// Implemented as a direct native state machine rather than a self-hosted
// kernel written in the language itself, since the primitive set already
// provides branch/0branch/lit and colon-definition support natively.
func (e *Engine) repl() {
	for {
		tok, ok := e.scanToken()
		if !ok {
			return // end of input is a normal, successful halt
		}

		if n, isNum := parseNumber(tok); isNum {
			if e.state == StateCompile {
				e.comma(Cell(e.codewordOf(e.litWord())))
				e.comma(n)
			} else {
				e.param.push(e, n)
			}
			continue
		}

		w := e.findWord(tok)
		if w == nilAddr {
			e.halt(unknownWordError{tok})
		}
		if e.state == StateNormal || e.isImmediate(w) {
			e.execute(w)
		} else {
			e.comma(Cell(e.codewordOf(w)))
		}
	}
}

// litWord finds the dictionary record for the native `lit` primitive, used
// by the REPL to compile numeric literals in COMPILE state.
func (e *Engine) litWord() Addr {
	w := e.findWord("lit")
	if w == nilAddr {
		e.haltf("internal error: lit is not defined")
	}
	return w
}
