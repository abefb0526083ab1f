package forth

// execute runs the threaded-code interpreter (the "NEXT loop") starting at
// word w: fetch the codeword at current, dispatch it, and advance current
// from next until next comes back nil (the outermost frame has returned).
// Each word carries exactly one codeword slot, whether it names a native
// primitive or the shared docol dispatch routine, so there is a single
// dispatch table indexed by that one value rather than separate
// compile-time/run-time tables.
func (e *Engine) execute(w Addr) {
	e.current = e.codewordOf(w)
	e.next = nilAddr
	for {
		code := e.load(e.current)
		if code < 0 || code >= numCodes {
			e.haltf("corrupt codeword %d at %d", code, e.current)
		}
		e.logf("TRACE", "pc=%d code=%d", e.current, code)
		e.primTable[code](e)
		if e.next == nilAddr {
			return
		}
		e.current = Addr(e.load(e.next))
		e.next++
	}
}

// docol is the shared dispatch routine for colon words: save the caller's
// continuation on the return stack and start walking the body (the cell
// immediately after this codeword slot).
func docol(e *Engine) {
	e.ret.push(e, Cell(e.next))
	e.next = e.current + 1
}

// exit restores the saved continuation, ending the innermost colon frame.
// When it unwinds the outermost frame (the one execute started with, whose
// saved next was nilAddr), next becomes nilAddr again and the NEXT loop in
// execute returns.
func exit(e *Engine) {
	e.next = Addr(e.ret.pop(e))
}
