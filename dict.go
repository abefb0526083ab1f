package forth

const (
	// Reserved low dictionary addresses. The arena is cell-addressed, so
	// HERE and LATEST are themselves addressable cells rather than byte
	// offsets computed from a struct layout — `here`/`latest` push these
	// constant addresses, and ordinary `@` dereferences them to read the
	// cursor value: push the address of the cursor, not the cursor's value.
	regHere   Addr = 0
	regLatest Addr = 1

	// tokBase/tokCap reserve the tokenizer's shared 64-byte buffer as
	// ordinary dictionary cells, one character code point per cell, NUL
	// terminated, so that `word`'s result is a plain addressable string
	// any primitive (`tell`) or bootstrap word can walk with `@`.
	tokBase Addr = 2
	tokCap       = 64

	dictStart = tokBase + tokCap + 1 // +1 for the NUL terminator cell
)

// word record field offsets, relative to the record's start address.
const (
	recLink     = 0
	recFlags    = 1
	recName     = 2
	recCodeword = 3
	recBody     = 4
)

const flagImmediate Cell = 1

// grow doubles the arena until it has room for at least want more cells
// past HERE. When that would exceed the configured limit, the arena grows
// only up to the limit (which may leave less than want cells of room), and
// grow halts with arenaExhaustedError once the arena is already at the
// limit. A doubling strategy is safe here because addresses held as Cells
// are indices into the arena, which stay valid when the backing array is
// replaced; all access is by Addr/index, never by Go pointer.
func (e *Engine) grow(want Addr) {
	need := e.here() + want
	if Addr(len(e.dict)) >= need {
		return
	}
	size := len(e.dict)
	if size == 0 {
		size = e.growChunk
	}
	for Addr(size) < need {
		size *= 2
	}
	if e.dictLimit > 0 && Addr(size) > e.dictLimit {
		if Addr(len(e.dict)) >= e.dictLimit {
			e.halt(arenaExhaustedError{want: need, limit: e.dictLimit})
		}
		size = int(e.dictLimit)
	}
	grown := make([]Cell, size)
	copy(grown, e.dict)
	e.dict = grown
}

func (e *Engine) checkAddr(addr Addr) {
	if addr < 0 || addr >= Addr(len(e.dict)) {
		e.haltf("address out of range: %d", addr)
	}
}

// load reads one cell at addr (the `@` primitive's core).
func (e *Engine) load(addr Addr) Cell {
	e.checkAddr(addr)
	return e.dict[addr]
}

// store writes one cell at addr (the `!` primitive's core).
func (e *Engine) store(addr Addr, v Cell) {
	e.checkAddr(addr)
	e.dict[addr] = v
}

func (e *Engine) here() Addr      { return e.load(regHere) }
func (e *Engine) setHere(a Addr)  { e.store(regHere, a) }
func (e *Engine) latest() Addr    { return e.load(regLatest) }
func (e *Engine) setLatest(a Addr) { e.store(regLatest, a) }

// comma appends one cell at HERE and advances it (the `,` primitive's core).
func (e *Engine) comma(v Cell) Addr {
	e.grow(1)
	addr := e.here()
	e.store(addr, v)
	e.setHere(addr + 1)
	return addr
}

// codewordOf computes the address of a record's codeword cell. Names are
// interned (see symbols.go) rather than stored inline, so there is no
// variable-length field to skip past and this is a constant offset — kept
// as a named operation anyway, since callers should never assume the
// record layout directly.
func (e *Engine) codewordOf(rec Addr) Addr { return rec + recCodeword }

func (e *Engine) nameOf(rec Addr) string {
	return e.sym.string(uint(e.load(rec + recName)))
}

func (e *Engine) flagsOf(rec Addr) Cell { return e.load(rec + recFlags) }

func (e *Engine) isImmediate(rec Addr) bool {
	return e.flagsOf(rec)&flagImmediate != 0
}

func (e *Engine) setImmediate(rec Addr) {
	e.store(rec+recFlags, e.flagsOf(rec)|flagImmediate)
}

// appendPrimitive writes a new record whose codeword is a primitive-table
// index, and updates LATEST. Body cells, where a word has any, are
// addresses of other words' codeword slots; a primitive has none, and its
// own codeword is its table index rather than DOCOL.
func (e *Engine) appendPrimitive(name string, flags Cell, id Cell) Addr {
	e.grow(4)
	rec := e.here()
	e.comma(Cell(e.latest()))
	e.comma(flags)
	e.comma(Cell(e.sym.symbolicate(name)))
	e.comma(id)
	e.setLatest(rec)
	return rec
}

// appendColonHeader writes link/flags/name/codeword=DOCOL and updates
// LATEST immediately, so the new word can refer to itself while its own
// body is still being compiled, appending no body cells — the compiler
// appends those directly at HERE afterward.
func (e *Engine) appendColonHeader(name string, flags Cell) Addr {
	e.grow(4)
	rec := e.here()
	e.comma(Cell(e.latest()))
	e.comma(flags)
	e.comma(Cell(e.sym.symbolicate(name)))
	e.comma(codeDocol)
	e.setLatest(rec)
	return rec
}

// findWord scans from LATEST back through link for the first record with
// the given name, implementing most-recent-first shadowing.
func (e *Engine) findWord(name string) Addr {
	id := e.sym.symbol(name)
	if id == 0 {
		return nilAddr
	}
	for rec := e.latest(); rec != nilAddr; rec = Addr(e.load(rec + recLink)) {
		if uint(e.load(rec+recName)) == id {
			return rec
		}
	}
	return nilAddr
}

// writeToken copies s into the shared token buffer (one code point per
// cell, NUL terminated) and returns its base address, for `word`'s ( —
// addr ) result.
func (e *Engine) writeToken(s string) Addr {
	i := Addr(0)
	for _, r := range s {
		e.store(tokBase+i, Cell(r))
		i++
	}
	e.store(tokBase+i, 0)
	return tokBase
}

// readCString reads a NUL-terminated run of cells starting at addr back
// into a Go string, as used by `tell` and by filename arguments to
// open-read-file.
func (e *Engine) readCString(addr Addr) string {
	var sb []rune
	for {
		c := e.load(addr)
		if c == 0 {
			break
		}
		sb = append(sb, rune(c))
		addr++
	}
	return string(sb)
}
