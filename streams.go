package forth

import (
	"io"
	"os"

	"github.com/mccoy-forth/jforth/internal/runeio"
)

// runeReader is the minimal shape a registered stream needs: something
// that yields one rune at a time. fileinput.Input satisfies this directly
// (it implements ReadRune but not a byte-oriented Read), as does anything
// runeio.NewReader wraps.
type runeReader interface {
	ReadRune() (rune, int, error)
}

// streamEntry is one registered input stream, addressed by a Cell "cookie"
// (its 1-based index into Engine.streams) so that Forth code can hold a
// stream handle as an ordinary stack cell. Registration is random-access
// rather than a simple queue, since set-input-stream needs to jump back
// to a previously opened stream, not just advance forward through one.
type streamEntry struct {
	r      runeReader
	closer io.Closer
	name   string
}

// registerStream adapts src (anything offering ReadRune, or a plain
// io.Reader) into a runeReader and files it under a fresh cookie. Used
// both for engine-internal bootstrap (binding the process's real stdin,
// possibly pre-chained with a startup script by cmd/jforth via
// internal/fileinput.Input) and for the open-read-file primitive.
func (e *Engine) registerStream(name string, src interface{}) Cell {
	var rr runeReader
	if existing, ok := src.(runeReader); ok {
		rr = existing
	} else if r, ok := src.(io.Reader); ok {
		rr = runeio.NewReader(r)
	} else {
		panic("registerStream: src is neither a runeReader nor an io.Reader")
	}
	var closer io.Closer
	if c, ok := src.(io.Closer); ok {
		closer = c
	}
	e.streams = append(e.streams, streamEntry{r: rr, closer: closer, name: name})
	return Cell(len(e.streams)) // 1-based cookie; 0 is never a valid stream
}

func (e *Engine) streamAt(cookie Cell) *streamEntry {
	i := int(cookie) - 1
	if i < 0 || i >= len(e.streams) || e.streams[i].r == nil {
		e.haltf("invalid or closed stream handle: %d", cookie)
	}
	return &e.streams[i]
}

// readRune reads the next rune from the currently selected input stream.
// Returns ok=false on EOF.
func (e *Engine) readRune() (rune, bool) {
	se := e.streamAt(e.curStream)
	r, _, err := se.r.ReadRune()
	if err == io.EOF {
		return 0, false
	}
	if err != nil {
		e.haltf("input error on %s: %v", se.name, err)
	}
	return r, true
}

func (e *Engine) writeRune(r rune) {
	if _, err := runeio.WriteANSIRune(e.out, r); err != nil {
		e.haltf("output error: %v", err)
	}
}

// --- primitives -------------------------------------------------------

func prEmit(e *Engine) {
	e.writeRune(rune(e.param.pop(e)))
}

func prKey(e *Engine) {
	r, ok := e.readRune()
	if !ok {
		e.haltf("key: end of input on %s", e.streamAt(e.curStream).name)
	}
	e.param.push(e, Cell(r))
}

func prTell(e *Engine) {
	addr := e.param.pop(e)
	for _, r := range e.readCString(addr) {
		e.writeRune(r)
	}
}

func prStdin(e *Engine) {
	e.param.push(e, e.stdinCookie)
}

func prGetInputStream(e *Engine) {
	e.param.push(e, e.curStream)
}

func prSetInputStream(e *Engine) {
	cookie := e.param.pop(e)
	e.streamAt(cookie) // validates
	e.curStream = cookie
}

func prOpenReadFile(e *Engine) {
	addr := e.param.pop(e)
	name := e.readCString(addr)
	f, err := os.Open(name) // #nosec G304 -- filename is supplied by the running Forth program itself
	if err != nil {
		e.haltf("open-read-file %s: %v", name, err)
	}
	e.param.push(e, e.registerStream(name, f))
}

func prCloseFile(e *Engine) {
	cookie := e.param.pop(e)
	se := e.streamAt(cookie)
	if se.closer != nil {
		if err := se.closer.Close(); err != nil {
			e.logf("WARN", "close-file %s: %v", se.name, err)
		}
	}
	e.streams[int(cookie)-1] = streamEntry{}
}

// prErrorPrim implements `error`: pop a NUL-terminated message string and
// halt unconditionally with it.
func prErrorPrim(e *Engine) {
	addr := e.param.pop(e)
	e.halt(errExplicit{mess: e.readCString(addr)})
}

func (e *Engine) logf(level, mess string, args ...interface{}) {
	if e.logfn != nil {
		e.logfn(level+": "+mess, args...)
	}
}
