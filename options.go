package forth

import (
	"io"
	"os"
)

// Option configures an Engine at construction time, following the usual
// functional-options pattern so New can take a variadic, self-documenting
// list of overrides instead of a large constructor or a mutable config
// struct callers build up by hand.
type Option interface{ apply(*engineOptions) }

type engineOptions struct {
	paramStackSize  int
	returnStackSize int
	dictLimit       Addr
	growChunk       int
	input           interface{} // io.Reader, or anything with ReadRune() (rune, int, error)
	output          io.Writer
	logfn           func(string, ...interface{})
}

var defaultOptions = engineOptions{
	paramStackSize:  DefaultParamStackSize,
	returnStackSize: DefaultReturnStackSize,
	dictLimit:       DefaultDictCells,
	growChunk:       defaultGrowChunk,
	input:           os.Stdin,
	output:          os.Stdout,
}

type optFunc func(*engineOptions)

func (f optFunc) apply(o *engineOptions) { f(o) }

// WithParamStackSize overrides the parameter stack capacity (cells).
func WithParamStackSize(n int) Option {
	return optFunc(func(o *engineOptions) { o.paramStackSize = n })
}

// WithReturnStackSize overrides the return stack capacity (cells).
func WithReturnStackSize(n int) Option {
	return optFunc(func(o *engineOptions) { o.returnStackSize = n })
}

// WithDictLimit overrides the dictionary arena's maximum size in cells.
func WithDictLimit(cells Addr) Option {
	return optFunc(func(o *engineOptions) { o.dictLimit = cells })
}

// WithGrowChunk overrides the arena's initial/doubling growth chunk.
func WithGrowChunk(cells int) Option {
	return optFunc(func(o *engineOptions) { o.growChunk = cells })
}

// WithInput sets the engine's initial input stream (bound to the `stdin`
// primitive's cookie as well as the active stream at startup). Accepts a
// plain io.Reader, or anything exposing ReadRune directly (such as
// internal/fileinput.Input, which cmd/jforth uses to chain a startup
// script in front of the real standard input).
func WithInput(r interface{}) Option {
	return optFunc(func(o *engineOptions) { o.input = r })
}

// WithOutput sets the engine's output sink, used by emit/tell/.s/.w/.d.
func WithOutput(w io.Writer) Option {
	return optFunc(func(o *engineOptions) { o.output = w })
}

// WithLogf wires a leveled logging callback, used both for non-fatal
// diagnostics (e.g. a close-file error on an already-broken pipe) and,
// when set, for a TRACE line on every NEXT-loop dispatch.
func WithLogf(f func(string, ...interface{})) Option {
	return optFunc(func(o *engineOptions) { o.logfn = f })
}
