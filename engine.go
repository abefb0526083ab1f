// Package forth implements the core of a small interactive Forth system
// modelled on JONESFORTH: dictionary, threaded-code interpreter, parameter
// and return stacks, the primitive word set, and the outer interpreter's
// read-eval-compile loop. It has no knowledge of process entry points,
// command-line flags, or file paths — those live in cmd/jforth.
package forth

import (
	"fmt"

	"github.com/mccoy-forth/jforth/internal/flushio"
	"github.com/mccoy-forth/jforth/internal/panicerr"
)

// Default stack and arena sizes, chosen generously enough that realistic
// programs never hit them.
const (
	DefaultParamStackSize  = 16384
	DefaultReturnStackSize = 256
	DefaultDictCells       = 65536
	defaultGrowChunk       = 4096
)

// Engine is one Forth virtual machine: dictionary arena, both stacks, and
// interpreter registers. All state hangs off this struct rather than
// package-level globals, so multiple Engines may coexist in one process.
type Engine struct {
	dict      []Cell
	dictLimit Addr
	growChunk int

	param *stack
	ret   *stack

	sym symbols

	state   State
	current Addr
	next    Addr

	primTable [numCodes]func(*Engine)
	exitWord  Addr

	streams     []streamEntry
	curStream   Cell
	stdinCookie Cell

	out   flushio.WriteFlusher
	logfn func(string, ...interface{})
}

// New builds an Engine, applies opts, allocates the stacks and arena, and
// installs the primitive set.
func New(opts ...Option) *Engine {
	o := defaultOptions
	for _, opt := range opts {
		opt.apply(&o)
	}

	e := &Engine{
		dictLimit: o.dictLimit,
		growChunk: o.growChunk,
		param:     newStack("parameter", o.paramStackSize),
		ret:       newStack("return", o.returnStackSize),
		out:       flushio.NewWriteFlusher(o.output),
		logfn:     o.logfn,
	}
	e.dict = make([]Cell, int(dictStart)+e.growChunk)
	e.setHere(dictStart)
	e.setLatest(nilAddr)

	if o.input != nil {
		e.stdinCookie = e.registerStream("stdin", o.input)
		e.curStream = e.stdinCookie
	}

	e.initPrimitives()
	return e
}

func (e *Engine) initPrimitives() {
	e.primTable[codeDocol] = docol
	fns := map[Cell]func(*Engine){
		codeExit:            exit,
		codeLit:             prLit,
		codeBranch:          prBranch,
		codeZeroBranch:      prZeroBranch,
		codeTick:            prTick,
		codePlus:            prPlus,
		codeMinus:           prMinus,
		codeMul:             prMul,
		codeDivMod:          prDivMod,
		codeEq:              prEq,
		codeLt:              prLt,
		codeGt:              prGt,
		codeLe:              prLe,
		codeGe:              prGe,
		codeNot:             prNot,
		codeAnd:             prAnd,
		codeOr:              prOr,
		codeDup:             prDup,
		codeDrop:            prDrop,
		codeSwap:            prSwap,
		codeOver:            prOver,
		codeStackSize:       prStackSize,
		codeFetch:           prFetch,
		codeStore:           prStore,
		codeHere:            prHere,
		codeLatest:          prLatest,
		codeComma:           prComma,
		codeEmit:            prEmit,
		codeKey:             prKey,
		codeWord:            prWord,
		codeTell:            prTell,
		codeStdin:           prStdin,
		codeGetInputStream:  prGetInputStream,
		codeSetInputStream:  prSetInputStream,
		codeOpenReadFile:    prOpenReadFile,
		codeCloseFile:       prCloseFile,
		codeErrorPrim:       prErrorPrim,
		codeDotS:            prDotS,
		codeDotW:            prDotW,
		codeDotD:            prDotD,
		codeColon:           prColon,
		codeSemi:            prSemi,
		codeImmediateWord:   prImmediateWord,
		codeLBracket:        prLBracket,
		codeRBracket:        prRBracket,
	}
	for _, pn := range primitiveNames {
		fn, ok := fns[pn.code]
		if !ok {
			panic(fmt.Sprintf("no implementation registered for primitive %q", pn.name))
		}
		e.primTable[pn.code] = fn
		flags := Cell(0)
		if pn.immediate {
			flags = flagImmediate
		}
		rec := e.appendPrimitive(pn.name, flags, pn.code)
		if pn.code == codeExit {
			e.exitWord = rec
		}
	}
}

// Close releases any open stream handles (e.g. files opened via
// open-read-file that the program never closed).
func (e *Engine) Close() error {
	var first error
	for i := range e.streams {
		if e.streams[i].closer != nil {
			if err := e.streams[i].closer.Close(); err != nil && first == nil {
				first = err
			}
		}
	}
	if err := e.out.Flush(); err != nil && first == nil {
		first = err
	}
	return first
}

// Run drives the outer interpreter until end of input or a fatal error,
// isolated in its own goroutine so that a panicking primitive (an
// internal bug, not an ordinary halt) is recovered into a plain error
// rather than crashing the process.
func (e *Engine) Run() (err error) {
	defer func() { _ = e.Close() }()
	rerr := panicerr.Recover("forth.Engine.Run", func() (err error) {
		defer func() {
			if r := recover(); r != nil {
				if he, ok := r.(haltError); ok {
					err = he.err
					return
				}
				panic(r)
			}
		}()
		e.repl()
		return nil
	})
	return rerr
}
