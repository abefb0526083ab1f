package forth

// Primitive-table indices. Each is both a dispatch-table slot and (for the
// ones with names below) the codeword value written into a dictionary
// record by appendPrimitive. codeDocol is a sentinel: the shared dispatch
// routine for colon words, not a named primitive a user word can be
// defined from directly.
const (
	codeExit Cell = iota
	codeLit
	codeBranch
	codeZeroBranch
	codeTick
	codePlus
	codeMinus
	codeMul
	codeDivMod
	codeEq
	codeLt
	codeGt
	codeLe
	codeGe
	codeNot
	codeAnd
	codeOr
	codeDup
	codeDrop
	codeSwap
	codeOver
	codeStackSize
	codeFetch
	codeStore
	codeHere
	codeLatest
	codeComma
	codeEmit
	codeKey
	codeWord
	codeTell
	codeStdin
	codeGetInputStream
	codeSetInputStream
	codeOpenReadFile
	codeCloseFile
	codeErrorPrim
	codeDotS
	codeDotW
	codeDotD
	codeColon
	codeSemi
	codeImmediateWord
	codeLBracket
	codeRBracket
	codeDocol // sentinel: always last
	numCodes
)

// primitiveNames pairs each non-sentinel code with its dictionary name and
// IMMEDIATE bit, in the order the bootstrap dictionary is built.
var primitiveNames = []struct {
	code      Cell
	name      string
	immediate bool
}{
	{codeExit, "exit", false},
	{codeLit, "lit", false},
	{codeBranch, "branch", false},
	{codeZeroBranch, "0branch", false},
	{codeTick, "'", true},
	{codePlus, "+", false},
	{codeMinus, "-", false},
	{codeMul, "*", false},
	{codeDivMod, "divmod", false},
	{codeEq, "=", false},
	{codeLt, "<", false},
	{codeGt, ">", false},
	{codeLe, "<=", false},
	{codeGe, ">=", false},
	{codeNot, "not", false},
	{codeAnd, "and", false},
	{codeOr, "or", false},
	{codeDup, "dup", false},
	{codeDrop, "drop", false},
	{codeSwap, "swap", false},
	{codeOver, "over", false},
	{codeStackSize, "stack-size", false},
	{codeFetch, "@", false},
	{codeStore, "!", false},
	{codeHere, "here", false},
	{codeLatest, "latest", false},
	{codeComma, ",", false},
	{codeEmit, "emit", false},
	{codeKey, "key", false},
	{codeWord, "word", false},
	{codeTell, "tell", false},
	{codeStdin, "stdin", false},
	{codeGetInputStream, "get-input-stream", false},
	{codeSetInputStream, "set-input-stream", false},
	{codeOpenReadFile, "open-read-file", false},
	{codeCloseFile, "close-file", false},
	{codeErrorPrim, "error", false},
	{codeDotS, ".s", false},
	{codeDotW, ".w", false},
	{codeDotD, ".d", false},
	{codeColon, ":", false},
	{codeSemi, ";", true},
	{codeImmediateWord, "immediate", true},
	{codeLBracket, "[", true},
	{codeRBracket, "]", false},
}
