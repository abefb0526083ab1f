package forth

// Cell is the fundamental storage unit: a machine-word-sized signed
// integer. Every stack slot, dictionary arena slot, and register holds a
// Cell; addresses into the dictionary arena are Cells too, so that ordinary
// arithmetic and @/! can manipulate them from Forth code.
type Cell int

// Addr is a Cell used as an index into the dictionary arena. It is an alias
// of Cell, named only for readability at call sites; no conversion is
// needed between the two.
type Addr = Cell

// nilAddr marks the absence of a dictionary pointer (an empty LATEST, or
// the outermost return-stack frame's saved "next").
const nilAddr Addr = 0
