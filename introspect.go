package forth

import "fmt"

// .s, .w, .d — debug dumps of stack and dictionary.

// prDotS prints the parameter stack bottom-to-top.
func prDotS(e *Engine) {
	fmt.Fprint(e.out, "<")
	fmt.Fprintf(e.out, "%d", e.param.size())
	fmt.Fprint(e.out, "> ")
	for i := e.param.size() - 1; i >= 0; i-- {
		fmt.Fprintf(e.out, "%d ", e.param.peek(e, i))
	}
	fmt.Fprintln(e.out)
}

// prDotW lists defined word names, most recent first.
func prDotW(e *Engine) {
	for rec := e.latest(); rec != nilAddr; rec = Addr(e.load(rec + recLink)) {
		fmt.Fprintf(e.out, "%s ", e.nameOf(rec))
	}
	fmt.Fprintln(e.out)
}

// prDotD dumps each word: name, address, codeword address, and — for
// colon-defined words — the sequence of body codeword pointers up to the
// exit marker.
func prDotD(e *Engine) {
	for rec := e.latest(); rec != nilAddr; rec = Addr(e.load(rec + recLink)) {
		cw := e.codewordOf(rec)
		code := e.load(cw)
		fmt.Fprintf(e.out, "%s @%d codeword@%d", e.nameOf(rec), rec, cw)
		if e.isImmediate(rec) {
			fmt.Fprint(e.out, " immediate")
		}
		if code == codeDocol {
			fmt.Fprint(e.out, " :")
			for b := rec + recBody; ; b++ {
				v := e.load(b)
				fmt.Fprintf(e.out, " %d", v)
				if v == Cell(e.codewordOf(e.exitWord)) {
					break
				}
				if b-rec > 1<<20 {
					fmt.Fprint(e.out, " ...")
					break
				}
			}
		} else {
			fmt.Fprintf(e.out, " primitive#%d", code)
		}
		fmt.Fprintln(e.out)
	}
}
