package dssp

import (
	"gonum.org/v1/gonum/spatial/r3"
)

const nhLen = 1.0 // N-H bond length we use for placed hydrogens

// placeH puts a hydrogen on each backbone nitrogen. It sits 1 A from N
// in the direction from O to C of the residue before. The first residue
// of a segment and residues without the right atoms get no hydrogen and
// cannot be donors. It returns the number of hydrogens placed.
func placeH(res []residue, w *warner) int {
	nH := 0
	for i := range res {
		r := &res[i]
		r.has &^= hasH
		if i == 0 || r.undef || !sameSeg(res, i-1, i) {
			continue
		}
		prev := &res[i-1]
		if !r.ok(hasN) || !prev.ok(hasC|hasO) {
			continue
		}
		co := r3.Sub(prev.c, prev.o)
		if r3.Norm2(co) < minDist2 {
			w.warn("C and O coincide in residue %d, no H on residue %d", i-1, i)
			continue
		}
		r.h = r3.Add(r.n, r3.Scale(nhLen, r3.Unit(co)))
		r.has |= hasH
		nH++
	}
	return nH
}
