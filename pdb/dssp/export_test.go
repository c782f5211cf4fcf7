package dssp

import (
	"log"
)

var (
	KeepBest    = keepBest
	Letter      = letter
	ShortToTurn = shortToTurn
	MarkEnds    = markEnds
)

// Bulge says if two ladders, given as lists of bridge pairs, would be
// joined.
func Bulge(anti bool, a, b [][2]int) bool {
	res := make([]residue, 100)
	for i := range res {
		res[i].seg = 1
	}
	dir := parallel
	if anti {
		dir = antiparallel
	}
	d := &detector{res: res}
	return d.bulge(&ladder{dir: dir, pairs: a}, &ladder{dir: dir, pairs: b})
}

// Table is what the turn, ladder and sheet code make of a set of
// hydrogen bonds.
type Table struct {
	Ladders  [][][2]int
	NSheet   int
	NWarn    int
	Features *Features
	Detail   string
}

// FromBonds works on n residues in one segment with no coordinates.
// bonds are (donor, acceptor) pairs.
func FromBonds(n int, bonds [][2]int, l *log.Logger) Table {
	res := make([]residue, n)
	for i := range res {
		res[i] = residue{
			seg:      1,
			donor:    [2]HBond{noHBond, noHBond},
			acceptor: [2]HBond{noHBond, noHBond},
			bp:       [2]bridgePartner{{partner: -1}, {partner: -1}},
		}
	}
	for _, b := range bonds {
		keepBest(&res[b[0]].donor, b[1], -1)
		keepBest(&res[b[1]].acceptor, b[0], -1)
	}
	d := &detector{res: res, ft: newFeatures(n), w: newWarner(l)}
	d.turns()
	var t Table
	for _, ld := range d.bridges() {
		t.Ladders = append(t.Ladders, ld.pairs)
	}
	_, t.NSheet = d.sheets()
	t.Detail = string(d.summary())
	t.NWarn = d.w.n
	t.Features = d.ft
	return t
}
