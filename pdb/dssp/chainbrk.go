package dssp

import (
	"github.com/andrew-torda/sstruct/pdb/geom"
)

const (
	maxPeptide = 2.5 // longest C(i)-N(i+1) we accept as a peptide bond
	maxCaCa    = 5.0 // longest CA-CA step in a CA-only chain
)

// Segment is a stretch of residues with no chain break. Start and End
// are indices into the residue table, inclusive.
type Segment struct {
	Num        int // from 1
	Chain      int // index of the chain in the slice given to Run
	Start, End int
	CAOnly     bool
}

// Len is the number of residues in a segment.
func (s Segment) Len() int { return s.End - s.Start + 1 }

// isBreak says if there is a chain break between residues i and i+1.
// A new chain is always a break.
func isBreak(res []residue, i int) bool {
	a, b := &res[i], &res[i+1]
	if a.chn != b.chn {
		return true
	}
	if a.undef {
		if !a.ok(hasCA) || !b.ok(hasCA) {
			return true
		}
		return geom.Dist(a.ca, b.ca) > maxCaCa
	}
	if !a.ok(hasC) || !b.ok(hasN) {
		return true
	}
	return geom.Dist(a.c, b.n) > maxPeptide
}

// segments cuts the residue table at chain breaks, numbers the pieces
// and sets the segment number in each residue.
func segments(res []residue) []Segment {
	var segs []Segment
	if len(res) == 0 {
		return segs
	}
	cur := Segment{Num: 1, Chain: res[0].chn, Start: 0, CAOnly: res[0].undef}
	for i := range res {
		res[i].seg = cur.Num
		if i == len(res)-1 || isBreak(res, i) {
			cur.End = i
			segs = append(segs, cur)
			if i < len(res)-1 {
				cur = Segment{Num: cur.Num + 1, Chain: res[i+1].chn,
					Start: i + 1, CAOnly: res[i+1].undef}
			}
		}
	}
	return segs
}
