package dssp

import (
	"github.com/andrew-torda/sstruct/pdb/geom"
)

const (
	// q1 q2 f from Kabsch and Sander, partial charges 0.42 and 0.20 e
	// and 332 to get kcal/mol.
	couple    = 0.42 * 0.20 * 332
	MinEnergy = -9.9 // energies are clamped to this
	MaxEnergy = -0.5 // anything weaker is not a hydrogen bond
	maxCaDist = 8.0  // CA atoms further apart than this are not tested
	minDist2  = 0.01 * 0.01
)

// eligible says if residue don can donate to residue acc at all.
// Residues next to each other only qualify across a chain break.
func eligible(res []residue, don, acc int) bool {
	d, a := &res[don], &res[acc]
	if d.undef || a.undef || d.isPro {
		return false
	}
	if !d.ok(hasN|hasH|hasCA) || !a.ok(hasC|hasO|hasCA) {
		return false
	}
	switch don - acc {
	case 0:
		return false
	case -1, 1:
		if d.seg == a.seg {
			return false
		}
	}
	return true
}

// energy calculates the electrostatic energy of the bond N-H of don to
// O=C of acc. ok is false if two atoms sit on top of each other.
func energy(d, a *residue) (e float64, ok bool) {
	rON := geom.Dist(a.o, d.n)
	rCH := geom.Dist(a.c, d.h)
	rOH := geom.Dist(a.o, d.h)
	rCN := geom.Dist(a.c, d.n)
	for _, r := range []float64{rON, rCH, rOH, rCN} {
		if r*r < minDist2 {
			return 0, false
		}
	}
	return couple * (1/rON + 1/rCH - 1/rOH - 1/rCN), true
}

// keepBest puts a bond in a pair of slots which are sorted, best first.
// in says if the bond went in and evicted says if a weaker one fell out
// of the second slot.
func keepBest(s *[2]HBond, partner int, e float64) (in, evicted bool) {
	b := HBond{Partner: partner, Energy: e}
	switch {
	case s[0].Partner < 0 || e < s[0].Energy:
		evicted = s[1].Partner >= 0
		s[1], s[0] = s[0], b
		return true, evicted
	case s[1].Partner < 0 || e < s[1].Energy:
		evicted = s[1].Partner >= 0
		s[1] = b
		return true, evicted
	}
	return false, false
}

// hbonds tests every eligible donor/acceptor pair and keeps the two
// best bonds on each side of each residue. It returns the number of
// bonds held in donor slots.
func hbonds(res []residue, w *warner) int {
	nBond := 0
	for don := range res {
		d := &res[don]
		for acc := range res {
			if !eligible(res, don, acc) {
				continue
			}
			a := &res[acc]
			if geom.Dist(d.ca, a.ca) >= maxCaDist {
				continue
			}
			e, ok := energy(d, a)
			if !ok {
				w.warn("coincident atoms between residues %d and %d, skipped", don, acc)
				continue
			}
			if e < MinEnergy {
				w.warn("H-bond energy %.2f from %d to %d clamped to %.1f", e, don, acc, MinEnergy)
				e = MinEnergy
			}
			if e >= MaxEnergy {
				continue
			}
			in, evicted := keepBest(&d.donor, acc, e)
			switch {
			case !in:
				w.info("third H-bond from residue %d to %d rejected", don, acc)
			case evicted:
				w.info("weaker H-bond from residue %d replaced", don)
			default:
				nBond++
			}
			if in, _ := keepBest(&a.acceptor, don, e); !in {
				w.info("third H-bond to residue %d from %d rejected", acc, don)
			}
		}
	}
	return nBond
}

// testBond says if the N-H of don is bonded to the O of acc.
func testBond(res []residue, don, acc int) bool {
	if don < 0 || acc < 0 || don >= len(res) || acc >= len(res) {
		return false
	}
	d := &res[don]
	return d.donor[0].Partner == acc || d.donor[1].Partner == acc
}
