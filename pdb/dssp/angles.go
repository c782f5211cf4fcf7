package dssp

import (
	"math"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/sstruct/pdb/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// AngUndef is what we put in the angle table when an angle cannot be
// calculated. TCO is a cosine and gets 0 instead.
const AngUndef = 360

// AngleKind selects a row of the angle table.
type AngleKind int

const (
	Phi      AngleKind = iota
	Psi                // N-CA-C of i and N of i+1
	Omega              // CA-C-N-CA across the peptide bond to the next residue
	Alpha              // CA virtual dihedral i-1, i, i+1, i+2
	Improper           // CA-N-C-CB, sign gives the handedness at CA
	Kappa              // virtual bend angle at CA i, from i-2 and i+2
	TCO                // cosine of the angle between C=O of i and of i-1
	NAngle
)

var angleNames = [NAngle]string{"phi", "psi", "omega", "alpha", "improper", "kappa", "tco"}

func (k AngleKind) String() string { return angleNames[k] }

// dhdrl is a dihedral in degrees, or AngUndef.
func dhdrl(a, b, c, d r3.Vec) float32 {
	t, err := geom.Dihedral(a, b, c, d)
	if err != nil {
		return AngUndef
	}
	return float32(t * geom.RadToDeg)
}

// calcAngles fills an NAngle by n table. Columns are residues.
func calcAngles(res []residue) *matrix.FMatrix2d {
	ang := matrix.NewFMatrix2d(int(NAngle), len(res))
	for k, row := range ang.Mat {
		if AngleKind(k) == TCO {
			continue
		}
		for i := range row {
			row[i] = AngUndef
		}
	}
	for i := range res {
		r := &res[i]
		if r.undef {
			continue
		}
		prev, next := sameSeg(res, i-1, i), sameSeg(res, i, i+1)
		const bb = hasN | hasCA | hasC
		if prev && r.ok(bb) && res[i-1].ok(hasC) {
			ang.Mat[Phi][i] = dhdrl(res[i-1].c, r.n, r.ca, r.c)
		}
		if next && r.ok(bb) && res[i+1].ok(hasN) {
			ang.Mat[Psi][i] = dhdrl(r.n, r.ca, r.c, res[i+1].n)
		}
		if next && r.ok(hasCA|hasC) && res[i+1].ok(hasN|hasCA) {
			ang.Mat[Omega][i] = dhdrl(r.ca, r.c, res[i+1].n, res[i+1].ca)
		}
		if prev && sameSeg(res, i, i+2) && allCA(res, i-1, i+2) {
			ang.Mat[Alpha][i] = dhdrl(res[i-1].ca, r.ca, res[i+1].ca, res[i+2].ca)
		}
		if r.ok(bb | hasCB) {
			ang.Mat[Improper][i] = dhdrl(r.ca, r.n, r.c, r.cb)
		}
		if sameSeg(res, i-2, i) && sameSeg(res, i, i+2) && allCA(res, i-2, i+2) {
			u := r3.Sub(r.ca, res[i-2].ca)
			v := r3.Sub(res[i+2].ca, r.ca)
			if k, err := geom.VecAngle(u, v); err == nil {
				ang.Mat[Kappa][i] = float32(k * geom.RadToDeg)
			}
		}
		if prev && r.ok(hasC|hasO) && res[i-1].ok(hasC|hasO) {
			u := r3.Sub(r.o, r.c)
			v := r3.Sub(res[i-1].o, res[i-1].c)
			if t, err := geom.VecAngle(u, v); err == nil {
				ang.Mat[TCO][i] = float32(math.Cos(t))
			}
		}
	}
	return ang
}

// allCA says if residues from..to, inclusive, all have a CA.
func allCA(res []residue, from, to int) bool {
	for i := from; i <= to; i++ {
		if !res[i].ok(hasCA) {
			return false
		}
	}
	return true
}
