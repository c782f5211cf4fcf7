package dssp_test

import (
	"math"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

const deg = math.Pi / 180

// Ideal backbone geometry.
const (
	bondNCA  = 1.458
	bondCAC  = 1.525
	bondCN   = 1.329
	bondCO   = 1.231
	angNCAC  = 111.2 * deg
	angCACN  = 116.2 * deg
	angCNCA  = 121.7 * deg
	angCACO  = 120.5 * deg
	omegaTrs = 180 * deg
)

func xyz(v r3.Vec) cmmn.Xyz {
	return cmmn.Xyz{X: float32(v.X), Y: float32(v.Y), Z: float32(v.Z)}
}

// backbone builds a poly-alanine chain from phi and psi, in degrees,
// with trans peptides and no CB.
func backbone(id string, phi, psi []float64) *cmmn.Chain {
	n := len(phi)
	c := cmmn.NewChain(id, n, cmmn.BackboneAtoms)
	ca := r3.Vec{}
	cc := r3.Vec{X: bondCAC}
	nn := r3.Vec{X: bondNCA * math.Cos(angNCAC), Y: bondNCA * math.Sin(angNCAC)}
	for i := 0; i < n; i++ {
		if i > 0 {
			pn, pca, pc := nn, ca, cc
			nn = geom.Place(pn, pca, pc, bondCN, angCACN, psi[i-1]*deg)
			ca = geom.Place(pca, pc, nn, bondNCA, angCNCA, omegaTrs)
			cc = geom.Place(pc, nn, ca, bondCAC, angNCAC, phi[i]*deg)
		}
		o := geom.Place(nn, ca, cc, bondCO, angCACO, (psi[i]+180)*deg)
		c.CoordSet[cmmn.AtN][i] = xyz(nn)
		c.CoordSet[cmmn.AtCA][i] = xyz(ca)
		c.CoordSet[cmmn.AtC][i] = xyz(cc)
		c.CoordSet[cmmn.AtO][i] = xyz(o)
		c.NumLbl[i] = i + 1
		c.ResName[i] = "ALA"
	}
	return c
}

func fill(n int, x float64) []float64 {
	s := make([]float64, n)
	for i := range s {
		s[i] = x
	}
	return s
}

// helix is an ideal alpha helix of n residues.
func helix(id string, n int) *cmmn.Chain {
	return backbone(id, fill(n, -57), fill(n, -47))
}

// move applies f to every atom of a chain.
func move(c *cmmn.Chain, from int, f func(r3.Vec) r3.Vec) {
	for _, xs := range c.CoordSet {
		for i := from; i < len(xs); i++ {
			if xs[i].Ok() {
				xs[i] = xyz(f(geom.Vec(xs[i])))
			}
		}
	}
}

// strand is a fully extended strand of n residues, turned so the
// first and last CA lie along x.
func strand(id string, n int) *cmmn.Chain {
	c := backbone(id, fill(n, 180), fill(n, 180))
	ca0 := geom.Vec(c.At(cmmn.AtCA, 0))
	caN := geom.Vec(c.At(cmmn.AtCA, n-1))
	t := -math.Atan2(caN.Y-ca0.Y, caN.X-ca0.X)
	sin, cos := math.Sincos(t)
	move(c, 0, func(v r3.Vec) r3.Vec {
		return r3.Vec{X: v.X*cos - v.Y*sin, Y: v.X*sin + v.Y*cos, Z: v.Z}
	})
	return c
}

// sheet is two antiparallel strands of n residues, chains A and B. B is
// A turned through 180 degrees about an axis 2 A from the middle CA.
// With n = 5, residues 1, 2, 3 of A pair with 3, 2, 1 of B.
func sheet(n int) cmmn.ChnSl {
	a := strand("A", n)
	mid := geom.Vec(a.At(cmmn.AtCA, n/2))
	cx, cy := mid.X, mid.Y-2.0
	b := strand("B", n)
	move(b, 0, func(v r3.Vec) r3.Vec {
		return r3.Vec{X: 2*cx - v.X, Y: 2*cy - v.Y, Z: v.Z}
	})
	return cmmn.ChnSl{*a, *b}
}

// trim keeps residues from to to-1 of c.
func trim(c *cmmn.Chain, from, to int) {
	c.NumLbl = c.NumLbl[from:to]
	c.InsCode = c.InsCode[from:to]
	c.ResName = c.ResName[from:to]
	for at, xs := range c.CoordSet {
		c.CoordSet[at] = xs[from:to]
	}
}

// lone is the middle three residues of each strand of sheet(5), which
// leaves room for one bridge.
func lone() cmmn.ChnSl {
	chns := sheet(5)
	for i := range chns {
		trim(&chns[i], 1, 4)
	}
	return chns
}

// parallelPair is two strands of six residues side by side, running
// the same way.
func parallelPair() cmmn.ChnSl {
	a := strand("A", 6)
	b := strand("B", 6)
	move(b, 0, func(v r3.Vec) r3.Vec { return r3.Add(v, r3.Vec{X: 0.4, Y: 5.7}) })
	return cmmn.ChnSl{*a, *b}
}

// withTurn is six extended residues, then residues with the given phi
// and psi, then six more extended residues.
func withTurn(phi, psi []float64) *cmmn.Chain {
	ext := func(x float64) []float64 { return fill(6, x) }
	phi = append(append(ext(-120), phi...), ext(-120)...)
	psi = append(append(ext(130), psi...), ext(130)...)
	return backbone("A", phi, psi)
}

// clash is two short extended chains with residue 1 of B pushed into
// residue 1 of A. With overlap, N of B sits on O of A. Otherwise the
// N-H of B points at the O of A with H 0.5 A short of it.
func clash(overlap bool) cmmn.ChnSl {
	a := backbone("A", fill(3, -120), fill(3, 130))
	b := backbone("B", fill(3, -120), fill(3, 130))
	target := geom.Vec(a.At(cmmn.AtO, 1))
	if !overlap {
		hdir := r3.Unit(r3.Sub(geom.Vec(b.At(cmmn.AtC, 0)), geom.Vec(b.At(cmmn.AtO, 0))))
		target = r3.Sub(target, r3.Scale(1.5, hdir))
	}
	shift := r3.Sub(target, geom.Vec(b.At(cmmn.AtN, 1)))
	move(b, 0, func(v r3.Vec) r3.Vec { return r3.Add(v, shift) })
	return cmmn.ChnSl{*a, *b}
}

// gapped is a 20 residue helix with residues 11 onwards pulled away so
// that C of residue 10 is 4 A from N of residue 11.
func gapped() *cmmn.Chain {
	c := helix("A", 20)
	cPrev := geom.Vec(c.At(cmmn.AtC, 9))
	nNext := geom.Vec(c.At(cmmn.AtN, 10))
	d := r3.Sub(nNext, cPrev)
	shift := r3.Scale(4.0-r3.Norm(d), r3.Unit(d))
	move(c, 10, func(v r3.Vec) r3.Vec { return r3.Add(v, shift) })
	return c
}
