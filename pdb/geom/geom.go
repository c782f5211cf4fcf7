// Calculate some geometries, lengths, angles and dihedrals.
// Coordinates are stored as float32 in cmmn, but the arithmetic is
// done in float64 with gonum's r3 vectors.

package geom

import (
	"math"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"gonum.org/v1/gonum/spatial/r3"
)

const (
	RadToDeg = 180 / math.Pi
	tiny     = 1e-12 // squared lengths below this are zero
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrBroken  Error = "broken coordinate"
	ErrZeroLen Error = "zero length vector"
)

// Vec converts coordinates to a gonum vector.
func Vec(x cmmn.Xyz) r3.Vec {
	return r3.Vec{X: float64(x.X), Y: float64(x.Y), Z: float64(x.Z)}
}

// Dist is the distance between two points.
func Dist(a, b r3.Vec) float64 { return r3.Norm(r3.Sub(a, b)) }

// XyzDist gets the distance between two points, but if either of them
// is broken, it returns an error.
func XyzDist(x1, x2 cmmn.Xyz) (float64, error) {
	if !x1.Ok() || !x2.Ok() {
		return 0, ErrBroken
	}
	return Dist(Vec(x1), Vec(x2)), nil
}

// clampCos keeps numerical noise from pushing a cosine outside
// the domain of acos.
func clampCos(c float64) float64 {
	if c > 1 {
		return 1
	}
	if c < -1 {
		return -1
	}
	return c
}

// VecAngle returns the angle between two vectors in radians.
func VecAngle(u, v r3.Vec) (float64, error) {
	l2 := r3.Norm2(u) * r3.Norm2(v)
	if l2 < tiny {
		return 0, ErrZeroLen
	}
	return math.Acos(clampCos(r3.Dot(u, v) / math.Sqrt(l2))), nil
}

// Angle takes three points and returns the angle at the middle one.
func Angle(a, b, c r3.Vec) (float64, error) {
	return VecAngle(r3.Sub(a, b), r3.Sub(c, b))
}

// XyzAngle is Angle for cmmn coordinates.
func XyzAngle(a, b, c cmmn.Xyz) (float64, error) {
	if !a.Ok() || !b.Ok() || !c.Ok() {
		return 0, ErrBroken
	}
	return Angle(Vec(a), Vec(b), Vec(c))
}

// Dihedral takes four points and returns the dihedral angle in
// radians, in the range -pi to pi. The bonds i-j and k-l are projected
// onto the plane perpendicular to j-k and we take the angle between
// the projections. The sign is that of r_ij . (r_jk x r_kl), so looking
// down j-k, a clockwise turn from i to l is positive.
func Dihedral(ii, jj, kk, ll r3.Vec) (float64, error) {
	rij := r3.Sub(jj, ii)
	rkj := r3.Sub(jj, kk)
	rjk := r3.Sub(kk, jj)
	rkl := r3.Sub(ll, kk)
	lkj := r3.Norm2(rkj)
	if lkj < tiny {
		return 0, ErrZeroLen
	}
	rim := r3.Sub(rij, r3.Scale(r3.Dot(rij, rkj)/lkj, rkj))
	rln := r3.Sub(r3.Scale(r3.Dot(rkl, rkj)/lkj, rkj), rkl)
	tau, err := VecAngle(rim, rln)
	if err != nil {
		return 0, err
	}
	if r3.Dot(rij, r3.Cross(rjk, rkl)) >= 0 {
		return tau, nil
	}
	return -tau, nil
}

// XyzDhdrl is Dihedral for cmmn coordinates.
func XyzDhdrl(ii, jj, kk, ll cmmn.Xyz) (float64, error) {
	if !ii.Ok() || !jj.Ok() || !kk.Ok() || !ll.Ok() {
		return 0, ErrBroken
	}
	return Dihedral(Vec(ii), Vec(jj), Vec(kk), Vec(ll))
}

// Place puts a new point d so that |cd| = bond, angle bcd = theta and
// dihedral abcd = phi. Angles are in radians. This is the usual way of
// building coordinates from internal coordinates.
func Place(a, b, c r3.Vec, bond, theta, phi float64) r3.Vec {
	bc := r3.Unit(r3.Sub(c, b))
	n := r3.Unit(r3.Cross(r3.Sub(b, a), bc))
	m := r3.Cross(n, bc)
	d2 := r3.Vec{
		X: -bond * math.Cos(theta),
		Y: bond * math.Sin(theta) * math.Cos(phi),
		Z: bond * math.Sin(theta) * math.Sin(phi),
	}
	d := r3.Add(r3.Add(r3.Scale(d2.X, bc), r3.Scale(d2.Y, m)), r3.Scale(d2.Z, n))
	return r3.Add(c, d)
}
