package dssp

import (
	"fmt"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/geom"
	"gonum.org/v1/gonum/spatial/r3"
)

// atomBit says which atoms of a residue are present.
type atomBit uint8

const (
	hasN atomBit = 1 << iota
	hasCA
	hasC
	hasO
	hasH
	hasCB
)

// HBond is one slot in a residue's list of hydrogen bonds.
// Partner is a residue index, or -1 if the slot is empty.
type HBond struct {
	Partner int
	Energy  float64
}

var noHBond = HBond{Partner: -1}

// bridgePartner is one of the two bridge partners a residue can have.
type bridgePartner struct {
	partner int  // residue index, -1 when empty
	dir     int8 // parallel or antiparallel
	ladder  int  // ladder number, 0 until ladders are built
}

// residue is a row in the table we work on. All cross references are
// indices into the same table.
type residue struct {
	chn, ndx           int // chain and residue index in the caller's slice
	isPro              bool
	undef              bool // chain is CA-only, nothing is calculated
	n, ca, c, o, h, cb r3.Vec
	has                atomBit
	seg                int        // segment number from 1
	donor              [2]HBond   // NH of this residue to O of partner
	acceptor           [2]HBond   // O of this residue from NH of partner
	bp                 [2]bridgePartner
}

// ok says if all the atoms in b are present.
func (r *residue) ok(b atomBit) bool { return r.has&b == b }

// checkShape makes sure the per-residue slices of every chain agree.
func checkShape(chns cmmn.ChnSl) error {
	for i := range chns {
		c := &chns[i]
		n := c.Len()
		if c.ResName != nil && len(c.ResName) != n {
			return fmt.Errorf("chain %q: %d residue names for %d residues: %w",
				c.ChainID, len(c.ResName), n, ErrShape)
		}
		if c.InsCode != nil && len(c.InsCode) != n {
			return fmt.Errorf("chain %q: %d insertion codes for %d residues: %w",
				c.ChainID, len(c.InsCode), n, ErrShape)
		}
		for at, xs := range c.CoordSet {
			if len(xs) != n {
				return fmt.Errorf("chain %q: %d %s atoms for %d residues: %w",
					c.ChainID, len(xs), at, n, ErrShape)
			}
		}
	}
	return nil
}

// caOnly says if a chain has so few nitrogens that we should treat it
// as a CA trace. This is the case when there are fewer than half as many
// N atoms as CA atoms.
func caOnly(c *cmmn.Chain) bool {
	var nN, nCA int
	for _, x := range c.CoordSet[cmmn.AtN] {
		if x.Ok() {
			nN++
		}
	}
	for _, x := range c.CoordSet[cmmn.AtCA] {
		if x.Ok() {
			nCA++
		}
	}
	return 2*nN < nCA
}

// extract builds the residue table from a set of chains. offset[i] is
// the index in the table of the first residue of chain i.
func extract(chns cmmn.ChnSl) (res []residue, offset []int) {
	res = make([]residue, 0, chns.NRes())
	offset = make([]int, len(chns))
	type atSpec struct {
		name string
		bit  atomBit
	}
	atoms := []atSpec{
		{cmmn.AtN, hasN}, {cmmn.AtCA, hasCA}, {cmmn.AtC, hasC},
		{cmmn.AtO, hasO}, {cmmn.AtCB, hasCB},
	}
	for ic := range chns {
		c := &chns[ic]
		offset[ic] = len(res)
		undef := caOnly(c)
		for i := 0; i < c.Len(); i++ {
			r := residue{
				chn:      ic,
				ndx:      i,
				undef:    undef,
				donor:    [2]HBond{noHBond, noHBond},
				acceptor: [2]HBond{noHBond, noHBond},
				bp:       [2]bridgePartner{{partner: -1}, {partner: -1}},
			}
			if c.ResName != nil {
				r.isPro = c.ResName[i] == "PRO"
			}
			for _, at := range atoms {
				x := c.At(at.name, i)
				if !x.Ok() {
					continue
				}
				r.has |= at.bit
				v := geom.Vec(x)
				switch at.bit {
				case hasN:
					r.n = v
				case hasCA:
					r.ca = v
				case hasC:
					r.c = v
				case hasO:
					r.o = v
				case hasCB:
					r.cb = v
				}
			}
			res = append(res, r)
		}
	}
	return res, offset
}

// sameSeg says if residues i and j both exist and are in the same
// segment. Residues in a CA-only chain are never linked.
func sameSeg(res []residue, i, j int) bool {
	if i < 0 || j < 0 || i >= len(res) || j >= len(res) {
		return false
	}
	return res[i].seg == res[j].seg && !res[i].undef
}
