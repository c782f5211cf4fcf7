// Package pdb/cmmn has common definitions for coordinates and
// chains. It is what the reader hands to the secondary structure code
// and where the secondary structure code writes its answer.
package cmmn

import (
	"math"
)

// Does our data come from a file or http source ?
const (
	FileSrc byte = iota
	HTTPSrc
)

// Exit values for the programs under cmd.
const (
	ExitSuccess = iota
	ExitFailure
	ExitUsageError
)

type Xyz struct{ X, Y, Z float32 }
type XyzSl []Xyz // xyz's are coordinates
type CoordSet map[string]XyzSl

// BrokenXyz marks an atom which is not present.
var BrokenXyz = Xyz{math.MaxFloat32, 0, -math.MaxFloat32}

var BrokenResNum int = -9999

func (xyz *Xyz) Ok() bool {
	return *xyz != BrokenXyz
}

// Backbone atom names. These are the keys we use in a CoordSet.
const (
	AtN  = "N"
	AtCA = "CA"
	AtC  = "C"
	AtO  = "O"
	AtCB = "CB"
)

// BackboneAtoms is the default list of atoms a reader should keep.
var BackboneAtoms = []string{AtN, AtCA, AtC, AtO, AtCB}

// A Chain is one model, one chain. Per-residue slices (NumLbl, InsCode,
// ResName and every XyzSl in CoordSet) are parallel and have the same
// length.
type Chain struct {
	ChainID   string   // Name, like "A" or "B"
	MdlNum    int16    // Model number
	NumLbl    []int    // residue numbers from file. Not real indices
	InsCode   []byte   // Insertion code, ' ' or 0 if there is none
	ResName   []string // three letter residue names, "ALA", "PRO", ...
	CoordSet  CoordSet
	SecStruct []byte // one secondary structure code per residue, filled by dssp
}

// NewChain returns a chain with room for n residues. Every atom in
// atnames gets a slice of n BrokenXyz.
func NewChain(id string, n int, atnames []string) *Chain {
	c := &Chain{
		ChainID:  id,
		NumLbl:   make([]int, n),
		InsCode:  make([]byte, n),
		ResName:  make([]string, n),
		CoordSet: make(CoordSet, len(atnames)),
	}
	for _, at := range atnames {
		xs := make(XyzSl, n)
		for i := range xs {
			xs[i] = BrokenXyz
		}
		c.CoordSet[at] = xs
	}
	return c
}

// Len is the number of residues in a chain.
func (c *Chain) Len() int { return len(c.NumLbl) }

// At returns the coordinates of atom atname in residue i. If the atom
// is not there, it returns BrokenXyz.
func (c *Chain) At(atname string, i int) Xyz {
	xs, ok := c.CoordSet[atname]
	if !ok || i < 0 || i >= len(xs) {
		return BrokenXyz
	}
	return xs[i]
}

// Seq returns the one letter sequence of the chain.
func (c *Chain) Seq() []byte {
	s := make([]byte, len(c.ResName))
	for i, r := range c.ResName {
		s[i] = OneLetter(r)
	}
	return s
}

// This is obviously just a slice of chains, but we have to define a type
// if we want to define a method on it
type ChnSl []Chain

// ChainNames returns a slice with the names of the chains.
func (chns ChnSl) ChainNames() (ret []string) {
	ret = make([]string, len(chns))
	for i, k := range chns {
		ret[i] = k.ChainID
	}
	return
}

// NRes is the total number of residues over all chains.
func (chns ChnSl) NRes() (n int) {
	for i := range chns {
		n += chns[i].Len()
	}
	return n
}

var threeToOne = map[string]byte{
	"ALA": 'A', "ARG": 'R', "ASN": 'N', "ASP": 'D', "CYS": 'C',
	"GLU": 'E', "GLN": 'Q', "GLY": 'G', "HIS": 'H', "ILE": 'I',
	"LEU": 'L', "LYS": 'K', "MET": 'M', "PHE": 'F', "PRO": 'P',
	"SER": 'S', "THR": 'T', "TRP": 'W', "TYR": 'Y', "VAL": 'V',
	"SEC": 'U', "PYL": 'O', "MSE": 'M',
}

// OneLetter converts a three letter residue name to one letter. Anything
// we do not know is an X.
func OneLetter(s string) byte {
	if c, ok := threeToOne[s]; ok {
		return c
	}
	return 'X'
}

// IsAmino says if a residue name is one of the amino acids we know.
func IsAmino(s string) bool {
	_, ok := threeToOne[s]
	return ok
}

// ChainBldr grows a chain as a reader goes through a file, one atom at
// a time.
type ChainBldr struct {
	C       Chain
	atnames []string
	lastNum int
	lastIns byte
}

func NewChainBldr(id string, atnames []string) *ChainBldr {
	return &ChainBldr{C: *NewChain(id, 0, atnames), atnames: atnames}
}

// Add puts atom at of residue num, ins. A change of residue number or
// insertion code starts a new residue with every atom broken. If an
// atom turns up twice, as with alternate locations, the first one is
// kept. Atoms we were not asked for are ignored.
func (b *ChainBldr) Add(num int, ins byte, resName, at string, x Xyz) {
	if _, ok := b.C.CoordSet[at]; !ok {
		return
	}
	if b.C.Len() == 0 || num != b.lastNum || ins != b.lastIns {
		b.C.NumLbl = append(b.C.NumLbl, num)
		b.C.InsCode = append(b.C.InsCode, ins)
		b.C.ResName = append(b.C.ResName, resName)
		for _, a := range b.atnames {
			b.C.CoordSet[a] = append(b.C.CoordSet[a], BrokenXyz)
		}
		b.lastNum, b.lastIns = num, ins
	}
	xs := b.C.CoordSet[at]
	if last := len(xs) - 1; !xs[last].Ok() {
		xs[last] = x
	}
}
