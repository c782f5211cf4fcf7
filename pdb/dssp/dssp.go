package dssp

import (
	"log"

	"github.com/andrew-torda/matrix"
	"github.com/andrew-torda/sstruct/pdb/cmmn"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrEmpty  Error = "no residues to work on"
	ErrShape  Error = "per-residue slices do not have the same length"
	ErrTooBig Error = "too many residues"
)

// DfltMaxResidues is the limit if Options.MaxResidues is not set.
const DfltMaxResidues = 100000

// Options for Run. The zero value is fine.
type Options struct {
	Log         *log.Logger // warnings and notes go here, nil discards them
	MaxResidues int         // refuse bigger inputs, 0 means DfltMaxResidues
}

// ResInfo is what we found out about one residue. Residue indices in
// it refer to Result.Res.
type ResInfo struct {
	Chain    int // index of the chain in the slice given to Run
	Ndx      int // index of the residue in its chain
	Seg      int // segment number from 1
	CAOnly   bool
	HasH     bool
	Donor    [2]HBond // N-H of this residue to O of Partner, best first
	Acceptor [2]HBond // O of this residue from N-H of Partner, best first
	Partner  [2]int   // bridge partners, -1 if none
	Ladder   [2]int   // ladder numbers, negative for antiparallel
	Sheet    int      // 0 if not in a sheet
}

// Result of a run. Res, Detail and Code have one entry per residue over
// all chains, in order. Offset[i] is where chain i starts.
type Result struct {
	Segments []Segment
	Offset   []int
	Res      []ResInfo
	NHBond   int // bonds held in donor slots
	NLadder  int
	NSheet   int
	NWarn    int
	Angles   *matrix.FMatrix2d // NAngle rows, one column per residue
	Features *Features
	Detail   []byte // codes with lower case first and last helix residues
	Code     []byte // the nine letter codes, as written to the chains
}

// Angle returns angle k of residue i, or AngUndef.
func (r *Result) Angle(k AngleKind, i int) float64 {
	return float64(r.Angles.Mat[k][i])
}

// ChainCode returns the codes for chain c.
func (r *Result) ChainCode(c int) []byte {
	end := len(r.Code)
	if c+1 < len(r.Offset) {
		end = r.Offset[c+1]
	}
	return r.Code[r.Offset[c]:end]
}

// detector holds the tables for one run.
type detector struct {
	res []residue
	ft  *Features
	ang *matrix.FMatrix2d
	w   *warner
}

// Run assigns secondary structure to a set of chains. They are treated
// as one list of residues, so bridges and sheets can form between
// chains. On success each chain's SecStruct is set to its codes. On
// failure the chains are not touched.
func Run(chns cmmn.ChnSl, opts *Options) (*Result, error) {
	if opts == nil {
		opts = &Options{}
	}
	if err := checkShape(chns); err != nil {
		return nil, err
	}
	n := chns.NRes()
	if n == 0 {
		return nil, ErrEmpty
	}
	maxRes := opts.MaxResidues
	if maxRes <= 0 {
		maxRes = DfltMaxResidues
	}
	if n > maxRes {
		return nil, ErrTooBig
	}
	w := newWarner(opts.Log)
	res, offset := extract(chns)
	segs := segments(res)
	for _, s := range segs {
		if s.CAOnly && s.Start == offset[s.Chain] {
			w.info("chain %q has only CA atoms, no assignment", chns[s.Chain].ChainID)
		}
	}
	placeH(res, w)
	nBond := hbonds(res, w)
	d := &detector{res: res, ft: newFeatures(n), ang: calcAngles(res), w: w}
	d.turns()
	d.bends()
	ladders := d.bridges()
	sheet, nSheet := d.sheets()
	detail := d.summary()
	code := toCode(detail)

	r := &Result{
		Segments: segs,
		Offset:   offset,
		Res:      make([]ResInfo, n),
		NHBond:   nBond,
		NLadder:  len(ladders),
		NSheet:   nSheet,
		Angles:   d.ang,
		Features: d.ft,
		Detail:   detail,
		Code:     code,
	}
	for i := range res {
		r.Res[i] = d.info(i, sheet[i])
	}
	r.NWarn = w.n
	writeBack(chns, offset, code)
	return r, nil
}

// info copies what we know about residue i to the exported form.
func (d *detector) info(i, sheet int) ResInfo {
	x := &d.res[i]
	ri := ResInfo{
		Chain:    x.chn,
		Ndx:      x.ndx,
		Seg:      x.seg,
		CAOnly:   x.undef,
		HasH:     x.ok(hasH),
		Donor:    x.donor,
		Acceptor: x.acceptor,
		Sheet:    sheet,
	}
	for k, p := range x.bp {
		ri.Partner[k] = p.partner
		ri.Ladder[k] = p.ladder * int(p.dir)
	}
	return ri
}

// writeBack gives each chain its own copy of its codes.
func writeBack(chns cmmn.ChnSl, offset []int, code []byte) {
	for i := range chns {
		n := chns[i].Len()
		chns[i].SecStruct = append([]byte(nil), code[offset[i]:offset[i]+n]...)
	}
}
