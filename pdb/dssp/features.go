package dssp

import (
	"github.com/andrew-torda/matrix"
)

// Rows of the feature table. Each row has one byte per residue.
const (
	RowTurn3   = iota // turn markers for n = 3, 4, 5
	RowTurn4          //
	RowTurn5          //
	RowBridge1        // bridge label of the first partner
	RowBridge2        // bridge label of the second partner
	RowSheet          // sheet label
	RowStrand         // E, e inside a bulge, B for a lone bridge
	RowBend           // S
	RowChiral         // + or -
	NRow
)

const (
	neutral   = ' '
	turnStart = '>'
	turnEnd   = '<'
	turnBoth  = 'X'
)

// Features is the table of per-residue markers from which the summary
// is built. Once a cell is set it never goes back to neutral.
type Features struct {
	*matrix.BMatrix2d
	inTurn []bool // residue is covered by any n-turn
}

func newFeatures(n int) *Features {
	f := &Features{BMatrix2d: matrix.NewBMatrix2d(NRow, n), inTurn: make([]bool, n)}
	for _, row := range f.Mat {
		for i := range row {
			row[i] = neutral
		}
	}
	return f
}

// Get returns the marker in a row for residue i.
func (f *Features) Get(row, i int) byte { return f.Mat[row][i] }

// InTurn says if residue i is covered by an n-turn of any length.
func (f *Features) InTurn(i int) bool { return f.inTurn[i] }

func turnRow(n int) int { return RowTurn3 + n - 3 }

// isStart says if an n-turn starts at residue i.
func (f *Features) isStart(n, i int) bool {
	if i < 0 || i >= len(f.inTurn) {
		return false
	}
	c := f.Mat[turnRow(n)][i]
	return c == turnStart || c == turnBoth
}

// markTurn records an n-turn from i to i+n. Start and end markers win
// over the digit used in the middle, and a residue which is both gets X.
func (f *Features) markTurn(n, i int) {
	row := f.Mat[turnRow(n)]
	row[i+n] = turnEnd
	for j := i + 1; j < i+n; j++ {
		if row[j] == neutral {
			row[j] = byte('0' + n)
		}
	}
	if row[i] == turnEnd {
		row[i] = turnBoth
	} else {
		row[i] = turnStart
	}
	for j := i; j <= i+n; j++ {
		f.inTurn[j] = true
	}
}

// strandRank orders the markers in the strand row so a weaker one never
// overwrites a stronger one.
func strandRank(c byte) int {
	switch c {
	case 'B':
		return 1
	case 'e':
		return 2
	case 'E':
		return 3
	}
	return 0
}

func (f *Features) markStrand(i int, c byte) {
	if strandRank(c) > strandRank(f.Mat[RowStrand][i]) {
		f.Mat[RowStrand][i] = c
	}
}

// letter turns a ladder or sheet number (from 1) into a label. There are
// only 26 letters, so labels wrap around and the caller gets told.
func letter(id int, lower bool) (c byte, wrapped bool) {
	c = byte('A' + (id-1)%26)
	if lower {
		c += 'a' - 'A'
	}
	return c, id > 26
}

// labeler hands out labels for one category and warns the first time
// it has to wrap.
type labeler struct {
	what   string
	warned bool
	w      *warner
}

func (l *labeler) label(id int, lower bool) byte {
	c, wrapped := letter(id, lower)
	if wrapped && !l.warned {
		l.w.warn("more than 26 %s, labels wrap around", l.what)
		l.warned = true
	}
	return c
}
