package pdb

import (
	"bytes"
	"log"
	"strconv"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
)

// Columns of ATOM and HETATM records, counting from zero.
const (
	colName  = 12
	colAlt   = 16
	colRes   = 17
	colChain = 21
	colNum   = 22
	colIns   = 26
	colX     = 30
	colY     = 38
	colZ     = 46
	minLen   = 54 // shortest line with coordinates
)

var (
	recAtom   = []byte("ATOM  ")
	recHetatm = []byte("HETATM")
	recTer    = []byte("TER")
	recEndmdl = []byte("ENDMDL")
)

// field returns columns from..to of a line, without blanks.
func field(line []byte, from, to int) []byte {
	return bytes.TrimSpace(line[from:to])
}

func getFloat(line []byte, from int) (float32, error) {
	x, err := strconv.ParseFloat(string(field(line, from, from+8)), 32)
	return float32(x), err
}

// parse reads the atoms in atnames from the ATOM and HETATM records of
// the first model. Only residues with names we know as amino acids are
// kept, so waters and ligands disappear. For alternate locations, we
// keep the first one we see.
func parse(data []byte, atnames []string, outlog *log.Logger) (cmmn.ChnSl, error) {
	wanted := make(map[string]bool, len(atnames))
	for _, a := range atnames {
		wanted[a] = true
	}
	var chns cmmn.ChnSl
	var cur *cmmn.ChainBldr
	finish := func() {
		if cur != nil && cur.C.Len() > 0 {
			chns = append(chns, cur.C)
		}
		cur = nil
	}
	nline := 0
	for len(data) > 0 {
		var line []byte
		if i := bytes.IndexByte(data, '\n'); i >= 0 {
			line, data = data[:i], data[i+1:]
		} else {
			line, data = data, nil
		}
		line = bytes.TrimRight(line, "\r")
		nline++
		switch {
		case bytes.HasPrefix(line, recEndmdl):
			finish()
			return done(chns)
		case bytes.HasPrefix(line, recTer):
			finish()
			continue
		case bytes.HasPrefix(line, recAtom), bytes.HasPrefix(line, recHetatm):
		default:
			continue
		}
		if len(line) < minLen {
			outlog.Println("line", nline, "too short, skipped")
			continue
		}
		resName := string(field(line, colRes, colRes+3))
		if !cmmn.IsAmino(resName) {
			continue
		}
		atName := string(field(line, colName, colName+4))
		if !wanted[atName] {
			continue
		}
		if alt := line[colAlt]; alt != ' ' && alt != 'A' {
			continue
		}
		num, err := strconv.Atoi(string(field(line, colNum, colNum+4)))
		if err != nil {
			outlog.Println("line", nline, "bad residue number, skipped")
			continue
		}
		var x cmmn.Xyz
		var ex, ey, ez error
		x.X, ex = getFloat(line, colX)
		x.Y, ey = getFloat(line, colY)
		x.Z, ez = getFloat(line, colZ)
		if ex != nil || ey != nil || ez != nil {
			outlog.Println("line", nline, "bad coordinates, skipped")
			continue
		}
		chainID := string(line[colChain])
		if cur != nil && cur.C.ChainID != chainID {
			finish()
		}
		if cur == nil {
			cur = cmmn.NewChainBldr(chainID, atnames)
		}
		cur.Add(num, line[colIns], resName, atName, x)
	}
	finish()
	return done(chns)
}

func done(chns cmmn.ChnSl) (cmmn.ChnSl, error) {
	if len(chns) == 0 {
		return nil, ErrNoAtoms
	}
	return chns, nil
}
