package mmcif

import (
	"bytes"
	"fmt"
	"strconv"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
)

var atomSitePrefix = []byte("_atom_site.")

// cifCol is a column of the atom_site table. If name is not there, we
// try alt.
type cifCol struct {
	name, alt string
	need      bool
	n         int // where we found it, -1 if we did not
}

// find looks for the column in pos, which maps names to positions.
func (cf *cifCol) find(pos map[string]int) error {
	cf.n = -1
	for _, s := range []string{cf.name, cf.alt} {
		if i, ok := pos[s]; ok && s != "" {
			cf.n = i
			return nil
		}
	}
	if cf.need {
		return fmt.Errorf("%w: %s", ErrColumn, cf.name)
	}
	return nil
}

// atomCols are the columns we use.
type atomCols struct {
	atom, alt, comp, asym, seq, ins, x, y, z, model cifCol
}

func newAtomCols() atomCols {
	return atomCols{
		atom:  cifCol{name: "auth_atom_id", alt: "label_atom_id", need: true},
		alt:   cifCol{name: "label_alt_id"},
		comp:  cifCol{name: "auth_comp_id", alt: "label_comp_id", need: true},
		asym:  cifCol{name: "auth_asym_id", alt: "label_asym_id", need: true},
		seq:   cifCol{name: "auth_seq_id", alt: "label_seq_id", need: true},
		ins:   cifCol{name: "pdbx_PDB_ins_code"},
		x:     cifCol{name: "Cartn_x", need: true},
		y:     cifCol{name: "Cartn_y", need: true},
		z:     cifCol{name: "Cartn_z", need: true},
		model: cifCol{name: "pdbx_PDB_model_num"},
	}
}

// find gets the column positions from the table headers, which look
// like "_atom_site.Cartn_x".
func (ac *atomCols) find(headers [][]byte) error {
	pos := make(map[string]int, len(headers))
	for i, h := range headers {
		pos[string(bytes.TrimPrefix(h, atomSitePrefix))] = i
	}
	for _, cf := range []*cifCol{&ac.atom, &ac.alt, &ac.comp, &ac.asym, &ac.seq,
		&ac.ins, &ac.x, &ac.y, &ac.z, &ac.model} {
		if err := cf.find(pos); err != nil {
			return err
		}
	}
	return nil
}

// isDotOrQ says if a value is missing.
func isDotOrQ(s []byte) bool {
	return len(s) == 1 && (s[0] == '.' || s[0] == '?')
}

// getxyz gets the coordinates from a row. After the first error, the
// remaining calls do nothing.
func getxyz(w [][]byte, ac *atomCols) (cmmn.Xyz, error) {
	var err error
	ff := func(cf cifCol) float32 {
		if err != nil {
			return 0
		}
		var x float64
		x, err = strconv.ParseFloat(string(w[cf.n]), 32)
		return float32(x)
	}
	var xyz cmmn.Xyz
	xyz.X = ff(ac.x)
	xyz.Y = ff(ac.y)
	xyz.Z = ff(ac.z)
	return xyz, err
}

// siteTable turns atom_site rows into chains.
type siteTable struct {
	rd    *reader
	cols  atomCols
	ncol  int
	model []byte // the first model number we saw
	cur   *cmmn.ChainBldr
}

func (st *siteTable) finish() {
	if st.cur != nil && st.cur.C.Len() > 0 {
		st.rd.chns = append(st.rd.chns, st.cur.C)
	}
	st.cur = nil
}

// row looks at one atom. For alternate locations we keep "A" or the
// only one there is.
func (st *siteTable) row(w [][]byte) {
	ac := &st.cols
	if ac.model.n >= 0 {
		m := w[ac.model.n]
		if st.model == nil {
			st.model = append([]byte(nil), m...)
		} else if !bytes.Equal(m, st.model) {
			return
		}
	}
	resName := string(w[ac.comp.n])
	if !cmmn.IsAmino(resName) {
		return
	}
	atName := string(w[ac.atom.n])
	if !st.rd.wanted[atName] {
		return
	}
	if ac.alt.n >= 0 {
		if a := w[ac.alt.n]; !isDotOrQ(a) && string(a) != "A" {
			return
		}
	}
	num, err := strconv.Atoi(string(w[ac.seq.n]))
	if err != nil {
		st.rd.outlog.Println("line", st.rd.n, "bad residue number, skipped")
		return
	}
	ins := byte(' ')
	if ac.ins.n >= 0 {
		if s := w[ac.ins.n]; len(s) > 0 && !isDotOrQ(s) {
			ins = s[0]
		}
	}
	x, err := getxyz(w, ac)
	if err != nil {
		st.rd.outlog.Println("line", st.rd.n, "bad coordinates, skipped")
		return
	}
	chainID := string(w[ac.asym.n])
	if st.cur != nil && st.cur.C.ChainID != chainID {
		st.finish()
	}
	if st.cur == nil {
		st.cur = cmmn.NewChainBldr(chainID, st.rd.atnames)
	}
	st.cur.Add(num, ins, resName, atName, x)
}

// stateAtomTable reads the coordinates. Most files have one row per
// line and those go straight to row. Anything else is copied, since
// the scanner reuses its buffer, and cut into rows.
func stateAtomTable(rd *reader) stateFn {
	rd.atomSite = true
	st := &siteTable{rd: rd, cols: newAtomCols(), ncol: len(rd.headers)}
	if err := st.cols.find(rd.headers); err != nil {
		rd.fail(err)
		return nil
	}
	var carry [][]byte
	for b := rd.cbytes(); !isSpecial(b); b = rd.cbytes() {
		var w [][]byte
		if bytes.HasPrefix(b, sText) {
			txt, ok := rd.readText()
			if !ok {
				return nil
			}
			w = [][]byte{txt}
		} else {
			var err error
			if w, err = words(b, rd.scrtch); err != nil {
				rd.fail(err)
				return nil
			}
			rd.scrtch = w
		}
		if len(carry) == 0 && len(w) == st.ncol {
			st.row(w)
		} else {
			for _, s := range w {
				carry = append(carry, append([]byte(nil), s...))
			}
			for len(carry) >= st.ncol {
				st.row(carry[:st.ncol])
				carry = carry[st.ncol:]
			}
		}
		rd.cscan()
	}
	if len(carry) != 0 {
		rd.fail(ErrRow)
		return nil
	}
	st.finish()
	return stateTop
}
