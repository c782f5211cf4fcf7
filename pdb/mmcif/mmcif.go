package mmcif

import (
	"bufio"
	"bytes"
	"io"
	"log"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
)

const maxLine = 1 << 20 // longest line we will read

// cmmtScanner is a wrapper around bufio.Scanner that jumps over blank
// lines and lines starting with a comment character. It counts lines
// so error messages can say where we were.
type cmmtScanner struct {
	*bufio.Scanner
	ctoken []byte // what cbytes returns
	n      int    // line number
	cmmt   byte
	err    error // first error seen
}

func newCmmtScanner(r io.Reader, cmmt byte) *cmmtScanner {
	s := bufio.NewScanner(r)
	s.Buffer(make([]byte, 0, 64*1024), maxLine)
	return &cmmtScanner{Scanner: s, cmmt: cmmt}
}

// cscan moves to the next line with something on it. It returns false
// at the end of input or after an error and cbytes is then nil.
func (s *cmmtScanner) cscan() bool {
	s.ctoken = nil
	if s.err != nil {
		return false
	}
	for s.Scan() {
		s.n++
		b := bytes.TrimRight(s.Bytes(), " \t\r")
		if len(b) == 0 || b[0] == s.cmmt {
			continue
		}
		s.ctoken = b
		return true
	}
	if err := s.Err(); err != nil {
		s.fail(err)
	}
	return false
}

// cbytes is the current line. It is only good until the next cscan.
func (s *cmmtScanner) cbytes() []byte { return s.ctoken }

// fail stores the first error along with the line we were on.
func (s *cmmtScanner) fail(err error) {
	if s.err != nil {
		return
	}
	s.err = &readError{n: s.n, inline: string(s.ctoken), err: err}
}

// reader holds the state while going through a file.
type reader struct {
	*cmmtScanner
	wanted   map[string]bool // atom names to keep
	atnames  []string
	outlog   *log.Logger
	headers  [][]byte
	scrtch   [][]byte
	entry    string
	atomSite bool // have we seen the table
	chns     cmmn.ChnSl
}

// stateFn is the type of state function. It returns the next state.
type stateFn func(*reader) stateFn

var (
	sData = []byte("data_")
	sLoop = []byte("loop_")
	sItem = []byte("_")
	sText = []byte(";")
)

// isSpecial says the line is not more of a table. The end of input
// also counts.
func isSpecial(b []byte) bool {
	return b == nil || bytes.HasPrefix(b, sItem) || bytes.HasPrefix(b, sLoop) ||
		bytes.HasPrefix(b, sData)
}

// stateTop looks at the current line and decides where to go next.
func stateTop(rd *reader) stateFn {
	b := rd.cbytes()
	switch {
	case b == nil:
		return nil
	case bytes.HasPrefix(b, sLoop):
		return stateLoop
	case bytes.HasPrefix(b, sData):
		return stateData
	case bytes.HasPrefix(b, sItem):
		return stateDItem
	default:
		rd.fail(ErrSyntax)
		return nil
	}
}

func stateData(rd *reader) stateFn {
	rd.cscan()
	return stateTop
}

// readText collects a value that starts with a line beginning ";" and
// leaves us on the closing line. Newlines are dropped.
func (rd *reader) readText() ([]byte, bool) {
	txt := append([]byte(nil), rd.cbytes()[1:]...)
	for rd.cscan() {
		b := rd.cbytes()
		if bytes.HasPrefix(b, sText) {
			return txt, true
		}
		txt = append(txt, b...)
	}
	rd.fail(ErrRow)
	return nil, false
}

func (rd *reader) skipText() bool {
	_, ok := rd.readText()
	return ok
}

// stateDItem jumps over a data item. The value is usually on the same
// line, but may be on the next one or in a block of text. We only
// keep the entry name for the log.
func stateDItem(rd *reader) stateFn {
	w, err := words(rd.cbytes(), rd.scrtch)
	if err != nil {
		rd.fail(err)
		return nil
	}
	rd.scrtch = w
	if len(w) >= 2 {
		if string(w[0]) == "_entry.id" {
			rd.entry = string(w[1])
		}
		rd.cscan()
		return stateTop
	}
	if !rd.cscan() {
		rd.fail(ErrRow)
		return nil
	}
	if bytes.HasPrefix(rd.cbytes(), sText) && !rd.skipText() {
		return nil
	}
	rd.cscan()
	return stateTop
}

func stateLoop(rd *reader) stateFn {
	rd.cscan()
	return stateLoopHdr
}

// stateLoopHdr collects the column names of a table and decides if we
// want it.
func stateLoopHdr(rd *reader) stateFn {
	rd.headers = rd.headers[:0]
	for b := rd.cbytes(); bytes.HasPrefix(b, sItem); b = rd.cbytes() {
		rd.headers = append(rd.headers, append([]byte(nil), b...))
		rd.cscan()
	}
	if len(rd.headers) == 0 {
		rd.fail(ErrSyntax)
		return nil
	}
	if bytes.HasPrefix(rd.headers[0], atomSitePrefix) {
		return stateAtomTable
	}
	return stateSkipLoopTable
}

// stateSkipLoopTable reads the rows of a table we do not want.
func stateSkipLoopTable(rd *reader) stateFn {
	for b := rd.cbytes(); !isSpecial(b); b = rd.cbytes() {
		if bytes.HasPrefix(b, sText) && !rd.skipText() {
			return nil
		}
		rd.cscan()
	}
	return stateTop
}

// Read goes through an mmCIF file and returns the protein chains of the
// first model with the atoms in atnames. Lines we cannot use are noted
// in outlog. No error and no chains means the atom_site table had no
// protein in it.
func Read(r io.Reader, atnames []string, outlog *log.Logger) (cmmn.ChnSl, error) {
	rd := &reader{
		cmmtScanner: newCmmtScanner(r, '#'),
		wanted:      make(map[string]bool, len(atnames)),
		atnames:     atnames,
		outlog:      outlog,
		scrtch:      make([][]byte, 0, 32),
	}
	for _, a := range atnames {
		rd.wanted[a] = true
	}
	if !rd.cscan() {
		if rd.err != nil {
			return nil, rd.err
		}
		return nil, ErrEmpty
	}
	for state := stateTop; state != nil; {
		state = state(rd)
	}
	if rd.err != nil {
		return nil, rd.err
	}
	if !rd.atomSite {
		return nil, ErrNoAtomSite
	}
	outlog.Println("mmcif entry", rd.entry, len(rd.chns), "chains")
	return rd.chns, nil
}
