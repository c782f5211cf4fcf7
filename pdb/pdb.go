// This is the upper level for reading PDB files.
// Decide if a file is compressed or not, and what format
// we are going to read. Plain files are mapped into memory, compressed
// files and downloads are read through zwrap. The old format is parsed
// here, mmCIF goes to the mmcif package.

package pdb

import (
	"bufio"
	"bytes"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/mmcif"
	"github.com/andrew-torda/sstruct/pdb/zwrap"
	"github.com/edsrzf/mmap-go"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrFormat  Error = "cannot recognise format"
	ErrNoAtoms Error = "no protein atoms found"
	ErrSrc     Error = "unknown source type"
)

const (
	oldFmt byte = iota
	mmcifFmt
	unkFmt
)

// comparefirst says if s starts with the word w.
func comparefirst(s, w string) bool {
	return len(s) >= len(w) && s[:len(w)] == w
}

// lookInFile opens a file and guesses if it is in old PDB format or
// in mmcif.
func lookInFile(fname string) (byte, error) {
	pdbWords := []string{"HEADER", "COMPND", "SOURCE", "REMARK", "SEQRES", "HETATM", "ATOM", "MODEL"}
	mmcifWords := []string{"data_", "_entry.id", "loop_"}
	fp, err := os.Open(fname)
	if err != nil {
		return unkFmt, err
	}
	rdr, err := zwrap.WrapMaybe(fp)
	if err != nil {
		fp.Close()
		return unkFmt, fmt.Errorf("reading %s: %w", fname, err)
	}
	defer rdr.Close()

	const maxTestLines = 5000
	scnnr := bufio.NewScanner(bufio.NewReader(rdr))
	for i := 0; scnnr.Scan() && i < maxTestLines; i++ {
		s := scnnr.Text()
		for _, w := range mmcifWords {
			if comparefirst(s, w) {
				return mmcifFmt, nil
			}
		}
		for _, w := range pdbWords {
			if comparefirst(s, w) {
				return oldFmt, nil
			}
		}
	}
	return unkFmt, fmt.Errorf("%s: %w", fname, ErrFormat)
}

// oldOrMmcif decides what format we will use.
// Maybe is uses the file name or maybe it peeks inside.
// We cannot use the function from filepath to get the file type,
// since it will return .gz if we feed it a.pdb.gz.
func oldOrMmcif(fname string) (byte, error) {
	s := filepath.Base(fname)
	if i := strings.IndexByte(s, '.'); i != -1 {
		s = strings.ToLower(s[i+1:]) // change .ent to ent
		if strings.Contains(s, "pdb") || strings.Contains(s, "ent") {
			return oldFmt, nil
		} else if strings.Contains(s, "cif") {
			return mmcifFmt, nil
		}
	}
	return lookInFile(fname)
}

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// LogWhere decides where to send output. "" throws it away, "stdout"
// is standard output and anything else is a file we append to. The
// caller should close what we return when finished with the logger.
func LogWhere(outinfo string) (*log.Logger, io.Closer, error) {
	var iowriter io.Writer
	var closer io.Closer = nopCloser{}
	switch outinfo {
	case "":
		iowriter = io.Discard
	case "stdout":
		iowriter = os.Stdout
	default:
		fp, err := os.OpenFile(outinfo, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0644)
		if err != nil {
			return nil, nil, err
		}
		iowriter, closer = fp, fp
	}
	return log.New(iowriter, "", log.Lshortfile), closer, nil
}

// parseAs hands data to the parser for its format.
func parseAs(data []byte, typ byte, outlog *log.Logger) (cmmn.ChnSl, error) {
	if typ != mmcifFmt {
		return parse(data, cmmn.BackboneAtoms, outlog)
	}
	chns, err := mmcif.Read(bytes.NewReader(data), cmmn.BackboneAtoms, outlog)
	if err != nil {
		return nil, err
	}
	return done(chns)
}

// readMapped maps a plain file and parses it where it sits.
func readMapped(fp *os.File, typ byte, outlog *log.Logger) (cmmn.ChnSl, error) {
	fi, err := fp.Stat()
	if err != nil {
		return nil, err
	}
	if fi.Size() == 0 {
		return nil, fmt.Errorf("%s: %w", fp.Name(), ErrNoAtoms)
	}
	mm, err := mmap.Map(fp, mmap.RDONLY, 0)
	if err != nil {
		return nil, err
	}
	defer mm.Unmap()
	return parseAs(mm, typ, outlog)
}

// readStream slurps a reader, which may be a decompressor or an http
// body, and parses it.
func readStream(rdr io.Reader, typ byte, outlog *log.Logger) (cmmn.ChnSl, error) {
	data, err := io.ReadAll(rdr)
	if err != nil {
		return nil, err
	}
	return parseAs(data, typ, outlog)
}

// readGz decompresses and parses rc. It closes rc and the decompressor.
func readGz(rc io.ReadCloser, typ byte, outlog *log.Logger) (cmmn.ChnSl, error) {
	rdr, err := zwrap.Wrap(rc)
	if err != nil {
		rc.Close()
		return nil, err
	}
	defer rdr.Close()
	return readStream(rdr, typ, outlog)
}

// readFile reads a local file. Compressed files go through zwrap,
// everything else is mapped.
func readFile(fname string, outlog *log.Logger) (cmmn.ChnSl, error) {
	typ, err := oldOrMmcif(fname)
	if err != nil {
		return nil, err
	}
	fp, err := os.Open(fname)
	if err != nil {
		return nil, err
	}
	gz, err := zwrap.IsGzip(fp)
	if err != nil {
		fp.Close()
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	if !gz {
		defer fp.Close()
		return readMapped(fp, typ, outlog)
	}
	chns, err := readGz(fp, typ, outlog)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", fname, err)
	}
	return chns, nil
}

// ReadCoord reads protein chains from the first model of a structure.
// For cmmn.FileSrc, fname is a file name, for cmmn.HTTPSrc it is a
// four letter PDB code. Notes on what we skipped go to outlog, which
// may be nil.
func ReadCoord(fname string, srcType byte, outlog *log.Logger) (cmmn.ChnSl, error) {
	if outlog == nil {
		outlog = log.New(io.Discard, "", 0)
	}
	var chns cmmn.ChnSl
	var err error
	switch srcType {
	case cmmn.FileSrc:
		chns, err = readFile(fname, outlog)
	case cmmn.HTTPSrc:
		var rdr io.ReadCloser
		var site Site
		for i := range Sites {
			site = Sites[i]
			if rdr, err = getHTTP(fname, i); err == nil {
				break
			}
			outlog.Println(err)
		}
		if err != nil {
			return nil, err
		}
		defer rdr.Close()
		chns, err = readStream(rdr, site.format(), outlog)
	default:
		return nil, ErrSrc
	}
	if err != nil {
		return nil, err
	}
	valid, invalid := NatomsTot(chns)
	outlog.Println(fname, len(chns), "chains", valid, "atoms", invalid, "missing")
	return chns, nil
}

// NatomsTot returns the total number of valid atoms and the number of invalid
// atoms in a set of chains. We cannot write it as a method, since it
// would have to be in the cmmn sub package.
func NatomsTot(chns cmmn.ChnSl) (int, int) {
	var jValid, jInvalid int
	for _, c := range chns {
		for _, xyzS := range c.CoordSet {
			for _, x := range xyzS {
				if x.Ok() {
					jValid++
				} else {
					jInvalid++
				}
			}
		}
	}
	return jValid, jInvalid
}

// Select keeps the chains whose names are in want, in the order of the
// file. An empty want keeps everything.
func Select(chns cmmn.ChnSl, want []string) (cmmn.ChnSl, error) {
	if len(want) == 0 {
		return chns, nil
	}
	keep := make(map[string]bool, len(want))
	for _, w := range want {
		keep[w] = true
	}
	var ret cmmn.ChnSl
	for _, c := range chns {
		if keep[c.ChainID] {
			ret = append(ret, c)
			delete(keep, c.ChainID)
		}
	}
	if len(keep) != 0 {
		var missing []string
		for w := range keep {
			missing = append(missing, w)
		}
		return nil, fmt.Errorf("chains %v not found, have %v", missing, chns.ChainNames())
	}
	return ret, nil
}
