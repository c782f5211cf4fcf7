// Package sscount walks a directory of structure files, assigns
// secondary structure to each and counts how often each code turns up.
// Files are read by a pool of readers. One line per file is written,
// sorted by name, then the totals.
package sscount

import (
	"bufio"
	"fmt"
	"io"
	"io/fs"
	"log"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/andrew-torda/sstruct/pdb"
	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/dssp"
)

const nReaderDflt = 3

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	NReader int    // files read at once
	MaxFile int    // stop after this many files, 0 for no limit
	LogFile string // see pdb.LogWhere
}

// Tally has a count for each character in dssp.Codes.
type Tally [len(dssp.Codes)]int

func (t *Tally) add(code []byte) {
	for _, c := range code {
		if i := strings.IndexByte(dssp.Codes, c); i >= 0 {
			t[i]++
		}
	}
}

func (t *Tally) sum(o *Tally) {
	for i := range t {
		t[i] += o[i]
	}
}

// total is the number of residues counted.
func (t *Tally) total() (n int) {
	for _, v := range t {
		n += v
	}
	return n
}

// Get returns the count for code c.
func (t *Tally) Get(c byte) int {
	if i := strings.IndexByte(dssp.Codes, c); i >= 0 {
		return t[i]
	}
	return 0
}

type fresult struct {
	name  string
	tally Tally
	err   error
}

// isStructure says if a file name looks like something we can read.
func isStructure(name string) bool {
	name = strings.TrimSuffix(name, ".gz")
	for _, ext := range []string{".pdb", ".ent", ".cif"} {
		if strings.HasSuffix(name, ext) {
			return true
		}
	}
	return false
}

// walk sends the names of structure files under dir to ch, at most
// maxFile of them.
func walk(dir string, maxFile int, ch chan<- string) error {
	defer close(ch)
	n := 0
	return filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isStructure(d.Name()) {
			return nil
		}
		if maxFile > 0 && n >= maxFile {
			return filepath.SkipAll
		}
		n++
		ch <- path
		return nil
	})
}

// readOne reads a file and counts its codes.
func readOne(fname string, outlog *log.Logger) fresult {
	res := fresult{name: fname}
	chns, err := pdb.ReadCoord(fname, cmmn.FileSrc, outlog)
	if err != nil {
		res.err = err
		return res
	}
	if _, err := dssp.Run(chns, &dssp.Options{Log: outlog}); err != nil {
		res.err = fmt.Errorf("%s: %w", fname, err)
		return res
	}
	for _, c := range chns {
		res.tally.add(c.SecStruct)
	}
	return res
}

// reader works on file names from ch until it is closed.
func reader(ch <-chan string, cRes chan<- fresult, wg *sync.WaitGroup, outlog *log.Logger) {
	defer wg.Done()
	for fname := range ch {
		cRes <- readOne(fname, outlog)
	}
}

// count reads everything under dir. Files which cannot be read are
// reported in the log and skipped. It returns the results sorted by
// file name.
func count(flags *CmdFlag, dir string, outlog *log.Logger) ([]fresult, int, error) {
	nReader := flags.NReader
	if nReader <= 0 {
		nReader = nReaderDflt
	}
	cName := make(chan string, 200)
	cRes := make(chan fresult)
	walkErr := make(chan error, 1)
	go func() { walkErr <- walk(dir, flags.MaxFile, cName) }()

	var wg sync.WaitGroup
	for i := 0; i < nReader; i++ {
		wg.Add(1)
		go reader(cName, cRes, &wg, outlog)
	}
	go func() {
		wg.Wait()
		close(cRes)
	}()

	var ret []fresult
	nBad := 0
	for r := range cRes {
		if r.err != nil {
			outlog.Println("Ignoring", r.err)
			nBad++
			continue
		}
		ret = append(ret, r)
	}
	sort.Slice(ret, func(i, j int) bool { return ret[i].name < ret[j].name })
	return ret, nBad, <-walkErr
}

func writeLine(w io.Writer, name string, t *Tally) {
	fmt.Fprintf(w, "%s,%d", name, t.total())
	for _, v := range t {
		fmt.Fprintf(w, ",%d", v)
	}
	fmt.Fprintln(w)
}

// Mymain counts codes under dir and writes csv to w.
func Mymain(flags *CmdFlag, dir string, w io.Writer) (Tally, error) {
	var total Tally
	outlog, lc, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return total, fmt.Errorf("creating log file: %w", err)
	}
	defer lc.Close()
	res, nBad, err := count(flags, dir, outlog)
	if err != nil {
		return total, err
	}
	bw := bufio.NewWriter(w)
	fmt.Fprint(bw, "file,nres")
	for _, c := range []byte(dssp.Codes) {
		fmt.Fprintf(bw, ",%c", c)
	}
	fmt.Fprintln(bw)
	for i := range res {
		writeLine(bw, res[i].name, &res[i].tally)
		total.sum(&res[i].tally)
	}
	writeLine(bw, "total", &total)
	outlog.Println(len(res), "files read", nBad, "skipped")
	return total, bw.Flush()
}
