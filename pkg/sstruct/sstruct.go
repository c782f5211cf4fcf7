// Package sstruct is the body of the sstruct program. It reads a
// structure, assigns secondary structure and writes it out as columns,
// as fasta style strings or as a picture.
package sstruct

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/andrew-torda/sstruct/pdb"
	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/dssp"
	"github.com/andrew-torda/sstruct/pkg/ssplot"
	"golang.org/x/sync/errgroup"
)

// CmdFlag is literally command line flags after parsing
type CmdFlag struct {
	Chains   string // comma separated chain names, empty for all
	Separate bool   // each chain on its own, so no sheets between chains
	NJob     int    // chains done at once with Separate, <= 0 for no limit
	Fasta    bool   // one string per chain instead of columns
	Width    int    // residues per line in fasta output and the plot
	PlotFile string // png of the codes, empty for none
	LogFile  string // warnings, see pdb.LogWhere
	MaxRes   int    // refuse structures bigger than this
}

// job is one call to dssp.Run and what it gave back.
type job struct {
	chns cmmn.ChnSl
	res  *dssp.Result
}

// source says if name is a local file or a PDB code to fetch.
func source(name string) (byte, error) {
	_, err := os.Stat(name)
	if err == nil {
		return cmmn.FileSrc, nil
	}
	if len(name) == 4 {
		return cmmn.HTTPSrc, nil
	}
	return 0, fmt.Errorf("%s is neither a file nor a PDB code: %w", name, err)
}

// chainList splits "A, B,C" into names.
func chainList(s string) []string {
	var ret []string
	for _, f := range strings.Split(s, ",") {
		if f = strings.TrimSpace(f); f != "" {
			ret = append(ret, f)
		}
	}
	return ret
}

// baseName is the name we put on output, "1abc" from "/x/1abc.pdb.gz".
func baseName(name string) string {
	b, _, _ := strings.Cut(filepath.Base(name), ".")
	return b
}

// assign runs everything at once, or, with Separate, one chain at a time
// with at most NJob chains in flight.
func assign(flags *CmdFlag, chns cmmn.ChnSl, outlog *log.Logger) ([]job, error) {
	opts := &dssp.Options{Log: outlog, MaxResidues: flags.MaxRes}
	if !flags.Separate {
		r, err := dssp.Run(chns, opts)
		if err != nil {
			return nil, err
		}
		return []job{{chns: chns, res: r}}, nil
	}
	jobs := make([]job, len(chns))
	var g errgroup.Group
	if flags.NJob > 0 {
		g.SetLimit(flags.NJob)
	}
	for i := range chns {
		i := i
		jobs[i].chns = chns[i : i+1]
		g.Go(func() error {
			r, err := dssp.Run(jobs[i].chns, opts)
			if err != nil {
				return fmt.Errorf("chain %s: %w", chns[i].ChainID, err)
			}
			jobs[i].res = r
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return jobs, nil
}

// warnExists prints a warning if we are about to trash a file.
func warnExists(fname string) {
	if _, err := os.Stat(fname); err == nil {
		fmt.Fprintln(os.Stderr, "Warning, trashing old version of", fname)
	}
}

// create opens a file for writing. "-" and "" are standard output.
func create(fname string) (io.WriteCloser, error) {
	if fname == "-" || fname == "" {
		return nopCloser{os.Stdout}, nil
	}
	warnExists(fname)
	fp, err := os.Create(fname)
	if err != nil {
		return nil, fmt.Errorf("output file %v: %w", fname, err)
	}
	return fp, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

// plot writes the png.
func plot(fname, name string, jobs []job, width int) error {
	var rows []ssplot.Row
	for _, jb := range jobs {
		for _, c := range jb.chns {
			rows = append(rows, ssplot.Row{Label: name + "_" + c.ChainID, Code: c.SecStruct})
		}
	}
	fp, err := create(fname)
	if err != nil {
		return err
	}
	if err := ssplot.Plot(fp, rows, width); err != nil {
		fp.Close()
		return fmt.Errorf("plotting to %s: %w", fname, err)
	}
	return fp.Close()
}

// Mymain reads infile, which is a file name or a PDB code, and writes
// results to outfile.
func Mymain(flags *CmdFlag, infile, outfile string) error {
	src, err := source(infile)
	if err != nil {
		return err
	}
	outlog, lc, err := pdb.LogWhere(flags.LogFile)
	if err != nil {
		return fmt.Errorf("creating log file: %w", err)
	}
	defer lc.Close()
	chns, err := pdb.ReadCoord(infile, src, outlog)
	if err != nil {
		return err
	}
	if chns, err = pdb.Select(chns, chainList(flags.Chains)); err != nil {
		return err
	}
	jobs, err := assign(flags, chns, outlog)
	if err != nil {
		return err
	}
	name := baseName(infile)
	for _, jb := range jobs {
		r := jb.res
		outlog.Println(name, jb.chns.ChainNames(), r.NHBond, "hbonds", r.NLadder,
			"ladders", r.NSheet, "sheets", r.NWarn, "warnings")
	}

	fp, err := create(outfile)
	if err != nil {
		return err
	}
	if flags.Fasta {
		err = writeFasta(fp, name, jobs, flags.Width)
	} else {
		err = writeColumns(fp, jobs)
	}
	if err != nil {
		fp.Close()
		return fmt.Errorf("writing %s: %w", outfile, err)
	}
	if err := fp.Close(); err != nil {
		return err
	}
	if flags.PlotFile != "" {
		return plot(flags.PlotFile, name, jobs, flags.Width)
	}
	return nil
}
