// sscount walks a directory of PDB and mmCIF files, assigns secondary
// structure to each and writes csv with the number of residues with
// each code, one line per file and a line of totals.
//
// Usage:
//
//	sscount [-r nreader] [-d maxfile] [-l logfile] [-o out.csv] directory
package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pkg/sscount"
)

func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] directory")
	flag.PrintDefaults()
	return ExitUsageError
}

func mymain() int {
	var flags sscount.CmdFlag
	var outfile string
	flag.IntVar(&flags.NReader, "r", 3, "num reader threads")
	flag.IntVar(&flags.MaxFile, "d", 0, "max num files to read, 0 for all")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")
	flag.Parse()
	if flag.NArg() != 1 {
		return usage()
	}
	out := os.Stdout
	if outfile != "" {
		fp, err := os.Create(outfile)
		if err != nil {
			fmt.Fprintln(os.Stderr, err)
			return ExitFailure
		}
		defer fp.Close()
		out = fp
	}
	if _, err := sscount.Mymain(&flags, flag.Arg(0), out); err != nil {
		fmt.Fprintln(os.Stderr, err)
		return ExitFailure
	}
	return ExitSuccess
}

func main() {
	os.Exit(mymain())
}
