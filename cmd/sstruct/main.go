package main

import (
	"flag"
	"fmt"
	"os"
	"path"

	. "github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/dssp"
	"github.com/andrew-torda/sstruct/pkg/sstruct"
)

// usage
func usage() int {
	fmt.Fprintln(os.Stderr, "usage:", path.Base(os.Args[0]), "[opts] file.pdb|pdbcode")
	flag.PrintDefaults()
	return (ExitUsageError)
}

// main
func main() {
	var flags sstruct.CmdFlag
	outfile := "-"
	flag.StringVar(&flags.Chains, "c", "", "comma separated chains, default all")
	flag.BoolVar(&flags.Separate, "s", false, "each chain on its own")
	flag.IntVar(&flags.NJob, "j", 4, "chains at once with -s")
	flag.BoolVar(&flags.Fasta, "w", false, "fasta style output")
	flag.IntVar(&flags.Width, "n", sstruct.DfltWidth, "line length")
	flag.StringVar(&flags.PlotFile, "p", "", "png plot file")
	flag.StringVar(&flags.LogFile, "l", "", "log file, \"stdout\" for standard output")
	flag.IntVar(&flags.MaxRes, "m", dssp.DfltMaxResidues, "max residues")
	flag.StringVar(&outfile, "o", "", "output file name, default stdout")

	flag.Parse()

	infile := flag.Arg(0)
	if infile == "" || flag.NArg() > 1 {
		os.Exit(usage())
	}
	if err := sstruct.Mymain(&flags, infile, outfile); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(ExitFailure)
	} else {
		os.Exit(ExitSuccess)
	}
}
