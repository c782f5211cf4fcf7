package sstruct

import (
	"bufio"
	"fmt"
	"io"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/dssp"
)

// DfltWidth is the line length for fasta output.
const DfltWidth = 60

const colHeader = "    #  RESIDUE C AA STRUCTURE    BP1  BP2  S   N-H-->O    O-->H-N    N-H-->O    O-->H-N    TCO  KAPPA  ALPHA    PHI    PSI"

// hbCol is one h-bond column, offset to the partner and energy.
func hbCol(b dssp.HBond, i int) string {
	if b.Partner < 0 {
		return "    0, 0.0"
	}
	return fmt.Sprintf("%5d,%4.1f", b.Partner-i, b.Energy)
}

// insCode is the insertion code of residue i as something printable.
// Chains built by hand may have no insertion codes or residue names.
func insCode(c *cmmn.Chain, i int) byte {
	if i >= len(c.InsCode) || c.InsCode[i] == 0 {
		return ' '
	}
	return c.InsCode[i]
}

func resLetter(c *cmmn.Chain, i int) byte {
	if i >= len(c.ResName) {
		return 'X'
	}
	return cmmn.OneLetter(c.ResName[i])
}

// writeColumns writes one line per residue. Residues are numbered from
// 1 over all jobs and bridge partners use the same numbers.
func writeColumns(w io.Writer, jobs []job) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintln(bw, colHeader)
	base := 0
	for _, jb := range jobs {
		r := jb.res
		ft := r.Features
		for i := range r.Res {
			ri := &r.Res[i]
			c := &jb.chns[ri.Chain]
			var bp [2]int
			for k, p := range ri.Partner {
				if p >= 0 {
					bp[k] = base + p + 1
				}
			}
			fmt.Fprintf(bw, "%5d %5d%c %s  %c  %c  %c%c%c%c%c%c%c  %4d %4d  %c %s %s %s %s %6.3f %6.1f %6.1f %6.1f %6.1f\n",
				base+i+1, c.NumLbl[ri.Ndx], insCode(c, ri.Ndx), c.ChainID,
				resLetter(c, ri.Ndx), r.Code[i],
				ft.Get(dssp.RowTurn3, i), ft.Get(dssp.RowTurn4, i), ft.Get(dssp.RowTurn5, i),
				ft.Get(dssp.RowBend, i), ft.Get(dssp.RowChiral, i),
				ft.Get(dssp.RowBridge1, i), ft.Get(dssp.RowBridge2, i),
				bp[0], bp[1], ft.Get(dssp.RowSheet, i),
				hbCol(ri.Donor[0], i), hbCol(ri.Acceptor[0], i),
				hbCol(ri.Donor[1], i), hbCol(ri.Acceptor[1], i),
				r.Angle(dssp.TCO, i), r.Angle(dssp.Kappa, i), r.Angle(dssp.Alpha, i),
				r.Angle(dssp.Phi, i), r.Angle(dssp.Psi, i))
		}
		base += len(r.Res)
	}
	return bw.Flush()
}

// writeFasta writes ">name_chain" and the codes, width per line.
func writeFasta(w io.Writer, name string, jobs []job, width int) error {
	if width <= 0 {
		width = DfltWidth
	}
	bw := bufio.NewWriter(w)
	for _, jb := range jobs {
		for _, c := range jb.chns {
			fmt.Fprintf(bw, ">%s_%s\n", name, c.ChainID)
			s := c.SecStruct
			for len(s) > width {
				bw.Write(s[:width])
				bw.WriteByte('\n')
				s = s[width:]
			}
			bw.Write(s)
			bw.WriteByte('\n')
		}
	}
	return bw.Flush()
}
