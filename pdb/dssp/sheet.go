package dssp

// sheets gives every strand or bridge residue a sheet number. Residues
// are in the same sheet if they are in one unbroken run of strand
// residues or are bridge partners. We scan from the left and flood out
// from the first residue without a sheet, so numbers grow along the
// chain. It returns the sheet of each residue (0 if none) and the
// number of sheets.
func (d *detector) sheets() (sheet []int, nSheet int) {
	res := d.res
	sheet = make([]int, len(res))
	isStrand := func(i int) bool { return d.ft.Mat[RowStrand][i] != neutral }
	var work []int
	for i := range res {
		if !isStrand(i) || sheet[i] != 0 {
			continue
		}
		nSheet++
		work = append(work[:0], i)
		for len(work) > 0 {
			k := work[len(work)-1]
			work = work[:len(work)-1]
			if sheet[k] != 0 {
				continue
			}
			b, e := k, k
			for b > 0 && isStrand(b-1) && sameSeg(res, b-1, k) {
				b--
			}
			for e < len(res)-1 && isStrand(e+1) && sameSeg(res, k, e+1) {
				e++
			}
			for m := b; m <= e; m++ {
				sheet[m] = nSheet
				for _, p := range res[m].bp {
					if p.partner >= 0 && sheet[p.partner] == 0 {
						work = append(work, p.partner)
					}
				}
			}
		}
	}
	lb := labeler{what: "sheets", w: d.w}
	for i, s := range sheet {
		if s != 0 {
			d.ft.Mat[RowSheet][i] = lb.label(s, false)
		}
	}
	return sheet, nSheet
}
