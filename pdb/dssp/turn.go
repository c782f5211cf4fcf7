package dssp

const minBend = 70 // kappa above this, in degrees, is a bend

// turns marks n-turns. There is an n-turn at i if the N-H of i+n is
// bonded to the O of i and there is no break between them.
func (d *detector) turns() {
	for n := 3; n <= 5; n++ {
		for i := range d.res {
			if sameSeg(d.res, i, i+n) && testBond(d.res, i+n, i) {
				d.ft.markTurn(n, i)
			}
		}
	}
}

// bends marks residues where the chain bends by more than minBend and
// sets the chirality from the sign of the CA virtual dihedral.
func (d *detector) bends() {
	for i := range d.res {
		if k := d.ang.Mat[Kappa][i]; k != AngUndef && k > minBend {
			d.ft.Mat[RowBend][i] = 'S'
		}
		if a := d.ang.Mat[Alpha][i]; a != AngUndef {
			if a > 0 {
				d.ft.Mat[RowChiral][i] = '+'
			} else {
				d.ft.Mat[RowChiral][i] = '-'
			}
		}
	}
}
