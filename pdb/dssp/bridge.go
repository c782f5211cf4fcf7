package dssp

const (
	parallel     int8 = 1
	antiparallel int8 = -1
)

const (
	maxBulgeI     = 5 // most residues between two ladders on the first strand
	maxBulgeShort = 2 // a gap this small on one side ...
	maxBulgeLong  = 5 // ... allows this much on the other
)

// ladder is a run of consecutive bridges of the same type. pairs are
// (i, j) with i < j, in the order of i.
type ladder struct {
	id    int
	dir   int8
	pairs [][2]int
}

// bounds gives the first and last residue on each strand.
func (l *ladder) bounds() (ib, ie, jb, je int) {
	ib, ie = l.pairs[0][0], l.pairs[0][0]
	jb, je = l.pairs[0][1], l.pairs[0][1]
	for _, p := range l.pairs[1:] {
		ib, ie = min(ib, p[0]), max(ie, p[0])
		jb, je = min(jb, p[1]), max(je, p[1])
	}
	return
}

// bridgeType looks for a bridge between i and j. It needs i-1, i+1, j-1
// and j+1 to be in the same segments as i and j.
//
// Parallel bridges need the N-H of i+1 bonded to O of j and N-H of j
// to O of i-1, or the same with i and j swapped. Antiparallel bridges
// need i and j bonded to each other both ways, or the N-H of i+1 to O
// of j-1 and N-H of j+1 to O of i-1.
func (d *detector) bridgeType(i, j int) int8 {
	res := d.res
	if !sameSeg(res, i-1, i+1) || !sameSeg(res, j-1, j+1) {
		return 0
	}
	tb := func(don, acc int) bool { return testBond(res, don, acc) }
	switch {
	case tb(i+1, j) && tb(j, i-1), tb(j+1, i) && tb(i, j-1):
		return parallel
	case tb(i, j) && tb(j, i), tb(i+1, j-1) && tb(j+1, i-1):
		return antiparallel
	}
	return 0
}

// addPartner puts j into the first free bridge slot of i.
func (d *detector) addPartner(i, j int, dir int8) {
	r := &d.res[i]
	for k := range r.bp {
		if r.bp[k].partner < 0 {
			r.bp[k] = bridgePartner{partner: j, dir: dir}
			return
		}
	}
}

func (d *detector) freeSlot(i int) bool {
	return d.res[i].bp[0].partner < 0 || d.res[i].bp[1].partner < 0
}

// bridges finds all bridges, collects them into ladders, joins ladders
// over beta-bulges and marks the strand and bridge rows.
func (d *detector) bridges() []*ladder {
	var ladders []*ladder
	for i := range d.res {
		for j := i + 3; j < len(d.res); j++ {
			dir := d.bridgeType(i, j)
			if dir == 0 {
				continue
			}
			if !d.freeSlot(i) || !d.freeSlot(j) {
				d.w.warn("bridge %d-%d dropped, residue already has two partners", i, j)
				continue
			}
			d.addPartner(i, j, dir)
			d.addPartner(j, i, dir)
			found := false
			for _, l := range ladders {
				last := l.pairs[len(l.pairs)-1]
				if l.dir != dir || last[0]+1 != i || last[1]+int(dir) != j {
					continue
				}
				l.pairs = append(l.pairs, [2]int{i, j})
				found = true
				break
			}
			if !found {
				ladders = append(ladders, &ladder{dir: dir, pairs: [][2]int{{i, j}}})
			}
		}
	}
	ladders = d.joinBulges(ladders)
	lb := labeler{what: "ladders", w: d.w}
	for n, l := range ladders {
		l.id = n + 1
		d.markLadder(l, &lb)
	}
	return ladders
}

// joinBulges merges ladders of the same type which are separated by a
// few unpaired residues. The gap on the first strand must be 1 to
// maxBulgeI residues. On the second strand it can be up to
// maxBulgeShort, or up to maxBulgeLong if the first gap is short.
func (d *detector) joinBulges(ladders []*ladder) []*ladder {
	for a := 0; a < len(ladders); a++ {
		la := ladders[a]
		for b := a + 1; b < len(ladders); {
			lb := ladders[b]
			if !d.bulge(la, lb) {
				b++
				continue
			}
			la.pairs = append(la.pairs, lb.pairs...)
			ladders = append(ladders[:b], ladders[b+1:]...)
		}
	}
	return ladders
}

// bulge says if ladder lb can be joined on to la.
func (d *detector) bulge(la, lb *ladder) bool {
	if la.dir != lb.dir {
		return false
	}
	ibi, iei, jbi, jei := la.bounds()
	ibj, iej, jbj, jej := lb.bounds()
	if !sameSeg(d.res, min(ibi, ibj), max(iei, iej)) ||
		!sameSeg(d.res, min(jbi, jbj), max(jei, jej)) {
		return false
	}
	gapI := ibj - iei
	if gapI < 1 || gapI > maxBulgeI || (iei >= ibj && ibi <= iej) {
		return false
	}
	gapJ := jbj - jei
	if la.dir == antiparallel {
		gapJ = jbi - jej
	}
	if gapJ < 0 {
		return false
	}
	return gapJ <= maxBulgeShort || (gapJ <= maxBulgeLong && gapI <= maxBulgeShort)
}

// markLadder writes the ladder number into the partner slots, the
// labels into the bridge rows and E, e or B into the strand row.
func (d *detector) markLadder(l *ladder, lb *labeler) {
	c := lb.label(l.id, l.dir == parallel)
	paired := make(map[int]bool, 2*len(l.pairs))
	for _, p := range l.pairs {
		for _, ij := range [][2]int{{p[0], p[1]}, {p[1], p[0]}} {
			r := &d.res[ij[0]]
			for k := range r.bp {
				if r.bp[k].partner == ij[1] && r.bp[k].ladder == 0 {
					r.bp[k].ladder = l.id
					d.ft.Mat[RowBridge1+k][ij[0]] = c
					break
				}
			}
			paired[ij[0]] = true
		}
	}
	ss := byte('B')
	if len(l.pairs) > 1 {
		ss = 'E'
	}
	ib, ie, jb, je := l.bounds()
	for _, span := range [][2]int{{ib, ie}, {jb, je}} {
		for k := span[0]; k <= span[1]; k++ {
			if paired[k] {
				d.ft.markStrand(k, ss)
			} else {
				d.ft.markStrand(k, 'e')
			}
		}
	}
}
