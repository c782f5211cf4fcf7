package dssp

import (
	"bytes"
)

// The summary codes.
const (
	AlphaHelix = 'H'
	Helix310   = 'G'
	HelixPi    = 'I'
	Strand     = 'E'
	Bridge     = 'B'
	Turn       = 'T'
	Bend       = 'S'
	Coil       = '-'
	Unknown    = '?'
)

// Codes is every character the summary can contain after
// boundaries are turned back into capitals.
const Codes = "HGIEBTS-?"

// helixRun fills res i to i+n-1 with c wherever there are two n-turns
// in a row starting at i-1 and i. Only coil is overwritten.
func (d *detector) helixRun(ss []byte, n int, c byte) {
	for i := 1; i < len(ss); i++ {
		if !d.ft.isStart(n, i-1) || !d.ft.isStart(n, i) {
			continue
		}
		for k := i; k < i+n; k++ {
			if ss[k] == Coil {
				ss[k] = c
			}
		}
	}
}

// shortToTurn turns runs of c shorter than minLen into turns.
func shortToTurn(ss []byte, c byte, minLen int) {
	for i := 0; i < len(ss); {
		if ss[i] != c {
			i++
			continue
		}
		j := i
		for j < len(ss) && ss[j] == c {
			j++
		}
		if j-i < minLen {
			for k := i; k < j; k++ {
				ss[k] = Turn
			}
		}
		i = j
	}
}

// markEnds puts the first and last residue of every helix run of three
// or more into lower case.
func markEnds(ss []byte, segOf func(int) int) {
	for i := 0; i < len(ss); {
		c := ss[i]
		if c != AlphaHelix && c != Helix310 && c != HelixPi {
			i++
			continue
		}
		j := i
		for j < len(ss) && ss[j] == c && segOf(j) == segOf(i) {
			j++
		}
		if j-i >= 3 {
			ss[i] += 'a' - 'A'
			ss[j-1] += 'a' - 'A'
		}
		i = j
	}
}

// summary reduces the feature table to one character per residue. The
// order is alpha helix, strand and bridge, 3-10 helix, pi helix, turn
// and bend. Each step only writes over coil.
func (d *detector) summary() []byte {
	ss := bytes.Repeat([]byte{Coil}, len(d.res))
	for i := range d.res {
		if d.res[i].undef {
			ss[i] = Unknown
		}
	}
	d.helixRun(ss, 4, AlphaHelix)
	for i := range ss {
		switch d.ft.Mat[RowStrand][i] {
		case 'E', 'e':
			if ss[i] == Coil {
				ss[i] = Strand
			}
		case 'B':
			if ss[i] == Coil {
				ss[i] = Bridge
			}
		}
	}
	d.helixRun(ss, 3, Helix310)
	d.helixRun(ss, 5, HelixPi)
	shortToTurn(ss, Helix310, 3)
	shortToTurn(ss, HelixPi, 5)
	for n := 3; n <= 5; n++ {
		for i := range ss {
			if !d.ft.isStart(n, i) {
				continue
			}
			for k := i + 1; k < i+n; k++ {
				if ss[k] == Coil {
					ss[k] = Turn
				}
			}
		}
	}
	for i := range ss {
		if ss[i] == Coil && d.ft.Mat[RowBend][i] == 'S' {
			ss[i] = Bend
		}
	}
	markEnds(ss, func(i int) int { return d.res[i].seg })
	return ss
}

// toCode turns a summary with lower case helix ends into the nine
// letter code.
func toCode(detail []byte) []byte {
	return bytes.ToUpper(detail)
}
