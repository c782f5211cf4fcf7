package dssp_test

import (
	"bytes"
	"errors"
	"log"
	"strings"
	"testing"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	. "github.com/andrew-torda/sstruct/pdb/dssp"
	"github.com/google/go-cmp/cmp"
	"gonum.org/v1/gonum/spatial/r3"
)

func mustRun(t *testing.T, chns cmmn.ChnSl) *Result {
	t.Helper()
	r, err := Run(chns, nil)
	if err != nil {
		t.Fatal(err)
	}
	checkProperties(t, r)
	return r
}

// checkProperties looks at things which should be true for any input.
func checkProperties(t *testing.T, r *Result) {
	t.Helper()
	nDonor := 0
	for i, ri := range r.Res {
		if !strings.ContainsRune(Codes, rune(r.Code[i])) {
			t.Errorf("residue %d code %q not in %q", i, r.Code[i], Codes)
		}
		for _, slots := range [][2]HBond{ri.Donor, ri.Acceptor} {
			if slots[0].Partner < 0 && slots[1].Partner >= 0 {
				t.Errorf("residue %d second slot used, first empty", i)
			}
			for _, b := range slots {
				if b.Partner < 0 {
					continue
				}
				if b.Energy > MaxEnergy || b.Energy < MinEnergy {
					t.Errorf("residue %d energy %f out of range", i, b.Energy)
				}
			}
			if slots[1].Partner >= 0 && slots[1].Energy < slots[0].Energy {
				t.Errorf("residue %d slots not sorted %v", i, slots)
			}
		}
		for _, b := range ri.Donor {
			if b.Partner >= 0 {
				nDonor++
			}
		}
		if ri.CAOnly {
			if ri.Donor[0].Partner >= 0 || ri.Acceptor[0].Partner >= 0 ||
				ri.Partner[0] >= 0 || r.Features.InTurn(i) {
				t.Errorf("CA-only residue %d has an assignment", i)
			}
		}
	}
	if nDonor != r.NHBond {
		t.Errorf("bond count %d but %d donor slots used", r.NHBond, nDonor)
	}
	checkSheets(t, r)
}

// checkSheets makes sure residues in the same sheet can reach each
// other through strand residues, stepping along the chain or across to
// a bridge partner.
func checkSheets(t *testing.T, r *Result) {
	t.Helper()
	strand := func(i int) bool { return r.Features.Get(RowStrand, i) != ' ' }
	seen := make(map[int]bool)
	for start, ri := range r.Res {
		if ri.Sheet == 0 || seen[ri.Sheet] {
			continue
		}
		seen[ri.Sheet] = true
		reach := map[int]bool{start: true}
		work := []int{start}
		for len(work) > 0 {
			k := work[0]
			work = work[1:]
			next := []int{k - 1, k + 1, r.Res[k].Partner[0], r.Res[k].Partner[1]}
			for n, m := range next {
				if m < 0 || m >= len(r.Res) || reach[m] || !strand(m) {
					continue
				}
				if n < 2 && r.Res[m].Seg != r.Res[k].Seg {
					continue
				}
				reach[m] = true
				work = append(work, m)
			}
		}
		for i, rj := range r.Res {
			if rj.Sheet == ri.Sheet && !reach[i] {
				t.Errorf("residue %d in sheet %d but not connected to %d", i, ri.Sheet, start)
			}
		}
	}
}

func TestHelix(t *testing.T) {
	c := helix("A", 12)
	r := mustRun(t, cmmn.ChnSl{*c})
	if want := "-hHHHHHHHHh-"; string(r.Detail) != want {
		t.Errorf("detail got\n%s wanted\n%s", r.Detail, want)
	}
	if want := "-HHHHHHHHHH-"; string(r.Code) != want {
		t.Errorf("code got %s wanted %s", r.Code, want)
	}
	if r.NHBond != 8 {
		t.Errorf("wanted 8 H-bonds, got %d", r.NHBond)
	}
	for i := 4; i < 12; i++ {
		if p := r.Res[i].Donor[0].Partner; p != i-4 {
			t.Errorf("residue %d donates to %d, wanted %d", i, p, i-4)
		}
	}
	for i := 0; i < 8; i++ {
		if r.Features.Get(RowTurn4, i) != '>' && r.Features.Get(RowTurn4, i) != 'X' {
			t.Errorf("no 4-turn start at %d", i)
		}
	}
	for i := 2; i < 10; i++ {
		if a := r.Angle(Alpha, i); a < 0 {
			t.Errorf("alpha at %d is %f, should be positive in a right handed helix", i, a)
		}
		if r.Features.Get(RowChiral, i) != '+' {
			t.Errorf("chirality at %d", i)
		}
	}
	if r.Angle(Phi, 0) != AngUndef || r.Angle(Psi, 11) != AngUndef {
		t.Error("phi of first or psi of last residue should be undefined")
	}
	if phi := r.Angle(Phi, 5); phi < -57.1 || phi > -56.9 {
		t.Errorf("phi got %f wanted -57", phi)
	}
	if string(c.SecStruct) != "" {
		t.Error("Run should not touch the chain we gave it by value")
	}
}

func TestWriteBack(t *testing.T) {
	b := helix("B", 12)
	move(b, 0, func(v r3.Vec) r3.Vec { return r3.Add(v, r3.Vec{X: 50}) })
	chns := cmmn.ChnSl{*helix("A", 12), *b}
	r := mustRun(t, chns)
	for i := range chns {
		if got := string(chns[i].SecStruct); got != "-HHHHHHHHHH-" {
			t.Errorf("chain %d got %s", i, got)
		}
		if got := string(r.ChainCode(i)); got != string(chns[i].SecStruct) {
			t.Errorf("ChainCode %d got %s", i, got)
		}
	}
	if len(r.Segments) != 2 || r.Segments[1].Chain != 1 || r.Segments[1].Num != 2 {
		t.Errorf("segments %+v", r.Segments)
	}
}

func TestSheet(t *testing.T) {
	chns := sheet(5)
	r := mustRun(t, chns)
	if want := "-EEE--EEE-"; string(r.Code) != want {
		t.Fatalf("got %s wanted %s", r.Code, want)
	}
	if r.NLadder != 1 || r.NSheet != 1 {
		t.Errorf("ladders %d sheets %d, wanted 1 and 1", r.NLadder, r.NSheet)
	}
	pairs := [][2]int{{1, 8}, {2, 7}, {3, 6}}
	for _, p := range pairs {
		for _, ij := range [][2]int{p, {p[1], p[0]}} {
			ri := r.Res[ij[0]]
			if ri.Partner[0] != ij[1] {
				t.Errorf("residue %d partner %d wanted %d", ij[0], ri.Partner[0], ij[1])
			}
			if ri.Ladder[0] != -1 {
				t.Errorf("residue %d ladder %d, wanted -1 for antiparallel", ij[0], ri.Ladder[0])
			}
			if ri.Sheet != 1 || r.Features.Get(RowSheet, ij[0]) != 'A' {
				t.Errorf("residue %d not in sheet A", ij[0])
			}
			if r.Features.Get(RowBridge1, ij[0]) != 'A' {
				t.Errorf("residue %d bridge label %c", ij[0], r.Features.Get(RowBridge1, ij[0]))
			}
		}
	}
	if got := string(chns[1].SecStruct); got != "-EEE-" {
		t.Errorf("second strand got %s", got)
	}
}

// TestMissingN has a middle residue with no N. That breaks the chain,
// but is not enough to make it a CA trace.
func TestMissingN(t *testing.T) {
	c := backbone("A", fill(3, -120), fill(3, 130))
	c.CoordSet[cmmn.AtN][1] = cmmn.BrokenXyz
	r := mustRun(t, cmmn.ChnSl{*c})
	if string(r.Code) != "---" {
		t.Errorf("got %s", r.Code)
	}
	if len(r.Segments) != 2 {
		t.Errorf("wanted 2 segments got %+v", r.Segments)
	}
	if r.Res[1].HasH || r.Res[1].Donor[0].Partner >= 0 {
		t.Error("residue without N should not be a donor")
	}
}

func TestCAOnly(t *testing.T) {
	c := backbone("A", fill(3, -120), fill(3, 130))
	c.CoordSet[cmmn.AtN][0] = cmmn.BrokenXyz
	c.CoordSet[cmmn.AtN][1] = cmmn.BrokenXyz
	h := helix("B", 12)
	for _, at := range []string{cmmn.AtN, cmmn.AtC, cmmn.AtO} {
		for i := range h.CoordSet[at] {
			h.CoordSet[at][i] = cmmn.BrokenXyz
		}
	}
	r := mustRun(t, cmmn.ChnSl{*c, *h})
	if want := "???" + strings.Repeat("?", 12); string(r.Code) != want {
		t.Errorf("got %s wanted %s", r.Code, want)
	}
	for _, s := range r.Segments {
		if !s.CAOnly {
			t.Errorf("segment %d not marked CA-only", s.Num)
		}
	}
	if len(r.Segments) != 2 {
		t.Errorf("CA trace of a helix should be one segment, got %+v", r.Segments)
	}
}

func TestGap(t *testing.T) {
	c := gapped()
	r := mustRun(t, cmmn.ChnSl{*c})
	if len(r.Segments) != 2 {
		t.Fatalf("wanted 2 segments got %+v", r.Segments)
	}
	if s := r.Segments[0]; s.Start != 0 || s.End != 9 {
		t.Errorf("first segment %+v", s)
	}
	for n, row := range []int{RowTurn3, RowTurn4, RowTurn5} {
		for i := 0; i < 10; i++ {
			if i+n+3 < 10 {
				continue
			}
			if c := r.Features.Get(row, i); c == '>' || c == 'X' {
				t.Errorf("%d-turn at %d crosses the gap", n+3, i)
			}
		}
	}
	for i := 0; i < 10; i++ {
		if p := r.Res[i].Partner[0]; p >= 10 {
			t.Errorf("bridge %d-%d crosses the gap", i, p)
		}
	}
	if want := "-hHHHHHHh--hHHHHHHh-"; string(r.Detail) != want {
		t.Errorf("got\n%s wanted\n%s", r.Detail, want)
	}
}

func TestIdempotent(t *testing.T) {
	for _, chns := range []cmmn.ChnSl{sheet(5), {*helix("A", 30)}, {*gapped()}} {
		r1 := mustRun(t, chns)
		r2 := mustRun(t, chns)
		if diff := cmp.Diff(r1.Res, r2.Res); diff != "" {
			t.Errorf("second run differs (-first +second):\n%s", diff)
		}
		if !bytes.Equal(r1.Detail, r2.Detail) {
			t.Errorf("detail %s then %s", r1.Detail, r2.Detail)
		}
	}
}

func TestErrors(t *testing.T) {
	if _, err := Run(nil, nil); err != ErrEmpty {
		t.Errorf("wanted ErrEmpty got %v", err)
	}
	big := helix("A", 12)
	if _, err := Run(cmmn.ChnSl{*big}, &Options{MaxResidues: 11}); err != ErrTooBig {
		t.Errorf("wanted ErrTooBig got %v", err)
	}
	if big.SecStruct != nil {
		t.Error("chain changed after an error")
	}
	bad := helix("A", 5)
	bad.CoordSet[cmmn.AtO] = bad.CoordSet[cmmn.AtO][:4]
	if _, err := Run(cmmn.ChnSl{*bad}, nil); !errors.Is(err, ErrShape) {
		t.Errorf("wanted ErrShape got %v", err)
	}
}

func TestLog(t *testing.T) {
	var buf bytes.Buffer
	c := helix("A", 5)
	for _, at := range []string{cmmn.AtN, cmmn.AtC, cmmn.AtO} {
		for i := range c.CoordSet[at] {
			c.CoordSet[at][i] = cmmn.BrokenXyz
		}
	}
	if _, err := Run(cmmn.ChnSl{*c}, &Options{Log: log.New(&buf, "", 0)}); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(buf.String(), "only CA") {
		t.Errorf("log got %q", buf.String())
	}
}

func one(c *cmmn.Chain) cmmn.ChnSl { return cmmn.ChnSl{*c} }

var fixturetests = []struct {
	name   string
	chns   func() cmmn.ChnSl
	detail string
	nBond  int
	nWarn  int
	inLog  string
}{
	{"3-10 helix", func() cmmn.ChnSl { return one(backbone("A", fill(10, -49), fill(10, -26))) },
		"-gGGGGGGg-", 7, 0, ""},
	{"pi helix", func() cmmn.ChnSl { return one(backbone("A", fill(14, -57), fill(14, -70))) },
		"-iIIIIIIIIIIi-", 9, 0, ""},
	{"crowded pi helix", func() cmmn.ChnSl { return one(backbone("A", fill(12, -66), fill(12, -71))) },
		"-iIIIIIIIIi-", 10, 0, "replaced"},
	{"4-turn", func() cmmn.ChnSl { return one(withTurn(fill(3, -57), fill(3, -47))) },
		"------TTTS-----", 1, 0, ""},
	{"3-turn", func() cmmn.ChnSl { return one(withTurn([]float64{-60, -90}, []float64{-30, 0})) },
		"------TT------", 1, 0, ""},
	{"bend", func() cmmn.ChnSl { return one(withTurn(fill(2, -57), fill(2, -47))) },
		"------SSS-----", 1, 0, ""},
	{"lone bridge", lone, "-B--B-", 2, 0, ""},
	{"parallel", parallelPair, "-EEEE--EEEE-", 5, 0, ""},
	{"clamped", func() cmmn.ChnSl { return clash(false) }, "------", 5, 2, "clamped"},
	{"coincident", func() cmmn.ChnSl { return clash(true) }, "------", 2, 1, "coincident atoms"},
}

func TestFixtures(t *testing.T) {
	for _, tt := range fixturetests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			r, err := Run(tt.chns(), &Options{Log: log.New(&buf, "", 0)})
			if err != nil {
				t.Fatal(err)
			}
			checkProperties(t, r)
			if string(r.Detail) != tt.detail {
				t.Errorf("detail got\n%s wanted\n%s", r.Detail, tt.detail)
			}
			if r.NHBond != tt.nBond || r.NWarn != tt.nWarn {
				t.Errorf("got %d H-bonds %d warnings, wanted %d and %d", r.NHBond, r.NWarn, tt.nBond, tt.nWarn)
			}
			if tt.inLog != "" && !strings.Contains(buf.String(), tt.inLog) {
				t.Errorf("no %q in log %q", tt.inLog, buf.String())
			}
		})
	}
}

func TestParallel(t *testing.T) {
	r := mustRun(t, parallelPair())
	if r.NLadder != 1 || r.NSheet != 1 {
		t.Errorf("ladders %d sheets %d, wanted 1 and 1", r.NLadder, r.NSheet)
	}
	for i := 1; i <= 4; i++ {
		for _, ij := range [][2]int{{i, i + 6}, {i + 6, i}} {
			ri := r.Res[ij[0]]
			if ri.Partner[0] != ij[1] || ri.Ladder[0] != 1 {
				t.Errorf("residue %d partner %d ladder %d, wanted %d and 1",
					ij[0], ri.Partner[0], ri.Ladder[0], ij[1])
			}
			if c := r.Features.Get(RowBridge1, ij[0]); c != 'a' {
				t.Errorf("residue %d bridge label %c, parallel wants a", ij[0], c)
			}
		}
	}
}

func TestLoneBridge(t *testing.T) {
	r := mustRun(t, lone())
	if r.NLadder != 1 || r.Res[1].Partner[0] != 4 || r.Res[4].Partner[0] != 1 {
		t.Fatalf("ladders %d partners %v %v", r.NLadder, r.Res[1].Partner, r.Res[4].Partner)
	}
	for _, i := range []int{1, 4} {
		if c := r.Features.Get(RowStrand, i); c != 'B' {
			t.Errorf("residue %d strand marker %c", i, c)
		}
	}
}
