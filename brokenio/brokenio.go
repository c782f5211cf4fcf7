// Package brokenio wraps an io.ReadCloser and makes it fail now and
// then. We use it to check that the structure readers complain about
// truncated files and broken downloads instead of returning half a
// protein.
//
// Typical use: wrap a file pointer, a decompressor or an http body with
// NewReader, set the failure rates and hand it to the code under test.
// A failed read returns the data with its tail zeroed and an error.
// A zero file returns nothing and io.EOF on the first read, which is
// what one sees with an empty download.
package brokenio

import (
	"fmt"
	"io"
	"math/rand"
)

type Error string

func (e Error) Error() string { return string(e) }

const ErrTrashed Error = "brokenio: read trashed"

// BrknRdrClsr counts what goes through it and breaks reads with the
// given probabilities. A probability of 0.05 means failure in 5% of the
// calls.
type BrknRdrClsr struct {
	orig         io.ReadCloser
	rnd          *rand.Rand
	probZeroFile float32 // of returning nothing on the first read
	probFail     float32 // of trashing a read
	fracFail     float32 // how much of a trashed read is zeroed
	nCalled      int
	nByte        int
	verbose      bool
}

// NewReader returns a wrapper around rIn which does not break until
// told to.
func NewReader(rIn io.ReadCloser) *BrknRdrClsr {
	return &BrknRdrClsr{
		orig:     rIn,
		rnd:      rand.New(rand.NewSource(1)),
		fracFail: 0.5,
	}
}

// SetSeed restarts the random numbers.
func (r *BrknRdrClsr) SetSeed(seed int64) { r.rnd = rand.New(rand.NewSource(seed)) }

// SetVerbose makes Close print how much went through.
func (r *BrknRdrClsr) SetVerbose(newV bool) { r.verbose = newV }

// SetFracFail sets the part of a trashed read which is zeroed.
func (r *BrknRdrClsr) SetFracFail(frac float32) { r.fracFail = frac }

// SetProbZeroFile sets the rate at which we simply return 0 bytes on the
// first read. It must be a value from 0 to 1. We do not check if the
// argument is valid.
func (r *BrknRdrClsr) SetProbZeroFile(prob float32) { r.probZeroFile = prob }

// SetProbFail sets the probability of a read being trashed.
func (r *BrknRdrClsr) SetProbFail(prob float32) { r.probFail = prob }

// trashSlice zeroes the last part of p. The amount is a fraction, so 0.3
// wipes out the second 30 % of a slice. It returns how much is left.
func trashSlice(p []byte, frac float32) (int, error) {
	nkeep := int(float32(len(p)) * (1. - frac))
	if nkeep == len(p) {
		return nkeep, nil
	}
	clear(p[nkeep:])
	return nkeep, fmt.Errorf("wiped out last %d of %d: %w", len(p)-nkeep, len(p), ErrTrashed)
}

// Read passes reads through to the wrapped reader, counting bytes, and
// sometimes breaks them.
func (r *BrknRdrClsr) Read(p []byte) (n int, err error) {
	if len(p) == 0 {
		return 0, nil
	}
	if r.nCalled == 0 && r.probZeroFile > 0 && r.rnd.Float32() < r.probZeroFile {
		return 0, io.EOF
	}
	n, err = r.orig.Read(p)
	r.nCalled++
	r.nByte += n
	if r.fracFail > 0 && r.rnd.Float32() < r.probFail {
		return trashSlice(p[:n], r.fracFail)
	}
	return n, err
}

// Close closes the wrapped reader.
func (r *BrknRdrClsr) Close() error {
	if r.verbose {
		fmt.Println("Closing", r.nCalled, "calls and", r.nByte, "bytes")
	}
	return r.orig.Close()
}
