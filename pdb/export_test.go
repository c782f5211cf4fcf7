package pdb

import (
	"io"
	"log"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
)

var OldOrMmcif = oldOrMmcif

const (
	OldFmt   = oldFmt
	MmcifFmt = mmcifFmt
)

var discard = log.New(io.Discard, "", 0)

// ReadStream reads old format coordinates from any reader.
func ReadStream(rdr io.Reader) (cmmn.ChnSl, error) {
	return readStream(rdr, oldFmt, discard)
}

// ReadGz reads gzipped coordinates in the format typ from rc.
func ReadGz(rc io.ReadCloser, typ byte) (cmmn.ChnSl, error) {
	return readGz(rc, typ, discard)
}
