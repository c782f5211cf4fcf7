package sstruct

import (
	"io"

	"github.com/andrew-torda/sstruct/pdb/cmmn"
	"github.com/andrew-torda/sstruct/pdb/dssp"
)

// WriteColumns writes the columns for one call to dssp.Run.
func WriteColumns(w io.Writer, chns cmmn.ChnSl, r *dssp.Result) error {
	return writeColumns(w, []job{{chns: chns, res: r}})
}
