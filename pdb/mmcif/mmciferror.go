package mmcif

import (
	"strconv"
)

type Error string

func (e Error) Error() string { return string(e) }

const (
	ErrNoAtomSite Error = "mmcif: no atom_site table"
	ErrColumn     Error = "mmcif: atom_site column missing"
	ErrQuote      Error = "mmcif: unterminated quote"
	ErrRow        Error = "mmcif: table ends part way through a row"
	ErrSyntax     Error = "mmcif: cannot understand line"
	ErrEmpty      Error = "mmcif: empty file"
)

const maxMsgLen = 70

// readError remembers where we were when something broke.
type readError struct {
	n      int    // line number
	inline string // start of the line that provoked the error
	err    error
}

func firstPart(s string) string {
	if len(s) > maxMsgLen {
		return s[:maxMsgLen]
	}
	return s
}

func (e *readError) Error() string {
	if e.n == 0 {
		return e.err.Error()
	}
	return "line " + strconv.Itoa(e.n) + ": " + e.err.Error() +
		"\nline starting with\n" + firstPart(e.inline)
}

func (e *readError) Unwrap() error { return e.err }
