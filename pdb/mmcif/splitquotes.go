// Splitting lines at spaces and quotes.

/* from https://www.iucr.org/resources/cif/spec/version1.1/cifsyntax
               character or string role
_ (underscore) identifies data name
#              identifies comment
'              delimits non-simple data values
"              delimits non-simple data values
; at beginning of line of text delimits non-simple data values
data_          identifies data block header (case-insensitive)
*/

package mmcif

import (
	"bytes"
)

const (
	squote byte = '\''
	dquote byte = '"'
)

var asciiSpace = [256]bool{
	'\t': true, '\n': true, '\v': true, '\f': true, '\r': true, ' ': true,
}

func iswhite(b byte) bool { return asciiSpace[b] }

// fields breaks s into white space separated words. It reuses the
// storage in scrtch, so the answer is only good until the next call.
func fields(s []byte, scrtch [][]byte) [][]byte {
	ret := scrtch[:0]
	for i := 0; i < len(s); {
		for i < len(s) && iswhite(s[i]) {
			i++
		}
		if i == len(s) {
			break
		}
		start := i
		for i < len(s) && !iswhite(s[i]) {
			i++
		}
		ret = append(ret, s[start:i])
	}
	return ret
}

type sInfo struct { // state shared by the state functions
	err     error
	ret     [][]byte
	byteIn  []byte
	nxtIndx int  // start of the current word
	qtype   byte // quote that opened the current word
}

type sfn func(i int, c byte, s *sInfo) sfn

func sfnWhite(i int, c byte, s *sInfo) sfn {
	switch {
	case iswhite(c):
		return sfnWhite
	case c == squote || c == dquote:
		s.qtype = c
		s.nxtIndx = i + 1
		return sfnInQuote
	default:
		s.nxtIndx = i
		return sfnInText
	}
}

func sfnInText(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.byteIn[s.nxtIndx:i])
		return sfnWhite
	}
	return sfnInText
}

func sfnInQuote(i int, c byte, s *sInfo) sfn {
	if c == s.qtype {
		return sfnExitQuote
	}
	if c == '\n' {
		s.err = ErrQuote
		return sfnWhite
	}
	return sfnInQuote
}

// sfnExitQuote has seen a closing quote. Only white space after it
// really ends the word, so 'it's' is one word.
func sfnExitQuote(i int, c byte, s *sInfo) sfn {
	if iswhite(c) {
		s.ret = append(s.ret, s.byteIn[s.nxtIndx:i-1])
		return sfnWhite
	}
	if c == s.qtype {
		return sfnExitQuote
	}
	return sfnInQuote
}

// splitCifLine breaks a line at spaces, but keeps quoted words
// together and takes the quotes off. The line is fed to a small state
// machine followed by a newline, which closes the last word or
// catches an unterminated quote.
func splitCifLine(byteIn []byte, scrtch [][]byte) ([][]byte, error) {
	s := sInfo{ret: scrtch[:0], byteIn: byteIn}
	state := sfnWhite
	for i, c := range byteIn {
		state = state(i, c, &s)
	}
	state(len(byteIn), '\n', &s)
	if s.err != nil {
		return nil, s.err
	}
	return s.ret, nil
}

// words uses the quick fields when there are no quotes on the line.
func words(line []byte, scrtch [][]byte) ([][]byte, error) {
	if bytes.IndexByte(line, squote) < 0 && bytes.IndexByte(line, dquote) < 0 {
		return fields(line, scrtch), nil
	}
	return splitCifLine(line, scrtch)
}
