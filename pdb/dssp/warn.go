package dssp

import (
	"io"
	"log"
)

// warner writes advisory messages and counts the warnings. Nothing it
// reports stops a run.
type warner struct {
	log *log.Logger
	n   int
}

func newWarner(l *log.Logger) *warner {
	if l == nil {
		l = log.New(io.Discard, "", 0)
	}
	return &warner{log: l}
}

func (w *warner) warn(format string, a ...interface{}) {
	w.n++
	w.log.Printf("warning: "+format, a...)
}

func (w *warner) info(format string, a ...interface{}) {
	w.log.Printf(format, a...)
}
