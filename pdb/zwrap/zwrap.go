// Package zwrap takes a file pointer and optionally wraps it so upon
// calling Close, the decompressor will be closed, followed by the
// underlying file.
// PDB files come plain, gzipped from the archive, or gzipped over http,
// and the readers above us should not have to care which.

package zwrap

import (
	"compress/gzip"
	"errors"
	"io"
)

type FpGzip struct { // This is what we return.
	fp   io.ReadCloser
	zrdr *gzip.Reader
}

// Close closes the decompressor, then the underlying backing readCloser.
// It should work if the source is a file or an http stream.
func (fc *FpGzip) Close() error {
	if fc.zrdr == nil {
		return fc.fp.Close()
	}
	return errors.Join(fc.zrdr.Close(), fc.fp.Close())
}

// Read makes sure we read from the compressed stream and
// not the underlying file stream.
func (fc *FpGzip) Read(p []byte) (int, error) {
	if fc.zrdr != nil {
		return fc.zrdr.Read(p)
	}
	return fc.fp.Read(p)
}

// Wrap takes a source like a file pointer or http stream and wraps it
// so the correct Close and Read will be called. Although we use the
// name fp, it should be happy if it is fed an http stream.
func Wrap(fp io.ReadCloser) (*FpGzip, error) {
	zrdr, err := gzip.NewReader(fp)
	if err != nil {
		return nil, err
	}
	return &FpGzip{fp: fp, zrdr: zrdr}, nil
}

// ReadSeekCloser is what WrapMaybe needs to be able to look and then go
// back to the start.
type ReadSeekCloser interface {
	io.Reader
	io.Seeker
	io.Closer
}

// gzMagic starts every gzip stream.
var gzMagic = [2]byte{0x1f, 0x8b}

// IsGzip peeks at the start of a file and goes back to where it was.
func IsGzip(rs io.ReadSeeker) (bool, error) {
	var b [2]byte
	n, err := io.ReadFull(rs, b[:])
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	if _, err := rs.Seek(0, io.SeekStart); err != nil {
		return false, err
	}
	return n == 2 && b == gzMagic, nil
}

// WrapMaybe will decide if the underlying stream is compressed
// and wrap the file pointer if necessary.
// You do lose something. If you pass in something which can seek,
// you get back a ReadCloser which cannot seek. This is the price
// one pays for reading from a compressed reader.
func WrapMaybe(fpIn ReadSeekCloser) (*FpGzip, error) {
	gz, err := IsGzip(fpIn)
	if err != nil {
		return nil, err
	}
	if gz {
		return Wrap(fpIn)
	}
	return &FpGzip{fp: fpIn}, nil // Leave the zrdr nil
}
