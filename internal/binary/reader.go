// Package binary provides bounds-checked sequential reading and the integer
// encodings used by ID3v2 tags.
package binary

import (
	"errors"
	"fmt"
	"io"

	"github.com/simonhull/id3meta/internal/types"
)

// Reader wraps an io.Reader with offset tracking and helpful error messages.
//
// Short reads are reported as *types.TruncatedError so callers can tell
// "the file ends too early" apart from I/O failures.
type Reader struct {
	r      io.Reader
	path   string
	offset int64
}

// NewReader creates a new Reader. path is only used in error messages and
// may be empty.
func NewReader(r io.Reader, path string) *Reader {
	return &Reader{
		r:    r,
		path: path,
	}
}

// Path returns the file path associated with this reader.
func (r *Reader) Path() string {
	return r.path
}

// Offset returns the number of bytes consumed so far.
func (r *Reader) Offset() int64 {
	return r.offset
}

// ReadFull fills b completely.
func (r *Reader) ReadFull(b []byte, what string) error {
	off := r.offset
	n, err := io.ReadFull(r.r, b)
	r.offset += int64(n)
	return r.check(err, off, int64(len(b)), int64(n), what)
}

// ReadN reads exactly n bytes and returns them.
//
// The buffer grows with the data actually read, so a corrupt size field
// on a short file does not allocate the full declared length.
func (r *Reader) ReadN(n int64, what string) ([]byte, error) {
	off := r.offset
	buf, err := io.ReadAll(io.LimitReader(r.r, n))
	r.offset += int64(len(buf))
	if err == nil && int64(len(buf)) < n {
		err = io.ErrUnexpectedEOF
	}
	if err := r.check(err, off, n, int64(len(buf)), what); err != nil {
		return nil, err
	}
	return buf, nil
}

// Skip discards the next n bytes.
func (r *Reader) Skip(n int64, what string) error {
	off := r.offset
	copied, err := io.CopyN(io.Discard, r.r, n)
	r.offset += copied
	return r.check(err, off, n, copied, what)
}

func (r *Reader) check(err error, off, want, got int64, what string) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return &types.TruncatedError{
			Path:   r.path,
			What:   what,
			Offset: off,
			Want:   want,
			Got:    got,
		}
	}
	if r.path == "" {
		return fmt.Errorf("failed to read %s at offset %d: %w", what, off, err)
	}
	return fmt.Errorf("%s: failed to read %s at offset %d: %w", r.path, what, off, err)
}
