// Package id3v2 decodes the artist and title frames of an ID3v2 tag.
//
// Decoding runs as a fixed pipeline over one sequential reader:
//
//	ReadHeader -> LoadBody -> Desynchronize -> Scanner + DecodeText
//
// Versions 2.0 through 2.4 are accepted. Versions below 3 use the short
// 6-byte frame header with 3-character frame names.
package id3v2

import (
	"bytes"
	"errors"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// HeaderSize is the length of the fixed ID3v2 tag header.
const HeaderSize = 10

// Header flag bits (byte 5 of the tag header).
const (
	FlagUnsynchronisation = 0x80
	FlagExtendedHeader    = 0x40
	FlagExperimental      = 0x20
	FlagFooter            = 0x10
)

// MaxVersion is the highest major version accepted.
const MaxVersion = 4

// ErrNoTag reports that the input does not start with an ID3v2 tag this
// package understands: the "ID3" signature is missing or the major version
// is out of range. It describes a valid, untagged file, not a failure.
var ErrNoTag = errors.New("id3v2: no tag present")

// Header represents an ID3v2 tag header.
type Header struct {
	Version           byte // Major version (0-4)
	Revision          byte // Minor version
	Unsynchronisation bool
	ExtendedHeader    bool
	Experimental      bool
	Footer            bool
	Size              uint32 // Tag size excluding the 10-byte header, synchsafe on disk
}

// TotalSize returns the number of bytes the tag spans on disk, header
// included. The header length is added to the fully decoded body size.
func (h Header) TotalSize() int64 {
	return int64(h.Size) + HeaderSize
}

// ReadHeader reads and validates the 10-byte tag header.
//
// It returns ErrNoTag for a signature or version mismatch, including
// input too short to hold a signature. Input that starts like a tag but
// ends before 10 bytes fails with *types.TruncatedError.
func ReadHeader(br *binutil.Reader) (Header, error) {
	var buf [HeaderSize]byte
	if err := br.ReadFull(buf[:], "ID3v2 header"); err != nil {
		var te *types.TruncatedError
		if errors.As(err, &te) && !looksLikeTag(buf[:te.Got]) {
			return Header{}, ErrNoTag
		}
		return Header{}, err
	}
	return parseHeader(buf)
}

// looksLikeTag reports whether a partial header carries the signature and,
// if present, an acceptable version.
func looksLikeTag(partial []byte) bool {
	if !bytes.HasPrefix(partial, []byte("ID3")) {
		return false
	}
	return len(partial) < 4 || partial[3] <= MaxVersion
}

func parseHeader(buf [HeaderSize]byte) (Header, error) {
	// Verify "ID3" magic bytes
	if string(buf[0:3]) != "ID3" {
		return Header{}, ErrNoTag
	}

	if buf[3] > MaxVersion {
		return Header{}, ErrNoTag
	}

	flags := buf[5]
	return Header{
		Version:           buf[3],
		Revision:          buf[4],
		Unsynchronisation: flags&FlagUnsynchronisation != 0,
		ExtendedHeader:    flags&FlagExtendedHeader != 0,
		Experimental:      flags&FlagExperimental != 0,
		Footer:            flags&FlagFooter != 0,
		Size:              binutil.DecodeSynchsafe(buf[6:10]),
	}, nil
}
