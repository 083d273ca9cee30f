package id3v2

import (
	"encoding/binary"

	binutil "github.com/simonhull/id3meta/internal/binary"
)

// Frame is a single frame inside a tag body. Payload aliases the body.
type Frame struct {
	Name    string // 3 (v2.2 and earlier) or 4 character frame ID
	Size    int    // Payload size, excluding the frame header
	Offset  int    // Offset of the frame header within the body
	Payload []byte
}

// FrameHeaderSize returns the frame header length for a major version.
func FrameHeaderSize(version byte) int {
	if version < 3 {
		return 6
	}
	return 10
}

// frameNameSize returns the frame ID length for a major version.
func frameNameSize(version byte) int {
	if version < 3 {
		return 3
	}
	return 4
}

// Scanner walks the frames of a (desynchronized) tag body.
//
// Scanning stops at padding, at any byte that cannot start a frame ID, when
// too few bytes remain for a frame header, or when a frame's payload would
// run past the end of the body. The last case is reported by Truncated.
//
//	s := NewScanner(body, h.Version)
//	for s.Next() {
//		f := s.Frame()
//		...
//	}
type Scanner struct {
	body      []byte
	version   byte
	pos       int
	frame     Frame
	truncated *Frame
}

// NewScanner returns a Scanner over body using the frame layout of version.
func NewScanner(body []byte, version byte) *Scanner {
	return &Scanner{body: body, version: version}
}

// Next advances to the next frame and reports whether there is one.
func (s *Scanner) Next() bool {
	hdrSize := FrameHeaderSize(s.version)
	if len(s.body)-s.pos < hdrSize {
		return false
	}

	// Frame IDs start with an uppercase letter; anything else is padding
	// or garbage after the last frame.
	if c := s.body[s.pos]; c < 'A' || c > 'Z' {
		return false
	}

	nameSize := frameNameSize(s.version)
	hdr := s.body[s.pos : s.pos+hdrSize]

	var size uint32
	if s.version < 3 {
		size = binutil.Uint24(hdr[3:6])
	} else {
		size = binary.BigEndian.Uint32(hdr[4:8])
	}

	f := Frame{
		Name:   string(hdr[:nameSize]),
		Size:   int(size),
		Offset: s.pos,
	}

	start := s.pos + hdrSize
	if int64(size) > int64(len(s.body)-start) {
		s.truncated = &f
		return false
	}

	f.Payload = s.body[start : start+f.Size]
	s.frame = f
	s.pos = start + f.Size
	return true
}

// Frame returns the frame found by the last successful call to Next.
func (s *Scanner) Frame() Frame {
	return s.frame
}

// Truncated returns the frame that stopped the scan because its declared
// size runs past the body, or nil if scanning ended normally.
func (s *Scanner) Truncated() *Frame {
	return s.truncated
}

// Field identifies which metadata value a frame carries.
type Field int

const (
	FieldNone Field = iota
	FieldArtist
	FieldTitle
)

// FrameField maps a frame ID to the metadata field it populates.
// Pre-v3 tags use the 3-character IDs.
func FrameField(name string, version byte) Field {
	if version < 3 {
		switch name {
		case "TPE":
			return FieldArtist
		case "TIT":
			return FieldTitle
		}
		return FieldNone
	}

	switch name {
	case "TPE1", "TPE2", "TPE3":
		return FieldArtist
	case "TIT2":
		return FieldTitle
	}
	return FieldNone
}
