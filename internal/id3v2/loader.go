package id3v2

import (
	binutil "github.com/simonhull/id3meta/internal/binary"
)

// extendedSizeLen is the length of the extended header's own size field.
const extendedSizeLen = 4

// LoadBody skips the extended header, if any, and reads the rest of the
// tag body. On success the reader is positioned at the first byte after
// the tag.
//
// The extended header size is synchsafe and counts its own four size bytes.
// A size that claims more than the tag holds is clamped to the tag, which
// leaves an empty body.
func LoadBody(br *binutil.Reader, h Header) ([]byte, error) {
	remaining := int64(h.Size)

	if h.ExtendedHeader {
		if remaining < extendedSizeLen {
			return nil, br.Skip(remaining, "extended header")
		}

		var buf [extendedSizeLen]byte
		if err := br.ReadFull(buf[:], "extended header size"); err != nil {
			return nil, err
		}
		remaining -= extendedSizeLen

		skip := int64(binutil.DecodeSynchsafe(buf[:])) - extendedSizeLen
		skip = min(max(skip, 0), remaining)
		if err := br.Skip(skip, "extended header"); err != nil {
			return nil, err
		}
		remaining -= skip
	}

	return br.ReadN(remaining, "tag body")
}
