package id3v2

import (
	"bytes"
	"encoding/binary"
	"log/slog"
	"testing"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// tagLayout describes a tag to build for a test.
type tagLayout struct {
	version  byte
	flags    byte
	extended []byte // raw extended header, written before the frames
	frames   [][]byte
	padding  int
}

// build assembles the tag bytes. When FlagUnsynchronisation is set the
// frame region is unsynchronised before the size is computed.
func (s tagLayout) build(t testing.TB) []byte {
	t.Helper()

	var frames []byte
	for _, f := range s.frames {
		frames = append(frames, f...)
	}
	frames = append(frames, make([]byte, s.padding)...)
	if s.flags&FlagUnsynchronisation != 0 {
		frames = Synchronize(frames)
	}

	body := append(append([]byte{}, s.extended...), frames...)
	size := binutil.EncodeSynchsafe(uint32(len(body)))

	tag := []byte{'I', 'D', '3', s.version, 0x00, s.flags}
	tag = append(tag, size[:]...)
	return append(tag, body...)
}

// frameV3 builds a frame with the 10-byte (v2.3+) header layout.
func frameV3(name string, payload []byte) []byte {
	if len(name) != 4 {
		panic("frameV3: name must be 4 characters")
	}
	f := make([]byte, 10, 10+len(payload))
	copy(f, name)
	binary.BigEndian.PutUint32(f[4:8], uint32(len(payload)))
	return append(f, payload...)
}

// frameV2 builds a frame with the 6-byte (v2.2) header layout.
func frameV2(name string, payload []byte) []byte {
	if len(name) != 3 {
		panic("frameV2: name must be 3 characters")
	}
	n := len(payload)
	f := []byte{name[0], name[1], name[2], byte(n >> 16), byte(n >> 8), byte(n)}
	return append(f, payload...)
}

// latin1 builds an ISO-8859-1 text payload.
func latin1(s string) []byte {
	return append([]byte{EncodingISO88591}, s...)
}

// utf8Text builds a UTF-8 text payload.
func utf8Text(s string) []byte {
	return append([]byte{EncodingUTF8}, s...)
}

func discardLogger() *slog.Logger {
	return slog.New(slog.DiscardHandler)
}

// decodeBytes runs the full pipeline over data.
func decodeBytes(t *testing.T, data []byte) (*types.Metadata, error) {
	t.Helper()
	return Decode(binutil.NewReader(bytes.NewReader(data), "test.mp3"), discardLogger())
}
