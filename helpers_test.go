package id3meta_test

import (
	"bytes"
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"
)

// mpegFrame is a minimal MPEG-1 Layer III frame header plus a few bytes of
// audio, written after test tags.
var mpegFrame = []byte{0xFF, 0xFB, 0x90, 0x00, 0x00, 0x00, 0x00, 0x00}

// textFrame builds a v2.3/v2.4 text frame with an ISO-8859-1 payload.
func textFrame(id, text string) []byte {
	buf := &bytes.Buffer{}
	buf.WriteString(id)
	binary.Write(buf, binary.BigEndian, uint32(1+len(text)))
	buf.Write([]byte{0x00, 0x00}) // flags
	buf.WriteByte(0x00)           // encoding (ISO-8859-1)
	buf.WriteString(text)
	return buf.Bytes()
}

// createTag builds an ID3v2 tag of the given major version around frames.
func createTag(version, flags byte, frames ...[]byte) []byte {
	body := bytes.Join(frames, nil)
	size := len(body)

	buf := &bytes.Buffer{}
	buf.WriteString("ID3")
	buf.Write([]byte{version, 0x00, flags})
	buf.Write([]byte{
		byte(size>>21) & 0x7F,
		byte(size>>14) & 0x7F,
		byte(size>>7) & 0x7F,
		byte(size) & 0x7F,
	})
	buf.Write(body)
	return buf.Bytes()
}

// createMP3 builds a tagged MP3 with an artist and title.
func createMP3(artist, title string) []byte {
	data := createTag(3, 0x00, textFrame("TPE1", artist), textFrame("TIT2", title))
	return append(data, mpegFrame...)
}

// writeTemp writes data to a file in a test temp directory.
func writeTemp(tb testing.TB, name string, data []byte) string {
	tb.Helper()

	path := filepath.Join(tb.TempDir(), name)
	if err := os.WriteFile(path, data, 0o644); err != nil {
		tb.Fatal(err)
	}
	return path
}
