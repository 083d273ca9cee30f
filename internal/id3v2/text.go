package id3v2

import (
	"bytes"
	"errors"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/unicode"
)

// Text encoding markers (first byte of a text frame payload).
const (
	EncodingISO88591 = 0x00
	EncodingUTF16    = 0x01 // with BOM
	EncodingUTF16BE  = 0x02 // ID3v2.4, no BOM
	EncodingUTF8     = 0x03 // ID3v2.4
)

// ErrUndecodable reports text bytes that are invalid for their declared
// encoding.
var ErrUndecodable = errors.New("undecodable text")

// utf16Text honours a leading BOM and falls back to big-endian without one.
var utf16Text = unicode.UTF16(unicode.BigEndian, unicode.UseBOM)

// DecodeText decodes a text frame payload: an encoding marker followed by
// the text. Payloads shorter than two bytes carry no text. Markers other
// than ISO-8859-1 and UTF-8 are decoded as UTF-16. Trailing NUL terminators
// are removed.
func DecodeText(payload []byte) (string, error) {
	if len(payload) < 2 {
		return "", nil
	}

	encoding, data := payload[0], payload[1:]

	var text string
	switch encoding {
	case EncodingISO88591:
		b, err := charmap.ISO8859_1.NewDecoder().Bytes(data)
		if err != nil {
			return "", fmt.Errorf("%w: ISO-8859-1: %v", ErrUndecodable, err)
		}
		text = string(b)

	case EncodingUTF8:
		if !utf8.Valid(data) {
			return "", fmt.Errorf("%w: invalid UTF-8", ErrUndecodable)
		}
		text = string(data)

	default:
		s, err := decodeUTF16(data)
		if err != nil {
			return "", err
		}
		text = s
	}

	return strings.TrimRight(text, "\x00"), nil
}

// decodeUTF16 decodes UTF-16 with an optional BOM. A trailing odd byte,
// usually a stray terminator, is dropped.
//
// The x/text decoder substitutes U+FFFD for unpaired surrogates, so its
// presence in the output marks the input as malformed.
func decodeUTF16(data []byte) (string, error) {
	data = data[:len(data)&^1]

	b, err := utf16Text.NewDecoder().Bytes(data)
	if err != nil {
		return "", fmt.Errorf("%w: UTF-16: %v", ErrUndecodable, err)
	}
	if bytes.ContainsRune(b, utf8.RuneError) {
		return "", fmt.Errorf("%w: malformed UTF-16", ErrUndecodable)
	}
	return string(b), nil
}
