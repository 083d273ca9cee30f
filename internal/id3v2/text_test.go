package id3v2

import (
	"errors"
	"testing"
)

func TestDecodeText(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
		want    string
	}{
		{"nil", nil, ""},
		{"marker only", []byte{EncodingISO88591}, ""},
		{"latin1 ascii", latin1("Roads"), "Roads"},
		{"latin1 high bytes", []byte{EncodingISO88591, 'B', 'j', 0xF6, 'r', 'k'}, "Björk"},
		{"latin1 0xFF", []byte{EncodingISO88591, 0xFF}, "ÿ"},
		{"latin1 terminated", append(latin1("Roads"), 0x00), "Roads"},
		{"utf8", utf8Text("Sigur Rós"), "Sigur Rós"},
		{"utf8 terminated", append(utf8Text("Sigur Rós"), 0x00), "Sigur Rós"},
		{
			"utf16 odd length with terminator",
			[]byte{EncodingUTF16, 0xFE, 0xFF, 0x00, 'B', 0x00, 'j', 0x00, 0xF6, 0x00, 'r', 0x00, 'k', 0x00, 0x00, 0x00},
			"Björk",
		},
		{"utf16 single stray byte", []byte{EncodingUTF16, 0xFF, 0xFE, 'A', 0x00, 0x00}, "A"},
		{
			"utf16 LE with BOM",
			[]byte{EncodingUTF16, 0xFF, 0xFE, 'R', 0x00, 0xF3, 0x00, 's', 0x00},
			"Rós",
		},
		{
			"utf16 BE with BOM",
			[]byte{EncodingUTF16, 0xFE, 0xFF, 0x00, 'R', 0x00, 0xF3, 0x00, 's'},
			"Rós",
		},
		{
			"utf16 without BOM is big-endian",
			[]byte{EncodingUTF16, 0x00, 'R', 0x00, 0xF3, 0x00, 's'},
			"Rós",
		},
		{
			"utf16BE marker",
			[]byte{EncodingUTF16BE, 0x00, 'R', 0x00, 'o'},
			"Ro",
		},
		{
			"utf16 surrogate pair",
			[]byte{EncodingUTF16, 0xFF, 0xFE, 0x3C, 0xD8, 0xB5, 0xDF},
			"🎵",
		},
		{
			"utf16 terminated",
			[]byte{EncodingUTF16, 0xFF, 0xFE, 'A', 0x00, 0x00, 0x00},
			"A",
		},
		{
			"unknown marker decoded as utf16",
			[]byte{0x07, 0x00, 'O', 0x00, 'K'},
			"OK",
		},
		{"utf16 BOM only", []byte{EncodingUTF16, 0xFF, 0xFE}, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.payload)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("DecodeText(% x) = %q, want %q", tt.payload, got, tt.want)
			}
		})
	}
}

func TestDecodeText_Undecodable(t *testing.T) {
	tests := []struct {
		name    string
		payload []byte
	}{
		{"invalid utf8", []byte{EncodingUTF8, 0xC3, 0x28}},
		{"truncated utf8 sequence", []byte{EncodingUTF8, 'a', 0xE2, 0x82}},
		{"unpaired high surrogate", []byte{EncodingUTF16, 0xFF, 0xFE, 0x3C, 0xD8, 'A', 0x00}},
		{"unpaired low surrogate", []byte{EncodingUTF16BE, 0xDF, 0xB5}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := DecodeText(tt.payload)
			if !errors.Is(err, ErrUndecodable) {
				t.Fatalf("expected ErrUndecodable, got %q, %v", got, err)
			}
			if got != "" {
				t.Errorf("expected no text, got %q", got)
			}
		})
	}
}

func BenchmarkDecodeText_UTF16(b *testing.B) {
	payload := []byte{EncodingUTF16, 0xFF, 0xFE}
	for _, r := range "Massive Attack - Teardrop" {
		payload = append(payload, byte(r), 0x00)
	}
	for b.Loop() {
		_, _ = DecodeText(payload)
	}
}
