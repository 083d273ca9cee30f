package main

import (
	"fmt"
	"io"
	"os"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3v2"
)

// Useful test file to confirm which frames a tag actually contains.
func main() {
	if len(os.Args) < 2 {
		fmt.Println("Usage: frame-dump <file.mp3>")
		os.Exit(1)
	}

	f, err := os.Open(os.Args[1])
	if err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()

	if err := dumpFrames(os.Stdout, binutil.NewReader(f, os.Args[1])); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func dumpFrames(w io.Writer, br *binutil.Reader) error {
	h, err := id3v2.ReadHeader(br)
	if err != nil {
		return err
	}

	fmt.Fprintf(w, "ID3v2.%d.%d (size: %d, unsync: %v, extended: %v)\n",
		h.Version, h.Revision, h.TotalSize(), h.Unsynchronisation, h.ExtendedHeader)

	body, err := id3v2.LoadBody(br, h)
	if err != nil {
		return err
	}
	if h.Unsynchronisation {
		body = id3v2.Desynchronize(body)
	}

	s := id3v2.NewScanner(body, h.Version)
	for s.Next() {
		frame := s.Frame()
		fmt.Fprintf(w, "  %s (size: %d, offset: %d)", frame.Name, frame.Size, frame.Offset)

		// Text frames start with T; show their value.
		if frame.Name[0] == 'T' {
			if text, err := id3v2.DecodeText(frame.Payload); err == nil {
				fmt.Fprintf(w, " %q", text)
			} else {
				fmt.Fprintf(w, " <%v>", err)
			}
		}
		fmt.Fprintln(w)
	}

	if tf := s.Truncated(); tf != nil {
		fmt.Fprintf(w, "  %s (size: %d, offset: %d) runs past end of tag\n", tf.Name, tf.Size, tf.Offset)
	}

	return nil
}
