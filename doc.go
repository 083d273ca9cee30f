// Package id3meta reads the artist and title from the ID3v2 tag at the
// start of an MP3 file.
//
// # Quick Start
//
//	meta, err := id3meta.ParseFile("song.mp3")
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%s - %s\n", meta.ArtistOr("Unknown"), meta.TitleOr("Unknown"))
//
// # Supported Tags
//
//   - ID3v2.0 - ID3v2.2: 6-byte frame headers, TPE (artist) and TIT (title)
//   - ID3v2.3 - ID3v2.4: 10-byte frame headers, TPE1/TPE2/TPE3 (artist)
//     and TIT2 (title)
//
// Unsynchronised tags and tags with an extended header are handled. Text
// may be ISO-8859-1, UTF-8 or UTF-16 (with or without a byte order mark).
// The first usable artist frame and the first usable title frame win.
//
// # Absent Values
//
// Metadata never invents values. Artist and Title are empty when the tag
// has no usable frame for them; ArtistOr and TitleOr apply a display
// default at the call site.
//
// # Error Handling
//
// id3meta distinguishes between fatal errors and warnings:
//
//   - A file without an ID3v2 tag is not an error: Metadata.Tagged is false.
//   - A file that ends inside its tag fails with *TruncatedError.
//   - A frame that overruns the tag ends the scan with a warning.
//   - A text frame with malformed bytes is skipped with a warning.
//
// Check meta.Warnings for non-fatal issues, or use WithStrictParsing to
// turn them into errors. ParseOrDefault and ParseFileOrDefault never fail;
// they return an empty Metadata instead.
//
// # Concurrency
//
// A parse owns its reader and buffers, so concurrent parses of different
// files are safe. ParseMany parses a batch in parallel:
//
//	results, err := id3meta.ParseMany(ctx, paths)
package id3meta
