// Package types provides the core data structures shared by the parsing
// packages and re-exported by the root id3meta package.
package types

// Metadata is the result of parsing the ID3v2 tag of one MP3 file.
//
// Artist and Title are optional. An empty string means the field was not
// found (or could not be decoded); the parser never substitutes a
// placeholder. Use ArtistOr and TitleOr to apply a display default:
//
//	meta, err := id3meta.ParseFile("song.mp3")
//	if err != nil {
//		return err
//	}
//	fmt.Printf("%s - %s\n", meta.ArtistOr("Unknown"), meta.TitleOr("Unknown"))
type Metadata struct {
	Artist string
	Title  string

	// Tagged reports whether the input started with a valid ID3v2 header.
	Tagged bool

	// Major version of the tag (2.x), valid only when Tagged is set
	Version byte

	// TagSize is the number of bytes the tag occupies on disk, header included.
	TagSize int64

	// Warnings encountered during parsing (non-fatal issues)
	Warnings []Warning
}

// HasArtist reports whether an artist value was found.
func (m *Metadata) HasArtist() bool {
	return m != nil && m.Artist != ""
}

// HasTitle reports whether a title value was found.
func (m *Metadata) HasTitle() bool {
	return m != nil && m.Title != ""
}

// Found reports whether the tag yielded an artist or a title.
func (m *Metadata) Found() bool {
	return m.HasArtist() || m.HasTitle()
}

// ArtistOr returns the artist, or def when none was found.
func (m *Metadata) ArtistOr(def string) string {
	if !m.HasArtist() {
		return def
	}
	return m.Artist
}

// TitleOr returns the title, or def when none was found.
func (m *Metadata) TitleOr(def string) string {
	if !m.HasTitle() {
		return def
	}
	return m.Title
}
