package types

import "fmt"

// TruncatedError is returned when the input ends before a field the tag
// declares has been fully read (tag header, extended header, or tag body).
type TruncatedError struct {
	Path   string
	What   string
	Offset int64
	Want   int64
	Got    int64
}

func (e *TruncatedError) Error() string {
	if e.Path == "" {
		return fmt.Sprintf("truncated input at offset %d while reading %s: got %d bytes, expected %d",
			e.Offset, e.What, e.Got, e.Want)
	}
	return fmt.Sprintf("%s: truncated input at offset %d while reading %s: got %d bytes, expected %d",
		e.Path, e.Offset, e.What, e.Got, e.Want)
}

// Warning represents a non-fatal issue encountered during parsing.
//
// Warnings indicate problems that don't prevent metadata extraction but
// may indicate corrupted or unusual data. Examples include:
//   - A frame whose declared size runs past the end of the tag
//   - A text frame whose bytes are invalid for its declared encoding
//
// Warnings are collected in Metadata.Warnings during parsing.
type Warning struct {
	// Stage where the warning occurred
	Stage string // "frames", "text"

	// Warning message
	Message string

	// Offset within the tag body where the issue occurred (0 if not applicable)
	Offset int64
}

// String returns a human-readable warning message.
func (w Warning) String() string {
	if w.Offset > 0 {
		return fmt.Sprintf("%s (at offset %d): %s", w.Stage, w.Offset, w.Message)
	}
	return fmt.Sprintf("%s: %s", w.Stage, w.Message)
}
