package id3v2

import (
	"fmt"
	"log/slog"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/types"
)

// Decode reads one ID3v2 tag from br and extracts its artist and title.
//
// It returns ErrNoTag when the input is not tagged, and a
// *types.TruncatedError when the input ends inside the tag. Oversized
// frames and undecodable text are reported as warnings on the result.
func Decode(br *binutil.Reader, logger *slog.Logger) (*types.Metadata, error) {
	header, err := ReadHeader(br)
	if err != nil {
		return nil, err
	}

	logger = logger.With("version", fmt.Sprintf("2.%d.%d", header.Version, header.Revision))
	logger.Debug("found ID3v2 header",
		"size", header.Size,
		"unsync", header.Unsynchronisation,
		"extended", header.ExtendedHeader)

	body, err := LoadBody(br, header)
	if err != nil {
		return nil, err
	}

	if header.Unsynchronisation {
		body = Desynchronize(body)
	}

	meta := &types.Metadata{
		Tagged:  true,
		Version: header.Version,
		TagSize: header.TotalSize(),
	}
	scanFrames(body, header.Version, meta, logger)

	return meta, nil
}

// scanFrames fills meta from the recognised frames in body. The first
// usable value for each field wins.
func scanFrames(body []byte, version byte, meta *types.Metadata, logger *slog.Logger) {
	s := NewScanner(body, version)
	for s.Next() {
		frame := s.Frame()

		var dst *string
		switch FrameField(frame.Name, version) {
		case FieldArtist:
			dst = &meta.Artist
		case FieldTitle:
			dst = &meta.Title
		default:
			logger.Debug("skipping frame", "frame", frame.Name, "size", frame.Size)
			continue
		}

		if *dst != "" {
			continue
		}

		text, err := DecodeText(frame.Payload)
		if err != nil {
			logger.Debug("undecodable text frame", "frame", frame.Name, "err", err)
			meta.Warnings = append(meta.Warnings, types.Warning{
				Stage:   "text",
				Message: fmt.Sprintf("frame %s: %v", frame.Name, err),
				Offset:  int64(frame.Offset),
			})
			continue
		}
		*dst = text
	}

	if f := s.Truncated(); f != nil {
		logger.Debug("frame runs past end of tag", "frame", f.Name, "size", f.Size, "offset", f.Offset)
		meta.Warnings = append(meta.Warnings, types.Warning{
			Stage:   "frames",
			Message: fmt.Sprintf("frame %q size %d runs past end of tag (%d bytes)", f.Name, f.Size, len(body)),
			Offset:  int64(f.Offset),
		})
	}
}
