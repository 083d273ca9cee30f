package id3meta

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"golang.org/x/sync/errgroup"

	binutil "github.com/simonhull/id3meta/internal/binary"
	"github.com/simonhull/id3meta/internal/id3v2"
)

// Parse reads the ID3v2 tag at the current position of r and returns its
// artist and title.
//
// Only the tag itself is consumed: on success r is positioned at the first
// byte after the tag. Input without an ID3v2 tag (no "ID3" signature, or a
// major version above 4) is not an error; Parse returns a Metadata with
// Tagged unset. The only hard failure is input that ends inside the tag,
// reported as *TruncatedError, and I/O errors from r.
//
// Example:
//
//	meta, err := id3meta.Parse(bytes.NewReader(data))
//	if err != nil {
//		return err
//	}
//	if meta.Found() {
//		fmt.Printf("%s - %s\n", meta.Artist, meta.Title)
//	}
func Parse(r io.Reader, opts ...Option) (*Metadata, error) {
	return parse(r, "", applyOptions(opts))
}

// ParseOrDefault is like Parse but never fails: any error yields an empty
// Metadata.
func ParseOrDefault(r io.Reader, opts ...Option) *Metadata {
	return orDefault(Parse(r, opts...))
}

// ParseFile opens the file at path and parses its ID3v2 tag.
//
// The file is closed before ParseFile returns.
func ParseFile(path string, opts ...Option) (*Metadata, error) {
	return parseFile(path, applyOptions(opts))
}

// ParseFileOrDefault is like ParseFile but never fails: any error,
// including a missing file, yields an empty Metadata.
func ParseFileOrDefault(path string, opts ...Option) *Metadata {
	return orDefault(ParseFile(path, opts...))
}

// ParseMany parses multiple files concurrently.
//
// Files are parsed in parallel using up to runtime.NumCPU() goroutines
// (see WithConcurrency). Results are returned in the same order as the
// input paths.
//
// If any file fails to parse, or ctx is cancelled, ParseMany returns nil
// and the first error.
//
// Example:
//
//	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
//	defer cancel()
//
//	results, err := id3meta.ParseMany(ctx, paths)
//	if err != nil {
//		log.Fatal(err)
//	}
//	for i, meta := range results {
//		fmt.Printf("%s: %s - %s\n", paths[i], meta.ArtistOr("Unknown"), meta.TitleOr("Unknown"))
//	}
func ParseMany(ctx context.Context, paths []string, opts ...Option) ([]*Metadata, error) {
	if len(paths) == 0 {
		return nil, nil
	}

	options := applyOptions(opts)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(options.concurrency)

	results := make([]*Metadata, len(paths))

	for i, path := range paths {
		g.Go(func() error {
			// Check for cancellation
			if err := ctx.Err(); err != nil {
				return err
			}

			meta, err := parseFile(path, options)
			if err != nil {
				return err
			}

			results[i] = meta
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}

func parseFile(path string, options *parseOptions) (*Metadata, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open file: %w", err)
	}
	defer f.Close()

	return parse(f, path, options)
}

func parse(r io.Reader, path string, options *parseOptions) (*Metadata, error) {
	logger := options.logger
	if path != "" {
		logger = logger.With("path", path)
	}

	meta, err := id3v2.Decode(binutil.NewReader(r, path), logger)
	if errors.Is(err, id3v2.ErrNoTag) {
		logger.Debug("no ID3v2 tag")
		return &Metadata{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("parse id3v2: %w", err)
	}

	// Check strict parsing mode
	if options.strictParsing && len(meta.Warnings) > 0 {
		return nil, fmt.Errorf("strict parsing failed: %s", meta.Warnings[0])
	}

	if options.ignoreWarnings {
		meta.Warnings = nil
	}

	return meta, nil
}

// orDefault converts a failed parse into an empty result.
func orDefault(meta *Metadata, err error) *Metadata {
	if err != nil {
		return &Metadata{}
	}
	return meta
}
