// Command id3info prints the artist and title of MP3 files.
//
// Usage:
//
//	id3info [flags] <file.mp3>...
//
// Flags may also be set from a YAML file with -config.file; command line
// flags take precedence.
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"

	"github.com/pkg/errors"
	"github.com/prometheus/common/version"
	yaml "gopkg.in/yaml.v2"

	"github.com/simonhull/id3meta"
)

const appName = "id3info"

// Version is set via build flag -ldflags -X main.Version
var (
	Version  string
	Branch   string
	Revision string
)

func init() {
	if Version == "" {
		Version = id3meta.Version
	}
	version.Version = Version
	version.Branch = Branch
	version.Revision = Revision
}

func main() {
	level := new(slog.LevelVar)
	level.Set(slog.LevelInfo)

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level}))

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <file.mp3>...\n\n", appName)
		flag.PrintDefaults()
	}

	cfg, err := loadConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		logger.Error("failed to load config", "err", err)
		os.Exit(2)
	}

	if cfg.PrintVersion {
		fmt.Println(version.Print(appName))
		return
	}

	if cfg.Verbose {
		level.Set(slog.LevelDebug)
	}

	paths := flag.Args()
	if len(paths) == 0 {
		flag.Usage()
		os.Exit(2)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	if err := run(ctx, cfg, paths, os.Stdout, logger); err != nil {
		logger.Error("error running", "app", appName, "err", err)
		os.Exit(1)
	}
}

// record is one file's output row.
type record struct {
	Path     string   `json:"path" yaml:"path"`
	Artist   string   `json:"artist" yaml:"artist"`
	Title    string   `json:"title" yaml:"title"`
	Version  int      `json:"version,omitempty" yaml:"version,omitempty"`
	TagSize  int64    `json:"tag_size,omitempty" yaml:"tag_size,omitempty"`
	Warnings []string `json:"warnings,omitempty" yaml:"warnings,omitempty"`
}

func run(ctx context.Context, cfg *Config, paths []string, w io.Writer, logger *slog.Logger) error {
	opts := []id3meta.Option{id3meta.WithLogger(logger)}
	if cfg.Strict {
		opts = append(opts, id3meta.WithStrictParsing())
	}
	if cfg.Concurrency > 0 {
		opts = append(opts, id3meta.WithConcurrency(cfg.Concurrency))
	}

	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	results, err := id3meta.ParseMany(ctx, paths, opts...)
	if err != nil {
		return errors.Wrap(err, "failed to read tags")
	}

	records := make([]record, len(results))
	for i, meta := range results {
		rec := record{
			Path:    paths[i],
			Artist:  meta.ArtistOr(cfg.Unknown),
			Title:   meta.TitleOr(cfg.Unknown),
			Version: int(meta.Version),
			TagSize: meta.TagSize,
		}
		for _, warn := range meta.Warnings {
			logger.Warn("malformed tag", "path", paths[i], "stage", warn.Stage, "offset", warn.Offset, "warning", warn.Message)
			rec.Warnings = append(rec.Warnings, warn.String())
		}
		if !meta.Tagged {
			logger.Debug("no ID3v2 tag", "path", paths[i])
		}
		records[i] = rec
	}

	return writeRecords(w, cfg.Format, records)
}

func writeRecords(w io.Writer, format string, records []record) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return errors.Wrap(enc.Encode(records), "failed to encode json")

	case FormatYAML:
		out, err := yaml.Marshal(records)
		if err != nil {
			return errors.Wrap(err, "failed to encode yaml")
		}
		_, err = w.Write(out)
		return err

	default:
		for _, rec := range records {
			var err error
			if len(records) > 1 {
				_, err = fmt.Fprintf(w, "%s: %s - %s\n", rec.Path, rec.Artist, rec.Title)
			} else {
				_, err = fmt.Fprintf(w, "%s - %s\n", rec.Artist, rec.Title)
			}
			if err != nil {
				return err
			}
		}
		return nil
	}
}
