package id3meta

import (
	"log/slog"
	"runtime"
)

// Option configures parsing behavior.
//
// Options use the functional options pattern for clean, extensible APIs.
//
// Example:
//
//	meta, err := id3meta.ParseFile("song.mp3",
//	    id3meta.WithStrictParsing(),
//	    id3meta.WithLogger(logger),
//	)
type Option func(*parseOptions)

// parseOptions holds configuration for a parse call.
type parseOptions struct {
	strictParsing  bool         // Fail on any warning
	ignoreWarnings bool         // Suppress all warnings
	logger         *slog.Logger // Debug output; discarded by default
	concurrency    int          // ParseMany worker limit
}

// defaultOptions returns the default configuration.
func defaultOptions() *parseOptions {
	return &parseOptions{
		logger:      slog.New(slog.DiscardHandler),
		concurrency: runtime.NumCPU(),
	}
}

func applyOptions(opts []Option) *parseOptions {
	options := defaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	return options
}

// WithStrictParsing treats any warning as a fatal error.
//
// By default, id3meta continues when a frame overruns the tag or a text
// frame cannot be decoded, returning warnings alongside whatever it found.
// With strict parsing enabled, the first such warning becomes an error.
func WithStrictParsing() Option {
	return func(o *parseOptions) {
		o.strictParsing = true
	}
}

// WithIgnoreWarnings suppresses all warnings.
//
// Metadata.Warnings will always be empty. Has no effect on strict parsing,
// which still sees the warnings before they are discarded.
func WithIgnoreWarnings() Option {
	return func(o *parseOptions) {
		o.ignoreWarnings = true
	}
}

// WithLogger sets a logger for debug output about the tag structure
// (skipped frames, undecodable text, truncated frames).
//
// A nil logger keeps the default, which discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(o *parseOptions) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithConcurrency limits how many files ParseMany parses at once.
//
// Default is runtime.NumCPU(). Values below 1 are ignored.
func WithConcurrency(n int) Option {
	return func(o *parseOptions) {
		if n > 0 {
			o.concurrency = n
		}
	}
}
