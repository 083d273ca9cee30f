package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// TruncatedError is an alias to types.TruncatedError.
// Re-exporting from internal/types to maintain public API.
type TruncatedError = types.TruncatedError

// Warning is an alias to types.Warning.
// Re-exporting from internal/types to maintain public API.
type Warning = types.Warning
