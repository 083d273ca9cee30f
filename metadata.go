package id3meta

import (
	"github.com/simonhull/id3meta/internal/types"
)

// Metadata is an alias to types.Metadata.
// Re-exporting from internal/types to maintain public API.
type Metadata = types.Metadata
