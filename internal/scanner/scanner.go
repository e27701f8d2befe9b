package scanner

import (
	"context"

	"github.com/samuli/dirlist/internal/model"
)

// Config describes one scan. It is not modified once built.
type Config struct {
	Root               string
	IncludeFiles       bool
	IncludeDirectories bool
	IncludeSymlinks    bool
	Sort               bool
}

// NewConfig builds a Config. When no kind is selected every kind is
// included, and an empty root means the current directory.
func NewConfig(root string, files, directories, symlinks, sort bool) Config {
	if !files && !directories && !symlinks {
		files, directories, symlinks = true, true, true
	}
	if root == "" {
		root = "."
	}
	return Config{
		Root:               root,
		IncludeFiles:       files,
		IncludeDirectories: directories,
		IncludeSymlinks:    symlinks,
		Sort:               sort,
	}
}

// Includes reports whether entries of kind k are kept
func (c Config) Includes(k model.Kind) bool {
	switch k {
	case model.File:
		return c.IncludeFiles
	case model.Directory:
		return c.IncludeDirectories
	case model.Symlink:
		return c.IncludeSymlinks
	default:
		return false
	}
}

// Stats counts what a scan touched
type Stats struct {
	DirsVisited int64
	EntriesSeen int64
	Kept        int64
	Skipped     int64
}

// Scanner defines the interface for filesystem scanning
type Scanner interface {
	// Scan walks cfg.Root and returns the kept entries in traversal order
	Scan(ctx context.Context, cfg Config) (*model.ResultSet, error)

	// Stats returns the counters of the last scan
	Stats() Stats
}
