package retention

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"
)

// Config controls one cleanup run.
type Config struct {
	// MaxAgeHours is the retention window. Zero means every matching asset
	// is expired (force-delete, see IsExpired).
	MaxAgeHours float64
	// DryRun computes the result without removing anything.
	DryRun bool
	// Patterns restricts which filenames are in scope. Empty means
	// DefaultPatterns.
	Patterns []string
}

// Result summarizes one cleanup run. It is constructed fresh per invocation
// and not mutated after Run returns.
type Result struct {
	DeletedFiles []string `json:"deletedFiles"`
	TotalDeleted int      `json:"totalDeleted"`
	TotalSize    int64    `json:"totalSize"`
	Errors       []string `json:"errors"`
	DryRun       bool     `json:"dryRun"`
}

// Run scans dir for matching assets, evaluates each against the retention
// window, and deletes the expired ones (or pretends to, under DryRun).
//
// A failed delete records an error string and moves on; it never aborts the
// run. A file that vanished between scan and delete (typically a concurrent
// cleanup run winning the race) is treated as already done and not reported.
// Each invocation takes its own snapshot via a fresh scan, so concurrent runs
// on the same directory are safe without locking.
func Run(dir string, cfg Config, now time.Time) Result {
	patterns := cfg.Patterns
	if len(patterns) == 0 {
		patterns = DefaultPatterns
	}

	result := Result{
		DeletedFiles: []string{},
		Errors:       []string{},
		DryRun:       cfg.DryRun,
	}

	assets, errs := Scan(dir, patterns)
	result.Errors = append(result.Errors, errs...)

	for _, asset := range assets {
		if !IsExpired(asset, cfg.MaxAgeHours, now) {
			continue
		}
		if !cfg.DryRun {
			if err := os.Remove(filepath.Join(dir, asset.Name)); err != nil {
				if errors.Is(err, fs.ErrNotExist) {
					// Deleted underneath us by a concurrent run.
					continue
				}
				result.Errors = append(result.Errors, fmt.Sprintf("Error deleting file %s: %v", asset.Name, err))
				continue
			}
		}
		result.DeletedFiles = append(result.DeletedFiles, asset.Name)
		result.TotalSize += asset.Size
	}

	result.TotalDeleted = len(result.DeletedFiles)
	return result
}
