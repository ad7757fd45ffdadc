package retention

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
)

// Scan lists the assets in dir whose filenames match at least one pattern.
// The scan is read-only. An entry that vanishes between the directory listing
// and its stat (a concurrent cleanup winning the race) is skipped silently;
// any other stat failure records an error string and skips that entry, and
// the rest of the directory is still scanned. A missing or unreadable
// directory yields an empty slice plus a single error.
func Scan(dir string, patterns []string) ([]Asset, []string) {
	var errs []string

	entries, err := os.ReadDir(dir)
	if err != nil {
		errs = append(errs, fmt.Sprintf("Error reading directory %s: %v", dir, err))
		return nil, errs
	}

	var assets []Asset
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		name := entry.Name()
		if !MatchAny(patterns, name) {
			continue
		}
		info, err := os.Stat(filepath.Join(dir, name))
		if err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				errs = append(errs, fmt.Sprintf("Error processing file %s: %v", name, err))
			}
			continue
		}
		assets = append(assets, Asset{
			Name:    name,
			Size:    info.Size(),
			ModTime: info.ModTime(),
		})
	}

	sort.Slice(assets, func(i, j int) bool { return assets[i].Name < assets[j].Name })
	return assets, errs
}
