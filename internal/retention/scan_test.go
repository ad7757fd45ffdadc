package retention

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScanFiltersByPattern(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeAsset(t, dir, "gemini-image-1.png", 10, time.Hour, now)
	writeAsset(t, dir, "notes.txt", 10, time.Hour, now)
	require.NoError(t, os.Mkdir(filepath.Join(dir, "gemini-image-dir.png"), 0o755))

	assets, errs := Scan(dir, DefaultPatterns)

	assert.Empty(t, errs)
	require.Len(t, assets, 1)
	assert.Equal(t, "gemini-image-1.png", assets[0].Name)
	assert.Equal(t, int64(10), assets[0].Size)
}

func TestScanMissingDirectory(t *testing.T) {
	assets, errs := Scan(filepath.Join(t.TempDir(), "missing"), DefaultPatterns)

	assert.Empty(t, assets)
	require.Len(t, errs, 1)
	assert.Contains(t, errs[0], "Error reading directory")
}

// An entry whose stat reports not-exist (a concurrent cleanup removed it
// after the listing) is skipped without an error; the rest of the directory
// still scans. A dangling symlink is the portable way to make stat fail with
// not-exist for one name only.
func TestScanSkipsVanishedEntrySilently(t *testing.T) {
	dir := t.TempDir()
	now := time.Now()
	writeAsset(t, dir, "gemini-image-good.png", 10, time.Hour, now)
	require.NoError(t, os.Symlink(
		filepath.Join(dir, "gone"),
		filepath.Join(dir, "gemini-image-vanished.png"),
	))

	assets, errs := Scan(dir, DefaultPatterns)

	require.Len(t, assets, 1)
	assert.Equal(t, "gemini-image-good.png", assets[0].Name)
	assert.Empty(t, errs)
}
