package storage

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSaveImageFollowsFilenameContract(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}

	name, err := store.SaveImage(context.Background(), AssetPrefixGemini, []byte{0x89, 'P', 'N', 'G'})
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	if !strings.HasPrefix(name, "gemini-image-") || !strings.HasSuffix(name, ".png") {
		t.Fatalf("filename %q violates the asset naming contract", name)
	}
	if _, err := os.Stat(filepath.Join(store.BasePath(), name)); err != nil {
		t.Fatalf("saved file missing: %v", err)
	}
}

func TestSaveImageRejectsUnknownPrefix(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if _, err := store.SaveImage(context.Background(), "random-prefix", []byte{1}); err == nil {
		t.Fatalf("expected error for unknown prefix")
	}
	if _, err := store.SaveImage(context.Background(), AssetPrefixProduct, nil); err == nil {
		t.Fatalf("expected error for empty payload")
	}
}

func TestWriteSanitizesKeys(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	if _, err := store.Write(context.Background(), "../escape.png", []byte{1}); err == nil {
		t.Fatalf("expected traversal key to be rejected")
	}
	key, err := store.Write(context.Background(), "/nested/dir/file.png", []byte{1})
	if err != nil {
		t.Fatalf("write: %v", err)
	}
	if key != "nested/dir/file.png" {
		t.Fatalf("key = %q, want nested/dir/file.png", key)
	}
}

func TestReadRoundTrip(t *testing.T) {
	store, err := NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("new file store: %v", err)
	}
	payload := []byte("image-bytes")
	name, err := store.SaveImage(context.Background(), AssetPrefixFashion, payload)
	if err != nil {
		t.Fatalf("save image: %v", err)
	}
	got, err := store.Read(context.Background(), name)
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if string(got) != string(payload) {
		t.Fatalf("read mismatch: got %q", got)
	}
}
