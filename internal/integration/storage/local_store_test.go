package storage

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestLocalReceiptStore_Save(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocalReceiptStore(dir)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := store.Save([]byte("image-bytes"), "receipt.jpg")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if filepath.Dir(path) != dir {
		t.Errorf("expected file under %s, got %s", dir, path)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected original extension kept, got %s", path)
	}
	if !strings.HasPrefix(filepath.Base(path), "receipt_") {
		t.Errorf("expected generated name with receipt_ prefix, got %s", filepath.Base(path))
	}

	content, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("failed to read stored file: %v", err)
	}
	if string(content) != "image-bytes" {
		t.Errorf("stored content mismatch: %q", content)
	}
}

func TestLocalReceiptStore_UniqueNames(t *testing.T) {
	store, err := NewLocalReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	seen := make(map[string]bool)
	for i := 0; i < 20; i++ {
		path, err := store.Save([]byte("x"), "same-name.png")
		if err != nil {
			t.Fatalf("save %d failed: %v", i, err)
		}
		if seen[path] {
			t.Fatalf("duplicate path generated: %s", path)
		}
		seen[path] = true
	}
}

func TestLocalReceiptStore_DefaultExtension(t *testing.T) {
	store, err := NewLocalReceiptStore(t.TempDir())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	path, err := store.Save([]byte("x"), "no-extension")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if filepath.Ext(path) != ".jpg" {
		t.Errorf("expected .jpg fallback extension, got %s", path)
	}
}

func TestNewLocalReceiptStore_CreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "receipts")

	if _, err := NewLocalReceiptStore(dir); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info, err := os.Stat(dir)
	if err != nil {
		t.Fatalf("expected directory created: %v", err)
	}
	if !info.IsDir() {
		t.Error("expected a directory")
	}
}
