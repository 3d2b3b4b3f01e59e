package storage

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/pravoline/legal-site-api/internal/core/domain"
)

func TestLocal_SaveAndOverwrite(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Save("photo.jpg", []byte("first"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/photo.jpg" {
		t.Fatalf("got url %q, want /uploads/photo.jpg", url)
	}

	if _, err := store.Save("photo.jpg", []byte("second")); err != nil {
		t.Fatalf("overwrite: %v", err)
	}
	data, err := os.ReadFile(filepath.Join(dir, "photo.jpg"))
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if string(data) != "second" {
		t.Fatalf("got %q after overwrite, want %q", data, "second")
	}
}

func TestLocal_StripsDirectoryComponents(t *testing.T) {
	dir := t.TempDir()
	store, err := NewLocal(dir)
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	url, err := store.Save("../../etc/passwd", []byte("x"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if url != "/uploads/passwd" {
		t.Fatalf("got url %q, want /uploads/passwd", url)
	}
	if _, err := os.Stat(filepath.Join(dir, "passwd")); err != nil {
		t.Fatalf("file was not written inside the upload dir: %v", err)
	}
}

func TestLocal_RejectsEmptyName(t *testing.T) {
	store, err := NewLocal(t.TempDir())
	if err != nil {
		t.Fatalf("NewLocal: %v", err)
	}

	for _, name := range []string{"", ".", "..", "/"} {
		_, err := store.Save(name, []byte("x"))
		var fe *domain.FieldError
		if !errors.As(err, &fe) {
			t.Fatalf("Save(%q): got %v, want field error", name, err)
		}
	}
}
