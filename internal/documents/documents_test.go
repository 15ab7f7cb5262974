package documents

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		filename string
		size     int64
		wantErr  error
	}{
		{"pdf accepted", "report.pdf", 100, nil},
		{"docx accepted", "report.docx", 100, nil},
		{"xlsx accepted", "report.xlsx", 100, nil},
		{"uppercase extension accepted", "REPORT.PDF", 100, nil},
		{"exe rejected", "report.exe", 100, ErrUnsupportedType},
		{"no extension rejected", "report", 100, ErrUnsupportedType},
		{"double extension uses last", "report.pdf.exe", 100, ErrUnsupportedType},
		{"empty upload", "report.pdf", 0, ErrEmptyUpload},
		{"negative size", "report.pdf", -1, ErrEmptyUpload},
		{"too large", "report.pdf", MaxSize + 1, ErrTooLarge},
		{"exactly at limit", "report.pdf", MaxSize, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := Validate(tt.filename, tt.size)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate(%q, %d) = %v, want %v", tt.filename, tt.size, err, tt.wantErr)
			}
		})
	}
}

func TestDiskStoreRoundTrip(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	ref, err := store.Save("invoice.pdf", strings.NewReader("pdf bytes"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	if ref == "" {
		t.Fatal("Save returned an empty reference")
	}

	f, err := store.Open(ref)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()

	got, err := io.ReadAll(f)
	if err != nil {
		t.Fatalf("ReadAll: %v", err)
	}
	if string(got) != "pdf bytes" {
		t.Errorf("stored bytes = %q, want %q", got, "pdf bytes")
	}
}

func TestDiskStoreDoesNotCollide(t *testing.T) {
	store := NewDiskStore(t.TempDir())

	ref1, err := store.Save("invoice.pdf", strings.NewReader("first"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}
	ref2, err := store.Save("invoice.pdf", strings.NewReader("second"))
	if err != nil {
		t.Fatalf("Save: %v", err)
	}

	if ref1 == ref2 {
		t.Fatalf("same reference for two uploads of the same filename: %q", ref1)
	}

	f, err := store.Open(ref1)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	defer f.Close()
	got, _ := io.ReadAll(f)
	if string(got) != "first" {
		t.Errorf("first upload was overwritten: %q", got)
	}
}

func TestDiskStoreOpenStripsPath(t *testing.T) {
	dir := t.TempDir()
	store := NewDiskStore(filepath.Join(dir, "uploads"))

	secret := filepath.Join(dir, "secret.txt")
	if err := os.WriteFile(secret, []byte("secret"), 0o600); err != nil {
		t.Fatal(err)
	}

	if _, err := store.Open("../secret.txt"); err == nil {
		t.Error("Open followed a path traversal reference")
	}
}
