package output

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWritePiWritesTrailingNewline(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "computed_pi.txt")

	if err := WritePi(path, "3.14159"); err != nil {
		t.Fatalf("WritePi failed: %v", err)
	}

	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("ReadFile failed: %v", err)
	}
	if string(got) != "3.14159\n" {
		t.Fatalf("file contents = %q, want %q", got, "3.14159\n")
	}
}

func TestWritePiLeavesNoTempFileBehind(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "computed_pi.txt")

	if err := WritePi(path, "3.14"); err != nil {
		t.Fatalf("WritePi failed: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "computed_pi.txt" {
		t.Fatalf("dir entries = %v, want exactly [computed_pi.txt]", entries)
	}
}

func TestWritePiOverwritesExisting(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "computed_pi.txt")

	if err := os.WriteFile(path, []byte("stale\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WritePi(path, "3.14"); err != nil {
		t.Fatalf("WritePi failed: %v", err)
	}
	got, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "3.14\n" {
		t.Fatalf("file contents = %q, want %q", got, "3.14\n")
	}
}
