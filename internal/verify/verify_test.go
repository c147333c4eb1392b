package verify

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStringsExactMatch(t *testing.T) {
	r := Strings("3.14159", "3.14159")
	if !r.Matched || r.AgreeingDigits != 7 {
		t.Fatalf("got %+v, want matched with 7 agreeing digits", r)
	}
}

func TestStringsPartialMatch(t *testing.T) {
	r := Strings("3.14159", "3.14258")
	if r.Matched {
		t.Fatal("expected mismatch")
	}
	if r.AgreeingDigits != 4 {
		t.Fatalf("AgreeingDigits = %d, want 4", r.AgreeingDigits)
	}
}

func TestStringsReferenceLongerThanComputed(t *testing.T) {
	r := Strings("3.14", "3.14159265")
	if !r.Matched || r.AgreeingDigits != 4 {
		t.Fatalf("got %+v, want matched (computed is a strict prefix)", r)
	}
}

func TestFileStripsCRLF(t *testing.T) {
	dir := t.TempDir()
	computedPath := filepath.Join(dir, "computed.txt")
	referencePath := filepath.Join(dir, "reference.txt")

	if err := os.WriteFile(computedPath, []byte("3.14159\r\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(referencePath, []byte("3.14159\n"), 0o644); err != nil {
		t.Fatal(err)
	}

	r, err := File(computedPath, referencePath)
	if err != nil {
		t.Fatalf("File failed: %v", err)
	}
	if !r.Matched {
		t.Fatalf("got %+v, want matched", r)
	}
}
