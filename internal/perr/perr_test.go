package perr

import "testing"

func TestNewAndError(t *testing.T) {
	o := New(InvalidInput, "digits must be > 0, got %d", -1)
	if o.Code != InvalidInput {
		t.Fatalf("Code = %s, want %s", o.Code, InvalidInput)
	}
	want := "invalid_input: digits must be > 0, got -1"
	if o.Error() != want {
		t.Fatalf("Error() = %q, want %q", o.Error(), want)
	}
}

func TestIs(t *testing.T) {
	err := New(Cancelled, "stopped")
	if !Is(err, Cancelled) {
		t.Fatal("Is(err, Cancelled) should be true")
	}
	if Is(err, InvalidInput) {
		t.Fatal("Is(err, InvalidInput) should be false")
	}
	if Is(nil, Cancelled) {
		t.Fatal("Is(nil, _) should be false")
	}
}
