package chudnovsky

import "testing"

func TestPrecisionBits(t *testing.T) {
	cases := []struct {
		digits int
		buffer uint
		want   uint
	}{
		{10, 0, 34},   // ceil(10*3.322) = 34
		{10, 20000, 20034},
		{100, 0, 333}, // ceil(100*3.322) = 333
	}
	for _, c := range cases {
		got := PrecisionBits(c.digits, c.buffer)
		if got != c.want {
			t.Errorf("PrecisionBits(%d, %d) = %d, want %d", c.digits, c.buffer, got, c.want)
		}
	}
}

func TestPrecisionBitsCheckedOverflow(t *testing.T) {
	_, err := PrecisionBitsChecked(1_000_000, 20000, 1000)
	if err == nil {
		t.Fatal("expected PrecisionOverflow error, got nil")
	}
}

func TestPrecisionBitsCheckedOK(t *testing.T) {
	p, err := PrecisionBitsChecked(10, 20000, 100000)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if p != 20034 {
		t.Fatalf("p = %d, want 20034", p)
	}
}

func TestEstimateRequiredTerms(t *testing.T) {
	cases := []struct {
		digits int
		want   uint64
	}{
		{1, 3},    // ceil(1/14.1816)+2 = 3
		{10, 3},   // ceil(10/14.1816)+2 = 3
		{100, 10}, // ceil(100/14.1816)+2 = 10
		{1000, 73}, // ceil(1000/14.1816)+2 = 73
	}
	for _, c := range cases {
		got := EstimateRequiredTerms(c.digits)
		if got != c.want {
			t.Errorf("EstimateRequiredTerms(%d) = %d, want %d", c.digits, got, c.want)
		}
	}
}
