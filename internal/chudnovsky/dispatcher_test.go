package chudnovsky

import "testing"

func TestStaticRangesPartitionDisjoint(t *testing.T) {
	cases := []struct {
		termCount uint64
		threads   int
	}{
		{10, 1}, {10, 3}, {10, 4}, {100, 8}, {1, 1}, {7, 7},
	}
	for _, c := range cases {
		ranges := staticRanges(c.termCount, c.threads)
		if len(ranges) != c.threads {
			t.Fatalf("got %d ranges, want %d", len(ranges), c.threads)
		}
		var cursor uint64
		for i, r := range ranges {
			if r[0] != cursor {
				t.Fatalf("range %d starts at %d, want %d", i, r[0], cursor)
			}
			if r[1] < r[0] {
				t.Fatalf("range %d has end < start", i)
			}
			cursor = r[1]
		}
		if cursor != c.termCount {
			t.Fatalf("ranges cover up to %d, want %d", cursor, c.termCount)
		}
	}
}

func TestStaticRangesExtraTermsGoFirst(t *testing.T) {
	ranges := staticRanges(10, 3) // base=3, rem=1 -> sizes 4,3,3
	sizes := make([]uint64, len(ranges))
	for i, r := range ranges {
		sizes[i] = r[1] - r[0]
	}
	want := []uint64{4, 3, 3}
	for i := range want {
		if sizes[i] != want[i] {
			t.Fatalf("sizes = %v, want %v", sizes, want)
		}
	}
}

func TestStaticRangesSingleThreadIsWholeRange(t *testing.T) {
	ranges := staticRanges(42, 1)
	if len(ranges) != 1 || ranges[0][0] != 0 || ranges[0][1] != 42 {
		t.Fatalf("single-thread range = %v, want [[0 42]]", ranges)
	}
}
