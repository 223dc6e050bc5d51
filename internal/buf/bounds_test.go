package buf

import (
	"math"
	"testing"
)

func TestAddOverflowSafe(t *testing.T) {
	if sum, ok := AddOverflowSafe(10, 5); !ok || sum != 15 {
		t.Fatalf("AddOverflowSafe(10,5)=%d,%v want 15,true", sum, ok)
	}
	if _, ok := AddOverflowSafe(math.MaxInt, 1); ok {
		t.Fatalf("expected overflow when adding to MaxInt")
	}
	if _, ok := AddOverflowSafe(math.MinInt, -1); ok {
		t.Fatalf("expected underflow when subtracting from MinInt")
	}
}

func TestAddSaturating(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{200, 10, 210},
		{math.MaxInt, 10, math.MaxInt},
		{math.MaxInt - 3, 3, math.MaxInt},
		{math.MinInt, -1, math.MinInt},
		{-5, 3, -2},
	}
	for _, tt := range tests {
		if got := AddSaturating(tt.a, tt.b); got != tt.want {
			t.Errorf("AddSaturating(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestSubSaturating(t *testing.T) {
	tests := []struct {
		a, b int
		want int
	}{
		{200, 10, 190},
		{5, 10, -5},
		{math.MinInt, 1, math.MinInt},
		{0, math.MinInt, math.MaxInt},
		{-1, math.MinInt, math.MaxInt},
		{math.MaxInt, -1, math.MaxInt},
	}
	for _, tt := range tests {
		if got := SubSaturating(tt.a, tt.b); got != tt.want {
			t.Errorf("SubSaturating(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.want)
		}
	}
}

func TestCheckSpan(t *testing.T) {
	if err := CheckSpan(10, 0, 10); err != nil {
		t.Fatalf("full span rejected: %v", err)
	}
	if err := CheckSpan(10, 4, 4); err != nil {
		t.Fatalf("empty span rejected: %v", err)
	}
	if err := CheckSpan(10, -1, 4); err == nil {
		t.Fatalf("negative start accepted")
	}
	if err := CheckSpan(10, 5, 4); err == nil {
		t.Fatalf("inverted span accepted")
	}
	if err := CheckSpan(10, 0, 11); err == nil {
		t.Fatalf("span past end accepted")
	}
}

func TestSlice(t *testing.T) {
	data := []byte{0, 1, 2, 3, 4}
	if got, ok := Slice(data, 1, 3); !ok || len(got) != 3 || got[0] != 1 || got[2] != 3 {
		t.Fatalf("Slice returned unexpected result: %v, %v", got, ok)
	}
	if _, ok := Slice(data, 4, 2); ok {
		t.Fatalf("Slice should fail when extending beyond len")
	}
	if _, ok := Slice(data, 2, 4); ok {
		t.Fatalf("Slice should fail for out-of-bounds range")
	}
	if got, ok := Slice(data, 5, 0); !ok || len(got) != 0 {
		t.Fatalf("Slice should allow an empty range at len: %v, %v", got, ok)
	}

	if _, ok := Slice(data, -1, 1); ok {
		t.Fatalf("Slice should reject negative offset")
	}
	if _, ok := Slice(data, 1, -1); ok {
		t.Fatalf("Slice should reject negative length")
	}
	if _, ok := Slice(data, 1, math.MaxInt); ok {
		t.Fatalf("Slice should reject overflowing length")
	}
}
