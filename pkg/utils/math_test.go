package utils

import "testing"

func TestIsPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want bool
	}{
		{-4, false},
		{0, false},
		{1, true},
		{2, true},
		{3, false},
		{64, true},
		{100, false},
		{1 << 20, true},
	}

	for _, tt := range tests {
		if got := IsPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("IsPowerOfTwo(%d) = %v, want %v", tt.n, got, tt.want)
		}
	}
}

func TestCeilToPowerOfTwo(t *testing.T) {
	tests := []struct {
		n    int
		want int
	}{
		{-1, 2},
		{0, 2},
		{1, 2},
		{2, 2},
		{3, 4},
		{8, 8},
		{9, 16},
		{1000, 1024},
		{4097, 8192},
	}

	for _, tt := range tests {
		if got := CeilToPowerOfTwo(tt.n); got != tt.want {
			t.Errorf("CeilToPowerOfTwo(%d) = %d, want %d", tt.n, got, tt.want)
		}
	}
}

func TestCeilToPowerOfTwo_TooLarge(t *testing.T) {
	defer func() {
		if r := recover(); r == nil {
			t.Error("expected panic for argument above the largest int power of two")
		}
	}()
	CeilToPowerOfTwo(maxIntHeadBit + 1)
}
