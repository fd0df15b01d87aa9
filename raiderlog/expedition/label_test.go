package expedition

import "testing"

func TestPartLabel(t *testing.T) {
	tests := []struct {
		partNumber int
		want       string
	}{
		{1, "Part 1"},
		{2, "Part 2"},
		{10, "Part 10"},
		{0, "Part 0"},
	}
	for _, tt := range tests {
		if got := PartLabel(tt.partNumber); got != tt.want {
			t.Errorf("PartLabel(%d) = %q, want %q", tt.partNumber, got, tt.want)
		}
	}
}
