package tiwave

import "testing"

func TestAlign(t *testing.T) {
	tests := []struct {
		x, scales, want int
	}{
		{32, 5, 32},
		{33, 5, 64},
		{1, 5, 32},
		{100, 3, 104},
		{96, 3, 96},
	}

	for _, tt := range tests {
		if got := align(tt.x, tt.scales); got != tt.want {
			t.Errorf("align(%d, %d) = %d, want %d", tt.x, tt.scales, got, tt.want)
		}
	}
}

func TestAutoScales(t *testing.T) {
	tests := []struct {
		width, height, want int
	}{
		{256, 256, 8},
		{100, 100, 5}, // trailing zero bits: 100 = 4*25, 2 trailing zero bits -> defScales floor
		{1024, 64, 6}, // trailing zero bits: min(10,6)=6, above the defScales floor
	}

	for _, tt := range tests {
		if got := autoScales(tt.width, tt.height); got != tt.want {
			t.Errorf("autoScales(%d, %d) = %d, want %d", tt.width, tt.height, got, tt.want)
		}
	}
}
