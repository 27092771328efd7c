package wavelet

import "testing"

func makeRamp(rows, cols int) []float64 {
	img := make([]float64, rows*cols)
	for i := range img {
		img[i] = float64((i * 7) % 256)
	}
	return img
}

func maxAbsDiff(a, b []float64) float64 {
	var max float64
	for i := range a {
		d := a[i] - b[i]
		if d < 0 {
			d = -d
		}
		if d > max {
			max = d
		}
	}
	return max
}

func TestDaub97RoundTrip(t *testing.T) {
	tests := []struct {
		name         string
		rows, cols   int
		levels       int
		maxAllowable float64
	}{
		{"16x16 one level", 16, 16, 1, 1.0},
		{"32x32 three levels", 32, 32, 3, 1.0},
		{"8x16 rectangular", 8, 16, 2, 1.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			original := makeRamp(tt.rows, tt.cols)
			working := append([]float64(nil), original...)

			Daub97Analysis2D(working, tt.rows, tt.cols, tt.levels)
			Daub97Synthesis2D(working, tt.rows, tt.cols, tt.levels)

			if d := maxAbsDiff(original, working); d > tt.maxAllowable {
				t.Errorf("max abs diff = %v, want <= %v", d, tt.maxAllowable)
			}
		})
	}
}

func TestDaub97AnalysisClampsAfterSynthesis(t *testing.T) {
	rows, cols := 8, 8
	img := make([]float64, rows*cols)
	for i := range img {
		img[i] = 255
	}

	Daub97Analysis2D(img, rows, cols, 1)
	Daub97Synthesis2D(img, rows, cols, 1)

	for i, v := range img {
		if v < 0 || v > 255 {
			t.Fatalf("sample %d = %v, out of [0,255]", i, v)
		}
	}
}
