package colorspace

import "testing"

func TestToYCbCrToRGBRoundTrip(t *testing.T) {
	tests := []struct {
		name string
		rgb  []byte
	}{
		{"black", []byte{0, 0, 0}},
		{"white", []byte{255, 255, 255}},
		{"red", []byte{255, 0, 0}},
		{"mixed", []byte{12, 200, 77, 255, 0, 128, 30, 30, 30}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			buf := append([]byte(nil), tt.rgb...)
			ToYCbCr(buf)
			ToRGB(buf)

			for i := range tt.rgb {
				d := int(tt.rgb[i]) - int(buf[i])
				if d < -2 || d > 2 {
					t.Errorf("byte %d = %d, want close to %d", i, buf[i], tt.rgb[i])
				}
			}
		})
	}
}

func TestToYCbCrGrayIsLuminanceOnly(t *testing.T) {
	buf := []byte{128, 128, 128}
	ToYCbCr(buf)
	if buf[0] != 128 {
		t.Errorf("luminance of gray = %d, want 128", buf[0])
	}
	if buf[1] != 128 || buf[2] != 128 {
		t.Errorf("chroma of gray = (%d,%d), want (128,128)", buf[1], buf[2])
	}
}
