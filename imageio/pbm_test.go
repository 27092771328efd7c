package imageio

import (
	"bytes"
	"testing"
)

func TestReadHeaderPGM(t *testing.T) {
	pixels := make([]byte, 4*3)
	data := append([]byte("P5\n4 3\n255\n"), pixels...)

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Type != PGM || h.Width != 4 || h.Height != 3 || h.MaxVal != 255 {
		t.Fatalf("header = %+v, want PGM 4x3 maxval 255", h)
	}
}

func TestReadHeaderPPM(t *testing.T) {
	pixels := make([]byte, 2*2*3)
	data := append([]byte("P6\n2 2\n255\n"), pixels...)

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Type != PPM || h.Components() != 3 {
		t.Fatalf("header = %+v, want PPM with 3 components", h)
	}
}

func TestReadHeaderSkipsComments(t *testing.T) {
	pixels := make([]byte, 2*2)
	data := append([]byte("P5\n# a comment\n2 2\n#another\n255\n"), pixels...)

	h, err := ReadHeader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("ReadHeader: %v", err)
	}
	if h.Width != 2 || h.Height != 2 {
		t.Fatalf("header = %+v, want 2x2", h)
	}
}

func TestReadHeaderRejectsBadMagic(t *testing.T) {
	_, err := ReadHeader(bytes.NewReader([]byte("Q5\n1 1\n255\n\x00")))
	if err != ErrBadMagic {
		t.Fatalf("err = %v, want ErrBadMagic", err)
	}
}

func TestReadHeaderRejectsSizeMismatch(t *testing.T) {
	data := []byte("P5\n4 3\n255\n")
	data = append(data, make([]byte, 5)...)

	_, err := ReadHeader(bytes.NewReader(data))
	if err != ErrSizeMismatch {
		t.Fatalf("err = %v, want ErrSizeMismatch", err)
	}
}

func TestWriteHeaderRoundTrip(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteHeader(&buf, PPM, 5, 7); err != nil {
		t.Fatalf("WriteHeader: %v", err)
	}

	full := append(buf.Bytes(), make([]byte, 5*7*3)...)
	h, err := ReadHeader(bytes.NewReader(full))
	if err != nil {
		t.Fatalf("ReadHeader of written header: %v", err)
	}
	if h.Width != 5 || h.Height != 7 || h.Type != PPM {
		t.Fatalf("header = %+v, want PPM 5x7", h)
	}
}
