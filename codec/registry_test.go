package codec_test

import (
	"testing"

	"github.com/asimakov/tiwave/codec"
)

type fakeCodec struct {
	name, uid string
}

func (f *fakeCodec) Encode(codec.EncodeParams) ([]byte, error) { return nil, nil }
func (f *fakeCodec) Decode([]byte) (*codec.DecodeResult, error) { return nil, nil }
func (f *fakeCodec) UID() string                                { return f.uid }
func (f *fakeCodec) Name() string                               { return f.name }

func TestCodecRegistry(t *testing.T) {
	codec.Register(&fakeCodec{name: "fake-a", uid: "1.2.3.4"})
	codec.Register(&fakeCodec{name: "fake-b", uid: "1.2.3.5"})

	tests := []struct {
		name      string
		key       string
		wantFound bool
		wantUID   string
		wantName  string
	}{
		{"get by UID", "1.2.3.4", true, "1.2.3.4", "fake-a"},
		{"get by name", "fake-a", true, "1.2.3.4", "fake-a"},
		{"get other by UID", "1.2.3.5", true, "1.2.3.5", "fake-b"},
		{"get non-existent", "non-existent", false, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := codec.Get(tt.key)

			if tt.wantFound {
				if err != nil {
					t.Fatalf("Get(%q) unexpected error: %v", tt.key, err)
				}
				if c.UID() != tt.wantUID {
					t.Errorf("Get(%q).UID() = %q, want %q", tt.key, c.UID(), tt.wantUID)
				}
				if c.Name() != tt.wantName {
					t.Errorf("Get(%q).Name() = %q, want %q", tt.key, c.Name(), tt.wantName)
				}
				return
			}

			if err != codec.ErrCodecNotFound {
				t.Errorf("Get(%q) error = %v, want %v", tt.key, err, codec.ErrCodecNotFound)
			}
		})
	}
}

func TestListCodecsDeduplicates(t *testing.T) {
	c := &fakeCodec{name: "fake-c", uid: "1.2.3.6"}
	codec.Register(c)

	found := 0
	for _, listed := range codec.List() {
		if listed.UID() == c.UID() {
			found++
		}
	}
	if found != 1 {
		t.Errorf("List() contained fake-c %d times, want exactly 1 (registered under both name and UID keys)", found)
	}
}

func TestBaseOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    codec.BaseOptions
		wantErr error
	}{
		{"zero value", codec.BaseOptions{}, nil},
		{"quality in range", codec.BaseOptions{Quality: 80}, nil},
		{"quality too high", codec.BaseOptions{Quality: 101}, codec.ErrInvalidQuality},
		{"quality negative", codec.BaseOptions{Quality: -1}, codec.ErrInvalidQuality},
		{"near lossless negative", codec.BaseOptions{NearLossless: -1}, codec.ErrInvalidParameter},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := tt.opts.Validate(); err != tt.wantErr {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}
