package tiwave

import "github.com/asimakov/tiwave/codec"

// RegisterCodec registers the wavelet/SPIHT codec with the global
// registry, under both its name and UID.
func RegisterCodec() {
	codec.Register(NewCodec())
}

func init() {
	RegisterCodec()
}
