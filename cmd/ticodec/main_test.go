package main

import "testing"

func TestValidateArgs(t *testing.T) {
	base := cliArgs{encode: true, input: "in.ppm", output: "out.ti", size: 1000}

	tests := []struct {
		name string
		a    cliArgs
		want bool
	}{
		{"valid encode", base, true},
		{"neither encode nor decode", cliArgs{input: "i", output: "o"}, false},
		{"both encode and decode", cliArgs{encode: true, decode: true, input: "i", output: "o"}, false},
		{"missing input", cliArgs{encode: true, output: "o", size: 1000}, false},
		{"missing output", cliArgs{encode: true, input: "i", size: 1000}, false},
		{"both butterworth and daub", func() cliArgs { a := base; a.butterworth, a.daub = true, true; return a }(), false},
		{"encode size too small", func() cliArgs { a := base; a.size = 10; return a }(), false},
		{"encode partial ratios", func() cliArgs {
			a := base
			a.lumSet, a.lum = true, 90
			return a
		}(), false},
		{"encode full ratios valid", func() cliArgs {
			a := base
			a.lumSet, a.lum = true, 80
			a.cbSet, a.cb = true, 10
			a.crSet, a.cr = true, 10
			return a
		}(), true},
		{"encode full ratios not summing to 100", func() cliArgs {
			a := base
			a.lumSet, a.lum = true, 80
			a.cbSet, a.cb = true, 10
			a.crSet, a.cr = true, 5
			return a
		}(), false},
		{"encode ratio not positive", func() cliArgs {
			a := base
			a.lumSet, a.lum = true, 100
			a.cbSet, a.cb = true, 0
			a.crSet, a.cr = true, 0
			return a
		}(), false},
		{"valid decode", cliArgs{decode: true, input: "i", output: "o"}, true},
		{"decode with size set", cliArgs{decode: true, input: "i", output: "o", size: 100}, false},
		{"decode with levels set", cliArgs{decode: true, input: "i", output: "o", levels: 5}, false},
		{"decode with wavelet flag set", cliArgs{decode: true, input: "i", output: "o", butterworth: true}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := validateArgs(tt.a); got != tt.want {
				t.Errorf("validateArgs(%+v) = %v, want %v", tt.a, got, tt.want)
			}
		})
	}
}
