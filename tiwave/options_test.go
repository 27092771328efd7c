package tiwave

import "testing"

func TestOptionsValidate(t *testing.T) {
	tests := []struct {
		name    string
		opts    Options
		wantErr bool
	}{
		{"valid zero ratios", Options{DesiredSize: 1000}, false},
		{"valid explicit ratios", Options{DesiredSize: 1000, LumRatio: 80, CbRatio: 10, CrRatio: 10}, false},
		{"valid explicit scales", Options{DesiredSize: 1000, Scales: 4}, false},
		{"zero desired size", Options{DesiredSize: 0}, true},
		{"negative desired size", Options{DesiredSize: -1}, true},
		{"negative scales", Options{DesiredSize: 1000, Scales: -1}, true},
		{"ratios sum to 99", Options{DesiredSize: 1000, LumRatio: 80, CbRatio: 10, CrRatio: 9}, true},
		{"one ratio zero, others set", Options{DesiredSize: 1000, LumRatio: 90, CbRatio: 10, CrRatio: 0}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.opts.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}
