package tiwave

import "testing"

func TestSplitBudgetDefaultRatios(t *testing.T) {
	lum, cb, cr := splitBudget(1000, 0, 0, 0)
	if lum+cb+cr != 1000 {
		t.Fatalf("lum+cb+cr = %d, want 1000", lum+cb+cr)
	}
	if lum <= cb || lum <= cr {
		t.Fatalf("luminance budget %d should dominate cb=%d cr=%d under default 90/5/5 ratios", lum, cb, cr)
	}
}

func TestSplitBudgetCustomRatios(t *testing.T) {
	lum, cb, cr := splitBudget(1000, 50, 25, 25)
	if lum+cb+cr != 1000 {
		t.Fatalf("lum+cb+cr = %d, want 1000", lum+cb+cr)
	}
	if cb != cr {
		t.Fatalf("cb=%d cr=%d, want equal under equal ratios", cb, cr)
	}
}

func TestSplitBudgetFloorsChromaAtTwo(t *testing.T) {
	_, cb, cr := splitBudget(10, 0, 0, 0)
	if cb < 2 || cr < 2 {
		t.Fatalf("cb=%d cr=%d, want both >= 2 even on a tiny budget", cb, cr)
	}
}
