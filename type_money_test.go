package proforma

import "testing"

func TestMoney_Format(t *testing.T) {
	testCases := []struct {
		money     Money
		wantWhole string
		wantFull  string
	}{
		{M(400000, "USD"), "$400,000", "$400,000.00"},
		{M(250000.4, "USD"), "$250,000", "$250,000.40"},
		{M(-400000, "USD"), "-$400,000", "-$400,000.00"},
		{M(0, "USD"), "$0", "$0.00"},
	}
	for _, tc := range testCases {
		if got := tc.money.Whole(); got != tc.wantWhole {
			t.Errorf("Whole(%s) = %q, want %q", tc.wantFull, got, tc.wantWhole)
		}
		if got := tc.money.String(); got != tc.wantFull {
			t.Errorf("String() = %q, want %q", got, tc.wantFull)
		}
	}
}

func TestMoney_Sub(t *testing.T) {
	got := M(650000, "USD").Sub(M(400000, ""))
	if s := got.String(); s != "$250,000.00" {
		t.Errorf("Sub() = %s, want $250,000.00", s)
	}
}
