package scoring

import "testing"

func TestComputePoints(t *testing.T) {
	cases := []struct {
		name       string
		base       int
		combo      int
		multiplier float64
		doubled    bool
		want       int
	}{
		{"no combo", 200, 0, 1.2, false, 200},
		{"combo two", 200, 2, 1.2, false, 680},
		{"combo two doubled", 200, 2, 1.2, true, 1360},
		{"half multiplier", 100, 1, 0.5, false, 150},
		{"fractional result floors", 125, 1, 1.5, false, 312},
		{"floored then doubled", 125, 1, 1.5, true, 624},
		{"negative combo clamps", 200, -3, 1.2, false, 200},
		{"zero base", 0, 5, 1.2, true, 0},
		{"easy profile combo five", 100, 5, 1.0, false, 600},
		{"hard profile combo three", 350, 3, 1.5, false, 1925},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := ComputePoints(tc.base, tc.combo, tc.multiplier, tc.doubled)
			if got != tc.want {
				t.Errorf("ComputePoints(%d, %d, %v, %v) = %d, want %d",
					tc.base, tc.combo, tc.multiplier, tc.doubled, got, tc.want)
			}
		})
	}
}
