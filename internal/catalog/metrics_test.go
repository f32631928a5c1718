package catalog

import (
	"math"
	"testing"
)

func TestProfit_Exact(t *testing.T) {
	cases := []struct {
		sell, cost, want int
	}{
		{16666, 23272, -6606},
		{95000, 81000, 14000},
		{0, 50000, -50000},
		{0, 0, 0},
	}
	for _, tc := range cases {
		c := Craft{SellPrice: tc.sell, MaterialCost: tc.cost}
		if got := c.Profit(); got != tc.want {
			t.Errorf("Profit(sell=%d cost=%d) = %d, want %d", tc.sell, tc.cost, got, tc.want)
		}
	}
}

func TestProfitPerHour_Exact(t *testing.T) {
	c := Craft{SellPrice: 95000, MaterialCost: 81000, CraftTime: 55}
	got, ok := c.ProfitPerHour()
	if !ok {
		t.Fatal("ProfitPerHour should be defined for positive craft time")
	}
	want := 14000.0 / 55 * 60
	if math.Abs(got-want) > 1e-9 {
		t.Errorf("ProfitPerHour = %v, want %v", got, want)
	}
}

func TestProfitPerHour_ZeroDurationGuarded(t *testing.T) {
	for _, minutes := range []int{0, -5} {
		c := Craft{SellPrice: 1000, CraftTime: minutes}
		got, ok := c.ProfitPerHour()
		if ok {
			t.Errorf("ProfitPerHour(craftTime=%d) reported defined", minutes)
		}
		if got != 0 {
			t.Errorf("ProfitPerHour(craftTime=%d) = %v, want 0 sentinel", minutes, got)
		}
	}
}

func TestNormalizeDuration(t *testing.T) {
	cases := []struct {
		in, want int
	}{
		{45, 45},
		{1000, 1000},   // boundary: still plausible minutes
		{3638, 61},     // seconds stored as minutes
		{36000, 600},   // 10 hours of seconds
		{1500, 25},     // just above the threshold
		{0, 0},
	}
	for _, tc := range cases {
		if got := NormalizeDuration(tc.in); got != tc.want {
			t.Errorf("NormalizeDuration(%d) = %d, want %d", tc.in, got, tc.want)
		}
	}
}

func TestNormalizeDuration_Idempotent(t *testing.T) {
	for _, in := range []int{1, 45, 999, 1000, 1500, 3638, 36000, 60000} {
		once := NormalizeDuration(in)
		twice := NormalizeDuration(once)
		if once != twice {
			t.Errorf("NormalizeDuration not idempotent for %d: once=%d twice=%d", in, once, twice)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		in   int
		want string
	}{
		{45, "45min"},
		{60, "1h"},
		{90, "1h 30min"},
		{0, "0min"},
		{601, "10h 1min"},
	}
	for _, tc := range cases {
		if got := FormatDuration(tc.in); got != tc.want {
			t.Errorf("FormatDuration(%d) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
