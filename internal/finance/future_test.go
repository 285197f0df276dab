package finance

import (
	"math"
	"testing"
)

func TestFutureValue_ZeroRateIsLinear(t *testing.T) {
	cases := []struct {
		principal, years, contribution float64
	}{
		{0, 0, 0},
		{1000, 5, 100},
		{2500.5, 0.5, 33.3},
		{10, 30, 0},
	}
	for _, tc := range cases {
		got := FutureValue(tc.principal, 0, tc.years, tc.contribution)
		want := tc.principal + tc.contribution*tc.years*12
		if got != want {
			t.Fatalf("FutureValue(%v, 0, %v, %v) = %v, want %v",
				tc.principal, tc.years, tc.contribution, got, want)
		}
	}
}

func TestFutureValue_ZeroYearsReturnsPrincipal(t *testing.T) {
	for _, rate := range []float64{0, 0.5, 5, 12, 99} {
		for _, contribution := range []float64{0, 50, 1000} {
			if got := FutureValue(4321, rate, 0, contribution); got != 4321 {
				t.Fatalf("FutureValue(4321, %v, 0, %v) = %v, want 4321", rate, contribution, got)
			}
		}
	}
}

func TestFutureValue_NegativeYearsClamped(t *testing.T) {
	if got := FutureValue(500, 7, -3, 20); got != 500 {
		t.Fatalf("FutureValue with negative years = %v, want 500", got)
	}
}

func TestFutureValue_ScenarioA(t *testing.T) {
	got := FutureValue(10000, 5, 10, 0)
	if math.Abs(got-16470.09) > 0.01 {
		t.Fatalf("FutureValue(10000, 5, 10, 0) = %.4f, want ~16470.09", got)
	}
}

func TestFutureValue_AnnuityOfContributions(t *testing.T) {
	// 12 monthly deposits of 100 at 12%/yr (1%/month), ordinary annuity.
	got := FutureValue(0, 12, 1, 100)
	want := 100 * (math.Pow(1.01, 12) - 1) / 0.01
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("FutureValue(0, 12, 1, 100) = %.6f, want %.6f", got, want)
	}
}

func TestFutureValue_Monotonic(t *testing.T) {
	base := []float64{5000, 4, 10, 200}
	steps := []float64{0, 0.25, 1, 3.5, 10, 100}

	for arg := 0; arg < 4; arg++ {
		prev := math.Inf(-1)
		for _, step := range steps {
			in := append([]float64(nil), base...)
			in[arg] += step
			got := FutureValue(in[0], in[1], in[2], in[3])
			if got < prev {
				t.Fatalf("argument %d: FutureValue decreased from %v to %v at +%v", arg, prev, got, step)
			}
			prev = got
		}
	}
}

func TestFutureValue_OverflowStaysFinite(t *testing.T) {
	cases := []struct {
		name                                 string
		principal, rate, years, contribution float64
		want                                 float64
	}{
		{"zero principal and contribution", 0, 1e6, 10, 0, 0},
		{"principal only", 1, 1e6, 10, 0, math.MaxFloat64},
		{"contribution only", 0, 1e6, 10, 50, math.MaxFloat64},
		{"both", 100, 1e6, 10, 50, math.MaxFloat64},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := FutureValue(tc.principal, tc.rate, tc.years, tc.contribution)
			if got != tc.want {
				t.Fatalf("FutureValue(%v, %v, %v, %v) = %v, want %v",
					tc.principal, tc.rate, tc.years, tc.contribution, got, tc.want)
			}
		})
	}
}

func TestFutureValue_MonotonicThroughOverflow(t *testing.T) {
	prev := 0.0
	for _, rate := range []float64{5, 100, 1e3, 1e4, 1e5, 1e6, 1e9} {
		got := FutureValue(1, rate, 10, 0)
		if math.IsNaN(got) || math.IsInf(got, 0) || got < prev {
			t.Fatalf("FutureValue(1, %v, 10, 0) = %v after %v", rate, got, prev)
		}
		prev = got
	}
}

func TestAdd_Saturates(t *testing.T) {
	if got := Add(1, 2, 3.5); got != 6.5 {
		t.Fatalf("Add(1, 2, 3.5) = %v, want 6.5", got)
	}
	if got := Add(math.MaxFloat64, math.MaxFloat64); got != math.MaxFloat64 {
		t.Fatalf("Add(max, max) = %v, want max", got)
	}
	if got := Add(math.MaxFloat64, -math.MaxFloat64/2); got != math.MaxFloat64/2 {
		t.Fatalf("Add(max, -max/2) = %v, want max/2", got)
	}
}

func TestProjectSeries(t *testing.T) {
	series := ProjectSeries(1000, 6, 50, 3)
	if len(series) != 4 {
		t.Fatalf("len(series) = %d, want 4", len(series))
	}
	if series[0] != 1000 {
		t.Fatalf("series[0] = %v, want 1000", series[0])
	}
	for y := 1; y < len(series); y++ {
		if series[y] <= series[y-1] {
			t.Fatalf("series not increasing at year %d: %v", y, series)
		}
		if want := FutureValue(1000, 6, float64(y), 50); series[y] != want {
			t.Fatalf("series[%d] = %v, want %v", y, series[y], want)
		}
	}

	if got := ProjectSeries(1000, 6, 50, -2); len(got) != 1 {
		t.Fatalf("negative years: len = %d, want 1", len(got))
	}
}

func TestProjectSeries_CappedHorizon(t *testing.T) {
	series := ProjectSeries(1000, 6, 50, 10_000_000_000)
	if len(series) != MaxSeriesYears+1 {
		t.Fatalf("len(series) = %d, want %d", len(series), MaxSeriesYears+1)
	}
	if want := FutureValue(1000, 6, MaxSeriesYears, 50); series[MaxSeriesYears] != want {
		t.Fatalf("last point = %v, want %v", series[MaxSeriesYears], want)
	}
}
