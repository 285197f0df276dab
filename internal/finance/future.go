package finance

import "math"

// monthlyRate converts an annual percentage rate to a monthly fraction.
func monthlyRate(annualRatePct float64) float64 {
	return annualRatePct / 100 / 12
}

// FutureValue projects principal forward by years under monthly compounding,
// adding monthlyContribution at the end of every month.
// Negative years are treated as zero.
func FutureValue(principal, annualRatePct, years, monthlyContribution float64) float64 {
	if years < 0 {
		years = 0
	}
	if annualRatePct == 0 {
		return saturate(principal + monthlyContribution*years*12)
	}

	r := monthlyRate(annualRatePct)
	growth := math.Pow(1+r, years*12)

	// growth may overflow to +Inf; a zero term must stay zero, not 0*Inf.
	var fv float64
	if principal != 0 {
		fv += principal * growth
	}
	if monthlyContribution != 0 {
		fv += monthlyContribution * ((growth - 1) / r)
	}
	return saturate(fv)
}

// Add sums amounts, pinning an overflow to the largest finite float.
func Add(amounts ...float64) float64 {
	var total float64
	for _, v := range amounts {
		total = saturate(total + v)
	}
	return total
}

// saturate keeps results finite so they survive JSON encoding.
func saturate(v float64) float64 {
	switch {
	case math.IsInf(v, 1):
		return math.MaxFloat64
	case math.IsInf(v, -1):
		return -math.MaxFloat64
	}
	return v
}

// MaxSeriesYears bounds the length of a ProjectSeries result.
const MaxSeriesYears = 100

// ProjectSeries returns the projected balance at the end of each year from
// now (index 0) through years, capped at MaxSeriesYears.
func ProjectSeries(principal, annualRatePct, monthlyContribution float64, years int) []float64 {
	years = min(max(years, 0), MaxSeriesYears)
	series := make([]float64, years+1)
	for y := 0; y <= years; y++ {
		series[y] = FutureValue(principal, annualRatePct, float64(y), monthlyContribution)
	}
	return series
}
