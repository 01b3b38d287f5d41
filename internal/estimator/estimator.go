// Package estimator computes SAP implementation effort estimates: scope and
// complexity coefficients, iterative PMO loading, and distribution across
// the SAP Activate phases.
package estimator

import (
	"errors"
	"fmt"
	"math"
)

// Formula constants.
const (
	integrationFactor = 0.02
	extraFormFactor   = 0.01
	fitGapFactor      = 0.25
	entityFactor      = 0.03
	countryFactor     = 0.05
	languageFactor    = 0.02

	pmoMonthlyRate          = 10.0
	maxPMOIterations        = 10
	pmoConvergenceThreshold = 0.01

	baselineForms = 10

	// WorkingDaysPerMonth is the default capacity conversion between
	// man-days and months.
	WorkingDaysPerMonth = 20.0
)

// ErrNonPositiveCapacity is returned when FTE x utilization yields no
// monthly capacity to schedule against.
var ErrNonPositiveCapacity = errors.New("capacity must be positive")

// ScopeItem is an L3 scope item selected for the implementation. Tier "D"
// items carry no scope-breadth weight.
type ScopeItem struct {
	Code        string  `json:"code"`
	Coefficient float64 `json:"coefficient"`
	Tier        string  `json:"tier"`
}

// Profile holds the base effort figures for a delivery profile.
type Profile struct {
	Name         string  `json:"name"`
	BaseFT       float64 `json:"base_ft"`
	Basis        float64 `json:"basis"`
	SecurityAuth float64 `json:"security_auth"`
}

// Inputs are the estimation parameters for one scenario.
type Inputs struct {
	ScopeItems    []ScopeItem `json:"scope_items"`
	Integrations  int         `json:"integrations"`
	CustomForms   int         `json:"custom_forms"`
	FitToStandard float64     `json:"fit_to_standard"` // 0..1
	LegalEntities int         `json:"legal_entities"`
	Countries     int         `json:"countries"`
	Languages     int         `json:"languages"`
	Profile       Profile     `json:"profile"`
	FTE           float64     `json:"fte"`
	Utilization   float64     `json:"utilization"`    // 0..1
	OverlapFactor float64     `json:"overlap_factor"` // phase parallelism compression
}

// PhaseBreakdown is one SAP Activate phase's share of the estimate.
type PhaseBreakdown struct {
	Name           string
	EffortMD       float64
	DurationMonths float64
}

// Coefficients are the intermediate scope/complexity/scale multipliers.
type Coefficients struct {
	ScopeBreadth      float64
	ProcessComplexity float64
	OrgScale          float64
}

// Results is the complete estimate for one scenario.
type Results struct {
	TotalMD          float64
	DurationMonths   float64
	PMOMD            float64
	Phases           []PhaseBreakdown
	CapacityPerMonth float64
	Coefficients     Coefficients
}

// activatePhases are the SAP Activate phases with their effort weights.
var activatePhases = []struct {
	name   string
	weight float64
}{
	{"Prepare", 0.10},
	{"Explore", 0.15},
	{"Realize", 0.50},
	{"Deploy", 0.15},
	{"Run", 0.10},
}

// scopeBreadth sums the coefficients of non-tier-D scope items plus an
// integration surcharge.
func scopeBreadth(items []ScopeItem, integrations int) float64 {
	sum := 0.0
	for _, item := range items {
		if item.Tier == "D" {
			continue
		}
		sum += item.Coefficient
	}
	return max(0, sum+float64(integrations)*integrationFactor)
}

// processComplexity charges for custom forms beyond the baseline and for the
// gap between the fit-to-standard ratio and full standard adoption.
func processComplexity(customForms int, fitToStandard float64) float64 {
	extraForms := max(0, customForms-baselineForms)
	fitGap := max(0, 1-fitToStandard)
	return max(0, float64(extraForms)*extraFormFactor+fitGap*fitGapFactor)
}

// orgScale charges for each legal entity, country and language beyond the
// first.
func orgScale(entities, countries, languages int) float64 {
	return max(0,
		max(0, float64(entities-1))*entityFactor+
			max(0, float64(countries-1))*countryFactor+
			max(0, float64(languages-1))*languageFactor)
}

// Calculate produces a full estimate for one scenario. PMO effort scales
// with duration, which itself depends on total effort, so the two are
// iterated to convergence.
func Calculate(in Inputs) (Results, error) {
	sb := scopeBreadth(in.ScopeItems, in.Integrations)
	pc := processComplexity(in.CustomForms, in.FitToStandard)
	os := orgScale(in.LegalEntities, in.Countries, in.Languages)

	effortFT := in.Profile.BaseFT * (1 + sb) * (1 + pc) * (1 + os)
	effortFixed := in.Profile.Basis + in.Profile.SecurityAuth

	capacity := in.FTE * WorkingDaysPerMonth * in.Utilization
	if capacity <= 0 {
		return Results{}, fmt.Errorf("%w: fte=%g utilization=%g", ErrNonPositiveCapacity, in.FTE, in.Utilization)
	}

	duration := (effortFT + effortFixed) / capacity * in.OverlapFactor
	pmo := 0.0
	for i := 0; i < maxPMOIterations; i++ {
		prev := duration
		pmo = duration * pmoMonthlyRate
		duration = (effortFT + effortFixed + pmo) / capacity * in.OverlapFactor
		if math.Abs(duration-prev) < pmoConvergenceThreshold {
			break
		}
	}

	total := effortFT + effortFixed + pmo

	return Results{
		TotalMD:          total,
		DurationMonths:   duration,
		PMOMD:            pmo,
		Phases:           distributePhases(total, duration),
		CapacityPerMonth: capacity,
		Coefficients: Coefficients{
			ScopeBreadth:      sb,
			ProcessComplexity: pc,
			OrgScale:          os,
		},
	}, nil
}

// CalculateBatch estimates multiple scenarios, skipping any with
// non-positive capacity.
func CalculateBatch(inputs []Inputs) []Results {
	results := make([]Results, 0, len(inputs))
	for _, in := range inputs {
		r, err := Calculate(in)
		if err != nil {
			continue
		}
		results = append(results, r)
	}
	return results
}

// distributePhases splits total effort and duration across the SAP Activate
// phases by their fixed weights.
func distributePhases(totalMD, totalDuration float64) []PhaseBreakdown {
	phases := make([]PhaseBreakdown, len(activatePhases))
	for i, p := range activatePhases {
		phases[i] = PhaseBreakdown{
			Name:           p.name,
			EffortMD:       totalMD * p.weight,
			DurationMonths: totalDuration * p.weight,
		}
	}
	return phases
}
