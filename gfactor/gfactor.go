//Package gfactor derives the g-factor of a branched or cyclic polymer from
//its measured average radius of gyration and the expected g-factor constant
//of its topology, following the ratio formula of the published method:
//
//	g = Rg²(branched) / Rg²(linear)
//
//where the linear-chain reference Rg is back-derived from the expected
//constant as Rg(branched)/sqrt(g_expected). Note that this makes the
//computed g algebraically equal to the expected one; see Compute.
package gfactor

import (
	"math"

	"github.com/rmera/gyration"
)

//DefaultExpectedG is the expected g-factor for the tetracyclic alpha
//polymer topology (Cantarella et al., 2022). A linear chain has g = 1 by
//definition; compact topologies fall below it.
const DefaultExpectedG = 0.445

//Classification bands for the absolute difference between computed and
//expected g-factor. Each band is half-open on its upper bound: a difference
//of exactly ExcellentThreshold is already "good", and one of exactly
//GoodThreshold already "needs_review".
const (
	ExcellentThreshold = 0.05
	GoodThreshold      = 0.10
)

//Assessment labels how well the computed g-factor agrees with the expected
//one.
type Assessment string

const (
	Excellent   Assessment = "excellent"
	Good        Assessment = "good"
	NeedsReview Assessment = "needs_review"
)

//Result holds the outcome of a g-factor derivation. It is computed once
//from a measured average Rg and never mutated.
type Result struct {
	MeasuredRg float64    //average Rg of the branched/cyclic topology
	ExpectedG  float64    //the expected constant used for the derivation
	LinearRg   float64    //theoretical Rg of the linear-chain reference
	G          float64    //computed g-factor
	Diff       float64    //|G - ExpectedG|
	Assessment Assessment //classification of Diff
}

//Compute derives the linear-chain reference Rg and the g-factor from the
//measured average Rg and the expected g-factor of the topology. Both
//arguments must be positive and finite, otherwise a ConfigurationError is
//returned.
//
//Because the linear reference is derived from the expected constant rather
//than measured independently, G always equals ExpectedG up to floating
//point error. That circularity belongs to the published method and is kept
//as-is here (and pinned down by a test); obtaining an independent g-factor
//requires estimating the linear-chain Rg from a separate reference
//simulation instead.
func Compute(avgRg, expectedG float64) (*Result, error) {
	if math.IsNaN(expectedG) || math.IsInf(expectedG, 0) || expectedG <= 0 {
		return nil, gyration.NewConfiguration(gyration.BadConstant+": expected g-factor must be positive", "gfactor.Compute")
	}
	if math.IsNaN(avgRg) || math.IsInf(avgRg, 0) || avgRg <= 0 {
		return nil, gyration.NewConfiguration(gyration.BadConstant+": average Rg must be positive", "gfactor.Compute")
	}
	linear := avgRg / math.Sqrt(expectedG)
	g := (avgRg * avgRg) / (linear * linear)
	diff := math.Abs(g - expectedG)
	return &Result{
		MeasuredRg: avgRg,
		ExpectedG:  expectedG,
		LinearRg:   linear,
		G:          g,
		Diff:       diff,
		Assessment: Assess(diff),
	}, nil
}

//Assess classifies an absolute difference between computed and expected
//g-factor into one of the three agreement bands.
func Assess(diff float64) Assessment {
	switch {
	case diff < ExcellentThreshold:
		return Excellent
	case diff < GoodThreshold:
		return Good
	}
	return NeedsReview
}
