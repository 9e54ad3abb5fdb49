package senses

import (
	"context"
	"fmt"
	"math"

	"claimstat/domain/core"
	"claimstat/domain/dataset"

	"github.com/montanaflynn/stats"
	"gonum.org/v1/gonum/stat/distuv"
)

// WelchTTestSense compares mean claim rates between two gender groups
// without assuming equal variances.
type WelchTTestSense struct {
	groupA string
	groupB string
}

// NewWelchTTestSense creates a t-test sense over the default Male/Female split
func NewWelchTTestSense() *WelchTTestSense {
	return &WelchTTestSense{groupA: "Male", groupB: "Female"}
}

// NewWelchTTestSenseForGroups creates a t-test sense over two named gender groups
func NewWelchTTestSenseForGroups(groupA, groupB string) *WelchTTestSense {
	return &WelchTTestSense{groupA: groupA, groupB: groupB}
}

// Name returns the sense name
func (s *WelchTTestSense) Name() string {
	return "welch_ttest"
}

// Description returns a human-readable description
func (s *WelchTTestSense) Description() string {
	return fmt.Sprintf("Tests for a difference in mean claim rate between %s and %s", s.groupA, s.groupB)
}

// Analyze partitions the Claimed column by gender and performs Welch's
// two-sample t-test, returning the t-statistic and a two-sided p-value.
func (s *WelchTTestSense) Analyze(ctx context.Context, ds *dataset.Dataset) (TestResult, error) {
	sampleA := ds.ClaimedByGender(s.groupA)
	sampleB := ds.ClaimedByGender(s.groupB)

	if len(sampleA) == 0 {
		return TestResult{}, core.NewEmptyGroupError(s.groupA)
	}
	if len(sampleB) == 0 {
		return TestResult{}, core.NewEmptyGroupError(s.groupB)
	}
	// Sample variance needs at least two observations per group.
	if len(sampleA) < 2 || len(sampleB) < 2 {
		return TestResult{}, core.ErrInsufficientData
	}

	tStat, df, effectSize, err := computeWelchTTest(sampleA, sampleB)
	if err != nil {
		return TestResult{}, err
	}

	tDist := distuv.StudentsT{Mu: 0, Sigma: 1, Nu: df}
	pValue := 2 * tDist.CDF(-math.Abs(tStat))

	return TestResult{
		TestName:    s.Name(),
		Statistic:   tStat,
		PValue:      pValue,
		DF:          df,
		EffectSize:  effectSize,
		Signal:      classifySignal(effectSize),
		Description: s.describe(tStat, pValue, effectSize, len(sampleA), len(sampleB)),
	}, nil
}

// computeWelchTTest returns the t-statistic, Welch-Satterthwaite degrees of
// freedom, and Cohen's d for two independent samples.
func computeWelchTTest(sampleA, sampleB []float64) (float64, float64, float64, error) {
	meanA, err := stats.Mean(sampleA)
	if err != nil {
		return 0, 0, 0, err
	}
	meanB, err := stats.Mean(sampleB)
	if err != nil {
		return 0, 0, 0, err
	}
	varA, err := stats.SampleVariance(sampleA)
	if err != nil {
		return 0, 0, 0, err
	}
	varB, err := stats.SampleVariance(sampleB)
	if err != nil {
		return 0, 0, 0, err
	}

	nA := float64(len(sampleA))
	nB := float64(len(sampleB))

	se := math.Sqrt(varA/nA + varB/nB)
	if se == 0 {
		return 0, 0, 0, core.ErrZeroVariance
	}
	tStat := (meanA - meanB) / se

	// Welch-Satterthwaite equation
	df := math.Pow(varA/nA+varB/nB, 2) /
		(math.Pow(varA/nA, 2)/(nA-1) + math.Pow(varB/nB, 2)/(nB-1))

	// Cohen's d with pooled standard deviation
	pooledSD := math.Sqrt(((nA-1)*varA + (nB-1)*varB) / (nA + nB - 2))
	effectSize := (meanA - meanB) / pooledSD

	return tStat, df, effectSize, nil
}

func (s *WelchTTestSense) describe(tStat, pValue, effectSize float64, nA, nB int) string {
	if pValue > 0.05 {
		return fmt.Sprintf("No significant claim-rate difference between %s and %s (t=%.3f, p=%.3f, d=%.3f, n1=%d, n2=%d)", s.groupA, s.groupB, tStat, pValue, effectSize, nA, nB)
	}
	direction := "higher"
	if tStat < 0 {
		direction = "lower"
	}
	return fmt.Sprintf("%s claim rate is significantly %s than %s (t=%.3f, p=%.3g, d=%.3f, n1=%d, n2=%d)", s.groupA, direction, s.groupB, tStat, pValue, effectSize, nA, nB)
}
