package senses

import (
	"context"
	"fmt"
	"math"

	"claimstat/domain/core"
	"claimstat/domain/dataset"

	"gonum.org/v1/gonum/stat/distuv"
)

// claimOutcomes is the full outcome domain for the Claimed column. Columns
// cover both outcomes even when one never occurs, so a missing outcome
// surfaces as a zero expected frequency instead of a silently smaller table.
var claimOutcomes = []int{0, 1}

// ChiSquareSense tests independence between Province and Claimed
type ChiSquareSense struct{}

// NewChiSquareSense creates a new Chi-Square sense
func NewChiSquareSense() *ChiSquareSense {
	return &ChiSquareSense{}
}

// Name returns the sense name
func (s *ChiSquareSense) Name() string {
	return "chi_square"
}

// Description returns a human-readable description
func (s *ChiSquareSense) Description() string {
	return "Tests whether claim rates are independent of province"
}

// BuildContingencyTable cross-tabulates Province (rows, first-seen order)
// against Claimed (columns) for a dataset. Every record must carry a 0/1
// claim outcome; anything else fails rather than shrinking the cell sum.
func BuildContingencyTable(ds *dataset.Dataset) (*dataset.ContingencyTable, error) {
	provinces := ds.Provinces()

	rowIndex := make(map[string]int, len(provinces))
	for i, p := range provinces {
		rowIndex[p] = i
	}

	counts := make([][]int, len(provinces))
	for i := range counts {
		counts[i] = make([]int, len(claimOutcomes))
	}
	for i, r := range ds.Records {
		if r.Claimed < 0 || r.Claimed >= len(claimOutcomes) {
			return nil, fmt.Errorf("%w: record %d has Claimed=%d", core.ErrInvalidClaimValue, i, r.Claimed)
		}
		counts[rowIndex[r.Province]][r.Claimed]++
	}

	return &dataset.ContingencyTable{
		RowLabels: provinces,
		ColLabels: claimOutcomes,
		Counts:    counts,
	}, nil
}

// Analyze performs the Chi-Square test of independence over Province x Claimed.
// Returns the test result together with the contingency table it was computed
// from. A table with a zero marginal total has a zero expected frequency and
// is rejected as degenerate.
func (s *ChiSquareSense) Analyze(ctx context.Context, ds *dataset.Dataset) (TestResult, *dataset.ContingencyTable, error) {
	if ds.Len() == 0 {
		return TestResult{}, nil, core.ErrInsufficientData
	}

	table, err := BuildContingencyTable(ds)
	if err != nil {
		return TestResult{}, nil, err
	}
	if err := checkDegenerate(table); err != nil {
		return TestResult{}, table, err
	}

	chiSq, df := computeChiSquare(table)
	pValue := distuv.ChiSquared{K: df}.Survival(chiSq)

	// Effect size: Cramer's V = sqrt(chi2 / (n * min(r-1, c-1)))
	minDim := math.Min(float64(len(table.RowLabels)-1), float64(len(table.ColLabels)-1))
	cramerV := math.Sqrt(chiSq / (float64(table.Total()) * minDim))

	result := TestResult{
		TestName:    s.Name(),
		Statistic:   chiSq,
		PValue:      pValue,
		DF:          df,
		EffectSize:  cramerV,
		Signal:      classifySignal(cramerV),
		Description: describeChiSquare(chiSq, pValue, cramerV, table),
	}
	return result, table, nil
}

// checkDegenerate rejects tables where the expected-frequency matrix would
// contain zeros, or where there are no degrees of freedom to test.
func checkDegenerate(table *dataset.ContingencyTable) error {
	if len(table.RowLabels) < 2 {
		return core.NewDegenerateTableError("fewer than two province categories")
	}
	for i, total := range table.RowTotals() {
		if total == 0 {
			return core.NewDegenerateTableError(fmt.Sprintf("province %s", table.RowLabels[i]))
		}
	}
	for j, total := range table.ColTotals() {
		if total == 0 {
			return core.NewDegenerateTableError(fmt.Sprintf("claim outcome %d", table.ColLabels[j]))
		}
	}
	return nil
}

// computeChiSquare calculates the statistic and degrees of freedom
func computeChiSquare(table *dataset.ContingencyTable) (float64, float64) {
	rowTotals := table.RowTotals()
	colTotals := table.ColTotals()
	total := float64(table.Total())

	chiSq := 0.0
	for i := range table.Counts {
		for j := range table.Counts[i] {
			expected := float64(rowTotals[i]*colTotals[j]) / total
			observed := float64(table.Counts[i][j])
			chiSq += math.Pow(observed-expected, 2) / expected
		}
	}

	df := float64((len(table.RowLabels) - 1) * (len(table.ColLabels) - 1))
	return chiSq, df
}

func describeChiSquare(chiSq, pValue, cramerV float64, table *dataset.ContingencyTable) string {
	rows := len(table.RowLabels)
	cols := len(table.ColLabels)
	if pValue > 0.05 {
		return fmt.Sprintf("No significant association between province and claims (χ²=%.3f, p=%.3f, V=%.3f, %dx%d table)", chiSq, pValue, cramerV, rows, cols)
	}
	return fmt.Sprintf("Significant association between province and claims (χ²=%.3f, p=%.3g, V=%.3f, %dx%d table)", chiSq, pValue, cramerV, rows, cols)
}
