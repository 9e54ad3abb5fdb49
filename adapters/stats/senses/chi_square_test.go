package senses

import (
	"context"
	"errors"
	"testing"

	"claimstat/domain/core"
	"claimstat/domain/dataset"
)

// buildDataset expands (province, gender, claimed, count) tuples into records
func buildDataset(cells ...[4]interface{}) *dataset.Dataset {
	ds := &dataset.Dataset{}
	for _, c := range cells {
		for i := 0; i < c[3].(int); i++ {
			ds.Records = append(ds.Records, dataset.Record{
				Province: c[0].(string),
				Gender:   c[1].(string),
				Claimed:  c[2].(int),
			})
		}
	}
	return ds
}

func TestContingencyTableInvariants(t *testing.T) {
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 30},
		[4]interface{}{"Province_A", "Female", 0, 20},
		[4]interface{}{"Province_B", "Male", 0, 40},
		[4]interface{}{"Province_B", "Female", 1, 10},
	)

	table, err := BuildContingencyTable(ds)
	if err != nil {
		t.Fatalf("build table: %v", err)
	}

	if table.Total() != ds.Len() {
		t.Fatalf("cell sum %d != dataset size %d", table.Total(), ds.Len())
	}

	perProvince := ds.RecordCountByProvince()
	for i, label := range table.RowLabels {
		if table.RowTotals()[i] != perProvince[label] {
			t.Fatalf("row total for %s: got %d, want %d", label, table.RowTotals()[i], perProvince[label])
		}
	}
	for i := range table.Counts {
		for j := range table.Counts[i] {
			if table.Counts[i][j] < 0 {
				t.Fatalf("negative cell at (%d,%d)", i, j)
			}
		}
	}
}

func TestChiSquareStatisticAndPValueRange(t *testing.T) {
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 25},
		[4]interface{}{"Province_A", "Female", 0, 35},
		[4]interface{}{"Province_B", "Male", 1, 40},
		[4]interface{}{"Province_B", "Female", 0, 20},
		[4]interface{}{"Province_C", "Male", 1, 15},
		[4]interface{}{"Province_C", "Female", 0, 45},
	)

	result, table, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if result.Statistic < 0 {
		t.Fatalf("statistic must be non-negative, got %f", result.Statistic)
	}
	if result.PValue < 0 || result.PValue > 1 {
		t.Fatalf("p-value out of [0,1]: %f", result.PValue)
	}
	if want := float64((3 - 1) * (2 - 1)); result.DF != want {
		t.Fatalf("expected dof %.0f, got %.0f", want, result.DF)
	}
	if table.Total() != ds.Len() {
		t.Fatalf("table total %d != dataset size %d", table.Total(), ds.Len())
	}
}

func TestChiSquareDetectsStrongAssociation(t *testing.T) {
	// Province_A claims everything, Province_B claims nothing.
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 100},
		[4]interface{}{"Province_B", "Female", 0, 100},
	)

	result, _, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if result.PValue > 0.001 {
		t.Fatalf("expected tiny p-value for perfect association, got %g", result.PValue)
	}
	if result.Statistic < 100 {
		t.Fatalf("expected large statistic, got %f", result.Statistic)
	}
}

func TestChiSquareProportionalTableNotSignificant(t *testing.T) {
	// Identical 50/50 claim splits in both provinces: statistic is exactly zero.
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 50},
		[4]interface{}{"Province_A", "Female", 0, 50},
		[4]interface{}{"Province_B", "Male", 1, 50},
		[4]interface{}{"Province_B", "Female", 0, 50},
	)

	result, _, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if err != nil {
		t.Fatalf("analyze: %v", err)
	}

	if result.Statistic > 1e-9 {
		t.Fatalf("expected zero statistic, got %g", result.Statistic)
	}
	if result.PValue < 0.9 {
		t.Fatalf("expected p-value near 1, got %f", result.PValue)
	}
}

func TestChiSquareAllZeroClaimsIsDegenerate(t *testing.T) {
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 0, 50},
		[4]interface{}{"Province_B", "Female", 0, 50},
	)

	_, _, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if !errors.Is(err, core.ErrDegenerateTable) {
		t.Fatalf("expected ErrDegenerateTable, got %v", err)
	}
	if !core.IsValueError(err) {
		t.Fatalf("degenerate table should classify as value error")
	}
}

func TestChiSquareSingleProvinceIsDegenerate(t *testing.T) {
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 30},
		[4]interface{}{"Province_A", "Female", 0, 30},
	)

	_, _, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if !errors.Is(err, core.ErrDegenerateTable) {
		t.Fatalf("expected ErrDegenerateTable, got %v", err)
	}
}

func TestChiSquareRejectsOutOfDomainClaimValue(t *testing.T) {
	ds := buildDataset(
		[4]interface{}{"Province_A", "Male", 1, 30},
		[4]interface{}{"Province_B", "Female", 0, 30},
		[4]interface{}{"Province_B", "Female", 2, 1},
	)

	if _, err := BuildContingencyTable(ds); !errors.Is(err, core.ErrInvalidClaimValue) {
		t.Fatalf("expected ErrInvalidClaimValue, got %v", err)
	}

	_, _, err := NewChiSquareSense().Analyze(context.Background(), ds)
	if !errors.Is(err, core.ErrInvalidClaimValue) {
		t.Fatalf("expected ErrInvalidClaimValue from Analyze, got %v", err)
	}
	if !core.IsValueError(err) {
		t.Fatalf("invalid claim value should classify as value error")
	}
}

func TestChiSquareEmptyDataset(t *testing.T) {
	_, _, err := NewChiSquareSense().Analyze(context.Background(), &dataset.Dataset{})
	if !errors.Is(err, core.ErrInsufficientData) {
		t.Fatalf("expected ErrInsufficientData, got %v", err)
	}
}
