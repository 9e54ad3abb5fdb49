package dataset

// Record is one observation: where the policyholder lives, their gender,
// and whether a claim was filed (0/1).
type Record struct {
	Province string `json:"province"`
	Gender   string `json:"gender"`
	Claimed  int    `json:"claimed"`
}

// Dataset is an ordered collection of records. It is built once by the
// generator or a file reader and never mutated afterwards.
type Dataset struct {
	Records []Record `json:"records"`
}

// Len returns the number of records
func (d *Dataset) Len() int {
	return len(d.Records)
}

// Provinces returns the distinct province labels in first-seen order
func (d *Dataset) Provinces() []string {
	seen := make(map[string]bool)
	var provinces []string
	for _, r := range d.Records {
		if !seen[r.Province] {
			seen[r.Province] = true
			provinces = append(provinces, r.Province)
		}
	}
	return provinces
}

// ClaimedByGender returns the Claimed column filtered to one gender,
// as float64 samples ready for numeric tests.
func (d *Dataset) ClaimedByGender(gender string) []float64 {
	var sample []float64
	for _, r := range d.Records {
		if r.Gender == gender {
			sample = append(sample, float64(r.Claimed))
		}
	}
	return sample
}

// RecordCountByProvince returns per-province record counts
func (d *Dataset) RecordCountByProvince() map[string]int {
	counts := make(map[string]int)
	for _, r := range d.Records {
		counts[r.Province]++
	}
	return counts
}

// ContingencyTable is the Province x Claimed cross-tabulation consumed by
// the chi-squared test. Counts[i][j] is the number of records with
// RowLabels[i] and ColLabels[j].
type ContingencyTable struct {
	RowLabels []string `json:"row_labels"`
	ColLabels []int    `json:"col_labels"`
	Counts    [][]int  `json:"counts"`
}

// Total returns the grand total of all cells
func (t *ContingencyTable) Total() int {
	total := 0
	for i := range t.Counts {
		for j := range t.Counts[i] {
			total += t.Counts[i][j]
		}
	}
	return total
}

// RowTotals returns per-row marginal totals
func (t *ContingencyTable) RowTotals() []int {
	totals := make([]int, len(t.Counts))
	for i := range t.Counts {
		for j := range t.Counts[i] {
			totals[i] += t.Counts[i][j]
		}
	}
	return totals
}

// ColTotals returns per-column marginal totals
func (t *ContingencyTable) ColTotals() []int {
	if len(t.Counts) == 0 {
		return nil
	}
	totals := make([]int, len(t.Counts[0]))
	for i := range t.Counts {
		for j := range t.Counts[i] {
			totals[j] += t.Counts[i][j]
		}
	}
	return totals
}

// Table is a generic delimited table: first row of the source file is the
// header, remaining rows are data. Used by the file converter, which does
// not interpret the columns.
type Table struct {
	Header []string   `json:"header"`
	Rows   [][]string `json:"rows"`
}
