package excel

import (
	"fmt"

	"claimstat/adapters/stats/senses"
	domaindataset "claimstat/domain/dataset"
	"claimstat/internal/errors"

	"github.com/xuri/excelize/v2"
)

// Report bundles the results of one analysis run for export
type Report struct {
	RunID     string
	ChiSquare senses.TestResult
	Welch     senses.TestResult
	Table     *domaindataset.ContingencyTable
}

// WriteReport writes an xlsx workbook with a Summary sheet for both tests
// and a Contingency sheet with the Province x Claimed cross-tabulation.
func WriteReport(path string, report Report) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", "Summary"); err != nil {
		return errors.IOError("failed to rename summary sheet", err)
	}
	if err := writeSummarySheet(f, report); err != nil {
		return err
	}
	if report.Table != nil {
		if err := writeContingencySheet(f, report.Table); err != nil {
			return err
		}
	}

	if err := f.SaveAs(path); err != nil {
		return errors.IOError(fmt.Sprintf("failed to save report %s", path), err)
	}
	return nil
}

func writeSummarySheet(f *excelize.File, report Report) error {
	rows := [][]interface{}{
		{"Run ID", report.RunID},
		{},
		{"Test", "Statistic", "P-Value", "DF", "Effect Size", "Signal"},
		{report.ChiSquare.TestName, report.ChiSquare.Statistic, report.ChiSquare.PValue, report.ChiSquare.DF, report.ChiSquare.EffectSize, report.ChiSquare.Signal},
		{report.Welch.TestName, report.Welch.Statistic, report.Welch.PValue, report.Welch.DF, report.Welch.EffectSize, report.Welch.Signal},
		{},
		{report.ChiSquare.TestName, report.ChiSquare.Description},
		{report.Welch.TestName, report.Welch.Description},
	}
	return writeRows(f, "Summary", rows)
}

func writeContingencySheet(f *excelize.File, table *domaindataset.ContingencyTable) error {
	if _, err := f.NewSheet("Contingency"); err != nil {
		return errors.IOError("failed to create contingency sheet", err)
	}

	header := []interface{}{"Province"}
	for _, c := range table.ColLabels {
		header = append(header, fmt.Sprintf("Claimed=%d", c))
	}
	rows := [][]interface{}{header}
	for i, label := range table.RowLabels {
		row := []interface{}{label}
		for _, count := range table.Counts[i] {
			row = append(row, count)
		}
		rows = append(rows, row)
	}
	return writeRows(f, "Contingency", rows)
}

func writeRows(f *excelize.File, sheet string, rows [][]interface{}) error {
	for i, row := range rows {
		for j, value := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return errors.IOError("invalid cell coordinates", err)
			}
			if err := f.SetCellValue(sheet, cell, value); err != nil {
				return errors.IOError(fmt.Sprintf("failed to write cell %s!%s", sheet, cell), err)
			}
		}
	}
	return nil
}
