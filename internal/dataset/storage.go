package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"

	domaindataset "claimstat/domain/dataset"
	"claimstat/internal/errors"
)

// PipeDelimiter is the record separator used by upstream insurance extracts.
const PipeDelimiter = '|'

// SaveCSV writes a dataset as comma-delimited text with a header row,
// creating dir if needed and overwriting any existing file.
func SaveCSV(ds *domaindataset.Dataset, dir, filename string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.IOError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.IOError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write([]string{"Province", "Gender", "Claimed"}); err != nil {
		return errors.IOError("failed to write header", err)
	}
	for _, r := range ds.Records {
		row := []string{r.Province, r.Gender, fmt.Sprintf("%d", r.Claimed)}
		if err := w.Write(row); err != nil {
			return errors.IOError("failed to write record", err)
		}
	}

	w.Flush()
	if err := w.Error(); err != nil {
		return errors.IOError(fmt.Sprintf("failed to flush %s", path), err)
	}
	return nil
}

// ReadTable parses a delimited file into a Table. The first line is the
// header; every data row must have the same column count as the header.
func ReadTable(path string, delimiter rune) (*domaindataset.Table, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("source file not readable: %s", path), err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = delimiter
	rows, err := r.ReadAll()
	if err != nil {
		return nil, errors.ParseError(fmt.Sprintf("malformed delimited file: %s", path), err)
	}
	if len(rows) == 0 {
		return nil, errors.ParseError(fmt.Sprintf("empty delimited file: %s", path), nil)
	}

	return &domaindataset.Table{
		Header: rows[0],
		Rows:   rows[1:],
	}, nil
}

// WriteTable serializes a table as comma-delimited text with its header,
// preserving row order. The target directory is created if absent.
func WriteTable(table *domaindataset.Table, dir, filename string) error {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return errors.IOError(fmt.Sprintf("failed to create output directory %s", dir), err)
	}

	path := filepath.Join(dir, filename)
	f, err := os.Create(path)
	if err != nil {
		return errors.IOError(fmt.Sprintf("failed to create %s", path), err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(table.Header); err != nil {
		return errors.IOError("failed to write header", err)
	}
	if err := w.WriteAll(table.Rows); err != nil {
		return errors.IOError("failed to write rows", err)
	}
	if err := w.Error(); err != nil {
		return errors.IOError(fmt.Sprintf("failed to flush %s", path), err)
	}
	return nil
}

// ConvertPipeDelimited reads a pipe-delimited source file and rewrites it
// as CSV under dir, keeping header and row order intact.
func ConvertPipeDelimited(srcPath, dir, filename string) error {
	table, err := ReadTable(srcPath, PipeDelimiter)
	if err != nil {
		return err
	}
	return WriteTable(table, dir, filename)
}
