package app

import (
	"context"
	"path/filepath"
	"time"

	"claimstat/adapters/excel"
	"claimstat/adapters/stats/senses"
	"claimstat/domain/core"
	domaindataset "claimstat/domain/dataset"
	"claimstat/internal"
	storage "claimstat/internal/dataset"
	"claimstat/internal/synth"
)

// AnalysisService runs the full pipeline: generate synthetic claim data,
// persist it, and test it for province and gender effects.
type AnalysisService struct {
	log *internal.Logger
}

// AnalysisRequest defines the inputs for one pipeline run.
//
// Zero values select the generator defaults: NumRecords 0 runs with 1000
// records and Seed 0 runs with seed 42. Callers that need seed zero must
// construct the generator directly.
type AnalysisRequest struct {
	NumRecords   int    `json:"num_records"`
	Seed         int64  `json:"seed"`
	OutputDir    string `json:"output_dir"`
	DataFilename string `json:"data_filename"` // defaults to insurance_data.csv
	ReportPath   string `json:"report_path"`   // optional xlsx report
}

// AnalysisResult contains the complete output of a pipeline run
type AnalysisResult struct {
	RunID     core.RunID                      `json:"run_id"`
	DataPath  string                          `json:"data_path"`
	Records   int                             `json:"records"`
	ChiSquare senses.TestResult               `json:"chi_square"`
	Table     *domaindataset.ContingencyTable `json:"contingency_table"`
	Welch     senses.TestResult               `json:"welch_ttest"`
	RuntimeMs int64                           `json:"runtime_ms"`
}

// NewAnalysisService creates an analysis service
func NewAnalysisService(log *internal.Logger) *AnalysisService {
	return &AnalysisService{log: log}
}

// Run executes the pipeline steps one after another. Any step failure
// aborts the run and propagates to the caller unchanged.
func (s *AnalysisService) Run(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error) {
	start := time.Now()
	runID := core.RunID(core.NewID())

	cfg := synth.DefaultGeneratorConfig()
	if req.NumRecords != 0 {
		cfg.NumRecords = req.NumRecords
	}
	if req.Seed != 0 {
		cfg.Seed = req.Seed
	}
	if req.DataFilename == "" {
		req.DataFilename = "insurance_data.csv"
	}

	s.log.Info("run %s: generating %d records (seed %d)", runID, cfg.NumRecords, cfg.Seed)
	ds, err := synth.NewInsuranceDataGenerator(cfg).Generate()
	if err != nil {
		return nil, err
	}

	if err := storage.SaveCSV(ds, req.OutputDir, req.DataFilename); err != nil {
		return nil, err
	}
	dataPath := filepath.Join(req.OutputDir, req.DataFilename)
	s.log.Info("run %s: dataset written to %s", runID, dataPath)

	chiResult, table, err := senses.NewChiSquareSense().Analyze(ctx, ds)
	if err != nil {
		return nil, err
	}
	s.log.Info("run %s: %s", runID, chiResult.Description)

	welchResult, err := senses.NewWelchTTestSense().Analyze(ctx, ds)
	if err != nil {
		return nil, err
	}
	s.log.Info("run %s: %s", runID, welchResult.Description)

	result := &AnalysisResult{
		RunID:     runID,
		DataPath:  dataPath,
		Records:   ds.Len(),
		ChiSquare: chiResult,
		Table:     table,
		Welch:     welchResult,
		RuntimeMs: time.Since(start).Milliseconds(),
	}

	if req.ReportPath != "" {
		report := excel.Report{
			RunID:     runID.String(),
			ChiSquare: chiResult,
			Welch:     welchResult,
			Table:     table,
		}
		if err := excel.WriteReport(req.ReportPath, report); err != nil {
			return nil, err
		}
		s.log.Info("run %s: report written to %s", runID, req.ReportPath)
	}

	return result, nil
}
