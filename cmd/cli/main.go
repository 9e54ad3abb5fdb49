package main

import (
	"encoding/json"
	"fmt"
	"os"

	"claimstat/app"
	"claimstat/internal"
	"claimstat/internal/config"
	storage "claimstat/internal/dataset"
	"claimstat/internal/synth"

	"github.com/spf13/cobra"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "claimstat",
		Short: "Synthetic insurance claim data and hypothesis tests",
	}

	rootCmd.AddCommand(
		newGenerateCmd(),
		newConvertCmd(),
		newAnalyzeCmd(),
	)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newGenerateCmd() *cobra.Command {
	var records int
	var seed int64
	var outDir, filename string

	cmd := &cobra.Command{
		Use:   "generate",
		Short: "Generate a synthetic insurance dataset and save it as CSV",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Paths.OutputDir
			}
			// Flags win over NUM_RECORDS / RANDOM_SEED from the environment.
			if !cmd.Flags().Changed("records") {
				records = cfg.Generator.NumRecords
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Generator.Seed
			}

			genCfg := synth.DefaultGeneratorConfig()
			genCfg.NumRecords = records
			genCfg.Seed = seed

			ds, err := synth.NewInsuranceDataGenerator(genCfg).Generate()
			if err != nil {
				return err
			}
			if err := storage.SaveCSV(ds, outDir, filename); err != nil {
				return err
			}

			fmt.Printf("wrote %d records to %s/%s\n", ds.Len(), outDir, filename)
			return nil
		},
	}

	cmd.Flags().IntVar(&records, "records", 1000, "Number of records to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (defaults to OUTPUT_DIR)")
	cmd.Flags().StringVar(&filename, "filename", "insurance_data.csv", "Output filename")

	return cmd
}

func newConvertCmd() *cobra.Command {
	var outDir, filename string

	cmd := &cobra.Command{
		Use:   "convert [source-file]",
		Short: "Convert a pipe-delimited text file to CSV",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Paths.OutputDir
			}

			if err := storage.ConvertPipeDelimited(args[0], outDir, filename); err != nil {
				return err
			}
			fmt.Printf("converted %s to %s/%s\n", args[0], outDir, filename)
			return nil
		},
	}

	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (defaults to OUTPUT_DIR)")
	cmd.Flags().StringVar(&filename, "filename", "insurance_text_data.csv", "Output filename")

	return cmd
}

func newAnalyzeCmd() *cobra.Command {
	var records int
	var seed int64
	var outDir, xlsxPath string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Generate data, persist it, and run both hypothesis tests",
		Long: `Run the full pipeline: generate a seeded synthetic dataset, save it as
CSV, then run a chi-squared independence test (Province x Claimed) and
Welch's t-test (Claimed by Gender) over it.

Example: claimstat analyze --records 1000 --seed 42 --xlsx report.xlsx`,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if outDir == "" {
				outDir = cfg.Paths.OutputDir
			}
			if !cmd.Flags().Changed("records") {
				records = cfg.Generator.NumRecords
			}
			if !cmd.Flags().Changed("seed") {
				seed = cfg.Generator.Seed
			}

			service := app.NewAnalysisService(internal.NewDefaultLogger())
			result, err := service.Run(cmd.Context(), app.AnalysisRequest{
				NumRecords: records,
				Seed:       seed,
				OutputDir:  outDir,
				ReportPath: xlsxPath,
			})
			if err != nil {
				return err
			}

			out, err := json.MarshalIndent(result, "", "  ")
			if err != nil {
				return err
			}
			fmt.Println(string(out))
			return nil
		},
	}

	cmd.Flags().IntVar(&records, "records", 1000, "Number of records to generate")
	cmd.Flags().Int64Var(&seed, "seed", 42, "Random seed for deterministic generation")
	cmd.Flags().StringVar(&outDir, "out-dir", "", "Output directory (defaults to OUTPUT_DIR)")
	cmd.Flags().StringVar(&xlsxPath, "xlsx", "", "Optional xlsx report path")

	return cmd
}
