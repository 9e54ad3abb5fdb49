package main

import (
	"path/filepath"
	"testing"

	storage "claimstat/internal/dataset"
)

func TestGenerateFallsBackToEnvDefaults(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NUM_RECORDS", "5")
	t.Setenv("RANDOM_SEED", "7")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--out-dir", dir, "--filename", "env_default.csv"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	table, err := storage.ReadTable(filepath.Join(dir, "env_default.csv"), ',')
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(table.Rows) != 5 {
		t.Fatalf("expected NUM_RECORDS=5 to apply, got %d rows", len(table.Rows))
	}
}

func TestGenerateFlagOverridesEnv(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("NUM_RECORDS", "5")

	cmd := newGenerateCmd()
	cmd.SetArgs([]string{"--out-dir", dir, "--filename", "flag_wins.csv", "--records", "3"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("generate: %v", err)
	}

	table, err := storage.ReadTable(filepath.Join(dir, "flag_wins.csv"), ',')
	if err != nil {
		t.Fatalf("read back: %v", err)
	}
	if len(table.Rows) != 3 {
		t.Fatalf("expected --records=3 to win over env, got %d rows", len(table.Rows))
	}
}
