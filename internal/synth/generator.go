package synth

import (
	"math/rand"

	"claimstat/domain/core"
	"claimstat/domain/dataset"
)

// GeneratorConfig configures the insurance data generator
type GeneratorConfig struct {
	NumRecords         int                `json:"num_records"`
	Seed               int64              `json:"seed"`
	Provinces          []string           `json:"provinces"`
	Genders            []string           `json:"genders"`
	ClaimRatesProvince map[string]float64 `json:"claim_rates_province"`
	ClaimRatesGender   map[string]float64 `json:"claim_rates_gender"`
}

// DefaultGeneratorConfig returns the reference configuration: three provinces,
// two genders, and claim rates spread wide enough that the downstream tests
// land on the significant side.
func DefaultGeneratorConfig() GeneratorConfig {
	return GeneratorConfig{
		NumRecords: 1000,
		Seed:       42,
		Provinces:  []string{"Province_A", "Province_B", "Province_C"},
		Genders:    []string{"Male", "Female"},
		ClaimRatesProvince: map[string]float64{
			"Province_A": 0.1,
			"Province_B": 0.9,
			"Province_C": 0.2,
		},
		ClaimRatesGender: map[string]float64{
			"Male":   0.6,
			"Female": 0.2,
		},
	}
}

// InsuranceDataGenerator generates synthetic insurance claim records
type InsuranceDataGenerator struct {
	config GeneratorConfig
	rng    *rand.Rand
}

// NewInsuranceDataGenerator creates a generator with its own seeded RNG.
// The seed lives in the config so runs are reproducible without touching
// process-wide random state.
func NewInsuranceDataGenerator(config GeneratorConfig) *InsuranceDataGenerator {
	return &InsuranceDataGenerator{
		config: config,
		rng:    rand.New(rand.NewSource(config.Seed)),
	}
}

// Generate produces a dataset of config.NumRecords records. Province and
// Gender are sampled uniformly; Claimed is a Bernoulli draw on the
// gender-indexed rate. The province-indexed rate table is carried in the
// config but does not influence the draw, matching the reference behavior.
func (g *InsuranceDataGenerator) Generate() (*dataset.Dataset, error) {
	if g.config.NumRecords <= 0 {
		return nil, core.ErrInvalidRecordCount
	}

	records := make([]dataset.Record, 0, g.config.NumRecords)
	for i := 0; i < g.config.NumRecords; i++ {
		province := g.config.Provinces[g.rng.Intn(len(g.config.Provinces))]
		gender := g.config.Genders[g.rng.Intn(len(g.config.Genders))]

		claimed := 0
		if g.rng.Float64() < g.config.ClaimRatesGender[gender] {
			claimed = 1
		}

		records = append(records, dataset.Record{
			Province: province,
			Gender:   gender,
			Claimed:  claimed,
		})
	}

	return &dataset.Dataset{Records: records}, nil
}
