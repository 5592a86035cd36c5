package config

import (
	"math"
	"os"
	"strconv"

	dErrors "avsar/pkg/domain-errors"
)

// Config captures everything the server needs from the environment so main
// stays lean. Optional integrations (postgres, redis, kafka, gemini) stay off
// when their variables are empty.
type Config struct {
	Addr string

	Weights      Weights
	SeedDemoData bool

	DatabaseURL  string
	RedisURL     string
	KafkaBrokers string
	KafkaTopic   string

	GeminiAPIKey string
	GeminiModel  string
}

// Weights are the scoring factor weights. They must sum to 1.0; Validate is
// called at startup and the server refuses to boot otherwise.
type Weights struct {
	Skills         float64
	Qualifications float64
	Location       float64
	Sector         float64
}

// DefaultWeights mirror the published scoring formula.
func DefaultWeights() Weights {
	return Weights{
		Skills:         0.45,
		Qualifications: 0.20,
		Location:       0.20,
		Sector:         0.15,
	}
}

const weightSumTolerance = 1e-9

// Validate checks every weight is within [0,1] and the set sums to 1.0.
func (w Weights) Validate() error {
	for _, v := range []float64{w.Skills, w.Qualifications, w.Location, w.Sector} {
		if v < 0 || v > 1 {
			return dErrors.New(dErrors.CodeInvalidInput, "match weights must each be in [0,1]")
		}
	}
	sum := w.Skills + w.Qualifications + w.Location + w.Sector
	if math.Abs(sum-1.0) > weightSumTolerance {
		return dErrors.New(dErrors.CodeInvalidInput, "match weights must sum to 1.0, got "+strconv.FormatFloat(sum, 'f', -1, 64))
	}
	return nil
}

// FromEnv builds a Config from environment variables.
func FromEnv() (Config, error) {
	cfg := Config{
		Addr:         envOr("AVSAR_ADDR", ":8080"),
		Weights:      DefaultWeights(),
		SeedDemoData: os.Getenv("SEED_DEMO_DATA") == "true",
		DatabaseURL:  os.Getenv("DATABASE_URL"),
		RedisURL:     os.Getenv("REDIS_URL"),
		KafkaBrokers: os.Getenv("KAFKA_BROKERS"),
		KafkaTopic:   envOr("KAFKA_AUDIT_TOPIC", "avsar.audit"),
		GeminiAPIKey: os.Getenv("GEMINI_API_KEY"),
		GeminiModel:  os.Getenv("GEMINI_MODEL"),
	}

	var err error
	if cfg.Weights.Skills, err = envFloat("MATCH_WEIGHT_SKILLS", cfg.Weights.Skills); err != nil {
		return Config{}, err
	}
	if cfg.Weights.Qualifications, err = envFloat("MATCH_WEIGHT_QUALIFICATIONS", cfg.Weights.Qualifications); err != nil {
		return Config{}, err
	}
	if cfg.Weights.Location, err = envFloat("MATCH_WEIGHT_LOCATION", cfg.Weights.Location); err != nil {
		return Config{}, err
	}
	if cfg.Weights.Sector, err = envFloat("MATCH_WEIGHT_SECTOR", cfg.Weights.Sector); err != nil {
		return Config{}, err
	}
	if err := cfg.Weights.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envFloat(key string, fallback float64) (float64, error) {
	v := os.Getenv(key)
	if v == "" {
		return fallback, nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, dErrors.New(dErrors.CodeInvalidInput, key+" must be a float")
	}
	return f, nil
}
