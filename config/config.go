package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type Config struct {
	Store   StoreConfig   `yaml:"store"`
	Pricing PricingConfig `yaml:"pricing"`
	Loyalty LoyaltyConfig `yaml:"loyalty"`
}

type StoreConfig struct {
	BookingsPath  string `yaml:"bookings_path"`
	TravelersPath string `yaml:"travelers_path"`
	Schema        string `yaml:"schema"`
}

type PricingConfig struct {
	Seasons map[string]float64 `yaml:"seasons"`
}

type LoyaltyConfig struct {
	MinPoints       int     `yaml:"min_points"`
	DiscountPercent float64 `yaml:"discount_percent"`
}

func Default() *Config {
	return &Config{
		Store: StoreConfig{
			BookingsPath:  "bookings.txt",
			TravelersPath: "travelers.txt",
			Schema:        "priced",
		},
		Loyalty: LoyaltyConfig{
			MinPoints:       100,
			DiscountPercent: 10,
		},
	}
}

// LoadConfig reads the yaml config at path. A missing file is the first-run
// case and yields the defaults.
func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Default(), nil
		}
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	return cfg, nil
}
