package config

import (
	"encoding/json"
	"fmt"
	"os"
)

// Config holds the route planner settings. Everything here can be
// overridden per invocation by a flag; the file only supplies
// defaults.
type Config struct {
	// DatabasePath points at the SDE sqlite dump.
	DatabasePath string `json:"database_path"`
	// Preference is the default cost policy: shortest | highsec | lowsec.
	Preference string `json:"preference"`

	// Bridge skill defaults used when synthesizing jump bridges.
	JumpDriveCalibration int `json:"jump_drive_calibration"`
	JumpFuelConservation int `json:"jump_fuel_conservation"`
}

// Default returns a Config with sensible defaults.
func Default() *Config {
	return &Config{
		DatabasePath:         "sde.sqlite",
		Preference:           "shortest",
		JumpDriveCalibration: 5,
		JumpFuelConservation: 5,
	}
}

// Load reads a JSON config file. A missing file is not an error and
// yields the defaults.
func Load(path string) (*Config, error) {
	cfg := Default()
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return cfg, nil
	}
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	if err := json.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parse config: %w", err)
	}
	return cfg, nil
}
