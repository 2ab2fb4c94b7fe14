package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoad_MissingFileYieldsDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if *cfg != *def {
		t.Errorf("Load(missing) = %+v, want defaults %+v", cfg, def)
	}
}

func TestLoad_File(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neweden.json")
	content := `{"database_path": "/data/sde.sqlite", "preference": "highsec", "jump_drive_calibration": 4}`
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}

	cfg, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.DatabasePath != "/data/sde.sqlite" {
		t.Errorf("DatabasePath = %q", cfg.DatabasePath)
	}
	if cfg.Preference != "highsec" {
		t.Errorf("Preference = %q", cfg.Preference)
	}
	if cfg.JumpDriveCalibration != 4 {
		t.Errorf("JumpDriveCalibration = %d", cfg.JumpDriveCalibration)
	}
	// Unset fields keep their defaults.
	if cfg.JumpFuelConservation != Default().JumpFuelConservation {
		t.Errorf("JumpFuelConservation = %d, want default", cfg.JumpFuelConservation)
	}
}

func TestLoad_InvalidJSON(t *testing.T) {
	path := filepath.Join(t.TempDir(), "neweden.json")
	if err := os.WriteFile(path, []byte("{not json"), 0644); err != nil {
		t.Fatalf("write: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("Load of invalid JSON succeeded")
	}
}
