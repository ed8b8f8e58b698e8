package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadYAMLConfigMissingFileIsOptional(t *testing.T) {
	t.Setenv("CONFIG_FILE", filepath.Join(t.TempDir(), "does-not-exist.yaml"))

	cfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg != nil {
		t.Errorf("expected nil config for missing file, got %+v", cfg)
	}
}

func TestLoadYAMLConfigApply(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `upstreams:
  mobile_info:
    url: https://mobile.example.com/search
  family_info:
    url: https://family.example.com/fetch
    api_key: sekrit
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatal(err)
	}
	t.Setenv("CONFIG_FILE", path)

	yamlCfg, err := LoadYAMLConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	cfg := &Config{
		MobileInfoURL:  "http://env-mobile",
		AadhaarInfoURL: "http://env-aadhaar",
		FamilyInfoURL:  "http://env-family",
	}
	yamlCfg.Apply(cfg)

	if cfg.MobileInfoURL != "https://mobile.example.com/search" {
		t.Errorf("MobileInfoURL = %q", cfg.MobileInfoURL)
	}
	// Endpoints absent from the file keep their env values.
	if cfg.AadhaarInfoURL != "http://env-aadhaar" {
		t.Errorf("AadhaarInfoURL = %q", cfg.AadhaarInfoURL)
	}
	if cfg.FamilyInfoURL != "https://family.example.com/fetch" {
		t.Errorf("FamilyInfoURL = %q", cfg.FamilyInfoURL)
	}
	if cfg.FamilyAPIKey != "sekrit" {
		t.Errorf("FamilyAPIKey = %q", cfg.FamilyAPIKey)
	}
}

func TestApplyNilYAMLConfig(t *testing.T) {
	cfg := &Config{MobileInfoURL: "http://env-mobile"}
	var yamlCfg *YAMLConfig
	yamlCfg.Apply(cfg)
	if cfg.MobileInfoURL != "http://env-mobile" {
		t.Errorf("nil overlay changed config: %q", cfg.MobileInfoURL)
	}
}
