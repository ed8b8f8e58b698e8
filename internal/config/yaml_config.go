package config

import (
	"os"

	"gopkg.in/yaml.v3"
)

// YAMLConfig represents the structure of the config.yaml file. Upstream
// endpoints change per deployment, so they can be kept in a file instead
// of environment variables.
type YAMLConfig struct {
	Upstreams UpstreamsConfig `yaml:"upstreams"`
}

// UpstreamsConfig defines the three lookup services.
type UpstreamsConfig struct {
	MobileInfo  EndpointConfig `yaml:"mobile_info"`
	AadhaarInfo EndpointConfig `yaml:"aadhaar_info"`
	FamilyInfo  EndpointConfig `yaml:"family_info"`
}

// EndpointConfig defines a single upstream endpoint.
type EndpointConfig struct {
	URL    string `yaml:"url"`
	APIKey string `yaml:"api_key,omitempty"`
}

// LoadYAMLConfig loads the YAML configuration file.
// Path is determined by CONFIG_FILE env var, defaulting to "config.yaml".
// Returns nil without error if the config file doesn't exist.
func LoadYAMLConfig() (*YAMLConfig, error) {
	path := getEnv("CONFIG_FILE", "config.yaml")

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			// Config file is optional
			return nil, nil
		}
		return nil, err
	}

	var cfg YAMLConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Apply overlays any endpoints set in the YAML file onto the env config.
func (y *YAMLConfig) Apply(cfg *Config) {
	if y == nil {
		return
	}
	if y.Upstreams.MobileInfo.URL != "" {
		cfg.MobileInfoURL = y.Upstreams.MobileInfo.URL
	}
	if y.Upstreams.AadhaarInfo.URL != "" {
		cfg.AadhaarInfoURL = y.Upstreams.AadhaarInfo.URL
	}
	if y.Upstreams.FamilyInfo.URL != "" {
		cfg.FamilyInfoURL = y.Upstreams.FamilyInfo.URL
	}
	if y.Upstreams.FamilyInfo.APIKey != "" {
		cfg.FamilyAPIKey = y.Upstreams.FamilyInfo.APIKey
	}
}
