package config

import (
	"encoding/json"
	"fmt"
	"io/ioutil"
	"log"
	"os"
	"sort"

	"github.com/mitchellh/mapstructure"
)

type SplashConfig struct {
	Name       string `json:"name" mapstructure:"name"`
	InputFile  string `json:"inputFile" mapstructure:"inputFile"`
	OutputFile string `json:"outputFile" mapstructure:"outputFile"`
	ArrayName  string `json:"arrayName" mapstructure:"arrayName"` // C identifier for the array
	GuardName  string `json:"guardName" mapstructure:"guardName"` // include guard macro
}

// LoadConfig reads and parses the splash_jobs.json file. Decoding goes
// through mapstructure so hand-edited files with unknown keys get a warning
// instead of silently dropping them.
func LoadConfig(configPath string) ([]SplashConfig, error) {
	var configs []SplashConfig
	configData, err := ioutil.ReadFile(configPath)
	if err != nil {
		if os.IsNotExist(err) {
			log.Printf("Configuration file '%s' not found. Returning empty configuration.", configPath)
			return configs, nil // Return empty slice, not an error
		}
		return nil, fmt.Errorf("failed to read configuration file '%s': %w", configPath, err)
	}

	var rawEntries []map[string]interface{}
	if err := json.Unmarshal(configData, &rawEntries); err != nil {
		return nil, fmt.Errorf("failed to parse configuration file '%s': %w", configPath, err)
	}

	for i, raw := range rawEntries {
		var cfg SplashConfig
		var md mapstructure.Metadata
		decoder, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:   &cfg,
			Metadata: &md,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to build config decoder: %w", err)
		}
		if err := decoder.Decode(raw); err != nil {
			return nil, fmt.Errorf("invalid entry %d in configuration file '%s': %w", i, configPath, err)
		}
		for _, key := range md.Unused {
			log.Printf("Warning: unknown key '%s' in entry %d of '%s' (ignored).", key, i, configPath)
		}
		configs = append(configs, cfg)
	}

	log.Printf("Loaded %d splash job configuration(s) from %s.", len(configs), configPath)
	return configs, nil
}

// SaveConfig saves the job configurations back to splash_jobs.json.
func SaveConfig(configPath string, configs []SplashConfig) error {
	// Sort configs by name for consistency before saving
	sort.Slice(configs, func(i, j int) bool {
		return configs[i].Name < configs[j].Name
	})

	updatedConfigData, err := json.MarshalIndent(configs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal updated configuration: %w", err)
	}
	err = ioutil.WriteFile(configPath, updatedConfigData, 0644)
	if err != nil {
		return fmt.Errorf("failed to write updated configuration file '%s': %w", configPath, err)
	}
	return nil
}
