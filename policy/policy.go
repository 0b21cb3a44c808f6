package policy

import (
	"encoding/json"
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Settings is the per-day risk policy. Balance is rebased by the day
// rollover; every other field changes only through an explicit edit.
type Settings struct {
	Balance        float64 `json:"balance" yaml:"balance"`
	MaxRiskPct     float64 `json:"max_risk_pct" yaml:"max_risk_pct"`
	DailyRiskPct   float64 `json:"daily_risk_pct" yaml:"daily_risk_pct"`
	DailyTargetPct float64 `json:"daily_target_pct" yaml:"daily_target_pct"`
	CompoundPct    float64 `json:"compound_pct" yaml:"compound_pct"`
	RewardRisk     float64 `json:"reward_risk" yaml:"reward_risk"`
}

// Validate checks if the settings are within their valid ranges.
func (s Settings) Validate() error {
	if s.Balance <= 0 || s.Balance > 1_000_000 {
		return fmt.Errorf("balance must be between $1 and $1M, got %.2f", s.Balance)
	}
	if s.MaxRiskPct <= 0 || s.MaxRiskPct > 100 {
		return fmt.Errorf("max_risk_pct must be in (0, 100], got %g", s.MaxRiskPct)
	}
	if s.DailyRiskPct <= 0 || s.DailyRiskPct > 100 {
		return fmt.Errorf("daily_risk_pct must be in (0, 100], got %g", s.DailyRiskPct)
	}
	if s.DailyTargetPct <= 0 || s.DailyTargetPct > 100 {
		return fmt.Errorf("daily_target_pct must be in (0, 100], got %g", s.DailyTargetPct)
	}
	if s.CompoundPct < 1 || s.CompoundPct > 100 {
		return fmt.Errorf("compound_pct must be in [1, 100], got %g", s.CompoundPct)
	}
	if s.RewardRisk <= 0 || s.RewardRisk >= 100 {
		return fmt.Errorf("reward_risk must be in (0, 100), got %g", s.RewardRisk)
	}
	return nil
}

// Default returns the policy a fresh install starts with.
func Default() Settings {
	return Settings{
		Balance:        7000,
		MaxRiskPct:     1.0,
		DailyRiskPct:   0.5,
		DailyTargetPct: 2.0,
		CompoundPct:    33,
		RewardRisk:     5.0,
	}
}

// LoadFromFile loads settings from a file (JSON or YAML based on content).
func LoadFromFile(path string) (Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Settings{}, fmt.Errorf("read settings file: %w", err)
	}

	var s Settings

	// Try YAML first, fall back to JSON
	err = yaml.Unmarshal(data, &s)
	if err != nil {
		err = json.Unmarshal(data, &s)
		if err != nil {
			return Settings{}, fmt.Errorf("parse settings (tried YAML and JSON): %w", err)
		}
	}

	if err := s.Validate(); err != nil {
		return Settings{}, fmt.Errorf("invalid settings: %w", err)
	}

	return s, nil
}

// SaveToFile saves settings to a file (JSON or YAML based on extension).
func (s Settings) SaveToFile(path string) error {
	var data []byte
	var err error

	if strings.HasSuffix(path, ".yaml") || strings.HasSuffix(path, ".yml") {
		data, err = yaml.Marshal(s)
	} else {
		data, err = json.MarshalIndent(s, "", "  ")
	}

	if err != nil {
		return fmt.Errorf("marshal settings: %w", err)
	}

	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("write settings file: %w", err)
	}

	return nil
}
