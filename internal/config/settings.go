package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"
)

// Settings represents the structure of $BUNDLESTATS_HOME/settings.json.
// Every field is optional; flags and environment variables take precedence.
type Settings struct {
	ArchiveURL          string `json:"archive_url,omitempty"`
	BatchSize           *int   `json:"batch_size,omitempty"`
	BuildCommand        string `json:"build_command,omitempty"`
	BundleDir           string `json:"bundle_dir,omitempty"`
	CleanCommand        string `json:"clean_command,omitempty"`
	Database            string `json:"database,omitempty"`
	Debug               *bool  `json:"debug,omitempty"`
	InstallCommand      string `json:"install_command,omitempty"`
	LogFormat           string `json:"log_format,omitempty"`
	MaxLogFiles         *int   `json:"max_log_files,omitempty"`
	MetricsAddr         string `json:"metrics_addr,omitempty"`
	PollIntervalSeconds *int   `json:"poll_interval_seconds,omitempty"`
	RepoDir             string `json:"repo_dir,omitempty"`
	StatsDir            string `json:"stats_dir,omitempty"`
	TrunkBranch         string `json:"trunk_branch,omitempty"`
	TrunkRef            string `json:"trunk_ref,omitempty"`
}

// Validate checks value ranges that JSON decoding cannot
func (s *Settings) Validate() error {
	var errs []error
	if s.PollIntervalSeconds != nil && *s.PollIntervalSeconds <= 0 {
		errs = append(errs, fmt.Errorf("poll_interval_seconds must be positive, got %d", *s.PollIntervalSeconds))
	}
	if s.BatchSize != nil && *s.BatchSize < 0 {
		errs = append(errs, fmt.Errorf("batch_size must not be negative, got %d", *s.BatchSize))
	}
	if s.MaxLogFiles != nil && *s.MaxLogFiles < 0 {
		errs = append(errs, fmt.Errorf("max_log_files must not be negative, got %d", *s.MaxLogFiles))
	}
	switch strings.ToLower(s.LogFormat) {
	case "", "json", "text":
	default:
		errs = append(errs, fmt.Errorf("log_format must be json or text, got %q", s.LogFormat))
	}
	return errors.Join(errs...)
}

// LoadSettings loads settings from $BUNDLESTATS_HOME/settings.json.
// Returns empty Settings if the file doesn't exist (not an error).
func LoadSettings() (*Settings, error) {
	return LoadSettingsFrom(GetSettingsPath())
}

// LoadSettingsFrom loads settings from the given file
func LoadSettingsFrom(path string) (*Settings, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return &Settings{}, nil
		}
		return nil, fmt.Errorf("failed to read settings file: %w", err)
	}

	var settings Settings
	if err := json.Unmarshal(data, &settings); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}
	if err := settings.Validate(); err != nil {
		return nil, fmt.Errorf("invalid settings.json: %w", err)
	}

	settings.BundleDir = ExpandPath(settings.BundleDir)
	settings.RepoDir = ExpandPath(settings.RepoDir)
	settings.StatsDir = ExpandPath(settings.StatsDir)
	if !strings.Contains(settings.Database, "://") {
		settings.Database = ExpandPath(settings.Database)
	}

	return &settings, nil
}
