// Package config provides configuration helpers and TOML parsing.
package config

import (
	"fmt"
	"os"
	"unicode/utf8"

	"github.com/BurntSushi/toml"
	"github.com/rhyrak/go-advisor/internal/scheduler"
)

// FileConfig represents the TOML configuration file.
type FileConfig struct {
	Advisor AdvisorConfig `toml:"advisor"`
	CSV     CSVConfig     `toml:"csv"`
	Output  OutputConfig  `toml:"output"`
}

// AdvisorConfig maps grading and unit cap settings.
type AdvisorConfig struct {
	PassThreshold  *float64 `toml:"pass-threshold"`
	GrowthRate     *float64 `toml:"growth-rate"`
	HonorsGPA      *float64 `toml:"honors-gpa"`
	HonorsUnitCap  *int     `toml:"honors-unit-cap"`
	DefaultUnitCap *int     `toml:"default-unit-cap"`
	InitialGPA     *float64 `toml:"initial-gpa"`
	MaxTerms       *int     `toml:"max-terms"`
}

// CSVConfig maps input delimiters.
type CSVConfig struct {
	Delimiter             *string `toml:"delimiter"`
	ScheduleDelimiter     *string `toml:"schedule-delimiter"`
	SessionDelimiter      *string `toml:"session-delimiter"`
	PrerequisiteDelimiter *string `toml:"prerequisite-delimiter"`
}

// OutputConfig maps per-term artifact settings.
type OutputConfig struct {
	Dir     *string `toml:"dir"`
	Prefix  *string `toml:"prefix"`
	Suffix  *string `toml:"suffix"`
	Summary *string `toml:"summary"`
}

// LoadConfig reads a TOML config from the given path. Missing file is not an error.
func LoadConfig(path string) (FileConfig, error) {
	if path == "" {
		return FileConfig{}, fmt.Errorf("config path is empty")
	}
	if _, err := os.Stat(path); err != nil {
		if os.IsNotExist(err) {
			return FileConfig{}, nil
		}
		return FileConfig{}, fmt.Errorf("failed to stat config: %w", err)
	}
	var cfg FileConfig
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return FileConfig{}, fmt.Errorf("failed to decode config: %w", err)
	}
	return cfg, nil
}

// Apply copies every value set in the file onto cfg.
func (fc FileConfig) Apply(cfg *scheduler.Configuration) error {
	setFloat(&cfg.PassThreshold, fc.Advisor.PassThreshold)
	setFloat(&cfg.GrowthRate, fc.Advisor.GrowthRate)
	setFloat(&cfg.HonorsGPA, fc.Advisor.HonorsGPA)
	setInt(&cfg.HonorsUnitCap, fc.Advisor.HonorsUnitCap)
	setInt(&cfg.DefaultUnitCap, fc.Advisor.DefaultUnitCap)
	setFloat(&cfg.InitialGPA, fc.Advisor.InitialGPA)
	setInt(&cfg.MaxTerms, fc.Advisor.MaxTerms)

	if fc.CSV.Delimiter != nil {
		r, err := ParseDelimiter(*fc.CSV.Delimiter)
		if err != nil {
			return err
		}
		cfg.CSVDelimiter = r
	}
	setString(&cfg.ScheduleDelimiter, fc.CSV.ScheduleDelimiter)
	setString(&cfg.SessionDelimiter, fc.CSV.SessionDelimiter)
	setString(&cfg.PrerequisiteDelimiter, fc.CSV.PrerequisiteDelimiter)

	setString(&cfg.OutputDir, fc.Output.Dir)
	setString(&cfg.FilePrefix, fc.Output.Prefix)
	setString(&cfg.FileSuffix, fc.Output.Suffix)
	setString(&cfg.SummaryFile, fc.Output.Summary)
	return nil
}

// ParseDelimiter accepts a single character field delimiter.
func ParseDelimiter(s string) (rune, error) {
	if utf8.RuneCountInString(s) != 1 {
		return 0, fmt.Errorf("delimiter must be a single character, got %q", s)
	}
	r, _ := utf8.DecodeRuneInString(s)
	return r, nil
}

func setFloat(target, value *float64) {
	if value != nil {
		*target = *value
	}
}

func setInt(target, value *int) {
	if value != nil {
		*target = *value
	}
}

func setString(target, value *string) {
	if value != nil {
		*target = *value
	}
}
