/*
Package config manages the TOML config for the numeronym generator.
*/
package config

import (
	"os"
	"path/filepath"

	"github.com/brennanwilkes/Numeronym-Generator/internal/utils"
	"github.com/charmbracelet/log"
)

// Config holds the entire config structure
type Config struct {
	Files  FilesConfig  `toml:"files"`
	Report ReportConfig `toml:"report"`
	Batch  BatchConfig  `toml:"batch"`
	Server ServerConfig `toml:"server"`
}

// FilesConfig has the input and output locations.
type FilesConfig struct {
	PhoneNumbers string `toml:"phone_numbers"`
	Words        string `toml:"words"`
	Output       string `toml:"output"`
	Snapshot     string `toml:"snapshot"`
	Database     string `toml:"database"`
}

// ReportConfig holds display caps. They only limit what is printed, never what is searched.
type ReportConfig struct {
	MaxPaths        int `toml:"max_paths"`
	MaxPermutations int `toml:"max_permutations"`
}

// BatchConfig holds options for processing a list of numbers.
type BatchConfig struct {
	Workers int `toml:"workers"`
}

// ServerConfig holds IPC options.
type ServerConfig struct {
	MaxLimit int `toml:"max_limit"`
}

// GetConfigDir returns the config directory with fallback priority:
// 1. ~/.config/numeronym
// 2. Current executable dir
func GetConfigDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		log.Errorf("Failed to get home directory: %v", err)
		return utils.GetExecutableDir()
	}
	primaryPath := filepath.Join(homeDir, ".config", "numeronym")
	if result := utils.CheckDirStatus(primaryPath); result.Writable {
		return primaryPath, nil
	}
	execDir, err := utils.GetExecutableDir()
	if err != nil {
		log.Errorf("Failed to get executable directory: %v", err)
		return "", err
	}
	return execDir, nil
}

// GetDefaultConfigPath returns the default path for config.toml
func GetDefaultConfigPath() (string, error) {
	configDir, err := GetConfigDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(configDir, "config.toml"), nil
}

// LoadConfigWithPriority loads config with priority:
// 1. Custom path from -config flag
// 2. Default path: [UserConfigDir]/numeronym/config.toml
// 3. Builtin defaults
func LoadConfigWithPriority(customConfigPath string) (*Config, string, error) {
	if customConfigPath != "" {
		if _, statErr := os.Stat(customConfigPath); statErr == nil {
			config, err := LoadConfig(customConfigPath)
			if err != nil {
				log.Warnf("Failed to load custom config from %s: %v. Trying default path...", customConfigPath, err)
			} else {
				log.Debugf("Loaded config from custom path: %s", customConfigPath)
				return config, customConfigPath, nil
			}
		} else {
			log.Warnf("Custom config file not found at %s: %v. Trying default path...", customConfigPath, statErr)
		}
	}
	defaultPath, err := GetDefaultConfigPath()
	if err != nil {
		log.Warnf("Failed to determine default config path: %v. Using built-in defaults...", err)
		return DefaultConfig(), "", nil
	}

	config, err := InitConfig(defaultPath)
	if err != nil {
		log.Warnf("Failed to load/create config at default path %s: %v. Using builtin defaults...", defaultPath, err)
		return DefaultConfig(), "", nil
	}
	log.Debugf("Loaded config from default path: %s", defaultPath)
	return config, defaultPath, nil
}

// DefaultConfig returns a Config with default values.
func DefaultConfig() *Config {
	return &Config{
		Files: FilesConfig{
			PhoneNumbers: "telephone.txt",
			Words:        "word_list.txt",
			Output:       "results.txt",
		},
		Report: ReportConfig{
			MaxPaths:        10,
			MaxPermutations: 3,
		},
		Batch: BatchConfig{
			Workers: 1,
		},
		Server: ServerConfig{
			MaxLimit: 64,
		},
	}
}

// InitConfig loads config from file or creates default if missing
func InitConfig(configPath string) (*Config, error) {
	configDir := filepath.Dir(configPath)

	if err := utils.EnsureDir(configDir); err != nil {
		log.Warnf("Failed to create config directory %s: %v. Using built-in defaults...", configDir, err)
		return DefaultConfig(), nil
	}

	if !utils.FileExists(configPath) {
		config := DefaultConfig()
		if err := SaveConfig(config, configPath); err != nil {
			log.Warnf("Failed to create default config file at %s: %v. Using built-in defaults...", configPath, err)
			return DefaultConfig(), nil
		}
		log.Debugf("Created default config file at: %s", configPath)
		return config, nil
	}

	config, err := LoadConfig(configPath)
	if err != nil {
		log.Warnf("Failed to load config from %s: %v. Using built-in defaults...", configPath, err)
		return DefaultConfig(), nil
	}
	return config, nil
}

// LoadConfig loads from a TOML file
func LoadConfig(configPath string) (*Config, error) {
	config := DefaultConfig()

	if err := utils.LoadTOMLFile(configPath, config); err != nil {
		return tryPartialParse(configPath)
	}
	config.clamp()
	return config, nil
}

// tryPartialParse keeps whatever sections of a broken TOML file still parse
func tryPartialParse(configPath string) (*Config, error) {
	config := DefaultConfig()

	tempConfig, err := utils.ParseTOMLWithRecovery(configPath)
	if err != nil {
		log.Warnf("Could not parse any valid configuration from %s: %v. Using all defaults.", configPath, err)
		return config, nil
	}

	if filesSection, ok := utils.ExtractSection(tempConfig, "files"); ok {
		extractFilesConfig(filesSection, &config.Files)
	}
	if reportSection, ok := utils.ExtractSection(tempConfig, "report"); ok {
		extractReportConfig(reportSection, &config.Report)
	}
	if batchSection, ok := utils.ExtractSection(tempConfig, "batch"); ok {
		if val, ok := utils.ExtractInt64(batchSection, "workers"); ok {
			config.Batch.Workers = val
		}
	}
	if serverSection, ok := utils.ExtractSection(tempConfig, "server"); ok {
		if val, ok := utils.ExtractInt64(serverSection, "max_limit"); ok {
			config.Server.MaxLimit = val
		}
	}
	config.clamp()
	return config, nil
}

// extractFilesConfig extracts file locations from a map
func extractFilesConfig(data map[string]any, files *FilesConfig) {
	if val, ok := utils.ExtractString(data, "phone_numbers"); ok {
		files.PhoneNumbers = val
	}
	if val, ok := utils.ExtractString(data, "words"); ok {
		files.Words = val
	}
	if val, ok := utils.ExtractString(data, "output"); ok {
		files.Output = val
	}
	if val, ok := utils.ExtractString(data, "snapshot"); ok {
		files.Snapshot = val
	}
	if val, ok := utils.ExtractString(data, "database"); ok {
		files.Database = val
	}
}

// extractReportConfig extracts display caps from a map
func extractReportConfig(data map[string]any, report *ReportConfig) {
	if val, ok := utils.ExtractInt64(data, "max_paths"); ok {
		report.MaxPaths = val
	}
	if val, ok := utils.ExtractInt64(data, "max_permutations"); ok {
		report.MaxPermutations = val
	}
}

// clamp keeps the caps at their minimum of 1
func (c *Config) clamp() {
	if c.Report.MaxPaths < 1 {
		log.Warnf("report.max_paths must be >= 1, got %d", c.Report.MaxPaths)
		c.Report.MaxPaths = 1
	}
	if c.Report.MaxPermutations < 1 {
		log.Warnf("report.max_permutations must be >= 1, got %d", c.Report.MaxPermutations)
		c.Report.MaxPermutations = 1
	}
	if c.Batch.Workers < 1 {
		c.Batch.Workers = 1
	}
	if c.Server.MaxLimit < 1 {
		c.Server.MaxLimit = DefaultConfig().Server.MaxLimit
	}
}

// SaveConfig saves into a TOML file
func SaveConfig(config *Config, configPath string) error {
	return utils.SaveTOMLFile(config, configPath)
}
