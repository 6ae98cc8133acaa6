// Package config loads the adplan configuration file and project files, and
// owns the global logger initialization.
//
// Configuration is plain YAML. The tool runs fine with no config file at
// all; flags override file values, and file values override the defaults.
package config

import (
	"fmt"
	"os"
	"sync"

	"gopkg.in/yaml.v3"
)

// DefaultConfigFile is the config file name searched in the working
// directory.
const DefaultConfigFile = "adplan.yaml"

// LoggingConfig controls log output.
type LoggingConfig struct {
	// Level is the zerolog level name (trace, debug, info, warn, error).
	Level string `yaml:"level"`

	// File, when set, receives log output in addition to the console.
	File string `yaml:"file"`
}

// OutputConfig controls report rendering defaults.
type OutputConfig struct {
	// DefaultFormat is the report format when --output is not given
	// (table or json).
	DefaultFormat string `yaml:"default_format"`
}

// Config is the tool configuration.
type Config struct {
	Logging LoggingConfig `yaml:"logging"`
	Output  OutputConfig  `yaml:"output"`
}

// globalConfig holds the loaded configuration for the current invocation.
var (
	globalConfig   *Config      //nolint:gochecknoglobals // Set once at startup, read by commands.
	globalConfigMu sync.RWMutex //nolint:gochecknoglobals // Protects globalConfig.
)

// New returns a Config populated with defaults.
func New() *Config {
	return &Config{
		Logging: LoggingConfig{Level: "info"},
		Output:  OutputConfig{DefaultFormat: "table"},
	}
}

// Load reads the config file at path into a Config over the defaults.
// A missing file is not an error; the defaults are returned.
func Load(path string) (*Config, error) {
	cfg := New()

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return cfg, nil
		}
		return nil, fmt.Errorf("reading config %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("parsing config %s: %w", path, err)
	}
	return cfg, nil
}

// SetGlobalConfig stores cfg for the lifetime of the invocation.
func SetGlobalConfig(cfg *Config) {
	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	globalConfig = cfg
}

// GetGlobalConfig returns the stored configuration, loading defaults when
// nothing has been set.
func GetGlobalConfig() *Config {
	globalConfigMu.RLock()
	cfg := globalConfig
	globalConfigMu.RUnlock()
	if cfg != nil {
		return cfg
	}

	globalConfigMu.Lock()
	defer globalConfigMu.Unlock()
	if globalConfig == nil {
		globalConfig = New()
	}
	return globalConfig
}

// GetDefaultOutputFormat returns the configured default report format.
func GetDefaultOutputFormat() string {
	cfg := GetGlobalConfig()
	if cfg.Output.DefaultFormat == "" {
		return "table"
	}
	return cfg.Output.DefaultFormat
}

// WriteDefault writes a commented starter config to path. Fails when the
// file already exists.
func WriteDefault(path string) error {
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("config file %s already exists", path)
	}

	const starter = `# adplan configuration
logging:
  level: info
  # file: /tmp/adplan.log
output:
  default_format: table
`
	return os.WriteFile(path, []byte(starter), 0600)
}
