package docxfill

import (
	"errors"
	"os"
	"strings"
	"sync"
)

// Config contains all configuration options for the docxfill engine
type Config struct {
	// LogLevel controls the verbosity of logging (debug, info, warn, error, off)
	LogLevel string
	// WorkDir is the directory where private working copies are created.
	// Empty means the system temporary directory.
	WorkDir string
	// KeepWorking keeps the working copy around after SaveAs instead of
	// moving it to the destination. Useful when debugging failed saves.
	KeepWorking bool
}

var (
	globalConfig      *Config
	globalConfigMutex sync.RWMutex
	configOnce        sync.Once
)

func init() {
	// Initialize global config from environment on first use
	configOnce.Do(func() {
		globalConfig = ConfigFromEnvironment()
	})
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	return &Config{
		LogLevel:    "info",
		WorkDir:     "",
		KeepWorking: false,
	}
}

// ConfigFromEnvironment creates a configuration from environment variables
func ConfigFromEnvironment() *Config {
	config := DefaultConfig()

	// DOCXFILL_LOG_LEVEL
	if val := os.Getenv("DOCXFILL_LOG_LEVEL"); val != "" {
		config.LogLevel = val
	}

	// DOCXFILL_WORK_DIR
	if val := os.Getenv("DOCXFILL_WORK_DIR"); val != "" {
		config.WorkDir = val
	}

	// DOCXFILL_KEEP_WORKING
	if val := os.Getenv("DOCXFILL_KEEP_WORKING"); val != "" {
		config.KeepWorking = parseBool(val)
	}

	return config
}

// Validate checks if the configuration is valid
func (c *Config) Validate() error {
	validLogLevels := map[string]bool{
		"debug": true,
		"info":  true,
		"warn":  true,
		"error": true,
		"off":   true,
	}

	if !validLogLevels[c.LogLevel] {
		return errors.New("invalid log level: " + c.LogLevel)
	}

	if c.WorkDir != "" {
		info, err := os.Stat(c.WorkDir)
		if err != nil {
			return errors.New("work dir not accessible: " + c.WorkDir)
		}
		if !info.IsDir() {
			return errors.New("work dir is not a directory: " + c.WorkDir)
		}
	}

	return nil
}

// GetGlobalConfig returns the global configuration
func GetGlobalConfig() *Config {
	globalConfigMutex.RLock()
	defer globalConfigMutex.RUnlock()

	if globalConfig == nil {
		return DefaultConfig()
	}

	// Return a copy to prevent modification
	configCopy := *globalConfig
	return &configCopy
}

// SetGlobalConfig sets the global configuration
func SetGlobalConfig(config *Config) {
	globalConfigMutex.Lock()
	globalConfig = config
	globalConfigMutex.Unlock()

	// Update logger based on new config (outside the lock to avoid deadlock)
	UpdateLoggerFromConfig()
}

// parseBool parses a boolean value from a string
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "1" || s == "yes" || s == "on"
}
