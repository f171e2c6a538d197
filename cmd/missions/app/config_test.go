package app

import (
	"os"
	"testing"

	"github.com/planetary-society/missions/pkg/sources"
)

// TestLoadConfig verifies basic config loading and defaults.
func TestLoadConfig(t *testing.T) {
	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}
	if config == nil {
		t.Fatal("LoadConfig() returned nil config")
	}

	if config.DataDir == "" {
		t.Error("DataDir not set to default")
	}
	if config.MissionsDir == "" {
		t.Error("MissionsDir not set to default")
	}
	if config.SpreadsheetURL != sources.SpreadsheetURL {
		t.Errorf("SpreadsheetURL = %s, want default", config.SpreadsheetURL)
	}
	if config.NSSDCAURL != sources.NSSDCAURL {
		t.Errorf("NSSDCAURL = %s, want default", config.NSSDCAURL)
	}
	if config.Concurrency != DefaultConcurrency {
		t.Errorf("Concurrency = %d, want %d", config.Concurrency, DefaultConcurrency)
	}
	if config.LogFormat == "" {
		t.Error("LogFormat not set to default")
	}
}

// TestConfig_EnvironmentVariables verifies environment variable loading.
func TestConfig_EnvironmentVariables(t *testing.T) {
	oldVerbose := os.Getenv("VERBOSE")
	oldDataDir := os.Getenv("DATA_DIR")
	defer func() {
		os.Setenv("VERBOSE", oldVerbose)
		os.Setenv("DATA_DIR", oldDataDir)
	}()

	os.Setenv("VERBOSE", "true")
	os.Setenv("DATA_DIR", "/tmp/mission-data")

	config, err := LoadConfig()
	if err != nil {
		t.Fatalf("LoadConfig() failed: %v", err)
	}

	if !config.Verbose {
		t.Error("VERBOSE environment variable not loaded")
	}
	if config.DataDir != "/tmp/mission-data" {
		t.Errorf("DataDir = %s, want /tmp/mission-data", config.DataDir)
	}
}

// TestConfig_UpdateFromFlags verifies flag precedence over loaded values.
func TestConfig_UpdateFromFlags(t *testing.T) {
	config := &Config{LogLevel: "info"}

	config.UpdateFromFlags(true, false, true, "error")

	if !config.Verbose {
		t.Error("Verbose not updated from flags")
	}
	if !config.NoColor {
		t.Error("NoColor not updated from flags")
	}
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error", config.LogLevel)
	}

	// An empty flag value must not clear an explicit level.
	config.UpdateFromFlags(false, false, false, "")
	if config.LogLevel != "error" {
		t.Errorf("LogLevel = %s, want error after empty flag", config.LogLevel)
	}
}
