package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/alnah/go-skillsheet/internal/config"
)

// envPrefix namespaces the environment variables read by the CLI.
const envPrefix = "SKILLSHEET_"

// envConfig holds configuration from environment variables.
type envConfig struct {
	ConfigPath string        // SKILLSHEET_CONFIG: config file name or path
	OutputDir  string        // SKILLSHEET_OUTPUT_DIR: output directory
	Timeout    time.Duration // SKILLSHEET_TIMEOUT: PDF page load timeout
	Style      string        // SKILLSHEET_STYLE: CSS style name or path
}

// knownEnvVars lists valid SKILLSHEET_* environment variables.
var knownEnvVars = map[string]bool{
	"SKILLSHEET_CONFIG":     true,
	"SKILLSHEET_OUTPUT_DIR": true,
	"SKILLSHEET_TIMEOUT":    true,
	"SKILLSHEET_STYLE":      true,
}

// loadEnvConfig reads the SKILLSHEET_* variables. An unparsable or
// non-positive timeout is reported to warn and ignored.
func loadEnvConfig(warn io.Writer) *envConfig {
	cfg := &envConfig{
		ConfigPath: os.Getenv("SKILLSHEET_CONFIG"),
		OutputDir:  os.Getenv("SKILLSHEET_OUTPUT_DIR"),
		Style:      os.Getenv("SKILLSHEET_STYLE"),
	}

	if timeout := os.Getenv("SKILLSHEET_TIMEOUT"); timeout != "" {
		d, err := time.ParseDuration(timeout)
		if err != nil || d <= 0 {
			fmt.Fprintf(warn, "warning: ignoring SKILLSHEET_TIMEOUT=%q (want a positive duration)\n", timeout)
		} else {
			cfg.Timeout = d
		}
	}

	return cfg
}

// warnUnknownEnvVars reports unrecognized SKILLSHEET_* variables.
func warnUnknownEnvVars(w io.Writer) {
	for _, env := range os.Environ() {
		if !strings.HasPrefix(env, envPrefix) {
			continue
		}
		name, _, _ := strings.Cut(env, "=")
		if !knownEnvVars[name] {
			fmt.Fprintf(w, "warning: unknown environment variable %s (typo?)\n", name)
		}
	}
}

// applyEnvConfig copies environment values over the config file values.
// Flags are applied afterwards by mergeFlags, so the precedence is
// flags > environment > config file > defaults.
func applyEnvConfig(env *envConfig, cfg *config.Config) {
	if env.OutputDir != "" {
		cfg.Output.Dir = env.OutputDir
	}
	if env.Style != "" {
		cfg.HTML.Style = env.Style
	}
	if env.Timeout > 0 {
		cfg.PDF.Timeout = env.Timeout.String()
	}
}

// mergeFlags applies explicitly set flags over cfg.
func mergeFlags(f *cliFlags, cfg *config.Config) {
	if f.output.dir != "" {
		cfg.Output.Dir = f.output.dir
	}
	if f.style.style != "" {
		cfg.HTML.Style = f.style.style
	}
	if f.style.assetPath != "" {
		cfg.Assets.BasePath = f.style.assetPath
	}
	if f.pdf.timeout > 0 {
		cfg.PDF.Timeout = f.pdf.timeout.String()
	}
	if f.common.verbose {
		cfg.Log.Level = "debug"
	}
	if f.common.quiet {
		cfg.Log.Level = "error"
	}
	if f.common.logFormat != "" {
		cfg.Log.Format = f.common.logFormat
	}
}

// loadConfig resolves the config file from the --config flag or
// SKILLSHEET_CONFIG, then applies environment and flag overrides.
func loadConfig(f *cliFlags, env *envConfig) (*config.Config, error) {
	name := f.common.config
	if name == "" {
		name = env.ConfigPath
	}

	cfg := config.DefaultConfig()
	if name != "" {
		loaded, err := config.LoadConfig(name)
		if err != nil {
			return nil, fmt.Errorf("loading config: %w", err)
		}
		cfg = loaded
	}

	applyEnvConfig(env, cfg)
	mergeFlags(f, cfg)

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}
