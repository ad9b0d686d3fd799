package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

// newViperInstance creates a Viper with defaults, the GANTTLY_ env prefix and
// dotted keys mapped to underscores (llm.api_key -> GANTTLY_LLM_API_KEY).
func newViperInstance() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GANTTLY")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	// The conventional provider variable works as a fallback.
	_ = v.BindEnv("llm.api_key", "GANTTLY_LLM_API_KEY", "ANTHROPIC_API_KEY")
	return v
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("db.path", defaultDBPath())
	v.SetDefault("llm.enabled", false)
	v.SetDefault("llm.endpoint", "https://api.anthropic.com")
	v.SetDefault("llm.path", "/v1/messages")
	v.SetDefault("llm.model", "claude-sonnet-4-20250514")
	v.SetDefault("llm.api_key", "")
	v.SetDefault("llm.timeout_ms", 60000)
	v.SetDefault("llm.max_retries", 1)
	v.SetDefault("llm.max_tokens", 0)
	v.SetDefault("log.calls", false)
	v.SetDefault("log.level", "warn")
	v.SetDefault("gantt.base_day_width", 50.0)
	v.SetDefault("gantt.min_bar_width", 6.0)
	v.SetDefault("gantt.default_scale", "month")
	v.SetDefault("templates.dir", "")
}

// Load reads configuration. path names an explicit config file, which must
// exist; with an empty path ~/.ganttly/config.yaml is read when present.
func Load(path string) (*Config, error) {
	v := newViperInstance()

	if path == "" {
		if p, ok := globalConfigPathIfExists(); ok {
			path = p
		}
	}
	if path != "" {
		v.SetConfigFile(path)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("decoding config: %w", err)
	}
	cfg.DB.Path = expandHome(cfg.DB.Path)
	cfg.Templates.Dir = expandHome(cfg.Templates.Dir)

	if err := Validate(&cfg); err != nil {
		return nil, fmt.Errorf("invalid configuration: %w", err)
	}
	return &cfg, nil
}

// Default returns the built-in defaults without reading a file or the
// environment.
func Default() *Config {
	v := viper.New()
	setDefaults(v)
	var cfg Config
	_ = v.Unmarshal(&cfg)
	return &cfg
}

// HomeDir returns ~/.ganttly.
func HomeDir() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get home directory: %w", err)
	}
	return filepath.Join(home, HomeDirName), nil
}

func defaultDBPath() string {
	dir, err := HomeDir()
	if err != nil {
		return "ganttly.db"
	}
	return filepath.Join(dir, "ganttly.db")
}

func globalConfigPathIfExists() (string, bool) {
	dir, err := HomeDir()
	if err != nil {
		return "", false
	}
	p := filepath.Join(dir, "config.yaml")
	if _, err := os.Stat(p); err != nil {
		return "", false
	}
	return p, true
}

func expandHome(p string) string {
	if p != "~" && !strings.HasPrefix(p, "~/") {
		return p
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return p
	}
	return filepath.Join(home, strings.TrimPrefix(p, "~"))
}

