// Package config loads ganttly settings from built-in defaults, an optional
// YAML file (~/.ganttly/config.yaml) and GANTTLY_* environment variables, in
// increasing order of precedence.
package config

import (
	"github.com/alexanderramin/ganttly/internal/layout"
	"github.com/alexanderramin/ganttly/internal/llm"
	"github.com/alexanderramin/ganttly/internal/timeline"
)

// HomeDirName is the per-user directory holding the database and config.
const HomeDirName = ".ganttly"

// Config is the full application configuration.
type Config struct {
	DB        DBConfig        `mapstructure:"db"`
	LLM       LLMConfig       `mapstructure:"llm"`
	Log       LogConfig       `mapstructure:"log"`
	Gantt     GanttConfig     `mapstructure:"gantt"`
	Templates TemplatesConfig `mapstructure:"templates"`
}

type DBConfig struct {
	Path string `mapstructure:"path"`
}

type LLMConfig struct {
	Enabled    bool   `mapstructure:"enabled"`
	Endpoint   string `mapstructure:"endpoint"`
	Path       string `mapstructure:"path"`
	Model      string `mapstructure:"model"`
	APIKey     string `mapstructure:"api_key"`
	TimeoutMs  int    `mapstructure:"timeout_ms"`
	MaxRetries int    `mapstructure:"max_retries"`
	MaxTokens  int    `mapstructure:"max_tokens"`
}

type LogConfig struct {
	Calls bool   `mapstructure:"calls"`
	Level string `mapstructure:"level"`
}

type GanttConfig struct {
	BaseDayWidth float64 `mapstructure:"base_day_width"`
	MinBarWidth  float64 `mapstructure:"min_bar_width"`
	DefaultScale string  `mapstructure:"default_scale"`
}

type TemplatesConfig struct {
	Dir string `mapstructure:"dir"`
}

// LLMClientConfig converts the llm section into the client's Config. A
// non-zero max_tokens overrides every task's default.
func (c *Config) LLMClientConfig() llm.Config {
	out := llm.DefaultConfig()
	out.Enabled = c.LLM.Enabled
	out.LogCalls = c.Log.Calls
	out.Endpoint = c.LLM.Endpoint
	out.Path = c.LLM.Path
	out.Model = c.LLM.Model
	out.APIKey = c.LLM.APIKey
	out.TimeoutMs = c.LLM.TimeoutMs
	out.MaxRetries = c.LLM.MaxRetries
	if c.LLM.MaxTokens > 0 {
		for task, tc := range out.Tasks {
			tc.MaxTokens = c.LLM.MaxTokens
			out.Tasks[task] = tc
		}
	}
	return out
}

// LayoutConfig returns the chart constants.
func (c *Config) LayoutConfig() layout.Config {
	return layout.Config{BaseDayWidth: c.Gantt.BaseDayWidth, MinBarWidth: c.Gantt.MinBarWidth}
}

// Scale returns the parsed default scale; Load has already validated it.
func (c *Config) Scale() timeline.Scale {
	s, err := timeline.ParseScale(c.Gantt.DefaultScale)
	if err != nil {
		return timeline.Month
	}
	return s
}
