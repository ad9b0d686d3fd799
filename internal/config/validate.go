package config

import (
	"errors"
	"fmt"
	"strings"

	"github.com/alexanderramin/ganttly/internal/timeline"
)

// ErrInvalidConfig is wrapped by every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

var logLevels = map[string]bool{"debug": true, "info": true, "warn": true, "error": true}

// Validate checks value ranges and enums.
func Validate(cfg *Config) error {
	var problems []string

	if strings.TrimSpace(cfg.DB.Path) == "" {
		problems = append(problems, "db.path is required")
	}
	if cfg.LLM.Enabled && strings.TrimSpace(cfg.LLM.Endpoint) == "" {
		problems = append(problems, "llm.endpoint is required when llm.enabled is true")
	}
	if cfg.LLM.TimeoutMs <= 0 {
		problems = append(problems, fmt.Sprintf("llm.timeout_ms must be > 0, got %d", cfg.LLM.TimeoutMs))
	}
	if cfg.LLM.MaxRetries < 0 {
		problems = append(problems, fmt.Sprintf("llm.max_retries must be >= 0, got %d", cfg.LLM.MaxRetries))
	}
	if cfg.LLM.MaxTokens < 0 {
		problems = append(problems, fmt.Sprintf("llm.max_tokens must be >= 0, got %d", cfg.LLM.MaxTokens))
	}
	if !logLevels[strings.ToLower(cfg.Log.Level)] {
		problems = append(problems, fmt.Sprintf("log.level %q is not one of debug, info, warn, error", cfg.Log.Level))
	}
	if cfg.Gantt.BaseDayWidth <= 0 {
		problems = append(problems, fmt.Sprintf("gantt.base_day_width must be > 0, got %g", cfg.Gantt.BaseDayWidth))
	}
	if cfg.Gantt.MinBarWidth < 0 {
		problems = append(problems, fmt.Sprintf("gantt.min_bar_width must be >= 0, got %g", cfg.Gantt.MinBarWidth))
	}
	if _, err := timeline.ParseScale(cfg.Gantt.DefaultScale); err != nil {
		problems = append(problems, "gantt.default_scale: "+err.Error())
	}

	if len(problems) == 0 {
		return nil
	}
	return fmt.Errorf("%w: %s", ErrInvalidConfig, strings.Join(problems, "; "))
}
