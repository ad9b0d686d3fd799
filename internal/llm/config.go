package llm

// TaskType identifies the kind of generation being performed.
type TaskType string

const (
	TaskGenerate TaskType = "generate"
	TaskEdit     TaskType = "edit"
)

// TaskConfig holds per-task parameters.
type TaskConfig struct {
	Temperature float64
	MaxTokens   int
	TimeoutMs   int // overrides global if > 0
}

// Config holds everything the client needs. The APIKey is sent as x-api-key
// when set; a proxy that injects the key itself can leave it empty.
type Config struct {
	Enabled    bool
	LogCalls   bool
	Endpoint   string
	Path       string
	Model      string
	APIKey     string
	Version    string
	TimeoutMs  int
	MaxRetries int
	Tasks      map[TaskType]TaskConfig
}

// DefaultConfig returns a Config with sensible defaults. Generation is
// disabled by default.
func DefaultConfig() Config {
	return Config{
		Enabled:    false,
		LogCalls:   false,
		Endpoint:   "https://api.anthropic.com",
		Path:       "/v1/messages",
		Model:      "claude-sonnet-4-20250514",
		Version:    "2023-06-01",
		TimeoutMs:  60000,
		MaxRetries: 1,
		Tasks: map[TaskType]TaskConfig{
			TaskGenerate: {Temperature: 0.3, MaxTokens: 4000},
			TaskEdit:     {Temperature: 0.2, MaxTokens: 8000, TimeoutMs: 120000},
		},
	}
}

// TaskTimeout returns the effective timeout for a given task type.
// Uses the task-specific timeout if set, otherwise the global timeout.
func (c Config) TaskTimeout(task TaskType) int {
	if tc, ok := c.Tasks[task]; ok && tc.TimeoutMs > 0 {
		return tc.TimeoutMs
	}
	return c.TimeoutMs
}
