package llm

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogObserver(t *testing.T) {
	var buf bytes.Buffer
	obs := NewLogObserver(slog.New(slog.NewTextHandler(&buf, nil)))

	obs.OnCallComplete(CallEvent{Task: TaskGenerate, Model: "m", LatencyMs: 12, Attempts: 1, Success: true})
	obs.OnCallComplete(CallEvent{Task: TaskEdit, Model: "m", Attempts: 2, ErrorCode: "TIMEOUT"})

	out := buf.String()
	assert.Contains(t, out, "msg=llm_call task=generate model=m latency_ms=12 attempts=1 status=ok")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "error_code=TIMEOUT")
}
