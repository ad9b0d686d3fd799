package planning

import (
	"testing"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEditPrompt(t *testing.T) {
	msg, err := EditPrompt(current(), "  add a QA phase ")
	require.NoError(t, err)
	assert.Contains(t, msg, `"name": "Clinic Website"`)
	assert.Contains(t, msg, `USER COMMAND: "add a QA phase"`)
	assert.NotContains(t, msg, "chat-1")
}

func TestGeneratePrompt(t *testing.T) {
	msg := GeneratePrompt("bakery POS rollout\n", domain.MustParseDate("2025-05-06"))
	assert.Contains(t, msg, "Today is 2025-05-06.")
	assert.Contains(t, msg, "bakery POS rollout")
	assert.Contains(t, GenerateSystemPrompt(), `"wbs"`)
	assert.Contains(t, EditSystemPrompt(), "COMPLETE updated project")
}
