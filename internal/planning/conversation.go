package planning

import (
	"strconv"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
)

// NewEntry builds a conversation log entry. The id is "chat-" followed by
// now in unix milliseconds.
func NewEntry(action domain.ConversationAction, prompt, response string, tasksModified int, now time.Time) domain.ConversationEntry {
	return domain.ConversationEntry{
		ID:            "chat-" + strconv.FormatInt(now.UnixMilli(), 10),
		Timestamp:     now.UTC(),
		UserPrompt:    prompt,
		AIResponse:    response,
		TasksModified: tasksModified,
		Action:        action,
	}
}

// AppendEntry returns history with e added. history itself is not modified.
func AppendEntry(history []domain.ConversationEntry, e domain.ConversationEntry) []domain.ConversationEntry {
	out := make([]domain.ConversationEntry, len(history), len(history)+1)
	copy(out, history)
	return append(out, e)
}
