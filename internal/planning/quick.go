package planning

import (
	"strings"
	"time"

	"github.com/alexanderramin/ganttly/internal/domain"
	"github.com/alexanderramin/ganttly/internal/wbs"
)

// QuickCommand is a whole-tree edit applied locally, without the generator.
type QuickCommand struct {
	Phrase string
	Apply  func([]*domain.Task) []*domain.Task
}

// QuickCommands lists the recognized phrases.
var QuickCommands = []QuickCommand{
	{Phrase: "mark all complete", Apply: wbs.MarkAllComplete},
	{Phrase: "reset all progress", Apply: wbs.ResetAllProgress},
}

// LookupQuick matches text against QuickCommands, ignoring case and
// surrounding space.
func LookupQuick(text string) (QuickCommand, bool) {
	t := strings.ToLower(strings.TrimSpace(text))
	for _, q := range QuickCommands {
		if q.Phrase == t {
			return q, true
		}
	}
	return QuickCommand{}, false
}

// ApplyQuick runs q on p's tree and logs it as a command entry.
func ApplyQuick(p domain.Project, q QuickCommand, text string, now time.Time) domain.Project {
	next := p
	next.WBS = q.Apply(p.WBS)
	entry := NewEntry(domain.ActionCommand, text, "Applied quick command: "+q.Phrase, wbs.Count(next.WBS), now)
	next.ConversationHistory = AppendEntry(p.ConversationHistory, entry)
	next.Touch(now)
	return next
}
