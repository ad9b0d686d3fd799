package teatest

import (
	"fmt"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
)

type bumpMsg struct{}

// counter counts keys, bumps twice through a command chain on "b" and
// quits on "q".
type counter struct {
	keys  []string
	bumps int
	width int
}

func (c counter) Init() tea.Cmd { return func() tea.Msg { return bumpMsg{} } }

func (c counter) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		c.width = msg.Width
	case bumpMsg:
		c.bumps++
	case tea.KeyMsg:
		c.keys = append(c.keys, msg.String())
		switch msg.String() {
		case "q":
			return c, tea.Quit
		case "b":
			bump := func() tea.Msg { return bumpMsg{} }
			return c, tea.Batch(bump, bump)
		}
	}
	return c, nil
}

func (c counter) View() string { return fmt.Sprintf("%d keys, %d bumps", len(c.keys), c.bumps) }

func TestDriver_InitAndSize(t *testing.T) {
	d := New(t, counter{}, WithSize(80, 24))
	assert.Equal(t, 1, d.Model().bumps)
	assert.Equal(t, 80, d.Model().width)
}

func TestDriver_PressNamesKeys(t *testing.T) {
	d := New(t, counter{})
	d.Press("up", "enter", "+", " ", "ctrl+c")
	assert.Equal(t, []string{"up", "enter", "+", " ", "ctrl+c"}, d.Model().keys)
}

func TestDriver_DrainsBatches(t *testing.T) {
	d := New(t, counter{})
	d.Repeat("b", 2)
	assert.Equal(t, 5, d.Model().bumps)
	assert.Equal(t, "2 keys, 5 bumps", d.View())
}

func TestDriver_StopsAfterQuit(t *testing.T) {
	d := New(t, counter{})
	d.Press("q", "x")
	assert.True(t, d.Quit)
	assert.Equal(t, []string{"q"}, d.Model().keys)
}
