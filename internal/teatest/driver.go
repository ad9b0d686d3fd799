// Package teatest drives a bubbletea model synchronously in tests: messages
// go straight to Update and the returned commands are run inline, so no
// tea.Program or goroutine is involved.
package teatest

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

// maxDepth bounds command chains that keep producing messages.
const maxDepth = 64

// Driver holds the current model value. M is the concrete model type so
// tests can inspect its state between key presses.
type Driver[M tea.Model] struct {
	t     *testing.T
	model M

	// Quit is set once a command returns tea.QuitMsg; later sends are ignored.
	Quit bool
}

// Option sends setup messages after Init.
type Option func(send func(tea.Msg))

// WithSize delivers a WindowSizeMsg.
func WithSize(width, height int) Option {
	return func(send func(tea.Msg)) {
		send(tea.WindowSizeMsg{Width: width, Height: height})
	}
}

// New runs the model's Init command and applies opts.
func New[M tea.Model](t *testing.T, model M, opts ...Option) *Driver[M] {
	t.Helper()
	d := &Driver[M]{t: t, model: model}
	d.drain(model.Init(), 0)
	for _, opt := range opts {
		opt(d.Send)
	}
	return d
}

// Model returns the latest model value.
func (d *Driver[M]) Model() M {
	return d.model
}

// View renders the latest model value.
func (d *Driver[M]) View() string {
	return d.model.View()
}

// Send dispatches msg and runs every command it produces.
func (d *Driver[M]) Send(msg tea.Msg) {
	d.t.Helper()
	if d.Quit {
		return
	}
	d.drain(d.update(msg), 0)
}

// Press sends one key per name. Names bubbletea knows as special keys
// ("up", "enter", "ctrl+c", ...) become that key; anything else is typed
// as runes.
func (d *Driver[M]) Press(names ...string) {
	d.t.Helper()
	for _, name := range names {
		d.Send(Key(name))
	}
}

// Repeat sends the named key n times.
func (d *Driver[M]) Repeat(name string, n int) {
	d.t.Helper()
	for range n {
		d.Send(Key(name))
	}
}

// Key builds the KeyMsg whose String() is name.
func Key(name string) tea.KeyMsg {
	if k, ok := specialKeys[name]; ok {
		return tea.KeyMsg{Type: k}
	}
	if name == " " {
		return tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	}
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(name)}
}

var specialKeys = map[string]tea.KeyType{
	"up":        tea.KeyUp,
	"down":      tea.KeyDown,
	"left":      tea.KeyLeft,
	"right":     tea.KeyRight,
	"enter":     tea.KeyEnter,
	"esc":       tea.KeyEsc,
	"tab":       tea.KeyTab,
	"backspace": tea.KeyBackspace,
	"home":      tea.KeyHome,
	"end":       tea.KeyEnd,
	"pgup":      tea.KeyPgUp,
	"pgdown":    tea.KeyPgDown,
	"ctrl+c":    tea.KeyCtrlC,
}

func (d *Driver[M]) update(msg tea.Msg) tea.Cmd {
	d.t.Helper()
	next, cmd := d.model.Update(msg)
	m, ok := next.(M)
	if !ok {
		d.t.Fatalf("teatest: Update returned %T, want %T", next, d.model)
	}
	d.model = m
	return cmd
}

func (d *Driver[M]) drain(cmd tea.Cmd, depth int) {
	d.t.Helper()
	if cmd == nil {
		return
	}
	if depth >= maxDepth {
		d.t.Fatalf("teatest: command chain deeper than %d", maxDepth)
	}

	switch msg := cmd().(type) {
	case nil:
	case tea.QuitMsg:
		d.Quit = true
	case tea.BatchMsg:
		for _, sub := range msg {
			d.drain(sub, depth+1)
		}
	default:
		d.drain(d.update(msg), depth+1)
	}
}
