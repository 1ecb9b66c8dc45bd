// Package tui is the interactive chat session: the list on top, a free-text
// command line at the bottom, and the reasoning service in between.
package tui

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/idilsaglam/prata/internal/agent"
	"github.com/idilsaglam/prata/internal/core"
	"github.com/idilsaglam/prata/internal/ui"
	"go.uber.org/zap"
)

const historyShown = 6

type exchange struct {
	fromUser bool
	text     string
}

// resultMsg carries one finished reasoning round trip back into Update.
type resultMsg struct {
	store core.Store
	reply string
	err   error
}

// Model is the Bubble Tea model for the chat session.
type Model struct {
	store      core.Store
	translator agent.Translator
	timeout    time.Duration
	log        *zap.Logger

	input   textinput.Model
	spin    spinner.Model
	history []exchange
	busy    bool
	width   int
	height  int
}

// New builds the chat model around an initial store snapshot.
func New(store core.Store, translator agent.Translator, timeout time.Duration, log *zap.Logger) Model {
	ti := textinput.New()
	ti.Prompt = "> "
	ti.Placeholder = "Tell prata what to do..."
	ti.CharLimit = 500
	ti.Focus()

	sp := spinner.New()
	sp.Spinner = spinner.Dot

	return Model{
		store:      store,
		translator: translator,
		timeout:    timeout,
		log:        log,
		input:      ti,
		spin:       sp,
	}
}

// Run starts the session and blocks until the user quits.
func Run(store core.Store, translator agent.Translator, timeout time.Duration, log *zap.Logger) error {
	p := tea.NewProgram(New(store, translator, timeout, log), tea.WithAltScreen())
	_, err := p.Run()
	return err
}

func (m Model) Init() tea.Cmd { return textinput.Blink }

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		case "enter":
			if m.busy {
				return m, nil
			}
			text := strings.TrimSpace(m.input.Value())
			if text == "" {
				return m, nil
			}
			m.history = append(m.history, exchange{fromUser: true, text: text})
			m.input.SetValue("")
			m.busy = true
			return m, tea.Batch(m.spin.Tick, m.sendCmd(text))
		}

	case spinner.TickMsg:
		if !m.busy {
			return m, nil
		}
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd

	case resultMsg:
		m.busy = false
		if msg.err != nil {
			m.history = append(m.history, exchange{text: "Sorry, that didn't work: " + msg.err.Error()})
			return m, nil
		}
		m.store = msg.store
		m.history = append(m.history, exchange{text: msg.reply})
		return m, nil
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

// sendCmd runs one reasoning round trip off the update loop. It captures
// the current snapshot; only one call is ever in flight, so the snapshot
// the result replaces is always the one it was computed from.
func (m Model) sendCmd(text string) tea.Cmd {
	snapshot := m.store
	translator := m.translator
	timeout := m.timeout
	log := m.log

	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), timeout)
		defer cancel()

		tr, err := translator.Translate(ctx, text, snapshot)
		if err != nil {
			return resultMsg{err: err}
		}
		log.Debug("applying batch", zap.Int("actions", len(tr.Actions)))

		next, summary, err := core.ApplyBatch(snapshot, tr.Actions)
		if err != nil {
			return resultMsg{err: err}
		}
		return resultMsg{store: next, reply: sessionReply(next, summary, tr.Reply)}
	}
}

// sessionReply picks what prata says back: the batch transcript first, any
// miss message from the store, then the model's own text, then a default
// acknowledgment.
func sessionReply(s core.Store, summary, modelReply string) string {
	var parts []string
	if summary != "" {
		parts = append(parts, summary)
	}
	if s.Message != "" {
		parts = append(parts, s.Message)
	}
	if len(parts) == 0 {
		if modelReply != "" {
			return modelReply
		}
		return "Nothing to change."
	}
	return strings.Join(parts, " ")
}

func (m Model) View() string {
	var lines []string

	header := ui.Title.Render("prata") + "  " + ui.Accent.Render(m.store.Filter.Describe())
	lines = append(lines, header)

	st := core.ComputeStats(m.store.Items)
	lines = append(lines, ui.StatsLine(st))
	lines = append(lines, ui.Muted.Render(ui.ProgressBar(st.Completed, st.Total, 24)))
	lines = append(lines, "")

	visible := make(map[string]bool)
	for _, it := range m.store.Visible() {
		visible[it.ID] = true
	}
	shown := 0
	for i, it := range m.store.Items {
		if !visible[it.ID] {
			continue
		}
		lines = append(lines, ui.ItemLine(i+1, it))
		shown++
	}
	if shown == 0 {
		lines = append(lines, ui.Muted.Render("(no tasks here)"))
	}
	lines = append(lines, "")

	start := len(m.history) - historyShown
	if start < 0 {
		start = 0
	}
	for _, ex := range m.history[start:] {
		if ex.fromUser {
			lines = append(lines, ui.Muted.Render("you: ")+ex.text)
		} else {
			lines = append(lines, ui.Success.Render("prata: ")+ex.text)
		}
	}
	if len(m.history) > 0 {
		lines = append(lines, "")
	}

	if m.busy {
		lines = append(lines, fmt.Sprintf("%s thinking...", m.spin.View()))
	} else {
		lines = append(lines, m.input.View())
	}
	lines = append(lines, ui.Help.Render("enter: send · esc: quit"))

	return ui.Panel(lines)
}
