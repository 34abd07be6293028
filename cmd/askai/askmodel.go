package main

import (
	"context"
	"time"

	"github.com/askai-cli/askai/pkg/config"
	"github.com/askai-cli/askai/pkg/openaiclient"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
)

// askModel is the bubbletea model shown while a completion request is in
// flight. It quits as soon as the answers (or an error) arrive; the final
// output is printed after the program exits so it stays in the scrollback.
type askModel struct {
	ctx      context.Context
	client   *openaiclient.Client
	cfg      config.Config
	question string

	spin   spinner.Model
	status string
	width  int
	start  time.Time

	answers  []string
	duration time.Duration
	err      error
	canceled bool
}

func newAskModel(ctx context.Context, client *openaiclient.Client, cfg config.Config, question string) askModel {
	s := spinner.New(
		spinner.WithSpinner(spinner.Spinner{Frames: spinnerFrames, FPS: time.Second / 10}),
		spinner.WithStyle(spinnerStyle),
	)

	return askModel{
		ctx:      ctx,
		client:   client,
		cfg:      cfg,
		question: question,
		spin:     s,
		status:   randomThinkingMessage(),
		start:    time.Now(),
	}
}

func (m askModel) Init() tea.Cmd {
	// Start the request in a background goroutine via tea.Cmd.
	ctx, client, cfg, question, start := m.ctx, m.client, m.cfg, m.question, m.start
	askCmd := func() tea.Msg {
		answers, err := client.Complete(ctx, cfg, question)
		return answersMsg{answers: answers, duration: time.Since(start), err: err}
	}

	return tea.Batch(m.spin.Tick, askCmd)
}

func (m askModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		return m, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			m.canceled = true
			return m, tea.Quit
		}
		return m, nil

	case answersMsg:
		m.answers = msg.answers
		m.duration = msg.duration
		m.err = msg.err
		return m, tea.Quit

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spin, cmd = m.spin.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m askModel) View() string {
	if m.answers != nil || m.err != nil || m.canceled {
		return ""
	}

	status := m.status
	if m.width > 4 {
		status = runewidth.Truncate(status, m.width-4, "...")
	}

	return m.spin.View() + " " + dimStyle.Render(status)
}
