package ui

import (
	"fmt"
	"io"
	"os"
	"sync"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"golang.org/x/term"
)

var spinnerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorLime400))

// Spinner shows progress on stderr while a transaction is pending.
// On a non-TTY stderr it prints each message once instead of animating.
type Spinner struct {
	mu      sync.Mutex
	message string
	program *tea.Program
	running bool
	isTTY   bool
	output  io.Writer
	done    chan struct{}
}

type spinnerModel struct {
	spinner spinner.Model
	message string
	quit    bool
}

type msgUpdate string
type msgQuit struct{}

func newSpinnerModel(message string) spinnerModel {
	s := spinner.New()
	s.Spinner = spinner.MiniDot
	s.Style = spinnerStyle
	return spinnerModel{
		spinner: s,
		message: message,
	}
}

func (m spinnerModel) Init() tea.Cmd {
	return m.spinner.Tick
}

func (m spinnerModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case msgUpdate:
		m.message = string(msg)
		return m, nil
	case msgQuit:
		m.quit = true
		return m, tea.Quit
	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	default:
		return m, nil
	}
}

func (m spinnerModel) View() string {
	if m.quit {
		return ""
	}
	return fmt.Sprintf("%s %s", m.spinner.View(), DimStyle.Render(m.message))
}

func NewSpinner() *Spinner {
	return &Spinner{
		isTTY:  term.IsTerminal(int(os.Stderr.Fd())),
		output: os.Stderr,
	}
}

// Start shows message. Calling Start on a running spinner only swaps the message.
func (s *Spinner) Start(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if s.running {
		s.program.Send(msgUpdate(message))
		return
	}

	if !s.isTTY {
		fmt.Fprintln(s.output, DimStyle.Render(message))
		return
	}

	s.running = true
	s.done = make(chan struct{})
	s.program = tea.NewProgram(newSpinnerModel(message), tea.WithOutput(s.output), tea.WithInput(nil))

	go func(p *tea.Program, done chan struct{}) {
		_, _ = p.Run()
		close(done)
	}(s.program, s.done)
}

func (s *Spinner) Update(message string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.message = message
	if s.running {
		s.program.Send(msgUpdate(message))
		return
	}
	if !s.isTTY {
		fmt.Fprintln(s.output, DimStyle.Render(message))
	}
}

// Stop blocks until the spinner line has been cleared.
func (s *Spinner) Stop() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.running = false
	program, done := s.program, s.done
	s.program = nil
	s.mu.Unlock()

	program.Send(msgQuit{})
	<-done
}

// WithSpinnerResult runs fn while a spinner shows message.
func WithSpinnerResult[T any](message string, fn func() (T, error)) (T, error) {
	s := NewSpinner()
	s.Start(message)
	defer s.Stop()
	return fn()
}
