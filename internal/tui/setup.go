// ABOUTME: Interactive TUI wizard for configuring the standup journal.
// ABOUTME: 2-step bubbletea model collecting the journal file path and list order.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// DefaultJournalPath is the journal location offered when the path is left blank.
const DefaultJournalPath = "~/.standup.json"

const (
	orderOldest = "oldest"
	orderNewest = "newest"
)

// Step represents the current wizard step.
type Step int

const (
	StepPath Step = iota
	StepOrder
	StepValidating
	StepDone
	StepFailed
)

// validationResultMsg carries the result of an async validation attempt.
type validationResultMsg struct {
	err error
}

// ValidateFn is the function signature for journal validation.
type ValidateFn func(ctx context.Context, path string) error

// cancelHolder shares a cancel function across bubbletea model copies.
// This MUST be stored as a pointer field on SetupModel so that value-receiver
// methods (required by tea.Model) can store the cancel func and have it
// visible to all copies of the model.
type cancelHolder struct {
	cancel context.CancelFunc
}

// SetupModel is the bubbletea model for the setup wizard.
type SetupModel struct {
	step          Step
	inputs        [2]textinput.Model
	spinner       spinner.Model
	validateFn    ValidateFn
	cancelCtx     *cancelHolder
	validationErr error
	quitting      bool
}

var (
	titleStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99"))
	brandStyle   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	stepStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
	successStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("82"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	promptStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))
)

// NewSetupModel creates a new setup wizard model, pre-filling with existing config values.
func NewSetupModel(path string, newestFirst bool) SetupModel {
	pathInput := textinput.New()
	pathInput.Placeholder = DefaultJournalPath
	pathInput.Focus()
	pathInput.Width = 50
	if path != "" {
		pathInput.SetValue(path)
	}

	orderInput := textinput.New()
	orderInput.Placeholder = orderOldest
	orderInput.Width = 10
	if newestFirst {
		orderInput.SetValue(orderNewest)
	}

	s := spinner.New()
	s.Spinner = spinner.Dot

	return SetupModel{
		step:       StepPath,
		inputs:     [2]textinput.Model{pathInput, orderInput},
		spinner:    s,
		validateFn: ValidateJournal,
		cancelCtx:  &cancelHolder{},
	}
}

// Init implements tea.Model.
func (m SetupModel) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m SetupModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.Type {
		case tea.KeyCtrlC, tea.KeyEscape:
			m.quitting = true
			if m.cancelCtx.cancel != nil {
				m.cancelCtx.cancel()
			}
			return m, tea.Quit
		}

		switch m.step {
		case StepPath, StepOrder:
			return m.updateInput(msg)
		case StepFailed:
			return m.updateFailed(msg)
		}

	case validationResultMsg:
		m.cancelCtx.cancel = nil
		if msg.err == nil {
			m.step = StepDone
			return m, tea.Quit
		}
		m.validationErr = msg.err
		m.step = StepFailed
		return m, nil

	case spinner.TickMsg:
		if m.step == StepValidating {
			var cmd tea.Cmd
			m.spinner, cmd = m.spinner.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m SetupModel) updateInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyEnter {
		idx := int(m.step)

		if m.step == StepPath && strings.TrimSpace(m.inputs[0].Value()) == "" {
			m.inputs[0].SetValue(DefaultJournalPath)
		}

		// Don't advance on an order other than oldest/newest
		if m.step == StepOrder {
			val := strings.ToLower(strings.TrimSpace(m.inputs[1].Value()))
			if val == "" {
				val = orderOldest
			}
			if val != orderOldest && val != orderNewest {
				return m, nil
			}
			m.inputs[1].SetValue(val)
		}

		m.inputs[idx].Blur()

		switch m.step {
		case StepPath:
			m.step = StepOrder
			m.inputs[1].Focus()
			return m, textinput.Blink
		case StepOrder:
			m.step = StepValidating
			return m, tea.Batch(m.startValidation(), m.spinner.Tick)
		}
	}

	// Forward to the active input
	idx := int(m.step)
	var cmd tea.Cmd
	m.inputs[idx], cmd = m.inputs[idx].Update(msg)
	return m, cmd
}

func (m SetupModel) updateFailed(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.Type == tea.KeyRunes {
		switch msg.Runes[0] {
		case 'r':
			m.step = StepValidating
			m.validationErr = nil
			return m, tea.Batch(m.startValidation(), m.spinner.Tick)
		case 's':
			m.step = StepDone
			return m, tea.Quit
		case 'q':
			m.quitting = true
			return m, tea.Quit
		}
	}
	return m, nil
}

func (m SetupModel) startValidation() tea.Cmd {
	ctx, cancel := context.WithCancel(context.Background())
	m.cancelCtx.cancel = cancel
	path := m.inputs[0].Value()
	fn := m.validateFn
	return func() tea.Msg {
		return validationResultMsg{err: fn(ctx, path)}
	}
}

// View implements tea.Model.
func (m SetupModel) View() string {
	var b strings.Builder

	b.WriteString("\n")
	b.WriteString(brandStyle.Render("   STANDUP"))
	b.WriteString(titleStyle.Render(" - Setup"))
	b.WriteString("\n\n")
	b.WriteString("Choose where your standup journal lives.\n\n")

	switch m.step {
	case StepPath:
		b.WriteString(stepStyle.Render("Step 1 of 2: Journal file"))
		b.WriteString("\n")
		b.WriteString(promptStyle.Render("(press Enter for default)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[0].View())
		b.WriteString("\n")

	case StepOrder:
		b.WriteString(fmt.Sprintf("  Journal file: %s\n\n", m.inputs[0].Value()))
		b.WriteString(stepStyle.Render("Step 2 of 2: List order (oldest/newest)"))
		b.WriteString("\n")
		b.WriteString(m.inputs[1].View())
		b.WriteString("\n")

	case StepValidating:
		b.WriteString(fmt.Sprintf("  Journal file: %s\n", m.inputs[0].Value()))
		b.WriteString(fmt.Sprintf("  List order:   %s\n\n", m.order()))
		b.WriteString(m.spinner.View())
		b.WriteString(" Checking journal...")
		b.WriteString("\n")

	case StepDone:
		b.WriteString(successStyle.Render("✓ Journal ready!"))
		b.WriteString("\n")

	case StepFailed:
		errMsg := "unknown error"
		if m.validationErr != nil {
			errMsg = m.validationErr.Error()
		}
		b.WriteString(errorStyle.Render(fmt.Sprintf("✗ Validation failed: %s", errMsg)))
		b.WriteString("\n\n")
		b.WriteString(promptStyle.Render("[r]etry  [s]ave anyway  [q]uit"))
		b.WriteString("\n")
	}

	return b.String()
}

func (m SetupModel) order() string {
	if m.inputs[1].Value() == orderNewest {
		return orderNewest
	}
	return orderOldest
}

// Result returns the entered journal path and whether lists show newest first.
func (m SetupModel) Result() (path string, newestFirst bool) {
	return m.inputs[0].Value(), m.order() == orderNewest
}

// ShouldSave returns true if the wizard completed (via validation success or
// "save anyway") and the user did not cancel with Ctrl+C, Escape, or 'q'.
func (m SetupModel) ShouldSave() bool {
	return m.step == StepDone && !m.quitting
}
