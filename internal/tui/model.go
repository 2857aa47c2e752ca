// Package tui renders the temperature and Fibonacci exercise as a terminal
// form. Malformed answers are reported inline and the field can be edited
// again, so the form never fails on bad input.
package tui

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	apperrors "github.com/agbru/drills/internal/errors"
	"github.com/agbru/drills/internal/fibonacci"
	"github.com/agbru/drills/internal/format"
	"github.com/agbru/drills/internal/numeric"
)

// ErrAborted is returned by Run when the user leaves the form before
// submitting both answers.
var ErrAborted = fmt.Errorf("form aborted: %w", context.Canceled)

const (
	fieldFahrenheit = iota
	fieldIndex
	fieldCount
)

// Result holds the submitted answers and what was computed from them.
type Result struct {
	Fahrenheit float64
	Celsius    float64
	N          int64
	Fibonacci  int64
	// Rejected counts answers that failed to parse or validate.
	Rejected int
}

// Model is the bubbletea model of the form.
type Model struct {
	keys   KeyMap
	help   help.Model
	styles Styles
	inputs [fieldCount]textinput.Model
	focus  int

	err     error
	partial Result
	done    bool
	aborted bool
}

// NewModel returns a form focused on the temperature field.
func NewModel() Model {
	m := Model{
		keys:   DefaultKeyMap(),
		help:   help.New(),
		styles: NewStyles(),
	}
	m.inputs[fieldFahrenheit] = newInput("212", "Temperature in fahrenheit: ")
	m.inputs[fieldIndex] = newInput("10", "Fibonacci index: ")
	m.inputs[fieldFahrenheit].Focus()
	m.applyFocusStyles()
	return m
}

func newInput(placeholder, prompt string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.Prompt = prompt
	ti.CharLimit = 32
	return ti
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(msg, m.keys.Quit):
			m.aborted = true
			return m, tea.Quit
		case key.Matches(msg, m.keys.Submit):
			return m.submit()
		case key.Matches(msg, m.keys.Next):
			return m, m.setFocus((m.focus + 1) % fieldCount)
		case key.Matches(msg, m.keys.Prev):
			return m, m.setFocus((m.focus + fieldCount - 1) % fieldCount)
		}
	}

	var cmd tea.Cmd
	m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
	return m, cmd
}

// submit validates the focused field. The form completes once both fields
// hold valid answers.
func (m Model) submit() (tea.Model, tea.Cmd) {
	if err := m.parseField(m.focus); err != nil {
		m.err = err
		m.partial.Rejected++
		return m, nil
	}
	m.err = nil
	for i := range m.inputs {
		if err := m.parseField(i); err != nil {
			return m, m.setFocus(i)
		}
	}
	m.done = true
	return m, tea.Quit
}

// parseField parses field i into m.partial.
func (m *Model) parseField(i int) error {
	raw := strings.TrimSpace(m.inputs[i].Value())
	switch i {
	case fieldFahrenheit:
		f, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return &apperrors.ParseError{Field: "temperature", Input: raw, Err: err}
		}
		m.partial.Fahrenheit = f
		m.partial.Celsius = numeric.FahrenheitToCelsius(f)
	case fieldIndex:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return &apperrors.ParseError{Field: "n", Input: raw, Err: err}
		}
		v, err := fibonacci.Iterative(n)
		if err != nil {
			return err
		}
		m.partial.N, m.partial.Fibonacci = n, v
	}
	return nil
}

func (m *Model) setFocus(i int) tea.Cmd {
	m.inputs[m.focus].Blur()
	m.focus = i
	cmd := m.inputs[m.focus].Focus()
	m.applyFocusStyles()
	return cmd
}

func (m *Model) applyFocusStyles() {
	for i := range m.inputs {
		if i == m.focus {
			m.inputs[i].PromptStyle = m.styles.Focused
		} else {
			m.inputs[i].PromptStyle = m.styles.Label
		}
	}
}

// View implements tea.Model.
func (m Model) View() string {
	var b strings.Builder
	b.WriteString(m.styles.Title.Render("Temperature & Fibonacci"))
	b.WriteString("\n\n")

	if m.done {
		fmt.Fprintf(&b, "Temperature in celsius is: %s\n", m.styles.Result.Render(format.Degrees(m.partial.Celsius)))
		fmt.Fprintf(&b, "%s Fibonacci number is: %s", format.Ordinal(m.partial.N),
			m.styles.Result.Render(strconv.FormatInt(m.partial.Fibonacci, 10)))
		return m.styles.Panel.Render(b.String()) + "\n"
	}

	for i := range m.inputs {
		b.WriteString(m.inputs[i].View())
		b.WriteString("\n")
	}
	if m.err != nil {
		b.WriteString("\n")
		b.WriteString(m.styles.Error.Render(m.err.Error()))
		b.WriteString("\n")
	}
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return m.styles.Panel.Render(b.String()) + "\n"
}

// Done reports whether both answers were accepted.
func (m Model) Done() bool { return m.done }

// Result returns the answers collected so far.
func (m Model) Result() Result { return m.partial }

// Run shows the form on out, reading keys from in, until it is submitted or
// abandoned.
func Run(ctx context.Context, in io.Reader, out io.Writer) (Result, error) {
	p := tea.NewProgram(NewModel(), tea.WithContext(ctx), tea.WithInput(in), tea.WithOutput(out))
	final, err := p.Run()
	if ctxErr := ctx.Err(); ctxErr != nil {
		return Result{}, ctxErr
	}
	if err != nil {
		return Result{}, apperrors.WrapError(err, "running form")
	}
	m, ok := final.(Model)
	if !ok || !m.done {
		return Result{}, ErrAborted
	}
	return m.partial, nil
}
