package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/wippyai/jvm-runtime/agent"
	"github.com/wippyai/jvm-runtime/emulator"
	"github.com/wippyai/jvm-runtime/event"
	"github.com/wippyai/jvm-runtime/java"
)

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4")).
			Padding(0, 1)

	kindStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#98FB98"))

	selectedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FAFAFA")).
			Background(lipgloss.Color("#7D56F4"))

	deliveryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#90EE90"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FF6B6B"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#666666"))
)

type modelState int

const (
	stateSelectKind modelState = iota
	stateInputCount
	stateShowLog
)

type interactiveModel struct {
	err      error
	em       *emulator.Emulator
	kinds    []event.Kind
	log      []string
	input    textinput.Model
	selected int
	state    modelState
}

func newInteractiveModel() (*interactiveModel, error) {
	m := &interactiveModel{
		em:    emulator.New(),
		kinds: event.Kinds(),
		state: stateSelectKind,
	}

	a := agent.New(m.em.Environment())
	a.OnVMInit(func() { m.record("vm init") })
	a.OnVMStart(func() { m.record("vm start") })
	a.OnVMDeath(func() { m.record("vm death") })
	a.OnMethodEntry(func(ev event.MethodInvocation) {
		m.record(fmt.Sprintf("method entry %s%s on %s", ev.Method.Signature.Name, ev.Method.Signature.Signature, ev.Thread.Name))
	})
	a.OnMethodExit(func(ev event.MethodInvocation) {
		m.record(fmt.Sprintf("method exit %s%s", ev.Method.Signature.Name, ev.Method.Signature.Signature))
	})
	a.OnThreadStart(func(th java.Thread) { m.record("thread start " + th.Name) })
	a.OnThreadEnd(func(th java.Thread) { m.record("thread end " + th.Name) })
	a.OnException(func(ev event.ExceptionEvent) { m.record("exception " + ev.Class.Signature.Raw) })
	a.OnExceptionCatch(func() { m.record("exception catch") })
	a.OnMonitorWait(func(ev event.MonitorEvent) { m.record("monitor wait " + ev.Thread.Name) })
	a.OnMonitorWaited(func(ev event.MonitorEvent) { m.record("monitor waited " + ev.Thread.Name) })
	a.OnMonitorContendedEnter(func(ev event.MonitorEvent) { m.record("monitor contended enter " + ev.Thread.Name) })
	a.OnMonitorContendedEntered(func(ev event.MonitorEvent) { m.record("monitor contended entered " + ev.Thread.Name) })
	a.OnFieldAccess(func(ev event.FieldEvent) { m.record(fmt.Sprintf("field access 0x%x", uintptr(ev.Field))) })
	a.OnFieldModification(func(ev event.FieldEvent) { m.record(fmt.Sprintf("field modification 0x%x", uintptr(ev.Field))) })
	a.OnGarbageCollectionStart(func() { m.record("gc start") })
	a.OnGarbageCollectionFinish(func() { m.record("gc finish") })
	a.OnVMObjectAlloc(func(ev event.ObjectAllocation) {
		m.record(fmt.Sprintf("object alloc %s (%d bytes)", ev.Class.Signature.Raw, ev.Size))
	})
	a.OnClassFileLoad(func(ev event.ClassFileLoadData) []byte {
		m.record(fmt.Sprintf("class file load %s (%d bytes)", ev.ClassName, len(ev.Data)))
		return nil
	})

	if err := a.Update(); err != nil {
		return nil, err
	}
	return m, nil
}

func (m *interactiveModel) record(line string) {
	m.log = append(m.log, line)
	if len(m.log) > 20 {
		m.log = m.log[len(m.log)-20:]
	}
}

func (m *interactiveModel) Init() tea.Cmd {
	return nil
}

func (m *interactiveModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit

		case "up", "k":
			if m.state == stateSelectKind && m.selected > 0 {
				m.selected--
			}

		case "down", "j":
			if m.state == stateSelectKind && m.selected < len(m.kinds)-1 {
				m.selected++
			}

		case "enter":
			switch m.state {
			case stateSelectKind:
				m.input = textinput.New()
				m.input.Placeholder = "1"
				m.input.Prompt = "times: "
				m.input.Width = 10
				m.input.Focus()
				m.state = stateInputCount

			case stateInputCount:
				n, err := strconv.Atoi(m.input.Value())
				if err != nil || n < 1 {
					n = 1
				}
				for i := 0; i < n; i++ {
					raise(m.em, m.kinds[m.selected])
				}
				m.state = stateShowLog

			case stateShowLog:
				m.state = stateSelectKind
			}

		case "c":
			if m.state == stateShowLog {
				m.log = nil
			}

		case "esc":
			if m.state != stateSelectKind {
				m.state = stateSelectKind
			}
		}
	}

	if m.state == stateInputCount {
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}

	return m, nil
}

func (m *interactiveModel) View() string {
	if m.err != nil {
		return errorStyle.Render(fmt.Sprintf("Error: %v\n\nPress q to quit.", m.err))
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("Agent Lab"))
	b.WriteString(" emulated backend\n\n")

	switch m.state {
	case stateSelectKind:
		b.WriteString("Select an event to fire:\n\n")
		for i, k := range m.kinds {
			cursor := "  "
			line := fmt.Sprintf("%s (%d)", k, uint32(k))
			if i == m.selected {
				b.WriteString(selectedStyle.Render("> " + line))
			} else {
				b.WriteString(cursor + kindStyle.Render(line))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("↑/↓ select • enter fire • q quit"))

	case stateInputCount:
		b.WriteString(fmt.Sprintf("Firing %s\n\n", kindStyle.Render(m.kinds[m.selected].String())))
		b.WriteString(m.input.View())
		b.WriteString("\n\n")
		b.WriteString(helpStyle.Render("enter fire • esc back"))

	case stateShowLog:
		b.WriteString("Deliveries:\n\n")
		if len(m.log) == 0 {
			b.WriteString(helpStyle.Render("(none — callback registered but notification may be off)"))
		}
		for _, line := range m.log {
			b.WriteString(deliveryStyle.Render(line))
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(helpStyle.Render("enter continue • c clear • q quit"))
	}

	return b.String()
}

func runInteractive() error {
	m, err := newInteractiveModel()
	if err != nil {
		return err
	}
	p := tea.NewProgram(m, tea.WithAltScreen())
	_, err = p.Run()
	return err
}
