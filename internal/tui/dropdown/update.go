package dropdown

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/almanac/internal/overlay"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.MouseMsg:
		return m.handleMouse(msg)
	case confirmOpenMsg:
		return m.apply(m.machine.Confirm(msg.gen))
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC:
		m.done = true
		m.scope.Close()
		return m, tea.Quit

	case tea.KeyEsc:
		return m.apply(m.machine.RequestClose(overlay.CloseEscape))

	case tea.KeyTab:
		if m.machine.Active() {
			// Focus stays trapped in the open menu.
			m.trap.Next()
			return m, nil
		}
		return m, nil

	case tea.KeyShiftTab:
		if m.machine.Active() {
			m.trap.Prev()
			return m, nil
		}
		return m, nil

	case tea.KeyUp:
		if m.machine.Active() {
			m.trap.Prev()
		}
		return m, nil

	case tea.KeyDown:
		if m.machine.Active() {
			m.trap.Next()
		}
		return m, nil

	case tea.KeyEnter, tea.KeySpace:
		if m.machine.Active() {
			return m.choose(m.focusedItem())
		}
		return m.apply(m.machine.Trigger(overlay.TriggerClick))

	default:
		if msg.Type == tea.KeyRunes && string(msg.Runes) == "q" {
			m.done = true
			m.scope.Close()
			return m, tea.Quit
		}
		return m, nil
	}
}

func (m Model) handleMouse(msg tea.MouseMsg) (tea.Model, tea.Cmd) {
	if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
		return m, nil
	}
	if m.hitTrigger(msg.X, msg.Y) {
		return m.apply(m.machine.Trigger(overlay.TriggerClick))
	}
	if m.machine.Active() {
		if idx, ok := m.hitItem(msg.X, msg.Y); ok {
			return m.choose(idx)
		}
	}
	// Anywhere else counts as an outside interaction.
	return m.apply(m.machine.RequestClose(overlay.CloseOutside))
}

// choose commits the item and closes the overlay.
func (m Model) choose(index int) (tea.Model, tea.Cmd) {
	if index < 0 || index >= len(m.items) {
		return m, nil
	}
	item := m.items[index]
	if item.Divider || item.Disabled {
		return m, nil
	}
	m.selected = index

	updated, closeCmd := m.apply(m.machine.RequestClose(overlay.CloseProgrammatic))
	model := updated.(Model)
	changed := func() tea.Msg {
		return ChangedMsg{Value: item.Value, Label: item.Label}
	}
	if closeCmd == nil {
		return model, changed
	}
	return model, tea.Batch(changed, closeCmd)
}

// apply folds a machine transition into the model, scheduling pending
// opens and announcing active-state changes.
func (m Model) apply(tr overlay.Transition) (tea.Model, tea.Cmd) {
	var cmds []tea.Cmd

	if !tr.Schedule.Zero() {
		cmds = append(cmds, confirmOpenCmd(tr.Schedule))
	}
	if tr.Changed {
		active := tr.Phase == overlay.Open
		switch tr.Phase {
		case overlay.Open:
			m.trap.Focus(0)
		case overlay.Idle:
			m.scope.Close()
			m.scope = overlay.NewScope()
		}
		if tr.Phase != overlay.PendingOpen {
			cmds = append(cmds, func() tea.Msg { return ActiveChangedMsg{Active: active} })
		}
	}

	if len(cmds) == 0 {
		return m, nil
	}
	return m, tea.Batch(cmds...)
}
