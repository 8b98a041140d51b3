package datepicker

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/calmath"
	"github.com/alexisbeaulieu97/almanac/internal/keynav"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/selection"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.done = true
		return m, tea.Quit

	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
		return m, nil
	}

	if m.disabled {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.PrevMonth):
		return m.pageMonth(-1)
	case key.Matches(msg, m.keys.NextMonth):
		return m.pageMonth(1)
	case key.Matches(msg, m.keys.Today):
		return m.moveFocus(caldate.FromTime(m.now()))
	}

	res := keynav.Handle(navKey(msg), m.focus, m.constraints, m.month)
	switch res.Action {
	case keynav.ActionCommit:
		return m.commit()
	case keynav.ActionMove:
		return m.moveFocus(res.Target)
	case keynav.ActionPassthrough:
		// Tab keeps its focus-traversal meaning for the host program.
		return m, nil
	default:
		return m, nil
	}
}

// navKey normalizes a bubbletea key event for the navigator.
func navKey(msg tea.KeyMsg) keynav.Key {
	switch msg.Type {
	case tea.KeyEnter:
		return keynav.KeyEnter
	case tea.KeySpace:
		return keynav.KeySpace
	case tea.KeyLeft:
		return keynav.KeyLeft
	case tea.KeyRight:
		return keynav.KeyRight
	case tea.KeyUp:
		return keynav.KeyUp
	case tea.KeyDown:
		return keynav.KeyDown
	case tea.KeyTab:
		return keynav.KeyTab
	case tea.KeyRunes:
		if string(msg.Runes) == " " {
			return keynav.KeySpace
		}
	}
	return keynav.KeyOther
}

// commit applies Enter or Space on the focused day.
func (m Model) commit() (tea.Model, tea.Cmd) {
	if !selectable.IsSelectable(m.focus, m.effectiveConstraints(), m.month) {
		return m, nil
	}

	switch m.mode {
	case selection.ModeRange:
		if m.sel.RangeInProgress() {
			start, _ := m.sel.Start()
			m.sel = selection.Range(start, m.focus)
			m.hover = m.hover.Clear()
		} else {
			m.sel = selection.RangeStart(m.focus)
		}
	case selection.ModeMultiple:
		m.sel = m.sel.Toggle(m.focus)
	default:
		m.sel = selection.Single(m.focus)
	}

	sel := m.sel
	return m, func() tea.Msg { return SelectedMsg{Selection: sel} }
}

// moveFocus applies a new focus target and follows it across month
// boundaries.
func (m Model) moveFocus(target caldate.Date) (tea.Model, tea.Cmd) {
	if target.Equal(m.focus) {
		return m, nil
	}
	m.focus = target

	cmds := []tea.Cmd{
		func() tea.Msg { return FocusChangedMsg{Date: target} },
	}
	if target.Year != m.year || target.Month != m.month {
		m.year, m.month = target.Year, target.Month
		year, month := m.year, m.month
		cmds = append(cmds, func() tea.Msg { return MonthChangedMsg{Year: year, Month: month} })
	}
	if m.mode == selection.ModeRange && m.sel.RangeInProgress() {
		m.hover = selection.HoverTo(target)
		cmds = append(cmds, func() tea.Msg { return RangeHoverMsg{End: target} })
	}
	return m, tea.Batch(cmds...)
}

// pageMonth shifts the displayed month and clamps focus into it.
func (m Model) pageMonth(months int) (tea.Model, tea.Cmd) {
	first := caldate.New(m.year, m.month, 1).AddMonths(months)
	m.year, m.month = first.Year, first.Month

	day := m.focus.Day
	if max := calmath.DaysInMonth(m.year, m.month); day > max {
		day = max
	}
	m.focus = caldate.New(m.year, m.month, day)

	year, month, focus := m.year, m.month, m.focus
	return m, tea.Batch(
		func() tea.Msg { return MonthChangedMsg{Year: year, Month: month} },
		func() tea.Msg { return FocusChangedMsg{Date: focus} },
	)
}
