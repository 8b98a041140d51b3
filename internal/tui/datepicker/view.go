package datepicker

import (
	"fmt"
	"strings"

	"github.com/alexisbeaulieu97/almanac/internal/caldate"
	"github.com/alexisbeaulieu97/almanac/internal/cellstate"
	"github.com/alexisbeaulieu97/almanac/internal/event"
	"github.com/alexisbeaulieu97/almanac/internal/selectable"
	"github.com/alexisbeaulieu97/almanac/internal/ui/components"
)

// View implements tea.Model.
func (m Model) View() string {
	ctx := components.RenderContext{Theme: m.theme, MaxWidth: m.width}

	view := components.NewMonthView(m.year, m.month, m.cfg, m.classify).
		WithWeekNumbers(m.showWeekNumbers).
		WithFocus(&m.focus)

	stack := components.VStack(
		view,
		components.MutedText(m.summaryText()),
	)
	if badges := m.eventBadges(); badges != nil {
		stack.Add(badges)
	}
	stack.Add(components.NewText(m.help.View(m.keys)))

	return stack.ViewWithContext(ctx)
}

// classify feeds the cell classifier with the picker's state.
func (m Model) classify(d caldate.Date) cellstate.FlagSet {
	return cellstate.Classify(d, cellstate.Input{
		Selection:        m.sel,
		Hover:            m.hover,
		Constraints:      m.constraints,
		DisplayedMonth:   m.month,
		Mode:             m.mode,
		Disabled:         m.disabled,
		ShowNearbyMonth:  m.showNearby,
		NearbySelectable: m.nearbySelectable,
		Events:           m.events,
		Now:              m.now,
	})
}

// effectiveConstraints mirrors the classifier's month restriction so
// commit and render agree on what is selectable.
func (m Model) effectiveConstraints() selectable.Constraints {
	c := m.constraints
	if m.showNearby && !m.nearbySelectable {
		c.RestrictToCurrentMonth = true
	}
	return c
}

// eventBadges renders one badge per marker attached to the focused day,
// or nil when the day carries none.
func (m Model) eventBadges() *components.Stack {
	markers := event.MarkersFor(m.focus, m.events)
	if len(markers) == 0 {
		return nil
	}

	row := components.HStack().WithGap(1)
	for _, mk := range markers {
		label := mk.Label
		if label == "" {
			label = mk.Type
		}
		if label == "" {
			label = "event"
		}
		row.Add(components.NewBadge(label).
			WithVariant(components.BadgeVariantForEvent(mk.Type)))
	}
	return row
}

func (m Model) summaryText() string {
	switch {
	case m.sel.IsEmpty():
		return "no selection"
	default:
		if start, end, ok := m.sel.Bounds(); ok {
			return fmt.Sprintf("%s .. %s", start, end)
		}
		if d, ok := m.sel.Date(); ok {
			return d.String()
		}
		if start, ok := m.sel.Start(); ok {
			return fmt.Sprintf("%s .. (picking)", start)
		}
		dates := m.sel.Dates()
		parts := make([]string, len(dates))
		for i, d := range dates {
			parts[i] = d.String()
		}
		return strings.Join(parts, ", ")
	}
}
