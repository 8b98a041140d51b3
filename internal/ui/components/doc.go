// Package components provides the themeable building blocks the
// calendar widgets are drawn from: day cells, week rows, the month
// view, and the overlay surfaces (dropdown menu, tooltip).
//
// Styling is data-driven. A Theme carries a semantic colour palette, a
// border set, typography presets and a variant registry that maps day
// cell presentation flags to styling strategies. Components never hold
// colours themselves; they compute their style from the theme they are
// rendered with, so the same widget tree renders correctly under any
// theme and themes can be swapped per render.
//
//	view := components.NewMonthView(grid, cfg).
//		WithWeekNumbers(true)
//	out := view.ViewWithContext(components.RenderContext{Theme: components.DarkTheme()})
package components
