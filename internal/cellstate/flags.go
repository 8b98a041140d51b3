// Package cellstate derives the visual state of a calendar cell from the
// current selection, hover and constraints. The output is presentation
// only; it never feeds back into selection state.
package cellstate

import "strings"

// Flag is a single visual aspect of a cell. Flags are not exclusive:
// a cell is commonly Today, Selectable and HasEvents at once.
type Flag uint16

const (
	Selected Flag = 1 << iota
	FirstSelected
	WithinSelected
	LastSelected
	FirstHovered
	WithinHovered
	LastHovered
	Today
	Selectable
	Unselectable
	Invisible
	Nearby
	HasEvents
)

// flagNames follow the CSS-style class tokens the flags originated
// from. Themes key cell styling off these flags, so the order here is
// also the order styles are applied in.
var flagNames = []struct {
	flag Flag
	name string
}{
	{Selected, "is-selected"},
	{FirstSelected, "is-first-selected"},
	{WithinSelected, "is-within-selected"},
	{LastSelected, "is-last-selected"},
	{FirstHovered, "is-first-hovered"},
	{WithinHovered, "is-within-hovered"},
	{LastHovered, "is-last-hovered"},
	{Today, "is-today"},
	{Selectable, "is-selectable"},
	{Unselectable, "is-unselectable"},
	{Invisible, "is-invisible"},
	{Nearby, "is-nearby"},
	{HasEvents, "has-events"},
}

// String returns the class token for a single flag.
func (f Flag) String() string {
	for _, entry := range flagNames {
		if entry.flag == f {
			return entry.name
		}
	}
	return "unknown"
}

// FlagSet is a combination of Flags.
type FlagSet uint16

// Has reports whether every flag in f is present.
func (s FlagSet) Has(f Flag) bool {
	return s&FlagSet(f) == FlagSet(f)
}

// With returns the set with f added.
func (s FlagSet) With(f Flag) FlagSet {
	return s | FlagSet(f)
}

// Flags returns the individual flags in declaration order.
func (s FlagSet) Flags() []Flag {
	var out []Flag
	for _, entry := range flagNames {
		if s.Has(entry.flag) {
			out = append(out, entry.flag)
		}
	}
	return out
}

// String renders the set as space-separated class tokens, in
// declaration order.
func (s FlagSet) String() string {
	var tokens []string
	for _, entry := range flagNames {
		if s.Has(entry.flag) {
			tokens = append(tokens, entry.name)
		}
	}
	return strings.Join(tokens, " ")
}
