// Package overlay drives the open/close lifecycle, placement and focus
// containment of flyout surfaces (dropdown menus, tooltips).
package overlay

import (
	"strings"
	"time"
)

// Trigger is an input event kind that may open an overlay.
type Trigger int

const (
	TriggerClick Trigger = iota
	TriggerHover
	TriggerFocus
	TriggerContextMenu
)

// ParseTrigger converts a config token into a Trigger.
func ParseTrigger(s string) (Trigger, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "click":
		return TriggerClick, true
	case "hover":
		return TriggerHover, true
	case "focus":
		return TriggerFocus, true
	case "contextmenu":
		return TriggerContextMenu, true
	default:
		return TriggerClick, false
	}
}

// CloseReason identifies what asked an open overlay to close.
type CloseReason int

const (
	// CloseToggle is the trigger firing again while open.
	CloseToggle CloseReason = iota
	// CloseOutside is a pointer interaction outside the overlay.
	CloseOutside
	// CloseEscape is the Escape key.
	CloseEscape
	// CloseProgrammatic is an explicit close from the host.
	CloseProgrammatic
)

// ClosePolicy selects which close reasons are honored. The zero value
// honors none; AllowAll is the common default.
type ClosePolicy struct {
	Toggle  bool
	Outside bool
	Escape  bool
}

// AllowAll honors every close reason.
func AllowAll() ClosePolicy {
	return ClosePolicy{Toggle: true, Outside: true, Escape: true}
}

// ParseClosePolicy builds a policy from config tokens ("escape",
// "outside"). An empty list means close on everything.
func ParseClosePolicy(tokens []string) (ClosePolicy, bool) {
	if len(tokens) == 0 {
		return AllowAll(), true
	}
	p := ClosePolicy{Toggle: true}
	for _, tok := range tokens {
		switch strings.ToLower(strings.TrimSpace(tok)) {
		case "escape":
			p.Escape = true
		case "outside":
			p.Outside = true
		default:
			return ClosePolicy{}, false
		}
	}
	return p, true
}

// allows reports whether the policy honors the reason. Programmatic
// closes are always honored.
func (p ClosePolicy) allows(r CloseReason) bool {
	switch r {
	case CloseToggle:
		return p.Toggle
	case CloseOutside:
		return p.Outside
	case CloseEscape:
		return p.Escape
	default:
		return true
	}
}

// Phase is the overlay lifecycle state.
type Phase int

const (
	// Idle: closed, nothing pending.
	Idle Phase = iota
	// PendingOpen: a trigger fired and the deferred-open timer is
	// running. The deferral keeps the opening interaction itself from
	// being seen by the outside-dismiss handler and immediately
	// re-closing the overlay.
	PendingOpen
	// Open: visible and interactive.
	Open
)

// Ticket identifies one pending open. The host schedules a timer for
// Delay and calls Confirm with Gen when it fires; a close that arrives
// first bumps the generation, so the stale confirm is a no-op. That is
// the explicit, cancelable form of the classic defer-then-reassert
// open workaround.
type Ticket struct {
	Gen   int
	Delay time.Duration
}

// Zero reports whether the ticket asks for no scheduling.
func (t Ticket) Zero() bool {
	return t.Gen == 0
}

// Transition reports what a machine input did.
type Transition struct {
	// Changed is true when the observable active state flipped or a
	// timer needs scheduling.
	Changed bool
	Phase   Phase
	// Schedule, when non-zero, must be scheduled by the host.
	Schedule Ticket
}

// Machine is the overlay lifecycle state machine. It is synchronous and
// single-threaded: the host feeds it events and schedules its tickets.
type Machine struct {
	phase    Phase
	triggers map[Trigger]bool
	policy   ClosePolicy
	// delay is the open deferral; zero still defers by a zero-delay
	// timer, preserving the two-phase open.
	delay time.Duration
	gen   int
}

// Option configures a Machine.
type Option func(*Machine)

// WithTriggers sets the trigger set that opens the overlay.
func WithTriggers(triggers ...Trigger) Option {
	return func(m *Machine) {
		m.triggers = make(map[Trigger]bool, len(triggers))
		for _, tr := range triggers {
			m.triggers[tr] = true
		}
	}
}

// WithClosePolicy sets which dismissals are honored.
func WithClosePolicy(p ClosePolicy) Option {
	return func(m *Machine) { m.policy = p }
}

// WithOpenDelay sets the open deferral used for hover triggers
// (tooltip delay).
func WithOpenDelay(d time.Duration) Option {
	return func(m *Machine) { m.delay = d }
}

// NewMachine builds a machine that opens on click and closes on
// everything, unless options say otherwise.
func NewMachine(opts ...Option) *Machine {
	m := &Machine{
		triggers: map[Trigger]bool{TriggerClick: true},
		policy:   AllowAll(),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// Phase returns the current lifecycle phase.
func (m *Machine) Phase() Phase {
	return m.phase
}

// Active reports whether the overlay is visible.
func (m *Machine) Active() bool {
	return m.phase == Open
}

// Trigger feeds an opening event. While Idle a configured trigger moves
// to PendingOpen and returns a ticket to schedule; while Open the same
// trigger toggles closed (subject to the close policy); while
// PendingOpen it cancels the pending open.
func (m *Machine) Trigger(tr Trigger) Transition {
	if !m.triggers[tr] {
		return Transition{Phase: m.phase}
	}

	switch m.phase {
	case Idle:
		m.phase = PendingOpen
		m.gen++
		return Transition{
			Changed:  true,
			Phase:    m.phase,
			Schedule: Ticket{Gen: m.gen, Delay: m.delay},
		}
	case PendingOpen:
		// Rapid re-toggle before the timer fired: cancel the open.
		m.gen++
		m.phase = Idle
		return Transition{Changed: true, Phase: m.phase}
	default: // Open
		if !m.policy.allows(CloseToggle) {
			return Transition{Phase: m.phase}
		}
		m.phase = Idle
		m.gen++
		return Transition{Changed: true, Phase: m.phase}
	}
}

// Confirm completes a pending open. Stale generations (cancelled or
// superseded opens) are ignored.
func (m *Machine) Confirm(gen int) Transition {
	if m.phase != PendingOpen || gen != m.gen {
		return Transition{Phase: m.phase}
	}
	m.phase = Open
	return Transition{Changed: true, Phase: m.phase}
}

// RequestClose feeds a dismissal event.
//
// While PendingOpen, outside interactions are deliberately swallowed:
// the interaction that started the open must not immediately close it.
// Any other close reason cancels the pending timer, so a stale reopen
// cannot fire later.
func (m *Machine) RequestClose(r CloseReason) Transition {
	switch m.phase {
	case Idle:
		return Transition{Phase: m.phase}
	case PendingOpen:
		if r == CloseOutside {
			return Transition{Phase: m.phase}
		}
		m.gen++
		m.phase = Idle
		return Transition{Changed: true, Phase: m.phase}
	default: // Open
		if !m.policy.allows(r) {
			return Transition{Phase: m.phase}
		}
		m.phase = Idle
		m.gen++
		return Transition{Changed: true, Phase: m.phase}
	}
}
