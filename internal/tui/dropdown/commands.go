package dropdown

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/alexisbeaulieu97/almanac/internal/overlay"
)

// confirmOpenCmd schedules the machine's open ticket as a tea tick.
// Even a zero-delay open goes through the scheduler, so the opening
// interaction never races the outside-dismiss handling within the same
// update.
func confirmOpenCmd(ticket overlay.Ticket) tea.Cmd {
	delay := ticket.Delay
	if delay <= 0 {
		delay = time.Millisecond
	}
	gen := ticket.Gen
	return tea.Tick(delay, func(time.Time) tea.Msg {
		return confirmOpenMsg{gen: gen}
	})
}
