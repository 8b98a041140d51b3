package dropdown

// ActiveChangedMsg is emitted whenever the overlay opens or closes.
type ActiveChangedMsg struct {
	Active bool
}

// ChangedMsg is emitted when an item is chosen.
type ChangedMsg struct {
	Value string
	Label string
}

// confirmOpenMsg completes a deferred open. It carries the generation
// of the pending open so a cancelled timer firing late is ignored.
type confirmOpenMsg struct {
	gen int
}
