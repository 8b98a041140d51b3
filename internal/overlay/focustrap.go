package overlay

// FocusTrap cycles focus through the focusable items of an open
// overlay. Tab past the last item wraps to the first and Shift+Tab
// before the first wraps to the last, so focus never escapes the
// overlay while it is open.
type FocusTrap struct {
	count int
	index int
}

// NewFocusTrap traps focus across count items, starting at the first.
func NewFocusTrap(count int) *FocusTrap {
	return &FocusTrap{count: count}
}

// Index returns the focused item, or -1 when there is nothing to focus.
func (t *FocusTrap) Index() int {
	if t.count <= 0 {
		return -1
	}
	return t.index
}

// Next advances focus, wrapping after the last item.
func (t *FocusTrap) Next() int {
	if t.count <= 0 {
		return -1
	}
	t.index = (t.index + 1) % t.count
	return t.index
}

// Prev moves focus back, wrapping before the first item.
func (t *FocusTrap) Prev() int {
	if t.count <= 0 {
		return -1
	}
	t.index = (t.index - 1 + t.count) % t.count
	return t.index
}

// Focus moves focus to a specific item. Out-of-range indices are
// ignored.
func (t *FocusTrap) Focus(i int) {
	if i >= 0 && i < t.count {
		t.index = i
	}
}
