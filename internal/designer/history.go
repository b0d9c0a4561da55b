package designer

import "DF-DSGNR/internal/design"

// historyCap bounds the undo depth. Oldest snapshots are evicted once
// the cap is exceeded.
const historyCap = 50

type history struct {
	snapshots []design.Design
	cursor    int
}

func newHistory(initial design.Design) *history {
	return &history{
		snapshots: []design.Design{initial.Clone()},
		cursor:    0,
	}
}

// push records a snapshot after a structural mutation. Any redo tail
// beyond the cursor is discarded.
func (h *history) push(d design.Design) {
	h.snapshots = append(h.snapshots[:h.cursor+1], d.Clone())
	h.cursor++

	if len(h.snapshots) > historyCap {
		over := len(h.snapshots) - historyCap
		kept := make([]design.Design, historyCap)
		copy(kept, h.snapshots[over:])
		h.snapshots = kept
		h.cursor -= over
	}
}

func (h *history) reset(d design.Design) {
	h.snapshots = []design.Design{d.Clone()}
	h.cursor = 0
}

func (h *history) undo() (design.Design, bool) {
	if !h.canUndo() {
		return design.Design{}, false
	}
	h.cursor--
	return h.snapshots[h.cursor].Clone(), true
}

func (h *history) redo() (design.Design, bool) {
	if !h.canRedo() {
		return design.Design{}, false
	}
	h.cursor++
	return h.snapshots[h.cursor].Clone(), true
}

func (h *history) canUndo() bool {
	return h.cursor > 0
}

func (h *history) canRedo() bool {
	return h.cursor < len(h.snapshots)-1
}
