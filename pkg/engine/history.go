package engine

import "github.com/parabolic/parabolic/pkg/platform"

// History maps fingerprints to the cycle they were first observed at,
// remembering insertion order.
type History struct {
	index map[platform.Fingerprint]int
	order []platform.Fingerprint
}

// NewHistory returns an empty history.
func NewHistory() *History {
	return &History{index: make(map[platform.Fingerprint]int)}
}

// Record stores fp as the state after the given cycle. Fingerprints that are
// already present keep their first cycle.
func (h *History) Record(fp platform.Fingerprint, cycle int) {
	if _, ok := h.index[fp]; ok {
		return
	}
	h.index[fp] = cycle
	h.order = append(h.order, fp)
}

// Lookup returns the cycle fp was first recorded at.
func (h *History) Lookup(fp platform.Fingerprint) (int, bool) {
	cycle, ok := h.index[fp]
	return cycle, ok
}

// Len returns the number of distinct fingerprints recorded.
func (h *History) Len() int {
	return len(h.order)
}

// At returns the i-th fingerprint in insertion order.
func (h *History) At(i int) platform.Fingerprint {
	return h.order[i]
}
