package usecase

import (
	"sync"

	"github.com/Darlene250/amazon-explorer/internal/domain"
)

// ViewStateMachine tracks which results-surface state is displayed. Holding
// a single active value makes activation exclusive: setting one state
// deactivates all others, with no transient double-visible window.
type ViewStateMachine struct {
	mu     sync.RWMutex
	active domain.ViewState
}

// NewViewStateMachine starts in the implicit idle state shown before the
// first search.
func NewViewStateMachine() *ViewStateMachine {
	return &ViewStateMachine{active: domain.ViewIdle}
}

// Set activates state. Unknown states are ignored.
func (m *ViewStateMachine) Set(state domain.ViewState) {
	if !state.Valid() {
		return
	}
	m.mu.Lock()
	m.active = state
	m.mu.Unlock()
}

// Current returns the active state.
func (m *ViewStateMachine) Current() domain.ViewState {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.active
}

// Reset returns the machine to idle.
func (m *ViewStateMachine) Reset() {
	m.Set(domain.ViewIdle)
}
