// Package states implements the viewer's state machine.
package states

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/Faultbox/meshgrid/internal/logger"
)

// State is one phase of the viewer (loading, viewing).
type State interface {
	// Enter is called when entering this state.
	Enter() error

	// Exit is called when leaving this state.
	Exit() error

	// Update is called every frame.
	Update(dt float64) error

	// Name identifies the state in logs and the overlay.
	Name() string
}

// Manager runs one state at a time. Changes are deferred to the next Update
// so a state can request its successor from inside its own Update.
type Manager struct {
	current State
	pending State
	changes int
}

// NewManager creates a manager with no state.
func NewManager() *Manager {
	return &Manager{}
}

// Current returns the running state, or nil before the first Update.
func (m *Manager) Current() State {
	return m.current
}

// CurrentName returns the running state's name, or "none".
func (m *Manager) CurrentName() string {
	if m.current == nil {
		return "none"
	}
	return m.current.Name()
}

// Changes returns how many transitions have completed.
func (m *Manager) Changes() int {
	return m.changes
}

// Change schedules next. A later call before the next Update replaces it.
func (m *Manager) Change(next State) {
	m.pending = next
}

// Update performs a pending transition, then updates the running state.
// Errors carry the name of the state that failed.
func (m *Manager) Update(dt float64) error {
	if m.pending != nil {
		if err := m.transition(); err != nil {
			return err
		}
	}
	if m.current == nil {
		return nil
	}
	if err := m.current.Update(dt); err != nil {
		return fmt.Errorf("%s: %w", m.current.Name(), err)
	}
	return nil
}

func (m *Manager) transition() error {
	next := m.pending
	m.pending = nil

	from := m.CurrentName()
	if m.current != nil {
		if err := m.current.Exit(); err != nil {
			return fmt.Errorf("exit %s: %w", from, err)
		}
	}

	m.current = next
	m.changes++
	logger.L().Debug("state change",
		zap.String("from", from),
		zap.String("to", next.Name()))

	if err := next.Enter(); err != nil {
		return fmt.Errorf("enter %s: %w", next.Name(), err)
	}
	return nil
}
