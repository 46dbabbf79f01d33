// Package focus tracks which rendering unit currently receives keyboard
// input. The compositor consults the provider once per render to drive
// auto-scrolling.
package focus

import "github.com/dshills/paneview/internal/screen"

// Provider exposes the currently focused rendering unit as a read-only
// query.
type Provider interface {
	FocusedUnit() screen.Unit
}

// Manager is a concrete focus provider holding an ordered ring of
// focusable units.
type Manager struct {
	units   []screen.Unit
	current int
}

// NewManager creates a focus manager with no units.
func NewManager() *Manager {
	return &Manager{current: -1}
}

// Add appends a unit to the focus ring. The first unit added receives
// focus.
func (m *Manager) Add(u screen.Unit) {
	m.units = append(m.units, u)
	if m.current < 0 {
		m.current = 0
	}
}

// FocusedUnit returns the unit that currently has focus, or nil.
func (m *Manager) FocusedUnit() screen.Unit {
	if m.current < 0 || m.current >= len(m.units) {
		return nil
	}
	return m.units[m.current]
}

// Focus moves focus to the given unit. It returns false when the unit is
// not part of the ring.
func (m *Manager) Focus(u screen.Unit) bool {
	for i, candidate := range m.units {
		if candidate == u {
			m.current = i
			return true
		}
	}
	return false
}

// Next advances focus to the next unit in the ring.
func (m *Manager) Next() {
	if len(m.units) == 0 {
		return
	}
	m.current = (m.current + 1) % len(m.units)
}

// Prev moves focus to the previous unit in the ring.
func (m *Manager) Prev() {
	if len(m.units) == 0 {
		return
	}
	m.current = (m.current - 1 + len(m.units)) % len(m.units)
}
