// Copyright © 2025 Panorama contributors
// SPDX-License-Identifier: AGPL-3.0-or-later
//
// File: overview/manager.go
// Summary: Tracks one overview controller per output.

package overview

import (
	"log"
	"time"
)

// OutputID identifies an output within a session.
type OutputID uint32

// Manager owns one Controller per output, creating them on demand and
// tearing them down when an output disappears.
type Manager struct {
	opts        Options
	controllers map[OutputID]*Controller
}

// NewManager returns a manager applying the same options to every output.
func NewManager(opts Options) *Manager {
	return &Manager{
		opts:        opts.sanitized(),
		controllers: make(map[OutputID]*Controller),
	}
}

// For returns the controller for an output, creating it with the given
// host on first use. Subsequent calls ignore the host argument.
func (m *Manager) For(id OutputID, host Host) *Controller {
	if c, ok := m.controllers[id]; ok {
		return c
	}
	c := NewController(host, m.opts)
	m.controllers[id] = c
	log.Printf("Overview: controller created for output %d", id)
	return c
}

// Lookup returns the controller for an output without creating one.
func (m *Manager) Lookup(id OutputID) (*Controller, bool) {
	c, ok := m.controllers[id]
	return c, ok
}

// Remove shuts down and forgets the controller of a vanished output.
func (m *Manager) Remove(id OutputID, now time.Time) {
	c, ok := m.controllers[id]
	if !ok {
		return
	}
	c.Shutdown(now)
	delete(m.controllers, id)
	log.Printf("Overview: controller removed for output %d", id)
}

// Tick advances every live controller and reports whether any session is
// still running.
func (m *Manager) Tick(now time.Time) bool {
	live := false
	for _, c := range m.controllers {
		if c.Tick(now) {
			live = true
		}
	}
	return live
}

// Shutdown tears down every controller.
func (m *Manager) Shutdown(now time.Time) {
	for id, c := range m.controllers {
		c.Shutdown(now)
		delete(m.controllers, id)
	}
}
