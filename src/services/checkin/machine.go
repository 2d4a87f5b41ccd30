package checkin

import (
	"Backend-PlanujSmeny/src/models"
	"errors"
	"sync"
	"time"
)

var (
	ErrNoLocationSelected  = errors.New("no location selected")
	ErrShiftAlreadyRunning = errors.New("shift is already running")
	ErrShiftNotRunning     = errors.New("no shift is running")
	ErrNothingPending      = errors.New("no location is waiting for confirmation")
)

// Machine holds one session's check-in state.
//
// Idle -> Running -> Finished, and StartShift from Finished runs again.
// All transitions happen under mu, so a Machine may be shared by
// concurrent requests of the same session.
type Machine struct {
	mu    sync.Mutex
	state models.CheckInState
	now   func() time.Time
}

func NewMachine(now func() time.Time) *Machine {
	if now == nil {
		now = time.Now
	}
	return &Machine{now: now}
}

// State returns a copy of the current state.
func (m *Machine) State() models.CheckInState {
	m.mu.Lock()
	defer m.mu.Unlock()
	return cloneState(m.state)
}

// SelectLocation handles a click on a location button and reports whether
// the confirmation popup has to be shown.
func (m *Machine) SelectLocation(id string) bool {
	m.mu.Lock()
	defer m.mu.Unlock()

	running := m.state.IsShiftRunning()
	if !running && equalID(m.state.SelectedLocationID, id) {
		m.state.SelectedLocationID = nil
		m.state.PendingLocationID = nil
		m.state.IsChangedLocation = false
		m.state.IsPopupOpen = false
		return false
	}

	m.state.PendingLocationID = ptr(id)
	m.state.IsPopupOpen = true
	return true
}

// ConfirmLocation commits the pending location.
func (m *Machine) ConfirmLocation() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.PendingLocationID == nil {
		m.state.IsPopupOpen = false
		return ErrNothingPending
	}

	pending := *m.state.PendingLocationID
	prev := m.state.SelectedLocationID
	m.state.IsChangedLocation = prev != nil && *prev != pending
	m.state.SelectedLocationID = ptr(pending)
	m.state.PendingLocationID = nil
	m.state.IsPopupOpen = false

	// a running shift moves with the selection
	if m.state.IsShiftRunning() {
		m.state.ShiftLocationID = ptr(pending)
	}
	return nil
}

// CancelLocation closes the popup and keeps the current selection.
func (m *Machine) CancelLocation() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.state.PendingLocationID = nil
	m.state.IsPopupOpen = false
}

func (m *Machine) StartShift() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if m.state.SelectedLocationID == nil {
		return ErrNoLocationSelected
	}
	if m.state.IsShiftRunning() {
		return ErrShiftAlreadyRunning
	}

	now := m.now()
	m.state.StartedAt = &now
	m.state.EndedAt = nil
	m.state.ShiftLocationID = ptr(*m.state.SelectedLocationID)
	return nil
}

func (m *Machine) EndShift() error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if !m.state.IsShiftRunning() {
		return ErrShiftNotRunning
	}

	now := m.now()
	m.state.EndedAt = &now
	m.state.SelectedLocationID = nil
	m.state.IsChangedLocation = false
	return nil
}

// CanStart - a location is selected and no shift is running
func (m *Machine) CanStart() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return canStart(m.state)
}

// CanEnd - a shift is running
func (m *Machine) CanEnd() bool {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.state.IsShiftRunning()
}

func canStart(s models.CheckInState) bool {
	return s.SelectedLocationID != nil && !s.IsShiftRunning()
}

func equalID(a *string, b string) bool {
	return a != nil && *a == b
}

func ptr[T any](v T) *T {
	return &v
}

func cloneState(s models.CheckInState) models.CheckInState {
	out := s
	if s.StartedAt != nil {
		out.StartedAt = ptr(*s.StartedAt)
	}
	if s.EndedAt != nil {
		out.EndedAt = ptr(*s.EndedAt)
	}
	if s.SelectedLocationID != nil {
		out.SelectedLocationID = ptr(*s.SelectedLocationID)
	}
	if s.PendingLocationID != nil {
		out.PendingLocationID = ptr(*s.PendingLocationID)
	}
	if s.ShiftLocationID != nil {
		out.ShiftLocationID = ptr(*s.ShiftLocationID)
	}
	return out
}
