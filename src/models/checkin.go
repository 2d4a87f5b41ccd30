package models

import "time"

// CheckInState สถานะการเข้ากะของผู้ใช้ใน session ปัจจุบัน
type CheckInState struct {
	StartedAt          *time.Time `json:"startedAt"`
	EndedAt            *time.Time `json:"endedAt"`
	SelectedLocationID *string    `json:"selectedLocationId"`
	PendingLocationID  *string    `json:"pendingLocationId"`
	ShiftLocationID    *string    `json:"shiftLocationId"` // สาขาที่กะล่าสุดผูกอยู่
	IsChangedLocation  bool       `json:"isChangedLocation"`
	IsPopupOpen        bool       `json:"isPopupOpen"`
}

// IsShiftRunning - started and not ended
func (s CheckInState) IsShiftRunning() bool {
	return s.StartedAt != nil && s.EndedAt == nil
}

// IsShiftFinished - started and ended
func (s CheckInState) IsShiftFinished() bool {
	return s.StartedAt != nil && s.EndedAt != nil
}

// CheckInStatus is the API view of a session's check-in state.
type CheckInStatus struct {
	CheckInState
	IsShiftRunning  bool   `json:"isShiftRunning"`
	IsShiftFinished bool   `json:"isShiftFinished"`
	CanStart        bool   `json:"canStart"`
	CanEnd          bool   `json:"canEnd"`
	Message         string `json:"message"`
}
