package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"
)

const TypeShiftOverrun = "shift:overrun"

// ShiftOverrunPayload ข้อมูลกะที่ต้องตรวจว่ายังไม่ปิด
type ShiftOverrunPayload struct {
	SessionID string    `json:"session_id"`
	Username  string    `json:"username"`
	StartedAt time.Time `json:"started_at"`
}

func NewShiftOverrunTask(p ShiftOverrunPayload) (*asynq.Task, error) {
	payload, err := json.Marshal(p)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TypeShiftOverrun, payload), nil
}
