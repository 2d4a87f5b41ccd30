package jobs

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	DB "Backend-PlanujSmeny/src/database"

	"github.com/hibiken/asynq"
)

// RunningChecker answers whether a session's shift is still open.
type RunningChecker interface {
	StillRunningSince(sessionID string, startedAt time.Time) bool
}

// HandleShiftOverrunTask logs a warning when a shift outlived the allowed duration.
func HandleShiftOverrunTask(sessions RunningChecker) asynq.HandlerFunc {
	return func(ctx context.Context, t *asynq.Task) error {
		var p ShiftOverrunPayload
		if err := json.Unmarshal(t.Payload(), &p); err != nil {
			log.Println("❌ Payload decode error:", err)
			return fmt.Errorf("decode %s payload: %w", TypeShiftOverrun, asynq.SkipRetry)
		}

		if !sessions.StillRunningSince(p.SessionID, p.StartedAt) {
			log.Printf("✅ shift of %s already ended, nothing to do", p.Username)
			return nil
		}
		log.Printf("⚠️ shift of %s is still running since %s", p.Username, p.StartedAt.Format(time.RFC3339))
		return nil
	}
}

// RegisterHandlers ลงทะเบียน handler ทั้งหมดของ jobs
func RegisterHandlers(mux *asynq.ServeMux, sessions RunningChecker) {
	mux.HandleFunc(TypeShiftOverrun, HandleShiftOverrunTask(sessions))
}

// ScheduleShiftOverrun enqueues the overrun check; without Redis it does nothing.
func ScheduleShiftOverrun(p ShiftOverrunPayload, after time.Duration) {
	if DB.AsynqClient == nil {
		log.Println("⚠️ Redis/Asynq not available → skip overrun reminder")
		return
	}

	task, err := NewShiftOverrunTask(p)
	if err != nil {
		log.Println("overrun: create task failed:", err)
		return
	}

	taskID := fmt.Sprintf("overrun-%s-%d", p.SessionID, p.StartedAt.Unix())
	if _, err := DB.AsynqClient.Enqueue(task, asynq.ProcessIn(after), asynq.TaskID(taskID), asynq.MaxRetry(3)); err != nil {
		log.Println("overrun: enqueue failed:", err)
		return
	}
	log.Printf("✅ scheduled overrun check: %s in %s", taskID, after)
}

// StartWorker runs the asynq server in the background. It returns nil when
// Redis is not configured.
func StartWorker(sessions RunningChecker) (*asynq.Server, error) {
	if DB.RedisURI == "" {
		return nil, nil
	}

	srv := asynq.NewServer(
		asynq.RedisClientOpt{Addr: DB.RedisURI},
		asynq.Config{Concurrency: 2},
	)
	mux := asynq.NewServeMux()
	RegisterHandlers(mux, sessions)

	if err := srv.Start(mux); err != nil {
		return nil, fmt.Errorf("start asynq worker: %w", err)
	}
	log.Println("✅ Asynq worker started")
	return srv, nil
}
