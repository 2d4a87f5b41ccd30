package controllers

import (
	"bufio"
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
)

// ClockController streams the wall clock as server-sent events.
type ClockController struct {
	Loc      *time.Location
	Interval time.Duration
	now      func() time.Time
}

func NewClockController(loc *time.Location) *ClockController {
	if loc == nil {
		loc = time.UTC
	}
	return &ClockController{Loc: loc, Interval: time.Second, now: time.Now}
}

// Format renders t as HH:MM:SS in the clock's zone.
func (cl *ClockController) Format(t time.Time) string {
	return t.In(cl.Loc).Format("15:04:05")
}

// Stream godoc
// @Summary      Live clock (text/event-stream), one HH:MM:SS event per second
// @Tags         clock
// @Produce      text/event-stream
// @Router       /clock [get]
func (cl *ClockController) Stream(c *fiber.Ctx) error {
	c.Set(fiber.HeaderContentType, "text/event-stream")
	c.Set(fiber.HeaderCacheControl, "no-cache")
	c.Set(fiber.HeaderConnection, "keep-alive")

	c.Context().SetBodyStreamWriter(func(w *bufio.Writer) {
		ticker := time.NewTicker(cl.Interval)
		defer ticker.Stop()

		for {
			if _, err := fmt.Fprintf(w, "data: %s\n\n", cl.Format(cl.now())); err != nil {
				return
			}
			if err := w.Flush(); err != nil {
				log.Println("🕒 clock stream closed:", err)
				return
			}
			<-ticker.C
		}
	})
	return nil
}
