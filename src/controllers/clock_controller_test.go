package controllers

import (
	"bufio"
	"net"
	"net/http"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestClockFormat(t *testing.T) {
	prague, err := time.LoadLocation("Europe/Prague")
	require.NoError(t, err)

	utc := time.Date(2026, 2, 19, 10, 1, 30, 0, time.UTC)
	assert.Equal(t, "11:01:30", NewClockController(prague).Format(utc))
	assert.Equal(t, "10:01:30", NewClockController(nil).Format(utc))
}

// steppingClock advances one second on every call.
func steppingClock(start time.Time) func() time.Time {
	var mu sync.Mutex
	next := start
	return func() time.Time {
		mu.Lock()
		defer mu.Unlock()
		t := next
		next = next.Add(time.Second)
		return t
	}
}

func TestClockStream(t *testing.T) {
	cl := NewClockController(time.UTC)
	cl.Interval = 10 * time.Millisecond
	cl.now = steppingClock(time.Date(2026, 2, 19, 11, 1, 30, 0, time.UTC))

	app := fiber.New(fiber.Config{DisableStartupMessage: true})
	app.Get("/clock", cl.Stream)

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	go func() { _ = app.Listener(ln) }()

	resp, err := http.Get("http://" + ln.Addr().String() + "/clock")
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.True(t, strings.HasPrefix(resp.Header.Get("Content-Type"), "text/event-stream"))
	assert.Equal(t, "no-cache", resp.Header.Get("Cache-Control"))

	reader := bufio.NewReader(resp.Body)
	var frames []string
	for len(frames) < 3 {
		line, err := reader.ReadString('\n')
		require.NoError(t, err)
		if line = strings.TrimRight(line, "\n"); line != "" {
			frames = append(frames, line)
		}
	}
	assert.Equal(t, []string{"data: 11:01:30", "data: 11:01:31", "data: 11:01:32"}, frames)

	// the stream ends once the client goes away, so shutdown can finish
	require.NoError(t, resp.Body.Close())
	assert.NoError(t, app.ShutdownWithTimeout(3*time.Second))
}
