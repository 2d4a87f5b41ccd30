// Package testutil holds helpers shared by package tests.
package testutil

import (
	"testing"
	"time"
)

// Timer measures how long one subtest takes.
type Timer struct {
	start time.Time
	name  string
}

func NewTimer(name string) *Timer {
	return &Timer{start: time.Now(), name: name}
}

func (t *Timer) Stop() time.Duration {
	return time.Since(t.start)
}

// Result is the outcome of one timed subtest.
type Result struct {
	Name     string
	Duration time.Duration
	Passed   bool
}

// Suite collects results of timed subtests and logs a summary.
type Suite struct {
	Name    string
	Results []Result
}

func NewSuite(name string) *Suite {
	return &Suite{Name: name}
}

// Run runs fn as a subtest and records its duration and outcome.
func (s *Suite) Run(t *testing.T, name string, fn func(t *testing.T)) {
	t.Helper()
	timer := NewTimer(name)
	passed := t.Run(name, fn)
	s.Results = append(s.Results, Result{Name: name, Duration: timer.Stop(), Passed: passed})
}

func (s *Suite) Passed() int {
	n := 0
	for _, r := range s.Results {
		if r.Passed {
			n++
		}
	}
	return n
}

// Summary logs one line per subtest plus the totals.
func (s *Suite) Summary(t *testing.T) {
	t.Helper()
	var total time.Duration
	for _, r := range s.Results {
		status := "✅"
		if !r.Passed {
			status = "❌"
		}
		total += r.Duration
		t.Logf("%s %s: %v", status, r.Name, r.Duration)
	}
	t.Logf("📊 %s: %d/%d passed in %v", s.Name, s.Passed(), len(s.Results), total)
}
