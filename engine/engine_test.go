package engine

import (
	"sync/atomic"
	"testing"
	"time"
)

// waitFor polls cond until it returns true or the deadline passes.
func waitFor(t *testing.T, timeout time.Duration, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(time.Millisecond)
	}
	t.Fatalf("condition not met within %v", timeout)
}

func TestTickInterval(t *testing.T) {
	tests := []struct {
		fps  float64
		want time.Duration
	}{
		{60, time.Second / 60},
		{0, time.Second / 60},
		{-5, time.Second / 60},
		{100, 10 * time.Millisecond},
		{2.5, 400 * time.Millisecond},
	}
	for _, tc := range tests {
		if got := tickInterval(tc.fps); got != tc.want {
			t.Errorf("tickInterval(%v) = %v, want %v", tc.fps, got, tc.want)
		}
	}
}

func TestNewEngine_Defaults(t *testing.T) {
	e := NewEngine()
	if e.TickRate() != time.Second/60 {
		t.Errorf("TickRate = %v, want 1/60s", e.TickRate())
	}
	if e.Window() != nil {
		t.Errorf("Window = %v, want nil", e.Window())
	}
	if e.Profiler() == nil {
		t.Errorf("Profiler is nil")
	}
}

func TestEngine_TicksUntilQuit(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(
		WithTickRate(500),
		WithTickCallback(func(dt float32) {
			if dt < 0 {
				t.Errorf("negative delta time %v", dt)
			}
			ticks.Add(1)
		}),
	)
	e.Start()
	waitFor(t, 2*time.Second, func() bool { return ticks.Load() >= 3 })

	e.Quit()
	e.Quit()
	e.Wait()

	after := ticks.Load()
	time.Sleep(20 * time.Millisecond)
	if ticks.Load() != after {
		t.Errorf("ticks continued after Quit")
	}
}

func TestEngine_SetTickRateWhileRunning(t *testing.T) {
	var ticks atomic.Int32
	e := NewEngine(WithTickRate(1), WithTickCallback(func(float32) { ticks.Add(1) }))
	e.Start()
	defer func() {
		e.Quit()
		e.Wait()
	}()

	e.SetTickRate(500)
	if e.TickRate() != 2*time.Millisecond {
		t.Errorf("TickRate = %v, want 2ms", e.TickRate())
	}
	// at 1Hz this would take seconds; the live update makes it fast
	waitFor(t, 500*time.Millisecond, func() bool { return ticks.Load() >= 5 })
}

func TestEngine_RecoversFromTickPanic(t *testing.T) {
	e := NewEngine(WithTickRate(500), WithTickCallback(func(float32) { panic("boom") }))
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after tick panic")
	}
}

func TestEngine_HeadlessRunReturnsOnQuit(t *testing.T) {
	e := NewEngine(WithTickRate(200))
	done := make(chan struct{})
	go func() {
		e.Run()
		close(done)
	}()
	time.Sleep(10 * time.Millisecond)
	e.Quit()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatalf("Run did not return after Quit")
	}
}

func TestEngine_StartTwiceIsNoop(t *testing.T) {
	e := NewEngine(WithTickRate(200))
	e.Start()
	e.Start()
	e.Quit()
	e.Wait()
}

func TestEngine_ProfilerToggle(t *testing.T) {
	e := NewEngine(WithProfiling(true)).(*engine)
	if !e.profilingEnabled.Load() {
		t.Fatalf("WithProfiling(true) not applied")
	}
	e.DisableProfiler()
	if e.profilingEnabled.Load() {
		t.Errorf("DisableProfiler had no effect")
	}
	e.EnableProfiler()
	if !e.profilingEnabled.Load() {
		t.Errorf("EnableProfiler had no effect")
	}
}
