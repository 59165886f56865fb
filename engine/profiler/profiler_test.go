package profiler

import (
	"bytes"
	"log"
	"strings"
	"testing"
	"time"
)

type fakeClock struct {
	t time.Time
}

func (c *fakeClock) now() time.Time {
	return c.t
}

func (c *fakeClock) advance(d time.Duration) {
	c.t = c.t.Add(d)
}

func TestProfiler_LogsOncePerInterval(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(
		WithLogger(log.New(&buf, "", 0)),
		WithClock(clock.now),
		WithInterval(time.Second),
	)

	for i := 0; i < 9; i++ {
		clock.advance(100 * time.Millisecond)
		if p.Tick() {
			t.Fatalf("logged early at tick %d", i)
		}
	}
	clock.advance(100 * time.Millisecond)
	if !p.Tick() {
		t.Fatalf("did not log after one second")
	}

	out := buf.String()
	if !strings.Contains(out, "[Profiler] TPS: 10.00") {
		t.Errorf("unexpected log line: %q", out)
	}
	if strings.Count(out, "\n") != 1 {
		t.Errorf("expected one line, got %q", out)
	}
}

func TestProfiler_StatusLine(t *testing.T) {
	var buf bytes.Buffer
	clock := &fakeClock{t: time.Unix(0, 0)}
	p := NewProfiler(WithLogger(log.New(&buf, "", 0)), WithClock(clock.now))
	p.SetStatus(func() string { return "pitch=20.0" })

	clock.advance(2 * time.Second)
	p.Tick()
	if !strings.HasSuffix(strings.TrimSpace(buf.String()), "| pitch=20.0") {
		t.Errorf("status missing from %q", buf.String())
	}
}

func TestProfiler_IgnoresInvalidOptions(t *testing.T) {
	p := NewProfiler(WithInterval(-1), WithLogger(nil), WithClock(nil))
	if p.updateInterval != time.Second {
		t.Errorf("interval = %v, want 1s", p.updateInterval)
	}
	if p.logger == nil || p.now == nil {
		t.Errorf("nil logger or clock accepted")
	}
}
