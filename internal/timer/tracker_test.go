package timer

import (
	"testing"
	"time"
)

func at(hour, minute, sec int) time.Time {
	return time.Date(2026, time.August, 29, hour, minute, sec, 0, time.UTC)
}

func TestStartPause_FoldsElapsed(t *testing.T) {
	ts := IdleState()

	ts = Start(ts, at(8, 0, 0))
	if !ts.IsRunning || ts.StartedAt == nil {
		t.Fatal("Start should mark the stopwatch running")
	}

	ts = Pause(ts, at(8, 0, 45))
	if ts.IsRunning {
		t.Error("Pause should stop the stopwatch")
	}
	if ts.ElapsedSeconds != 45 {
		t.Errorf("ElapsedSeconds = %d, want 45", ts.ElapsedSeconds)
	}
	if ts.PausedAt == nil {
		t.Error("Pause should record the pause instant")
	}

	// resume accumulates
	ts = Start(ts, at(9, 0, 0))
	ts = Pause(ts, at(9, 0, 15))
	if ts.ElapsedSeconds != 60 {
		t.Errorf("ElapsedSeconds after resume = %d, want 60", ts.ElapsedSeconds)
	}
}

func TestStart_RunningIsNoOp(t *testing.T) {
	ts := Start(IdleState(), at(8, 0, 0))
	again := Start(ts, at(8, 30, 0))
	if !again.StartedAt.Equal(*ts.StartedAt) {
		t.Error("starting a running stopwatch should not move its start instant")
	}
}

func TestPause_IdleIsNoOp(t *testing.T) {
	ts := Pause(IdleState(), at(8, 0, 0))
	if ts.IsRunning || ts.ElapsedSeconds != 0 || ts.PausedAt != nil {
		t.Errorf("pausing an idle stopwatch should change nothing, got %+v", ts)
	}
}

func TestFormatClock(t *testing.T) {
	cases := []struct {
		seconds int
		want    string
	}{
		{0, "00:00"},
		{59, "00:59"},
		{61, "01:01"},
		{3599, "59:59"},
		{3600, "01:00:00"},
		{3725, "01:02:05"},
	}
	for _, c := range cases {
		if got := FormatClock(c.seconds); got != c.want {
			t.Errorf("FormatClock(%d) = %q, want %q", c.seconds, got, c.want)
		}
	}
}
