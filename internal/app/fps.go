package app

import "time"

// fpsCounter averages the frame rate over one-second windows.
type fpsCounter struct {
	frames int
	since  time.Time
	fps    float32
}

func newFPSCounter(now time.Time) *fpsCounter {
	return &fpsCounter{since: now}
}

// tick counts a frame and reports whether a new average is available.
func (f *fpsCounter) tick(now time.Time) bool {
	f.frames++
	elapsed := now.Sub(f.since)
	if elapsed < time.Second {
		return false
	}
	f.fps = float32(float64(f.frames) / elapsed.Seconds())
	f.frames = 0
	f.since = now
	return true
}
