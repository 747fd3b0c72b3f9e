// Package pacer holds a fixed frame cadence by polling a clock.
package pacer

import "time"

// Clock is the time source the pacer blocks on.
type Clock interface {
	Now() time.Time
	Sleep(d time.Duration)
}

type systemClock struct{}

func (systemClock) Now() time.Time        { return time.Now() }
func (systemClock) Sleep(d time.Duration) { time.Sleep(d) }

// System is the wall clock. time.Now carries a monotonic reading, so
// elapsed times are immune to wall-clock jumps.
var System Clock = systemClock{}

type Pacer struct {
	clock Clock
	fps   int
	poll  time.Duration
	start time.Time
	frame int
}

func New(clock Clock, fps int, poll time.Duration) *Pacer {
	return &Pacer{clock: clock, fps: fps, poll: poll}
}

// Start records the reference time and resets the frame counter.
func (p *Pacer) Start() {
	p.start = p.clock.Now()
	p.frame = 0
}

// Frame is the index of the frame the next Wait releases.
func (p *Pacer) Frame() int { return p.frame }

// Due is the earliest elapsed time at which frame n may be released,
// rounded up so it is never earlier than n/fps seconds.
func (p *Pacer) Due(n int) time.Duration {
	fps := int64(p.fps)
	return time.Duration((int64(n)*int64(time.Second) + fps - 1) / fps)
}

// Wait sleeps in poll-sized steps until the current frame is due, advances
// the frame counter and returns the elapsed time at release.
func (p *Pacer) Wait() time.Duration {
	due := p.Due(p.frame)
	elapsed := p.clock.Now().Sub(p.start)
	for elapsed < due {
		p.clock.Sleep(p.poll)
		elapsed = p.clock.Now().Sub(p.start)
	}
	p.frame++
	return elapsed
}
