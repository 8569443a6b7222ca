// This file is part of Golem.
//
// Golem is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Golem is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Golem.  If not, see <https://www.gnu.org/licenses/>.

// Package limiter provides a rough and ready way of limiting events to a fixed
// rate.
//
// A new FpsLimiter can be created with (error handling removed for clarity):
//
//	fps, _ := limiter.NewFPSLimiter(60)
//
// Operations can then be stalled with the Wait() function. For example:
//
//	for {
//		fps.Wait()
//		renderImage()
//	}
//
// A rate of zero does not limit anything and Wait() returns immediately.
package limiter

import (
	"time"

	"github.com/golem-fpga/golem/curated"
)

// FpsLimiter will trigger every frames per second
type FpsLimiter struct {
	framesPerSecond float64
	secondsPerFrame time.Duration

	// the time of the next trigger
	next time.Time

	now   func() time.Time
	sleep func(time.Duration)
}

// NewFPSLimiter is the preferred method of initialisation for FpsLimiter type
func NewFPSLimiter(framesPerSecond float64) (*FpsLimiter, error) {
	lim := &FpsLimiter{
		now:   time.Now,
		sleep: time.Sleep,
	}
	if err := lim.SetLimit(framesPerSecond); err != nil {
		return nil, err
	}
	return lim, nil
}

// SetLimit changes the limit at which the FpsLimiter waits
func (lim *FpsLimiter) SetLimit(framesPerSecond float64) error {
	if framesPerSecond < 0 {
		return curated.Errorf("limiter: negative frame rate")
	}
	lim.framesPerSecond = framesPerSecond
	if framesPerSecond == 0 {
		lim.secondsPerFrame = 0
	} else {
		lim.secondsPerFrame = time.Duration(float64(time.Second) / framesPerSecond)
	}
	lim.next = time.Time{}
	return nil
}

// Limit returns the current frame rate
func (lim *FpsLimiter) Limit() float64 {
	return lim.framesPerSecond
}

// Wait will block until trigger
func (lim *FpsLimiter) Wait() {
	if lim.secondsPerFrame == 0 {
		return
	}

	now := lim.now()
	if lim.next.IsZero() {
		lim.next = now
	}

	if d := lim.next.Sub(now); d > 0 {
		lim.sleep(d)
	} else if -d > lim.secondsPerFrame {
		// we're more than a frame behind. don't try to catch up
		lim.next = now
	}

	lim.next = lim.next.Add(lim.secondsPerFrame)
}

// HasWaited will return true if time has already elapsed and false it it is
// still yet to happen
func (lim *FpsLimiter) HasWaited() bool {
	return lim.secondsPerFrame == 0 || !lim.now().Before(lim.next)
}
