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

package coreloop

import (
	"context"
	"time"

	"github.com/golem-fpga/golem/commands"
	"github.com/golem-fpga/golem/core"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/performance"
	"github.com/golem-fpga/golem/performance/limiter"
	"github.com/golem-fpga/golem/prefs"
	"github.com/golem-fpga/golem/userinput"
)

// HousekeepingInterval is the number of frames between housekeeping.
const HousekeepingInterval = 100

// ReportInterval is the number of frames between performance reports. It
// should be a multiple of HousekeepingInterval.
const ReportInterval = 500

// the frame rate of the default pacer if the settings do not specify one
const defaultFrameRate = 60.0

// EventSource is the platform's supply of input events.
type EventSource interface {
	// Poll appends the events that have arrived since the previous call to
	// dst and returns the extended slice. Poll must not block.
	Poll(dst []userinput.Event) []userinput.Event
}

// Pacer limits the rate of the loop. Wait is called once per frame.
type Pacer interface {
	Wait()
}

// Option configures a Loop.
type Option func(l *Loop)

// WithPacer replaces the default pacer.
func WithPacer(p Pacer) Option {
	return func(l *Loop) {
		l.pacer = p
	}
}

// Loop is the execution loop of one core. A Loop is used by one goroutine.
type Loop struct {
	app   commands.App
	core  core.Core
	src   EventSource
	pacer Pacer

	input    userinput.State
	table    commands.Table
	notifier *prefs.Notifier
	batch    []userinput.Event

	frame   int
	monitor *performance.Monitor
}

// New is the preferred method of initialisation for the Loop type.
func New(app commands.App, c core.Core, src EventSource, opts ...Option) *Loop {
	l := &Loop{
		app:      app,
		core:     c,
		src:      src,
		notifier: app.Settings().Subscribe(),
		batch:    make([]userinput.Event, 0, 64),
	}

	for _, o := range opts {
		o(l)
	}

	rate := l.frameRate()
	if l.pacer == nil {
		lim, err := limiter.NewFPSLimiter(rate)
		if err != nil {
			logger.Logf(logger.Allow, "coreloop", "pacer: %v", err)
			lim, _ = limiter.NewFPSLimiter(defaultFrameRate)
		}
		l.pacer = lim
	}
	l.monitor = performance.NewMonitor(rate)

	l.rebuild()

	return l
}

func (l *Loop) frameRate() float64 {
	if r, ok := l.app.Settings().FrameRate.Get().(float64); ok && r >= 0 {
		return r
	}
	return defaultFrameRate
}

// rebuild the shortcut table from the current settings.
func (l *Loop) rebuild() {
	l.table = commands.BuildTable(l.app.Settings().Mappings(), l.core.Name())
}

// Table returns the current shortcut table.
func (l *Loop) Table() commands.Table {
	return l.table
}

// Input returns the input state of the loop.
func (l *Loop) Input() *userinput.State {
	return &l.input
}

// Frame returns the number of iterations so far.
func (l *Loop) Frame() int {
	return l.frame
}

// Close releases the resources of the loop. The loop should not be used
// after it has been closed.
func (l *Loop) Close() {
	l.app.Settings().Unsubscribe(l.notifier)
}

// Run the loop until a command quits the core, the EventSource sends an
// EventQuit or the context is cancelled.
func (l *Loop) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		if l.Step() {
			return nil
		}
	}
}

// Step runs one iteration of the loop. Returns true if the loop should stop.
func (l *Loop) Step() bool {
	l.frame++
	if l.frame%HousekeepingInterval == 0 {
		l.housekeeping()
	}

	l.batch = l.src.Poll(l.batch[:0])

	quit := false
	for _, ev := range l.batch {
		if _, ok := ev.(userinput.EventQuit); ok {
			quit = true
			continue
		}
		l.input.Update(ev)
		userinput.Forward(ev, l.core)
	}

	if quit {
		logger.Log(logger.Debug, "coreloop", "quit requested by platform")
		return true
	}

	if b, ok := l.table.Match(&l.input); ok {
		logger.Logf(logger.Allow, "coreloop", "command %s triggered", b)
		l.input.Clear()

		r := b.Command.Execute(l.app, l.core)
		switch r.Outcome {
		case commands.OutcomeQuit:
			return true
		case commands.OutcomeFailed:
			logger.Logf(logger.Allow, "coreloop", "error executing command: %s", r.Message)
		default:
			if r.Message != "" {
				logger.Logf(logger.Debug, "coreloop", "%s: %s", b.Command, r.Message)
			}
		}

		// the command may have changed the settings the table was built from
		l.rebuild()
	}

	l.monitor.Frame()
	l.pacer.Wait()

	return false
}

func (l *Loop) housekeeping() {
	now := time.Now()

	if l.notifier.Poll() {
		l.rebuild()

		rate := l.frameRate()
		if p, ok := l.pacer.(interface{ SetLimit(float64) error }); ok {
			if err := p.SetLimit(rate); err != nil {
				logger.Logf(logger.Allow, "coreloop", "pacer: %v", err)
			}
		}
		l.monitor.SetTarget(rate)

		logger.Log(logger.Debug, "coreloop", "settings updated")
	}

	if err := l.core.CheckSav(); err != nil {
		logger.Logf(logger.Allow, "coreloop", "sav: %v", err)
	}

	if l.frame%ReportInterval == 0 {
		logger.Logf(logger.Trace, "coreloop", "housekeeping took %v", time.Since(now))
		logger.Logf(logger.Trace, "coreloop", "%s", l.monitor.Report(now))
	}
}
