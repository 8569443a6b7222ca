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

package performance

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/process"
)

// Report of the performance since the previous report.
type Report struct {
	Frames   int
	Duration time.Duration
	FPS      float64
	Accuracy float64

	// CPU use of the process as a percentage and resident set size in bytes
	CPU float64
	RSS uint64
}

func (r Report) String() string {
	return fmt.Sprintf("%.2f fps (%d frames in %.2f seconds) %.1f%% cpu=%.1f%% rss=%.1fMB",
		r.FPS, r.Frames, r.Duration.Seconds(), r.Accuracy, r.CPU, float64(r.RSS)/1048576)
}

// Monitor measures the frame rate of a loop and the load of the process.
type Monitor struct {
	target float64
	proc   *process.Process

	frames int
	start  time.Time
}

// NewMonitor is the preferred method of initialisation for the Monitor type.
// The target is the expected frame rate.
func NewMonitor(target float64) *Monitor {
	m := &Monitor{
		target: target,
		start:  time.Now(),
	}

	// the monitor still reports the frame rate if the process can't be
	// sampled
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		m.proc = p
	}

	return m
}

// SetTarget changes the expected frame rate.
func (m *Monitor) SetTarget(target float64) {
	m.target = target
}

// Frame should be called once per frame.
func (m *Monitor) Frame() {
	m.frames++
}

// Frames returns the number of frames since the previous report.
func (m *Monitor) Frames() int {
	return m.frames
}

// Report returns the performance since the previous call to Report() and
// starts a new measurement period.
func (m *Monitor) Report(now time.Time) Report {
	r := Report{
		Frames:   m.frames,
		Duration: now.Sub(m.start),
	}
	r.FPS, r.Accuracy = CalcFPS(r.Frames, r.Duration.Seconds(), m.target)

	if m.proc != nil {
		if c, err := m.proc.CPUPercent(); err == nil {
			r.CPU = c
		}
		if mem, err := m.proc.MemoryInfo(); err == nil && mem != nil {
			r.RSS = mem.RSS
		}
	}

	m.frames = 0
	m.start = now

	return r
}
