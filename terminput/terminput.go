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

package terminput

import (
	"io"
	"os"
	"sync"

	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/userinput"
)

// Available returns true if the file is a terminal.
func Available(f *os.File) bool {
	return term.IsTerminal(int(f.Fd()))
}

// Source is an EventSource reading from a terminal.
type Source struct {
	input *os.File

	// the attributes of the terminal before it was put into raw mode
	canAttr unix.Termios
	raw     bool

	// bytes read by the reader goroutine
	bytes chan []byte

	// key up events to be delivered by the next Poll()
	release []userinput.Event

	// scratch space for decoding
	pending []byte
	presses []press

	closeOnce sync.Once
}

// NewSource puts the terminal into raw mode and starts reading from it.
func NewSource(input *os.File) (*Source, error) {
	if !Available(input) {
		return nil, curated.Errorf("terminput: %s is not a terminal", input.Name())
	}

	src := newSource(input)

	if err := termios.Tcgetattr(input.Fd(), &src.canAttr); err != nil {
		return nil, curated.Errorf("terminput: %v", err)
	}
	rawAttr := src.canAttr
	termios.Cfmakeraw(&rawAttr)
	if err := termios.Tcsetattr(input.Fd(), termios.TCIFLUSH, &rawAttr); err != nil {
		return nil, curated.Errorf("terminput: %v", err)
	}
	src.raw = true

	go src.read(input)

	return src, nil
}

func newSource(input *os.File) *Source {
	return &Source{
		input: input,
		bytes: make(chan []byte, 64),
	}
}

// read from the terminal until it is closed. the goroutine stays blocked in
// Read() after Close() until the next byte arrives or the process ends.
func (src *Source) read(r io.Reader) {
	for {
		b := make([]byte, 32)
		n, err := r.Read(b)
		if n > 0 {
			select {
			case src.bytes <- b[:n]:
			default:
				logger.Log(logger.Allow, "terminput", "dropped terminal input")
			}
		}
		if err != nil {
			if err != io.EOF {
				logger.Logf(logger.Allow, "terminput", "%v", err)
			}
			return
		}
	}
}

// Close restores the terminal.
func (src *Source) Close() error {
	var err error
	src.closeOnce.Do(func() {
		if src.raw {
			err = termios.Tcsetattr(src.input.Fd(), termios.TCIFLUSH, &src.canAttr)
		}
	})
	if err != nil {
		return curated.Errorf("terminput: %v", err)
	}
	return nil
}

// Poll implements the coreloop.EventSource interface.
func (src *Source) Poll(dst []userinput.Event) []userinput.Event {
	dst = append(dst, src.release...)
	src.release = src.release[:0]

	src.pending = src.pending[:0]
	for done := false; !done; {
		select {
		case b := <-src.bytes:
			src.pending = append(src.pending, b...)
		default:
			done = true
		}
	}

	return src.events(dst)
}

// events turns the pending bytes into key down events. The key up events are
// held back for the next Poll().
func (src *Source) events(dst []userinput.Event) []userinput.Event {
	src.presses = decode(src.pending, src.presses[:0])
	for _, p := range src.presses {
		if p.mod != 0 {
			dst = append(dst, userinput.EventKeyboard{Scancode: p.mod, Down: true})
		}
		dst = append(dst, userinput.EventKeyboard{Scancode: p.code, Down: true})

		src.release = append(src.release, userinput.EventKeyboard{Scancode: p.code})
		if p.mod != 0 {
			src.release = append(src.release, userinput.EventKeyboard{Scancode: p.mod})
		}
	}
	return dst
}
