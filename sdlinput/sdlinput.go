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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/golem-fpga/golem/curated"
	"github.com/golem-fpga/golem/logger"
	"github.com/golem-fpga/golem/userinput"
)

// MaxPlayers is the number of controllers that can be connected at once.
// Controllers connected after that are ignored.
const MaxPlayers = userinput.MaxGamepads

// Source is an EventSource reading from SDL.
type Source struct {
	flags uint32

	// controllers opened by the Source, indexed by instance ID
	controllers map[sdl.JoystickID]*sdl.GameController

	// player number of each instance ID
	players map[sdl.JoystickID]uint32
}

// NewSource is the preferred method of initialisation for the Source type.
// Controllers already connected are opened. If the video subsystem cannot be
// initialised the Source reports controller events only.
func NewSource() (*Source, error) {
	src := newSource()

	src.flags = sdl.INIT_EVENTS | sdl.INIT_GAMECONTROLLER
	if err := sdl.InitSubSystem(src.flags); err != nil {
		return nil, curated.Errorf("sdlinput: %v", err)
	}

	// keyboard events need the video subsystem
	if err := sdl.InitSubSystem(sdl.INIT_VIDEO); err != nil {
		logger.Logf(logger.Allow, "sdlinput", "no keyboard: %v", err)
	} else {
		src.flags |= sdl.INIT_VIDEO
	}

	for i := 0; i < sdl.NumJoysticks(); i++ {
		src.open(i)
	}

	return src, nil
}

func newSource() *Source {
	return &Source{
		controllers: make(map[sdl.JoystickID]*sdl.GameController),
		players:     make(map[sdl.JoystickID]uint32),
	}
}

// Close the controllers and the SDL subsystems opened by the Source.
func (src *Source) Close() {
	for id, gc := range src.controllers {
		gc.Close()
		delete(src.controllers, id)
	}
	clear(src.players)
	if src.flags != 0 {
		sdl.QuitSubSystem(src.flags)
		src.flags = 0
	}
}

// Poll implements the coreloop.EventSource interface.
func (src *Source) Poll(dst []userinput.Event) []userinput.Event {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		if dev, ok := ev.(*sdl.ControllerDeviceEvent); ok {
			switch dev.Type {
			case sdl.CONTROLLERDEVICEADDED:
				// for this event the Which field is the device index
				src.open(int(dev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				src.close(dev.Which)
			}
			continue
		}
		dst = src.translate(dst, ev)
	}
	return dst
}

// Players returns the number of connected controllers.
func (src *Source) Players() int {
	return len(src.players)
}

func (src *Source) open(index int) {
	if !sdl.IsGameController(index) {
		return
	}

	gc := sdl.GameControllerOpen(index)
	if gc == nil {
		logger.Logf(logger.Allow, "sdlinput", "cannot open controller %d: %v", index, sdl.GetError())
		return
	}

	id := gc.Joystick().InstanceID()
	if _, ok := src.controllers[id]; ok {
		gc.Close()
		return
	}

	p, ok := src.assign(id)
	if !ok {
		logger.Logf(logger.Allow, "sdlinput", "too many controllers. ignoring %s", gc.Name())
		gc.Close()
		return
	}
	src.controllers[id] = gc

	logger.Logf(logger.Allow, "sdlinput", "%s connected as player %d", gc.Name(), p)
}

func (src *Source) close(id sdl.JoystickID) {
	if gc, ok := src.controllers[id]; ok {
		gc.Close()
		delete(src.controllers, id)
	}
	if p, ok := src.players[id]; ok {
		delete(src.players, id)
		logger.Logf(logger.Allow, "sdlinput", "player %d disconnected", p)
	}
}

// assign the lowest free player number to the instance ID.
func (src *Source) assign(id sdl.JoystickID) (uint32, bool) {
	if p, ok := src.players[id]; ok {
		return p, true
	}

	used := make(map[uint32]bool, len(src.players))
	for _, p := range src.players {
		used[p] = true
	}
	for p := uint32(1); p <= MaxPlayers; p++ {
		if !used[p] {
			src.players[id] = p
			return p, true
		}
	}
	return 0, false
}

// translate an SDL event and append it to dst. Events that have no userinput
// equivalent are dropped.
func (src *Source) translate(dst []userinput.Event, ev sdl.Event) []userinput.Event {
	switch ev := ev.(type) {
	case *sdl.QuitEvent:
		return append(dst, userinput.EventQuit{})

	case *sdl.KeyboardEvent:
		code := userinput.Scancode(ev.Keysym.Scancode)
		if int(code) >= userinput.MaxScancode || code == userinput.ScancodeUnknown {
			return dst
		}
		return append(dst, userinput.EventKeyboard{
			Scancode: code,
			Down:     ev.Type == sdl.KEYDOWN,
			Repeat:   ev.Repeat != 0,
		})

	case *sdl.ControllerButtonEvent:
		p, ok := src.players[ev.Which]
		if !ok || userinput.GamepadButton(ev.Button) >= userinput.MaxGamepadButton {
			return dst
		}
		return append(dst, userinput.EventGamepadButton{
			Which:  p,
			Button: userinput.GamepadButton(ev.Button),
			Down:   ev.State == sdl.PRESSED,
		})

	case *sdl.ControllerAxisEvent:
		p, ok := src.players[ev.Which]
		if !ok || userinput.GamepadAxis(ev.Axis) >= userinput.MaxGamepadAxis {
			return dst
		}
		return append(dst, userinput.EventGamepadAxis{
			Which: p,
			Axis:  userinput.GamepadAxis(ev.Axis),
			Value: ev.Value,
		})
	}

	return dst
}
