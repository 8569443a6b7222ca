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

package userinput

import (
	"fmt"
	"strings"
)

// GamepadButton identifies a button on a gamepad. The values follow the SDL
// game controller layout.
type GamepadButton uint8

// List of valid GamepadButton values.
const (
	GamepadButtonA GamepadButton = iota
	GamepadButtonB
	GamepadButtonX
	GamepadButtonY
	GamepadButtonBack
	GamepadButtonGuide
	GamepadButtonStart
	GamepadButtonLeftStick
	GamepadButtonRightStick
	GamepadButtonLeftShoulder
	GamepadButtonRightShoulder
	GamepadButtonDPadUp
	GamepadButtonDPadDown
	GamepadButtonDPadLeft
	GamepadButtonDPadRight
	GamepadButtonMisc
	GamepadButtonPaddle1
	GamepadButtonPaddle2
	GamepadButtonPaddle3
	GamepadButtonPaddle4
	GamepadButtonTouchpad

	MaxGamepadButton
)

var gamepadButtonNames = [...]string{
	"A", "B", "X", "Y", "Back", "Guide", "Start", "LeftStick", "RightStick",
	"LeftShoulder", "RightShoulder", "DPadUp", "DPadDown", "DPadLeft",
	"DPadRight", "Misc", "Paddle1", "Paddle2", "Paddle3", "Paddle4",
	"Touchpad",
}

func (b GamepadButton) String() string {
	if b < MaxGamepadButton {
		return gamepadButtonNames[b]
	}
	return fmt.Sprintf("GamepadButton(%d)", uint8(b))
}

// ParseGamepadButton returns the GamepadButton for the name. Names are case
// insensitive.
func ParseGamepadButton(name string) (GamepadButton, error) {
	name = strings.TrimSpace(name)
	for i, n := range gamepadButtonNames {
		if strings.EqualFold(n, name) {
			return GamepadButton(i), nil
		}
	}
	return 0, fmt.Errorf("userinput: unknown gamepad button %q", name)
}

// GamepadAxis identifies an analogue control on a gamepad. The values follow
// the SDL game controller layout.
type GamepadAxis uint8

// List of valid GamepadAxis values.
const (
	GamepadAxisLeftX GamepadAxis = iota
	GamepadAxisLeftY
	GamepadAxisRightX
	GamepadAxisRightY
	GamepadAxisTriggerLeft
	GamepadAxisTriggerRight

	MaxGamepadAxis
)

var gamepadAxisNames = [...]string{
	"LeftX", "LeftY", "RightX", "RightY", "LeftTrigger", "RightTrigger",
}

func (a GamepadAxis) String() string {
	if a < MaxGamepadAxis {
		return gamepadAxisNames[a]
	}
	return fmt.Sprintf("GamepadAxis(%d)", uint8(a))
}

// ParseGamepadAxis returns the GamepadAxis for the name. Names are case
// insensitive.
func ParseGamepadAxis(name string) (GamepadAxis, error) {
	name = strings.TrimSpace(name)
	for i, n := range gamepadAxisNames {
		if strings.EqualFold(n, name) {
			return GamepadAxis(i), nil
		}
	}
	return 0, fmt.Errorf("userinput: unknown gamepad axis %q", name)
}

// AxisThreshold is the absolute value an axis must exceed before it counts
// as pressed in a shortcut.
const AxisThreshold = 16384
