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

package fpga

// OSD commands.
const (
	OSDCmdDisable uint16 = 0x40
	OSDCmdEnable  uint16 = 0x41
)

// OSD targets.
const (
	OSDHDMI = 1
	OSDVGA  = 2
	OSDAll  = OSDVGA | OSDHDMI
)

// Reset bits.
const (
	ResetUser uint8 = 0x1
	ResetCPU  uint8 = 0x2
	HaltCPU   uint8 = 0x4
)

// User-io commands.
const (
	UIOStatus     uint16 = 0x00
	UIOButSw      uint16 = 0x01
	UIOJoystick0  uint16 = 0x02
	UIOJoystick1  uint16 = 0x03
	UIOMouse      uint16 = 0x04
	UIOKeyboard   uint16 = 0x05
	UIOKbdOSD     uint16 = 0x06
	UIOJoystick2  uint16 = 0x10
	UIOJoystick3  uint16 = 0x11
	UIOJoystick4  uint16 = 0x12
	UIOJoystick5  uint16 = 0x13
	UIOGetString  uint16 = 0x14
	UIOSetStatus  uint16 = 0x15
	UIOGetSDStat  uint16 = 0x16
	UIOSectorRd   uint16 = 0x17
	UIOSectorWr   uint16 = 0x18
	UIOSetSDConf  uint16 = 0x19
	UIOAStick     uint16 = 0x1a
	UIOSetSDInfo  uint16 = 0x1c
	UIOSetStatus2 uint16 = 0x1e
	UIOGetKbdLED  uint16 = 0x1f
	UIOSetVideo   uint16 = 0x20
	UIOGetVideo   uint16 = 0x22
	UIOSetFBuf    uint16 = 0x2f
	UIOSetMemSz   uint16 = 0x31
	UIOSetGamma   uint16 = 0x32
	UIOInfoGet    uint16 = 0x36
	UIOSetFBufOut uint16 = 0x37
	UIOSetUART    uint16 = 0x3b
	UIOCheckSS    uint16 = 0x3c
)

// File transfer commands.
const (
	FIOFileTx    uint16 = 0x53
	FIOFileTxDat uint16 = 0x54
	FIOFileIndex uint16 = 0x55
	FIOFileInfo  uint16 = 0x56
)

// Joystick returns the user-io command for the joystick with the given index.
// The second return value is false if the index is out of range.
func Joystick(index uint8) (uint16, bool) {
	switch index {
	case 0:
		return UIOJoystick0, true
	case 1:
		return UIOJoystick1, true
	case 2:
		return UIOJoystick2, true
	case 3:
		return UIOJoystick3, true
	case 4:
		return UIOJoystick4, true
	case 5:
		return UIOJoystick5, true
	}
	return 0, false
}
