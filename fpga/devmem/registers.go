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

package devmem

import "time"

// physical addresses.
const (
	managerAddress = 0xff706000
	managerSize    = 0x1000
	dataAddress    = 0xffb90000
	dataSize       = 0x1000

	// shared memory window between the HPS and the FPGA
	SharedAddress = 0x20000000
	SharedSize    = 0x20000000
)

// fpga manager register offsets.
const (
	regStat      = 0x000
	regCtrl      = 0x004
	regDclkCnt   = 0x008
	regDclkStat  = 0x00c
	regGPO       = 0x010
	regGPI       = 0x014
	regPortaEOI  = 0x84c
	regExtPortA  = 0x850
	dclkStatDone = 0x1
)

// stat register.
const (
	modeMask      = 0x7
	modeOff       = 0x0
	modeReset     = 0x1
	modeConfig    = 0x2
	modeInit      = 0x3
	modeUser      = 0x4
	modeUndefined = 0x5
)

// ctrl register.
const (
	ctrlEn          = 0x001
	ctrlNCE         = 0x002
	ctrlNConfigPull = 0x004
	ctrlCDRatioMask = 0x0c0
	ctrlCDRatioX8   = 0x0c0
	ctrlAxiCfgEn    = 0x100
	ctrlCfgWidth32  = 0x200
)

// ext_porta register.
const (
	portaNStatus  = 0x1
	portaConfDone = 0x2
)

// general purpose output bits used for user-io.
const (
	gpoStrobe   = 1 << 17
	gpoFPGAEn   = 1 << 18
	gpoOSDEn    = 1 << 19
	gpoIOEn     = 1 << 20
	gpoDMEn     = 1 << 21
	gpoReset    = 1 << 30
	gpoRunning  = 1 << 31
	gpiAck      = gpoStrobe
	gpiNotReady = 1 << 31
)

// Timeouts for the busy-waits in the driver.
const (
	ReadyTimeout    = 2 * time.Second
	PhaseTimeout    = 1 * time.Second
	TransferTimeout = 100 * time.Millisecond
)
