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

// Package coremanager loads cores onto the FPGA.
//
// The Manager owns the fpga.Device. At most one core exists at a time: every
// successful load replaces the previous core, which becomes stale. A failed
// load leaves the device in whatever state the failing step left it and no
// core is current. The caller recovers by calling LoadMenu(). Loads are never
// retried automatically.
//
// ShowMenu() and HideMenu() only change the on-screen display. They never
// reprogram the device.
package coremanager
