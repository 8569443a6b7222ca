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

// Package coreloop is the per-frame loop that runs while a core is loaded.
//
// Every iteration the events of the frame are taken from an EventSource. Each
// event updates the loop's userinput.State and is forwarded, unfiltered, to
// the core. Key repeats are forwarded to the core but do not change the
// State. Gamepad identifiers from the platform are 1-based and are converted
// to 0-based indexes before being forwarded.
//
// When the events have been handled the shortcut table is scanned in order.
// Only the first matching binding is considered. The State is cleared and the
// command is executed. A failed command is logged and the loop continues; a
// quit outcome stops the loop immediately. The table is rebuilt after every
// executed command.
//
// Some work is too expensive to do every frame. Every HousekeepingInterval
// frames the loop polls the settings notifier, rebuilding the table if the
// settings have changed, and services the sav file of the core. Every
// ReportInterval frames the frame rate and the load of the process is logged.
//
// RunCore() is the normal way to run a core. It hides the toolbar, either
// hides the overlay or shows the core menu, runs the loop and then always
// reloads the menu core.
package coreloop
