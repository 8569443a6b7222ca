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

// Package settings holds the user's preferences: the shortcut mappings and
// the options of the application.
//
// Settings are stored with the prefs package in the resources directory.
// Changes are made with Update(), which saves the settings in the background.
// When the save completes every Notifier registered with Subscribe() is
// signalled. The execution loop polls its Notifier to learn that the
// shortcut mappings need rebuilding.
//
// Values can be overridden from the environment. A .env file in the working
// directory or the resources directory is read first. The GOLEM_PREFS
// variable is then pushed onto the prefs command line stack, for example:
//
//	GOLEM_PREFS="settings.framerate::50; settings.loglevel::debug"
package settings
