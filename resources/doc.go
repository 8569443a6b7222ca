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

// Package resources contains functions to prepare paths for golem resources:
// the prefs file, the core catalog, screenshots and save files.
//
// The JoinPath() function returns the correct path to the resource
// directory/file specified in the arguments. It handles the creation of
// directories as required but does not otherwise touch or create files.
//
// The base path is chosen in this order:
//
//	$GOLEM_HOME, if the environment variable is set
//	.golem in the current working directory, if it exists (portable mode)
//	golem in the user's configuration directory
//
// On a MiSTer board the configuration directory is usually:
//
//	/root/.config/golem/
package resources
