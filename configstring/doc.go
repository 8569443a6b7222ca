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

// Package configstring parses the configuration string that a core reports
// over user-io. The string describes the name of the core, the entries of its
// menu and a few capabilities such as save states.
//
// Entries are separated by semicolons. The first entry is the core name.
// Recognised entries:
//
//	F[S|C][n],EXTS,Label        load a file into slot n (default 1)
//	S[n],EXTS,Label             mount a save/disk image in slot n
//	O<bits>,Label,A,B,...       option stored in status bits
//	T<bit>,Label                trigger: pulse a status bit
//	R<bit>,Label                like T but closes the menu
//	P<n>,Label                  start of sub-page n
//	P<n><entry>                 entry that belongs to page n
//	-[,Label]                   separator, with an optional label
//	V,Version                   version string
//	J[1],Button,Button,...      names of the joystick buttons
//	SS<base>:<size>             save state region (hex)
//
// Bits are a single character from 0-9 and A-V (0 to 31), two characters for
// a range, or a bracketed decimal range like [45:44]. A lower case o, t or r
// adds 32 to single character bits. Entries can be preceded by H<bit>,
// h<bit>, D<bit> and d<bit> to hide or disable them depending on a status
// bit.
//
// Unknown entries are kept as Info items so that a menu can display them.
package configstring
