// This file is part of Padbind.
//
// Padbind is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Padbind is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Padbind.  If not, see <https://www.gnu.org/licenses/>.

// Package prefs facilitates the setting and saving of preference values.
//
// Preference values are registered against a Disk instance, identified by a
// dotted key. The on-disk representation is a plain INI file so that it can
// be inspected and edited by hand. Several Disk instances can share the one
// file; saving is a merge and will not clobber keys registered elsewhere.
package prefs
