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

// Package vbus defines the surface between the input subsystem and the
// virtual machine's device model. The input subsystem plugs a virtual
// peripheral into the bus when a device is bound to a port and unplugs it
// when the binding is released.
//
// The Hub type is a minimal reference implementation of the Bus interface.
// An emulator integrating this subsystem would provide its own Bus backed by
// its internal device model.
package vbus
