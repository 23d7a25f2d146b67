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

// Package input manages the binding of host input devices onto the four
// virtual controller ports of the emulated machine.
//
// The keyboard is always available as an input device. Game controllers come
// and go as they are attached and removed; hot-plug events from the host
// platform are forwarded to HandleDeviceAdded() and HandleDeviceRemoved().
// Binding a device to a port plugs a virtual gamepad peripheral into the
// machine's bus; the last binding for each port is remembered so that a
// reconnected device returns to its old port without user action.
//
// All functions in this package must be called from the same thread, which in
// practice is the thread servicing the platform event queue. A periodic tick
// on that thread should call UpdateAll() to refresh device state and rumble.
//
// Access to the host hardware is through the System, Keyboard, Controller and
// Haptic interfaces. The sdlinput package provides SDL2 implementations.
package input
