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

package vbus

// Descriptor describes the virtual peripheral to be created by a Plug()
// operation.
type Descriptor struct {
	// name of the device driver inside the virtual machine
	Driver string

	// unique identifier for this peripheral instance
	ID string

	// the logical controller port the peripheral is addressed by
	Index int

	// the physical socket the peripheral appears in. sockets are numbered
	// from one
	Port int
}

// Peripheral is an opaque handle to a plugged virtual peripheral. The handle
// is returned by a successful Plug() and must be retained for the later
// Unplug().
type Peripheral interface {
	ID() string
}

// Bus is how the input subsystem attaches and detaches virtual peripherals
// to the machine being emulated. Both operations are synchronous and may
// fail. Implementations may take an emulation-wide lock internally.
type Bus interface {
	Plug(desc Descriptor) (Peripheral, error)
	Unplug(p Peripheral) error
}

// PlugMonitor implementations are notified of plug events on the bus. Useful
// for a HUD that wants to indicate socket activity.
type PlugMonitor interface {
	Plugged(socket int, id string)
	Unplugged(socket int, id string)
}
