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

package input

import (
	"fmt"

	"github.com/rgrieve/padbind/logger"
	"github.com/rgrieve/padbind/vbus"
)

// physicalPort maps a logical port index to the physical socket number on
// the virtual hub. the ordering reflects the connector layout on the front
// of the console and must not be changed.
var physicalPort = [NumPorts]int{3, 4, 1, 2}

// the driver name of the virtual peripheral plugged on a bind
const gamepadDriver = "usb-xbox-gamepad"

// Bound returns the device bound to the port, or nil. The port must be in
// the range [0, NumPorts).
func (inp *Input) Bound(port int) *Device {
	return inp.ports[port]
}

// unplug the virtual peripheral of whatever device is bound to the port and
// clear the binding. a no-op if the port is empty.
//
// an unplug refused by the bus means a stale virtual device is still wired
// into the machine. there is no state we can retreat to that is consistent,
// so treat it as unrecoverable.
func (inp *Input) unplug(port int) {
	d := inp.ports[port]
	if d == nil {
		return
	}

	if err := inp.bus.Unplug(d.peripheral); err != nil {
		panic(fmt.Sprintf("input: unplugging port %d: %v", port+1, err))
	}

	d.bound = Unbound
	d.peripheral = nil
	inp.ports[port] = nil
}

// record the identity of the device in the persisted mapping for the port
// and flush to storage. a nil device records the port as unbound.
func (inp *Input) persist(port int, d *Device) {
	identity := ""
	if d != nil {
		identity = d.Identity()
	}
	inp.settings.SetPort(port, identity)
	if err := inp.settings.Save(); err != nil {
		logger.Logf(logger.Allow, "input", "saving port bindings: %v", err)
	}
}

// Bind device d to the numbered port, replacing any existing binding for the
// port. A nil device leaves the port unbound. The port must be in the range
// [0, NumPorts).
//
// If save is true the device's identity is recorded in the persisted port
// mapping and the settings file is flushed before the function returns. This
// happens even when d is nil, recording the port as deliberately unbound.
//
// A device that is already bound to a different port is released from that
// port first; the release is always persisted.
//
// Failure to plug or unplug a virtual peripheral is a panic. See the package
// documentation for the reasoning.
func (inp *Input) Bind(port int, d *Device, save bool) {
	if port < 0 || port >= NumPorts {
		panic(fmt.Sprintf("input: no such port: %d", port))
	}

	// release the existing binding for this port
	inp.unplug(port)

	if save {
		inp.persist(port, d)
	}

	if d == nil {
		return
	}

	// the device may be bound elsewhere already. release that binding before
	// taking the new one, making sure the release is recorded
	if d.bound != Unbound {
		prev := d.bound
		inp.unplug(prev)
		inp.persist(prev, nil)
	}

	inp.ports[port] = d
	d.bound = port

	desc := vbus.Descriptor{
		Driver: gamepadDriver,
		ID:     fmt.Sprintf("gamepad_%d", inp.peripheralCt),
		Index:  port,
		Port:   physicalPort[port],
	}
	inp.peripheralCt++

	p, err := inp.bus.Plug(desc)
	if err != nil {
		panic(fmt.Sprintf("input: plugging %s into port %d: %v", desc.ID, port+1, err))
	}
	d.peripheral = p

	logger.Logf(logger.Allow, "input", "bound %s to port %d", d.Name, port+1)
}

// DefaultBindPort returns the first port, beginning at start, whose persisted
// identity matches the device. Returns -1 if no port matches.
func (inp *Input) DefaultBindPort(d *Device, start int) int {
	identity := d.Identity()
	for i := start; i < NumPorts; i++ {
		if inp.settings.Port(i) == identity {
			return i
		}
	}
	return -1
}
