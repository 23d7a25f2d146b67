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

import (
	"fmt"

	"github.com/rgrieve/padbind/logger"
)

// NumSockets is the number of physical sockets on the Hub.
const NumSockets = 4

// Hub implements the Bus interface. It models the machine end of the bus as
// a bank of physical sockets, each of which can hold one peripheral.
type Hub struct {
	sockets [NumSockets + 1]*peripheral

	monitor PlugMonitor
}

// NewHub is the preferred method of initialisation for the Hub type.
func NewHub() *Hub {
	return &Hub{}
}

// AttachPlugMonitor so that the monitor implementation can respond to plug
// events. A nil value detaches any existing monitor.
func (hub *Hub) AttachPlugMonitor(m PlugMonitor) {
	hub.monitor = m
}

type peripheral struct {
	desc Descriptor
}

func (p *peripheral) ID() string {
	return p.desc.ID
}

// Plug implements the Bus interface.
func (hub *Hub) Plug(desc Descriptor) (Peripheral, error) {
	if desc.Port < 1 || desc.Port > NumSockets {
		return nil, fmt.Errorf("vbus: no such socket: %d", desc.Port)
	}
	if desc.ID == "" {
		return nil, fmt.Errorf("vbus: peripheral requires an id")
	}
	if hub.sockets[desc.Port] != nil {
		return nil, fmt.Errorf("vbus: socket %d is occupied by %s", desc.Port, hub.sockets[desc.Port].ID())
	}

	p := &peripheral{desc: desc}
	hub.sockets[desc.Port] = p

	logger.Logf(logger.Allow, "vbus", "%s (%s) plugged into socket %d", desc.ID, desc.Driver, desc.Port)

	if hub.monitor != nil {
		hub.monitor.Plugged(desc.Port, desc.ID)
	}

	return p, nil
}

// Unplug implements the Bus interface.
func (hub *Hub) Unplug(p Peripheral) error {
	if p == nil {
		return fmt.Errorf("vbus: cannot unplug a nil peripheral")
	}

	hp, ok := p.(*peripheral)
	if !ok || hub.sockets[hp.desc.Port] != hp {
		return fmt.Errorf("vbus: peripheral %s is not plugged into this hub", p.ID())
	}

	hub.sockets[hp.desc.Port] = nil

	logger.Logf(logger.Allow, "vbus", "%s unplugged from socket %d", hp.ID(), hp.desc.Port)

	if hub.monitor != nil {
		hub.monitor.Unplugged(hp.desc.Port, hp.ID())
	}

	return nil
}

// Plugged returns the id of the peripheral in the numbered socket, or the
// empty string if the socket is empty.
func (hub *Hub) Plugged(socket int) string {
	if socket < 1 || socket > NumSockets {
		return ""
	}
	if hub.sockets[socket] == nil {
		return ""
	}
	return hub.sockets[socket].ID()
}
