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

package sdlinput

import (
	"github.com/veandco/go-sdl2/sdl"
)

// DeviceEvents receives controller hot-plug activity from the event pump. The
// Input type of the input package satisfies the interface.
type DeviceEvents interface {
	HandleDeviceAdded(deviceIndex int)
	HandleDeviceRemoved(instanceID int32)
	HandleDeviceRemapped(instanceID int32)
}

// Service processes all pending SDL events, forwarding controller hot-plug
// events to the handler. Returns false when the host has asked the program to
// quit.
//
// Must be called often. As well as driving hot-plug detection the event pump
// is what refreshes the keyboard and controller state that the input
// subsystem samples.
func Service(handler DeviceEvents) bool {
	for ev := sdl.PollEvent(); ev != nil; ev = sdl.PollEvent() {
		switch ev := ev.(type) {
		case *sdl.QuitEvent:
			return false

		case *sdl.ControllerDeviceEvent:
			switch ev.GetType() {
			case sdl.CONTROLLERDEVICEADDED:
				// Which is a device index for an added event and an instance
				// id for every other controller event
				handler.HandleDeviceAdded(int(ev.Which))
			case sdl.CONTROLLERDEVICEREMOVED:
				handler.HandleDeviceRemoved(int32(ev.Which))
			case sdl.CONTROLLERDEVICEREMAPPED:
				handler.HandleDeviceRemapped(int32(ev.Which))
			}
		}
	}

	return true
}
