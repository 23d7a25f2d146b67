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
	"time"

	"github.com/rgrieve/padbind/logger"
	"github.com/rgrieve/padbind/notifications"
	"github.com/rgrieve/padbind/vbus"
)

// Input is the controller input subsystem. It owns the list of available
// devices and the table of port bindings.
//
// Input is not safe for concurrent use. Hot-plug handling, binding and the
// update tick must all happen on the one thread.
type Input struct {
	system   System
	keyboard Keyboard
	bus      vbus.Bus
	settings *Settings
	notify   notifications.Notify

	// all available devices in the order they were connected. the keyboard
	// is always first and is never removed
	devices []*Device

	// the authoritative port to device mapping
	ports [NumPorts]*Device

	// counter used to construct unique ids for virtual peripherals
	peripheralCt int

	// when test mode is enabled the HUD routes input to its test dialog
	// rather than the virtual machine
	testMode bool

	// the function used to read the current time. replaceable for testing
	now func() time.Time
}

// NewInput is the preferred method of initialisation for the Input type. The
// host controller subsystem must have been initialised beforehand (see the
// sdlinput package).
//
// The keyboard device is created immediately and auto-bound if the persisted
// mapping calls for it.
func NewInput(system System, keyboard Keyboard, bus vbus.Bus, settings *Settings, notify notifications.Notify) *Input {
	inp := &Input{
		system:   system,
		keyboard: keyboard,
		bus:      bus,
		settings: settings,
		notify:   notify,
		devices:  make([]*Device, 0, NumPorts),
		now:      time.Now,
	}

	// the keyboard input always exists and is always first in the device list
	kbd := &Device{
		Type:     KeyboardDevice,
		Name:     "Keyboard",
		effectID: noEffect,
		bound:    Unbound,
	}

	if port := inp.DefaultBindPort(kbd, 0); port >= 0 {
		inp.Bind(port, kbd, false)
		inp.notifyf("Connected '%s' to port %d", kbd.Name, port+1)
	}

	inp.devices = append(inp.devices, kbd)

	return inp
}

func (inp *Input) notifyf(format string, args ...any) {
	if inp.notify == nil {
		return
	}
	inp.notify.Notify(fmt.Sprintf(format, args...))
}

// Devices returns the list of available devices in connection order. The
// returned slice must not be modified or retained across hot-plug events.
func (inp *Input) Devices() []*Device {
	return inp.devices
}

// HandleDeviceAdded opens the indicated host device as a game controller and
// adds it to the device list. Devices that cannot be opened as a game
// controller are skipped; this is an expected condition and not an error.
//
// A newly added controller is auto-bound if a port's persisted mapping
// matches its identity. Where several ports persist the same identity the
// first free one is used; hardware like the X360 wireless receiver reports
// one GUID for every controller behind it so the same identity can
// legitimately appear on multiple ports.
func (inp *Input) HandleDeviceAdded(deviceIndex int) {
	c, err := inp.system.OpenController(deviceIndex)
	if err != nil {
		logger.Logf(logger.Allow, "input", "device %d is not usable as a game controller: %v", deviceIndex, err)
		return
	}

	d := &Device{
		Type:       GamepadDevice,
		Name:       c.Name(),
		guid:       c.GUID(),
		instanceID: c.InstanceID(),
		controller: c,
		haptic:     c.Haptic(),
		effectID:   noEffect,
		bound:      Unbound,
	}
	inp.devices = append(inp.devices, d)

	logger.Logf(logger.Allow, "input", "opened %s (%s)", d.Name, d.guid)

	// do not replace the binding of a currently bound device. try successive
	// ports so that a duplicated identity can settle on any free port that
	// persists it
	port := 0
	for {
		port = inp.DefaultBindPort(d, port)
		if port < 0 {
			break
		}
		if inp.Bound(port) != nil {
			port++
			continue
		}
		inp.Bind(port, d, false)
		inp.notifyf("Connected '%s' to port %d", d.Name, port+1)
		break
	}
}

// HandleDeviceRemoved responds to the removal of the host device with the
// supplied instance id. If the device is currently bound it is unbound first,
// without updating the persisted mapping, so that reconnecting the device
// restores the binding.
func (inp *Input) HandleDeviceRemoved(instanceID int32) {
	for i, d := range inp.devices {
		if d.Type != GamepadDevice || d.instanceID != instanceID {
			continue
		}

		if d.bound != Unbound {
			inp.notifyf("Port %d disconnected", d.bound+1)
			inp.Bind(d.bound, nil, false)
		}

		inp.devices = append(inp.devices[:i], inp.devices[i+1:]...)

		if d.haptic != nil {
			d.haptic.Close()
		}
		d.controller.Close()

		logger.Logf(logger.Allow, "input", "removed %s", d.Name)

		return
	}

	logger.Logf(logger.Allow, "input", "removal of unrecognised controller instance %d", instanceID)
}

// HandleDeviceRemapped responds to a remap of the host device with the
// supplied instance id. The event is observed but not currently acted upon.
func (inp *Input) HandleDeviceRemapped(instanceID int32) {
	logger.Logf(logger.Allow, "input", "controller instance %d remapped", instanceID)
}

// SetTestMode enables or disables input test mode. Test mode is a hint to
// the display layer; the subsystem itself behaves identically in both modes.
func (inp *Input) SetTestMode(enabled bool) {
	inp.testMode = enabled
}

// TestMode returns the current test mode setting.
func (inp *Input) TestMode() bool {
	return inp.testMode
}
