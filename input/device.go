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
	"time"

	"github.com/rgrieve/padbind/vbus"
)

// NumPorts is the number of virtual controller ports on the emulated machine.
const NumPorts = 4

// Unbound indicates that a device is not bound to any port.
const Unbound = -1

// Button mask values for the Buttons field of the Device type. The shoulder
// buttons take their names from the pad being emulated, where they are
// labelled White and Black.
const (
	ButtonA uint16 = 1 << iota
	ButtonB
	ButtonX
	ButtonY
	ButtonDPadLeft
	ButtonDPadUp
	ButtonDPadRight
	ButtonDPadDown
	ButtonBack
	ButtonStart
	ButtonWhite
	ButtonBlack
	ButtonLStick
	ButtonRStick
	ButtonGuide
)

// NumButtons is the number of buttons in the Buttons mask.
const NumButtons = 15

// Axis indexes the Axes field of the Device type.
type Axis int

// List of Axis values.
const (
	AxisLeftTrigger Axis = iota
	AxisRightTrigger
	AxisLeftStickX
	AxisLeftStickY
	AxisRightStickX
	AxisRightStickY
	NumAxes
)

// DeviceType is the class of input device.
type DeviceType int

// List of DeviceType values.
const (
	KeyboardDevice DeviceType = iota
	GamepadDevice
)

// the identity string used for the keyboard in place of a hardware GUID
const keyboardIdentity = "keyboard"

// Device is a single host input device: the keyboard or a game controller.
// Devices are created and owned by the Input type for the lifetime of the
// connection. The keyboard device always exists.
type Device struct {
	Type DeviceType
	Name string

	// hardware GUID. empty for the keyboard
	guid string

	// platform instance id. valid only while the device is connected
	instanceID int32

	controller Controller
	haptic     Haptic

	// id of the rumble effect created on the haptic interface. noEffect
	// until the first rumble update
	effectID int

	// live state, as of the last sample
	Buttons uint16
	Axes    [NumAxes]int16

	// rumble intensities to be applied by the next haptic update. written by
	// the virtual machine via the bound peripheral
	RumbleLeft  uint16
	RumbleRight uint16

	lastInputUpdate  time.Time
	lastHapticUpdate time.Time

	// the port this device is bound to, or Unbound
	bound int

	// handle to the virtual peripheral created when the device was bound
	peripheral vbus.Peripheral
}

// Identity returns the string used to identify the device in the persisted
// port mapping: the hardware GUID for a game controller and a fixed sentinel
// for the keyboard.
func (d *Device) Identity() string {
	if d.Type == KeyboardDevice {
		return keyboardIdentity
	}
	return d.guid
}

// GUID returns the device's hardware GUID. Empty for the keyboard.
func (d *Device) GUID() string {
	return d.guid
}

// Port returns the port the device is currently bound to, or Unbound.
func (d *Device) Port() int {
	return d.bound
}

// HasRumble returns true if the device supports force feedback.
func (d *Device) HasRumble() bool {
	return d.haptic != nil
}
