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
)

// sampling a device more often than this is wasted work. the same floor is
// used for haptic updates
const minUpdateInterval = 2500 * time.Microsecond

// the keys that map onto each of the 15 pad buttons, in mask bit order
var keyboardButtonMap = [NumButtons]Key{
	KeyA,
	KeyB,
	KeyX,
	KeyY,
	KeyLeft,
	KeyUp,
	KeyRight,
	KeyDown,
	KeyBackspace,
	KeyReturn,
	Key1,
	Key2,
	Key3,
	Key4,
	Key5,
}

// the controller buttons that map onto each of the 15 pad buttons, in mask
// bit order
var gamepadButtonMap = [NumButtons]GamepadButton{
	GamepadA,
	GamepadB,
	GamepadX,
	GamepadY,
	GamepadDPadLeft,
	GamepadDPadUp,
	GamepadDPadRight,
	GamepadDPadDown,
	GamepadBack,
	GamepadStart,
	GamepadLeftShoulder,
	GamepadRightShoulder,
	GamepadLeftStick,
	GamepadRightStick,
	GamepadGuide,
}

// the raw analogue channels that feed each of the pad axes, in Axis order
var gamepadAxisMap = [NumAxes]GamepadAxis{
	GamepadTriggerLeft,
	GamepadTriggerRight,
	GamepadLeftX,
	GamepadLeftY,
	GamepadRightX,
	GamepadRightY,
}

// UpdateAll refreshes the live state of every available device and then
// applies rumble for every device. The two passes are deliberately not
// interleaved: the rumble pass must see the freshest sampled state from this
// tick.
func (inp *Input) UpdateAll() {
	for _, d := range inp.devices {
		inp.UpdateDevice(d)
	}
	for _, d := range inp.devices {
		inp.UpdateRumble(d)
	}
}

// UpdateDevice refreshes the live button and axis state of the device from
// the underlying hardware. A call arriving inside the minimum update
// interval does nothing.
func (inp *Input) UpdateDevice(d *Device) {
	now := inp.now()
	if now.Sub(d.lastInputUpdate).Abs() < minUpdateInterval {
		return
	}

	switch d.Type {
	case KeyboardDevice:
		inp.sampleKeyboard(d)
	case GamepadDevice:
		sampleGamepad(d)
	}

	d.lastInputUpdate = inp.now()
}

// build pad state from the keyboard. directional keys deflect the virtual
// sticks to full scale; there are no partial values from a keyboard.
func (inp *Input) sampleKeyboard(d *Device) {
	kbd := inp.keyboard

	d.Buttons = 0
	for i := range d.Axes {
		d.Axes[i] = 0
	}

	for i, k := range keyboardButtonMap {
		if kbd.Pressed(k) {
			d.Buttons |= 1 << i
		}
	}

	// left stick and trigger
	//
	//	W = LTrig
	//	   E
	//	S     F
	//	   D
	if kbd.Pressed(KeyE) {
		d.Axes[AxisLeftStickY] = 32767
	}
	if kbd.Pressed(KeyS) {
		d.Axes[AxisLeftStickX] = -32768
	}
	if kbd.Pressed(KeyF) {
		d.Axes[AxisLeftStickX] = 32767
	}
	if kbd.Pressed(KeyD) {
		d.Axes[AxisLeftStickY] = -32768
	}
	if kbd.Pressed(KeyW) {
		d.Axes[AxisLeftTrigger] = 32767
	}

	// right stick and trigger
	//
	//	      O = RTrig
	//	   I
	//	J     L
	//	   K
	if kbd.Pressed(KeyI) {
		d.Axes[AxisRightStickY] = 32767
	}
	if kbd.Pressed(KeyJ) {
		d.Axes[AxisRightStickX] = -32768
	}
	if kbd.Pressed(KeyL) {
		d.Axes[AxisRightStickX] = 32767
	}
	if kbd.Pressed(KeyK) {
		d.Axes[AxisRightStickY] = -32768
	}
	if kbd.Pressed(KeyO) {
		d.Axes[AxisRightTrigger] = 32767
	}
}

// build pad state from a game controller.
func sampleGamepad(d *Device) {
	d.Buttons = 0
	for i, b := range gamepadButtonMap {
		if d.controller.Button(b) {
			d.Buttons |= 1 << i
		}
	}

	for i, a := range gamepadAxisMap {
		d.Axes[i] = d.controller.Axis(a)
	}

	// the hardware convention for the vertical stick axes is up-is-negative.
	// the -1-v transform flips the sign and at the same time corrects for
	// the asymmetry of the int16 range, where the positive range is one less
	// than the negative range
	d.Axes[AxisLeftStickY] = -1 - d.Axes[AxisLeftStickY]
	d.Axes[AxisRightStickY] = -1 - d.Axes[AxisRightStickY]
}
