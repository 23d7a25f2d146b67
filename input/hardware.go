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

// Key identifies a key on the host keyboard. Only the keys used by the
// keyboard-as-gamepad mapping are defined.
type Key int

// List of Key values.
const (
	KeyA Key = iota
	KeyB
	KeyX
	KeyY
	KeyLeft
	KeyUp
	KeyRight
	KeyDown
	KeyBackspace
	KeyReturn
	Key1
	Key2
	Key3
	Key4
	Key5
	KeyE
	KeyS
	KeyF
	KeyD
	KeyW
	KeyI
	KeyJ
	KeyL
	KeyK
	KeyO
	NumKeys
)

// Keyboard gives access to the pressed state of the host keyboard.
type Keyboard interface {
	Pressed(key Key) bool
}

// GamepadButton identifies a physical button on a host game controller.
type GamepadButton int

// List of GamepadButton values.
const (
	GamepadA GamepadButton = iota
	GamepadB
	GamepadX
	GamepadY
	GamepadDPadLeft
	GamepadDPadUp
	GamepadDPadRight
	GamepadDPadDown
	GamepadBack
	GamepadStart
	GamepadLeftShoulder
	GamepadRightShoulder
	GamepadLeftStick
	GamepadRightStick
	GamepadGuide
)

// GamepadAxis identifies a raw analogue channel on a host game controller.
type GamepadAxis int

// List of GamepadAxis values.
const (
	GamepadTriggerLeft GamepadAxis = iota
	GamepadTriggerRight
	GamepadLeftX
	GamepadLeftY
	GamepadRightX
	GamepadRightY
)

// Controller is an open handle to a host game controller.
type Controller interface {
	Name() string

	// GUID is the stable hardware identifier. Two controllers of the same
	// model can report the same GUID
	GUID() string

	// InstanceID identifies this connection of the controller. It is valid
	// only until the device is removed
	InstanceID() int32

	Button(b GamepadButton) bool
	Axis(a GamepadAxis) int16

	// Haptic returns the force feedback interface for the controller, or nil
	// if the controller has no rumble support
	Haptic() Haptic

	Close()
}

// Effect describes a bidirectional rumble effect. The effect runs until it is
// next updated.
type Effect struct {
	// magnitude for the low frequency (left) motor
	LargeMagnitude uint16

	// magnitude for the high frequency (right) motor
	SmallMagnitude uint16
}

// Haptic is the force feedback interface of a host game controller. The
// effect lifecycle follows the underlying platform API: an effect is created
// once, run, and then updated in place.
type Haptic interface {
	NewEffect(e Effect) (int, error)
	UpdateEffect(id int, e Effect) error
	RunEffect(id int) error
	Close()
}

// System provides access to the host's game controller facility.
type System interface {
	// OpenController opens the numbered device as a game controller. An
	// error indicates the device is not controller-capable, which is an
	// expected condition for devices like flight sticks or tablets
	OpenController(deviceIndex int) (Controller, error)
}
