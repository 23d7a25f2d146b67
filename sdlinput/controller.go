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
	"fmt"

	"github.com/rgrieve/padbind/input"
	"github.com/rgrieve/padbind/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// map input package button identifiers to sdl controller buttons
var buttons = [...]sdl.GameControllerButton{
	input.GamepadA:             sdl.CONTROLLER_BUTTON_A,
	input.GamepadB:             sdl.CONTROLLER_BUTTON_B,
	input.GamepadX:             sdl.CONTROLLER_BUTTON_X,
	input.GamepadY:             sdl.CONTROLLER_BUTTON_Y,
	input.GamepadDPadLeft:      sdl.CONTROLLER_BUTTON_DPAD_LEFT,
	input.GamepadDPadUp:        sdl.CONTROLLER_BUTTON_DPAD_UP,
	input.GamepadDPadRight:     sdl.CONTROLLER_BUTTON_DPAD_RIGHT,
	input.GamepadDPadDown:      sdl.CONTROLLER_BUTTON_DPAD_DOWN,
	input.GamepadBack:          sdl.CONTROLLER_BUTTON_BACK,
	input.GamepadStart:         sdl.CONTROLLER_BUTTON_START,
	input.GamepadLeftShoulder:  sdl.CONTROLLER_BUTTON_LEFTSHOULDER,
	input.GamepadRightShoulder: sdl.CONTROLLER_BUTTON_RIGHTSHOULDER,
	input.GamepadLeftStick:     sdl.CONTROLLER_BUTTON_LEFTSTICK,
	input.GamepadRightStick:    sdl.CONTROLLER_BUTTON_RIGHTSTICK,
	input.GamepadGuide:         sdl.CONTROLLER_BUTTON_GUIDE,
}

// map input package axis identifiers to sdl controller axes
var axes = [...]sdl.GameControllerAxis{
	input.GamepadTriggerLeft:  sdl.CONTROLLER_AXIS_TRIGGERLEFT,
	input.GamepadTriggerRight: sdl.CONTROLLER_AXIS_TRIGGERRIGHT,
	input.GamepadLeftX:        sdl.CONTROLLER_AXIS_LEFTX,
	input.GamepadLeftY:        sdl.CONTROLLER_AXIS_LEFTY,
	input.GamepadRightX:       sdl.CONTROLLER_AXIS_RIGHTX,
	input.GamepadRightY:       sdl.CONTROLLER_AXIS_RIGHTY,
}

// System implements the input.System interface.
type System struct{}

// OpenController implements the input.System interface.
func (sys System) OpenController(deviceIndex int) (input.Controller, error) {
	pad := sdl.GameControllerOpen(deviceIndex)
	if pad == nil || !pad.Attached() {
		return nil, fmt.Errorf("sdlinput: device %d is not usable as a game controller", deviceIndex)
	}

	joy := pad.Joystick()

	c := &controller{
		pad:        pad,
		guid:       sdl.JoystickGetGUIDString(joy.GUID()),
		instanceID: int32(joy.InstanceID()),
	}

	// not every controller has force feedback. a failure to open the haptic
	// interface is normal and leaves c.haptic as nil
	h, err := sdl.HapticOpenFromJoystick(joy)
	if err != nil {
		logger.Logf(logger.Allow, "sdl", "no haptics for %s: %v", pad.Name(), err)
	} else {
		c.haptic = &haptic{h: h}
	}

	return c, nil
}

type controller struct {
	pad        *sdl.GameController
	guid       string
	instanceID int32
	haptic     *haptic
}

func (c *controller) Name() string {
	return c.pad.Name()
}

func (c *controller) GUID() string {
	return c.guid
}

func (c *controller) InstanceID() int32 {
	return c.instanceID
}

func (c *controller) Button(b input.GamepadButton) bool {
	return c.pad.Button(buttons[b]) == sdl.PRESSED
}

func (c *controller) Axis(a input.GamepadAxis) int16 {
	return c.pad.Axis(axes[a])
}

func (c *controller) Haptic() input.Haptic {
	if c.haptic == nil {
		return nil
	}
	return c.haptic
}

func (c *controller) Close() {
	c.pad.Close()
}

// haptic implements the input.Haptic interface with an sdl left/right effect
// of infinite length. the effect keeps running until it is updated with new
// magnitudes.
type haptic struct {
	h *sdl.Haptic
}

func effect(e input.Effect) *sdl.HapticLeftRight {
	return &sdl.HapticLeftRight{
		Type:           sdl.HAPTIC_LEFTRIGHT,
		Length:         sdl.HAPTIC_INFINITY,
		LargeMagnitude: e.LargeMagnitude,
		SmallMagnitude: e.SmallMagnitude,
	}
}

func (h *haptic) NewEffect(e input.Effect) (int, error) {
	return h.h.NewEffect(effect(e))
}

func (h *haptic) UpdateEffect(id int, e input.Effect) error {
	return h.h.UpdateEffect(id, effect(e))
}

func (h *haptic) RunEffect(id int) error {
	return h.h.RunEffect(id, 1)
}

func (h *haptic) Close() {
	h.h.Close()
}
