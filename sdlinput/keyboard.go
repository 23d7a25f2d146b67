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
	"github.com/rgrieve/padbind/input"
	"github.com/veandco/go-sdl2/sdl"
)

// map input package key identifiers to sdl scancodes
var scancodes = [input.NumKeys]sdl.Scancode{
	input.KeyA:         sdl.SCANCODE_A,
	input.KeyB:         sdl.SCANCODE_B,
	input.KeyX:         sdl.SCANCODE_X,
	input.KeyY:         sdl.SCANCODE_Y,
	input.KeyLeft:      sdl.SCANCODE_LEFT,
	input.KeyUp:        sdl.SCANCODE_UP,
	input.KeyRight:     sdl.SCANCODE_RIGHT,
	input.KeyDown:      sdl.SCANCODE_DOWN,
	input.KeyBackspace: sdl.SCANCODE_BACKSPACE,
	input.KeyReturn:    sdl.SCANCODE_RETURN,
	input.Key1:         sdl.SCANCODE_1,
	input.Key2:         sdl.SCANCODE_2,
	input.Key3:         sdl.SCANCODE_3,
	input.Key4:         sdl.SCANCODE_4,
	input.Key5:         sdl.SCANCODE_5,
	input.KeyE:         sdl.SCANCODE_E,
	input.KeyS:         sdl.SCANCODE_S,
	input.KeyF:         sdl.SCANCODE_F,
	input.KeyD:         sdl.SCANCODE_D,
	input.KeyW:         sdl.SCANCODE_W,
	input.KeyI:         sdl.SCANCODE_I,
	input.KeyJ:         sdl.SCANCODE_J,
	input.KeyL:         sdl.SCANCODE_L,
	input.KeyK:         sdl.SCANCODE_K,
	input.KeyO:         sdl.SCANCODE_O,
}

// Keyboard implements the input.Keyboard interface on the SDL keyboard state
// array. The array is a live view into SDL and is refreshed by the event pump
// in Service().
type Keyboard struct {
	state []uint8
}

// NewKeyboard is the preferred method of initialisation for the Keyboard
// type.
func NewKeyboard() *Keyboard {
	return &Keyboard{
		state: sdl.GetKeyboardState(),
	}
}

// Pressed implements the input.Keyboard interface.
func (k *Keyboard) Pressed(key input.Key) bool {
	return k.state[scancodes[key]] != 0
}
