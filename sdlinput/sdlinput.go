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
	"runtime"

	"github.com/rgrieve/padbind/logger"
	"github.com/veandco/go-sdl2/sdl"
)

// Init prepares the SDL controller and haptic subsystems. It must be called
// once, before any other function in the package.
func Init() error {
	// the SDL package calls LockOSThread() but we call it here too. it can't
	// hurt and we never unlock it in any case
	runtime.LockOSThread()

	// we want controller events even when the window does not have focus
	sdl.SetHint(sdl.HINT_JOYSTICK_ALLOW_BACKGROUND_EVENTS, "1")

	err := sdl.Init(sdl.INIT_GAMECONTROLLER | sdl.INIT_HAPTIC)
	if err != nil {
		return fmt.Errorf("sdlinput: %w", err)
	}

	var sdlVersion sdl.Version
	sdl.VERSION(&sdlVersion)
	logger.Logf(logger.Allow, "sdl", "version %d.%d.%d", sdlVersion.Major, sdlVersion.Minor, sdlVersion.Patch)

	return nil
}

// Quit shuts SDL down. Controllers opened through the System type should be
// closed first.
func Quit() {
	sdl.Quit()
}
