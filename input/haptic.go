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
	"github.com/rgrieve/padbind/logger"
)

// value of the effectID field before an effect has been created
const noEffect = -1

// UpdateRumble applies the device's current rumble intensities to its haptic
// interface. A no-op for devices without force feedback support. A call
// arriving inside the minimum update interval does nothing.
//
// The first update creates and starts the rumble effect; subsequent updates
// modify the running effect in place.
func (inp *Input) UpdateRumble(d *Device) {
	if d.haptic == nil {
		return
	}

	now := inp.now()
	if now.Sub(d.lastHapticUpdate).Abs() < minUpdateInterval {
		return
	}

	// halve the magnitudes to fit the effect's range
	e := Effect{
		LargeMagnitude: d.RumbleLeft >> 1,
		SmallMagnitude: d.RumbleRight >> 1,
	}

	if d.effectID == noEffect {
		id, err := d.haptic.NewEffect(e)
		if err != nil {
			// leave effectID at noEffect so creation is retried on the next
			// update
			logger.Logf(logger.Allow, "input", "creating rumble effect for %s: %v", d.Name, err)
		} else {
			d.effectID = id
			if err := d.haptic.RunEffect(id); err != nil {
				logger.Logf(logger.Allow, "input", "running rumble effect for %s: %v", d.Name, err)
			}
		}
	} else {
		if err := d.haptic.UpdateEffect(d.effectID, e); err != nil {
			logger.Logf(logger.Allow, "input", "updating rumble effect for %s: %v", d.Name, err)
		}
	}

	d.lastHapticUpdate = inp.now()
}
