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

	"github.com/rgrieve/padbind/prefs"
	"github.com/rgrieve/padbind/resources"
)

// the settings key for each port's persisted device identity
var portKeys = [NumPorts]string{
	"input.controller1",
	"input.controller2",
	"input.controller3",
	"input.controller4",
}

// default filename for the settings file, relative to the resources path
const settingsFile = "settings.ini"

// Settings is the persisted side of the port binding table: one device
// identity string per port, used to compute the default bind target when a
// device connects. It is not authoritative for the current live bindings.
type Settings struct {
	dsk   *prefs.Disk
	ports [NumPorts]prefs.String
}

// NewSettings is the preferred method of initialisation for the Settings
// type. If path is the empty string the default resources location is used.
// Existing values are loaded from the file as part of initialisation.
func NewSettings(path string) (*Settings, error) {
	var err error

	if path == "" {
		path, err = resources.JoinPath(settingsFile)
		if err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	}

	set := &Settings{}

	set.dsk, err = prefs.NewDisk(path)
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	for i := range set.ports {
		err = set.dsk.Add(portKeys[i], &set.ports[i])
		if err != nil {
			return nil, fmt.Errorf("settings: %w", err)
		}
	}

	err = set.dsk.Load()
	if err != nil {
		return nil, fmt.Errorf("settings: %w", err)
	}

	return set, nil
}

// Port returns the persisted device identity for the port. An empty string
// means the port has no persisted binding.
func (set *Settings) Port(port int) string {
	return set.ports[port].String()
}

// SetPort records the device identity for the port. The value is not written
// to storage until Save() is called.
func (set *Settings) SetPort(port int, identity string) {
	// the String prefs type cannot fail on a plain string value
	_ = set.ports[port].Set(identity)
}

// Save flushes the persisted port mapping to storage.
func (set *Settings) Save() error {
	return set.dsk.Save()
}

// Load re-reads the persisted port mapping from storage, replacing any
// unsaved values.
func (set *Settings) Load() error {
	return set.dsk.Load()
}

// Path returns the location of the settings file.
func (set *Settings) Path() string {
	return set.dsk.Path()
}
