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

package prefs

import (
	"fmt"
	"sort"
	"strings"

	"gopkg.in/ini.v1"
)

// Disk represents preference values that are associated with a file on disk.
// The file is in INI format: a registered key of "input.controller1" refers
// to the key "controller1" in the section "input". A key without a section
// part lives in the default (unnamed) section.
//
// Saving is a merge operation. Keys in the file that have not been registered
// with this Disk instance are left untouched.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type. The
// file at the supplied path does not need to exist yet. It will be created on
// the first call to Save().
func NewDisk(path string) (*Disk, error) {
	if path == "" {
		return nil, fmt.Errorf("prefs: no path specified")
	}
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

// Path returns the path to the preferences file.
func (dsk *Disk) Path() string {
	return dsk.path
}

// split a registered key into INI section and key names. the section is
// everything up to the first dot.
func splitKey(key string) (string, string) {
	if i := strings.Index(key, "."); i >= 0 {
		return key[:i], key[i+1:]
	}
	return "", key
}

// Add preference value to disk session. Keys must be unique and must not
// contain whitespace.
func (dsk *Disk) Add(key string, p pref) error {
	key = strings.TrimSpace(key)
	if key == "" || strings.ContainsAny(key, " \t") {
		return fmt.Errorf("prefs: invalid key [%s]", key)
	}
	if _, ok := dsk.entries[key]; ok {
		return fmt.Errorf("prefs: key already registered [%s]", key)
	}
	dsk.entries[key] = p
	return nil
}

// Save current preference values to disk. Values not registered with this
// instance of the Disk type are preserved as they appear in the file.
func (dsk *Disk) Save() error {
	// load any existing file content so that unregistered keys survive the
	// write. LooseLoad tolerates the file not existing yet
	cfg, err := ini.LooseLoad(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	// sorted key order so the file is stable between saves
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		section, name := splitKey(k)
		cfg.Section(section).Key(name).SetValue(dsk.entries[k].String())
	}

	err = cfg.SaveTo(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	return nil
}

// Load preference values from disk. Values in the file that have not been
// registered are ignored. Registered values that do not appear in the file
// are left unchanged.
func (dsk *Disk) Load() error {
	cfg, err := ini.LooseLoad(dsk.path)
	if err != nil {
		return fmt.Errorf("prefs: %w", err)
	}

	for k, p := range dsk.entries {
		section, name := splitKey(k)
		if cfg.Section(section).HasKey(name) {
			err = p.Set(cfg.Section(section).Key(name).String())
			if err != nil {
				return fmt.Errorf("prefs: %w", err)
			}
		}
	}

	return nil
}

// Reset all registered values to their zero state. The file on disk is not
// affected until the next call to Save().
func (dsk *Disk) Reset() error {
	for _, p := range dsk.entries {
		err := p.Reset()
		if err != nil {
			return err
		}
	}
	return nil
}
