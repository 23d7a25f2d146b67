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

package resources

import (
	"os"
	"path/filepath"
	"strings"
)

// the directory name used in both the portable and non-portable cases
const resourceDir = "padbind"

// the portable directory is used if it exists in the current working
// directory. useful for running from a removable drive or for development
const portablePath = ".padbind"

func checkPortable() bool {
	info, err := os.Stat(portablePath)
	if err != nil {
		return false
	}
	return info.IsDir()
}

// JoinPath prepends the supplied path with an OS specific base path, if
// required.
//
// The function creates all folders necessary to reach the end of sub-path. It
// does not otherwise touch or create the file.
func JoinPath(path ...string) (string, error) {
	p := filepath.Join(path...)

	var b string

	// resources are either in the portable path or the user's configuration
	// directory
	if checkPortable() {
		b = portablePath
	} else {
		cnf, err := os.UserConfigDir()
		if err != nil {
			return "", err
		}
		b = filepath.Join(cnf, resourceDir)
	}

	// do not prepend base path if it is already present
	if !strings.HasPrefix(p, b) {
		p = filepath.Join(b, p)
	}

	// check if path already exists
	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	// create path if necessary
	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}
