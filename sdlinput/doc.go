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

// Package sdlinput implements the hardware interfaces of the input package on
// top of SDL. It is the only package in the project that talks to SDL
// directly.
//
// Init() must be called before anything else in the package and, because of
// how SDL works, all subsequent calls must happen on the same OS thread. SDL
// announces controllers that were already connected at initialisation through
// the normal device-added events, so a separate startup scan is not needed.
// Service() collects pending events and forwards hot-plug activity to the
// supplied handler.
package sdlinput
