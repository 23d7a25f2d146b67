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

package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/rgrieve/padbind/input"
	"github.com/rgrieve/padbind/logger"
	"github.com/rgrieve/padbind/notifications"
	"github.com/rgrieve/padbind/sdlinput"
	"github.com/rgrieve/padbind/statsview"
	"github.com/rgrieve/padbind/vbus"
)

// how often the main loop services events and refreshes device state. kept
// comfortably above the input subsystem's own update floor
const tickInterval = 5 * time.Millisecond

// #mainthread
func main() {
	settingsPath := flag.String("settings", "", "path to the settings file (default: user config directory)")
	echo := flag.Bool("log", false, "echo debugging log to stdout")
	testMode := flag.Bool("test", false, "start with input test mode enabled")
	stats := flag.Bool("stats", false, "run stats server (requires the statsview build tag)")
	flag.Parse()

	if *echo {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *stats {
		if statsview.Available() {
			statsview.Launch(os.Stdout)
		} else {
			fmt.Println("! stats server not supported in this build")
		}
	}

	err := run(*settingsPath, *testMode)
	if err != nil {
		fmt.Printf("* error: %v\n", err)
		os.Exit(10)
	}
}

// plugMonitor prints hub activity to stdout. useful confirmation of what the
// virtual machine would see.
type plugMonitor struct{}

func (m plugMonitor) Plugged(socket int, id string) {
	fmt.Printf("socket %d: %s\n", socket, id)
}

func (m plugMonitor) Unplugged(socket int, id string) {
	fmt.Printf("socket %d: empty\n", socket)
}

func run(settingsPath string, testMode bool) error {
	err := sdlinput.Init()
	if err != nil {
		return err
	}
	defer sdlinput.Quit()

	settings, err := input.NewSettings(settingsPath)
	if err != nil {
		return err
	}

	hub := vbus.NewHub()
	hub.AttachPlugMonitor(plugMonitor{})

	queue := notifications.NewQueue()

	inp := input.NewInput(sdlinput.System{}, sdlinput.NewKeyboard(), hub, settings, queue)
	inp.SetTestMode(testMode)

	// reload the port mapping when the settings file is changed from outside
	// the program. watching the directory rather than the file itself means
	// the watch survives editors that replace the file on save
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	err = watcher.Add(filepath.Dir(settings.Path()))
	if err != nil {
		return err
	}

	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)

	fmt.Printf("settings: %s\n", settings.Path())

	ticker := time.NewTicker(tickInterval)
	defer ticker.Stop()

	for {
		select {
		case <-intChan:
			fmt.Println("\r")
			return nil

		case ev := <-watcher.Events:
			if ev.Name == settings.Path() && ev.Op.Has(fsnotify.Write|fsnotify.Create) {
				if err := settings.Load(); err != nil {
					logger.Logf(logger.Allow, "settings", "reload: %v", err)
				} else {
					logger.Log(logger.Allow, "settings", "reloaded")
				}
			}

		case err := <-watcher.Errors:
			logger.Logf(logger.Allow, "settings", "watcher: %v", err)

		case <-ticker.C:
			if !sdlinput.Service(inp) {
				return nil
			}
			inp.UpdateAll()

			for _, e := range queue.Drain() {
				fmt.Printf("%s\n", e.Message)
			}
		}
	}
}
