// Package display provides the display driver registry. Drivers
// register themselves with Install from their init function; the
// main program resolves one by name and hands it the framebuffer
// and input channels of a running emulator.
package display

import (
	"github.com/dotmatrix-emu/dotmatrix/internal/joypad"
)

// Driver is the interface that wraps the basic methods for a
// display driver.
type Driver interface {
	// Start the display driver. It consumes frames from fb and
	// produces button events on pressed and released until the
	// driver is stopped.
	Start(fb <-chan []byte, pressed, released chan<- joypad.Button) error
	// Stop the display driver.
	Stop() error
}

// InstalledDriver is a driver that has been installed under a
// name.
type InstalledDriver struct {
	Name string
	Driver
}

// InstalledDrivers is a list of all the installed drivers. Drivers
// should call display.Install in their init() function.
var InstalledDrivers []*InstalledDriver

// GetDriver returns the driver with the given name, or nil if no
// driver with that name is installed. The name "auto" resolves to
// the first installed driver.
func GetDriver(name string) Driver {
	if len(InstalledDrivers) == 0 {
		return nil
	}
	if name == "auto" {
		return InstalledDrivers[0]
	}
	for _, driver := range InstalledDrivers {
		if driver.Name == name {
			return driver.Driver
		}
	}

	return nil
}

// Install registers a display driver with the given name.
func Install(name string, driver Driver) {
	InstalledDrivers = append(InstalledDrivers, &InstalledDriver{
		Name:   name,
		Driver: driver,
	})
}
