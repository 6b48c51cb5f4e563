// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package driver defines the set of interfaces through which
// a renderer talks to its host.
// A host owns visibility determination, draw sorting and
// command execution; renderers only sequence calls.
// It is designed to allow hosts to be implemented in a
// mostly straightforward manner.
package driver

import (
	"errors"
	"sync"

	"github.com/gviegas/rp/internal/rlog"
)

// Driver is the interface that provides methods for
// loading and unloading a host implementation.
type Driver interface {
	// Open initializes the driver.
	// If it succeeds, further calls with the same receiver
	// have no effect and must return the same Host instance.
	// Callers should assume that Open is not safe for
	// parallel execution.
	Open() (Host, error)

	// Name returns the name of the driver.
	// It must not cause the driver to be opened.
	Name() string

	// Close deinitializes the driver.
	// Closing a driver that is not open has no effect.
	Close()
}

// ErrNoDriver means that no registered driver could
// be opened.
var ErrNoDriver = errors.New("driver: driver not found")

// ErrNoShader means that a shader lookup by name failed.
var ErrNoShader = errors.New("driver: shader not found")

// Drivers returns the registered Drivers.
// Client code imports specific driver packages, and then
// call this function. Drivers that do not register
// themselves on init will not be considered for selection.
func Drivers() []Driver {
	mu.Lock()
	defer mu.Unlock()
	drv := make([]Driver, len(drivers))
	copy(drv, drivers)
	return drv
}

// Register registers a Driver.
// Driver implementations are expected to call Register
// exactly once, from an init function.
// If a driver with the same name has already been
// registered, it will be replaced by drv.
func Register(drv Driver) {
	mu.Lock()
	defer mu.Unlock()
	for i := range drivers {
		if drivers[i].Name() == drv.Name() {
			drivers[i] = drv
			rlog.L().Warn("driver replaced", "driver", drv.Name())
			return
		}
	}
	drivers = append(drivers, drv)
	rlog.L().Info("driver registered", "driver", drv.Name())
}

// Variables used for driver registration.
var (
	mu      sync.Mutex
	drivers = make([]Driver, 0, 1)
)
