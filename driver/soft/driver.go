// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package soft implements an in-memory driver.Host.
// It keeps a flat list of objects, culls them against the
// camera frustum, and records every command it receives
// into frames that can be inspected after submission.
//
// Importing this package registers a driver named "soft".
package soft

import (
	"errors"

	"github.com/gviegas/rp/driver"
)

// Driver implements driver.Driver.
type Driver struct {
	gpu *GPU
}

const driverName = "soft"

func init() { driver.Register(&Driver{}) }

// Open initializes the driver.
func (d *Driver) Open() (driver.Host, error) {
	if d.gpu == nil {
		d.gpu = newGPU(d)
	}
	return d.gpu, nil
}

// Name returns the driver's name.
func (d *Driver) Name() string { return driverName }

// Close deinitializes the driver.
func (d *Driver) Close() {
	if d.gpu != nil {
		d.gpu.drv = nil
		d.gpu = nil
	}
}

func newSoftErr(s string) error { return errors.New("soft: " + s) }
