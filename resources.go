// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rp

import (
	"sync"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/internal/rlog"
)

// Resources holds objects shared by every camera renderer
// of a pipeline.
// The zero value is ready for use.
type Resources struct {
	mu     sync.Mutex
	errMat driver.Material
}

// ErrorMaterial returns the material used to draw objects
// whose shaders have no supported pass.
// The material is created on first successful call and
// reused afterwards. If the shader cannot be found, the
// error is returned and the next call tries again.
func (r *Resources) ErrorMaterial(host driver.Host, shader string) (driver.Material, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.errMat != nil {
		return r.errMat, nil
	}
	s, err := host.FindShader(shader)
	if err != nil {
		return nil, err
	}
	m, err := host.NewMaterial(s)
	if err != nil {
		return nil, err
	}
	r.errMat = m
	rlog.L().Info("rp: error material created", "shader", shader)
	return m, nil
}

// Reset drops the error material, so that the next call to
// ErrorMaterial creates a new one.
func (r *Resources) Reset() {
	r.mu.Lock()
	r.errMat = nil
	r.mu.Unlock()
}
