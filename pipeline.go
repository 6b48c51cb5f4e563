// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rp

import (
	"errors"
	"strings"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/internal/rlog"
)

// Pipeline renders a sequence of cameras per frame.
// Each camera, identified by name, gets a CameraRenderer
// of its own. Every renderer shares the pipeline's
// Resources.
type Pipeline struct {
	host      driver.Host
	cfg       Config
	res       Resources
	renderers map[string]*CameraRenderer
}

// NewPipeline creates a new pipeline.
// If cfg is nil, DefaultConfig is used.
func NewPipeline(host driver.Host, cfg *Config) (*Pipeline, error) {
	if host == nil {
		return nil, newRendErr("nil driver.Host in call to NewPipeline")
	}
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &Pipeline{
		host:      host,
		cfg:       c,
		renderers: make(map[string]*CameraRenderer),
	}, nil
}

// Host returns the pipeline's host.
func (p *Pipeline) Host() driver.Host { return p.host }

// Resources returns the pipeline's shared resources.
func (p *Pipeline) Resources() *Resources { return &p.res }

// Renderer returns the renderer for cam, creating it if
// needed.
func (p *Pipeline) Renderer(cam driver.Camera) (*CameraRenderer, error) {
	if r, ok := p.renderers[cam.Name()]; ok {
		return r, nil
	}
	r, err := NewCameraRenderer(p.host, &p.res, &p.cfg)
	if err != nil {
		return nil, err
	}
	p.renderers[cam.Name()] = r
	return r, nil
}

// Render renders cams in order using ctx.
// A failure in one camera does not prevent the others
// from rendering; all errors are joined.
func (p *Pipeline) Render(ctx driver.Context, cams ...driver.Camera) error {
	var errs []error
	for _, cam := range cams {
		if cam == nil {
			errs = append(errs, newRendErr("nil camera in call to Pipeline.Render"))
			continue
		}
		r, err := p.Renderer(cam)
		if err == nil {
			err = r.Render(ctx, cam)
		}
		if err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// RenderFrame renders cams using the host's current
// context.
func (p *Pipeline) RenderFrame(cams ...driver.Camera) error {
	return p.Render(p.host.Context(), cams...)
}

// OpenDriver opens the first registered driver whose name
// contains name. It is case insensitive. If name is the
// empty string, then all registered drivers are considered.
func OpenDriver(name string) (driver.Host, error) {
	drivers := driver.Drivers()
	err := driver.ErrNoDriver
	name = strings.ToLower(name)
	for i := range drivers {
		if !strings.Contains(strings.ToLower(drivers[i].Name()), name) {
			continue
		}
		var h driver.Host
		if h, err = drivers[i].Open(); err != nil {
			continue
		}
		rlog.L().Info("rp: driver opened", "driver", drivers[i].Name())
		return h, nil
	}
	return nil, err
}
