// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package rp implements a render pipeline that sequences
// per-camera rendering on top of a driver.Host.
package rp

import (
	"errors"
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/internal/rlog"
)

func newRendErr(s string) error { return errors.New("rp: " + s) }

func newConfErr(s string) error { return errors.New("rp: config: " + s) }

// CameraRenderer renders a single camera.
// It owns one command buffer that is reused across frames.
// Render must not be called concurrently on the same
// CameraRenderer.
type CameraRenderer struct {
	host  driver.Host
	res   *Resources
	cfg   Config
	clear driver.ClearValue
	cb    driver.CmdBuffer

	// Valid only during Render.
	ctx driver.Context
	cam driver.Camera

	// Overwritten by every successful cull.
	cr driver.CullingResults
}

// NewCameraRenderer creates a new camera renderer.
// If res is nil, the renderer gets resources of its own.
// If cfg is nil, DefaultConfig is used. Otherwise it must
// pass Config.Validate.
func NewCameraRenderer(host driver.Host, res *Resources, cfg *Config) (*CameraRenderer, error) {
	if host == nil {
		return nil, newRendErr("nil driver.Host in call to NewCameraRenderer")
	}
	c := DefaultConfig()
	if cfg != nil {
		c = *cfg
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if res == nil {
		res = new(Resources)
	}
	return &CameraRenderer{
		host: host,
		res:  res,
		cfg:  c,
		clear: driver.ClearValue{
			ColorOp: gputypes.LoadOpClear,
			DepthOp: gputypes.LoadOpClear,
			Color: gputypes.Color{
				R: c.ClearColor[0],
				G: c.ClearColor[1],
				B: c.ClearColor[2],
				A: c.ClearColor[3],
			},
			Depth: c.ClearDepth,
		},
		cb: host.NewCmdBuffer(c.BufferName),
	}, nil
}

// Render records and submits the work for cam.
// If culling parameters cannot be derived from cam,
// nothing is recorded and nil is returned.
// Otherwise exactly one submission is made, even if the
// unsupported-shader pass fails, in which case the error
// is returned.
func (r *CameraRenderer) Render(ctx driver.Context, cam driver.Camera) error {
	if ctx == nil || cam == nil {
		return newRendErr("nil context or camera in call to Render")
	}
	r.ctx = ctx
	r.cam = cam
	defer func() {
		r.ctx = nil
		r.cam = nil
	}()

	if !r.cull() {
		return nil
	}
	r.setup()
	r.drawVisibleGeometry()
	err := r.drawUnsupportedShaders()
	r.submit()
	return err
}

func (r *CameraRenderer) cull() bool {
	p, ok := r.cam.CullingParams()
	if !ok {
		rlog.L().Debug("rp: camera skipped", "camera", r.cam.Name())
		return false
	}
	r.cr = r.ctx.Cull(&p)
	return true
}

func (r *CameraRenderer) setup() {
	r.ctx.SetupCameraProperties(r.cam)
	r.cb.ClearRenderTarget(r.clear)
	r.cb.BeginSample(r.cfg.BufferName)
	r.executeBuffer()
}

// drawVisibleGeometry draws opaque geometry, then the
// skybox, then transparent geometry.
func (r *CameraRenderer) drawVisibleGeometry() {
	opaque := driver.NewDrawingSettings(r.cfg.UnlitTag, driver.SortingSettings{
		Camera:   r.cam,
		Criteria: driver.SortCommonOpaque,
	})
	opaqueFilter := driver.NewFilteringSettings(driver.QueueOpaque)
	r.ctx.DrawRenderers(r.cr, &opaque, &opaqueFilter)

	r.ctx.DrawSkybox(r.cam)

	transparent := driver.NewDrawingSettings(r.cfg.UnlitTag, driver.SortingSettings{
		Camera:   r.cam,
		Criteria: driver.SortCommonTransparent,
	})
	transparentFilter := driver.NewFilteringSettings(driver.QueueTransparent)
	r.ctx.DrawRenderers(r.cr, &transparent, &transparentFilter)

	rlog.L().Debug("rp: visible geometry", "camera", r.cam.Name(), "visible", r.cr.Visible())
}

// drawUnsupportedShaders draws every object that has a
// legacy pass using the error material.
func (r *CameraRenderer) drawUnsupportedShaders() error {
	mat, err := r.res.ErrorMaterial(r.host, r.cfg.ErrorShader)
	if err != nil {
		rlog.L().Warn("rp: unsupported shader pass skipped", "camera", r.cam.Name(), "err", err)
		return fmt.Errorf("rp: camera %q: unsupported shader pass: %w", r.cam.Name(), err)
	}
	tags := r.cfg.LegacyTags
	ds := driver.NewDrawingSettings(tags[0], driver.SortingSettings{Camera: r.cam})
	for i := 1; i < len(tags); i++ {
		ds.SetShaderPassName(i, tags[i])
	}
	ds.OverrideMaterial = mat
	fs := driver.DefaultFiltering()
	r.ctx.DrawRenderers(r.cr, &ds, &fs)
	return nil
}

func (r *CameraRenderer) submit() {
	r.cb.EndSample(r.cfg.BufferName)
	r.executeBuffer()
	r.ctx.Submit()
}

// executeBuffer leaves r.cb empty.
func (r *CameraRenderer) executeBuffer() {
	r.ctx.ExecuteCmdBuffer(r.cb)
	r.cb.Clear()
}

// Config returns the renderer's configuration.
func (r *CameraRenderer) Config() Config { return r.cfg }
