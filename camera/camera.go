// Copyright 2026 Gustavo C. Viegas. All rights reserved.

// Package camera implements cameras for use with the
// renderer.
package camera

import (
	"github.com/chewxy/math32"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/linear"
)

// Projection is the type of a camera's projection.
type Projection int

// Projections.
const (
	Perspective Projection = iota
	Orthographic
)

// Camera is a camera defined by a pose and a projection.
// It implements driver.Camera.
type Camera struct {
	name string

	// Pose.
	Pos    linear.V3
	Target linear.V3
	Up     linear.V3

	Kind Projection

	// Vertical field of view, in radians.
	// Only used by perspective cameras.
	FovY float32
	// Half of the vertical extent of the view volume.
	// Only used by orthographic cameras.
	Size float32

	Aspect float32
	Near   float32
	Far    float32

	// Only objects whose layer is set in the mask
	// survive culling.
	LayerMask uint32
}

// New creates a perspective camera located at (0, 0, 10)
// and looking at the origin.
func New(name string) *Camera {
	return &Camera{
		name:      name,
		Pos:       linear.V3{0, 0, 10},
		Up:        linear.V3{0, 1, 0},
		FovY:      math32.Pi / 3,
		Size:      5,
		Aspect:    16.0 / 9.0,
		Near:      0.1,
		Far:       1000,
		LayerMask: driver.AllLayers,
	}
}

// Name returns the camera's name.
func (c *Camera) Name() string { return c.name }

// Position returns c.Pos.
func (c *Camera) Position() linear.V3 { return c.Pos }

// View returns the view matrix.
func (c *Camera) View() (m linear.M4) {
	m.LookAt(&c.Pos, &c.Target, &c.Up)
	return
}

// Proj returns the projection matrix.
func (c *Camera) Proj() (m linear.M4) {
	switch c.Kind {
	case Orthographic:
		w := c.Size * c.Aspect
		m.Ortho(-w, w, -c.Size, c.Size, c.Near, c.Far)
	default:
		m.Perspective(c.FovY, c.Aspect, c.Near, c.Far)
	}
	return
}

// valid reports whether c describes a usable view volume.
func (c *Camera) valid() bool {
	for _, x := range [...]float32{c.FovY, c.Size, c.Aspect, c.Near, c.Far} {
		if math32.IsNaN(x) || math32.IsInf(x, 0) {
			return false
		}
	}
	if !c.Pos.IsFinite() || !c.Target.IsFinite() || !c.Up.IsFinite() {
		return false
	}
	if c.Aspect <= 0 || c.Far <= c.Near {
		return false
	}
	switch c.Kind {
	case Perspective:
		if c.Near <= 0 || c.FovY <= 0 || c.FovY >= math32.Pi {
			return false
		}
	case Orthographic:
		if c.Size <= 0 {
			return false
		}
	default:
		return false
	}
	var dir, side linear.V3
	dir.Sub(&c.Target, &c.Pos)
	if dir.Len() == 0 {
		return false
	}
	side.Cross(&dir, &c.Up)
	return side.Len() > 1e-6*dir.Len()*c.Up.Len()
}

// CullingParams derives culling parameters from c.
// It returns false if c is degenerate (e.g., its target
// coincides with its position or Far <= Near).
func (c *Camera) CullingParams() (p driver.CullingParams, ok bool) {
	if !c.valid() {
		return
	}
	view := c.View()
	proj := c.Proj()
	p.ViewProj.Mul(&proj, &view)
	if !p.ViewProj.IsFinite() {
		return driver.CullingParams{}, false
	}
	p.Frustum.Extract(&p.ViewProj)
	p.Position = c.Pos
	p.LayerMask = c.LayerMask
	return p, true
}
