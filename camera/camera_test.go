// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package camera

import (
	"math"
	"testing"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/linear"
)

var _ driver.Camera = &Camera{}

func TestNew(t *testing.T) {
	c := New("main")
	if c.Name() != "main" {
		t.Fatalf("New: Name\nhave %q\nwant \"main\"", c.Name())
	}
	if c.Kind != Perspective {
		t.Fatal("New: camera should be perspective")
	}
	p, ok := c.CullingParams()
	if !ok {
		t.Fatal("New: CullingParams should succeed")
	}
	if p.Position != c.Pos || p.LayerMask != driver.AllLayers {
		t.Fatalf("CullingParams\nhave %v %#x\nwant %v %#x", p.Position, p.LayerMask, c.Pos, driver.AllLayers)
	}
	if !p.Frustum.SphereVisible(&linear.V3{}, 1) {
		t.Fatal("CullingParams: origin should be visible")
	}
	if p.Frustum.SphereVisible(&linear.V3{0, 0, 20}, 1) {
		t.Fatal("CullingParams: object behind the camera should not be visible")
	}
}

func TestOrthographic(t *testing.T) {
	c := New("ortho")
	c.Kind = Orthographic
	c.Size = 2
	c.Aspect = 1
	c.Near = 0
	p, ok := c.CullingParams()
	if !ok {
		t.Fatal("CullingParams: orthographic camera with Near == 0 should succeed")
	}
	if !p.Frustum.SphereVisible(&linear.V3{1.5, 1.5, 0}, 0.1) {
		t.Fatal("CullingParams: point within the box should be visible")
	}
	if p.Frustum.SphereVisible(&linear.V3{3, 0, 0}, 0.5) {
		t.Fatal("CullingParams: point outside the box should not be visible")
	}
}

func TestDegenerate(t *testing.T) {
	nan := float32(math.NaN())
	for _, x := range [...]struct {
		desc string
		f    func(*Camera)
	}{
		{"Target == Pos", func(c *Camera) { c.Target = c.Pos }},
		{"Up parallel to view", func(c *Camera) { c.Up = linear.V3{0, 0, 1} }},
		{"zero Up", func(c *Camera) { c.Up = linear.V3{} }},
		{"Far == Near", func(c *Camera) { c.Far = c.Near }},
		{"Far < Near", func(c *Camera) { c.Far = -1 }},
		{"Near == 0", func(c *Camera) { c.Near = 0 }},
		{"FovY == 0", func(c *Camera) { c.FovY = 0 }},
		{"FovY == π", func(c *Camera) { c.FovY = math.Pi }},
		{"Aspect == 0", func(c *Camera) { c.Aspect = 0 }},
		{"NaN position", func(c *Camera) { c.Pos[0] = nan }},
		{"infinite Far", func(c *Camera) { c.Far = float32(math.Inf(1)) }},
		{"ortho Size == 0", func(c *Camera) { c.Kind = Orthographic; c.Size = 0 }},
		{"unknown projection", func(c *Camera) { c.Kind = Projection(7) }},
	} {
		c := New(x.desc)
		x.f(c)
		if _, ok := c.CullingParams(); ok {
			t.Fatalf("CullingParams: %s\nhave true\nwant false", x.desc)
		}
	}
}

func TestEmptyLayerMask(t *testing.T) {
	c := New("none")
	c.LayerMask = 0
	if _, ok := c.CullingParams(); !ok {
		t.Fatal("CullingParams: empty layer mask should not fail")
	}
}
