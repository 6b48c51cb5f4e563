// Copyright 2023 Gustavo C. Viegas. All rights reserved.

package gltf

import (
	"errors"
)

func newErr(reason string) error {
	return errors.New("gltf: " + reason)
}

func inRange(idx int64, n int) bool { return idx >= 0 && idx < int64(n) }

// Check checks that f is valid glTF, as far as the
// decoded subset is concerned.
func (f *GLTF) Check() error {
	if f.Asset.Version == "" {
		return newErr("missing GLTF.Asset.Version")
	}
	if s := f.Scene; s != nil && !inRange(*s, len(f.Scenes)) {
		return newErr("invalid GLTF.Scene index")
	}
	for i := range f.Scenes {
		for _, n := range f.Scenes[i].Nodes {
			if !inRange(n, len(f.Nodes)) {
				return newErr("invalid Scene.Nodes index")
			}
		}
	}
	for i := range f.Nodes {
		if err := f.Nodes[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Meshes {
		if err := f.Meshes[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Accessors {
		if err := f.Accessors[i].Check(f); err != nil {
			return err
		}
	}
	for i := range f.Cameras {
		if err := f.Cameras[i].Check(f); err != nil {
			return err
		}
	}
	return nil
}

// Check checks that n is valid glTF.nodes' element.
func (n *Node) Check(gltf *GLTF) error {
	if n.Camera != nil && !inRange(*n.Camera, len(gltf.Cameras)) {
		return newErr("invalid Node.Camera index")
	}
	if n.Mesh != nil && !inRange(*n.Mesh, len(gltf.Meshes)) {
		return newErr("invalid Node.Mesh index")
	}
	for _, c := range n.Children {
		if !inRange(c, len(gltf.Nodes)) {
			return newErr("invalid Node.Children index")
		}
	}
	if n.Matrix != nil && (n.Rotation != nil || n.Scale != nil || n.Translation != nil) {
		return newErr("Node.Matrix and TRS are mutually exclusive")
	}
	return nil
}

// Check checks that m is valid glTF.meshes' element.
func (m *Mesh) Check(gltf *GLTF) error {
	if len(m.Primitives) == 0 {
		return newErr("invalid Mesh.Primitives length")
	}
	for _, p := range m.Primitives {
		for _, a := range p.Attributes {
			if !inRange(a, len(gltf.Accessors)) {
				return newErr("invalid Primitive.Attributes index")
			}
		}
		if p.Indices != nil && !inRange(*p.Indices, len(gltf.Accessors)) {
			return newErr("invalid Primitive.Indices index")
		}
		if p.Material != nil && !inRange(*p.Material, len(gltf.Materials)) {
			return newErr("invalid Primitive.Material index")
		}
		if p.Mode != nil && (*p.Mode < POINTS || *p.Mode > TRIANGLE_FAN) {
			return newErr("invalid Primitive.Mode value")
		}
	}
	return nil
}

// mesh.primitive.mode values.
const (
	POINTS = iota
	LINES
	LINE_LOOP
	LINE_STRIP
	TRIANGLES
	TRIANGLE_STRIP
	TRIANGLE_FAN
)

// Check checks that a is valid glTF.accessors' element.
func (a *Accessor) Check(gltf *GLTF) error {
	switch a.ComponentType {
	case BYTE, UNSIGNED_BYTE, SHORT, UNSIGNED_SHORT, UNSIGNED_INT, FLOAT:
	default:
		return newErr("invalid Accessor.ComponentType value")
	}
	if a.Count < 1 {
		return newErr("invalid Accessor.Count value")
	}
	n := components(a.Type)
	if n == 0 {
		return newErr("invalid Accessor.Type value")
	}
	if (a.Max != nil && len(a.Max) != n) || (a.Min != nil && len(a.Min) != n) {
		return newErr("invalid Accessor.Max/Min length")
	}
	for i := range a.Min {
		if a.Max != nil && a.Min[i] > a.Max[i] {
			return newErr("invalid Accessor.Max/Min values")
		}
	}
	return nil
}

// Check checks that c is valid glTF.cameras' element.
func (c *Camera) Check(gltf *GLTF) error {
	switch c.Type {
	case Tperspective:
		p := c.Perspective
		switch {
		case p == nil:
			return newErr("missing Camera.Perspective")
		case p.YFOV <= 0, p.Znear <= 0, p.AspectRatio < 0:
			return newErr("invalid Camera.Perspective values")
		case p.Zfar != 0 && p.Zfar <= p.Znear:
			return newErr("invalid Camera.Perspective.Zfar value")
		}
	case Torthographic:
		o := c.Orthographic
		switch {
		case o == nil:
			return newErr("missing Camera.Orthographic")
		case o.Xmag == 0, o.Ymag == 0, o.Znear < 0, o.Zfar <= o.Znear:
			return newErr("invalid Camera.Orthographic values")
		}
	default:
		return newErr("invalid Camera.Type value")
	}
	return nil
}
