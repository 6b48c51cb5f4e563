// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package soft

import (
	"fmt"

	"github.com/chewxy/math32"

	"github.com/gviegas/rp/camera"
	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/gltf"
	"github.com/gviegas/rp/linear"
)

// Shaders assigned to imported glTF materials.
// Lit materials only provide a legacy pass, so the
// renderer flags them with the error material.
const (
	GLTFUnlitShader = "glTF/Unlit"
	GLTFLitShader   = "glTF/Standard"
)

// Far plane used for infinite glTF perspective cameras.
const infiniteFar = 1e6

// ImportGLTF adds the objects of doc's default scene to g
// and returns the cameras found in it.
// Every mesh primitive becomes an object whose bounding
// sphere encloses its POSITION bounds.
// On error, g may have been partially modified.
func (g *GPU) ImportGLTF(doc *gltf.GLTF) (nobj int, cams []*camera.Camera, err error) {
	if err = doc.Check(); err != nil {
		return
	}
	if len(doc.Scenes) == 0 {
		err = newSoftErr("glTF has no scenes")
		return
	}
	scene := &doc.Scenes[0]
	if doc.Scene != nil {
		scene = &doc.Scenes[*doc.Scene]
	}

	imp := gltfImporter{
		gpu:     g,
		doc:     doc,
		mats:    make([]*Material, len(doc.Materials)),
		visited: make([]bool, len(doc.Nodes)),
	}
	var root linear.M4
	root.I()
	for _, n := range scene.Nodes {
		if err = imp.node(n, &root); err != nil {
			return
		}
	}
	return imp.nobj, imp.cams, nil
}

type gltfImporter struct {
	gpu     *GPU
	doc     *gltf.GLTF
	mats    []*Material
	defMat  *Material
	visited []bool
	nobj    int
	cams    []*camera.Camera
}

func (imp *gltfImporter) node(idx int64, parent *linear.M4) error {
	if imp.visited[idx] {
		return fmt.Errorf("soft: glTF node %d: cycle or shared node", idx)
	}
	imp.visited[idx] = true
	n := &imp.doc.Nodes[idx]
	name := n.Name
	if name == "" {
		name = fmt.Sprintf("node%d", idx)
	}

	var local, world linear.M4
	nodeMatrix(n, &local)
	world.Mul(parent, &local)
	if !world.IsFinite() {
		return fmt.Errorf("soft: glTF node %q: non-finite transform", name)
	}

	if n.Mesh != nil {
		if err := imp.mesh(name, n, &world); err != nil {
			return err
		}
	}
	if n.Camera != nil {
		imp.cams = append(imp.cams, newGLTFCamera(&imp.doc.Cameras[*n.Camera], name, &world))
	}
	for _, c := range n.Children {
		if err := imp.node(c, &world); err != nil {
			return err
		}
	}
	return nil
}

func (imp *gltfImporter) mesh(name string, n *gltf.Node, world *linear.M4) error {
	var layer int
	if n.Extras != nil {
		layer = n.Extras.Layer
	}
	if layer < 0 || layer > 31 {
		return fmt.Errorf("soft: glTF node %q: invalid layer %d", name, layer)
	}
	prims := imp.doc.Meshes[*n.Mesh].Primitives
	for i := range prims {
		p := &prims[i]
		pos, ok := p.Attributes[gltf.POSITION]
		if !ok {
			return fmt.Errorf("soft: glTF node %q: primitive without %s", name, gltf.POSITION)
		}
		acc := &imp.doc.Accessors[pos]
		if acc.Type != gltf.VEC3 || len(acc.Min) != 3 || len(acc.Max) != 3 {
			return fmt.Errorf("soft: glTF node %q: %s accessor lacks VEC3 bounds", name, gltf.POSITION)
		}
		center, radius := sphereBounds(acc.Min, acc.Max, world)
		oname := name
		if len(prims) > 1 {
			oname = fmt.Sprintf("%s/%d", name, i)
		}
		imp.gpu.AddObject(Object{
			Name:     oname,
			Center:   center,
			Radius:   radius,
			Layer:    layer,
			Material: imp.material(p.Material),
		})
		imp.nobj++
	}
	return nil
}

// material returns the soft material for a glTF material
// index, creating it on first use.
// A nil index refers to the glTF default material.
func (imp *gltfImporter) material(idx *int64) *Material {
	if idx == nil {
		if imp.defMat == nil {
			imp.defMat = imp.gpu.NewMaterialQueue("glTF/Default", imp.shader(GLTFLitShader), driver.RenderQueueGeometry)
		}
		return imp.defMat
	}
	if m := imp.mats[*idx]; m != nil {
		return m
	}
	gm := &imp.doc.Materials[*idx]
	shader := GLTFLitShader
	if gm.Unlit() {
		shader = GLTFUnlitShader
	}
	queue := driver.RenderQueueGeometry
	switch gm.AlphaMode {
	case gltf.BLEND:
		queue = driver.RenderQueueTransparent
	case gltf.MASK:
		queue = driver.RenderQueueAlphaTest
	}
	name := gm.Name
	if name == "" {
		name = fmt.Sprintf("material%d", *idx)
	}
	m := imp.gpu.NewMaterialQueue(name, imp.shader(shader), queue)
	imp.mats[*idx] = m
	return m
}

// shader returns one of the glTF shaders, registering it
// if needed.
func (imp *gltfImporter) shader(name string) driver.Shader {
	if s, ok := imp.gpu.shaders[name]; ok {
		return s
	}
	if name == GLTFUnlitShader {
		return imp.gpu.RegisterShader(name, "SRPDefaultUnlit")
	}
	return imp.gpu.RegisterShader(name, "ForwardBase")
}

// nodeMatrix sets m to contain the local transform of n.
func nodeMatrix(n *gltf.Node, m *linear.M4) {
	if n.Matrix != nil {
		for i := range m {
			copy(m[i][:], n.Matrix[i*4:i*4+4])
		}
		return
	}
	var t, r, s linear.M4
	t.I()
	r.I()
	s.I()
	if x := n.Translation; x != nil {
		t.Translate(x[0], x[1], x[2])
	}
	if x := n.Rotation; x != nil {
		r.RotateQ(&linear.Q{V: linear.V3{x[0], x[1], x[2]}, R: x[3]})
	}
	if x := n.Scale; x != nil {
		s.Scale(x[0], x[1], x[2])
	}
	m.Mul(&t, &r)
	m.Mul(m, &s)
}

// sphereBounds returns a world-space sphere enclosing the
// local box [lo, hi] transformed by world.
func sphereBounds(lo, hi []float32, world *linear.M4) (linear.V3, float32) {
	var c, h linear.V3
	for i := range c {
		c[i] = (lo[i] + hi[i]) * 0.5
		h[i] = (hi[i] - lo[i]) * 0.5
	}
	wc := linear.V4{c[0], c[1], c[2], 1}
	wc.Mul(world, &wc)
	var scale float32
	for i := range 3 {
		col := linear.V3{world[i][0], world[i][1], world[i][2]}
		scale = math32.Max(scale, col.Len())
	}
	return linear.V3{wc[0], wc[1], wc[2]}, h.Len() * scale
}

// newGLTFCamera creates a camera placed by world.
// glTF cameras look down their local -Z with +Y up.
func newGLTFCamera(gc *gltf.Camera, name string, world *linear.M4) *camera.Camera {
	if gc.Name != "" {
		name = gc.Name
	}
	cam := camera.New(name)
	cam.Pos = linear.V3{world[3][0], world[3][1], world[3][2]}
	var fwd linear.V3
	fwd.Norm(&linear.V3{-world[2][0], -world[2][1], -world[2][2]})
	cam.Target.Add(&cam.Pos, &fwd)
	cam.Up.Norm(&linear.V3{world[1][0], world[1][1], world[1][2]})

	switch gc.Type {
	case gltf.Tperspective:
		p := gc.Perspective
		cam.Kind = camera.Perspective
		cam.FovY = p.YFOV
		if p.AspectRatio > 0 {
			cam.Aspect = p.AspectRatio
		}
		cam.Near = p.Znear
		cam.Far = p.Zfar
		if cam.Far == 0 {
			cam.Far = infiniteFar
		}
	case gltf.Torthographic:
		o := gc.Orthographic
		cam.Kind = camera.Orthographic
		cam.Size = math32.Abs(o.Ymag)
		cam.Aspect = math32.Abs(o.Xmag / o.Ymag)
		cam.Near = o.Znear
		cam.Far = o.Zfar
	}
	return cam
}
