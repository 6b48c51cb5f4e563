// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package soft

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/linear"
)

// ErrorShader is the name of the built-in shader used to
// flag objects that cannot be drawn otherwise.
const ErrorShader = "Hidden/InternalErrorShader"

// Formats of the render targets.
var (
	ColorFormat = gputypes.TextureFormatRGBA8Unorm
	DepthFormat = gputypes.TextureFormatDepth24PlusStencil8
)

// GPU implements driver.Host.
type GPU struct {
	drv     *Driver
	shaders map[string]*Shader
	objects []Object
	ctx     Context

	nlookup   int
	nmaterial int
}

// New creates a GPU that is not owned by a registered
// driver.
func New() *GPU { return newGPU(nil) }

func newGPU(drv *Driver) *GPU {
	g := &GPU{
		drv:     drv,
		shaders: make(map[string]*Shader),
	}
	g.ctx.gpu = g
	g.RegisterShader(ErrorShader, "Always")
	return g
}

// Driver returns the driver that owns g.
// It returns nil if g was created by New.
func (g *GPU) Driver() driver.Driver {
	if g.drv == nil {
		return nil
	}
	return g.drv
}

// Context returns the render context.
func (g *GPU) Context() driver.Context { return &g.ctx }

// Recorder returns the render context as its concrete type.
func (g *GPU) Recorder() *Context { return &g.ctx }

// NewCmdBuffer creates a new command buffer.
func (g *GPU) NewCmdBuffer(name string) driver.CmdBuffer { return &CmdBuffer{name: name} }

// FindShader looks up a shader by name.
func (g *GPU) FindShader(name string) (driver.Shader, error) {
	g.nlookup++
	if s, ok := g.shaders[name]; ok {
		return s, nil
	}
	return nil, fmt.Errorf("%w: %q", driver.ErrNoShader, name)
}

// NewMaterial creates a material in the geometry queue.
func (g *GPU) NewMaterial(shader driver.Shader) (driver.Material, error) {
	if shader == nil {
		return nil, newSoftErr("nil shader in call to NewMaterial")
	}
	return g.NewMaterialQueue(shader.Name(), shader, driver.RenderQueueGeometry), nil
}

// NewMaterialQueue creates a named material in the given
// render queue.
func (g *GPU) NewMaterialQueue(name string, shader driver.Shader, queue int) *Material {
	g.nmaterial++
	if name == "" {
		name = shader.Name()
	}
	return &Material{name: name, shader: shader, Queue: queue}
}

// RegisterShader registers a shader with the given pass tags,
// replacing any shader of the same name.
func (g *GPU) RegisterShader(name string, passes ...driver.ShaderTag) *Shader {
	s := &Shader{name: name, passes: passes}
	g.shaders[name] = s
	return s
}

// RemoveShader removes a shader from the lookup table.
// Materials that already reference it are unaffected.
func (g *GPU) RemoveShader(name string) { delete(g.shaders, name) }

// AddObject adds an object to the scene and returns its
// index.
func (g *GPU) AddObject(obj Object) int {
	g.objects = append(g.objects, obj)
	return len(g.objects) - 1
}

// Objects returns the objects in the scene.
// The slice must not be modified by the caller.
func (g *GPU) Objects() []Object { return g.objects }

// ClearObjects removes every object from the scene.
// Culling results obtained before the call draw nothing
// for the removed objects.
func (g *GPU) ClearObjects() { g.objects = g.objects[:0] }

// ShaderLookups returns how many times FindShader was called.
func (g *GPU) ShaderLookups() int { return g.nlookup }

// MaterialsCreated returns how many materials were created.
func (g *GPU) MaterialsCreated() int { return g.nmaterial }

// Shader implements driver.Shader.
type Shader struct {
	name   string
	passes []driver.ShaderTag
}

// Name returns the shader's name.
func (s *Shader) Name() string { return s.name }

// Passes returns the shader's pass tags.
func (s *Shader) Passes() []driver.ShaderTag { return s.passes }

// Material implements driver.Material.
type Material struct {
	name   string
	shader driver.Shader
	Queue  int
}

// Name returns the material's name.
func (m *Material) Name() string { return m.name }

// Shader returns the material's shader.
func (m *Material) Shader() driver.Shader { return m.shader }

// Object is a drawable object in the scene.
// Its bounds are given as a sphere.
type Object struct {
	Name     string
	Center   linear.V3
	Radius   float32
	Layer    int
	Material *Material
}
