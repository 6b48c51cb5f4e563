// Copyright 2022 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"github.com/gogpu/gputypes"

	"github.com/gviegas/rp/linear"
)

// Host is the main interface to an underlying driver
// implementation.
// It is used to create command buffers and materials
// and to obtain the per-frame render context.
// A Host is obtained from a call to Driver.Open.
type Host interface {
	// Driver returns the Driver that owns the Host.
	Driver() Driver

	// Context returns the render context for the
	// current frame.
	// The context is borrowed: callers must not retain
	// it past the frame.
	Context() Context

	// NewCmdBuffer creates a new, empty command buffer.
	NewCmdBuffer(name string) CmdBuffer

	// FindShader looks up a shader by name.
	// It returns an error wrapping ErrNoShader if no
	// such shader exists.
	FindShader(name string) (Shader, error)

	// NewMaterial creates a new material that uses
	// the given shader.
	NewMaterial(shader Shader) (Material, error)
}

// Context is the interface that defines a render context.
// Draw commands issued through a Context are only recorded;
// nothing becomes visible until Submit is called.
type Context interface {
	// SetupCameraProperties pushes the camera's view
	// and projection state into the context.
	SetupCameraProperties(cam Camera)

	// Cull determines the set of objects that are
	// potentially visible given p.
	Cull(p *CullingParams) CullingResults

	// DrawRenderers draws the visible objects of cr
	// that satisfy the drawing and filtering settings.
	DrawRenderers(cr CullingResults, ds *DrawingSettings, fs *FilteringSettings)

	// DrawSkybox draws the skybox as seen by cam.
	DrawSkybox(cam Camera)

	// ExecuteCmdBuffer schedules the commands recorded
	// in cb. The context copies the commands, so cb can
	// be cleared right after the call.
	ExecuteCmdBuffer(cb CmdBuffer)

	// Submit submits all scheduled work for execution.
	Submit()
}

// CmdBuffer is the interface that defines a command buffer.
// Commands are recorded into command buffers and later
// executed through Context.ExecuteCmdBuffer. A command buffer
// can be reused by calling Clear after execution.
type CmdBuffer interface {
	// Name returns the name given on creation.
	Name() string

	// ClearRenderTarget records a clear of the current
	// render target.
	ClearRenderTarget(clear ClearValue)

	// BeginSample opens a named profiling scope.
	BeginSample(name string)

	// EndSample closes a named profiling scope.
	EndSample(name string)

	// Len returns the number of recorded commands.
	Len() int

	// Clear removes all recorded commands.
	// It does not release the underlying storage.
	Clear()
}

// Camera is the interface that defines a camera.
// Renderers treat cameras as read-only.
type Camera interface {
	// Name returns the camera's name.
	Name() string

	// View returns the view matrix.
	View() linear.M4

	// Proj returns the projection matrix.
	Proj() linear.M4

	// Position returns the camera's position in world
	// space.
	Position() linear.V3

	// CullingParams derives culling parameters from the
	// camera's current state.
	// It returns false if the camera is degenerate.
	CullingParams() (CullingParams, bool)
}

// Shader is the interface that defines a shader.
type Shader interface {
	// Name returns the shader's name.
	Name() string

	// Passes returns the tags of the shader's passes,
	// in order of declaration.
	Passes() []ShaderTag
}

// Material is the interface that defines a material.
type Material interface {
	// Name returns the material's name.
	Name() string

	// Shader returns the material's shader.
	Shader() Shader
}

// ClearValue defines how the color and depth/stencil
// aspects of a render target are cleared.
// An aspect whose operation is gputypes.LoadOpLoad is
// preserved.
type ClearValue struct {
	ColorOp gputypes.LoadOp
	DepthOp gputypes.LoadOp
	Color   gputypes.Color
	Depth   float32
	Stencil uint32
}

// CullingParams defines the inputs of a culling operation.
type CullingParams struct {
	ViewProj  linear.M4
	Frustum   linear.Frustum
	Position  linear.V3
	LayerMask uint32
}

// CullingResults is the interface that defines the output
// of a culling operation.
// It is owned by the host; renderers only pass it back.
type CullingResults interface {
	// Visible returns the number of objects that
	// survived culling.
	Visible() int
}
