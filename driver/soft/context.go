// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package soft

import (
	"cmp"
	"slices"

	"github.com/chewxy/math32"
	"github.com/gogpu/gputypes"
	"github.com/google/uuid"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/internal/bitvec"
	"github.com/gviegas/rp/internal/rlog"
	"github.com/gviegas/rp/linear"
)

// EventKind is the kind of a recorded event.
type EventKind int

// Event kinds.
const (
	EvSetupCamera EventKind = iota
	EvCull
	EvExecute
	EvDrawRenderers
	EvDrawSkybox
	EvSubmit
)

func (k EventKind) String() string {
	switch k {
	case EvSetupCamera:
		return "SetupCamera"
	case EvCull:
		return "Cull"
	case EvExecute:
		return "Execute"
	case EvDrawRenderers:
		return "DrawRenderers"
	case EvDrawSkybox:
		return "DrawSkybox"
	case EvSubmit:
		return "Submit"
	}
	return "EventKind(?)"
}

// Event is a call received by the Context.
type Event struct {
	Kind   EventKind
	Camera string

	// Valid for EvExecute.
	Buffer string
	Cmds   []Cmd

	// Valid for EvDrawRenderers.
	Draw *DrawCall

	// Valid for EvCull.
	Visible int
}

// DrawCall describes a DrawRenderers call.
type DrawCall struct {
	Passes    []driver.ShaderTag
	Criteria  driver.SortCriteria
	Queue     driver.RenderQueueRange
	LayerMask uint32
	// Name of the override material, if any.
	Override string
	// Names of the drawn objects, in draw order.
	Objects []string
}

// Frame is the record of a submission.
type Frame struct {
	ID          uuid.UUID
	Events      []Event
	ColorFormat gputypes.TextureFormat
	DepthFormat gputypes.TextureFormat
	// Number of profiling samples left open.
	OpenSamples int
}

// Count returns the number of events of the given kind.
func (f *Frame) Count(kind EventKind) (n int) {
	for i := range f.Events {
		if f.Events[i].Kind == kind {
			n++
		}
	}
	return
}

// Draws returns the DrawRenderers calls, in order.
func (f *Frame) Draws() []*DrawCall {
	var d []*DrawCall
	for i := range f.Events {
		if f.Events[i].Kind == EvDrawRenderers {
			d = append(d, f.Events[i].Draw)
		}
	}
	return d
}

// Context implements driver.Context.
type Context struct {
	gpu     *GPU
	pending []Event
	frames  []Frame
	samples []string
}

// SetupCameraProperties records the camera setup.
func (c *Context) SetupCameraProperties(cam driver.Camera) {
	c.pending = append(c.pending, Event{Kind: EvSetupCamera, Camera: cam.Name()})
}

// CullResults implements driver.CullingResults.
// Results refer to objects by index, so they are stale
// once the scene's object list changes.
type CullResults struct {
	gpu *GPU
	vis bitvec.V[uint64]
	pos linear.V3
}

// Visible returns the number of visible objects.
func (r *CullResults) Visible() int { return r.vis.Count() }

// IsVisible reports whether the object at index i is visible.
func (r *CullResults) IsVisible(i int) bool { return r.vis.IsSet(i) }

// Cull tests every object in the scene against the layer
// mask and frustum in p.
func (c *Context) Cull(p *driver.CullingParams) driver.CullingResults {
	g := c.gpu
	r := &CullResults{gpu: g, pos: p.Position}
	r.vis.Reset(len(g.objects))
	for i := range g.objects {
		obj := &g.objects[i]
		if obj.Layer < 0 || obj.Layer >= 32 || p.LayerMask&(1<<obj.Layer) == 0 {
			continue
		}
		if p.Frustum.SphereVisible(&obj.Center, obj.Radius) {
			r.vis.Set(i)
		}
	}
	c.pending = append(c.pending, Event{Kind: EvCull, Visible: r.Visible()})
	return r
}

// Distances are quantized to this size when sorting
// front-to-back.
const depthBucket = 1

type drawItem struct {
	obj  *Object
	dist float32
}

// DrawRenderers records the visible objects that satisfy ds
// and fs, in the order given by ds.Sorting.
// Culling results from a different GPU draw nothing.
func (c *Context) DrawRenderers(cr driver.CullingResults, ds *driver.DrawingSettings, fs *driver.FilteringSettings) {
	call := &DrawCall{
		Passes:    ds.PassNames(),
		Criteria:  ds.Sorting.Criteria,
		Queue:     fs.Queue,
		LayerMask: fs.LayerMask,
	}
	if ds.OverrideMaterial != nil {
		call.Override = ds.OverrideMaterial.Name()
	}
	var cam string
	if ds.Sorting.Camera != nil {
		cam = ds.Sorting.Camera.Name()
	}
	r, ok := cr.(*CullResults)
	if ok && r.gpu == c.gpu {
		items := c.gather(r, call.Passes, fs, ds.Sorting.Camera)
		sortItems(items, ds.Sorting.Criteria)
		call.Objects = make([]string, len(items))
		for i := range items {
			call.Objects[i] = items[i].obj.Name
		}
	}
	rlog.L().Debug("soft: draw renderers", "camera", cam, "passes", call.Passes, "objects", len(call.Objects))
	c.pending = append(c.pending, Event{Kind: EvDrawRenderers, Camera: cam, Draw: call})
}

func (c *Context) gather(r *CullResults, passes []driver.ShaderTag, fs *driver.FilteringSettings, cam driver.Camera) []drawItem {
	pos := r.pos
	if cam != nil {
		pos = cam.Position()
	}
	var items []drawItem
	for i := range r.vis.Ones() {
		// Objects removed after culling are skipped.
		if i >= len(c.gpu.objects) {
			break
		}
		obj := &c.gpu.objects[i]
		if obj.Material == nil || obj.Material.Shader() == nil {
			continue
		}
		if !fs.Accepts(obj.Material.Queue, obj.Layer) {
			continue
		}
		if !hasPass(obj.Material.Shader(), passes) {
			continue
		}
		items = append(items, drawItem{obj, pos.Dist(&obj.Center)})
	}
	return items
}

func hasPass(s driver.Shader, tags []driver.ShaderTag) bool {
	for _, p := range s.Passes() {
		if slices.Contains(tags, p) {
			return true
		}
	}
	return false
}

func sortItems(items []drawItem, crit driver.SortCriteria) {
	if crit == driver.SortNone {
		return
	}
	slices.SortStableFunc(items, func(a, b drawItem) int {
		if crit&driver.SortRenderQueue != 0 {
			if n := cmp.Compare(a.obj.Material.Queue, b.obj.Material.Queue); n != 0 {
				return n
			}
		}
		switch {
		case crit&driver.SortBackToFront != 0:
			if n := cmp.Compare(b.dist, a.dist); n != 0 {
				return n
			}
		case crit&driver.SortQuantizedFrontToBack != 0:
			qa := math32.Floor(a.dist / depthBucket)
			qb := math32.Floor(b.dist / depthBucket)
			if n := cmp.Compare(qa, qb); n != 0 {
				return n
			}
		}
		if crit&driver.SortOptimizeStateChanges != 0 {
			if n := cmp.Compare(a.obj.Material.Name(), b.obj.Material.Name()); n != 0 {
				return n
			}
		}
		return cmp.Compare(a.obj.Name, b.obj.Name)
	})
}

// DrawSkybox records a skybox draw.
func (c *Context) DrawSkybox(cam driver.Camera) {
	c.pending = append(c.pending, Event{Kind: EvDrawSkybox, Camera: cam.Name()})
}

// ExecuteCmdBuffer copies the commands recorded in cb.
// Command buffers not created by this package are recorded
// with no commands.
func (c *Context) ExecuteCmdBuffer(cb driver.CmdBuffer) {
	ev := Event{Kind: EvExecute, Buffer: cb.Name()}
	if scb, ok := cb.(*CmdBuffer); ok {
		ev.Cmds = slices.Clone(scb.cmds)
		for _, cmd := range scb.cmds {
			switch cmd.Kind {
			case CmdBeginSample:
				c.samples = append(c.samples, cmd.Name)
			case CmdEndSample:
				if n := len(c.samples); n > 0 && c.samples[n-1] == cmd.Name {
					c.samples = c.samples[:n-1]
				} else {
					rlog.L().Warn("soft: unbalanced sample", "name", cmd.Name)
				}
			}
		}
	}
	c.pending = append(c.pending, ev)
}

// Submit closes the current frame.
func (c *Context) Submit() {
	c.pending = append(c.pending, Event{Kind: EvSubmit})
	f := Frame{
		ID:          uuid.New(),
		Events:      c.pending,
		ColorFormat: ColorFormat,
		DepthFormat: DepthFormat,
		OpenSamples: len(c.samples),
	}
	c.frames = append(c.frames, f)
	c.pending = nil
	c.samples = c.samples[:0]
	rlog.L().Debug("soft: submit", "frame", f.ID, "events", len(f.Events))
}

// Pending returns the events recorded since the last
// submission.
func (c *Context) Pending() []Event { return c.pending }

// Frames returns the submitted frames, oldest first.
func (c *Context) Frames() []Frame { return c.frames }

// LastFrame returns the most recently submitted frame.
// It returns false if nothing was submitted.
func (c *Context) LastFrame() (Frame, bool) {
	if len(c.frames) == 0 {
		return Frame{}, false
	}
	return c.frames[len(c.frames)-1], true
}

// Reset discards all recorded events and frames.
func (c *Context) Reset() {
	c.pending = nil
	c.frames = nil
	c.samples = c.samples[:0]
}
