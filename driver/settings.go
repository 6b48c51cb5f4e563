// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"strings"
)

// ShaderTag identifies a category of shader pass.
type ShaderTag string

// MaxPasses is the maximum number of shader passes that
// a DrawingSettings can name.
const MaxPasses = 16

// SortCriteria is a mask of sorting criteria.
type SortCriteria int

// Sorting criteria.
const (
	// Sort by render queue.
	SortRenderQueue SortCriteria = 1 << iota
	// Sort front-to-back by coarse distance buckets.
	SortQuantizedFrontToBack
	// Sort back-to-front by distance.
	SortBackToFront
	// Group objects that share a material.
	SortOptimizeStateChanges

	SortNone SortCriteria = 0

	// Criteria commonly used for opaque objects.
	SortCommonOpaque = SortRenderQueue | SortQuantizedFrontToBack | SortOptimizeStateChanges

	// Criteria commonly used for transparent objects.
	SortCommonTransparent = SortRenderQueue | SortBackToFront | SortOptimizeStateChanges
)

// String implements fmt.Stringer.
func (c SortCriteria) String() string {
	if c == SortNone {
		return "None"
	}
	var s []string
	for _, x := range [...]struct {
		c SortCriteria
		s string
	}{
		{SortRenderQueue, "RenderQueue"},
		{SortQuantizedFrontToBack, "QuantizedFrontToBack"},
		{SortBackToFront, "BackToFront"},
		{SortOptimizeStateChanges, "OptimizeStateChanges"},
	} {
		if c&x.c != 0 {
			s = append(s, x.s)
		}
	}
	return strings.Join(s, "|")
}

// SortingSettings defines how visible objects are ordered
// for drawing.
type SortingSettings struct {
	Camera   Camera
	Criteria SortCriteria
}

// DrawingSettings defines which shader passes are drawn and
// how objects are ordered.
type DrawingSettings struct {
	Sorting SortingSettings
	Passes  [MaxPasses]ShaderTag

	// OverrideMaterial, if not nil, is used in place of
	// every object's own material.
	OverrideMaterial Material
}

// NewDrawingSettings creates drawing settings for a single
// shader pass.
func NewDrawingSettings(tag ShaderTag, sorting SortingSettings) DrawingSettings {
	return DrawingSettings{
		Sorting: sorting,
		Passes:  [MaxPasses]ShaderTag{tag},
	}
}

// SetShaderPassName sets the tag of the ith pass.
// It panics if i is not in the range [0, MaxPasses).
func (s *DrawingSettings) SetShaderPassName(i int, tag ShaderTag) { s.Passes[i] = tag }

// PassNames returns the non-empty pass tags, in order.
func (s *DrawingSettings) PassNames() []ShaderTag {
	var tags []ShaderTag
	for _, t := range s.Passes {
		if t != "" {
			tags = append(tags, t)
		}
	}
	return tags
}

// RenderQueueRange is an inclusive range of render queues.
type RenderQueueRange struct {
	Lower int
	Upper int
}

// Render queue ranges.
var (
	QueueOpaque      = RenderQueueRange{0, 2500}
	QueueTransparent = RenderQueueRange{2501, 5000}
	QueueAll         = RenderQueueRange{0, 5000}
)

// Common render queues.
const (
	RenderQueueBackground  = 1000
	RenderQueueGeometry    = 2000
	RenderQueueAlphaTest   = 2450
	RenderQueueTransparent = 3000
	RenderQueueOverlay     = 4000
)

// Contains reports whether q is within r.
func (r RenderQueueRange) Contains(q int) bool { return q >= r.Lower && q <= r.Upper }

// AllLayers is a layer mask that matches every layer.
const AllLayers = ^uint32(0)

// FilteringSettings defines which visible objects are
// considered by a draw call.
type FilteringSettings struct {
	Queue     RenderQueueRange
	LayerMask uint32
}

// NewFilteringSettings creates filtering settings that
// accept every layer within the given queue range.
func NewFilteringSettings(r RenderQueueRange) FilteringSettings {
	return FilteringSettings{Queue: r, LayerMask: AllLayers}
}

// DefaultFiltering returns filtering settings that impose
// no restriction.
func DefaultFiltering() FilteringSettings { return NewFilteringSettings(QueueAll) }

// Accepts reports whether an object in the given queue
// and layer passes the filter.
// Layers outside [0, 32) are never accepted.
func (f *FilteringSettings) Accepts(queue, layer int) bool {
	if layer < 0 || layer >= 32 {
		return false
	}
	return f.Queue.Contains(queue) && f.LayerMask&(1<<layer) != 0
}
