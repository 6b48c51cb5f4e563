// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package driver

import (
	"slices"
	"testing"
)

func TestSortCriteria(t *testing.T) {
	for _, x := range [...]struct {
		c    SortCriteria
		want string
	}{
		{SortNone, "None"},
		{SortCommonOpaque, "RenderQueue|QuantizedFrontToBack|OptimizeStateChanges"},
		{SortCommonTransparent, "RenderQueue|BackToFront|OptimizeStateChanges"},
	} {
		if s := x.c.String(); s != x.want {
			t.Fatalf("SortCriteria.String\nhave %q\nwant %q", s, x.want)
		}
	}
	if SortCommonOpaque&SortBackToFront != 0 {
		t.Fatal("SortCommonOpaque: should not sort back-to-front")
	}
	if SortCommonTransparent&SortQuantizedFrontToBack != 0 {
		t.Fatal("SortCommonTransparent: should not sort front-to-back")
	}
}

func TestDrawingSettings(t *testing.T) {
	ds := NewDrawingSettings("Always", SortingSettings{})
	if tags := ds.PassNames(); !slices.Equal(tags, []ShaderTag{"Always"}) {
		t.Fatalf("NewDrawingSettings: PassNames\nhave %v\nwant [Always]", tags)
	}
	ds.SetShaderPassName(1, "ForwardBase")
	ds.SetShaderPassName(MaxPasses-1, "VertexLM")
	want := []ShaderTag{"Always", "ForwardBase", "VertexLM"}
	if tags := ds.PassNames(); !slices.Equal(tags, want) {
		t.Fatalf("DrawingSettings.SetShaderPassName\nhave %v\nwant %v", tags, want)
	}
	defer func() {
		if recover() == nil {
			t.Fatal("DrawingSettings.SetShaderPassName: should panic when out of range")
		}
	}()
	ds.SetShaderPassName(MaxPasses, "Vertex")
}

func TestFilteringSettings(t *testing.T) {
	if QueueOpaque.Upper+1 != QueueTransparent.Lower {
		t.Fatal("QueueOpaque and QueueTransparent should be adjacent")
	}
	fs := DefaultFiltering()
	if fs.Queue != QueueAll || fs.LayerMask != AllLayers {
		t.Fatalf("DefaultFiltering\nhave %+v\nwant {%v %#x}", fs, QueueAll, AllLayers)
	}
	for _, x := range [...]struct {
		fs           FilteringSettings
		queue, layer int
		want         bool
	}{
		{NewFilteringSettings(QueueOpaque), RenderQueueGeometry, 0, true},
		{NewFilteringSettings(QueueOpaque), RenderQueueTransparent, 0, false},
		{NewFilteringSettings(QueueTransparent), RenderQueueTransparent, 31, true},
		{NewFilteringSettings(QueueTransparent), 2500, 0, false},
		{FilteringSettings{QueueAll, 1 << 3}, RenderQueueGeometry, 3, true},
		{FilteringSettings{QueueAll, 1 << 3}, RenderQueueGeometry, 4, false},
		{DefaultFiltering(), RenderQueueOverlay, 32, false},
		{DefaultFiltering(), 5001, 0, false},
	} {
		if ok := x.fs.Accepts(x.queue, x.layer); ok != x.want {
			t.Fatalf("FilteringSettings.Accepts(%d, %d) with %+v\nhave %t\nwant %t", x.queue, x.layer, x.fs, ok, x.want)
		}
	}
}
