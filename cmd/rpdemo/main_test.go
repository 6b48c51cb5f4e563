// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/rp/camera"
)

func TestRun(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{
		"-scene", "testdata/scene.yaml",
		"-config", "testdata/rp.toml",
		"-frames", "2",
	}, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "scene loaded")
	assert.Equal(t, 4, strings.Count(s, "msg=submitted"), "two frames of two renderable cameras")
	assert.Contains(t, s, "camera=main")
	assert.Contains(t, s, "camera=top")
	assert.NotContains(t, s, "camera=broken")
}

func TestRunErrors(t *testing.T) {
	var out bytes.Buffer
	assert.Error(t, run(nil, &out))
	assert.Error(t, run([]string{"-scene", "testdata/missing.yaml"}, &out))
	assert.Error(t, run([]string{"-scene", "testdata/scene.yaml", "-driver", "nope"}, &out))
	assert.Error(t, run([]string{"-scene", "testdata/scene.yaml", "-config", "testdata/missing.toml"}, &out))
	assert.Error(t, run([]string{"-bogus"}, &out))
}

func TestLoadCameras(t *testing.T) {
	cams, err := loadCameras([]byte(`
cameras:
  - name: a
    position: [1, 2, 3]
    near: 0.5
    far: 50
    layer_mask: 3
  - name: b
    orthographic: true
    size: 4
`))
	require.NoError(t, err)
	require.Len(t, cams, 2)
	a := cams[0].(*camera.Camera)
	assert.Equal(t, "a", a.Name())
	assert.Equal(t, float32(0.5), a.Near)
	assert.Equal(t, float32(50), a.Far)
	assert.Equal(t, uint32(3), a.LayerMask)
	b := cams[1].(*camera.Camera)
	assert.Equal(t, camera.Orthographic, b.Kind)
	assert.Equal(t, float32(4), b.Size)

	_, err = loadCameras([]byte("objects: []"))
	assert.Error(t, err)
}

func TestRunGLTF(t *testing.T) {
	var out bytes.Buffer
	err := run([]string{"-scene", "testdata/scene.gltf", "-v"}, &out)
	require.NoError(t, err)
	s := out.String()
	assert.Contains(t, s, "objects=4")
	assert.Equal(t, 2, strings.Count(s, "msg=submitted"))
	assert.Contains(t, s, "camera=main")
	assert.Contains(t, s, "camera=top")
}
