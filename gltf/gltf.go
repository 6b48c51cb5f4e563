// Copyright 2022 Gustavo C. Viegas. All rights reserved.

// Package gltf decodes the parts of glTF 2.0 that describe
// the layout of a scene: nodes, cameras, materials and the
// bounds of mesh primitives.
// Buffer contents are never read.
package gltf

import (
	"bufio"
	"encoding/json"
	"io"
)

// Root glTF object.
type GLTF struct {
	ExtensionsUsed []string `json:"extensionsUsed,omitempty"`
	Asset          struct {
		Generator string `json:"generator,omitempty"`
		Version   string `json:"version"`
	} `json:"asset"`
	Accessors []Accessor `json:"accessors,omitempty"`
	Cameras   []Camera   `json:"cameras,omitempty"`
	Materials []Material `json:"materials,omitempty"`
	Meshes    []Mesh     `json:"meshes,omitempty"`
	Nodes     []Node     `json:"nodes,omitempty"`
	Scene     *int64     `json:"scene,omitempty"`
	Scenes    []Scene    `json:"scenes,omitempty"`
}

// glTF.accessors' element.
// Only the bounds are of interest.
type Accessor struct {
	ComponentType int64     `json:"componentType"`
	Count         int64     `json:"count"`
	Type          string    `json:"type"`
	Max           []float32 `json:"max,omitempty"`
	Min           []float32 `json:"min,omitempty"`
	Name          string    `json:"name,omitempty"`
}

// accessor.componentType values.
const (
	BYTE           = 5120
	UNSIGNED_BYTE  = 5121
	SHORT          = 5122
	UNSIGNED_SHORT = 5123
	UNSIGNED_INT   = 5125
	FLOAT          = 5126
)

// accessor.type values.
const (
	SCALAR = "SCALAR"
	VEC2   = "VEC2"
	VEC3   = "VEC3"
	VEC4   = "VEC4"
	MAT2   = "MAT2"
	MAT3   = "MAT3"
	MAT4   = "MAT4"
)

// components returns the number of components of an
// accessor type, or 0 if typ is not valid.
func components(typ string) int {
	switch typ {
	case SCALAR:
		return 1
	case VEC2:
		return 2
	case VEC3:
		return 3
	case VEC4, MAT2:
		return 4
	case MAT3:
		return 9
	case MAT4:
		return 16
	}
	return 0
}

// glTF.cameras' element.
type Camera struct {
	Orthographic *Orthographic `json:"orthographic,omitempty"`
	Perspective  *Perspective  `json:"perspective,omitempty"`
	Type         string        `json:"type"`
	Name         string        `json:"name,omitempty"`
}

// camera.orthographic.
type Orthographic struct {
	Xmag  float32 `json:"xmag"`
	Ymag  float32 `json:"ymag"`
	Zfar  float32 `json:"zfar"`
	Znear float32 `json:"znear"`
}

// camera.perspective.
type Perspective struct {
	AspectRatio float32 `json:"aspectRatio,omitempty"`
	YFOV        float32 `json:"yfov"`
	Zfar        float32 `json:"zfar,omitempty"` // 0 for infinite perspective.
	Znear       float32 `json:"znear"`
}

// camera.type values.
const (
	Tperspective  = "perspective"
	Torthographic = "orthographic"
)

// glTF.materials' element.
type Material struct {
	AlphaMode   string                     `json:"alphaMode,omitempty"` // Default is "OPAQUE".
	DoubleSided bool                       `json:"doubleSided,omitempty"`
	Name        string                     `json:"name,omitempty"`
	Extensions  map[string]json.RawMessage `json:"extensions,omitempty"`
}

// material.alphaMode values.
const (
	OPAQUE = "OPAQUE"
	MASK   = "MASK"
	BLEND  = "BLEND"
)

// KHRMaterialsUnlit is the name of the extension that
// marks a material as unlit.
const KHRMaterialsUnlit = "KHR_materials_unlit"

// Unlit reports whether m uses the KHR_materials_unlit
// extension.
func (m *Material) Unlit() bool {
	_, ok := m.Extensions[KHRMaterialsUnlit]
	return ok
}

// glTF.meshes' element.
type Mesh struct {
	Primitives []Primitive `json:"primitives"`
	Name       string      `json:"name,omitempty"`
}

// mesh.primitives' element.
type Primitive struct {
	Attributes map[string]int64 `json:"attributes"`
	Indices    *int64           `json:"indices,omitempty"`
	Material   *int64           `json:"material,omitempty"`
	Mode       *int64           `json:"mode,omitempty"` // Default is 4.
}

// primitive.attributes key of vertex positions.
const POSITION = "POSITION"

// glTF.nodes' element.
// XXX: Way too many pointers here.
type Node struct {
	Camera      *int64       `json:"camera,omitempty"`
	Children    []int64      `json:"children,omitempty"`
	Matrix      *[16]float32 `json:"matrix,omitempty"` // Default is identity.
	Mesh        *int64       `json:"mesh,omitempty"`
	Rotation    *[4]float32  `json:"rotation,omitempty"`    // Default is [0, 0, 0, 1].
	Scale       *[3]float32  `json:"scale,omitempty"`       // Default is [1, 1, 1].
	Translation *[3]float32  `json:"translation,omitempty"` // Default is [0, 0, 0].
	Name        string       `json:"name,omitempty"`
	Extras      *NodeExtras  `json:"extras,omitempty"`
}

// node.extras as written by exporters that tag nodes
// with a render layer.
type NodeExtras struct {
	Layer int `json:"layer,omitempty"`
}

// glTF.scenes' element.
type Scene struct {
	Nodes []int64 `json:"nodes,omitempty"`
	Name  string  `json:"name,omitempty"`
}

// Encode encodes gltf into w as JSON.
func Encode(w io.Writer, gltf *GLTF) error {
	return json.NewEncoder(w).Encode(gltf)
}

// Decode decodes r into a new GLTF instance.
// r may refer to either a JSON document or a GLB blob.
// The result is not checked for validity; call Check
// for that.
func Decode(r io.Reader) (*GLTF, error) {
	br := bufio.NewReader(r)
	if b, err := br.Peek(4); err == nil && isMagic(b) {
		n, err := SeekJSON(br)
		if err != nil {
			return nil, err
		}
		r = io.LimitReader(br, int64(n))
	} else {
		r = br
	}
	var gltf GLTF
	if err := json.NewDecoder(r).Decode(&gltf); err != nil {
		return nil, err
	}
	return &gltf, nil
}
