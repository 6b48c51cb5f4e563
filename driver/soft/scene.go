// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package soft

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/gviegas/rp/driver"
	"github.com/gviegas/rp/linear"
)

// SceneFile is the YAML description of a scene.
// Fields other than these (e.g., cameras) are ignored.
type SceneFile struct {
	Shaders []struct {
		Name   string             `yaml:"name"`
		Passes []driver.ShaderTag `yaml:"passes"`
	} `yaml:"shaders"`
	Materials []struct {
		Name   string `yaml:"name"`
		Shader string `yaml:"shader"`
		Queue  *int   `yaml:"queue"`
	} `yaml:"materials"`
	Objects []struct {
		Name     string    `yaml:"name"`
		Center   linear.V3 `yaml:"center"`
		Radius   float32   `yaml:"radius"`
		Layer    int       `yaml:"layer"`
		Material string    `yaml:"material"`
	} `yaml:"objects"`
}

// LoadScene parses a YAML scene and adds its shaders,
// materials and objects to g.
// It returns the number of objects added.
// On error, g may have been partially modified.
func (g *GPU) LoadScene(data []byte) (int, error) {
	var sf SceneFile
	if err := yaml.Unmarshal(data, &sf); err != nil {
		return 0, fmt.Errorf("soft: parsing scene: %w", err)
	}
	for _, s := range sf.Shaders {
		if s.Name == "" {
			return 0, newSoftErr("shader with empty name")
		}
		g.RegisterShader(s.Name, s.Passes...)
	}
	mats := make(map[string]*Material, len(sf.Materials))
	for _, m := range sf.Materials {
		s, err := g.FindShader(m.Shader)
		if err != nil {
			return 0, fmt.Errorf("soft: material %q: %w", m.Name, err)
		}
		q := driver.RenderQueueGeometry
		if m.Queue != nil {
			q = *m.Queue
		}
		mats[m.Name] = g.NewMaterialQueue(m.Name, s, q)
	}
	var n int
	for _, o := range sf.Objects {
		mat, ok := mats[o.Material]
		if !ok {
			return n, fmt.Errorf("soft: object %q: unknown material %q", o.Name, o.Material)
		}
		if o.Radius < 0 {
			return n, fmt.Errorf("soft: object %q: negative radius", o.Name)
		}
		g.AddObject(Object{
			Name:     o.Name,
			Center:   o.Center,
			Radius:   o.Radius,
			Layer:    o.Layer,
			Material: mat,
		})
		n++
	}
	return n, nil
}
