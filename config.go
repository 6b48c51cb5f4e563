// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rp

import (
	"fmt"
	"os"

	"github.com/pelletier/go-toml/v2"

	"github.com/gviegas/rp/driver"
)

// UnlitShaderTag is the tag of the pass drawn for opaque
// and transparent geometry.
const UnlitShaderTag driver.ShaderTag = "SRPDefaultUnlit"

// ErrorShaderName is the name of the shader used to flag
// objects with unsupported shaders.
const ErrorShaderName = "Hidden/InternalErrorShader"

const dflBufferName = "Render Camera"

var legacyShaderTags = [...]driver.ShaderTag{
	"Always",
	"ForwardBase",
	"PrepassBase",
	"Vertex",
	"VertexLMRGBM",
	"VertexLM",
}

// LegacyShaderTags returns the tags of the passes that the
// pipeline does not support.
func LegacyShaderTags() []driver.ShaderTag {
	tags := legacyShaderTags
	return tags[:]
}

// Config is used to configure the pipeline.
type Config struct {
	// Name of the command buffer and of the profiling
	// sample that encloses each camera's work.
	//
	// Default is "Render Camera".
	BufferName string `toml:"buffer_name"`

	// Color to which the render target is cleared,
	// as RGBA.
	//
	// Default is transparent black.
	ClearColor [4]float64 `toml:"clear_color"`

	// Depth to which the render target is cleared.
	//
	// Default is 1.
	ClearDepth float32 `toml:"clear_depth"`

	// Tag of the pass drawn for visible geometry.
	//
	// Default is UnlitShaderTag.
	UnlitTag driver.ShaderTag `toml:"unlit_tag"`

	// Tags of the passes drawn with the error material.
	// At most driver.MaxPasses tags are allowed.
	//
	// Default is LegacyShaderTags().
	LegacyTags []driver.ShaderTag `toml:"legacy_tags"`

	// Name of the shader used by the error material.
	//
	// Default is ErrorShaderName.
	ErrorShader string `toml:"error_shader"`
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{
		BufferName:  dflBufferName,
		ClearDepth:  1,
		UnlitTag:    UnlitShaderTag,
		LegacyTags:  LegacyShaderTags(),
		ErrorShader: ErrorShaderName,
	}
}

// Validate checks that c is usable.
func (c *Config) Validate() error {
	switch {
	case c.BufferName == "":
		return newConfErr("empty buffer_name")
	case c.UnlitTag == "":
		return newConfErr("empty unlit_tag")
	case c.ErrorShader == "":
		return newConfErr("empty error_shader")
	case len(c.LegacyTags) == 0:
		return newConfErr("no legacy_tags")
	case len(c.LegacyTags) > driver.MaxPasses:
		return newConfErr(fmt.Sprintf("too many legacy_tags (%d > %d)", len(c.LegacyTags), driver.MaxPasses))
	}
	for i, t := range c.LegacyTags {
		if t == "" {
			return newConfErr(fmt.Sprintf("empty legacy_tags[%d]", i))
		}
	}
	return nil
}

// ParseConfig parses a TOML document.
// Keys that are not present keep their default values.
func ParseConfig(data []byte) (Config, error) {
	c := DefaultConfig()
	if err := toml.Unmarshal(data, &c); err != nil {
		return Config{}, fmt.Errorf("rp: parsing config: %w", err)
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadConfig reads and parses the TOML file at path.
func LoadConfig(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("rp: loading config: %w", err)
	}
	return ParseConfig(data)
}
