// Copyright 2026 Gustavo C. Viegas. All rights reserved.

package rp

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gviegas/rp/driver"
)

func TestDefaultConfig(t *testing.T) {
	c := DefaultConfig()
	require.NoError(t, c.Validate())
	assert.Equal(t, "Render Camera", c.BufferName)
	assert.Equal(t, [4]float64{}, c.ClearColor)
	assert.Equal(t, float32(1), c.ClearDepth)
	assert.Equal(t, UnlitShaderTag, c.UnlitTag)
	assert.Equal(t, ErrorShaderName, c.ErrorShader)
	assert.Equal(t, []driver.ShaderTag{
		"Always",
		"ForwardBase",
		"PrepassBase",
		"Vertex",
		"VertexLMRGBM",
		"VertexLM",
	}, c.LegacyTags)

	c.LegacyTags[0] = "Changed"
	assert.Equal(t, driver.ShaderTag("Always"), LegacyShaderTags()[0], "LegacyShaderTags should return a copy")
}

func TestParseConfig(t *testing.T) {
	c, err := ParseConfig([]byte(`
buffer_name = "Scene Camera"
clear_color = [0.1, 0.2, 0.3, 1.0]
legacy_tags = ["Always", "Vertex"]
`))
	require.NoError(t, err)
	assert.Equal(t, "Scene Camera", c.BufferName)
	assert.Equal(t, [4]float64{0.1, 0.2, 0.3, 1}, c.ClearColor)
	assert.Equal(t, []driver.ShaderTag{"Always", "Vertex"}, c.LegacyTags)
	assert.Equal(t, UnlitShaderTag, c.UnlitTag, "missing keys should keep defaults")
	assert.Equal(t, float32(1), c.ClearDepth)

	for _, bad := range []string{
		`buffer_name = ""`,
		`unlit_tag = ""`,
		`error_shader = ""`,
		`legacy_tags = []`,
		`legacy_tags = ["Always", ""]`,
		`legacy_tags = ["a","b","c","d","e","f","g","h","i","j","k","l","m","n","o","p","q"]`,
		`buffer_name = `,
	} {
		_, err := ParseConfig([]byte(bad))
		assert.Error(t, err, bad)
	}
}

func TestLoadConfig(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rp.toml")
	require.NoError(t, os.WriteFile(path, []byte(`error_shader = "Hidden/Magenta"`), 0o644))
	c, err := LoadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "Hidden/Magenta", c.ErrorShader)

	_, err = LoadConfig(filepath.Join(t.TempDir(), "missing.toml"))
	assert.Error(t, err)
}
