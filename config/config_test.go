package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevk/glTF-Asset-Generator/modelgroup"
)

func writeConfig(t *testing.T, body string) string {
	path := filepath.Join(t.TempDir(), "assetgen.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0644))
	return path
}

func TestLoad(t *testing.T) {
	path := writeConfig(t, `
output: out
groups: [Mesh_Primitives, compatibility, Mesh_Primitives]
glb: true
sampleImages:
  Compatibility: true
`)
	c, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "out", c.Output)
	assert.True(t, c.Binary)
	assert.Equal(t, 4, c.Parallelism)
	assert.Equal(t, "info", c.LogLevel)

	names, err := c.GroupNames()
	require.NoError(t, err)
	assert.Equal(t, []modelgroup.Name{modelgroup.MeshPrimitives, modelgroup.Compatibility}, names)

	g, err := modelgroup.NewCompatibility(nil)
	require.NoError(t, err)
	assert.True(t, g.NoSampleImages)
	assert.False(t, c.NoSampleImages(g))
}

func TestLoadErrors(t *testing.T) {
	for name, body := range map[string]string{
		"unknown key":   "outptu: x\n",
		"unknown group": "groups: [Materials]\n",
		"parallelism":   "parallelism: 0\n",
		"sample images": "sampleImages: {Materials: true}\n",
		"syntax":        "groups: [\n",
	} {
		t.Run(name, func(t *testing.T) {
			_, err := Load(writeConfig(t, body))
			assert.Error(t, err)
		})
	}
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	names, err := c.GroupNames()
	require.NoError(t, err)
	assert.Equal(t, modelgroup.Names(), names)

	g, err := modelgroup.NewMeshPrimitives(nil)
	require.NoError(t, err)
	assert.False(t, c.NoSampleImages(g))
}
