package gltfutil

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBufferURI(t *testing.T) {
	assert.Equal(t, "Mesh_Primitives_00.bin", BufferURI("Mesh_Primitives_00", 0))
	assert.Equal(t, "Mesh_Primitives_00_2.bin", BufferURI("Mesh_Primitives_00", 2))

	doc := &gltf.Document{Buffers: []*gltf.Buffer{{}, {}}}
	SetBufferURIs(doc, "a")
	assert.Equal(t, "a.bin", doc.Buffers[0].URI)
	assert.Equal(t, "a_1.bin", doc.Buffers[1].URI)
}

func TestToSingleFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "tex.png"), []byte{0x89, 'P', 'N', 'G'}, 0644))

	doc := &gltf.Document{
		Buffers: []*gltf.Buffer{{URI: "a.bin", ByteLength: 2, Data: []byte{1, 2}}},
		Images:  []*gltf.Image{{URI: "tex.png"}, {URI: "missing.jpg"}},
	}
	single, err := ToSingleFile(doc, dir)
	require.NoError(t, err)

	assert.Equal(t, "", single.Buffers[0].URI)
	require.NotNil(t, single.Images[0].BufferView)
	assert.Equal(t, "", single.Images[0].URI)
	assert.Equal(t, "image/png", single.Images[0].MimeType)
	assert.Equal(t, "missing.jpg", single.Images[1].URI)
	assert.Len(t, single.BufferViews, 1)

	// the source document keeps its external references
	assert.Equal(t, "a.bin", doc.Buffers[0].URI)
	assert.Equal(t, "tex.png", doc.Images[0].URI)
	assert.Nil(t, doc.Images[0].BufferView)
	assert.Empty(t, doc.BufferViews)
	assert.Equal(t, []byte{1, 2}, doc.Buffers[0].Data)
}

func TestToSingleFileRejectsManyBuffers(t *testing.T) {
	doc := &gltf.Document{Buffers: []*gltf.Buffer{{Data: []byte{1}}, {Data: []byte{2}}}}
	_, err := ToSingleFile(doc, "")
	assert.Error(t, err)
}

func TestCanLoad(t *testing.T) {
	loader, err := NewLoader("2.0")
	require.NoError(t, err)

	for _, tc := range []struct {
		name     string
		asset    gltf.Asset
		required []string
		want     bool
	}{
		{"current", gltf.Asset{Version: "2.0"}, nil, true},
		{"future minor", gltf.Asset{Version: "2.1"}, nil, true},
		{"future major", gltf.Asset{Version: "3.0"}, nil, false},
		{"min version", gltf.Asset{Version: "2.1", MinVersion: "2.1"}, nil, false},
		{"old min version", gltf.Asset{Version: "2.1", MinVersion: "2.0"}, nil, true},
		{"extension required", gltf.Asset{Version: "2.0"}, []string{"EXT_QuantumRendering"}, false},
	} {
		t.Run(tc.name, func(t *testing.T) {
			ok, err := loader.CanLoad(tc.asset, tc.required)
			require.NoError(t, err)
			assert.Equal(t, tc.want, ok)
		})
	}

	newer, err := NewLoader("2.1.0", "EXT_QuantumRendering")
	require.NoError(t, err)
	ok, err := newer.CanLoad(gltf.Asset{Version: "2.1", MinVersion: "2.1"}, []string{"EXT_QuantumRendering"})
	require.NoError(t, err)
	assert.True(t, ok)

	_, err = loader.CanLoad(gltf.Asset{Version: "two"}, nil)
	assert.Error(t, err)
	_, err = NewLoader("")
	assert.Error(t, err)
}

func TestLoaderLoad(t *testing.T) {
	dir := t.TempDir()
	plain := filepath.Join(dir, "plain.gltf")
	require.NoError(t, gltf.Save(&gltf.Document{Asset: gltf.Asset{Version: "2.0"}}, plain))
	required := filepath.Join(dir, "required.gltf")
	require.NoError(t, gltf.Save(&gltf.Document{
		Asset:              gltf.Asset{Version: "2.0"},
		ExtensionsUsed:     []string{"EXT_QuantumRendering"},
		ExtensionsRequired: []string{"EXT_QuantumRendering"},
	}, required))
	newer := filepath.Join(dir, "newer.gltf")
	require.NoError(t, gltf.Save(&gltf.Document{Asset: gltf.Asset{Version: "2.1", MinVersion: "2.1"}}, newer))

	loader, err := NewLoader("2.0")
	require.NoError(t, err)
	doc, err := loader.Load(plain)
	require.NoError(t, err)
	assert.Equal(t, "2.0", doc.Asset.Version)

	_, err = loader.Load(required)
	assert.ErrorIs(t, err, ErrNotLoadable)
	_, err = loader.Load(newer)
	assert.ErrorIs(t, err, ErrNotLoadable)
	_, err = loader.Load(filepath.Join(dir, "missing.gltf"))
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrNotLoadable)
}
