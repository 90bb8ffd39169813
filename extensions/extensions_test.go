package extensions

import (
	"encoding/json"
	"testing"

	"github.com/qmuntal/gltf"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

func TestUse(t *testing.T) {
	doc := &Document{}
	doc.Use("KHR_materials_unlit", false)
	doc.Use(QuantumRenderingName, true)
	doc.Use(QuantumRenderingName, true)

	assert.Equal(t, []string{"KHR_materials_unlit", QuantumRenderingName}, doc.ExtensionsUsed)
	assert.Equal(t, []string{QuantumRenderingName}, doc.ExtensionsRequired)
	assert.True(t, doc.IsExtensionUsed("KHR_materials_unlit"))
	assert.False(t, doc.IsExtensionRequired("KHR_materials_unlit"))
}

func TestQuantumRenderingPayload(t *testing.T) {
	copenhagen := &scene.Texture{Name: "copenhagen"}
	q := &QuantumRendering{
		PlanckFactor:        *geom.NewVector4(0.2, 0.2, 0.2, 0.8),
		CopenhagenTexture:   copenhagen,
		EntanglementFactor:  *geom.NewVector3(0.4, 0.4, 0.4),
		ProbabilisticFactor: 0.3,
	}
	var asked []*scene.Texture
	payload := q.Payload(func(tex *scene.Texture) uint32 {
		asked = append(asked, tex)
		return 7
	})

	ext, ok := payload.(*QuantumRenderingExt)
	require.True(t, ok)
	assert.Equal(t, []*scene.Texture{copenhagen}, asked)
	require.NotNil(t, ext.CopenhagenTexture)
	assert.Equal(t, uint32(7), ext.CopenhagenTexture.Index)
	assert.Nil(t, ext.SuperpositionCollapseTexture)
	assert.Equal(t, [4]float32{0.2, 0.2, 0.2, 0.8}, ext.PlanckFactor)
}

func TestQuantumRenderingDecode(t *testing.T) {
	raw := `{"name":"q","extensions":{"EXT_QuantumRendering":{"planckFactor":[0.2,0.2,0.2,0.8],"entanglementFactor":[0.4,0.4,0.4],"probabilisticFactor":0.3}}}`
	var mat gltf.Material
	require.NoError(t, json.Unmarshal([]byte(raw), &mat))

	ext, ok := MaterialExtension(&mat, QuantumRenderingName).(*QuantumRenderingExt)
	require.True(t, ok)
	assert.Equal(t, float32(0.3), ext.ProbabilisticFactor)
	assert.Nil(t, MaterialExtension(&mat, "KHR_materials_unlit"))
	assert.Nil(t, MaterialExtension(nil, QuantumRenderingName))
}
