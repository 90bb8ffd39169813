package extensions

import (
	"encoding/json"

	"github.com/qmuntal/gltf"

	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

// QuantumRenderingName is a material extension no loader implements. Models
// that require it must be rejected.
const QuantumRenderingName = "EXT_QuantumRendering"

func init() {
	gltf.RegisterExtension(QuantumRenderingName, UnmarshalQuantumRendering)
}

type QuantumRenderingExt struct {
	PlanckFactor                 [4]float32        `json:"planckFactor"`
	CopenhagenTexture            *gltf.TextureInfo `json:"copenhagenTexture,omitempty"`
	EntanglementFactor           [3]float32        `json:"entanglementFactor"`
	ProbabilisticFactor          float32           `json:"probabilisticFactor"`
	SuperpositionCollapseTexture *gltf.TextureInfo `json:"superpositionCollapseTexture,omitempty"`
}

func UnmarshalQuantumRendering(data []byte) (interface{}, error) {
	var ext QuantumRenderingExt
	if err := json.Unmarshal(data, &ext); err != nil {
		return nil, err
	}
	return &ext, nil
}

// QuantumRendering is the scene graph side of EXT_QuantumRendering.
type QuantumRendering struct {
	PlanckFactor                 geom.Vector4
	CopenhagenTexture            *scene.Texture
	EntanglementFactor           geom.Vector3
	ProbabilisticFactor          float32
	SuperpositionCollapseTexture *scene.Texture
}

func (q *QuantumRendering) ExtensionName() string {
	return QuantumRenderingName
}

func (q *QuantumRendering) Payload(texture func(*scene.Texture) uint32) interface{} {
	ext := &QuantumRenderingExt{
		PlanckFactor:        q.PlanckFactor.Array(),
		EntanglementFactor:  q.EntanglementFactor.Array(),
		ProbabilisticFactor: q.ProbabilisticFactor,
	}
	if q.CopenhagenTexture != nil {
		ext.CopenhagenTexture = &gltf.TextureInfo{Index: texture(q.CopenhagenTexture)}
	}
	if q.SuperpositionCollapseTexture != nil {
		ext.SuperpositionCollapseTexture = &gltf.TextureInfo{Index: texture(q.SuperpositionCollapseTexture)}
	}
	return ext
}
