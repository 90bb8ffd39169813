package modelgroup

import (
	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/scene"
	"github.com/stevk/glTF-Asset-Generator/shapes"
)

// vertexColors are shared by every model so they all show the same colors
// whatever the accessor layout.
var vertexColors = []geom.Vector4{
	{X: 0, Y: 1, Z: 0, W: 0.2},
	{X: 1, Y: 0, Z: 0, W: 0.2},
	{X: 1, Y: 1, Z: 0, W: 0.2},
	{X: 0, Y: 0, Z: 1, W: 0.2},
}

// NewMeshPrimitiveVertexColor tests every accessor layout COLOR_0 allows.
func NewMeshPrimitiveVertexColor(figures []string) (*Group, error) {
	g := newGroup(MeshPrimitiveVertexColor)
	template := []*scene.Primitive{shapes.SinglePlane(shapes.Options{})}

	setVertexColor := func(props *property.List, prim *scene.Primitive, typ scene.ColorType, comp scene.ColorComponentType) {
		prim.ColorType = typ
		prim.ColorComponentType = comp
		props.Add(property.VertexColor, property.VertexColorLayout{ComponentType: comp, Type: typ})
	}

	for _, typ := range []scene.ColorType{scene.ColorVec3, scene.ColorVec4} {
		for _, comp := range []scene.ColorComponentType{scene.ColorFloat, scene.ColorNormalizedUByte, scene.ColorNormalizedUShort} {
			prims, err := clonePrimitives(template)
			if err != nil {
				return nil, err
			}
			prim := prims[0]
			prim.Colors = append([]geom.Vector4(nil), vertexColors...)
			prim.TextureCoordSets = nil

			var props property.List
			setVertexColor(&props, prim, typ, comp)
			g.addModel(&props, meshGraph(prim), nil)
		}
	}
	return g, g.GenerateUsedPropertiesList()
}
