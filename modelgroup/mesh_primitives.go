package modelgroup

import (
	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/scene"
	"github.com/stevk/glTF-Asset-Generator/shapes"
)

// primitiveMaterials is the read-only palette every Mesh_Primitives model shares.
type primitiveMaterials struct {
	green geom.Vector4
	blue  geom.Vector4
}

func (p primitiveMaterials) material(index int) (string, geom.Vector4) {
	if index == 0 {
		return "Material 0", p.green
	}
	return "Material 1", p.blue
}

// NewMeshPrimitives tests a mesh made of two primitives with their own materials.
func NewMeshPrimitives(figures []string) (*Group, error) {
	g := newGroup(MeshPrimitives)
	g.UseFigure(figures, "Indices_Primitive0")
	g.UseFigure(figures, "Indices_Primitive1")

	palette := primitiveMaterials{
		green: geom.Vector4{X: 0, Y: 1, Z: 0, W: 1},
		blue:  geom.Vector4{X: 0, Y: 0, Z: 1, W: 1},
	}
	g.CommonProperties = []property.Property{
		property.New(property.Material0WithBaseColorFactor, palette.green),
		property.New(property.Material1WithBaseColorFactor, palette.blue),
	}
	template := shapes.MultiPrimitivePlane(shapes.Options{})

	setMaterial := func(props *property.List, name property.Name, prim *scene.Primitive, material int) {
		label, color := palette.material(material)
		prim.Material = &scene.Material{
			PBRMetallicRoughness: &scene.PBRMetallicRoughness{BaseColorFactor: &color},
		}
		props.Add(name, label)
	}

	variants := []func(props *property.List, prim0, prim1 *scene.Primitive){
		func(props *property.List, prim0, prim1 *scene.Primitive) {},
		func(props *property.List, prim0, prim1 *scene.Primitive) {
			setMaterial(props, property.Primitive0, prim0, 0)
			setMaterial(props, property.Primitive1, prim1, 1)
		},
		func(props *property.List, prim0, prim1 *scene.Primitive) {
			setMaterial(props, property.Primitive0, prim0, 1)
			setMaterial(props, property.Primitive1, prim1, 0)
		},
	}
	for _, set := range variants {
		prims, err := clonePrimitives(template)
		if err != nil {
			return nil, err
		}
		var props property.List
		set(&props, prims[0], prims[1])
		g.addModel(&props, meshGraph(prims...), nil)
	}
	return g, g.GenerateUsedPropertiesList()
}
