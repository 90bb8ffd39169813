package modelgroup

import (
	"github.com/jinzhu/copier"
	"github.com/pkg/errors"

	"github.com/stevk/glTF-Asset-Generator/scene"
	"github.com/stevk/glTF-Asset-Generator/shapes"
)

// clonePrimitives deep copies the group's template primitives for one model.
func clonePrimitives(template []*scene.Primitive) ([]*scene.Primitive, error) {
	var prims []*scene.Primitive
	if err := copier.CopyWithOption(&prims, template, copier.Option{DeepCopy: true}); err != nil {
		return nil, errors.Wrap(err, "copy primitive template")
	}
	return prims, nil
}

func meshGraph(prims ...*scene.Primitive) *scene.Graph {
	return &scene.Graph{Scenes: []*scene.Scene{shapes.MeshScene(prims...)}}
}
