// Package shapes produces the fixed geometry the model groups are built on.
// Every call returns fresh data.
package shapes

import (
	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

type Options struct {
	TextureCoords bool
}

var planePositions = []geom.Vector3{
	{X: 0.5, Y: -0.5, Z: 0},
	{X: -0.5, Y: -0.5, Z: 0},
	{X: -0.5, Y: 0.5, Z: 0},
	{X: 0.5, Y: 0.5, Z: 0},
}

var planeTexCoords = []geom.Vector2{
	{X: 1, Y: 1},
	{X: 0, Y: 1},
	{X: 0, Y: 0},
	{X: 1, Y: 0},
}

func planePrimitive(opts Options, indices []uint32) *scene.Primitive {
	p := &scene.Primitive{
		Positions: append([]geom.Vector3(nil), planePositions...),
		Normals:   make([]geom.Vector3, len(planePositions)),
		Indices:   indices,
	}
	for i := range p.Normals {
		p.Normals[i] = geom.Vector3{X: 0, Y: 0, Z: 1}
	}
	if opts.TextureCoords {
		p.TextureCoordSets = [][]geom.Vector2{append([]geom.Vector2(nil), planeTexCoords...)}
	}
	return p
}

// SinglePlane is a unit quad facing +Z made of two triangles.
func SinglePlane(opts Options) *scene.Primitive {
	return planePrimitive(opts, []uint32{1, 0, 3, 1, 3, 2})
}

// MultiPrimitivePlane is the same quad split into one primitive per triangle.
func MultiPrimitivePlane(opts Options) []*scene.Primitive {
	return []*scene.Primitive{
		planePrimitive(opts, []uint32{1, 0, 3}),
		planePrimitive(opts, []uint32{1, 3, 2}),
	}
}

// MeshScene wraps primitives in a scene with a single mesh node.
func MeshScene(prims ...*scene.Primitive) *scene.Scene {
	return &scene.Scene{
		Nodes: []*scene.Node{
			{Mesh: &scene.Mesh{Primitives: prims}},
		},
	}
}
