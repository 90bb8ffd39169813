package shapes

import (
	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

// PlaneWithSkin is a 1x1 plane split in two rows, skinned to a chain of two
// joints. The lower two vertices follow the root joint, the rest the mid joint.
func PlaneWithSkin() *scene.Scene {
	color := geom.Vector4{X: 0.8, Y: 0.8, Z: 0.8, W: 0.8}
	prim := &scene.Primitive{
		Positions: []geom.Vector3{
			{X: -0.5, Y: -0.5, Z: 0},
			{X: 0.5, Y: -0.5, Z: 0},
			{X: -0.5, Y: 0, Z: 0},
			{X: 0.5, Y: 0, Z: 0},
			{X: -0.5, Y: 0.5, Z: 0},
			{X: 0.5, Y: 0.5, Z: 0},
		},
		Indices:  []uint32{0, 1, 2, 2, 1, 3, 2, 3, 4, 4, 3, 5},
		Material: &scene.Material{DoubleSided: true},
	}
	for range prim.Positions {
		prim.Normals = append(prim.Normals, geom.Vector3{X: 0, Y: 0, Z: 1})
		prim.Colors = append(prim.Colors, color)
	}

	midJoint := &scene.Node{Name: "midJoint", Translation: geom.NewVector3(0, 0.5, 0)}
	rootJoint := &scene.Node{
		Name:        "rootJoint",
		Translation: geom.NewVector3(0, -0.5, 0),
		Children:    []*scene.Node{midJoint},
	}
	plane := &scene.Node{
		Name: "plane",
		Skin: &scene.Skin{},
		Mesh: &scene.Mesh{Primitives: []*scene.Primitive{prim}},
	}

	rootWorld := rootJoint.LocalMatrix()
	midWorld := rootWorld.Mul(midJoint.LocalMatrix())
	plane.Skin.Joints = []*scene.SkinJoint{
		scene.NewSkinJoint(rootWorld.Inverse(), rootJoint),
		scene.NewSkinJoint(midWorld.Inverse(), midJoint),
	}

	root, mid := plane.Skin.Joints[0], plane.Skin.Joints[1]
	prim.JointWeights = [][]scene.JointWeight{
		{{Joint: root, Weight: 1}},
		{{Joint: root, Weight: 1}},
		{{Joint: root, Weight: 0}, {Joint: mid, Weight: 1}},
		{{Joint: root, Weight: 0}, {Joint: mid, Weight: 1}},
		{{Joint: root, Weight: 0}, {Joint: mid, Weight: 1}},
		{{Joint: root, Weight: 0}, {Joint: mid, Weight: 1}},
	}

	return &scene.Scene{Nodes: []*scene.Node{plane, rootJoint}}
}
