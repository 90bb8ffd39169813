package modelgroup

import (
	"math"

	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/scene"
	"github.com/stevk/glTF-Asset-Generator/shapes"
)

// NewAnimationSkin tests a plane skinned to a chain of two joints, posed by
// moving the joints away from their bind pose.
func NewAnimationSkin(figures []string) (*Group, error) {
	g := newGroup(AnimationSkin)

	joints := func(s *scene.Scene) (root, mid *scene.Node) {
		root = s.Nodes[1]
		return root, root.Children[0]
	}
	setRootTranslation := func(props *property.List, s *scene.Scene) {
		root, _ := joints(s)
		root.Translation = geom.NewVector3(0.2, -0.5, 0)
		props.Add(property.RootJointTranslation, root.Translation)
	}
	setMidRotation := func(props *property.List, s *scene.Scene) {
		_, mid := joints(s)
		mid.Rotation = geom.NewQuaternionFromAxisAngle(&geom.Vector3{X: 0, Y: 0, Z: 1}, math.Pi/4)
		props.Add(property.MidJointRotation, mid.Rotation)
	}

	variants := []func(props *property.List, s *scene.Scene){
		func(props *property.List, s *scene.Scene) {},
		func(props *property.List, s *scene.Scene) {
			setMidRotation(props, s)
		},
		func(props *property.List, s *scene.Scene) {
			setRootTranslation(props, s)
		},
		func(props *property.List, s *scene.Scene) {
			setRootTranslation(props, s)
			setMidRotation(props, s)
		},
	}
	for _, set := range variants {
		// joints are shared between the node tree and the skin, so the scene
		// is rebuilt instead of copied
		s := shapes.PlaneWithSkin()
		var props property.List
		set(&props, s)
		g.addModel(&props, &scene.Graph{Scenes: []*scene.Scene{s}}, nil)
	}
	return g, g.GenerateUsedPropertiesList()
}
