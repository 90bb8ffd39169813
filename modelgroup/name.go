package modelgroup

import (
	"strings"

	"github.com/pkg/errors"
)

type Name int

const (
	Compatibility Name = iota
	MeshPrimitives
	MeshPrimitiveVertexColor
	AnimationSkin
	numNames
)

var names = [...]string{
	Compatibility:            "Compatibility",
	MeshPrimitives:           "Mesh_Primitives",
	MeshPrimitiveVertexColor: "Mesh_PrimitiveVertexColor",
	AnimationSkin:            "Animation_Skin",
}

var constructors = [...]func(figures []string) (*Group, error){
	Compatibility:            NewCompatibility,
	MeshPrimitives:           NewMeshPrimitives,
	MeshPrimitiveVertexColor: NewMeshPrimitiveVertexColor,
	AnimationSkin:            NewAnimationSkin,
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return "Unknown"
	}
	return names[n]
}

func Names() []Name {
	all := make([]Name, numNames)
	for i := range all {
		all[i] = Name(i)
	}
	return all
}

// ParseName accepts a group name, ignoring case.
func ParseName(s string) (Name, error) {
	for i, n := range names {
		if strings.EqualFold(n, s) {
			return Name(i), nil
		}
	}
	return 0, errors.Errorf("unknown model group %q", s)
}

// New creates the named group. figures lists the figure images available.
func New(name Name, figures []string) (*Group, error) {
	if name < 0 || name >= numNames {
		return nil, errors.Errorf("unknown model group %d", name)
	}
	return constructors[name](figures)
}
