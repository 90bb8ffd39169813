// Package scene is the in-memory scene graph a test variant is authored in,
// before it is turned into a glTF document.
package scene

import "github.com/stevk/glTF-Asset-Generator/geom"

type Asset struct {
	Generator  string
	Copyright  string
	Version    string
	MinVersion string
}

// Graph is the root of a scene graph.
type Graph struct {
	Asset              Asset
	Scenes             []*Scene
	ExtensionsRequired []string
}

type Scene struct {
	Name  string
	Nodes []*Node
}

// Node owns its children. A skin only refers to nodes, it never owns them.
type Node struct {
	Name        string
	Translation *geom.Vector3
	Rotation    *geom.Quaternion
	Scale       *geom.Vector3
	Mesh        *Mesh
	Skin        *Skin
	Children    []*Node
}

// LocalMatrix returns the TRS matrix of the node.
func (n *Node) LocalMatrix() *geom.Matrix4 {
	return geom.NewTRSMatrix4(n.Translation, n.Rotation, n.Scale)
}

type Mesh struct {
	Name       string
	Primitives []*Primitive
}

type ColorComponentType int

const (
	ColorFloat ColorComponentType = iota
	ColorNormalizedUByte
	ColorNormalizedUShort
)

func (t ColorComponentType) String() string {
	switch t {
	case ColorNormalizedUByte:
		return "Byte"
	case ColorNormalizedUShort:
		return "Short"
	}
	return "Float"
}

type ColorType int

const (
	ColorVec4 ColorType = iota
	ColorVec3
)

func (t ColorType) String() string {
	if t == ColorVec3 {
		return "Vector3"
	}
	return "Vector4"
}

type Primitive struct {
	Positions          []geom.Vector3
	Normals            []geom.Vector3
	Colors             []geom.Vector4
	ColorComponentType ColorComponentType
	ColorType          ColorType
	TextureCoordSets   [][]geom.Vector2
	Indices            []uint32
	// JointWeights holds, per vertex, the joints influencing it. Weights are
	// written as given; nothing renormalizes them.
	JointWeights [][]JointWeight
	Material     *Material
}

// VertexCount is the length every per-vertex sequence must share.
func (p *Primitive) VertexCount() int {
	return len(p.Positions)
}

type AlphaMode int

const (
	AlphaOpaque AlphaMode = iota
	AlphaMask
	AlphaBlend
)

type Material struct {
	Name                 string
	PBRMetallicRoughness *PBRMetallicRoughness
	EmissiveFactor       *geom.Vector3
	AlphaMode            AlphaMode
	AlphaCutoff          *float32
	DoubleSided          bool
	Extensions           []Extension
}

type PBRMetallicRoughness struct {
	BaseColorFactor *geom.Vector4
	MetallicFactor  *float32
	RoughnessFactor *float32
}

// Texture is a texture slot without an image source.
type Texture struct {
	Name string
}

// Extension is a material extension. Payload returns the value serialized
// under the extension name; texture maps a texture slot to its document index.
type Extension interface {
	ExtensionName() string
	Payload(texture func(*Texture) uint32) interface{}
}

type Skin struct {
	Name   string
	Joints []*SkinJoint
}

type SkinJoint struct {
	InverseBindMatrix geom.Matrix4
	Node              *Node
}

func NewSkinJoint(inverseBindMatrix *geom.Matrix4, node *Node) *SkinJoint {
	return &SkinJoint{InverseBindMatrix: *inverseBindMatrix, Node: node}
}

type JointWeight struct {
	Joint  *SkinJoint
	Weight float32
}

// Walk visits every node of the graph depth first, in scene order.
func (g *Graph) Walk(f func(n *Node, depth int)) {
	var walk func(n *Node, depth int)
	walk = func(n *Node, depth int) {
		f(n, depth)
		for _, c := range n.Children {
			walk(c, depth+1)
		}
	}
	for _, s := range g.Scenes {
		for _, n := range s.Nodes {
			walk(n, 0)
		}
	}
}

// FirstPrimitive returns the first primitive of the first mesh node of the first scene.
func (g *Graph) FirstPrimitive() *Primitive {
	var prim *Primitive
	g.Walk(func(n *Node, _ int) {
		if prim == nil && n.Mesh != nil && len(n.Mesh.Primitives) > 0 {
			prim = n.Mesh.Primitives[0]
		}
	})
	return prim
}
