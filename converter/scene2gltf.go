package converter

import (
	"strconv"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/stevk/glTF-Asset-Generator/extensions"
	"github.com/stevk/glTF-Asset-Generator/logger"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

const DefaultGenerator = "glTF Asset Generator"

type SceneToGLTFOption struct {
	Generator string // Default: DefaultGenerator
	Copyright string
}

type sceneToGltf struct {
	*SceneToGLTFOption
	*gltf.Document
	nodes     map[*scene.Node]uint32
	meshes    map[*scene.Mesh]uint32
	materials map[*scene.Material]uint32
	textures  map[*scene.Texture]uint32
	skins     map[*scene.Skin]uint32
}

func NewSceneToGLTFConverter(options *SceneToGLTFOption) *sceneToGltf {
	if options == nil {
		options = &SceneToGLTFOption{}
	}
	if options.Generator == "" {
		options.Generator = DefaultGenerator
	}
	return &sceneToGltf{SceneToGLTFOption: options}
}

func (c *sceneToGltf) reset() {
	c.Document = &gltf.Document{}
	c.nodes = map[*scene.Node]uint32{}
	c.meshes = map[*scene.Mesh]uint32{}
	c.materials = map[*scene.Material]uint32{}
	c.textures = map[*scene.Texture]uint32{}
	c.skins = map[*scene.Skin]uint32{}
}

func (c *sceneToGltf) addMatrices(mat [][4][4]float32) uint32 {
	a := make([][4]float32, len(mat)*4)
	for i, m := range mat {
		a[i*4+0] = m[0]
		a[i*4+1] = m[1]
		a[i*4+2] = m[2]
		a[i*4+3] = m[3]
	}
	acc := modeler.WriteTangent(c.Document, a)
	c.Accessors[acc].Type = gltf.AccessorMat4
	c.Accessors[acc].Count /= 4
	c.BufferViews[*c.Accessors[acc].BufferView].ByteStride *= 4
	return acc
}

func (c *sceneToGltf) addNode(n *scene.Node) uint32 {
	id := uint32(len(c.Nodes))
	node := &gltf.Node{
		Name:     n.Name,
		Rotation: [4]float32{0, 0, 0, 1},
		Scale:    [3]float32{1, 1, 1},
	}
	if n.Translation != nil {
		node.Translation = n.Translation.Array()
	}
	if n.Rotation != nil {
		node.Rotation = n.Rotation.Array()
	}
	if n.Scale != nil {
		node.Scale = n.Scale.Array()
	}
	c.Nodes = append(c.Nodes, node)
	c.nodes[n] = id
	for _, child := range n.Children {
		node.Children = append(node.Children, c.addNode(child))
	}
	return id
}

func (c *sceneToGltf) addSkin(skin *scene.Skin) uint32 {
	if id, ok := c.skins[skin]; ok {
		return id
	}
	joints := make([]uint32, len(skin.Joints))
	invmats := make([][4][4]float32, len(skin.Joints))
	for i, j := range skin.Joints {
		joints[i] = c.nodes[j.Node]
		invmats[i] = j.InverseBindMatrix.Columns()
	}
	c.Skins = append(c.Skins, &gltf.Skin{
		Name:                skin.Name,
		Joints:              joints,
		InverseBindMatrices: gltf.Index(c.addMatrices(invmats)),
	})
	id := uint32(len(c.Skins) - 1)
	c.skins[skin] = id
	return id
}

func (c *sceneToGltf) addTexture(t *scene.Texture) uint32 {
	if id, ok := c.textures[t]; ok {
		return id
	}
	c.Textures = append(c.Textures, &gltf.Texture{Name: t.Name})
	id := uint32(len(c.Textures) - 1)
	c.textures[t] = id
	return id
}

func (c *sceneToGltf) addMaterial(mat *scene.Material) uint32 {
	if id, ok := c.materials[mat]; ok {
		return id
	}
	mm := &gltf.Material{
		Name:        mat.Name,
		AlphaCutoff: mat.AlphaCutoff,
		DoubleSided: mat.DoubleSided,
	}
	switch mat.AlphaMode {
	case scene.AlphaMask:
		mm.AlphaMode = gltf.AlphaMask
	case scene.AlphaBlend:
		mm.AlphaMode = gltf.AlphaBlend
	default:
		mm.AlphaMode = gltf.AlphaOpaque
	}
	if pbr := mat.PBRMetallicRoughness; pbr != nil {
		mm.PBRMetallicRoughness = &gltf.PBRMetallicRoughness{
			MetallicFactor:  pbr.MetallicFactor,
			RoughnessFactor: pbr.RoughnessFactor,
		}
		if pbr.BaseColorFactor != nil {
			f := pbr.BaseColorFactor.Array()
			mm.PBRMetallicRoughness.BaseColorFactor = &f
		}
	}
	if mat.EmissiveFactor != nil {
		mm.EmissiveFactor = mat.EmissiveFactor.Array()
	}
	for _, ext := range mat.Extensions {
		if mm.Extensions == nil {
			mm.Extensions = gltf.Extensions{}
		}
		mm.Extensions[ext.ExtensionName()] = ext.Payload(c.addTexture)
		(*extensions.Document)(c.Document).Use(ext.ExtensionName(), false)
	}
	c.Materials = append(c.Materials, mm)
	id := uint32(len(c.Materials) - 1)
	c.materials[mat] = id
	return id
}

func (c *sceneToGltf) writeColors(p *scene.Primitive) uint32 {
	n := len(p.Colors)
	switch {
	case p.ColorType == scene.ColorVec3 && p.ColorComponentType == scene.ColorNormalizedUByte:
		data := make([][3]uint8, n)
		for i, v := range p.Colors {
			data[i] = [3]uint8{unorm8(v.X), unorm8(v.Y), unorm8(v.Z)}
		}
		return modeler.WriteColor(c.Document, data)
	case p.ColorType == scene.ColorVec3 && p.ColorComponentType == scene.ColorNormalizedUShort:
		data := make([][3]uint16, n)
		for i, v := range p.Colors {
			data[i] = [3]uint16{unorm16(v.X), unorm16(v.Y), unorm16(v.Z)}
		}
		return modeler.WriteColor(c.Document, data)
	case p.ColorType == scene.ColorVec3:
		data := make([][3]float32, n)
		for i, v := range p.Colors {
			data[i] = [3]float32{v.X, v.Y, v.Z}
		}
		return modeler.WriteColor(c.Document, data)
	case p.ColorComponentType == scene.ColorNormalizedUByte:
		data := make([][4]uint8, n)
		for i, v := range p.Colors {
			data[i] = [4]uint8{unorm8(v.X), unorm8(v.Y), unorm8(v.Z), unorm8(v.W)}
		}
		return modeler.WriteColor(c.Document, data)
	case p.ColorComponentType == scene.ColorNormalizedUShort:
		data := make([][4]uint16, n)
		for i, v := range p.Colors {
			data[i] = [4]uint16{unorm16(v.X), unorm16(v.Y), unorm16(v.Z), unorm16(v.W)}
		}
		return modeler.WriteColor(c.Document, data)
	}
	data := make([][4]float32, n)
	for i, v := range p.Colors {
		data[i] = v.Array()
	}
	return modeler.WriteColor(c.Document, data)
}

func (c *sceneToGltf) getWeights(p *scene.Primitive, skin *scene.Skin) ([][4]uint16, [][4]float32) {
	jointIndex := map[*scene.SkinJoint]uint16{}
	if skin != nil {
		for i, j := range skin.Joints {
			jointIndex[j] = uint16(i)
		}
	}
	joints := make([][4]uint16, len(p.JointWeights))
	weights := make([][4]float32, len(p.JointWeights))
	for v, jw := range p.JointWeights {
		if len(jw) > 4 {
			logger.Log.Warn("more than 4 joints influence a vertex, extra joints dropped", zap.Int("vertex", v))
		}
		for i, w := range jw {
			if i >= 4 {
				break
			}
			joints[v][i] = jointIndex[w.Joint]
			weights[v][i] = w.Weight
		}
	}
	return joints, weights
}

func (c *sceneToGltf) convertPrimitive(p *scene.Primitive, skin *scene.Skin) *gltf.Primitive {
	positions := make([][3]float32, len(p.Positions))
	for i, v := range p.Positions {
		positions[i] = v.Array()
	}
	attributes := map[string]uint32{
		"POSITION": modeler.WritePosition(c.Document, positions),
	}
	if len(p.Normals) > 0 {
		normals := make([][3]float32, len(p.Normals))
		for i, v := range p.Normals {
			normals[i] = v.Array()
		}
		attributes["NORMAL"] = modeler.WriteNormal(c.Document, normals)
	}
	for set, uvs := range p.TextureCoordSets {
		texcoord := make([][2]float32, len(uvs))
		for i, v := range uvs {
			texcoord[i] = v.Array()
		}
		attributes[texcoordName(set)] = modeler.WriteTextureCoord(c.Document, texcoord)
	}
	if len(p.Colors) > 0 {
		attributes["COLOR_0"] = c.writeColors(p)
	}
	if len(p.JointWeights) > 0 {
		joints, weights := c.getWeights(p, skin)
		attributes["JOINTS_0"] = modeler.WriteJoints(c.Document, joints)
		attributes["WEIGHTS_0"] = modeler.WriteWeights(c.Document, weights)
	}

	prim := &gltf.Primitive{Attributes: attributes}
	if len(p.Indices) > 0 {
		prim.Indices = gltf.Index(modeler.WriteIndices(c.Document, p.Indices))
	}
	if p.Material != nil {
		prim.Material = gltf.Index(c.addMaterial(p.Material))
	}
	return prim
}

func (c *sceneToGltf) addMesh(mesh *scene.Mesh, skin *scene.Skin) uint32 {
	if id, ok := c.meshes[mesh]; ok {
		return id
	}
	m := &gltf.Mesh{Name: mesh.Name}
	for _, p := range mesh.Primitives {
		m.Primitives = append(m.Primitives, c.convertPrimitive(p, skin))
	}
	c.Meshes = append(c.Meshes, m)
	id := uint32(len(c.Meshes) - 1)
	c.meshes[mesh] = id
	return id
}

// Convert builds a canonical document from g. Each call starts from an empty
// document, so a converter can be reused.
func (c *sceneToGltf) Convert(g *scene.Graph) (*gltf.Document, error) {
	if err := g.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid scene graph")
	}
	c.reset()

	c.Asset = gltf.Asset{
		Generator:  c.Generator,
		Copyright:  g.Asset.Copyright,
		Version:    g.Asset.Version,
		MinVersion: g.Asset.MinVersion,
	}
	if g.Asset.Generator != "" {
		c.Asset.Generator = g.Asset.Generator
	}
	if c.Asset.Copyright == "" {
		c.Asset.Copyright = c.SceneToGLTFOption.Copyright
	}
	if c.Asset.Version == "" {
		c.Asset.Version = "2.0"
	}

	// Nodes first: skins may refer to joints that come later in scene order.
	var scenes [][]uint32
	for _, s := range g.Scenes {
		var roots []uint32
		for _, n := range s.Nodes {
			roots = append(roots, c.addNode(n))
		}
		scenes = append(scenes, roots)
	}
	g.Walk(func(n *scene.Node, _ int) {
		node := c.Nodes[c.nodes[n]]
		if n.Skin != nil {
			node.Skin = gltf.Index(c.addSkin(n.Skin))
		}
		if n.Mesh != nil {
			node.Mesh = gltf.Index(c.addMesh(n.Mesh, n.Skin))
		}
	})

	for i, s := range g.Scenes {
		c.Scenes = append(c.Scenes, &gltf.Scene{Name: s.Name, Nodes: scenes[i]})
	}
	if len(c.Scenes) > 0 {
		c.Scene = gltf.Index(0)
	}

	for _, ext := range g.ExtensionsRequired {
		(*extensions.Document)(c.Document).Use(ext, true)
	}
	if len(c.Buffers) > 0 {
		c.Buffers[0].ByteLength = uint32(len(c.Buffers[0].Data))
	}

	return c.Document, nil
}

func texcoordName(set int) string {
	return "TEXCOORD_" + strconv.Itoa(set)
}

func unorm8(v float32) uint8 {
	return uint8(clamp01(v)*255 + 0.5)
}

func unorm16(v float32) uint16 {
	return uint16(clamp01(v)*65535 + 0.5)
}

func clamp01(v float32) float32 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}
