package override

// Kind is a shadow type: the closed set of fields it knows how to carry.
type Kind struct {
	name   string
	fields []string
	known  map[string]bool
}

func NewKind(name string, fields ...string) *Kind {
	k := &Kind{name: name, known: map[string]bool{}}
	for _, f := range fields {
		if !k.known[f] {
			k.known[f] = true
			k.fields = append(k.fields, f)
		}
	}
	return k
}

// Extend derives a kind that knows every field of k plus fields.
func (k *Kind) Extend(name string, fields ...string) *Kind {
	return NewKind(name, append(append([]string(nil), k.fields...), fields...)...)
}

func (k *Kind) Name() string {
	return k.name
}

func (k *Kind) Knows(field string) bool {
	return k.known[field]
}

func (k *Kind) Fields() []string {
	return append([]string(nil), k.fields...)
}

var common = []string{"extensions", "extras"}

// Kinds of the glTF 2.0 schema objects.
var (
	Root = NewKind("glTF", append(common,
		"extensionsUsed", "extensionsRequired", "accessors", "animations", "asset",
		"buffers", "bufferViews", "cameras", "images", "materials", "meshes", "nodes",
		"samplers", "scene", "scenes", "skins", "textures")...)
	Asset = NewKind("asset", append(common,
		"copyright", "generator", "version", "minVersion")...)
	Scene = NewKind("scene", append(common, "name", "nodes")...)
	Node  = NewKind("node", append(common,
		"name", "camera", "children", "skin", "matrix", "mesh", "rotation", "scale",
		"translation", "weights")...)
	Mesh      = NewKind("mesh", append(common, "name", "primitives", "weights")...)
	Primitive = NewKind("primitive", append(common,
		"attributes", "indices", "material", "mode", "targets")...)
	Material = NewKind("material", append(common,
		"name", "pbrMetallicRoughness", "normalTexture", "occlusionTexture",
		"emissiveTexture", "emissiveFactor", "alphaMode", "alphaCutoff", "doubleSided")...)
	Skin = NewKind("skin", append(common,
		"name", "inverseBindMatrices", "skeleton", "joints")...)
)
