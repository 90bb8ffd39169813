package modelgroup

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/stevk/glTF-Asset-Generator/extensions"
	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/gltfutil"
	"github.com/stevk/glTF-Asset-Generator/override"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/scene"
	"github.com/stevk/glTF-Asset-Generator/shapes"
)

const (
	loadable    = ":white_check_mark:"
	notLoadable = ":x:"
)

// Kinds of the simulated future schema.
var (
	lightGLTF     = override.Root.Extend("experimentalGLTF", "lights")
	lightNode     = override.Node.Extend("experimentalNode", "light")
	quantumAlpha  = override.AlphaMode.Extend("alphaMode2", "QUANTUM")
	quantumMatter = override.Material.Extend("experimentalMaterial", quantumAlpha.Field)
)

type light struct {
	Color [3]float32 `json:"color"`
}

// NewCompatibility tests how loaders treat newer versions, unknown fields
// and required extensions.
func NewCompatibility(figures []string) (*Group, error) {
	g := newGroup(Compatibility)
	g.NoSampleImages = true
	loader, err := gltfutil.NewLoader("2.0")
	if err != nil {
		return nil, err
	}
	template := []*scene.Primitive{shapes.SinglePlane(shapes.Options{})}

	createModel := func(set func(props *property.List, graph *scene.Graph) override.Func) error {
		prims, err := clonePrimitives(template)
		if err != nil {
			return err
		}
		graph := meshGraph(prims...)
		var props property.List
		f := set(&props, graph)
		g.addModel(&props, graph, f)
		return nil
	}

	setVersion := func(props *property.List, graph *scene.Graph, version string) {
		graph.Asset.Version = version
		props.Add(property.Version, version)
	}
	setMinVersion := func(props *property.List, graph *scene.Graph, version string) {
		graph.Asset.MinVersion = version
		props.Add(property.MinVersion, version)
	}
	setExtensionRequired := func(props *property.List, graph *scene.Graph) {
		graph.ExtensionsRequired = []string{extensions.QuantumRenderingName}
		graph.FirstPrimitive().Material = &scene.Material{
			Extensions: []scene.Extension{
				&extensions.QuantumRendering{
					PlanckFactor:                 *geom.NewVector4(0.2, 0.2, 0.2, 0.8),
					CopenhagenTexture:            &scene.Texture{},
					EntanglementFactor:           *geom.NewVector3(0.4, 0.4, 0.4),
					ProbabilisticFactor:          0.3,
					SuperpositionCollapseTexture: &scene.Texture{},
				},
			},
		}
		props.Add(property.Description, "Extension required")
	}
	setModelShouldLoad := func(props *property.List, graph *scene.Graph) error {
		asset := gltf.Asset{Version: graph.Asset.Version, MinVersion: graph.Asset.MinVersion}
		ok, err := loader.CanLoad(asset, graph.ExtensionsRequired)
		if err != nil {
			return err
		}
		switch {
		case ok:
			props.Add(property.ModelShouldLoad, loadable)
		case asset.MinVersion != "":
			props.Add(property.ModelShouldLoad, fmt.Sprintf("Only in version %s or higher", asset.MinVersion))
		default:
			props.Add(property.ModelShouldLoad, notLoadable)
		}
		return nil
	}

	var setupErr error
	check := func(err error) {
		if setupErr == nil {
			setupErr = err
		}
	}
	variants := []func(props *property.List, graph *scene.Graph) override.Func{
		func(props *property.List, graph *scene.Graph) override.Func {
			setVersion(props, graph, "2.0")
			check(setModelShouldLoad(props, graph))
			return nil
		},
		func(props *property.List, graph *scene.Graph) override.Func {
			setVersion(props, graph, "2.1")
			props.Add(property.Description, "Light object added at root")
			check(setModelShouldLoad(props, graph))
			return lightAtRoot
		},
		func(props *property.List, graph *scene.Graph) override.Func {
			setVersion(props, graph, "2.1")
			props.Add(property.Description, "Light property added to node object")
			check(setModelShouldLoad(props, graph))
			return lightInNode
		},
		func(props *property.List, graph *scene.Graph) override.Func {
			setVersion(props, graph, "2.1")
			props.Add(property.Description, "Alpha mode updated with a new enum value, and a fallback value")
			check(setModelShouldLoad(props, graph))
			return quantumAlphaMode
		},
		func(props *property.List, graph *scene.Graph) override.Func {
			setMinVersion(props, graph, "2.1")
			setVersion(props, graph, "2.1")
			props.Add(property.Description, "Requires a specific version or higher")
			check(setModelShouldLoad(props, graph))
			return nil
		},
		func(props *property.List, graph *scene.Graph) override.Func {
			setVersion(props, graph, "2.0")
			setExtensionRequired(props, graph)
			check(setModelShouldLoad(props, graph))
			return nil
		},
	}
	for _, v := range variants {
		if err := createModel(v); err != nil {
			return nil, err
		}
	}
	if setupErr != nil {
		return nil, errors.Wrap(setupErr, g.Name.String())
	}
	return g, g.GenerateUsedPropertiesList()
}

// lightAtRoot adds a field unknown to glTF 2.0 at the document root.
func lightAtRoot(docs []*gltf.Document, index int) (*override.Shadow, error) {
	s, err := override.Decompose(lightGLTF, docs[index])
	if err != nil {
		return nil, err
	}
	s.Set("lights", light{Color: [3]float32{0.3, 0.4, 0.5}})
	return s, nil
}

// lightInNode adds a field unknown to glTF 2.0 inside the first node.
func lightInNode(docs []*gltf.Document, index int) (*override.Shadow, error) {
	s, err := override.Decompose(override.Root, docs[index])
	if err != nil {
		return nil, err
	}
	if node, ok := s.WrapElement("nodes", 0, lightNode); ok {
		node.Set("light", float32(0.5))
	}
	return s, nil
}

// quantumAlphaMode replaces the materials by one using a new alpha mode,
// with BLEND as the fallback for current loaders.
func quantumAlphaMode(docs []*gltf.Document, index int) (*override.Shadow, error) {
	s, err := override.Decompose(override.Root, docs[index])
	if err != nil {
		return nil, err
	}
	mat, err := override.New(quantumMatter, &gltf.Material{})
	if err != nil {
		return nil, err
	}
	if err := mat.SetEnum(quantumAlpha, "QUANTUM", "BLEND"); err != nil {
		return nil, err
	}
	s.Set("materials", []*override.Shadow{mat})
	return s, nil
}
