// Package modelgroup builds the families of test models. A group authors
// every variant as a scene graph plus the properties it exercises, then
// turns them into glTF documents in two stages: build, then override.
package modelgroup

import (
	"fmt"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"go.uber.org/zap"

	"github.com/stevk/glTF-Asset-Generator/converter"
	"github.com/stevk/glTF-Asset-Generator/gltfutil"
	"github.com/stevk/glTF-Asset-Generator/logger"
	"github.com/stevk/glTF-Asset-Generator/override"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

var ErrAlreadyFinalized = errors.New("used properties list already generated")

// Model is one variant of a group.
type Model struct {
	Properties property.Record
	// Graph is consumed by Build.
	Graph    *scene.Graph
	Document *gltf.Document
	// Override, when set, replaces Document on save.
	Override    override.Func
	Replacement *override.Shadow
}

type Group struct {
	Name Name
	// CommonProperties is nil when the group has no header table.
	CommonProperties []property.Property
	Models           []*Model
	// Properties is every property name used by the models, in order of
	// first appearance. Set by GenerateUsedPropertiesList.
	Properties     []property.Name
	Figures        []string
	NoSampleImages bool
	finalized      bool
}

func newGroup(name Name) *Group {
	return &Group{Name: name}
}

// ID is the group's position in the list of every group.
func (g *Group) ID() int {
	return int(g.Name)
}

// ModelName is the file stem of the index-th model, e.g. "Mesh_Primitives_01".
func (g *Group) ModelName(index int) string {
	return fmt.Sprintf("%s_%02d", g.Name, index)
}

// UseFigure adds a figure to the group's report when available lists it.
func (g *Group) UseFigure(available []string, name string) {
	for _, f := range available {
		if f == name {
			g.Figures = append(g.Figures, name)
			return
		}
	}
	logger.Log.Warn("figure not found", zap.Stringer("group", g.Name), zap.String("figure", name))
}

// addModel freezes props into the new model record. The report flags are
// stamped by GenerateUsedPropertiesList.
func (g *Group) addModel(props *property.List, graph *scene.Graph, f override.Func) *Model {
	m := &Model{
		Properties: props.Record(g.CommonProperties == nil, g.NoSampleImages),
		Graph:      graph,
		Override:   f,
	}
	g.Models = append(g.Models, m)
	return m
}

// GenerateUsedPropertiesList collects the distinct property names of the
// models in first appearance order and stamps every record with the group's
// current CommonProperties and NoSampleImages. It may run only once.
func (g *Group) GenerateUsedPropertiesList() error {
	if g.finalized {
		return errors.Wrap(ErrAlreadyFinalized, g.Name.String())
	}
	g.finalized = true
	for _, m := range g.Models {
		m.Properties = m.Properties.WithFlags(g.CommonProperties == nil, g.NoSampleImages)
	}
	g.Properties = property.Columns(g.Records())
	return nil
}

func (g *Group) Records() []property.Record {
	records := make([]property.Record, len(g.Models))
	for i, m := range g.Models {
		records[i] = m.Properties
	}
	return records
}

func (g *Group) Finalized() bool {
	return g.finalized
}

// Build converts each scene graph to a document, in model order, then runs
// every registered override over the documents built so far.
func (g *Group) Build(opts *converter.SceneToGLTFOption) error {
	docs := make([]*gltf.Document, 0, len(g.Models))
	for i, m := range g.Models {
		if m.Document == nil {
			if m.Graph == nil {
				return errors.Errorf("%s: model %d has no scene graph", g.ModelName(i), i)
			}
			doc, err := converter.NewSceneToGLTFConverter(opts).Convert(m.Graph)
			if err != nil {
				return errors.Wrap(err, g.ModelName(i))
			}
			gltfutil.SetBufferURIs(doc, g.ModelName(i))
			m.Document = doc
			m.Graph = nil
		}
		docs = append(docs, m.Document)
	}
	for i, m := range g.Models {
		s, err := override.Apply(docs, i, m.Override)
		if err != nil {
			return errors.Wrap(err, g.ModelName(i))
		}
		m.Replacement = s
	}
	logger.Log.Debug("group built", zap.Stringer("group", g.Name), zap.Int("models", len(g.Models)))
	return nil
}
