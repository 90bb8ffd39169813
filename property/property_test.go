package property

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

func TestSpacedName(t *testing.T) {
	cases := map[string]string{
		"Mesh_PrimitiveVertexColor":    "Mesh Primitive Vertex Color",
		"Material0WithBaseColorFactor": "Material 0 With Base Color Factor",
		"ModelShouldLoad":              "Model Should Load",
		"Compatibility":                "Compatibility",
		"Animation_Skin":               "Animation Skin",
		"minVersion":                   "Min Version",
	}
	for in, want := range cases {
		assert.Equal(t, want, SpacedName(in), in)
	}
}

func TestNames(t *testing.T) {
	for n := Name(0); n < numNames; n++ {
		assert.NotEqual(t, "", names[n], "name %d has no string", n)
	}
	assert.Equal(t, "Vertex Color", VertexColor.ColumnName())
	assert.Equal(t, "Unknown", Name(-1).String())
}

func TestFormat(t *testing.T) {
	assert.Equal(t, "2.0", Format("2.0"))
	assert.Equal(t, "[0.0, 1.0, 0.0, 1.0]", Format(geom.NewVector4(0, 1, 0, 1)))
	assert.Equal(t, "[0.0, -0.5, 0.0]", Format(geom.Vector3{Y: -0.5}))
	assert.Equal(t, "0.3", Format(float32(0.3)))
	assert.Equal(t, "Vector3 Float", Format(VertexColorLayout{ComponentType: scene.ColorFloat, Type: scene.ColorVec3}))
	assert.Equal(t, "Vector4 Short", Format(VertexColorLayout{ComponentType: scene.ColorNormalizedUShort, Type: scene.ColorVec4}))
	assert.Equal(t, "7", Format(7))
}

func TestRecord(t *testing.T) {
	var l List
	l.Add(Version, "2.0")
	l.Add(Description, "first")
	l.Add(Description, "second")
	r := l.Record(true, false)

	l.Add(MinVersion, "2.1")
	assert.Equal(t, 3, r.Len(), "record must not see later adds")
	assert.Equal(t, 4, l.Len())

	p, ok := r.Lookup(Description)
	assert.True(t, ok)
	assert.Equal(t, "first", p.Value)
	_, ok = r.Lookup(MinVersion)
	assert.False(t, ok)

	props := r.Properties()
	props[0].Value = "changed"
	p, _ = r.Lookup(Version)
	assert.Equal(t, "2.0", p.Value)

	assert.True(t, r.NoCommonHeader())
	assert.False(t, r.NoSampleImage())

	flipped := r.WithFlags(false, true)
	assert.False(t, flipped.NoCommonHeader())
	assert.True(t, flipped.NoSampleImage())
	assert.True(t, r.NoCommonHeader())
	assert.Equal(t, r.Len(), flipped.Len())
}

func TestColumnsFirstAppearance(t *testing.T) {
	a := NewRecord([]Property{New(Description, "foo")}, false, false)
	b := NewRecord([]Property{New(Version, "bar"), New(Description, "foo")}, false, false)
	assert.Equal(t, []Name{Description, Version}, Columns([]Record{a, b}))
	assert.Equal(t, []Name{Version, Description}, Columns([]Record{b, a}))
	assert.Empty(t, Columns(nil))
}
