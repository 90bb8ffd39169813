// Package property records which features a generated model exercises.
package property

import (
	"fmt"
	"strings"

	"github.com/stevk/glTF-Asset-Generator/geom"
	"github.com/stevk/glTF-Asset-Generator/scene"
)

type Property struct {
	Name  Name
	Value string
}

// New formats value for display.
func New(name Name, value interface{}) Property {
	return Property{Name: name, Value: Format(value)}
}

func (p Property) ColumnName() string {
	return p.Name.ColumnName()
}

// VertexColorLayout describes the accessor layout of a COLOR_0 attribute.
type VertexColorLayout struct {
	ComponentType scene.ColorComponentType
	Type          scene.ColorType
}

func (c VertexColorLayout) String() string {
	return c.Type.String() + " " + c.ComponentType.String()
}

func Format(value interface{}) string {
	switch v := value.(type) {
	case string:
		return v
	case fmt.Stringer:
		return v.String()
	case float32:
		return formatFloats(v)
	case geom.Vector3:
		return formatFloats(v.X, v.Y, v.Z)
	case *geom.Vector3:
		return formatFloats(v.X, v.Y, v.Z)
	case geom.Vector4:
		return formatFloats(v.X, v.Y, v.Z, v.W)
	case *geom.Vector4:
		return formatFloats(v.X, v.Y, v.Z, v.W)
	}
	return fmt.Sprint(value)
}

func formatFloats(f ...float32) string {
	s := make([]string, len(f))
	for i, v := range f {
		s[i] = fmt.Sprintf("%.1f", v)
	}
	if len(s) == 1 {
		return s[0]
	}
	return "[" + strings.Join(s, ", ") + "]"
}
