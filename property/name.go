package property

import (
	"strings"
	"unicode"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Name identifies a property. The set is shared by every model group, so two
// groups reporting VertexColor report the same column.
type Name int

const (
	Description Name = iota
	Version
	MinVersion
	ModelShouldLoad
	ExtensionRequired
	Primitive0
	Primitive1
	Material0WithBaseColorFactor
	Material1WithBaseColorFactor
	VertexColor
	RootJointTranslation
	MidJointRotation
	numNames
)

var names = [...]string{
	Description:                  "Description",
	Version:                      "Version",
	MinVersion:                   "MinVersion",
	ModelShouldLoad:              "ModelShouldLoad",
	ExtensionRequired:            "ExtensionRequired",
	Primitive0:                   "Primitive0",
	Primitive1:                   "Primitive1",
	Material0WithBaseColorFactor: "Material0WithBaseColorFactor",
	Material1WithBaseColorFactor: "Material1WithBaseColorFactor",
	VertexColor:                  "VertexColor",
	RootJointTranslation:         "RootJointTranslation",
	MidJointRotation:             "MidJointRotation",
}

func (n Name) String() string {
	if n < 0 || n >= numNames {
		return "Unknown"
	}
	return names[n]
}

// ColumnName is the name shown in table headers.
func (n Name) ColumnName() string {
	return SpacedName(n.String())
}

var title = cases.Title(language.English, cases.NoLower)

// SpacedName turns an identifier such as "Mesh_PrimitiveVertexColor" or
// "Material0WithBaseColorFactor" into "Mesh Primitive Vertex Color" and
// "Material 0 With Base Color Factor".
func SpacedName(s string) string {
	var b strings.Builder
	var prev rune
	for i, r := range s {
		switch {
		case r == '_':
			r = ' '
		case i > 0 && prev != ' ' && prev != '_' && unicode.IsUpper(r) && !unicode.IsUpper(prev):
			b.WriteRune(' ')
		case i > 0 && unicode.IsDigit(r) && unicode.IsLetter(prev):
			b.WriteRune(' ')
		}
		b.WriteRune(r)
		prev = r
	}
	return title.String(strings.Join(strings.Fields(b.String()), " "))
}
