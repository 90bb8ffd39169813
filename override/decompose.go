package override

import (
	"bytes"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Decompose encodes doc as it would be saved to a .gltf file and copies the
// result into a shadow of kind, which should extend Root. Buffer contents are
// not part of the shadow.
func Decompose(kind *Kind, doc *gltf.Document) (*Shadow, error) {
	var buf bytes.Buffer
	e := gltf.NewEncoder(&buf)
	e.AsBinary = false
	if err := e.Encode(doc); err != nil {
		return nil, errors.Wrap(err, "encode document")
	}
	return FromRaw(kind, buf.Bytes())
}
