package override

import (
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

// Func builds the replacement for the document at index. docs holds every
// canonical document built up to and including index.
type Func func(docs []*gltf.Document, index int) (*Shadow, error)

// Apply runs f on docs[index]. A nil f leaves the document as it is.
func Apply(docs []*gltf.Document, index int, f Func) (*Shadow, error) {
	if f == nil {
		return nil, nil
	}
	if index < 0 || index >= len(docs) {
		return nil, errors.Errorf("override: document %d out of range [0, %d)", index, len(docs))
	}
	s, err := f(docs[:index+1], index)
	if err != nil {
		return nil, errors.Wrapf(err, "override document %d", index)
	}
	return s, nil
}
