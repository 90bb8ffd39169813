package gltfutil

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
	"github.com/qmuntal/gltf/modeler"
	"go.uber.org/zap"

	"github.com/stevk/glTF-Asset-Generator/logger"
)

// BufferURI names the index-th buffer of a document saved as base.gltf.
func BufferURI(base string, index int) string {
	if index == 0 {
		return base + ".bin"
	}
	return fmt.Sprintf("%s_%d.bin", base, index)
}

func SetBufferURIs(doc *gltf.Document, base string) {
	for i, b := range doc.Buffers {
		b.URI = BufferURI(base, i)
	}
}

// ToSingleFile returns a copy of doc ready to be saved as .glb: buffer URIs
// are cleared and external images found under srcDir are moved into buffer
// views. doc itself is left untouched.
func ToSingleFile(doc *gltf.Document, srcDir string) (*gltf.Document, error) {
	single := *doc
	single.Buffers = make([]*gltf.Buffer, len(doc.Buffers))
	for i, b := range doc.Buffers {
		nb := *b
		nb.URI = ""
		nb.Data = append([]byte(nil), b.Data...)
		single.Buffers[i] = &nb
	}
	single.BufferViews = append([]*gltf.BufferView(nil), doc.BufferViews...)
	single.Images = make([]*gltf.Image, len(doc.Images))
	for i, m := range doc.Images {
		nm := *m
		single.Images[i] = &nm
	}
	if len(single.Images) > 0 && len(single.Buffers) == 0 {
		single.Buffers = []*gltf.Buffer{{}}
	}

	for _, m := range single.Images {
		if m.BufferView != nil || m.URI == "" || m.IsEmbeddedResource() {
			continue
		}
		path := filepath.Join(srcDir, filepath.FromSlash(m.URI))
		buf, err := os.ReadFile(path)
		if err != nil {
			logger.Log.Warn("image not embedded", zap.String("uri", m.URI), zap.Error(err))
			continue
		}
		if m.MimeType == "" {
			if strings.HasSuffix(strings.ToLower(m.URI), ".png") {
				m.MimeType = "image/png"
			} else {
				m.MimeType = "image/jpeg"
			}
		}
		m.BufferView = gltf.Index(modeler.WriteBufferView(&single, gltf.TargetNone, buf))
		m.URI = ""
	}
	if len(single.Buffers) > 1 {
		return nil, errors.Errorf("glb supports a single buffer, document has %d", len(single.Buffers))
	}
	return &single, nil
}
