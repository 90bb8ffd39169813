// Package storage writes generated models to disk: Name.gltf with its
// buffers in Name.bin, and optionally a self-contained Name.glb.
package storage

import (
	"encoding/json"
	"io"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"

	"github.com/stevk/glTF-Asset-Generator/gltfutil"
	"github.com/stevk/glTF-Asset-Generator/override"
)

// Writer saves the models of one group into Dir.
type Writer struct {
	Dir string
	// Binary also writes a .glb next to every .gltf.
	Binary bool
	fsys   dirFS
}

func NewWriter(dir string, binary bool) (*Writer, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, errors.Wrapf(err, "create %s", dir)
	}
	return &Writer{Dir: dir, Binary: binary, fsys: newDirFS(dir)}, nil
}

// dirFS is the gltf.CreateFS the encoder writes relative buffer URIs to.
type dirFS struct {
	fs.FS
	dir string
}

func newDirFS(dir string) dirFS {
	return dirFS{FS: os.DirFS(dir), dir: dir}
}

func (d dirFS) Create(name string) (io.WriteCloser, error) {
	path := filepath.Join(d.dir, filepath.FromSlash(name))
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return nil, err
	}
	return os.Create(path)
}

func (d dirFS) writeFile(name string, data []byte) (err error) {
	f, err := d.Create(name)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	_, err = f.Write(data)
	return err
}

// Save writes the model called name. doc is a *gltf.Document or an
// *override.Shadow replacing canonical, whose buffers it refers to. Shadows
// only exist as .gltf. It returns the written paths.
func (w *Writer) Save(name string, doc interface{}, canonical *gltf.Document) ([]string, error) {
	var written []string
	switch d := doc.(type) {
	case *gltf.Document:
		p, err := w.saveDocument(name, d)
		if err != nil {
			return nil, err
		}
		written = append(written, p...)
		if w.Binary {
			glb, err := w.saveBinary(name, d)
			if err != nil {
				return nil, err
			}
			written = append(written, glb)
		}
	case *override.Shadow:
		p, err := w.saveShadow(name, d, canonical)
		if err != nil {
			return nil, err
		}
		written = append(written, p...)
	default:
		return nil, errors.Errorf("%s: cannot save %T", name, doc)
	}
	return written, nil
}

func create(path string, write func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "create %s", path)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = errors.Wrapf(cerr, "close %s", path)
		}
	}()
	if err := write(f); err != nil {
		return errors.Wrapf(err, "write %s", path)
	}
	return nil
}

func (w *Writer) bufferPaths(doc *gltf.Document) []string {
	var paths []string
	for _, b := range doc.Buffers {
		if b.URI != "" && !b.IsEmbeddedResource() && len(b.Data) > 0 {
			paths = append(paths, filepath.Join(w.Dir, filepath.FromSlash(b.URI)))
		}
	}
	return paths
}

func (w *Writer) saveDocument(name string, doc *gltf.Document) ([]string, error) {
	path := filepath.Join(w.Dir, name+".gltf")
	err := create(path, func(out io.Writer) error {
		e := gltf.NewEncoderFS(out, w.fsys)
		e.AsBinary = false
		return e.Encode(doc)
	})
	if err != nil {
		return nil, err
	}
	return append([]string{path}, w.bufferPaths(doc)...), nil
}

func (w *Writer) saveShadow(name string, s *override.Shadow, canonical *gltf.Document) ([]string, error) {
	path := filepath.Join(w.Dir, name+".gltf")
	err := create(path, func(out io.Writer) error {
		return json.NewEncoder(out).Encode(s)
	})
	if err != nil {
		return nil, err
	}
	written := []string{path}
	if canonical == nil {
		return written, nil
	}
	for _, b := range canonical.Buffers {
		if b.URI == "" || b.IsEmbeddedResource() || len(b.Data) == 0 {
			continue
		}
		if err := w.fsys.writeFile(b.URI, b.Data); err != nil {
			return nil, errors.Wrapf(err, "write %s", b.URI)
		}
		written = append(written, filepath.Join(w.Dir, filepath.FromSlash(b.URI)))
	}
	return written, nil
}

func (w *Writer) saveBinary(name string, doc *gltf.Document) (string, error) {
	single, err := gltfutil.ToSingleFile(doc, w.Dir)
	if err != nil {
		return "", errors.Wrap(err, name)
	}
	path := filepath.Join(w.Dir, name+".glb")
	err = create(path, func(out io.Writer) error {
		e := gltf.NewEncoderFS(out, w.fsys)
		e.AsBinary = true
		return e.Encode(single)
	})
	if err != nil {
		return "", err
	}
	return path, nil
}
