package gltfutil

import (
	"github.com/Masterminds/semver/v3"
	"github.com/pkg/errors"
	"github.com/qmuntal/gltf"
)

var ErrNotLoadable = errors.New("asset not loadable")

// Loader is a client that implements one version of glTF and a set of
// extensions.
type Loader struct {
	Version    *semver.Version
	Extensions []string
}

func NewLoader(version string, extensions ...string) (*Loader, error) {
	v, err := semver.NewVersion(version)
	if err != nil {
		return nil, errors.Wrapf(err, "loader version %q", version)
	}
	return &Loader{Version: v, Extensions: extensions}, nil
}

// CanLoad reports whether l accepts an asset. minVersion, when present,
// must not be newer than the loader; otherwise only the major version has to
// match. Every required extension must be supported.
func (l *Loader) CanLoad(asset gltf.Asset, required []string) (bool, error) {
	if asset.MinVersion != "" {
		min, err := semver.NewVersion(asset.MinVersion)
		if err != nil {
			return false, errors.Wrapf(err, "minVersion %q", asset.MinVersion)
		}
		if l.Version.LessThan(min) {
			return false, nil
		}
	} else {
		v, err := semver.NewVersion(asset.Version)
		if err != nil {
			return false, errors.Wrapf(err, "version %q", asset.Version)
		}
		if v.Major() != l.Version.Major() {
			return false, nil
		}
	}
	for _, ext := range required {
		if !l.supports(ext) {
			return false, nil
		}
	}
	return true, nil
}

func (l *Loader) supports(ext string) bool {
	for _, e := range l.Extensions {
		if e == ext {
			return true
		}
	}
	return false
}

// Load opens a saved .gltf or .glb and checks that l accepts it. Fields l does
// not know are dropped by the decoder.
func (l *Loader) Load(path string) (*gltf.Document, error) {
	doc, err := gltf.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "open %s", path)
	}
	ok, err := l.CanLoad(doc.Asset, doc.ExtensionsRequired)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}
	if !ok {
		return nil, errors.Wrapf(ErrNotLoadable, "%s needs glTF %s %v", path, doc.Asset.MinVersion, doc.ExtensionsRequired)
	}
	return doc, nil
}
