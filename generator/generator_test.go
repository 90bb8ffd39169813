package generator

import (
	"context"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stevk/glTF-Asset-Generator/config"
	"github.com/stevk/glTF-Asset-Generator/figures"
	"github.com/stevk/glTF-Asset-Generator/modelgroup"
)

func testConfig(t *testing.T) *config.Config {
	c := config.Default()
	c.Output = t.TempDir()
	return c
}

func readFile(t *testing.T, path string) string {
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	return string(b)
}

func TestRun(t *testing.T) {
	cfg := testConfig(t)
	results, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	require.NoError(t, Failed(results))
	require.Len(t, results, len(modelgroup.Names()))

	for _, name := range modelgroup.Names() {
		dir := filepath.Join(cfg.Output, OutputDir, name.String())
		assert.FileExists(t, filepath.Join(dir, name.String()+"_00.gltf"))
		assert.FileExists(t, filepath.Join(dir, name.String()+"_00.bin"))
		assert.FileExists(t, filepath.Join(dir, "README.md"))
	}

	main := readFile(t, filepath.Join(cfg.Output, "README.md"))
	assert.Contains(t, main, "- [Compatibility](Output/Compatibility/README.md)\n- [Mesh Primitives](Output/Mesh_Primitives/README.md)")

	readme := readFile(t, filepath.Join(cfg.Output, OutputDir, "Mesh_Primitives", "README.md"))
	assert.Contains(t, readme, "| Material 0 With Base Color Factor | [0.0, 1.0, 0.0, 1.0] |")
	assert.Contains(t, readme, "|   | Sample Image | Primitive 0 | Primitive 1 |")

	compat := readFile(t, filepath.Join(cfg.Output, OutputDir, "Compatibility", "README.md"))
	assert.NotContains(t, compat, "Sample Image")
	assert.NotContains(t, compat, "~~")

	root := readFile(t, filepath.Join(cfg.Output, OutputDir, "Compatibility", "Compatibility_01.gltf"))
	assert.Contains(t, root, `"lights"`)
}

func TestRunSelectedGroupsWithExtras(t *testing.T) {
	cfg := testConfig(t)
	cfg.Groups = []string{"Mesh_Primitives"}
	cfg.Binary = true
	cfg.HTML = true
	cfg.FiguresDir = t.TempDir()
	img := image.NewRGBA(image.Rect(0, 0, 20, 20))
	for _, p := range []string{
		filepath.Join(cfg.FiguresDir, figures.FiguresDir, "Indices_Primitive0.png"),
		filepath.Join(cfg.FiguresDir, figures.SampleImagesDir, "Mesh_Primitives_01.png"),
	} {
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0755))
		f, err := os.Create(p)
		require.NoError(t, err)
		require.NoError(t, png.Encode(f, img))
		require.NoError(t, f.Close())
	}

	results, err := New(cfg).Run(context.Background())
	require.NoError(t, err)
	require.Len(t, results, 1)
	require.NoError(t, results[0].Err)

	dir := filepath.Join(cfg.Output, OutputDir, "Mesh_Primitives")
	for _, f := range []string{
		"Mesh_Primitives_00.glb",
		"README.html",
		filepath.Join("Figures", "Indices_Primitive0.png"),
		filepath.Join("Figures", "Thumbnails", "Mesh_Primitives_01.png"),
		filepath.Join("Figures", "SampleImages", "Mesh_Primitives_01.png"),
	} {
		assert.FileExists(t, filepath.Join(dir, f))
		assert.Contains(t, results[0].Files, filepath.Join(dir, f))
	}
	assert.FileExists(t, filepath.Join(cfg.Output, "README.html"))
	assert.NoDirExists(t, filepath.Join(cfg.Output, OutputDir, "Compatibility"))
}

func TestRunGroupFailureIsIsolated(t *testing.T) {
	cfg := testConfig(t)
	g := New(cfg)
	g.newGroup = func(name modelgroup.Name, figures []string) (*modelgroup.Group, error) {
		if name == modelgroup.MeshPrimitives {
			return nil, errors.New("broken")
		}
		return modelgroup.New(name, figures)
	}

	results, err := g.Run(context.Background())
	require.NoError(t, err)
	require.Error(t, Failed(results))
	for _, r := range results {
		if r.Group == modelgroup.MeshPrimitives {
			assert.Error(t, r.Err)
			continue
		}
		assert.NoError(t, r.Err, r.Group.String())
	}

	main := readFile(t, filepath.Join(cfg.Output, "README.md"))
	assert.NotContains(t, main, "Output/Mesh_Primitives/")
	assert.Contains(t, main, "Output/Animation_Skin/")

	// siblings keep their own columns
	skin := readFile(t, filepath.Join(cfg.Output, OutputDir, "Animation_Skin", "README.md"))
	assert.True(t, strings.Contains(skin, "|   | Sample Image | Mid Joint Rotation | Root Joint Translation |"))
}

func TestRunCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	results, err := New(testConfig(t)).Run(ctx)
	require.NoError(t, err)
	for _, r := range results {
		assert.ErrorIs(t, r.Err, context.Canceled)
	}
}

func TestRunInvalidConfig(t *testing.T) {
	for _, parallelism := range []int{0, -1} {
		cfg := testConfig(t)
		cfg.Parallelism = parallelism
		done := make(chan error, 1)
		go func() {
			_, err := New(cfg).Run(context.Background())
			done <- err
		}()
		select {
		case err := <-done:
			assert.Error(t, err)
		case <-time.After(5 * time.Second):
			t.Fatalf("Run with parallelism %d did not return", parallelism)
		}
		_, err := os.Stat(filepath.Join(cfg.Output, "README.md"))
		assert.True(t, os.IsNotExist(err))
	}
}
