// Package generator runs the whole pipeline: for every selected group it
// builds the models, synthesizes the report tables, then writes the models,
// figures and README. Groups run concurrently and fail independently.
package generator

import (
	"context"
	"path/filepath"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/stevk/glTF-Asset-Generator/config"
	"github.com/stevk/glTF-Asset-Generator/converter"
	"github.com/stevk/glTF-Asset-Generator/figures"
	"github.com/stevk/glTF-Asset-Generator/logger"
	"github.com/stevk/glTF-Asset-Generator/modelgroup"
	"github.com/stevk/glTF-Asset-Generator/property"
	"github.com/stevk/glTF-Asset-Generator/report"
	"github.com/stevk/glTF-Asset-Generator/storage"
)

// OutputDir is the directory, under the configured output, holding one
// directory per group.
const OutputDir = "Output"

// Result is the outcome of one group.
type Result struct {
	Group modelgroup.Name
	Files []string
	Err   error
}

type Generator struct {
	cfg      *config.Config
	newGroup func(name modelgroup.Name, figures []string) (*modelgroup.Group, error)
}

func New(cfg *config.Config) *Generator {
	return &Generator{cfg: cfg, newGroup: modelgroup.New}
}

// GroupDir is where the files of a group are written.
func (g *Generator) GroupDir(name modelgroup.Name) string {
	return filepath.Join(g.cfg.Output, OutputDir, name.String())
}

// Run generates every selected group, then the main README. Results are in
// selection order. The returned error only reports failures outside groups;
// see Failed for group failures.
func (g *Generator) Run(ctx context.Context) ([]Result, error) {
	if err := g.cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}
	names, err := g.cfg.GroupNames()
	if err != nil {
		return nil, err
	}
	available, err := figures.Available(g.cfg.FiguresDir)
	if err != nil {
		return nil, err
	}

	results := make([]Result, len(names))
	var eg errgroup.Group
	eg.SetLimit(g.cfg.Parallelism)
	for i, name := range names {
		i, name := i, name
		eg.Go(func() error {
			results[i] = g.runGroup(ctx, name, available)
			return nil
		})
	}
	_ = eg.Wait()

	var done []string
	for _, r := range results {
		if r.Err != nil {
			logger.Log.Error("group failed", zap.Stringer("group", r.Group), zap.Error(r.Err))
			continue
		}
		done = append(done, r.Group.String())
	}
	path, err := report.WriteMainReadme(g.cfg.Output, done)
	if err != nil {
		return results, err
	}
	if g.cfg.HTML {
		if _, err := report.WriteHTML(path, "glTF Asset Generator"); err != nil {
			return results, err
		}
	}
	return results, nil
}

// Failed joins the errors of the failed groups, or returns nil.
func Failed(results []Result) error {
	var err error
	for _, r := range results {
		if r.Err == nil {
			continue
		}
		if err == nil {
			err = r.Err
		} else {
			err = errors.Errorf("%v; %v", err, r.Err)
		}
	}
	return err
}

func (g *Generator) runGroup(ctx context.Context, name modelgroup.Name, available []string) (res Result) {
	res.Group = name
	if err := ctx.Err(); err != nil {
		res.Err = errors.Wrap(err, name.String())
		return res
	}
	log := logger.Log.With(zap.Stringer("group", name))

	grp, err := g.newGroup(name, available)
	if err != nil {
		res.Err = errors.Wrapf(err, "create %s", name)
		return res
	}
	opts := &converter.SceneToGLTFOption{Generator: g.cfg.Generator, Copyright: g.cfg.Copyright}
	if err := grp.Build(opts); err != nil {
		res.Err = errors.Wrapf(err, "build %s", name)
		return res
	}

	noSampleImages := g.cfg.NoSampleImages(grp)
	b := report.NewBuilder(name.String(), grp.ID(), g.cfg.ViewerURL)
	b.SetupHeader(grp.CommonProperties, grp.Properties, noSampleImages)
	for i, m := range grp.Models {
		b.SetupTable(i, m.Properties)
	}

	dir := g.GroupDir(name)
	add := func(files ...string) {
		res.Files = append(res.Files, files...)
	}
	if err := g.writeModels(dir, grp, add); err != nil {
		res.Err = err
		return res
	}

	if g.cfg.FiguresDir != "" {
		files, err := figures.CopyFigures(g.cfg.FiguresDir, dir, grp.Figures)
		add(files...)
		if err != nil {
			res.Err = errors.Wrapf(err, "%s figures", name)
			return res
		}
		if !noSampleImages {
			models := make([]string, len(grp.Models))
			for i := range grp.Models {
				models[i] = grp.ModelName(i)
			}
			files, err := figures.SampleImages(g.cfg.FiguresDir, dir, models, g.cfg.ThumbnailWidth)
			add(files...)
			if err != nil {
				res.Err = errors.Wrapf(err, "%s sample images", name)
				return res
			}
		}
	}

	readme, err := b.WriteOut(dir)
	if err != nil {
		res.Err = errors.Wrapf(err, "%s report", name)
		return res
	}
	add(readme)
	if g.cfg.HTML {
		html, err := report.WriteHTML(readme, property.SpacedName(name.String()))
		if err != nil {
			res.Err = errors.Wrapf(err, "%s report", name)
			return res
		}
		add(html)
	}
	log.Info("group generated", zap.Int("models", len(grp.Models)), zap.Int("files", len(res.Files)))
	return res
}

func (g *Generator) writeModels(dir string, grp *modelgroup.Group, add func(...string)) error {
	w, err := storage.NewWriter(dir, g.cfg.Binary)
	if err != nil {
		return err
	}
	for i, m := range grp.Models {
		var doc interface{} = m.Document
		if m.Replacement != nil {
			doc = m.Replacement
		}
		files, err := w.Save(grp.ModelName(i), doc, m.Document)
		if err != nil {
			return errors.Wrapf(err, "save %s", grp.ModelName(i))
		}
		add(files...)
	}
	return nil
}
