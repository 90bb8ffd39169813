// Package report turns the property records of a model group into the
// markdown tables of its README.
package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pkg/errors"

	"github.com/stevk/glTF-Asset-Generator/property"
)

// DefaultViewerURL is formatted with the group id and the model index.
const DefaultViewerURL = "https://bghgary.github.io/glTF-Assets-Viewer/?folder=%d&model=%d"

const (
	blankCell     = " "
	alignCenter   = ":---:"
	sampleImage   = "Sample Image"
	propertyLabel = "Property"
	valuesLabel   = "**Values**"
)

// Builder synthesizes the tables of one group. Columns are fixed by
// SetupHeader; every later row has one cell per column.
type Builder struct {
	group        string
	id           int
	viewerURL    string
	sampleImages bool
	header       [][]string
	table        [][]string
	columns      []property.Name
}

func NewBuilder(group string, id int, viewerURL string) *Builder {
	if viewerURL == "" {
		viewerURL = DefaultViewerURL
	}
	return &Builder{group: group, id: id, viewerURL: viewerURL}
}

// SetupHeader builds the common properties table, when common is not nil,
// and the header rows of the main table.
func (b *Builder) SetupHeader(common []property.Property, columns []property.Name, noSampleImages bool) {
	b.header = nil
	if common != nil {
		b.header = [][]string{
			{}, // first line of a table must be blank
			{propertyLabel, valuesLabel},
			{alignCenter, alignCenter},
		}
		for _, p := range common {
			b.header = append(b.header, []string{p.ColumnName(), p.Value})
		}
	}

	b.sampleImages = !noSampleImages
	names := []string{blankCell}
	align := []string{alignCenter}
	if b.sampleImages {
		names = append(names, sampleImage)
		align = append(align, alignCenter)
	}
	b.columns = nil
	seen := map[property.Name]bool{}
	for _, c := range columns {
		if seen[c] {
			continue
		}
		seen[c] = true
		b.columns = append(b.columns, c)
		names = append(names, c.ColumnName())
		align = append(align, alignCenter)
	}
	b.table = [][]string{{}, names, align}
}

func (b *Builder) modelName(index int) string {
	return fmt.Sprintf("%s_%02d", b.group, index)
}

// SetupTable adds the row of the index-th model. A column the record has no
// property for gets a blank cell; of two properties with the same name the
// first one is shown.
func (b *Builder) SetupTable(index int, rec property.Record) {
	name := b.modelName(index)
	url := fmt.Sprintf(b.viewerURL, b.id, index)
	row := []string{fmt.Sprintf("[%02d](%s.gltf)<br>[View](%s)", index, name, url)}
	if b.sampleImages {
		row = append(row, fmt.Sprintf(`[<img src="Figures/Thumbnails/%s.png" align="middle">](Figures/SampleImages/%s.png)`, name, name))
	}
	for _, c := range b.columns {
		if p, ok := rec.Lookup(c); ok {
			row = append(row, p.Value)
		} else {
			row = append(row, blankCell)
		}
	}
	b.table = append(b.table, row)
}

func (b *Builder) Columns() []property.Name {
	return append([]property.Name(nil), b.columns...)
}

// Rows returns the model rows of the main table.
func (b *Builder) Rows() [][]string {
	if len(b.table) < 3 {
		return nil
	}
	rows := make([][]string, 0, len(b.table)-3)
	for _, r := range b.table[3:] {
		rows = append(rows, append([]string(nil), r...))
	}
	return rows
}

func markdownTable(rows [][]string) string {
	var sb strings.Builder
	for _, r := range rows {
		if len(r) > 0 {
			sb.WriteString("| " + strings.Join(r, " | ") + " |\n")
		}
	}
	return sb.String()
}

func (b *Builder) HeaderTable() string {
	return markdownTable(b.header)
}

func (b *Builder) Table() string {
	return markdownTable(b.table)
}

// Render fills the table tokens of template.
func (b *Builder) Render(template string) string {
	return Replace(template, map[string]string{
		HeaderTableToken: b.HeaderTable(),
		TableToken:       b.Table(),
	})
}

// WriteOut renders the group's template into dir/README.md and returns the
// written path.
func (b *Builder) WriteOut(dir string) (string, error) {
	template, err := Template(b.group + ".md")
	if err != nil {
		return "", err
	}
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(b.Render(template)), 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}
