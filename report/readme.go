package report

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gomarkdown/markdown"
	"github.com/gomarkdown/markdown/html"
	"github.com/gomarkdown/markdown/parser"
	"github.com/pkg/errors"

	"github.com/stevk/glTF-Asset-Generator/property"
)

// TableOfContents links the README of every group, in order.
func TableOfContents(groups []string) string {
	var sb strings.Builder
	for _, g := range groups {
		fmt.Fprintf(&sb, "- [%s](Output/%s/README.md)\n", property.SpacedName(g), g)
	}
	return sb.String()
}

// WriteMainReadme writes dir/README.md listing groups and returns its path.
func WriteMainReadme(dir string, groups []string) (string, error) {
	template, err := Template("README.md")
	if err != nil {
		return "", err
	}
	md := Replace(template, map[string]string{TableOfContentsToken: TableOfContents(groups)})
	path := filepath.Join(dir, "README.md")
	if err := os.WriteFile(path, []byte(md), 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", path)
	}
	return path, nil
}

// RenderHTML converts a markdown report to a standalone HTML page.
func RenderHTML(title string, md []byte) []byte {
	p := parser.NewWithExtensions(parser.CommonExtensions | parser.AutoHeadingIDs)
	r := html.NewRenderer(html.RendererOptions{
		Title: title,
		Flags: html.CommonFlags | html.CompletePage,
	})
	return markdown.ToHTML(md, p, r)
}

// WriteHTML renders the markdown file at path next to it as .html.
func WriteHTML(path, title string) (string, error) {
	md, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrapf(err, "read %s", path)
	}
	out := strings.TrimSuffix(path, filepath.Ext(path)) + ".html"
	if err := os.WriteFile(out, RenderHTML(title, md), 0644); err != nil {
		return "", errors.Wrapf(err, "write %s", out)
	}
	return out, nil
}
