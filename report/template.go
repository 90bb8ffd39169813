package report

import (
	"embed"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

var ErrTemplateNotFound = errors.New("report template not found")

// Tokens understood by the templates, written ~~Name~~.
const (
	HeaderTableToken     = "HeaderTable"
	TableToken           = "Table"
	TableOfContentsToken = "TableOfContents"
)

//go:embed templates/*.md
var templates embed.FS

// Template returns the embedded template called name, e.g. "README.md".
func Template(name string) (string, error) {
	b, err := templates.ReadFile("templates/" + name)
	if err != nil {
		return "", errors.Wrap(ErrTemplateNotFound, name)
	}
	return string(b), nil
}

// Replace substitutes every ~~token~~ of template by its value. Unknown tokens
// are left as they are.
func Replace(template string, values map[string]string) string {
	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	pairs := make([]string, 0, len(keys)*2)
	for _, k := range keys {
		pairs = append(pairs, "~~"+k+"~~", values[k])
	}
	return strings.NewReplacer(pairs...).Replace(template)
}
