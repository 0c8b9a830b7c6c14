// Package fs exports saved items as markdown files.
package fs

import (
	"context"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/fwojciec/clipper"
)

var _ clipper.ItemExporter = (*Exporter)(nil)

// ItemPath converts an item to a relative file path under its source host.
// Example: https://example.com/recipes/pancakes → example.com/recipes/pancakes.md
// Items without a source URL are placed under items/ by ID.
func ItemPath(item *clipper.Item) (string, error) {
	if item.SourceURL == "" {
		if item.ID == "" {
			return "", clipper.Errorf(clipper.EINVALID, "item has neither source URL nor ID")
		}
		return path.Join("items", item.ID+".md"), nil
	}

	u, err := url.Parse(item.SourceURL)
	if err != nil {
		return "", clipper.Errorf(clipper.EINVALID, "invalid source URL: %s", item.SourceURL)
	}

	for _, seg := range strings.Split(u.Path, "/") {
		if seg == ".." {
			return "", clipper.Errorf(clipper.EINVALID, "path traversal in source URL: %s", item.SourceURL)
		}
	}

	host := u.Hostname()
	if host == "" {
		host = "local"
	}

	p := strings.TrimPrefix(u.Path, "/")
	switch {
	case p == "":
		p = "index.md"
	case strings.HasSuffix(p, "/"):
		p += "index.md"
	default:
		p += ".md"
	}
	return path.Join(host, p), nil
}

// FormatItem renders an item with YAML frontmatter followed by its display
// form.
func FormatItem(item *clipper.Item) string {
	var b strings.Builder
	b.WriteString("---\n")
	b.WriteString("id: ")
	b.WriteString(item.ID)
	if item.SourceURL != "" {
		b.WriteString("\nsource: ")
		b.WriteString(item.SourceURL)
	}
	b.WriteString("\ntitle: ")
	b.WriteString(item.Title)
	b.WriteString("\ncategory: ")
	b.WriteString(string(item.Category))
	if !item.CreatedAt.IsZero() {
		b.WriteString("\nsaved: ")
		b.WriteString(item.CreatedAt.Format("2006-01-02"))
	}
	b.WriteString("\n---\n\n")
	b.WriteString(clipper.FormatItem(item))
	b.WriteString("\n")
	return b.String()
}

// Exporter writes items into a directory with atomic update semantics.
// Files are written to baseDir/name.tmp and moved to baseDir/name on Commit.
type Exporter struct {
	baseDir string
	name    string
}

// NewExporter creates a new Exporter.
func NewExporter(baseDir, name string) *Exporter {
	return &Exporter{
		baseDir: baseDir,
		name:    name,
	}
}

func (e *Exporter) tempDir() string {
	return filepath.Join(e.baseDir, e.name+".tmp")
}

func (e *Exporter) finalDir() string {
	return filepath.Join(e.baseDir, e.name)
}

// Save writes item to the temporary directory. A second item with the same
// path gets its ID appended to the file name.
func (e *Exporter) Save(ctx context.Context, item *clipper.Item) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	relPath, err := ItemPath(item)
	if err != nil {
		return err
	}

	fullPath := filepath.Join(e.tempDir(), filepath.FromSlash(relPath))
	if _, err := os.Stat(fullPath); err == nil && item.ID != "" {
		fullPath = strings.TrimSuffix(fullPath, ".md") + "-" + item.ID + ".md"
	}

	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}
	return os.WriteFile(fullPath, []byte(FormatItem(item)), 0644)
}

// Commit replaces the final directory with the temporary one. Committing
// without any saved item leaves an empty directory.
func (e *Exporter) Commit() error {
	if err := os.MkdirAll(e.tempDir(), 0755); err != nil {
		return err
	}
	if err := os.RemoveAll(e.finalDir()); err != nil {
		return err
	}
	return os.Rename(e.tempDir(), e.finalDir())
}

// Abort removes the temporary directory.
func (e *Exporter) Abort() error {
	return os.RemoveAll(e.tempDir())
}
