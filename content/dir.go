package content

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/adrg/frontmatter"
	"go.uber.org/zap"

	"github.com/eringen/showcase/gallery"
)

var extensions = []string{".mdx", ".md"}

// Dir reads example documents from a directory tree. A file at
// <root>/examples/nodes/custom-node.mdx (or .../custom-node/index.mdx) has
// the route /examples/nodes/custom-node.
type Dir struct {
	root string
	log  *zap.Logger
}

// NewDir returns a Dir rooted at root. A nil logger discards output.
func NewDir(root string, log *zap.Logger) *Dir {
	if log == nil {
		log = zap.NewNop()
	}
	return &Dir{root: root, log: log}
}

// Root returns the directory the source reads from.
func (d *Dir) Root() string { return d.root }

// ListUnderRoute walks the directory for route and returns its documents in
// lexical path order. A missing directory yields no records.
func (d *Dir) ListUnderRoute(ctx context.Context, route string) ([]gallery.Record, error) {
	base := filepath.Join(d.root, filepath.FromSlash(strings.Trim(route, "/")))
	if _, err := os.Stat(base); errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}

	var out []gallery.Record
	err := filepath.WalkDir(base, func(p string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		if entry.IsDir() || !hasContentExt(entry.Name()) {
			return nil
		}
		rel, err := filepath.Rel(d.root, p)
		if err != nil {
			return err
		}
		r := routeFor(rel)
		if !IsUnder(r, route) {
			return nil
		}
		rec, err := d.load(p, r)
		if err != nil {
			return err
		}
		out = append(out, rec)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("content: walk %s: %w", base, err)
	}
	return out, nil
}

// All lists every route in order and flattens the result.
func (d *Dir) All(ctx context.Context, routes []string) ([]gallery.Record, error) {
	var out []gallery.Record
	for _, route := range routes {
		recs, err := d.ListUnderRoute(ctx, route)
		if err != nil {
			return nil, err
		}
		out = append(out, recs...)
	}
	return out, nil
}

func (d *Dir) load(file, route string) (gallery.Record, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return gallery.Record{}, err
	}
	rec := gallery.Record{Route: route, Name: path.Base(route)}

	var fm gallery.FrontMatter
	rest, err := frontmatter.Parse(bytes.NewReader(data), &fm)
	switch {
	case err != nil:
		d.log.Warn("invalid front matter, keeping document without it",
			zap.String("file", file), zap.Error(err))
		rec.Body = string(data)
	case len(rest) == len(data):
		rec.Body = string(data)
	default:
		rec.FrontMatter = &fm
		rec.Body = string(rest)
	}
	return rec, nil
}

func hasContentExt(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	for _, e := range extensions {
		if ext == e {
			return true
		}
	}
	return false
}

// routeFor maps a root-relative file path to its route.
func routeFor(rel string) string {
	rel = filepath.ToSlash(rel)
	rel = strings.TrimSuffix(rel, path.Ext(rel))
	rel = strings.TrimSuffix(rel, "/index")
	if rel == "index" {
		rel = ""
	}
	return "/" + rel
}
