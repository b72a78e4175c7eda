package frontend

import (
	"embed"
	"html/template"
	"io/fs"

	"github.com/m-mizutani/goerr/v2"
)

// FS embeds the page template and its static files
//
//go:embed all:dist
var FS embed.FS

const indexFile = "index.html"

// IndexTemplate parses the embedded page template
func IndexTemplate() (*template.Template, error) {
	sub, err := fs.Sub(FS, "dist")
	if err != nil {
		return nil, goerr.Wrap(err, "failed to open embedded frontend")
	}

	if !hasIndex(sub) {
		return nil, goerr.Wrap(&fs.PathError{Op: "stat", Path: indexFile, Err: fs.ErrNotExist}, "frontend template is missing")
	}

	tmpl, err := template.ParseFS(sub, indexFile)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to parse page template")
	}
	return tmpl, nil
}

func hasIndex(fsys fs.FS) bool {
	if _, err := fs.Stat(fsys, indexFile); err != nil {
		return false
	}
	return true
}
