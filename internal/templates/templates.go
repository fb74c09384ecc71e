// Package templates provides the embedded HTML templates for the link page.
package templates

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"strings"
)

//go:embed page/*.tmpl
var pageTemplates embed.FS

// PageTemplate is the entry point executed to render a full page.
const PageTemplate = "page"

// PageTemplates returns the parsed page templates. Each file defines one
// named template; the file name without .tmpl is not significant.
func PageTemplates() (*template.Template, error) {
	tmpl := template.New(PageTemplate)

	err := fs.WalkDir(pageTemplates, "page", func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(path, ".tmpl") {
			return nil
		}

		content, err := pageTemplates.ReadFile(path)
		if err != nil {
			return fmt.Errorf("reading template %s: %w", path, err)
		}

		if _, err := tmpl.Parse(string(content)); err != nil {
			return fmt.Errorf("parsing template %s: %w", path, err)
		}

		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("loading templates: %w", err)
	}

	for _, name := range TemplateNames() {
		if tmpl.Lookup(name) == nil {
			return nil, fmt.Errorf("loading templates: %q is not defined", name)
		}
	}

	return tmpl, nil
}

// TemplateNames lists the named templates every page render relies on.
func TemplateNames() []string {
	return []string{PageTemplate, "profile", "links", "link", "link-skeleton"}
}
