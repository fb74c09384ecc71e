package output

import (
	"fmt"
	"html/template"
	"io"

	"github.com/reglet-dev/linkpage/internal/application/dto"
	"github.com/reglet-dev/linkpage/internal/templates"
)

// HTMLRenderer writes a page state as a complete HTML document.
type HTMLRenderer struct {
	writer io.Writer
	tmpl   *template.Template
}

// NewHTMLRenderer creates a renderer backed by the embedded page templates.
func NewHTMLRenderer(w io.Writer) (*HTMLRenderer, error) {
	tmpl, err := templates.PageTemplates()
	if err != nil {
		return nil, err
	}
	return &HTMLRenderer{writer: w, tmpl: tmpl}, nil
}

// Format renders the page.
func (r *HTMLRenderer) Format(state dto.PageState) error {
	if err := r.tmpl.ExecuteTemplate(r.writer, templates.PageTemplate, newPageView(state)); err != nil {
		return fmt.Errorf("failed to render page: %w", err)
	}
	return nil
}
