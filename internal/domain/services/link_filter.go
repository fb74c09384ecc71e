package services

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
)

// LinkEnv defines the variables available during filter expression evaluation.
type LinkEnv struct {
	ID          string  `expr:"id"`
	Title       string  `expr:"title"`
	URL         string  `expr:"url"`
	Icon        string  `expr:"icon"`
	Description string  `expr:"description"`
	Order       float64 `expr:"order"`
}

// LinkFilter selects which links are shown, using a compiled expr program.
// A nil filter keeps every link.
type LinkFilter struct {
	program *vm.Program
	source  string
}

// CompileLinkFilter compiles source once. An empty source yields a nil filter.
func CompileLinkFilter(source string) (*LinkFilter, error) {
	if source == "" {
		return nil, nil
	}

	program, err := expr.Compile(source, expr.Env(LinkEnv{}), expr.AsBool())
	if err != nil {
		return nil, fmt.Errorf("invalid filter expression: %w", err)
	}

	return &LinkFilter{program: program, source: source}, nil
}

// String returns the expression source.
func (f *LinkFilter) String() string {
	if f == nil {
		return ""
	}
	return f.source
}

// Matches evaluates the program against link.
func (f *LinkFilter) Matches(link entities.Link) (bool, error) {
	if f == nil {
		return true, nil
	}

	env := LinkEnv{
		ID:          link.ID,
		Title:       link.Title,
		URL:         link.URL,
		Icon:        link.Icon,
		Description: link.Description,
		Order:       link.Order,
	}

	output, err := expr.Run(f.program, env)
	if err != nil {
		return false, fmt.Errorf("filter expression error: %w", err)
	}

	result, ok := output.(bool)
	if !ok {
		return false, fmt.Errorf("filter expression did not return boolean: %v", output)
	}

	return result, nil
}

// Apply returns the links that match, preserving their order.
func (f *LinkFilter) Apply(links []entities.Link) ([]entities.Link, error) {
	if f == nil {
		return links, nil
	}

	kept := make([]entities.Link, 0, len(links))
	for _, l := range links {
		ok, err := f.Matches(l)
		if err != nil {
			return nil, fmt.Errorf("link %s: %w", l.ID, err)
		}
		if ok {
			kept = append(kept, l)
		}
	}
	return kept, nil
}
