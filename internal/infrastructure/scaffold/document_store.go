// Package scaffold writes starter link page documents for `linkpage init`.
package scaffold

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
)

// ErrExists is returned when the target file exists and overwrite was not requested.
var ErrExists = errors.New("document already exists")

// Answers are the values a user supplies for a starter document.
type Answers struct {
	Name              string
	Bio               string
	GitHubUsername    string
	SocialMediaHandle string
	Website           string
}

// StarterDocument builds a document that passes every required check.
func StarterDocument(a Answers) *entities.RawDocument {
	order := func(v float64) *float64 { return &v }

	links := []entities.RawLink{
		{
			ID:          "github",
			Title:       "GitHub",
			URL:         "https://github.com/" + a.GitHubUsername,
			Icon:        "🐙",
			Description: "Code and projects",
			Order:       order(0),
		},
	}
	if a.Website != "" {
		links = append(links, entities.RawLink{
			ID:    "website",
			Title: "Website",
			URL:   a.Website,
			Icon:  "🌐",
			Order: order(1),
		})
	}

	return &entities.RawDocument{
		Version: "1.0.0",
		Profile: &entities.RawProfile{
			Name:              a.Name,
			Bio:               a.Bio,
			GitHubUsername:    a.GitHubUsername,
			SocialMediaHandle: a.SocialMediaHandle,
		},
		Links: &links,
	}
}

// DocumentStore persists documents to a file. The encoding follows the
// file extension: .yaml and .yml write YAML, anything else JSON.
type DocumentStore struct {
	path string
}

// NewDocumentStore creates a store for path.
func NewDocumentStore(path string) *DocumentStore {
	return &DocumentStore{path: path}
}

// Path returns the target file.
func (s *DocumentStore) Path() string {
	return s.path
}

// Save writes doc. It refuses to replace an existing file unless overwrite is set.
func (s *DocumentStore) Save(doc *entities.RawDocument, overwrite bool) error {
	if !overwrite {
		if _, err := os.Stat(s.path); err == nil {
			return fmt.Errorf("%w: %s", ErrExists, s.path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("failed to check %s: %w", s.path, err)
		}
	}

	dir := filepath.Dir(s.path)
	//nolint:gosec // G301: site directories are served publicly
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("failed to create document directory: %w", err)
	}

	data, err := s.encode(doc)
	if err != nil {
		return err
	}

	//nolint:gosec // G306: the document is served publicly
	return os.WriteFile(s.path, data, 0o644)
}

func (s *DocumentStore) encode(doc *entities.RawDocument) ([]byte, error) {
	switch strings.ToLower(filepath.Ext(s.path)) {
	case ".yaml", ".yml":
		data, err := yaml.MarshalWithOptions(doc, yaml.IndentSequence(true))
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document to YAML: %w", err)
		}
		return data, nil
	default:
		data, err := json.MarshalIndent(doc, "", "  ")
		if err != nil {
			return nil, fmt.Errorf("failed to marshal document to JSON: %w", err)
		}
		return append(data, '\n'), nil
	}
}
