// Package config decodes link page documents.
// JSON bodies are decoded with encoding/json so every valid JSON document is
// read with JSON rules (exponent numbers, last duplicate key wins). Anything
// else is decoded as YAML.
package config

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/goccy/go-yaml"
	"github.com/reglet-dev/linkpage/internal/domain/entities"
	jsonschema "github.com/santhosh-tekuri/jsonschema/v5"
)

//go:embed schema/document.schema.json
var documentSchema []byte

const schemaResource = "document.schema.json"

var (
	compileOnce    sync.Once
	compiledSchema *jsonschema.Schema
	compileErr     error
)

// DocumentDecoder implements ports.DocumentDecoder.
// The schema pins value types only. Presence of required fields is left to
// the domain compiler so its ordered messages survive.
type DocumentDecoder struct{}

// NewDocumentDecoder creates a new document decoder.
func NewDocumentDecoder() *DocumentDecoder {
	return &DocumentDecoder{}
}

// Decode parses data as JSON or YAML and returns the raw document.
func (d *DocumentDecoder) Decode(data []byte) (*entities.RawDocument, error) {
	unmarshal := func(data []byte, v any) error { return yaml.Unmarshal(data, v) }
	if json.Valid(data) {
		unmarshal = json.Unmarshal
	}

	var generic any
	if err := unmarshal(data, &generic); err != nil {
		return nil, fmt.Errorf("failed to parse document: %w", err)
	}

	schema, err := loadSchema()
	if err != nil {
		return nil, err
	}

	if err := schema.Validate(normalize(generic)); err != nil {
		if validationErr, ok := err.(*jsonschema.ValidationError); ok {
			return nil, formatSchemaValidationError(validationErr)
		}
		return nil, fmt.Errorf("document shape check failed: %w", err)
	}

	var raw entities.RawDocument
	if err := unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to decode document: %w", err)
	}

	return &raw, nil
}

func loadSchema() (*jsonschema.Schema, error) {
	compileOnce.Do(func() {
		compiler := jsonschema.NewCompiler()
		compiler.Draft = jsonschema.Draft2020

		if err := compiler.AddResource(schemaResource, bytes.NewReader(documentSchema)); err != nil {
			compileErr = fmt.Errorf("failed to add document schema: %w", err)
			return
		}

		compiledSchema, compileErr = compiler.Compile(schemaResource)
		if compileErr != nil {
			compileErr = fmt.Errorf("failed to compile document schema: %w", compileErr)
		}
	})
	return compiledSchema, compileErr
}

// normalize converts YAML-decoded values into the shapes the schema validator
// understands: string-keyed maps, []any and float64 numbers.
func normalize(v any) any {
	switch val := v.(type) {
	case map[string]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[k] = normalize(item)
		}
		return out
	case map[any]any:
		out := make(map[string]any, len(val))
		for k, item := range val {
			out[fmt.Sprint(k)] = normalize(item)
		}
		return out
	case []any:
		out := make([]any, len(val))
		for i, item := range val {
			out[i] = normalize(item)
		}
		return out
	case int:
		return float64(val)
	case int64:
		return float64(val)
	case uint64:
		return float64(val)
	case float32:
		return float64(val)
	default:
		return val
	}
}

// formatSchemaValidationError flattens nested schema causes into one message.
func formatSchemaValidationError(err *jsonschema.ValidationError) error {
	var messages []string

	var collect func(*jsonschema.ValidationError)
	collect = func(e *jsonschema.ValidationError) {
		if len(e.Causes) == 0 && e.Message != "" {
			location := e.InstanceLocation
			if location == "" {
				location = "(root)"
			}
			messages = append(messages, fmt.Sprintf("%s: %s", location, e.Message))
		}
		for _, cause := range e.Causes {
			collect(cause)
		}
	}
	collect(err)

	if len(messages) == 0 {
		return fmt.Errorf("document shape check failed")
	}

	return fmt.Errorf("document shape check failed:\n    - %s", strings.Join(messages, "\n    - "))
}
