package templates

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPageTemplates_Load(t *testing.T) {
	t.Parallel()

	tmpl, err := PageTemplates()

	require.NoError(t, err)
	for _, name := range TemplateNames() {
		assert.NotNil(t, tmpl.Lookup(name), "template %s should be loaded", name)
	}
}

func TestPageTemplates_LinkEscapesContent(t *testing.T) {
	t.Parallel()

	tmpl, err := PageTemplates()
	require.NoError(t, err)

	data := map[string]any{
		"ID":    "x",
		"URL":   "https://example.com/?a=1&b=2",
		"Title": "<script>alert(1)</script>",
	}

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "link", data))

	out := buf.String()
	assert.Contains(t, out, `target="_blank"`)
	assert.Contains(t, out, `rel="noopener noreferrer"`)
	assert.Contains(t, out, "&lt;script&gt;")
	assert.NotContains(t, out, "<script>")
}

func TestPageTemplates_UnsafeSchemeIsNeutralised(t *testing.T) {
	t.Parallel()

	tmpl, err := PageTemplates()
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, tmpl.ExecuteTemplate(&buf, "link", map[string]any{
		"ID": "x", "URL": "javascript:alert(1)", "Title": "T",
	}))

	assert.NotContains(t, buf.String(), "javascript:")
}
