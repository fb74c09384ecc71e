package services

import (
	"testing"

	"github.com/reglet-dev/linkpage/internal/domain/entities"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCompileLinkFilter_Empty(t *testing.T) {
	filter, err := CompileLinkFilter("")
	require.NoError(t, err)
	assert.Nil(t, filter)

	links := []entities.Link{{ID: "a"}}
	kept, err := filter.Apply(links)
	require.NoError(t, err)
	assert.Equal(t, links, kept)
}

func TestCompileLinkFilter_Invalid(t *testing.T) {
	_, err := CompileLinkFilter("order +")
	require.Error(t, err)

	_, err = CompileLinkFilter("title")
	require.Error(t, err, "non-boolean expression must be rejected")
}

func TestLinkFilter_Apply(t *testing.T) {
	filter, err := CompileLinkFilter(`order < 10 && icon != ""`)
	require.NoError(t, err)
	assert.Equal(t, `order < 10 && icon != ""`, filter.String())

	links := []entities.Link{
		{ID: "a", Icon: "🔗", Order: 1},
		{ID: "b", Order: 2},
		{ID: "c", Icon: "📝", Order: 12},
		{ID: "d", Icon: "📷", Order: 0},
	}

	kept, err := filter.Apply(links)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "d"}, ids(kept))
}
