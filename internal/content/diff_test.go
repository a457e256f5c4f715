package content

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencycms/internal/model"
)

func TestDiff_SingleFieldChange(t *testing.T) {
	oldDoc := model.DefaultContent()
	newDoc := model.DefaultContent()
	newDoc.About.Headline = "Novo título"

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 1)
	assert.Equal(t, "about.headline", changes[0].Path)
	assert.Equal(t, oldDoc.About.Headline, changes[0].OldValue)
	assert.Equal(t, "Novo título", changes[0].NewValue)
}

func TestDiff_Identical(t *testing.T) {
	doc := model.DefaultContent()
	assert.Empty(t, Diff(doc, model.DefaultContent()))
}

func TestDiff_ArraysAreAtomicLeaves(t *testing.T) {
	oldDoc := model.DefaultContent()
	newDoc := model.DefaultContent()
	newDoc.Portfolio = append(newDoc.Portfolio, model.PortfolioItem{Title: "Extra", Category: "Web", ImageURL: "https://example.com/x.jpg"})

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 1)
	assert.Equal(t, "portfolio", changes[0].Path)
	for _, c := range changes {
		assert.False(t, strings.HasPrefix(c.Path, "portfolio."), "array diffs must never subdivide, got path %q", c.Path)
	}
}

func TestDiff_ReorderedArrayIsOneRecord(t *testing.T) {
	oldDoc := map[string]any{"portfolio": []any{"A", "B", "C"}}
	newDoc := map[string]any{"portfolio": []any{"B", "A", "C"}}

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 1)
	assert.Equal(t, "portfolio", changes[0].Path)
}

func TestDiff_MissingKeysCompareAsNull(t *testing.T) {
	oldDoc := map[string]any{"a": map[string]any{"x": 1}}
	newDoc := map[string]any{"a": map[string]any{"y": 2}}

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 2)
	assert.Equal(t, "a.x", changes[0].Path)
	assert.Nil(t, changes[0].NewValue)
	assert.Equal(t, "a.y", changes[1].Path)
	assert.Nil(t, changes[1].OldValue)
}

func TestDiff_MixedShapesAreLeaves(t *testing.T) {
	oldDoc := map[string]any{"v": map[string]any{"x": 1}}
	newDoc := map[string]any{"v": "scalar now"}

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 1)
	assert.Equal(t, "v", changes[0].Path)
}

func TestDiff_NestedPaths(t *testing.T) {
	oldDoc := map[string]any{"theme_settings": map[string]any{"accent": "#0891b2", "muted": "#94a3b8"}}
	newDoc := map[string]any{"theme_settings": map[string]any{"accent": "#ff0000", "muted": "#94a3b8"}}

	changes := Diff(oldDoc, newDoc)

	require.Len(t, changes, 1)
	assert.Equal(t, "theme_settings.accent", changes[0].Path)
	assert.Equal(t, "#0891b2", changes[0].OldValue)
	assert.Equal(t, "#ff0000", changes[0].NewValue)
}
