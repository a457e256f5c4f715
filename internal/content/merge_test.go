package content

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencycms/internal/model"
)

func TestMerge_MissingSectionsFallBackToDefaults(t *testing.T) {
	doc, warnings := Merge(map[string]json.RawMessage{}, nil)

	assert.Empty(t, warnings)
	assert.Equal(t, model.DefaultContent(), doc)
}

func TestMerge_StoredSectionReplacesDefaultWholly(t *testing.T) {
	stored := map[string]json.RawMessage{
		"header": json.RawMessage(`{"logoType":"image","logoImageUrlLight":"https://cdn.example.com/logo.png"}`),
	}

	doc, warnings := Merge(stored, nil)

	assert.Empty(t, warnings)
	assert.Equal(t, model.LogoTypeImage, doc.Header.LogoType)
	assert.Equal(t, "https://cdn.example.com/logo.png", doc.Header.LogoImageURLLight)
	// Shallow per-top-level-key replace: fields the stored payload omits are
	// zeroed, not backfilled from the default header.
	assert.Equal(t, "", doc.Header.ContactButton)
	// Sections not present keep their defaults untouched.
	assert.Equal(t, model.DefaultContent().Hero, doc.Hero)
}

func TestMerge_MalformedSectionWarnsAndKeepsDefault(t *testing.T) {
	stored := map[string]json.RawMessage{
		"about": json.RawMessage(`{"headline": 42broken`),
	}

	doc, warnings := Merge(stored, nil)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `section "about"`)
	assert.Equal(t, model.DefaultContent().About, doc.About)
}

func TestMerge_TypeMismatchedSectionKeepsDefaultWholly(t *testing.T) {
	// Syntactically valid JSON that fails mid-decode: contactButton decodes
	// before logoType errors. No stored field may survive the fallback.
	stored := map[string]json.RawMessage{
		"header": json.RawMessage(`{"contactButton":"HACK","logoType":123}`),
	}

	doc, warnings := Merge(stored, nil)

	require.Len(t, warnings, 1)
	assert.Contains(t, warnings[0], `section "header"`)
	assert.Equal(t, model.DefaultContent().Header, doc.Header)
}

func TestMerge_EmptyPortfolioFallsBackToDefault(t *testing.T) {
	doc, _ := Merge(map[string]json.RawMessage{}, []model.PortfolioItem{})

	assert.Equal(t, model.DefaultContent().Portfolio, doc.Portfolio)
}

func TestMerge_StoredPortfolioWins(t *testing.T) {
	rows := []model.PortfolioItem{{ID: persistedID, Title: "Projeto", Category: "Web", ImageURL: "https://example.com/a.jpg"}}

	doc, _ := Merge(map[string]json.RawMessage{}, rows)

	assert.Equal(t, rows, doc.Portfolio)
}

func TestParseTechnologies(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int
		wantErr bool
	}{
		{name: "plain array", raw: `[{"name":"Go","icon":"<svg/>"}]`, want: 1},
		{name: "doubly encoded string", raw: `"[{\"name\":\"Go\",\"icon\":\"<svg/>\"}]"`, want: 1},
		{name: "empty column", raw: ``, want: 0},
		{name: "garbage", raw: `{{{`, wantErr: true},
		{name: "string of garbage", raw: `"not json"`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			techs, err := ParseTechnologies([]byte(tt.raw))
			if tt.wantErr {
				assert.Error(t, err)
				assert.Empty(t, techs)
				return
			}
			assert.NoError(t, err)
			assert.Len(t, techs, tt.want)
		})
	}
}
