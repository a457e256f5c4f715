package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencycms/internal/model"
)

func validDocument() *model.ContentDocument {
	doc := model.DefaultContent()
	doc.Portfolio = []model.PortfolioItem{
		{Title: "Projeto", Category: "Web", ImageURL: "https://example.com/a.jpg"},
	}
	return doc
}

func TestValidate_ValidDocument(t *testing.T) {
	res := Validate(validDocument())

	assert.True(t, res.IsValid)
	assert.Empty(t, res.Header)
	assert.Empty(t, res.About)
	assert.Equal(t, "", res.FirstInvalidTab())
}

func TestValidate_HeaderRules(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(doc *model.ContentDocument)
		wantField string
	}{
		{
			name: "text logo requires logoText",
			mutate: func(doc *model.ContentDocument) {
				doc.Header.LogoType = model.LogoTypeText
				doc.Header.LogoText = "   "
			},
			wantField: "logoText",
		},
		{
			name: "image logo requires at least one image url",
			mutate: func(doc *model.ContentDocument) {
				doc.Header.LogoType = model.LogoTypeImage
				doc.Header.LogoImageURLLight = ""
				doc.Header.LogoImageURLDark = ""
			},
			wantField: "logoImageUrlLight",
		},
		{
			name: "contact button required",
			mutate: func(doc *model.ContentDocument) {
				doc.Header.ContactButton = ""
			},
			wantField: "contactButton",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := validDocument()
			tt.mutate(doc)

			res := Validate(doc)

			assert.False(t, res.IsValid)
			assert.Contains(t, res.Header, tt.wantField)
			assert.Equal(t, TabHeader, res.FirstInvalidTab())
		})
	}
}

func TestValidate_ImageLogoOneURLSuffices(t *testing.T) {
	doc := validDocument()
	doc.Header.LogoType = model.LogoTypeImage
	doc.Header.LogoImageURLLight = ""
	doc.Header.LogoImageURLDark = "https://example.com/logo-dark.png"

	res := Validate(doc)

	assert.NotContains(t, res.Header, "logoImageUrlLight")
}

func TestValidate_AboutRules(t *testing.T) {
	doc := validDocument()
	doc.About.Headline = ""
	doc.About.ImageURL = " "

	res := Validate(doc)

	assert.False(t, res.IsValid)
	assert.Contains(t, res.About, "headline")
	assert.Contains(t, res.About, "imageUrl")
	assert.Equal(t, TabAbout, res.FirstInvalidTab())
}

func TestValidate_PortfolioRules(t *testing.T) {
	doc := validDocument()
	doc.Portfolio = []model.PortfolioItem{
		{Title: "", Category: "", ImageURL: ""},
		{Title: "Ok", Category: "Web", ImageURL: "not-a-url"},
		{Title: "Ok", Category: "Web", ImageURL: "ftp://example.com/a.jpg"},
		{Title: "Ok", Category: "Web", ImageURL: "https://example.com/a.jpg"},
	}

	res := Validate(doc)

	require.Len(t, res.Portfolio, 4)
	assert.False(t, res.IsValid)

	// Missing everything: required errors, not format errors.
	assert.Equal(t, msgHeadlineRequired, res.Portfolio[0]["title"])
	assert.Equal(t, msgCategoryRequired, res.Portfolio[0]["category"])
	assert.Equal(t, msgImageURLRequired, res.Portfolio[0]["imageurl"])

	// Present but malformed: the format error, distinct from required.
	assert.Equal(t, msgInvalidURL, res.Portfolio[1]["imageurl"])
	assert.Equal(t, msgInvalidURL, res.Portfolio[2]["imageurl"])

	assert.Empty(t, res.Portfolio[3])
	assert.Equal(t, TabPortfolio, res.FirstInvalidTab())
}

func TestValidate_NoShortCircuit(t *testing.T) {
	doc := validDocument()
	doc.Header.ContactButton = ""
	doc.About.Headline = ""
	doc.Portfolio[0].Title = ""

	res := Validate(doc)

	// Every error is reported in one pass.
	assert.Contains(t, res.Header, "contactButton")
	assert.Contains(t, res.About, "headline")
	assert.Contains(t, res.Portfolio[0], "title")
	// Priority order: header wins.
	assert.Equal(t, TabHeader, res.FirstInvalidTab())
}

func TestValidateRequired(t *testing.T) {
	msg, ok := ValidateRequired("  ")
	assert.False(t, ok)
	assert.Equal(t, msgRequired, msg)

	_, ok = ValidateRequired("value")
	assert.True(t, ok)
}
