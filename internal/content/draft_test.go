package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"agencycms/internal/model"
)

const persistedID = "a2a4dbb0-5c3e-4c95-9e4c-1f6f3a9df001"

func draftFixture() *Draft {
	doc := model.DefaultContent()
	doc.Portfolio = []model.PortfolioItem{
		{ID: persistedID, Title: "Projeto A", Category: "Web", ImageURL: "https://example.com/a.jpg"},
	}
	return NewDraft(doc)
}

func TestDraft_HasChangesStartsFalse(t *testing.T) {
	d := draftFixture()
	assert.False(t, d.HasChanges())
}

func TestDraft_SetDraftDoesNotAliasOriginal(t *testing.T) {
	d := draftFixture()

	d.SetDraft(func(doc *model.ContentDocument) {
		doc.About.Headline = "X"
	})

	assert.True(t, d.HasChanges())
	assert.Equal(t, "X", d.Document().About.Headline)
	assert.NotEqual(t, "X", d.Original().About.Headline)
}

func TestDraft_HasChangesDetectsReorder(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpAddItem}))
	require.NoError(t, d.Apply(Op{Type: OpSetItemField, Index: 1, Field: "title", Value: "Projeto B"}))

	fresh := d.Document()
	d.Commit(fresh)
	assert.False(t, d.HasChanges())

	require.NoError(t, d.Apply(Op{Type: OpMoveItemDown, Index: 0}))
	assert.True(t, d.HasChanges(), "a pure reorder must register as a change")
}

func TestDraft_DiscardRequiresConfirmation(t *testing.T) {
	d := draftFixture()
	d.SetDraft(func(doc *model.ContentDocument) { doc.About.Headline = "X" })

	err := d.Discard(false)
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.True(t, d.HasChanges())
}

func TestDraft_DiscardResetsEverything(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpSetField, Section: "about", Field: "headline", Value: "X"}))
	require.NoError(t, d.Apply(Op{Type: OpRemoveItem, Index: 0, Confirmed: true}))
	d.SetValidationErrors(ValidationResult{Header: ErrorMap{"contactButton": "err"}})
	require.NotEmpty(t, d.PendingDeletions())

	require.NoError(t, d.Discard(true))

	assert.False(t, d.HasChanges())
	assert.Equal(t, d.Original(), d.Document())
	assert.Empty(t, d.PendingDeletions())
	header, about, portfolio := d.FieldErrors()
	assert.Empty(t, header)
	assert.Empty(t, about)
	require.Len(t, portfolio, 1)
	assert.Empty(t, portfolio[0])
}

func TestDraft_RemovePersistedItemQueuesDeletion(t *testing.T) {
	d := draftFixture()

	err := d.Apply(Op{Type: OpRemoveItem, Index: 0})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	assert.Empty(t, d.PendingDeletions())

	require.NoError(t, d.Apply(Op{Type: OpRemoveItem, Index: 0, Confirmed: true}))
	assert.Equal(t, []string{persistedID}, d.PendingDeletions())
	assert.Empty(t, d.Document().Portfolio)
}

func TestDraft_RemoveUnpersistedItemSkipsQueue(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpAddItem}))

	require.NoError(t, d.Apply(Op{Type: OpRemoveItem, Index: 1, Confirmed: true}))

	assert.Empty(t, d.PendingDeletions())
}

func TestDraft_CommitInstallsFreshDocument(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpAddItem}))

	// The refetched document carries a server-assigned id the draft lacked.
	fresh := d.Document()
	fresh.Portfolio[1].ID = "0b9dc6a1-9f6b-4f06-9a3e-37f2b2f4c002"
	d.Commit(fresh)

	assert.False(t, d.HasChanges())
	assert.Equal(t, fresh.Portfolio[1].ID, d.Document().Portfolio[1].ID)
	assert.Equal(t, fresh.Portfolio[1].ID, d.Original().Portfolio[1].ID)
}

func TestDraft_MoveBoundsAreNoOps(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpMoveItemUp, Index: 0}))
	require.NoError(t, d.Apply(Op{Type: OpMoveItemDown, Index: 0}))
	assert.False(t, d.HasChanges())
}

func TestDraft_MoveSwapsItems(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpAddItem}))
	require.NoError(t, d.Apply(Op{Type: OpSetItemField, Index: 1, Field: "title", Value: "Projeto B"}))

	require.NoError(t, d.Apply(Op{Type: OpMoveItemUp, Index: 1}))

	doc := d.Document()
	assert.Equal(t, "Projeto B", doc.Portfolio[0].Title)
	assert.Equal(t, "Projeto A", doc.Portfolio[1].Title)
}

func TestDraft_EditClearsFieldError(t *testing.T) {
	d := draftFixture()
	d.SetValidationErrors(ValidationResult{
		Header:    ErrorMap{"contactButton": "err"},
		About:     ErrorMap{},
		Portfolio: []ErrorMap{{"title": "err"}},
	})

	require.NoError(t, d.Apply(Op{Type: OpSetField, Section: "header", Field: "contactButton", Value: "Contato"}))
	require.NoError(t, d.Apply(Op{Type: OpSetItemField, Index: 0, Field: "title", Value: "Novo"}))

	header, _, portfolio := d.FieldErrors()
	assert.NotContains(t, header, "contactButton")
	assert.NotContains(t, portfolio[0], "title")
}

func TestDraft_BlurSetsRequiredError(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpSetField, Section: "about", Field: "headline", Value: ""}))

	require.NoError(t, d.Apply(Op{Type: OpBlurField, Section: "about", Field: "headline"}))

	_, about, _ := d.FieldErrors()
	assert.Contains(t, about, "headline")
}

func TestDraft_TechOps(t *testing.T) {
	d := draftFixture()

	require.NoError(t, d.Apply(Op{Type: OpAddTech, Index: 0}))
	require.NoError(t, d.Apply(Op{Type: OpSetTechField, Index: 0, TechIndex: 0, Field: "name", Value: "Go"}))
	require.NoError(t, d.Apply(Op{Type: OpSetTechField, Index: 0, TechIndex: 0, Field: "icon", Value: "<svg/>"}))

	doc := d.Document()
	require.Len(t, doc.Portfolio[0].Technologies, 1)
	assert.Equal(t, model.Technology{Name: "Go", Icon: "<svg/>"}, doc.Portfolio[0].Technologies[0])

	err := d.Apply(Op{Type: OpRemoveTech, Index: 0, TechIndex: 0})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	require.NoError(t, d.Apply(Op{Type: OpRemoveTech, Index: 0, TechIndex: 0, Confirmed: true}))
	assert.Empty(t, d.Document().Portfolio[0].Technologies)
}

func TestDraft_ProcessOps(t *testing.T) {
	d := draftFixture()

	require.NoError(t, d.Apply(Op{Type: OpSetField, Section: model.SectionProcess, Field: "headline", Value: "Como trabalhamos"}))
	require.NoError(t, d.Apply(Op{Type: OpSetStepField, Index: 0, Field: "title", Value: "Descoberta"}))
	require.NoError(t, d.Apply(Op{Type: OpAddStepEntry, Index: 0, Field: "tools"}))

	doc := d.Document()
	assert.Equal(t, "Como trabalhamos", doc.Process.Headline)
	assert.Equal(t, "Descoberta", doc.Process.Steps[0].Title)
	entry := len(doc.Process.Steps[0].Tools) - 1
	require.NoError(t, d.Apply(Op{Type: OpSetStepEntry, Index: 0, Field: "tools", TechIndex: entry, Value: "Figma"}))
	assert.Equal(t, "Figma", d.Document().Process.Steps[0].Tools[entry])

	require.NoError(t, d.Apply(Op{Type: OpRemoveStepEntry, Index: 0, Field: "tools", TechIndex: entry}))
	assert.Len(t, d.Document().Process.Steps[0].Tools, entry)

	err := d.Apply(Op{Type: OpSetStepField, Index: 99, Field: "title", Value: "x"})
	assert.ErrorIs(t, err, ErrIndexOutOfRange)
	err = d.Apply(Op{Type: OpAddStepEntry, Index: 0, Field: "steps"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDraft_CarouselOps(t *testing.T) {
	d := draftFixture()
	before := len(d.Document().TechCarousel.Technologies)

	require.NoError(t, d.Apply(Op{Type: OpAddCarouselTech}))
	idx := before
	require.NoError(t, d.Apply(Op{Type: OpSetCarouselTech, Index: idx, Field: "name", Value: "Go"}))
	assert.Equal(t, "Go", d.Document().TechCarousel.Technologies[idx].Name)

	err := d.Apply(Op{Type: OpRemoveCarouselTech, Index: idx})
	assert.ErrorIs(t, err, ErrNotConfirmed)
	require.NoError(t, d.Apply(Op{Type: OpRemoveCarouselTech, Index: idx, Confirmed: true}))
	assert.Len(t, d.Document().TechCarousel.Technologies, before)
}

func TestDraft_ThemeColor(t *testing.T) {
	d := draftFixture()
	require.NoError(t, d.Apply(Op{Type: OpSetThemeColor, Field: "accent", Value: "#ff0000"}))
	assert.Equal(t, "#ff0000", d.Document().ThemeSettings.Accent)

	err := d.Apply(Op{Type: OpSetThemeColor, Field: "nope", Value: "#ff0000"})
	assert.ErrorIs(t, err, ErrUnknownField)
}

func TestDraft_UnknownOps(t *testing.T) {
	d := draftFixture()
	assert.Error(t, d.Apply(Op{Type: "bogus"}))
	assert.ErrorIs(t, d.Apply(Op{Type: OpSetField, Section: "nope", Field: "x"}), ErrUnknownSection)
	assert.ErrorIs(t, d.Apply(Op{Type: OpSetItemField, Index: 9, Field: "title"}), ErrIndexOutOfRange)
}

func TestDraft_SaveGuard(t *testing.T) {
	d := draftFixture()

	require.NoError(t, d.BeginSave())
	assert.ErrorIs(t, d.BeginSave(), ErrSaveInProgress)

	d.EndSave()
	require.NoError(t, d.BeginSave())
	d.Commit(d.Document())
	assert.False(t, d.Saving())
}

func TestIsUUID(t *testing.T) {
	assert.True(t, IsUUID(persistedID))
	assert.False(t, IsUUID(""))
	assert.False(t, IsUUID("1"))
	assert.False(t, IsUUID("not-a-uuid"))
}

func TestDraftStore(t *testing.T) {
	store := NewDraftStore()
	doc := model.DefaultContent()

	d1 := store.Open("sess", doc)
	d2 := store.Open("sess", doc)
	assert.Same(t, d1, d2)

	d3 := store.Reset("sess", doc)
	assert.NotSame(t, d1, d3)

	store.Close("sess")
	_, ok := store.Get("sess")
	assert.False(t, ok)
}
