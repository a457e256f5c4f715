package content

import (
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	"github.com/google/uuid"

	"agencycms/internal/model"
)

var (
	// ErrNotConfirmed is returned when an irreversible action (discard,
	// portfolio item removal) is attempted without explicit acknowledgement.
	ErrNotConfirmed = errors.New("action requires confirmation")
	// ErrSaveInProgress guards against double submission.
	ErrSaveInProgress = errors.New("a save is already in progress")
	// ErrIndexOutOfRange is returned for portfolio/tech indexes outside the
	// current draft.
	ErrIndexOutOfRange = errors.New("index out of range")
	// ErrUnknownField is returned when an edit targets a field the section
	// does not have.
	ErrUnknownField = errors.New("unknown field")
	// ErrUnknownSection is returned when an edit targets an unknown section.
	ErrUnknownSection = errors.New("unknown section")
)

// Draft holds the two copies of the content document: the original (last
// known persisted state) and the working draft mutated by every edit. The two
// never alias; every mutation goes through a deep copy.
type Draft struct {
	mu sync.Mutex

	original *model.ContentDocument
	draft    *model.ContentDocument

	// pendingDeletions queues ids of persisted portfolio items removed
	// locally but not yet deleted remotely. Cleared only by a fully
	// successful save or an explicit discard.
	pendingDeletions []string

	headerErrors    ErrorMap
	aboutErrors     ErrorMap
	portfolioErrors []ErrorMap

	saving bool
}

// NewDraft starts a fresh editing session over the given document.
func NewDraft(doc *model.ContentDocument) *Draft {
	return &Draft{
		original:        cloneDocument(doc),
		draft:           cloneDocument(doc),
		headerErrors:    ErrorMap{},
		aboutErrors:     ErrorMap{},
		portfolioErrors: emptyPortfolioErrors(len(doc.Portfolio)),
	}
}

func emptyPortfolioErrors(n int) []ErrorMap {
	errs := make([]ErrorMap, n)
	for i := range errs {
		errs[i] = ErrorMap{}
	}
	return errs
}

// cloneDocument deep-copies through JSON so the committed document and the
// working copy can never share slices or nested values.
func cloneDocument(doc *model.ContentDocument) *model.ContentDocument {
	b, err := json.Marshal(doc)
	if err != nil {
		// The content model is plain JSON-serializable data; this cannot
		// fail for well-formed documents.
		panic(fmt.Sprintf("content: clone document: %v", err))
	}
	var out model.ContentDocument
	if err := json.Unmarshal(b, &out); err != nil {
		panic(fmt.Sprintf("content: clone document: %v", err))
	}
	return &out
}

// Document returns a copy of the current draft.
func (d *Draft) Document() *model.ContentDocument {
	d.mu.Lock()
	defer d.mu.Unlock()
	return cloneDocument(d.draft)
}

// Original returns a copy of the last known persisted document.
func (d *Draft) Original() *model.ContentDocument {
	d.mu.Lock()
	defer d.mu.Unlock()
	return cloneDocument(d.original)
}

// SetDraft applies a transformation to a copy of the current draft and swaps
// it in, keeping the original untouched.
func (d *Draft) SetDraft(mutate func(doc *model.ContentDocument)) {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := cloneDocument(d.draft)
	mutate(next)
	d.draft = next
}

// HasChanges reports whether the serialized draft differs from the serialized
// original. Serialized comparison covers reordering and added or removed
// elements, not only field edits.
func (d *Draft) HasChanges() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return !jsonEqual(d.draft, d.original)
}

// PendingDeletions returns the queued portfolio item ids.
func (d *Draft) PendingDeletions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, len(d.pendingDeletions))
	copy(out, d.pendingDeletions)
	return out
}

// FieldErrors returns the current per-tab error maps.
func (d *Draft) FieldErrors() (header, about ErrorMap, portfolio []ErrorMap) {
	d.mu.Lock()
	defer d.mu.Unlock()
	return cloneErrorMap(d.headerErrors), cloneErrorMap(d.aboutErrors), cloneErrorMaps(d.portfolioErrors)
}

// SetValidationErrors replaces the error maps with the outcome of a full
// validation run.
func (d *Draft) SetValidationErrors(res ValidationResult) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.headerErrors = cloneErrorMap(res.Header)
	d.aboutErrors = cloneErrorMap(res.About)
	d.portfolioErrors = cloneErrorMaps(res.Portfolio)
}

// Discard resets the draft back to the original. It requires an explicit
// confirmation because edits are lost irreversibly. Field errors and the
// pending-deletion queue are cleared as well.
func (d *Draft) Discard(confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	d.draft = cloneDocument(d.original)
	d.pendingDeletions = nil
	d.headerErrors = ErrorMap{}
	d.aboutErrors = ErrorMap{}
	d.portfolioErrors = emptyPortfolioErrors(len(d.draft.Portfolio))
	return nil
}

// Commit installs the freshly refetched document as both draft and original.
// Called only after a fully successful save: the refetched document is the
// new source of truth and may differ from the pre-save draft (server-assigned
// ids, timestamps).
func (d *Draft) Commit(fresh *model.ContentDocument) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.original = cloneDocument(fresh)
	d.draft = cloneDocument(fresh)
	d.pendingDeletions = nil
	d.headerErrors = ErrorMap{}
	d.aboutErrors = ErrorMap{}
	d.portfolioErrors = emptyPortfolioErrors(len(d.draft.Portfolio))
	d.saving = false
}

// BeginSave marks the draft as saving, rejecting a second concurrent save.
func (d *Draft) BeginSave() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.saving {
		return ErrSaveInProgress
	}
	d.saving = true
	return nil
}

// EndSave clears the in-flight flag after a failed save. A successful save
// clears it through Commit.
func (d *Draft) EndSave() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.saving = false
}

// Saving reports whether a save is in flight.
func (d *Draft) Saving() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.saving
}

// IsUUID reports whether id is a well-formed UUID, i.e. whether the portfolio
// item it belongs to has been persisted before.
func IsUUID(id string) bool {
	if id == "" {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func cloneErrorMap(m ErrorMap) ErrorMap {
	out := ErrorMap{}
	for k, v := range m {
		out[k] = v
	}
	return out
}

func cloneErrorMaps(ms []ErrorMap) []ErrorMap {
	out := make([]ErrorMap, len(ms))
	for i, m := range ms {
		out[i] = cloneErrorMap(m)
	}
	return out
}
