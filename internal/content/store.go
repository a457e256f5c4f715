package content

import (
	"sync"

	"agencycms/internal/model"
)

// DraftStore keeps one editing session per admin session token. Drafts are
// purely in-memory; signing out or restarting the process discards them,
// matching the lifecycle of the admin panel itself.
type DraftStore struct {
	mu     sync.Mutex
	drafts map[string]*Draft
}

// NewDraftStore creates an empty store.
func NewDraftStore() *DraftStore {
	return &DraftStore{drafts: make(map[string]*Draft)}
}

// Get returns the draft for a session, if one exists.
func (s *DraftStore) Get(sessionID string) (*Draft, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	d, ok := s.drafts[sessionID]
	return d, ok
}

// Open returns the existing draft for a session or starts a new one over the
// given document.
func (s *DraftStore) Open(sessionID string, doc *model.ContentDocument) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.drafts[sessionID]; ok {
		return d
	}
	d := NewDraft(doc)
	s.drafts[sessionID] = d
	return d
}

// Reset replaces the session's draft with a fresh one over doc.
func (s *DraftStore) Reset(sessionID string, doc *model.ContentDocument) *Draft {
	s.mu.Lock()
	defer s.mu.Unlock()
	d := NewDraft(doc)
	s.drafts[sessionID] = d
	return d
}

// Close drops the session's draft, e.g. on sign-out.
func (s *DraftStore) Close(sessionID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.drafts, sessionID)
}
