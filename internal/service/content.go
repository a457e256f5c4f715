package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/jackc/pgx/v5/pgconn"

	"agencycms/internal/content"
	"agencycms/internal/model"
	"agencycms/internal/repository"
)

// Save step names, recorded in order as each step completes. A failed save
// reports the step it stopped on.
const (
	StepValidate        = "validate"
	StepDeletePortfolio = "delete_portfolio"
	StepUpsertSections  = "upsert_sections"
	StepUpsertPortfolio = "upsert_portfolio"
	StepAuditLog        = "audit_log"
	StepRefetch         = "refetch"
)

// permissionRemediation is surfaced instead of the raw error when the
// database rejects a write for lack of privileges.
const permissionRemediation = "Permissão negada pelo banco de dados. Verifique as políticas de acesso (GRANT/RLS) do usuário da aplicação."

// SaveError describes a failed save: the step it stopped on and the best
// available detail from the underlying driver.
type SaveError struct {
	Step             string
	Message          string
	Detail           string
	Hint             string
	Code             string
	PermissionDenied bool
	Err              error
}

func (e *SaveError) Error() string {
	return fmt.Sprintf("save failed at step %s: %s", e.Step, e.Message)
}

func (e *SaveError) Unwrap() error {
	return e.Err
}

// SaveResult reports the outcome of a save attempt. When Validation is
// non-nil and invalid, no remote call was made. Steps lists every step that
// completed, in order.
type SaveResult struct {
	Validation *content.ValidationResult
	Steps      []string
	Document   *model.ContentDocument
}

// ContentService defines the use cases around the aggregated content
// document: loading it for the public site and saving an admin draft.
type ContentService interface {
	// Load aggregates stored sections and portfolio into one document.
	// It fails open: any read problem yields the compiled-in defaults and
	// a nil error.
	Load(ctx context.Context) (*model.ContentDocument, error)

	// Save runs the ordered save sequence for the draft. A validation
	// failure aborts before any remote call; a step failure aborts the
	// remaining steps without rolling back issued writes and without
	// clearing the draft's pending deletions.
	Save(ctx context.Context, draft *content.Draft, userEmail string) (*SaveResult, error)

	// RecentActivity returns the newest audit entries plus the count of
	// changes over the last 30 days.
	RecentActivity(ctx context.Context, limit int) ([]model.AuditLogEntry, int, error)
}

type contentService struct {
	sections  repository.SectionRepository
	portfolio repository.PortfolioRepository
	audit     repository.AuditRepository
	now       nowFunc
}

// NewContentService constructs a new ContentService.
func NewContentService(sections repository.SectionRepository, portfolio repository.PortfolioRepository, audit repository.AuditRepository) ContentService {
	return &contentService{
		sections:  sections,
		portfolio: portfolio,
		audit:     audit,
		now:       utcNow,
	}
}

// Load merges stored rows over the compiled-in defaults. Storage being
// unreachable or rows being malformed degrades to defaults with a warning,
// never a failed load.
func (s *contentService) Load(ctx context.Context) (*model.ContentDocument, error) {
	records, err := s.sections.ListAll(ctx)
	if err != nil {
		log.Printf("content load: sections unavailable, serving defaults: %v", err)
		return model.DefaultContent(), nil
	}

	items, err := s.portfolio.ListOrdered(ctx)
	if err != nil {
		log.Printf("content load: portfolio unavailable, serving defaults: %v", err)
		return model.DefaultContent(), nil
	}

	stored := make(map[string]json.RawMessage, len(records))
	for _, rec := range records {
		stored[rec.ID] = rec.Content
	}

	doc, warnings := content.Merge(stored, items)
	for _, w := range warnings {
		log.Printf("content load: %s", w)
	}
	return doc, nil
}

// Save executes the ordered steps: validate, delete queued portfolio items,
// upsert changed sections, upsert the portfolio, append audit entries, then
// refetch and commit. Aborting mid-sequence leaves earlier writes in place.
func (s *contentService) Save(ctx context.Context, draft *content.Draft, userEmail string) (*SaveResult, error) {
	if err := draft.BeginSave(); err != nil {
		return nil, err
	}
	defer draft.EndSave()

	result := &SaveResult{Steps: make([]string, 0, 6)}

	// One snapshot for both validation and the write sequence, so an op
	// applied mid-save cannot persist a document that was never validated.
	draftDoc := draft.Document()

	res := content.Validate(draftDoc)
	if !res.IsValid {
		draft.SetValidationErrors(res)
		result.Validation = &res
		return result, nil
	}
	result.Steps = append(result.Steps, StepValidate)

	original := draft.Original()
	deletions := draft.PendingDeletions()

	if !draft.HasChanges() && len(deletions) == 0 {
		result.Document = original
		return result, nil
	}

	if len(deletions) > 0 {
		if err := s.portfolio.DeleteByIDs(ctx, deletions); err != nil {
			return result, classifySaveError(StepDeletePortfolio, err)
		}
		result.Steps = append(result.Steps, StepDeletePortfolio)
	}

	for _, id := range content.ChangedSections(original, draftDoc) {
		payload, ok := content.SectionPayload(draftDoc, id)
		if !ok {
			continue
		}
		raw, err := json.Marshal(payload)
		if err != nil {
			return result, classifySaveError(StepUpsertSections, fmt.Errorf("marshal section %s: %w", id, err))
		}
		if err := s.sections.Upsert(ctx, id, raw); err != nil {
			return result, classifySaveError(StepUpsertSections, err)
		}
	}
	result.Steps = append(result.Steps, StepUpsertSections)

	items := prepareForUpsert(draftDoc.Portfolio)
	if err := s.portfolio.UpsertAll(ctx, items); err != nil {
		return result, classifySaveError(StepUpsertPortfolio, err)
	}
	result.Steps = append(result.Steps, StepUpsertPortfolio)

	deleted := deletedItems(original.Portfolio, deletions)
	entries := content.BuildAuditEntries(original, draftDoc, deleted, userEmail, s.now())
	if err := s.audit.InsertAll(ctx, entries); err != nil {
		return result, classifySaveError(StepAuditLog, err)
	}
	result.Steps = append(result.Steps, StepAuditLog)

	fresh, err := s.Load(ctx)
	if err != nil {
		return result, classifySaveError(StepRefetch, err)
	}
	draft.Commit(fresh)
	result.Steps = append(result.Steps, StepRefetch)
	result.Document = fresh

	return result, nil
}

// RecentActivity returns the newest audit entries and the 30-day change count.
func (s *contentService) RecentActivity(ctx context.Context, limit int) ([]model.AuditLogEntry, int, error) {
	entries, err := s.audit.ListRecent(ctx, limit)
	if err != nil {
		return nil, 0, err
	}
	count, err := s.audit.CountSince(ctx, s.now().Add(-30*24*time.Hour))
	if err != nil {
		return nil, 0, err
	}
	return entries, count, nil
}

// prepareForUpsert recomputes position from array order, strips the
// server-owned creation timestamp, and blanks ids that are not valid UUIDs
// so the store treats those items as inserts.
func prepareForUpsert(items []model.PortfolioItem) []model.PortfolioItem {
	out := make([]model.PortfolioItem, len(items))
	for i, item := range items {
		item.Position = i
		item.CreatedAt = nil
		if !content.IsUUID(item.ID) {
			item.ID = ""
		}
		out[i] = item
	}
	return out
}

// deletedItems resolves queued deletion ids to their full prior state.
func deletedItems(original []model.PortfolioItem, ids []string) []model.PortfolioItem {
	if len(ids) == 0 {
		return nil
	}
	wanted := make(map[string]struct{}, len(ids))
	for _, id := range ids {
		wanted[id] = struct{}{}
	}
	deleted := make([]model.PortfolioItem, 0, len(ids))
	for _, item := range original {
		if _, ok := wanted[item.ID]; ok {
			deleted = append(deleted, item)
		}
	}
	return deleted
}

// classifySaveError wraps a step failure, pulling detail/hint/code out of
// postgres errors and recognizing permission problems.
func classifySaveError(step string, err error) *SaveError {
	saveErr := &SaveError{
		Step:    step,
		Message: err.Error(),
		Err:     err,
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		saveErr.Detail = pgErr.Detail
		saveErr.Hint = pgErr.Hint
		saveErr.Code = pgErr.Code
		// 42501 is insufficient_privilege.
		if pgErr.Code == "42501" {
			saveErr.PermissionDenied = true
		}
	}
	if strings.Contains(strings.ToLower(err.Error()), "permission denied") ||
		strings.Contains(strings.ToLower(err.Error()), "row-level security") {
		saveErr.PermissionDenied = true
	}
	if saveErr.PermissionDenied {
		saveErr.Message = permissionRemediation
	}
	return saveErr
}
