package content

import (
	"encoding/json"
	"fmt"
	"time"

	"agencycms/internal/model"
)

// BuildAuditEntries derives the audit-log rows for one save: one update entry
// per changed section leaf path, a deletion entry per removed portfolio item
// (full prior state), a creation entry per new item (full new state), and an
// update entry per changed leaf of a surviving item, including a synthetic
// position change when the list was reordered.
func BuildAuditEntries(original, draft *model.ContentDocument, deleted []model.PortfolioItem, userEmail string, now time.Time) []model.AuditLogEntry {
	var entries []model.AuditLogEntry

	add := func(action, description string, oldV, newV any) {
		entries = append(entries, model.AuditLogEntry{
			CreatedAt:   now,
			UserEmail:   userEmail,
			Action:      action,
			Description: description,
			OldValue:    marshalValue(oldV),
			NewValue:    marshalValue(newV),
		})
	}

	// Section-level changes, portfolio excluded.
	for _, c := range Diff(sectionsOnly(original), sectionsOnly(draft)) {
		add(model.AuditActionUpdate,
			fmt.Sprintf("Campo '%s' alterado de %s para %s", c.Path, describeValue(c.OldValue), describeValue(c.NewValue)),
			c.OldValue, c.NewValue)
	}

	for _, item := range deleted {
		add(model.AuditActionDelete,
			fmt.Sprintf("Item do portfólio %q removido", item.Title),
			item, nil)
	}

	originalByID := make(map[string]indexedItem, len(original.Portfolio))
	for i, item := range original.Portfolio {
		if IsUUID(item.ID) {
			originalByID[item.ID] = indexedItem{item: item, index: i}
		}
	}

	for i, item := range draft.Portfolio {
		if !IsUUID(item.ID) {
			add(model.AuditActionCreate,
				fmt.Sprintf("Item do portfólio %q adicionado", item.Title),
				nil, item)
			continue
		}
		prev, ok := originalByID[item.ID]
		if !ok {
			continue
		}
		oldItem := itemForDiff(prev.item, prev.index)
		newItem := itemForDiff(item, i)
		for _, c := range Diff(oldItem, newItem) {
			add(model.AuditActionUpdate,
				fmt.Sprintf("Campo 'portfolio.%s.%s' do item %q alterado", item.ID, c.Path, item.Title),
				c.OldValue, c.NewValue)
		}
	}

	return entries
}

// BuildProfileAuditEntries derives audit rows for a profile save, one per
// changed leaf path.
func BuildProfileAuditEntries(original, updated *model.Profile, userEmail string, now time.Time) []model.AuditLogEntry {
	var entries []model.AuditLogEntry
	for _, c := range Diff(original, updated) {
		entries = append(entries, model.AuditLogEntry{
			CreatedAt:   now,
			UserEmail:   userEmail,
			Action:      model.AuditActionUpdate,
			Description: fmt.Sprintf("Campo 'profile.%s' alterado de %s para %s", c.Path, describeValue(c.OldValue), describeValue(c.NewValue)),
			OldValue:    marshalValue(c.OldValue),
			NewValue:    marshalValue(c.NewValue),
		})
	}
	return entries
}

type indexedItem struct {
	item  model.PortfolioItem
	index int
}

// itemForDiff pins position to the item's array index and drops the
// server-assigned timestamp, so reorders show up as position changes and
// refetch noise does not.
func itemForDiff(item model.PortfolioItem, index int) model.PortfolioItem {
	item.Position = index
	item.CreatedAt = nil
	return item
}

// sectionsOnly projects the document onto its named sections.
func sectionsOnly(doc *model.ContentDocument) map[string]any {
	out := make(map[string]any, len(model.SectionIDs))
	for _, id := range model.SectionIDs {
		payload, _ := SectionPayload(doc, id)
		out[id] = payload
	}
	return out
}

func marshalValue(v any) json.RawMessage {
	if v == nil {
		return nil
	}
	b, err := json.Marshal(v)
	if err != nil {
		return nil
	}
	return b
}

// describeValue renders a value for a human-readable description, truncated
// so giant payloads (SVG markup, long paragraphs) stay scannable.
func describeValue(v any) string {
	if v == nil {
		return "(vazio)"
	}
	b, err := json.Marshal(v)
	if err != nil {
		return "(?)"
	}
	s := string(b)
	const max = 80
	runes := []rune(s)
	if len(runes) > max {
		return string(runes[:max]) + "…"
	}
	return s
}
