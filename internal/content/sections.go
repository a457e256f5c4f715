package content

import (
	"agencycms/internal/model"
)

// SectionPayload returns the payload of one named section of the document.
// Portfolio is not a section; it lives in its own ordered table.
func SectionPayload(doc *model.ContentDocument, id string) (any, bool) {
	switch id {
	case model.SectionHeader:
		return doc.Header, true
	case model.SectionHero:
		return doc.Hero, true
	case model.SectionAbout:
		return doc.About, true
	case model.SectionProcess:
		return doc.Process, true
	case model.SectionTechCarousel:
		return doc.TechCarousel, true
	case model.SectionSiteMeta:
		return doc.SiteMeta, true
	case model.SectionThemeSettings:
		return doc.ThemeSettings, true
	default:
		return nil, false
	}
}

// ChangedSections returns the ids of sections whose serialized payload
// differs between the two documents, in the stable section order. Untouched
// sections are skipped at save time so no redundant upserts are issued.
func ChangedSections(original, draft *model.ContentDocument) []string {
	var changed []string
	for _, id := range model.SectionIDs {
		oldPayload, _ := SectionPayload(original, id)
		newPayload, _ := SectionPayload(draft, id)
		if !jsonEqual(oldPayload, newPayload) {
			changed = append(changed, id)
		}
	}
	return changed
}
