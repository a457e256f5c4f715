package content

import (
	"encoding/json"
	"fmt"

	"agencycms/internal/model"
)

// Merge builds the unified content document from stored section blobs and
// portfolio rows. Merging is shallow per top-level key: a section present in
// storage wholly replaces the compiled-in default for that id; a missing or
// malformed section falls back to the default. The returned warnings describe
// every fallback taken, so a bad stored payload degrades loudly instead of
// propagating eroded fields into rendering.
func Merge(sections map[string]json.RawMessage, portfolio []model.PortfolioItem) (*model.ContentDocument, []string) {
	doc := model.DefaultContent()
	var warnings []string

	warn := func(id string, err error) {
		if err != nil {
			warnings = append(warnings, fmt.Sprintf("section %q: malformed payload, using default: %v", id, err))
		}
	}

	warn(model.SectionHeader, decodeSection(sections[model.SectionHeader], &doc.Header))
	warn(model.SectionHero, decodeSection(sections[model.SectionHero], &doc.Hero))
	warn(model.SectionAbout, decodeSection(sections[model.SectionAbout], &doc.About))
	warn(model.SectionProcess, decodeSection(sections[model.SectionProcess], &doc.Process))
	warn(model.SectionTechCarousel, decodeSection(sections[model.SectionTechCarousel], &doc.TechCarousel))
	warn(model.SectionSiteMeta, decodeSection(sections[model.SectionSiteMeta], &doc.SiteMeta))
	warn(model.SectionThemeSettings, decodeSection(sections[model.SectionThemeSettings], &doc.ThemeSettings))

	// An intentionally empty portfolio never renders: fall back to the
	// default so a first load always shows something.
	if len(portfolio) > 0 {
		doc.Portfolio = portfolio
	}

	return doc, warnings
}

// decodeSection unmarshals into a zero value first and assigns only on
// success, so a payload that fails mid-decode cannot leave a half-overwritten
// default behind. A missing or empty payload is not an error.
func decodeSection[T any](raw json.RawMessage, dst *T) error {
	if len(raw) == 0 {
		return nil
	}
	var tmp T
	if err := json.Unmarshal(raw, &tmp); err != nil {
		return err
	}
	*dst = tmp
	return nil
}

// ParseTechnologies decodes the technologies column of a portfolio row. Some
// legacy rows store the JSON array doubly encoded as a string; both shapes
// are accepted. A parse failure degrades to an empty list so one bad row
// never aborts the whole load.
func ParseTechnologies(raw []byte) ([]model.Technology, error) {
	if len(raw) == 0 {
		return nil, nil
	}

	var techs []model.Technology
	if err := json.Unmarshal(raw, &techs); err == nil {
		return techs, nil
	}

	var nested string
	if err := json.Unmarshal(raw, &nested); err == nil {
		if err := json.Unmarshal([]byte(nested), &techs); err == nil {
			return techs, nil
		}
	}

	return nil, fmt.Errorf("technologies column is neither a JSON array nor an encoded string")
}
