package content

import (
	"fmt"

	"agencycms/internal/model"
)

// Op kinds accepted by Draft.Apply. They mirror the editing actions of the
// admin panel one to one.
const (
	OpSetField      = "set_field"
	OpAddItem       = "add_item"
	OpRemoveItem    = "remove_item"
	OpMoveItemUp    = "move_item_up"
	OpMoveItemDown  = "move_item_down"
	OpSetItemField  = "set_item_field"
	OpAddTech       = "add_tech"
	OpRemoveTech    = "remove_tech"
	OpSetTechField  = "set_tech_field"
	OpSetThemeColor = "set_theme_color"
	OpBlurField     = "blur_field"

	OpSetStepField       = "set_step_field"
	OpAddStepEntry       = "add_step_entry"
	OpRemoveStepEntry    = "remove_step_entry"
	OpSetStepEntry       = "set_step_entry"
	OpAddCarouselTech    = "add_carousel_tech"
	OpRemoveCarouselTech = "remove_carousel_tech"
	OpSetCarouselTech    = "set_carousel_tech"
)

// Op is one draft mutation. Which fields are meaningful depends on Type.
type Op struct {
	Type      string `json:"type"`
	Section   string `json:"section,omitempty"`
	Field     string `json:"field,omitempty"`
	Value     string `json:"value,omitempty"`
	Index     int    `json:"index,omitempty"`
	TechIndex int    `json:"tech_index,omitempty"`
	Confirmed bool   `json:"confirmed,omitempty"`
}

// Apply executes one mutation against the draft. Successful edits clear any
// stale field error on the edited field; blur runs the single-field required
// check instead.
func (d *Draft) Apply(op Op) error {
	switch op.Type {
	case OpSetField:
		return d.setSectionField(op.Section, op.Field, op.Value)
	case OpAddItem:
		d.addPortfolioItem()
		return nil
	case OpRemoveItem:
		return d.removePortfolioItem(op.Index, op.Confirmed)
	case OpMoveItemUp:
		return d.movePortfolioItem(op.Index, op.Index-1)
	case OpMoveItemDown:
		return d.movePortfolioItem(op.Index, op.Index+1)
	case OpSetItemField:
		return d.setPortfolioField(op.Index, op.Field, op.Value)
	case OpAddTech:
		return d.addTechnology(op.Index)
	case OpRemoveTech:
		return d.removeTechnology(op.Index, op.TechIndex, op.Confirmed)
	case OpSetTechField:
		return d.setTechnologyField(op.Index, op.TechIndex, op.Field, op.Value)
	case OpSetThemeColor:
		return d.setThemeColor(op.Field, op.Value)
	case OpSetStepField:
		return d.setProcessStepField(op.Index, op.Field, op.Value)
	case OpAddStepEntry:
		return d.addProcessStepEntry(op.Index, op.Field)
	case OpRemoveStepEntry:
		return d.removeProcessStepEntry(op.Index, op.Field, op.TechIndex)
	case OpSetStepEntry:
		return d.setProcessStepEntry(op.Index, op.Field, op.TechIndex, op.Value)
	case OpAddCarouselTech:
		return d.addCarouselTech()
	case OpRemoveCarouselTech:
		return d.removeCarouselTech(op.Index, op.Confirmed)
	case OpSetCarouselTech:
		return d.setCarouselTechField(op.Index, op.Field, op.Value)
	case OpBlurField:
		return d.blurField(op.Section, op.Field, op.Index)
	default:
		return fmt.Errorf("unknown draft op %q", op.Type)
	}
}

func (d *Draft) setSectionField(section, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	next := cloneDocument(d.draft)
	var err error
	switch section {
	case model.SectionHeader:
		err = setHeaderField(&next.Header, field, value)
		if err == nil {
			delete(d.headerErrors, field)
		}
	case model.SectionHero:
		err = setHeroField(&next.Hero, field, value)
	case model.SectionAbout:
		err = setAboutField(&next.About, field, value)
		if err == nil {
			delete(d.aboutErrors, field)
		}
	case model.SectionProcess:
		err = setProcessField(&next.Process, field, value)
	case model.SectionTechCarousel:
		err = setTechCarouselField(&next.TechCarousel, field, value)
	case model.SectionSiteMeta:
		err = setSiteMetaField(&next.SiteMeta, field, value)
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	if err != nil {
		return err
	}
	d.draft = next
	return nil
}

func (d *Draft) addPortfolioItem() {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := cloneDocument(d.draft)
	next.Portfolio = append(next.Portfolio, model.PortfolioItem{Technologies: []model.Technology{}})
	d.draft = next
	d.portfolioErrors = append(d.portfolioErrors, ErrorMap{})
}

// removePortfolioItem drops the item at index. Items that were persisted
// (valid UUID id) are queued for remote deletion at the next save.
func (d *Draft) removePortfolioItem(index int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}

	removed := d.draft.Portfolio[index]
	if IsUUID(removed.ID) {
		d.pendingDeletions = append(d.pendingDeletions, removed.ID)
	}

	next := cloneDocument(d.draft)
	next.Portfolio = append(next.Portfolio[:index], next.Portfolio[index+1:]...)
	d.draft = next
	d.portfolioErrors = append(d.portfolioErrors[:index], d.portfolioErrors[index+1:]...)
	return nil
}

func (d *Draft) movePortfolioItem(from, to int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if from < 0 || from >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}
	if to < 0 || to >= len(d.draft.Portfolio) {
		// Moving the first item up or the last one down is a no-op.
		return nil
	}
	next := cloneDocument(d.draft)
	next.Portfolio[from], next.Portfolio[to] = next.Portfolio[to], next.Portfolio[from]
	d.draft = next
	d.portfolioErrors[from], d.portfolioErrors[to] = d.portfolioErrors[to], d.portfolioErrors[from]
	return nil
}

func (d *Draft) setPortfolioField(index int, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	item := &next.Portfolio[index]
	switch field {
	case "imageurl":
		item.ImageURL = value
	case "title":
		item.Title = value
	case "category":
		item.Category = value
	case "desafio":
		item.Challenge = value
	case "solucao":
		item.Solution = value
	case "resultados":
		item.Results = value
	default:
		return fmt.Errorf("%w: portfolio.%s", ErrUnknownField, field)
	}
	d.draft = next
	delete(d.portfolioErrors[index], field)
	return nil
}

func (d *Draft) addTechnology(index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	item := &next.Portfolio[index]
	item.Technologies = append(item.Technologies, model.Technology{})
	d.draft = next
	return nil
}

func (d *Draft) removeTechnology(index, techIndex int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}
	techs := d.draft.Portfolio[index].Technologies
	if techIndex < 0 || techIndex >= len(techs) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	item := &next.Portfolio[index]
	item.Technologies = append(item.Technologies[:techIndex], item.Technologies[techIndex+1:]...)
	d.draft = next
	return nil
}

func (d *Draft) setTechnologyField(index, techIndex int, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Portfolio) {
		return ErrIndexOutOfRange
	}
	if techIndex < 0 || techIndex >= len(d.draft.Portfolio[index].Technologies) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	tech := &next.Portfolio[index].Technologies[techIndex]
	switch field {
	case "name":
		tech.Name = value
	case "icon":
		tech.Icon = value
	default:
		return fmt.Errorf("%w: technology.%s", ErrUnknownField, field)
	}
	d.draft = next
	return nil
}

func (d *Draft) setThemeColor(slot, hex string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := cloneDocument(d.draft)
	switch slot {
	case "primary":
		next.ThemeSettings.Primary = hex
	case "secondary":
		next.ThemeSettings.Secondary = hex
	case "accent":
		next.ThemeSettings.Accent = hex
	case "accentHover":
		next.ThemeSettings.AccentHover = hex
	case "light":
		next.ThemeSettings.Light = hex
	case "muted":
		next.ThemeSettings.Muted = hex
	default:
		return fmt.Errorf("%w: theme_settings.%s", ErrUnknownField, slot)
	}
	d.draft = next
	return nil
}

func (d *Draft) setProcessStepField(index int, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Process.Steps) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	step := &next.Process.Steps[index]
	switch field {
	case "title":
		step.Title = value
	case "description":
		step.Description = value
	case "icon":
		step.Icon = value
	default:
		return fmt.Errorf("%w: process.steps.%s", ErrUnknownField, field)
	}
	d.draft = next
	return nil
}

// stepEntryList resolves the named string list of a process step.
func stepEntryList(step *model.ProcessStep, field string) (*[]string, error) {
	switch field {
	case "deliverables":
		return &step.Deliverables, nil
	case "tools":
		return &step.Tools, nil
	default:
		return nil, fmt.Errorf("%w: process.steps.%s", ErrUnknownField, field)
	}
}

func (d *Draft) addProcessStepEntry(index int, field string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Process.Steps) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	list, err := stepEntryList(&next.Process.Steps[index], field)
	if err != nil {
		return err
	}
	*list = append(*list, "")
	d.draft = next
	return nil
}

func (d *Draft) removeProcessStepEntry(index int, field string, entry int) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Process.Steps) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	list, err := stepEntryList(&next.Process.Steps[index], field)
	if err != nil {
		return err
	}
	if entry < 0 || entry >= len(*list) {
		return ErrIndexOutOfRange
	}
	*list = append((*list)[:entry], (*list)[entry+1:]...)
	d.draft = next
	return nil
}

func (d *Draft) setProcessStepEntry(index int, field string, entry int, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.Process.Steps) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	list, err := stepEntryList(&next.Process.Steps[index], field)
	if err != nil {
		return err
	}
	if entry < 0 || entry >= len(*list) {
		return ErrIndexOutOfRange
	}
	(*list)[entry] = value
	d.draft = next
	return nil
}

func (d *Draft) addCarouselTech() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	next := cloneDocument(d.draft)
	next.TechCarousel.Technologies = append(next.TechCarousel.Technologies, model.Technology{})
	d.draft = next
	return nil
}

func (d *Draft) removeCarouselTech(index int, confirmed bool) error {
	if !confirmed {
		return ErrNotConfirmed
	}
	d.mu.Lock()
	defer d.mu.Unlock()
	techs := d.draft.TechCarousel.Technologies
	if index < 0 || index >= len(techs) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	next.TechCarousel.Technologies = append(next.TechCarousel.Technologies[:index], next.TechCarousel.Technologies[index+1:]...)
	d.draft = next
	return nil
}

func (d *Draft) setCarouselTechField(index int, field, value string) error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if index < 0 || index >= len(d.draft.TechCarousel.Technologies) {
		return ErrIndexOutOfRange
	}
	next := cloneDocument(d.draft)
	tech := &next.TechCarousel.Technologies[index]
	switch field {
	case "name":
		tech.Name = value
	case "icon":
		tech.Icon = value
	default:
		return fmt.Errorf("%w: technology.%s", ErrUnknownField, field)
	}
	d.draft = next
	return nil
}

// blurField runs the simple required check on a single field, recording the
// error for immediate feedback without a full validation pass.
func (d *Draft) blurField(section, field string, index int) error {
	d.mu.Lock()
	defer d.mu.Unlock()

	var value string
	switch section {
	case model.SectionHeader:
		v, err := headerFieldValue(&d.draft.Header, field)
		if err != nil {
			return err
		}
		value = v
		if msg, ok := ValidateRequired(value); !ok {
			d.headerErrors[field] = msg
		}
	case model.SectionAbout:
		v, err := aboutFieldValue(&d.draft.About, field)
		if err != nil {
			return err
		}
		value = v
		if msg, ok := ValidateRequired(value); !ok {
			d.aboutErrors[field] = msg
		}
	case TabPortfolio:
		if index < 0 || index >= len(d.draft.Portfolio) {
			return ErrIndexOutOfRange
		}
		v, err := portfolioFieldValue(&d.draft.Portfolio[index], field)
		if err != nil {
			return err
		}
		value = v
		if msg, ok := ValidateRequired(value); !ok {
			d.portfolioErrors[index][field] = msg
		}
	default:
		return fmt.Errorf("%w: %s", ErrUnknownSection, section)
	}
	return nil
}

func setHeaderField(h *model.HeaderContent, field, value string) error {
	switch field {
	case "logoType":
		if value != model.LogoTypeText && value != model.LogoTypeImage {
			return fmt.Errorf("invalid logoType %q", value)
		}
		h.LogoType = value
	case "logoText":
		h.LogoText = value
	case "logoImageUrlLight":
		h.LogoImageURLLight = value
	case "logoImageUrlDark":
		h.LogoImageURLDark = value
	case "contactButton":
		h.ContactButton = value
	default:
		return fmt.Errorf("%w: header.%s", ErrUnknownField, field)
	}
	return nil
}

func setHeroField(h *model.HeroContent, field, value string) error {
	switch field {
	case "headline":
		h.Headline = value
	case "paragraph":
		h.Paragraph = value
	case "ctaPrimary":
		h.CTAPrimary = value
	case "ctaSecondary":
		h.CTASecondary = value
	case "backgroundImageUrl":
		h.BackgroundImageURL = value
	default:
		return fmt.Errorf("%w: hero.%s", ErrUnknownField, field)
	}
	return nil
}

func setAboutField(a *model.AboutContent, field, value string) error {
	switch field {
	case "headline":
		a.Headline = value
	case "paragraph1":
		a.Paragraph1 = value
	case "paragraph2":
		a.Paragraph2 = value
	case "buttonText":
		a.ButtonText = value
	case "imageUrl":
		a.ImageURL = value
	case "philosophyHeadline":
		a.PhilosophyHeadline = value
	case "philosophyText":
		a.PhilosophyText = value
	case "valuesHeadline":
		a.ValuesHeadline = value
	case "teamHeadline":
		a.TeamHeadline = value
	default:
		return fmt.Errorf("%w: about.%s", ErrUnknownField, field)
	}
	return nil
}

func setProcessField(p *model.ProcessContent, field, value string) error {
	switch field {
	case "headline":
		p.Headline = value
	case "subheadline":
		p.Subheadline = value
	default:
		return fmt.Errorf("%w: process.%s", ErrUnknownField, field)
	}
	return nil
}

func setTechCarouselField(t *model.TechCarouselContent, field, value string) error {
	switch field {
	case "headline":
		t.Headline = value
	case "subheadline":
		t.Subheadline = value
	default:
		return fmt.Errorf("%w: tech_carousel.%s", ErrUnknownField, field)
	}
	return nil
}

func setSiteMetaField(s *model.SiteMeta, field, value string) error {
	switch field {
	case "faviconIcoUrl":
		s.FaviconIcoURL = value
	case "faviconSvgUrl":
		s.FaviconSvgURL = value
	case "appleTouchIconUrl":
		s.AppleTouchIconURL = value
	default:
		return fmt.Errorf("%w: site_meta.%s", ErrUnknownField, field)
	}
	return nil
}

func headerFieldValue(h *model.HeaderContent, field string) (string, error) {
	switch field {
	case "logoText":
		return h.LogoText, nil
	case "logoImageUrlLight":
		return h.LogoImageURLLight, nil
	case "logoImageUrlDark":
		return h.LogoImageURLDark, nil
	case "contactButton":
		return h.ContactButton, nil
	default:
		return "", fmt.Errorf("%w: header.%s", ErrUnknownField, field)
	}
}

func aboutFieldValue(a *model.AboutContent, field string) (string, error) {
	switch field {
	case "headline":
		return a.Headline, nil
	case "paragraph1":
		return a.Paragraph1, nil
	case "paragraph2":
		return a.Paragraph2, nil
	case "buttonText":
		return a.ButtonText, nil
	case "imageUrl":
		return a.ImageURL, nil
	default:
		return "", fmt.Errorf("%w: about.%s", ErrUnknownField, field)
	}
}

func portfolioFieldValue(p *model.PortfolioItem, field string) (string, error) {
	switch field {
	case "imageurl":
		return p.ImageURL, nil
	case "title":
		return p.Title, nil
	case "category":
		return p.Category, nil
	default:
		return "", fmt.Errorf("%w: portfolio.%s", ErrUnknownField, field)
	}
}
