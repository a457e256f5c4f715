package model

import "time"

// Section ids as stored in the sections table. Each id keys one JSON blob.
const (
	SectionHeader        = "header"
	SectionHero          = "hero"
	SectionAbout         = "about"
	SectionProcess       = "process"
	SectionTechCarousel  = "tech_carousel"
	SectionSiteMeta      = "site_meta"
	SectionThemeSettings = "theme_settings"
)

// SectionIDs lists every known section id in a stable order.
var SectionIDs = []string{
	SectionHeader,
	SectionHero,
	SectionAbout,
	SectionProcess,
	SectionTechCarousel,
	SectionSiteMeta,
	SectionThemeSettings,
}

// Logo types for the header section.
const (
	LogoTypeText  = "text"
	LogoTypeImage = "image"
)

// Technology is a named tool with its icon as raw SVG markup.
type Technology struct {
	Name string `json:"name"`
	Icon string `json:"icon"`
}

// PortfolioItem is one entry of the ordered portfolio list.
// An item without a valid UUID ID has never been persisted and is inserted,
// never updated by id. Position is recomputed from array order at save time.
type PortfolioItem struct {
	ID           string       `json:"id,omitempty"`
	ImageURL     string       `json:"imageurl"`
	Title        string       `json:"title"`
	Category     string       `json:"category"`
	Technologies []Technology `json:"technologies,omitempty"`
	Challenge    string       `json:"desafio,omitempty"`
	Solution     string       `json:"solucao,omitempty"`
	Results      string       `json:"resultados,omitempty"`
	Position     int          `json:"position"`
	// CreatedAt is server-assigned and stripped before upsert.
	CreatedAt *time.Time `json:"created_at,omitempty"`
}

// HeaderContent configures the site logo and the contact CTA.
type HeaderContent struct {
	LogoType          string `json:"logoType"`
	LogoText          string `json:"logoText"`
	LogoImageURLLight string `json:"logoImageUrlLight"`
	LogoImageURLDark  string `json:"logoImageUrlDark"`
	ContactButton     string `json:"contactButton"`
}

// HeroContent is the landing hero section payload.
type HeroContent struct {
	Headline           string `json:"headline"`
	Paragraph          string `json:"paragraph"`
	CTAPrimary         string `json:"ctaPrimary"`
	CTASecondary       string `json:"ctaSecondary"`
	BackgroundImageURL string `json:"backgroundImageUrl"`
}

// Value is one of the "values that guide us" cards on the about page.
type Value struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

// TeamMember is one entry of the about page team grid.
type TeamMember struct {
	ImageURL string `json:"imageUrl"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

// AboutContent is the about page payload.
type AboutContent struct {
	Headline           string       `json:"headline"`
	Paragraph1         string       `json:"paragraph1"`
	Paragraph2         string       `json:"paragraph2"`
	ButtonText         string       `json:"buttonText"`
	ImageURL           string       `json:"imageUrl"`
	PhilosophyHeadline string       `json:"philosophyHeadline"`
	PhilosophyText     string       `json:"philosophyText"`
	ValuesHeadline     string       `json:"valuesHeadline"`
	Values             []Value      `json:"values"`
	TeamHeadline       string       `json:"teamHeadline"`
	TeamMembers        []TeamMember `json:"teamMembers"`
}

// ProcessStep is one stage of the methodology timeline.
type ProcessStep struct {
	Title        string   `json:"title"`
	Description  string   `json:"description"`
	Icon         string   `json:"icon"`
	Deliverables []string `json:"deliverables"`
	Tools        []string `json:"tools"`
}

// ProcessContent is the process page payload.
type ProcessContent struct {
	Headline    string        `json:"headline"`
	Subheadline string        `json:"subheadline"`
	Steps       []ProcessStep `json:"steps"`
}

// TechCarouselContent is the scrolling technology strip payload.
type TechCarouselContent struct {
	Headline     string       `json:"headline"`
	Subheadline  string       `json:"subheadline"`
	Technologies []Technology `json:"technologies"`
}

// SiteMeta holds favicon URLs.
type SiteMeta struct {
	FaviconIcoURL     string `json:"faviconIcoUrl"`
	FaviconSvgURL     string `json:"faviconSvgUrl"`
	AppleTouchIconURL string `json:"appleTouchIconUrl"`
}

// ThemeSettings is the fixed set of named color slots, each a hex color.
type ThemeSettings struct {
	Primary     string `json:"primary"`
	Secondary   string `json:"secondary"`
	Accent      string `json:"accent"`
	AccentHover string `json:"accentHover"`
	Light       string `json:"light"`
	Muted       string `json:"muted"`
}

// ContentDocument is the aggregate edited by the admin panel. It is built by
// merging stored sections against compiled-in defaults, so known fields are
// never absent.
type ContentDocument struct {
	Header        HeaderContent       `json:"header"`
	Hero          HeroContent         `json:"hero"`
	About         AboutContent        `json:"about"`
	Process       ProcessContent      `json:"process"`
	Portfolio     []PortfolioItem     `json:"portfolio"`
	TechCarousel  TechCarouselContent `json:"tech_carousel"`
	SiteMeta      SiteMeta            `json:"site_meta"`
	ThemeSettings ThemeSettings       `json:"theme_settings"`
}
