package content

import (
	"net/url"
	"strings"

	"agencycms/internal/model"
)

// ErrorMap maps a field name to its user-facing error message.
type ErrorMap map[string]string

// Admin tab names, in the fixed priority order used when focusing the first
// tab that carries an error.
const (
	TabHeader    = "header"
	TabAbout     = "about"
	TabPortfolio = "portfolio"
)

// Validation messages. The admin UI is Portuguese, like the rest of the copy.
const (
	msgRequired          = "Este campo é obrigatório."
	msgLogoTextRequired  = "O texto do logo é obrigatório."
	msgLogoImageRequired = "Pelo menos uma URL de imagem do logo é obrigatória."
	msgContactRequired   = "O texto do botão de contato é obrigatório."
	msgHeadlineRequired  = "O título é obrigatório."
	msgImageURLRequired  = "A URL da imagem é obrigatória."
	msgCategoryRequired  = "A categoria é obrigatória."
	msgInvalidURL        = "Por favor, insira uma URL válida (ex: https://...)."
)

// ValidationResult carries every field error found in a full validation run.
type ValidationResult struct {
	IsValid   bool       `json:"is_valid"`
	Header    ErrorMap   `json:"header"`
	About     ErrorMap   `json:"about"`
	Portfolio []ErrorMap `json:"portfolio"`
}

// FirstInvalidTab returns the first tab containing an error, in the fixed
// order header, about, portfolio. Empty string when the result is valid.
func (r ValidationResult) FirstInvalidTab() string {
	if len(r.Header) > 0 {
		return TabHeader
	}
	if len(r.About) > 0 {
		return TabAbout
	}
	for _, m := range r.Portfolio {
		if len(m) > 0 {
			return TabPortfolio
		}
	}
	return ""
}

// Validate runs every rule against the draft without short-circuiting, so all
// errors can be surfaced at once.
func Validate(doc *model.ContentDocument) ValidationResult {
	header := ErrorMap{}
	about := ErrorMap{}
	portfolio := make([]ErrorMap, len(doc.Portfolio))

	if doc.Header.LogoType == model.LogoTypeText && strings.TrimSpace(doc.Header.LogoText) == "" {
		header["logoText"] = msgLogoTextRequired
	}
	if doc.Header.LogoType == model.LogoTypeImage &&
		strings.TrimSpace(doc.Header.LogoImageURLLight) == "" &&
		strings.TrimSpace(doc.Header.LogoImageURLDark) == "" {
		header["logoImageUrlLight"] = msgLogoImageRequired
	}
	if strings.TrimSpace(doc.Header.ContactButton) == "" {
		header["contactButton"] = msgContactRequired
	}

	if strings.TrimSpace(doc.About.Headline) == "" {
		about["headline"] = msgHeadlineRequired
	}
	if strings.TrimSpace(doc.About.ImageURL) == "" {
		about["imageUrl"] = msgImageURLRequired
	}

	for i, item := range doc.Portfolio {
		errs := ErrorMap{}
		if strings.TrimSpace(item.Title) == "" {
			errs["title"] = msgHeadlineRequired
		}
		if strings.TrimSpace(item.Category) == "" {
			errs["category"] = msgCategoryRequired
		}
		if strings.TrimSpace(item.ImageURL) == "" {
			errs["imageurl"] = msgImageURLRequired
		} else if !isValidHTTPURL(item.ImageURL) {
			errs["imageurl"] = msgInvalidURL
		}
		portfolio[i] = errs
	}

	isValid := len(header) == 0 && len(about) == 0
	for _, m := range portfolio {
		if len(m) > 0 {
			isValid = false
		}
	}

	return ValidationResult{IsValid: isValid, Header: header, About: about, Portfolio: portfolio}
}

// ValidateRequired is the single-field check run on blur: only the required
// rule, for immediate feedback while the user is still editing.
func ValidateRequired(value string) (string, bool) {
	if strings.TrimSpace(value) == "" {
		return msgRequired, false
	}
	return "", true
}

// isValidHTTPURL accepts only absolute http/https URLs. A format failure is a
// distinct error from a missing value.
func isValidHTTPURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}
