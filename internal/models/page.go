package models

import "encoding/json"

// CMSPage is a multilingual content page. The schema exists for the
// planned CMS area; no route serves it yet.
type CMSPage struct {
	ID              int
	Slug            string
	Title           LocalizedText
	Content         LocalizedText
	MetaDescription LocalizedText
	Published       bool
	CreatedAt       string
	UpdatedAt       string
}

type cmsPageJSON struct {
	ID                int    `json:"id"`
	Slug              string `json:"slug"`
	TitleCS           string `json:"title_cs"`
	TitleEN           string `json:"title_en,omitempty"`
	TitleHE           string `json:"title_he,omitempty"`
	ContentCS         string `json:"content_cs"`
	ContentEN         string `json:"content_en,omitempty"`
	ContentHE         string `json:"content_he,omitempty"`
	MetaDescriptionCS string `json:"meta_description_cs,omitempty"`
	MetaDescriptionEN string `json:"meta_description_en,omitempty"`
	MetaDescriptionHE string `json:"meta_description_he,omitempty"`
	Published         bool   `json:"published"`
	CreatedAt         string `json:"created_at,omitempty"`
	UpdatedAt         string `json:"updated_at,omitempty"`
}

func (p CMSPage) MarshalJSON() ([]byte, error) {
	return json.Marshal(cmsPageJSON{
		ID:                p.ID,
		Slug:              p.Slug,
		TitleCS:           p.Title.CS,
		TitleEN:           p.Title.EN,
		TitleHE:           p.Title.HE,
		ContentCS:         p.Content.CS,
		ContentEN:         p.Content.EN,
		ContentHE:         p.Content.HE,
		MetaDescriptionCS: p.MetaDescription.CS,
		MetaDescriptionEN: p.MetaDescription.EN,
		MetaDescriptionHE: p.MetaDescription.HE,
		Published:         p.Published,
		CreatedAt:         p.CreatedAt,
		UpdatedAt:         p.UpdatedAt,
	})
}

func (p *CMSPage) UnmarshalJSON(data []byte) error {
	var raw cmsPageJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*p = CMSPage{
		ID:              raw.ID,
		Slug:            raw.Slug,
		Title:           LocalizedText{CS: raw.TitleCS, EN: raw.TitleEN, HE: raw.TitleHE},
		Content:         LocalizedText{CS: raw.ContentCS, EN: raw.ContentEN, HE: raw.ContentHE},
		MetaDescription: LocalizedText{CS: raw.MetaDescriptionCS, EN: raw.MetaDescriptionEN, HE: raw.MetaDescriptionHE},
		Published:       raw.Published,
		CreatedAt:       raw.CreatedAt,
		UpdatedAt:       raw.UpdatedAt,
	}
	return nil
}

// LocalizedPage is the single-locale view of a CMS page.
type LocalizedPage struct {
	ID              int    `json:"id"`
	Slug            string `json:"slug"`
	Title           string `json:"title"`
	Content         string `json:"content"`
	MetaDescription string `json:"meta_description,omitempty"`
	Published       bool   `json:"published"`
	CreatedAt       string `json:"created_at,omitempty"`
	UpdatedAt       string `json:"updated_at,omitempty"`
}

// Localize resolves the page for a locale with Czech fallback.
func (p CMSPage) Localize(locale string) LocalizedPage {
	return LocalizedPage{
		ID:              p.ID,
		Slug:            p.Slug,
		Title:           p.Title.Resolve(locale),
		Content:         p.Content.Resolve(locale),
		MetaDescription: p.MetaDescription.Resolve(locale),
		Published:       p.Published,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}
