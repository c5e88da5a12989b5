package models

import "encoding/json"

// LocalizedText carries the three language variants of a single field.
// Czech is the canonical value and serves as the fallback.
type LocalizedText struct {
	CS string
	EN string
	HE string
}

// Resolve returns the variant for locale, falling back to Czech when the
// requested variant is empty or the locale is unknown.
func (t LocalizedText) Resolve(locale string) string {
	switch locale {
	case "en":
		if t.EN != "" {
			return t.EN
		}
	case "he":
		if t.HE != "" {
			return t.HE
		}
	}
	return t.CS
}

// IsZero reports whether no variant is set.
func (t LocalizedText) IsZero() bool {
	return t.CS == "" && t.EN == "" && t.HE == ""
}

// ImageList accepts the three historical shapes of the "image" field:
// absent, a single URL string, or an array of URL strings.
type ImageList []string

func (l *ImageList) UnmarshalJSON(data []byte) error {
	if string(data) == "null" {
		*l = nil
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		if s == "" {
			*l = nil
		} else {
			*l = ImageList{s}
		}
		return nil
	}
	var urls []string
	if err := json.Unmarshal(data, &urls); err != nil {
		return err
	}
	*l = urls
	return nil
}

func (l ImageList) MarshalJSON() ([]byte, error) {
	switch len(l) {
	case 0:
		return []byte(`""`), nil
	case 1:
		return json.Marshal(l[0])
	default:
		return json.Marshal([]string(l))
	}
}

// Ketuba is a catalog record. ID and CreatedAt are immutable after
// creation; UpdatedAt changes on every successful update.
type Ketuba struct {
	ID          int
	Name        LocalizedText
	Description LocalizedText
	Category    LocalizedText
	Price       float64
	Images      ImageList
	CreatedAt   string
	UpdatedAt   string
}

// ketubaJSON is the flat on-disk/wire shape. Localized fields use
// name_cs/name_en/name_he keys; the legacy non-localized keys (name,
// description, category) are still accepted on decode.
type ketubaJSON struct {
	ID            int       `json:"id"`
	Name          string    `json:"name,omitempty"`
	NameCS        string    `json:"name_cs,omitempty"`
	NameEN        string    `json:"name_en,omitempty"`
	NameHE        string    `json:"name_he,omitempty"`
	Description   string    `json:"description,omitempty"`
	DescriptionCS string    `json:"description_cs,omitempty"`
	DescriptionEN string    `json:"description_en,omitempty"`
	DescriptionHE string    `json:"description_he,omitempty"`
	Category      string    `json:"category,omitempty"`
	CategoryCS    string    `json:"category_cs,omitempty"`
	CategoryEN    string    `json:"category_en,omitempty"`
	CategoryHE    string    `json:"category_he,omitempty"`
	Price         float64   `json:"price"`
	Image         ImageList `json:"image,omitempty"`
	CreatedAt     string    `json:"created_at,omitempty"`
	UpdatedAt     string    `json:"updated_at,omitempty"`
}

func (k Ketuba) MarshalJSON() ([]byte, error) {
	return json.Marshal(ketubaJSON{
		ID:            k.ID,
		NameCS:        k.Name.CS,
		NameEN:        k.Name.EN,
		NameHE:        k.Name.HE,
		DescriptionCS: k.Description.CS,
		DescriptionEN: k.Description.EN,
		DescriptionHE: k.Description.HE,
		CategoryCS:    k.Category.CS,
		CategoryEN:    k.Category.EN,
		CategoryHE:    k.Category.HE,
		Price:         k.Price,
		Image:         k.Images,
		CreatedAt:     k.CreatedAt,
		UpdatedAt:     k.UpdatedAt,
	})
}

func (k *Ketuba) UnmarshalJSON(data []byte) error {
	var raw ketubaJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	// Legacy flat records carry only the non-suffixed keys.
	if raw.NameCS == "" {
		raw.NameCS = raw.Name
	}
	if raw.DescriptionCS == "" {
		raw.DescriptionCS = raw.Description
	}
	if raw.CategoryCS == "" {
		raw.CategoryCS = raw.Category
	}
	*k = Ketuba{
		ID:          raw.ID,
		Name:        LocalizedText{CS: raw.NameCS, EN: raw.NameEN, HE: raw.NameHE},
		Description: LocalizedText{CS: raw.DescriptionCS, EN: raw.DescriptionEN, HE: raw.DescriptionHE},
		Category:    LocalizedText{CS: raw.CategoryCS, EN: raw.CategoryEN, HE: raw.CategoryHE},
		Price:       raw.Price,
		Images:      raw.Image,
		CreatedAt:   raw.CreatedAt,
		UpdatedAt:   raw.UpdatedAt,
	}
	return nil
}

// KetubaUpdate carries the updatable fields of a ketuba; nil fields are
// left untouched by the repository.
type KetubaUpdate struct {
	Name        *LocalizedText
	Description *LocalizedText
	Category    *LocalizedText
	Price       *float64
	Images      ImageList
}

// LocalizedKetuba is the flattened single-locale view served by the
// public catalog API.
type LocalizedKetuba struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
	Image       string  `json:"image"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}
