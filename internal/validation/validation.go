// Package validation checks incoming request payloads. A failed check
// is a first-class result (an ordered list of human-readable messages),
// never an error value.
package validation

import (
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"

	"ketubot-catalog/internal/models"
)

var validate = validator.New()

var (
	usernameRe = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	phoneRe    = regexp.MustCompile(`^(\+420)?[0-9]{9}$`)
	slugRe     = regexp.MustCompile(`^[a-z0-9-]+$`)
)

func init() {
	// Optional fields may be empty; the format applies only when set.
	validate.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernameRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("cz_phone", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		return v == "" || phoneRe.MatchString(v)
	})
	validate.RegisterValidation("slug", func(fl validator.FieldLevel) bool {
		return slugRe.MatchString(fl.Field().String())
	})
	validate.RegisterValidation("url_or_empty", func(fl validator.FieldLevel) bool {
		v := fl.Field().String()
		if v == "" {
			return true
		}
		return validate.Var(v, "url") == nil
	})
}

// collect turns validator errors into the messages table's ordered,
// human-readable form. Unknown violations get a generic message rather
// than leaking validator internals.
func collect(err error, messages map[string]string) []string {
	if err == nil {
		return nil
	}
	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{"Neplatná data"}
	}
	out := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg, ok := messages[fe.StructField()+"."+fe.Tag()]; ok {
			out = append(out, msg)
		} else {
			out = append(out, "Neplatná hodnota pole "+fe.StructField())
		}
	}
	return out
}

// KetubaInput is the admin create/update payload. Localized keys are
// canonical; the legacy flat keys are folded into the Czech variant.
type KetubaInput struct {
	Name          string           `json:"name"`
	NameCS        string           `json:"name_cs" validate:"required,max=200"`
	NameEN        string           `json:"name_en" validate:"max=200"`
	NameHE        string           `json:"name_he" validate:"max=200"`
	Description   string           `json:"description"`
	DescriptionCS string           `json:"description_cs" validate:"max=2000"`
	DescriptionEN string           `json:"description_en" validate:"max=2000"`
	DescriptionHE string           `json:"description_he" validate:"max=2000"`
	Category      string           `json:"category"`
	CategoryCS    string           `json:"category_cs" validate:"max=100"`
	CategoryEN    string           `json:"category_en" validate:"max=100"`
	CategoryHE    string           `json:"category_he" validate:"max=100"`
	Price         float64          `json:"price" validate:"required,gt=0,lte=1000000"`
	Image         models.ImageList `json:"image"`
}

var ketubaMessages = map[string]string{
	"NameCS.required":    "Název je povinný",
	"NameCS.max":         "Název může mít maximálně 200 znaků",
	"NameEN.max":         "Název může mít maximálně 200 znaků",
	"NameHE.max":         "Název může mít maximálně 200 znaků",
	"DescriptionCS.max":  "Popis může mít maximálně 2000 znaků",
	"DescriptionEN.max":  "Popis může mít maximálně 2000 znaků",
	"DescriptionHE.max":  "Popis může mít maximálně 2000 znaků",
	"CategoryCS.max":     "Kategorie může mít maximálně 100 znaků",
	"CategoryEN.max":     "Kategorie může mít maximálně 100 znaků",
	"CategoryHE.max":     "Kategorie může mít maximálně 100 znaků",
	"Price.required":     "Cena musí být kladné číslo",
	"Price.gt":           "Cena musí být kladné číslo",
	"Price.lte":          "Cena je příliš vysoká",
}

const imageURLMessage = "Obrázek musí být platná URL nebo prázdný"

// Validate normalizes the input in place and returns violation
// messages, or nil when the payload is acceptable.
func (in *KetubaInput) Validate() []string {
	in.normalize()
	errs := collect(validate.Struct(in), ketubaMessages)
	for _, img := range in.Image {
		if validate.Var(img, "url_or_empty") != nil {
			errs = append(errs, imageURLMessage)
			break
		}
	}
	if len(errs) == 0 {
		return nil
	}
	return errs
}

func (in *KetubaInput) normalize() {
	in.Name = strings.TrimSpace(in.Name)
	in.NameCS = strings.TrimSpace(in.NameCS)
	in.NameEN = strings.TrimSpace(in.NameEN)
	in.NameHE = strings.TrimSpace(in.NameHE)
	in.Description = strings.TrimSpace(in.Description)
	in.DescriptionCS = strings.TrimSpace(in.DescriptionCS)
	in.DescriptionEN = strings.TrimSpace(in.DescriptionEN)
	in.DescriptionHE = strings.TrimSpace(in.DescriptionHE)
	in.Category = strings.TrimSpace(in.Category)
	in.CategoryCS = strings.TrimSpace(in.CategoryCS)
	in.CategoryEN = strings.TrimSpace(in.CategoryEN)
	in.CategoryHE = strings.TrimSpace(in.CategoryHE)
	for i, img := range in.Image {
		in.Image[i] = strings.TrimSpace(img)
	}
	// Legacy payloads carry only the flat keys.
	if in.NameCS == "" {
		in.NameCS = in.Name
	}
	if in.DescriptionCS == "" {
		in.DescriptionCS = in.Description
	}
	if in.CategoryCS == "" {
		in.CategoryCS = in.Category
	}
}

// Ketuba converts a validated input into a record; id and timestamps
// are left for the repository.
func (in *KetubaInput) Ketuba() models.Ketuba {
	return models.Ketuba{
		Name:        models.LocalizedText{CS: in.NameCS, EN: in.NameEN, HE: in.NameHE},
		Description: models.LocalizedText{CS: in.DescriptionCS, EN: in.DescriptionEN, HE: in.DescriptionHE},
		Category:    models.LocalizedText{CS: in.CategoryCS, EN: in.CategoryEN, HE: in.CategoryHE},
		Price:       in.Price,
		Images:      in.Image,
	}
}

// Update converts a validated input into the partial-update shape.
func (in *KetubaInput) Update() models.KetubaUpdate {
	name := models.LocalizedText{CS: in.NameCS, EN: in.NameEN, HE: in.NameHE}
	description := models.LocalizedText{CS: in.DescriptionCS, EN: in.DescriptionEN, HE: in.DescriptionHE}
	category := models.LocalizedText{CS: in.CategoryCS, EN: in.CategoryEN, HE: in.CategoryHE}
	price := in.Price
	images := in.Image
	if images == nil {
		images = models.ImageList{}
	}
	return models.KetubaUpdate{
		Name:        &name,
		Description: &description,
		Category:    &category,
		Price:       &price,
		Images:      images,
	}
}

// LoginInput is the admin login payload.
type LoginInput struct {
	Username string `json:"username" validate:"required,min=3,max=50,username_chars"`
	Password string `json:"password" validate:"required,min=6,max=100"`
}

var loginMessages = map[string]string{
	"Username.required":       "Username musí mít alespoň 3 znaky",
	"Username.min":            "Username musí mít alespoň 3 znaky",
	"Username.max":            "Username může mít maximálně 50 znaků",
	"Username.username_chars": "Username může obsahovat pouze písmena, čísla, _ a -",
	"Password.required":       "Heslo musí mít alespoň 6 znaků",
	"Password.min":            "Heslo musí mít alespoň 6 znaků",
	"Password.max":            "Heslo je příliš dlouhé",
}

func (in *LoginInput) Validate() []string {
	in.Username = strings.TrimSpace(in.Username)
	return collect(validate.Struct(in), loginMessages)
}

// ContactInput is the contact-form payload.
type ContactInput struct {
	Name    string `json:"name" validate:"required,min=2,max=100"`
	Email   string `json:"email" validate:"required,email,max=200"`
	Phone   string `json:"phone" validate:"cz_phone"`
	Message string `json:"message" validate:"required,min=10,max=5000"`
}

var contactMessages = map[string]string{
	"Name.required":    "Jméno musí mít alespoň 2 znaky",
	"Name.min":         "Jméno musí mít alespoň 2 znaky",
	"Name.max":         "Jméno může mít maximálně 100 znaků",
	"Email.required":   "Neplatný formát emailu",
	"Email.email":      "Neplatný formát emailu",
	"Email.max":        "Email je příliš dlouhý",
	"Phone.cz_phone":   "Neplatný formát telefonu (formát: +420123456789 nebo 123456789)",
	"Message.required": "Zpráva musí mít alespoň 10 znaků",
	"Message.min":      "Zpráva musí mít alespoň 10 znaků",
	"Message.max":      "Zpráva může mít maximálně 5000 znaků",
}

func (in *ContactInput) Validate() []string {
	in.Name = strings.TrimSpace(in.Name)
	in.Email = strings.ToLower(strings.TrimSpace(in.Email))
	in.Phone = strings.TrimSpace(in.Phone)
	in.Message = strings.TrimSpace(in.Message)
	return collect(validate.Struct(in), contactMessages)
}

// CMSPageInput is the payload for the planned CMS pages area.
type CMSPageInput struct {
	Slug              string `json:"slug" validate:"required,slug,max=100"`
	TitleCS           string `json:"title_cs" validate:"required,max=200"`
	TitleEN           string `json:"title_en" validate:"max=200"`
	TitleHE           string `json:"title_he" validate:"max=200"`
	ContentCS         string `json:"content_cs" validate:"required"`
	ContentEN         string `json:"content_en"`
	ContentHE         string `json:"content_he"`
	MetaDescriptionCS string `json:"meta_description_cs" validate:"max=300"`
	MetaDescriptionEN string `json:"meta_description_en" validate:"max=300"`
	MetaDescriptionHE string `json:"meta_description_he" validate:"max=300"`
	Published         bool   `json:"published"`
}

var cmsPageMessages = map[string]string{
	"Slug.required":         "Slug je povinný",
	"Slug.slug":             "Slug může obsahovat pouze malá písmena, čísla a pomlčky",
	"Slug.max":              "Slug může mít maximálně 100 znaků",
	"TitleCS.required":      "Titulek je povinný",
	"TitleCS.max":           "Titulek může mít maximálně 200 znaků",
	"TitleEN.max":           "Titulek může mít maximálně 200 znaků",
	"TitleHE.max":           "Titulek může mít maximálně 200 znaků",
	"ContentCS.required":    "Obsah je povinný",
	"MetaDescriptionCS.max": "Meta popis může mít maximálně 300 znaků",
	"MetaDescriptionEN.max": "Meta popis může mít maximálně 300 znaků",
	"MetaDescriptionHE.max": "Meta popis může mít maximálně 300 znaků",
}

func (in *CMSPageInput) Validate() []string {
	in.Slug = strings.TrimSpace(in.Slug)
	in.TitleCS = strings.TrimSpace(in.TitleCS)
	in.TitleEN = strings.TrimSpace(in.TitleEN)
	in.TitleHE = strings.TrimSpace(in.TitleHE)
	return collect(validate.Struct(in), cmsPageMessages)
}
