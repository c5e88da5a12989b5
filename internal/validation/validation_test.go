package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ketubot-catalog/internal/models"
)

func TestKetubaInputValid(t *testing.T) {
	in := KetubaInput{
		NameCS: "  Klasická  ",
		NameEN: "Classic",
		Price:  5500,
		Image:  models.ImageList{"https://cdn.example.com/a.jpg"},
	}
	require.Nil(t, in.Validate())
	assert.Equal(t, "Klasická", in.NameCS)

	k := in.Ketuba()
	assert.Equal(t, "Classic", k.Name.EN)
	assert.Equal(t, 5500.0, k.Price)
}

func TestKetubaInputLegacyNameFoldsIntoCzech(t *testing.T) {
	in := KetubaInput{Name: "Klasická", Price: 5500}
	require.Nil(t, in.Validate())
	assert.Equal(t, "Klasická", in.NameCS)
}

func TestKetubaInputViolations(t *testing.T) {
	tests := []struct {
		name string
		in   KetubaInput
		msg  string
	}{
		{"missing name", KetubaInput{Price: 100}, "Název je povinný"},
		{"missing price", KetubaInput{NameCS: "x"}, "Cena musí být kladné číslo"},
		{"negative price", KetubaInput{NameCS: "x", Price: -5}, "Cena musí být kladné číslo"},
		{"price too high", KetubaInput{NameCS: "x", Price: 2000000}, "Cena je příliš vysoká"},
		{"bad image", KetubaInput{NameCS: "x", Price: 100, Image: models.ImageList{"not a url"}}, "Obrázek musí být platná URL nebo prázdný"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.msg)
		})
	}
}

func TestKetubaInputEmptyImageEntriesAllowed(t *testing.T) {
	in := KetubaInput{NameCS: "x", Price: 100, Image: models.ImageList{""}}
	assert.Nil(t, in.Validate())
}

func TestLoginInput(t *testing.T) {
	valid := LoginInput{Username: "admin", Password: "secret123"}
	assert.Nil(t, valid.Validate())

	tests := []struct {
		name string
		in   LoginInput
		msg  string
	}{
		{"short username", LoginInput{Username: "ab", Password: "secret123"}, "Username musí mít alespoň 3 znaky"},
		{"bad characters", LoginInput{Username: "admin!", Password: "secret123"}, "Username může obsahovat pouze písmena, čísla, _ a -"},
		{"short password", LoginInput{Username: "admin", Password: "abc"}, "Heslo musí mít alespoň 6 znaků"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.msg)
		})
	}
}

func TestContactInput(t *testing.T) {
	valid := ContactInput{
		Name:    "Jana Nováková",
		Email:   "Jana@Example.COM",
		Phone:   "+420123456789",
		Message: "Dobrý den, mám zájem o ketubu.",
	}
	require.Nil(t, valid.Validate())
	assert.Equal(t, "jana@example.com", valid.Email)

	tests := []struct {
		name string
		in   ContactInput
		msg  string
	}{
		{
			"short message",
			ContactInput{Name: "Jana", Email: "jana@example.com", Message: "krátká"},
			"Zpráva musí mít alespoň 10 znaků",
		},
		{
			"bad email",
			ContactInput{Name: "Jana", Email: "not-an-email", Message: "Dobrý den, mám zájem."},
			"Neplatný formát emailu",
		},
		{
			"bad phone",
			ContactInput{Name: "Jana", Email: "jana@example.com", Phone: "12345", Message: "Dobrý den, mám zájem."},
			"Neplatný formát telefonu (formát: +420123456789 nebo 123456789)",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errs := tt.in.Validate()
			require.NotNil(t, errs)
			assert.Contains(t, errs, tt.msg)
		})
	}

	// Empty phone is fine, it is optional.
	optional := ContactInput{Name: "Jana", Email: "jana@example.com", Message: "Dobrý den, mám zájem."}
	assert.Nil(t, optional.Validate())
}

func TestCMSPageInput(t *testing.T) {
	valid := CMSPageInput{Slug: "o-nas", TitleCS: "O nás", ContentCS: "Obsah stránky"}
	assert.Nil(t, valid.Validate())

	bad := CMSPageInput{Slug: "O Nás!", TitleCS: "O nás", ContentCS: "Obsah"}
	errs := bad.Validate()
	require.NotNil(t, errs)
	assert.Contains(t, errs, "Slug může obsahovat pouze malá písmena, čísla a pomlčky")
}
