package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderHTML(t *testing.T) {
	msg := ContactMessage{
		Name:    "Jana Nováková",
		Email:   "jana@example.com",
		Phone:   "+420123456789",
		Message: "Dobrý den,\nmám zájem o ketubu.",
	}
	html := renderHTML(msg)

	assert.Contains(t, html, "<strong>Jméno:</strong> Jana Nováková")
	assert.Contains(t, html, "<strong>Telefon:</strong> +420123456789")
	assert.Contains(t, html, "Dobrý den,<br>mám zájem o ketubu.")
}

func TestRenderHTMLOmitsEmptyPhone(t *testing.T) {
	msg := ContactMessage{Name: "Jana", Email: "jana@example.com", Message: "Zpráva bez telefonu."}
	html := renderHTML(msg)

	assert.NotContains(t, html, "Telefon")
}

func TestRenderHTMLEscapesInput(t *testing.T) {
	msg := ContactMessage{
		Name:    `<script>alert("x")</script>`,
		Email:   "jana@example.com",
		Message: "Zpráva s <b>tagy</b> uvnitř.",
	}
	html := renderHTML(msg)

	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
	assert.Contains(t, html, "&lt;b&gt;tagy&lt;/b&gt;")
}
