package views

import (
	"encoding/base64"
	"strings"

	"github.com/a-h/templ"

	"invoiceprint/services"
)

// logoDataURI inlines the logo so the preview prints without extra requests.
func logoDataURI(l *services.Logo) string {
	mime := "image/png"
	switch strings.ToLower(strings.TrimPrefix(l.Extension, ".")) {
	case "jpg", "jpeg":
		mime = "image/jpeg"
	}
	return "data:" + mime + ";base64," + base64.StdEncoding.EncodeToString(l.Data)
}

func logoTag(l *services.Logo) string {
	return `<img class="logo" alt="" src="` + templ.EscapeString(logoDataURI(l)) + `">`
}
