package handlers

import (
	"encoding/json"
	"log"
	"net/http"
	"net/url"

	"github.com/pocketbase/pocketbase/core"
)

const flashCookieName = "flash_toast"

type toastPayload struct {
	Message string `json:"message"`
	Type    string `json:"type"`
}

// SetToast adds a showToast event to the HX-Trigger response header, keeping
// any events already queued there, and mirrors it into a short-lived flash
// cookie for clients that follow a plain redirect.
func SetToast(e *core.RequestEvent, toastType string, message string) {
	toast := toastPayload{Message: message, Type: toastType}

	events := map[string]any{}
	if existing := e.Response.Header().Get("HX-Trigger"); existing != "" {
		if err := json.Unmarshal([]byte(existing), &events); err != nil {
			log.Printf("toast: replacing non-JSON HX-Trigger %q: %v", existing, err)
			events = map[string]any{}
		}
	}
	events["showToast"] = toast

	data, err := json.Marshal(events)
	if err != nil {
		log.Printf("toast: failed to marshal HX-Trigger JSON: %v", err)
		return
	}
	e.Response.Header().Set("HX-Trigger", string(data))

	cookieVal, err := json.Marshal(toast)
	if err != nil {
		return
	}
	http.SetCookie(e.Response, &http.Cookie{
		Name:     flashCookieName,
		Value:    url.QueryEscape(string(cookieVal)),
		Path:     "/",
		MaxAge:   10,
		SameSite: http.SameSiteLaxMode,
	})
}

// ErrorToast sets an error toast, tells HTMX not to swap the response body
// and writes message with statusCode.
func ErrorToast(e *core.RequestEvent, statusCode int, message string) error {
	SetToast(e, "error", message)
	e.Response.Header().Set("HX-Reswap", "none")
	return e.String(statusCode, message)
}
