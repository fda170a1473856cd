package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"

	"github.com/pocketbase/pocketbase/core"
)

func newToastEvent() (*core.RequestEvent, *httptest.ResponseRecorder) {
	rec := httptest.NewRecorder()
	e := &core.RequestEvent{}
	e.Response = rec
	return e, rec
}

func parseTrigger(t *testing.T, rec *httptest.ResponseRecorder) map[string]json.RawMessage {
	t.Helper()
	trigger := rec.Header().Get("HX-Trigger")
	if trigger == "" {
		t.Fatal("expected HX-Trigger header to be set")
	}
	var parsed map[string]json.RawMessage
	if err := json.Unmarshal([]byte(trigger), &parsed); err != nil {
		t.Fatalf("HX-Trigger is not valid JSON: %v", err)
	}
	return parsed
}

func TestSetToast(t *testing.T) {
	tests := []struct {
		name      string
		toastType string
		message   string
	}{
		{"success", "success", "Imported 25 rows into INV/25-26/004"},
		{"error", "error", "Invoice not found"},
		{"quotes and markup", "info", `<b>"INV/25-26/001"</b>`},
		{"unicode", "warning", "Total ₹1,18,000.00"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			SetToast(e, tt.toastType, tt.message)

			var toast toastPayload
			if err := json.Unmarshal(parseTrigger(t, rec)["showToast"], &toast); err != nil {
				t.Fatalf("showToast is not valid JSON: %v", err)
			}
			if toast.Type != tt.toastType || toast.Message != tt.message {
				t.Errorf("got %+v, want type %q message %q", toast, tt.toastType, tt.message)
			}
		})
	}
}

func TestSetToast_KeepsExistingEvents(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", `{"invoiceSaved":{"id":"abc"}}`)

	SetToast(e, "success", "Saved")

	parsed := parseTrigger(t, rec)
	if _, ok := parsed["invoiceSaved"]; !ok {
		t.Error("expected invoiceSaved event to be preserved")
	}
	if _, ok := parsed["showToast"]; !ok {
		t.Error("expected showToast event")
	}
}

func TestSetToast_ReplacesInvalidHeader(t *testing.T) {
	e, rec := newToastEvent()
	rec.Header().Set("HX-Trigger", "invoiceSaved")

	SetToast(e, "error", "Overwritten")

	if _, ok := parseTrigger(t, rec)["showToast"]; !ok {
		t.Error("expected showToast after replacing invalid header")
	}
}

func TestSetToast_FlashCookie(t *testing.T) {
	e, rec := newToastEvent()
	SetToast(e, "success", "Template downloaded")

	var flash *http.Cookie
	for _, c := range rec.Result().Cookies() {
		if c.Name == flashCookieName {
			flash = c
		}
	}
	if flash == nil {
		t.Fatal("expected flash cookie")
	}
	raw, err := url.QueryUnescape(flash.Value)
	if err != nil {
		t.Fatalf("cookie value not query-escaped: %v", err)
	}
	var toast toastPayload
	if err := json.Unmarshal([]byte(raw), &toast); err != nil {
		t.Fatalf("cookie value is not JSON: %v", err)
	}
	if toast.Message != "Template downloaded" {
		t.Errorf("cookie message = %q", toast.Message)
	}
}

func TestErrorToast(t *testing.T) {
	tests := []struct {
		name string
		code int
		msg  string
	}{
		{"bad request", http.StatusBadRequest, "Please select a file to upload"},
		{"not found", http.StatusNotFound, "Invoice not found"},
		{"server error", http.StatusInternalServerError, "Failed to save invoice"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, rec := newToastEvent()
			if err := ErrorToast(e, tt.code, tt.msg); err != nil {
				t.Fatalf("ErrorToast returned error: %v", err)
			}
			if rec.Code != tt.code {
				t.Errorf("status = %d, want %d", rec.Code, tt.code)
			}
			if rec.Body.String() != tt.msg {
				t.Errorf("body = %q, want %q", rec.Body.String(), tt.msg)
			}
			if rec.Header().Get("HX-Reswap") != "none" {
				t.Error("expected HX-Reswap: none")
			}
			var toast toastPayload
			if err := json.Unmarshal(parseTrigger(t, rec)["showToast"], &toast); err != nil {
				t.Fatalf("showToast is not valid JSON: %v", err)
			}
			if toast.Type != "error" {
				t.Errorf("toast type = %q, want error", toast.Type)
			}
		})
	}
}
