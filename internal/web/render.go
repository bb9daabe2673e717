package web

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// HXRequestHeader marks requests that only want the main content swapped.
const HXRequestHeader = "HX-Request"

// isPartialRequest reports whether the request was initiated by HTMX.
func isPartialRequest(r *http.Request) bool {
	return r != nil && strings.EqualFold(r.Header.Get(HXRequestHeader), "true")
}

// renderPage renders full for normal requests. Partial requests get only the
// content of its <main> element.
func renderPage(w http.ResponseWriter, r *http.Request, status int, full templ.Component) {
	if !isPartialRequest(r) {
		templ.Handler(full, templ.WithStatus(status)).ServeHTTP(w, r)
		return
	}

	var buf bytes.Buffer
	if err := full.Render(r.Context(), &buf); err != nil {
		http.Error(w, "failed to render page", http.StatusInternalServerError)
		return
	}
	body := buf.Bytes()
	if main, ok := extractMainContent(body); ok {
		body = main
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}

func extractMainContent(body []byte) ([]byte, bool) {
	start := bytes.Index(body, []byte("<main"))
	if start < 0 {
		return nil, false
	}
	openClose := bytes.Index(body[start:], []byte(">"))
	if openClose < 0 {
		return nil, false
	}
	contentStart := start + openClose + 1
	end := bytes.LastIndex(body[contentStart:], []byte("</main>"))
	if end < 0 {
		return nil, false
	}
	return body[contentStart : contentStart+end], true
}
