package httpadapter

import (
	"bytes"
	"net/http"
	"strings"

	"github.com/a-h/templ"
)

// hxRequestHeader is set by HTMX on every request it issues.
const hxRequestHeader = "HX-Request"

// responseBuffer captures component rendering for HTMX responses.
type responseBuffer struct {
	header      http.Header
	statusCode  int
	body        bytes.Buffer
	headerWrote bool
}

func newResponseBuffer() *responseBuffer {
	return &responseBuffer{header: make(http.Header), statusCode: http.StatusOK}
}

func (w *responseBuffer) Header() http.Header { return w.header }

func (w *responseBuffer) WriteHeader(status int) {
	if w.headerWrote {
		return
	}
	w.headerWrote = true
	w.statusCode = status
}

func (w *responseBuffer) Write(body []byte) (int, error) {
	return w.body.Write(body)
}

// isHTMXRequest reports whether the request was initiated by HTMX.
func isHTMXRequest(r *http.Request) bool {
	if r == nil {
		return false
	}
	return strings.EqualFold(r.Header.Get(hxRequestHeader), "true")
}

// renderPage writes page for normal requests. For HTMX requests only the
// content of its <main> element is written, which the client swaps in place.
func renderPage(w http.ResponseWriter, r *http.Request, page templ.Component) {
	if !isHTMXRequest(r) {
		templ.Handler(page).ServeHTTP(w, r)
		return
	}

	capture := newResponseBuffer()
	templ.Handler(page).ServeHTTP(capture, r)

	body := capture.body.Bytes()
	if main, ok := extractMainContent(body); ok {
		body = main
	}
	for key, values := range capture.Header() {
		for _, value := range values {
			w.Header().Set(key, value)
		}
	}
	if capture.statusCode != http.StatusOK {
		w.WriteHeader(capture.statusCode)
	}
	_, _ = w.Write(body)
}

// renderFragment writes a partial component as is.
func renderFragment(w http.ResponseWriter, r *http.Request, fragment templ.Component) {
	templ.Handler(fragment).ServeHTTP(w, r)
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
