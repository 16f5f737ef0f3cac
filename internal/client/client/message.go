package client

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/dmitrijs2005/recipeshare/internal/client/models"
)

// extractMessage finds the user-facing text of an error response. JSON bodies
// carry it in "message" (or "error"); proxies and framework error pages are
// HTML, where the heading or title is used. The status text is the fallback.
func extractMessage(contentType string, body []byte, status int) string {
	body = bytes.TrimSpace(body)

	var m models.MessageResponse
	if json.Unmarshal(body, &m) == nil {
		if s := strings.TrimSpace(m.Message); s != "" {
			return s
		}
		if s := strings.TrimSpace(m.Error); s != "" {
			return s
		}
	}

	if strings.Contains(contentType, "html") || bytes.HasPrefix(body, []byte("<")) {
		if s := htmlMessage(body); s != "" {
			return s
		}
	}

	if s := http.StatusText(status); s != "" {
		return s
	}
	return "request failed"
}

func htmlMessage(body []byte) string {
	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(body))
	if err != nil {
		return ""
	}
	for _, sel := range []string{"h1", "title"} {
		if s := strings.Join(strings.Fields(doc.Find(sel).First().Text()), " "); s != "" {
			return s
		}
	}
	return ""
}
