// Package terms fetches the hosted terms-and-conditions and privacy
// pages and reduces them to readable text for the terminal.
package terms

import (
	"bytes"
	"fmt"
	"io"
	"net/http"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const (
	PathTerms   = "terms"
	PathPrivacy = "privacy"
)

type Page struct {
	Title string
	Text  string
}

type Fetcher struct {
	termsURL   string
	privacyURL string
	maxBytes   int
	httpc      *http.Client
}

func NewFetcher(termsURL, privacyURL string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 20 * time.Second
	}
	return &Fetcher{
		termsURL:   termsURL,
		privacyURL: privacyURL,
		maxBytes:   1500000,
		httpc:      &http.Client{Timeout: timeout},
	}
}

// Fetch resolves the route parameter ("terms" or "privacy") to its URL
// and extracts the main text.
func (f *Fetcher) Fetch(path string) (Page, error) {
	var u string
	switch path {
	case PathTerms:
		u = f.termsURL
	case PathPrivacy:
		u = f.privacyURL
	default:
		return Page{}, fmt.Errorf("unknown page %q", path)
	}
	return f.fetchMainText(u)
}

func (f *Fetcher) fetchMainText(u string) (Page, error) {
	resp, err := f.httpc.Get(u)
	if err != nil {
		return Page{}, err
	}
	defer resp.Body.Close()
	if resp.ContentLength > 0 && resp.ContentLength > int64(f.maxBytes) {
		return Page{}, fmt.Errorf("page too large")
	}
	limited := io.LimitedReader{R: resp.Body, N: int64(f.maxBytes)}
	b, err := io.ReadAll(&limited)
	if err != nil {
		return Page{}, err
	}
	ct := strings.ToLower(resp.Header.Get("Content-Type"))
	if strings.Contains(ct, "text/plain") {
		text := string(b)
		return Page{Title: firstLine(text), Text: text}, nil
	}
	if !strings.Contains(ct, "text/html") {
		return Page{}, fmt.Errorf("unsupported content-type: %s", ct)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(b))
	if err != nil {
		return Page{}, err
	}
	title := strings.TrimSpace(doc.Find("title").First().Text())

	// main/article first, whole document as fallback
	var parts []string
	sel := doc.Find("main, article")
	if sel.Length() == 0 {
		sel = doc.Selection
	}
	sel.Find("h1,h2,h3,p,li").Each(func(_ int, s *goquery.Selection) {
		t := strings.TrimSpace(s.Text())
		if len(t) > 0 {
			parts = append(parts, t)
		}
	})
	return Page{Title: title, Text: cleanWhitespace(strings.Join(parts, "\n"))}, nil
}

var wsRX = regexp.MustCompile(`\s+\n`)

func cleanWhitespace(s string) string {
	s = strings.ReplaceAll(s, "\r", "")
	return wsRX.ReplaceAllString(s, "\n")
}

func firstLine(s string) string {
	line := strings.SplitN(strings.TrimSpace(s), "\n", 2)[0]
	if len(line) > 120 {
		line = line[:120]
	}
	return line
}
