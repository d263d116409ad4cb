package terms_test

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"krishi/pkg/terms"
)

const termsHTML = `<!doctype html>
<html><head><title>KrishiAadhar Terms and Conditions</title></head>
<body>
<nav><li>Home</li><li>About</li></nav>
<main>
<h1>Terms and Conditions</h1>
<p>By using the platform you agree to these terms.</p>
<h2>Service Requests</h2>
<p>Requests are forwarded to verified providers.</p>
<ul><li>Smart irrigation</li><li>Drone spraying</li></ul>
</main>
</body></html>`

const privacyHTML = `<html><head><title>Privacy Policy</title></head>
<body><p>We store your phone number and farm location.</p></body></html>`

func newSite(t *testing.T) *httptest.Server {
	t.Helper()
	mux := http.NewServeMux()
	mux.HandleFunc("/terms", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write([]byte(termsHTML))
	})
	mux.HandleFunc("/privacy", func(w http.ResponseWriter, _ *http.Request) {
		w.Header().Set("Content-Type", "text/html")
		w.Write([]byte(privacyHTML))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func TestFetchTermsExtractsMainText(t *testing.T) {
	site := newSite(t)
	f := terms.NewFetcher(site.URL+"/terms", site.URL+"/privacy", 5*time.Second)

	page, err := f.Fetch(terms.PathTerms)
	require.NoError(t, err)
	require.Equal(t, "KrishiAadhar Terms and Conditions", page.Title)
	require.Contains(t, page.Text, "Terms and Conditions")
	require.Contains(t, page.Text, "Drone spraying")
	// nav chrome outside <main> is skipped
	require.NotContains(t, page.Text, "Home")
}

func TestFetchPrivacyFallsBackToWholeDocument(t *testing.T) {
	site := newSite(t)
	f := terms.NewFetcher(site.URL+"/terms", site.URL+"/privacy", 5*time.Second)

	page, err := f.Fetch(terms.PathPrivacy)
	require.NoError(t, err)
	require.Equal(t, "Privacy Policy", page.Title)
	require.Contains(t, page.Text, "farm location")
}

func TestFetchUnknownPage(t *testing.T) {
	f := terms.NewFetcher("http://x", "http://y", time.Second)
	_, err := f.Fetch("cookies")
	require.Error(t, err)
}
