package fetch

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExtractText_StripsNoiseElements(t *testing.T) {
	html := `<html><head><script>var tracking = true;</script><style>.x{}</style></head>
	<body>
	<nav>Home | Jobs</nav>
	<h1>Senior Python Developer</h1>
	<p>We need 5+ years of Python and Flask experience.</p>
	<footer>© Example Corp</footer>
	</body></html>`

	text, err := ExtractText(html)

	require.NoError(t, err)
	assert.Contains(t, text, "Senior Python Developer")
	assert.Contains(t, text, "Flask experience")
	assert.NotContains(t, text, "tracking")
	assert.NotContains(t, text, "Home | Jobs")
	assert.NotContains(t, text, "Example Corp")
}

func TestExtractText_CollapsesWhitespace(t *testing.T) {
	html := "<body><p>Python    Developer</p>\n\n\n\n<p>Remote    role</p></body>"

	text, err := ExtractText(html)

	require.NoError(t, err)
	assert.NotContains(t, text, "    ")
	assert.NotContains(t, text, "\n\n\n")
}

func TestJobDescription_FetchesAndExtracts(t *testing.T) {
	var gotUserAgent string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUserAgent = r.Header.Get("User-Agent")
		fmt.Fprint(w, "<body><h1>Backend Engineer</h1><p>Go and PostgreSQL.</p></body>")
	}))
	defer ts.Close()

	text, err := JobDescription(context.Background(), ts.URL, false, false)

	require.NoError(t, err)
	assert.Contains(t, text, "Backend Engineer")
	assert.Equal(t, DefaultUserAgent, gotUserAgent)
}

func TestJobDescription_NonOKStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer ts.Close()

	_, err := JobDescription(context.Background(), ts.URL, false, false)

	require.Error(t, err)
	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Contains(t, fetchErr.Message, "404")
}

func TestJobDescription_InvalidURL(t *testing.T) {
	_, err := JobDescription(context.Background(), "not a url", false, false)

	var fetchErr *Error
	require.ErrorAs(t, err, &fetchErr)
	assert.Equal(t, "invalid URL", fetchErr.Message)
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short page"))
	assert.True(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength-1)))
	assert.False(t, ShouldUseBrowser(strings.Repeat("x", MinContentLength)))
}
