// Package fetch retrieves job postings from URLs and turns them into plain
// text suitable for the pipeline.
package fetch

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// DefaultTimeout is the default HTTP request timeout.
const DefaultTimeout = 30 * time.Second

// DefaultUserAgent is the user agent string for HTTP requests.
const DefaultUserAgent = "Mozilla/5.0 (compatible; DeepJobSeek/1.0)"

// noiseSelectors name elements stripped before text extraction.
var noiseSelectors = []string{"script", "style", "noscript", "nav", "header", "footer", "aside", "form"}

var whitespaceRun = regexp.MustCompile(`[ \t]+`)
var blankLines = regexp.MustCompile(`\n{3,}`)

// Error represents a failure while fetching or extracting a posting.
type Error struct {
	URL     string
	Message string
	Cause   error
}

func (e *Error) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("fetch error for %s: %s: %v", e.URL, e.Message, e.Cause)
	}
	return fmt.Sprintf("fetch error for %s: %s", e.URL, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Cause
}

// JobDescription fetches a job posting URL and returns its readable text.
// When useBrowser is true and the HTTP-fetched page yields too little text
// (a JavaScript-rendered SPA), it falls back to headless browser rendering.
func JobDescription(ctx context.Context, urlStr string, useBrowser, verbose bool) (string, error) {
	html, err := fetchHTML(ctx, urlStr)
	if err != nil {
		return "", err
	}

	text, err := ExtractText(html)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "content extraction failed", Cause: err}
	}

	if useBrowser && ShouldUseBrowser(text) {
		browserHTML, browserErr := renderWithBrowser(ctx, urlStr, verbose)
		if browserErr == nil {
			if browserText, extractErr := ExtractText(browserHTML); extractErr == nil {
				text = browserText
			}
		}
		// On browser failure the HTTP content is kept as a best effort.
	}

	return text, nil
}

// ExtractText strips noise elements from an HTML document and returns the
// collapsed body text.
func ExtractText(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(strings.Join(noiseSelectors, ", ")).Remove()

	text := doc.Find("body").Text()
	if text == "" {
		text = doc.Text()
	}

	// Collapse runs of whitespace while keeping paragraph breaks.
	lines := strings.Split(text, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSpace(whitespaceRun.ReplaceAllString(line, " "))
	}
	cleaned := blankLines.ReplaceAllString(strings.Join(lines, "\n"), "\n\n")
	return strings.TrimSpace(cleaned), nil
}

// fetchHTML retrieves the raw HTML for a URL.
func fetchHTML(ctx context.Context, urlStr string) (string, error) {
	parsed, err := url.Parse(urlStr)
	if err != nil || parsed.Scheme == "" || parsed.Host == "" {
		return "", &Error{URL: urlStr, Message: "invalid URL", Cause: err}
	}

	client := &http.Client{Timeout: DefaultTimeout}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, urlStr, nil)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to create request", Cause: err}
	}
	req.Header.Set("User-Agent", DefaultUserAgent)

	resp, err := client.Do(req)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "HTTP request failed", Cause: err}
	}
	defer func() { _ = resp.Body.Close() }()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", &Error{URL: urlStr, Message: "failed to read response body", Cause: err}
	}

	if resp.StatusCode != http.StatusOK {
		return "", &Error{URL: urlStr, Message: fmt.Sprintf("HTTP status %d", resp.StatusCode)}
	}

	return string(body), nil
}
