package fetcher

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	readability "github.com/go-shiori/go-readability"
)

const userAgent = "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/120.0.0.0 Safari/537.36"

// PageMetadata is what we can prefill from a documentation page.
type PageMetadata struct {
	Title       string
	Description string
	SiteName    string
	Excerpt     string
}

// PageFetcher pulls documentation pages and extracts their metadata.
type PageFetcher struct {
	client *http.Client
}

func NewPageFetcher(timeout time.Duration) *PageFetcher {
	return &PageFetcher{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// FetchMetadata downloads the page and extracts title, description and
// site name from its meta tags, with a readability pass for the excerpt.
func (s *PageFetcher) FetchMetadata(ctx context.Context, url string) (*PageMetadata, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "text/html,application/xhtml+xml,application/xml;q=0.9,*/*;q=0.8")

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetch page: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected status: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return nil, fmt.Errorf("read body: %w", err)
	}

	meta := &PageMetadata{}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(string(body)))
	if err == nil {
		meta.Title = strings.TrimSpace(doc.Find("title").First().Text())
		if v, ok := doc.Find(`meta[property="og:title"]`).Attr("content"); ok && v != "" {
			meta.Title = v
		}
		if v, ok := doc.Find(`meta[name="description"]`).Attr("content"); ok {
			meta.Description = v
		}
		if v, ok := doc.Find(`meta[property="og:description"]`).Attr("content"); ok && v != "" {
			meta.Description = v
		}
		if v, ok := doc.Find(`meta[property="og:site_name"]`).Attr("content"); ok {
			meta.SiteName = v
		}
	}

	if article, err := readability.FromReader(strings.NewReader(string(body)), nil); err == nil {
		meta.Excerpt = strings.TrimSpace(article.Excerpt)
		if meta.Title == "" {
			meta.Title = article.Title
		}
		if meta.SiteName == "" {
			meta.SiteName = article.SiteName
		}
	}

	return meta, nil
}
