// Package covers looks up book cover images from an external volume
// search API. The lookup is strictly best-effort: every failure mode
// degrades to "no cover image" and is never surfaced as an error.
package covers

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client fetches cover image URLs from a Google-Books-style search API.
type Client struct {
	httpClient *http.Client
	baseURL    string
}

// NewClient creates a cover lookup client with a bounded request timeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	return &Client{
		httpClient: &http.Client{
			Timeout: timeout,
		},
		baseURL: baseURL,
	}
}

// FetchCoverImage looks up the first matching volume for a title and
// returns its thumbnail URL. Timeouts, non-2xx responses, malformed
// bodies, empty result sets, and items without an image link all return
// the empty string.
func (c *Client) FetchCoverImage(ctx context.Context, title string) string {
	if strings.TrimSpace(title) == "" {
		return ""
	}

	searchURL := fmt.Sprintf("%s/volumes?q=%s", c.baseURL, url.QueryEscape("intitle:"+title))
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, searchURL, nil)
	if err != nil {
		return ""
	}
	req.Header.Set("User-Agent", "Libris/1.0 (https://github.com/libris-project/libris)")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		log.Printf("Cover lookup for %q failed: %v", title, err)
		return ""
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		log.Printf("Cover lookup for %q returned status %d", title, resp.StatusCode)
		return ""
	}

	var result volumeSearchResult
	if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
		log.Printf("Cover lookup for %q returned a malformed body: %v", title, err)
		return ""
	}

	if len(result.Items) == 0 {
		return ""
	}

	return result.Items[0].VolumeInfo.ImageLinks.Thumbnail
}

// Volume search API response types (internal)

type volumeSearchResult struct {
	TotalItems int          `json:"totalItems"`
	Items      []volumeItem `json:"items"`
}

type volumeItem struct {
	VolumeInfo volumeInfo `json:"volumeInfo"`
}

type volumeInfo struct {
	Title      string     `json:"title"`
	ImageLinks imageLinks `json:"imageLinks"`
}

type imageLinks struct {
	SmallThumbnail string `json:"smallThumbnail"`
	Thumbnail      string `json:"thumbnail"`
}
