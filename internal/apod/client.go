// Package apod is a client for NASA's Astronomy Picture of the Day API.
// It performs the two reads a frame render needs: the metadata query and
// the image download. Every failure is terminal for the invocation.
package apod

import (
	"bytes"
	"context"
	"encoding/json"
	"image"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"golang.org/x/time/rate"

	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder

	_ "golang.org/x/image/webp" // register WebP decoder
)

const defaultBaseURL = "https://api.nasa.gov"

// EnvKeyName is the secret name resolved through the host's env-key loader.
const EnvKeyName = "NASA_SECRET"

// maxImageBytes caps the image download read. APOD hi-res images run to a
// few tens of megabytes at most.
const maxImageBytes = 32 << 20

// KeyLoader resolves a named secret from the host. An empty string means
// the secret is not configured.
type KeyLoader interface {
	LoadEnvKey(name string) string
}

// Metadata is the APOD API response for a single day.
type Metadata struct {
	MediaType   string `json:"media_type"`
	URL         string `json:"url"`
	HDURL       string `json:"hdurl,omitempty"`
	Title       string `json:"title,omitempty"`
	Copyright   string `json:"copyright,omitempty"`
	Date        string `json:"date,omitempty"`
	Explanation string `json:"explanation,omitempty"`
}

// ImageURL returns the high-resolution URL when the API provided one,
// else the standard display URL.
func (m *Metadata) ImageURL() string {
	if m.HDURL != "" {
		return m.HDURL
	}
	return m.URL
}

// Client talks to the APOD API and the image host it points at.
type Client struct {
	client  *http.Client
	limiter *rate.Limiter
	keys    KeyLoader
	logger  *slog.Logger
	baseURL string
}

// New creates a client for the production APOD endpoint.
func New(keys KeyLoader, logger *slog.Logger) *Client {
	return NewWithBaseURL(keys, logger, defaultBaseURL)
}

// NewWithBaseURL creates a client with a custom base URL (for testing).
func NewWithBaseURL(keys KeyLoader, logger *slog.Logger, baseURL string) *Client {
	return &Client{
		client:  &http.Client{Timeout: 10 * time.Second},
		// Burst 2 covers the metadata read and the image read of one
		// generation without an artificial pause between them.
		limiter: rate.NewLimiter(1, 2),
		keys:    keys,
		logger:  logger.With(slog.String("component", "apod")),
		baseURL: strings.TrimRight(baseURL, "/"),
	}
}

// Fetch queries metadata for the given date ("" lets the server default to
// today). It fails before any network traffic when the API key is missing,
// and rejects non-image media so the caller never downloads a video poster.
func (c *Client) Fetch(ctx context.Context, date string) (*Metadata, error) {
	apiKey := c.keys.LoadEnvKey(EnvKeyName)
	if apiKey == "" {
		return nil, &ErrKeyNotConfigured{Key: EnvKeyName}
	}

	q := url.Values{}
	q.Set("api_key", apiKey)
	if date != "" {
		q.Set("date", date)
	}

	body, err := c.get(ctx, c.baseURL+"/planetary/apod?"+q.Encode(), "metadata fetch")
	if err != nil {
		return nil, err
	}

	var meta Metadata
	if err := json.Unmarshal(body, &meta); err != nil {
		return nil, &ErrUpstream{Detail: "decoding metadata", Cause: err}
	}
	if meta.MediaType != "image" {
		return nil, &ErrNotImage{MediaType: meta.MediaType}
	}

	c.logger.Debug("APOD metadata",
		slog.String("date", meta.Date),
		slog.String("title", meta.Title))
	return &meta, nil
}

// FetchImage downloads and decodes the image at rawURL.
func (c *Client) FetchImage(ctx context.Context, rawURL string) (image.Image, error) {
	body, err := c.get(ctx, rawURL, "image fetch")
	if err != nil {
		return nil, err
	}

	img, _, err := image.Decode(bytes.NewReader(body))
	if err != nil {
		return nil, &ErrDecode{Cause: err}
	}
	return img, nil
}

// get performs one rate-limited GET and returns the response body.
// Any failure maps to ErrUpstream tagged with detail.
func (c *Client) get(ctx context.Context, rawURL, detail string) ([]byte, error) {
	if err := c.limiter.Wait(ctx); err != nil {
		return nil, &ErrUpstream{Detail: detail, Cause: err}
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, &ErrUpstream{Detail: detail, Cause: err}
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, &ErrUpstream{Detail: detail, Cause: err}
	}
	defer resp.Body.Close() //nolint:errcheck

	if resp.StatusCode != http.StatusOK {
		snippet, _ := io.ReadAll(io.LimitReader(resp.Body, 4<<10))
		c.logger.Error("APOD request failed",
			slog.String("detail", detail),
			slog.Int("status", resp.StatusCode),
			slog.String("body", string(snippet)))
		return nil, &ErrUpstream{Status: resp.StatusCode, Detail: detail}
	}

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxImageBytes))
	if err != nil {
		return nil, &ErrUpstream{Detail: detail, Cause: err}
	}
	return body, nil
}
