package captions

import (
	"context"
	"encoding/xml"
	"fmt"
	"html"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Fetcher retrieves the caption track of a video as plain text.
type Fetcher interface {
	Fetch(ctx context.Context, videoID string) (string, error)
}

// TimedTextFetcher pulls captions from the YouTube timedtext endpoint.
// BaseURL is overridable for tests.
type TimedTextFetcher struct {
	BaseURL    string
	Lang       string
	HTTPClient *http.Client
}

func NewTimedTextFetcher(timeout time.Duration) *TimedTextFetcher {
	if timeout <= 0 {
		timeout = 15 * time.Second
	}
	return &TimedTextFetcher{
		Lang:       "en",
		HTTPClient: &http.Client{Timeout: timeout},
	}
}

type transcript struct {
	Texts []struct {
		Body string `xml:",chardata"`
	} `xml:"text"`
}

// Fetch downloads and flattens the caption track. An empty track is an
// error so pipelines never research against nothing.
func (f *TimedTextFetcher) Fetch(ctx context.Context, videoID string) (string, error) {
	base := f.BaseURL
	if base == "" {
		base = "https://video.google.com"
	}
	lang := f.Lang
	if lang == "" {
		lang = "en"
	}
	endpoint := fmt.Sprintf("%s/timedtext?lang=%s&v=%s", base, lang, url.QueryEscape(videoID))
	req, err := http.NewRequestWithContext(ctx, "GET", endpoint, nil)
	if err != nil {
		return "", err
	}
	resp, err := f.HTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch captions: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("timedtext returned status: %d", resp.StatusCode)
	}
	var t transcript
	if err := xml.NewDecoder(resp.Body).Decode(&t); err != nil {
		return "", fmt.Errorf("failed to parse captions: %w", err)
	}
	var parts []string
	for _, line := range t.Texts {
		text := strings.TrimSpace(html.UnescapeString(line.Body))
		if text != "" {
			parts = append(parts, text)
		}
	}
	if len(parts) == 0 {
		return "", fmt.Errorf("no captions available for video %s", videoID)
	}
	return strings.Join(parts, " "), nil
}

// VideoID extracts the video id from a watch URL, a youtu.be short
// link, a shorts URL or a bare id.
func VideoID(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty video reference")
	}
	if !strings.Contains(raw, "/") && !strings.Contains(raw, "?") {
		return raw, nil
	}
	u, err := url.Parse(raw)
	if err != nil {
		return "", fmt.Errorf("invalid video url: %w", err)
	}
	if v := u.Query().Get("v"); v != "" {
		return v, nil
	}
	path := strings.Trim(u.Path, "/")
	if strings.HasPrefix(path, "shorts/") || strings.HasPrefix(path, "embed/") {
		parts := strings.SplitN(path, "/", 2)
		if len(parts) == 2 && parts[1] != "" {
			return parts[1], nil
		}
	}
	if strings.Contains(u.Host, "youtu.be") && path != "" {
		return path, nil
	}
	return "", fmt.Errorf("could not extract video id from %q", raw)
}
