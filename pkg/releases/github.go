package releases

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

const latestReleaseURL = "https://api.github.com/repos/hogwash-io/hogwash/releases/latest"

// Release represents a release of hogwash.
type Release struct {
	// Version is the version of the release.
	Version string

	// PublishedAt is the time at which the release was published.
	PublishedAt time.Time

	// ViewURL is the URL at which the release can be viewed.
	ViewURL string
}

type githubRelease struct {
	TagName     string    `json:"tag_name"`
	PublishedAt time.Time `json:"published_at"`
	HTMLURL     string    `json:"html_url"`
}

// GetLatestRelease returns the latest release of hogwash, as reported by the
// GitHub API.
func GetLatestRelease(ctx context.Context) (*Release, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, latestReleaseURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create latest release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to request the latest release: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("unexpected latest release response: %d", resp.StatusCode)
	}

	var release githubRelease
	if err := json.NewDecoder(resp.Body).Decode(&release); err != nil {
		return nil, fmt.Errorf("failed to decode the latest release: %w", err)
	}

	return &Release{
		Version:     release.TagName,
		PublishedAt: release.PublishedAt,
		ViewURL:     release.HTMLURL,
	}, nil
}
