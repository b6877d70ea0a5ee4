// internal/app/github/client.go

// Package github fetches a user's public repositories for the profile
// page. It is a pass-through lookup: any failure to produce a repo list
// (network error, unknown user, rate limit) surfaces as the not-found
// domain error rather than leaking transport details.
package github

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/dalemusser/devlink/internal/domain/apperr"
	"golang.org/x/oauth2"
)

const defaultBaseURL = "https://api.github.com"

// Repo is the subset of the GitHub repository payload the profile page
// shows.
type Repo struct {
	Name        string `json:"name"`
	HTMLURL     string `json:"html_url"`
	Description string `json:"description"`
	Stars       int    `json:"stargazers_count"`
	Watchers    int    `json:"watchers_count"`
	Forks       int    `json:"forks_count"`
}

type Client struct {
	http    *http.Client
	baseURL string
}

// New builds a client. With a token the requests are authenticated through
// an oauth2 static token source (higher rate limits); without one they go
// out anonymously.
func New(token string) *Client {
	hc := &http.Client{Timeout: 10 * time.Second}
	if token != "" {
		src := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: token})
		hc = oauth2.NewClient(context.Background(), src)
		hc.Timeout = 10 * time.Second
	}
	return &Client{http: hc, baseURL: defaultBaseURL}
}

// NewWithBaseURL points the client at a fake server. Test helper only.
func NewWithBaseURL(baseURL string) *Client {
	return &Client{http: &http.Client{Timeout: 10 * time.Second}, baseURL: baseURL}
}

// ListRepos returns the user's five most recently created public repos.
func (c *Client) ListRepos(ctx context.Context, username string) ([]Repo, error) {
	u := fmt.Sprintf("%s/users/%s/repos?per_page=5&sort=created:asc", c.baseURL, url.PathEscape(username))

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return nil, apperr.Persistence("build github request", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")

	res, err := c.http.Do(req)
	if err != nil {
		return nil, apperr.NotFound("no github profile found")
	}
	defer res.Body.Close()

	if res.StatusCode != http.StatusOK {
		return nil, apperr.NotFound("no github profile found")
	}

	var repos []Repo
	if err := json.NewDecoder(res.Body).Decode(&repos); err != nil {
		return nil, apperr.NotFound("no github profile found")
	}
	return repos, nil
}
