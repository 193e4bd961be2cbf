// Package github provides a resilient GitHub REST v3 client for the deck and prefetcher
package github

import (
	"context"
	json "encoding/json/v2"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"
)

// UserByLogin fetches a user by login
func (c *Client) UserByLogin(ctx context.Context, login string) (User, error) {
	var out User
	if err := c.getJSON(ctx, fmt.Sprintf("/users/%s", url.PathEscape(login)), &out); err != nil {
		return User{}, err
	}
	return out, nil
}

// RepoByFullName fetches a repository by owner and name
func (c *Client) RepoByFullName(ctx context.Context, owner, name string) (Repo, error) {
	var out Repo
	p := fmt.Sprintf("/repos/%s/%s", url.PathEscape(owner), url.PathEscape(name))
	if err := c.getJSON(ctx, p, &out); err != nil {
		return Repo{}, err
	}
	return out, nil
}

// SearchRepos runs GET /search/repositories with the given query
func (c *Client) SearchRepos(ctx context.Context, query string, page, perPage int) (SearchRepoResult, error) {
	var out SearchRepoResult
	p := fmt.Sprintf("/search/repositories?q=%s&sort=stars&order=desc&page=%d&per_page=%d",
		url.QueryEscape(query), page, perPage)
	if err := c.getJSON(ctx, p, &out); err != nil {
		return SearchRepoResult{}, err
	}
	return out, nil
}

// SearchUsers runs GET /search/users with the given query
func (c *Client) SearchUsers(ctx context.Context, query string, page, perPage int) (SearchUserResult, error) {
	var out SearchUserResult
	p := fmt.Sprintf("/search/users?q=%s&sort=followers&order=desc&page=%d&per_page=%d",
		url.QueryEscape(query), page, perPage)
	if err := c.getJSON(ctx, p, &out); err != nil {
		return SearchUserResult{}, err
	}
	return out, nil
}

// CoreRateLimit probes GET /rate_limit. The probe itself does not count
// against the core quota, which makes it safe for guard recovery checks
func (c *Client) CoreRateLimit(ctx context.Context) (RateLimit, error) {
	var out struct {
		Resources struct {
			Core struct {
				Limit     int   `json:"limit"`
				Remaining int   `json:"remaining"`
				Reset     int64 `json:"reset"`
			} `json:"core"`
		} `json:"resources"`
	}
	if err := c.getJSON(ctx, "/rate_limit", &out); err != nil {
		return RateLimit{}, err
	}
	rl := RateLimit{
		Limit:     out.Resources.Core.Limit,
		Remaining: out.Resources.Core.Remaining,
	}
	if out.Resources.Core.Reset > 0 {
		rl.ResetAt = time.Unix(out.Resources.Core.Reset, 0).UTC()
	}
	return rl, nil
}

// getJSON issues a GET and decodes the body into out
func (c *Client) getJSON(ctx context.Context, path string, out any) error {
	resp, err := c.Do(ctx, http.MethodGet, path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := resp.Body.Close(); cerr != nil {
			c.log.Error().Err(cerr).Str("path", path).Msg("github close body failed")
		}
	}()

	b, err := io.ReadAll(io.LimitReader(resp.Body, 2<<20))
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}
