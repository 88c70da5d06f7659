package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	gh "github.com/google/go-github/v57/github"
	"go.uber.org/zap"
	"golang.org/x/oauth2"

	"ghscout/internal/domain"
)

// DefaultBaseURL is the public GitHub REST API
const DefaultBaseURL = "https://api.github.com/"

// Options configures a Client
type Options struct {
	BaseURL    string // defaults to DefaultBaseURL
	Token      string // optional; requests are anonymous when empty
	UserAgent  string
	HTTPClient *http.Client // used as the transport base; defaults to http.DefaultClient
	Logger     *zap.Logger
}

// Client reads accounts and repositories from the GitHub REST API
type Client struct {
	gh  *gh.Client
	log *zap.Logger
}

// NewClient creates a new GitHub API client
func NewClient(opts Options) (*Client, error) {
	httpClient := opts.HTTPClient
	if opts.Token != "" {
		ctx := context.Background()
		if httpClient != nil {
			ctx = context.WithValue(ctx, oauth2.HTTPClient, httpClient)
		}
		ts := oauth2.StaticTokenSource(&oauth2.Token{AccessToken: opts.Token})
		httpClient = oauth2.NewClient(ctx, ts)
	}

	client := gh.NewClient(httpClient)

	if opts.BaseURL != "" {
		base := opts.BaseURL
		if !strings.HasSuffix(base, "/") {
			base += "/"
		}
		u, err := url.Parse(base)
		if err != nil {
			return nil, fmt.Errorf("invalid base URL %q: %w", opts.BaseURL, err)
		}
		client.BaseURL = u
	}
	if opts.UserAgent != "" {
		client.UserAgent = opts.UserAgent
	}

	log := opts.Logger
	if log == nil {
		log = zap.NewNop()
	}

	return &Client{gh: client, log: log.Named("github")}, nil
}

// BaseURL returns the API root the client talks to
func (c *Client) BaseURL() string {
	return c.gh.BaseURL.String()
}

// SearchAccounts searches accounts by name, returning at most limit results in
// the order GitHub ranks them
func (c *Client) SearchAccounts(ctx context.Context, query string, limit int) ([]domain.Account, error) {
	opts := &gh.SearchOptions{ListOptions: gh.ListOptions{PerPage: limit}}

	c.log.Debug("searching accounts", zap.String("query", query), zap.Int("limit", limit))
	result, _, err := c.gh.Search.Users(ctx, query, opts)
	if err != nil {
		return nil, classify(err)
	}

	accounts := make([]domain.Account, 0, len(result.Users))
	for _, u := range result.Users {
		accounts = append(accounts, convertUser(u))
	}
	return accounts, nil
}

// ListRepositories fetches the repository listing at reposURL, as returned in
// an account's repos_url
func (c *Client) ListRepositories(ctx context.Context, reposURL string) ([]domain.Repository, error) {
	req, err := c.gh.NewRequest(http.MethodGet, reposURL, nil)
	if err != nil {
		return nil, &TransportError{Err: err}
	}

	c.log.Debug("listing repositories", zap.String("url", reposURL))
	var repos []*gh.Repository
	if _, err := c.gh.Do(ctx, req, &repos); err != nil {
		return nil, classify(err)
	}

	out := make([]domain.Repository, 0, len(repos))
	for _, r := range repos {
		out = append(out, convertRepository(r))
	}
	return out, nil
}

// classify maps go-github errors onto StatusError or TransportError
func classify(err error) error {
	var errResp *gh.ErrorResponse
	if errors.As(err, &errResp) && errResp.Response != nil {
		return newStatusError(errResp.Response)
	}
	var rateErr *gh.RateLimitError
	if errors.As(err, &rateErr) && rateErr.Response != nil {
		return newStatusError(rateErr.Response)
	}
	var abuseErr *gh.AbuseRateLimitError
	if errors.As(err, &abuseErr) && abuseErr.Response != nil {
		return newStatusError(abuseErr.Response)
	}
	return &TransportError{Err: err}
}

func convertUser(u *gh.User) domain.Account {
	return domain.Account{
		ID:              u.GetID(),
		Login:           u.GetLogin(),
		RepositoriesURL: u.GetReposURL(),
	}
}

func convertRepository(r *gh.Repository) domain.Repository {
	return domain.Repository{
		ID:          r.GetID(),
		Name:        r.GetName(),
		Description: r.Description,
		StarCount:   r.GetStargazersCount(),
	}
}
