//go:build e2e && unix

package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// APIOption configures the fake GitHub API
type APIOption func(*apiOptions)

type apiOptions struct {
	accounts []string
	failing  map[string]bool
	repos    map[string][]string // login -> repository names
}

// WithAccounts sets the logins every search returns, in order
func WithAccounts(logins ...string) APIOption {
	return func(opts *apiOptions) {
		opts.accounts = logins
	}
}

// WithFailingRepos makes the repository listing of login answer 404
func WithFailingRepos(login string) APIOption {
	return func(opts *apiOptions) {
		opts.failing[login] = true
	}
}

// WithRepos sets the repositories listed for login
func WithRepos(login string, names ...string) APIOption {
	return func(opts *apiOptions) {
		opts.repos[login] = names
	}
}

// FakeAPI is an in-process stand-in for api.github.com
type FakeAPI struct {
	*httptest.Server

	mu        sync.Mutex
	repoCalls map[string]int
}

// RepoCalls returns how often login's repositories were listed
func (f *FakeAPI) RepoCalls(login string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.repoCalls[login]
}

// StartFakeAPI serves the search and repository endpoints the app uses.
// A search for "nobody" finds no accounts and a search for "broken" fails.
func (tf *TUITestFramework) StartFakeAPI(options ...APIOption) *FakeAPI {
	opts := &apiOptions{
		failing: map[string]bool{},
		repos:   map[string][]string{},
	}
	for _, opt := range options {
		opt(opts)
	}

	api := &FakeAPI{repoCalls: map[string]int{}}
	mux := http.NewServeMux()
	mux.HandleFunc("/search/users", func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query().Get("q")
		if q == "broken" {
			w.WriteHeader(http.StatusInternalServerError)
			return
		}
		items := []string{}
		if q != "nobody" {
			for i, login := range opts.accounts {
				items = append(items, fmt.Sprintf(`{"id":%d,"login":%q,"repos_url":"%s/users/%s/repos"}`,
					i+1, login, api.URL, login))
			}
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, `{"total_count":%d,"items":[%s]}`, len(items), strings.Join(items, ","))
	})
	mux.HandleFunc("/users/", func(w http.ResponseWriter, r *http.Request) {
		login := strings.TrimSuffix(strings.TrimPrefix(r.URL.Path, "/users/"), "/repos")
		api.mu.Lock()
		api.repoCalls[login]++
		api.mu.Unlock()

		if opts.failing[login] {
			w.WriteHeader(http.StatusNotFound)
			return
		}
		items := []string{}
		for i, name := range opts.repos[login] {
			items = append(items, fmt.Sprintf(`{"id":%d,"name":%q,"description":"about %s","stargazers_count":%d}`,
				i+1, name, name, i*10))
		}
		w.Header().Set("Content-Type", "application/json")
		fmt.Fprintf(w, "[%s]", strings.Join(items, ","))
	})

	api.Server = httptest.NewServer(mux)
	tf.t.Cleanup(api.Close)
	return api
}

// CreateTestWorkspace creates a temporary home with a config file pointing
// at api
func (tf *TUITestFramework) CreateTestWorkspace(api *FakeAPI) (string, error) {
	tmpDir := tf.t.TempDir()
	tf.workspace = tmpDir

	configPath := filepath.Join(tmpDir, "config.toml")
	content := fmt.Sprintf(`version = 1
api_base_url = %q
result_limit = 5
log_file = %q

[ui]
show_descriptions = true
alt_screen = false
`, api.URL, filepath.Join(tmpDir, "ghscout.log"))
	if err := os.WriteFile(configPath, []byte(content), 0600); err != nil {
		return "", err
	}
	tf.configPath = configPath
	return tmpDir, nil
}
