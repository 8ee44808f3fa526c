package cli_test

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rshade/userdir/internal/cli"
	"github.com/rshade/userdir/internal/config"
)

// isolateCLI points the config dir at a temp dir and quiets logging.
func isolateCLI(t *testing.T) {
	t.Helper()
	t.Setenv("USERDIR_HOME", t.TempDir())
	t.Setenv("USERDIR_LOGGING_LEVEL", "error")
	t.Cleanup(config.ResetGlobalConfigForTest)
}

// usersFixture returns n users named "User 01".."User n" with one Smith at index 3.
func usersFixture(n int) []map[string]any {
	users := make([]map[string]any, n)
	for i := range users {
		name := fmt.Sprintf("User %02d", i+1)
		email := fmt.Sprintf("user%02d@example.com", i+1)
		if i == 3 {
			name = "John Smith"
			email = "smith@example.org"
		}
		users[i] = map[string]any{
			"id":      i + 1,
			"name":    name,
			"email":   email,
			"phone":   fmt.Sprintf("555-01%02d", i+1),
			"company": map[string]any{"name": fmt.Sprintf("Company %02d", i+1)},
		}
	}
	return users
}

// newUsersAPI serves the fixture at /users. A non-200 status serves an error body.
func newUsersAPI(t *testing.T, status int, users []map[string]any) (string, *atomic.Int32) {
	t.Helper()
	var hits atomic.Int32
	r := chi.NewRouter()
	r.Get("/users", func(w http.ResponseWriter, _ *http.Request) {
		hits.Add(1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(status)
		if status != http.StatusOK {
			_, _ = w.Write([]byte(`{"error":"unavailable"}`))
			return
		}
		_ = json.NewEncoder(w).Encode(users)
	})
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv.URL + "/users", &hits
}

func executeCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	cmd := cli.NewRootCmd("test")
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

type jsonPage struct {
	Users []struct {
		ID    int    `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	} `json:"users"`
	Meta struct {
		CurrentPage int  `json:"current_page"`
		PageSize    int  `json:"page_size"`
		TotalPages  int  `json:"total_pages"`
		TotalItems  int  `json:"total_items"`
		HasPrevious bool `json:"has_previous"`
		HasNext     bool `json:"has_next"`
	} `json:"meta"`
}

func decodePage(t *testing.T, out string) jsonPage {
	t.Helper()
	var page jsonPage
	require.NoError(t, json.Unmarshal([]byte(out), &page), "output: %s", out)
	return page
}

func TestList_PlainTable(t *testing.T) {
	isolateCLI(t)
	endpoint, hits := newUsersAPI(t, http.StatusOK, usersFixture(12))

	out, err := executeCLI(t, "list", "--endpoint", endpoint, "--plain")
	require.NoError(t, err)

	assert.Equal(t, int32(1), hits.Load())
	assert.Contains(t, out, "NAME")
	assert.Contains(t, out, "COMPANY")
	assert.Contains(t, out, "User 01")
	assert.Contains(t, out, "User 05")
	assert.NotContains(t, out, "User 06")
	assert.Contains(t, out, "Page 1 of 3 (12 users, 5 per page)")
}

func TestList_RootRunsList(t *testing.T) {
	isolateCLI(t)
	endpoint, _ := newUsersAPI(t, http.StatusOK, usersFixture(3))

	out, err := executeCLI(t, "--endpoint", endpoint, "--plain")
	require.NoError(t, err)
	assert.Contains(t, out, "Page 1 of 1 (3 users, 5 per page)")
}

func TestList_JSONPages(t *testing.T) {
	isolateCLI(t)
	endpoint, _ := newUsersAPI(t, http.StatusOK, usersFixture(12))

	tests := []struct {
		name      string
		args      []string
		wantFirst string
		wantCount int
		wantPage  int
		wantPages int
		wantPrev  bool
		wantNext  bool
	}{
		{
			name:      "first page",
			args:      nil,
			wantFirst: "User 01",
			wantCount: 5, wantPage: 1, wantPages: 3,
			wantNext: true,
		},
		{
			name:      "last partial page",
			args:      []string{"--page", "3"},
			wantFirst: "User 11",
			wantCount: 2, wantPage: 3, wantPages: 3,
			wantPrev: true,
		},
		{
			name:      "page beyond the end is clamped",
			args:      []string{"--page", "9"},
			wantFirst: "User 11",
			wantCount: 2, wantPage: 3, wantPages: 3,
			wantPrev: true,
		},
		{
			name:      "larger page size",
			args:      []string{"--page-size", "10", "--page", "2"},
			wantFirst: "User 11",
			wantCount: 2, wantPage: 2, wantPages: 2,
			wantPrev: true,
		},
		{
			name:      "sort by name descending",
			args:      []string{"--sort", "name:desc"},
			wantFirst: "User 12",
			wantCount: 5, wantPage: 1, wantPages: 3,
			wantNext: true,
		},
		{
			name:      "search matches email case-insensitively",
			args:      []string{"--search", "SMITH@"},
			wantFirst: "John Smith",
			wantCount: 1, wantPage: 1, wantPages: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--endpoint", endpoint, "-o", "json"}, tt.args...)
			out, err := executeCLI(t, args...)
			require.NoError(t, err)

			page := decodePage(t, out)
			require.Len(t, page.Users, tt.wantCount)
			assert.Equal(t, tt.wantFirst, page.Users[0].Name)
			assert.Equal(t, tt.wantPage, page.Meta.CurrentPage)
			assert.Equal(t, tt.wantPages, page.Meta.TotalPages)
			assert.Equal(t, tt.wantPrev, page.Meta.HasPrevious)
			assert.Equal(t, tt.wantNext, page.Meta.HasNext)
		})
	}
}

func TestList_NoMatches(t *testing.T) {
	isolateCLI(t)
	endpoint, _ := newUsersAPI(t, http.StatusOK, usersFixture(12))

	out, err := executeCLI(t, "list", "--endpoint", endpoint, "--plain", "--search", "nobody-here")
	require.NoError(t, err)
	assert.Contains(t, out, "No data found!")
	assert.Contains(t, out, "Page 1 of 1 (0 users, 5 per page)")

	out, err = executeCLI(t, "list", "--endpoint", endpoint, "-o", "json", "--search", "nobody-here")
	require.NoError(t, err)
	page := decodePage(t, out)
	assert.Empty(t, page.Users)
	assert.Equal(t, 1, page.Meta.TotalPages)
	assert.Equal(t, 0, page.Meta.TotalItems)
}

func TestList_NDJSON(t *testing.T) {
	isolateCLI(t)
	endpoint, _ := newUsersAPI(t, http.StatusOK, usersFixture(7))

	out, err := executeCLI(t, "list", "--endpoint", endpoint, "-o", "ndjson", "--page", "2")
	require.NoError(t, err)

	var lines []string
	scanner := bufio.NewScanner(strings.NewReader(out))
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	require.Len(t, lines, 3, "meta line plus two users")

	var meta map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &meta))
	assert.Equal(t, "meta", meta["type"])
	assert.InDelta(t, 2, meta["current_page"], 0)
	assert.InDelta(t, 7, meta["total_items"], 0)

	var user map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &user))
	assert.Equal(t, "User 06", user["name"])
}

func TestList_PageSizeFromConfig(t *testing.T) {
	isolateCLI(t)
	t.Setenv("USERDIR_VIEW_PAGE_SIZE", "15")
	endpoint, _ := newUsersAPI(t, http.StatusOK, usersFixture(12))

	out, err := executeCLI(t, "list", "--endpoint", endpoint, "-o", "json")
	require.NoError(t, err)
	page := decodePage(t, out)
	assert.Len(t, page.Users, 12)
	assert.Equal(t, 15, page.Meta.PageSize)
}

func TestList_EndpointFromEnvironment(t *testing.T) {
	isolateCLI(t)
	endpoint, hits := newUsersAPI(t, http.StatusOK, usersFixture(2))
	t.Setenv("USERDIR_SOURCE_ENDPOINT", endpoint)

	_, err := executeCLI(t, "list", "-o", "json")
	require.NoError(t, err)
	assert.Equal(t, int32(1), hits.Load())
}

func TestList_InvalidFlags(t *testing.T) {
	isolateCLI(t)
	endpoint, hits := newUsersAPI(t, http.StatusOK, usersFixture(3))

	tests := []struct {
		name    string
		args    []string
		wantErr string
	}{
		{name: "page size outside the enum", args: []string{"--page-size", "7"}, wantErr: "page-size must be one of 5, 10 or 15"},
		{name: "zero page", args: []string{"--page", "0"}, wantErr: "page must be >= 1"},
		{name: "unknown sort field", args: []string{"--sort", "phone"}, wantErr: "invalid sort field"},
		{name: "bad sort order", args: []string{"--sort", "name:up"}, wantErr: "sort order must be 'asc' or 'desc'"},
		{name: "unknown output format", args: []string{"-o", "xml"}, wantErr: "unsupported output format: xml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			args := append([]string{"list", "--endpoint", endpoint, "--plain"}, tt.args...)
			_, err := executeCLI(t, args...)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
	assert.Equal(t, int32(0), hits.Load(), "invalid flags must not fetch")
}

func TestList_FetchFailure(t *testing.T) {
	isolateCLI(t)
	endpoint, hits := newUsersAPI(t, http.StatusInternalServerError, nil)

	_, err := executeCLI(t, "list", "--endpoint", endpoint, "--plain")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading users")
	assert.Contains(t, err.Error(), "unexpected status 500")
	assert.Equal(t, int32(1), hits.Load(), "failed fetch is not retried")
}
