package xrel

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLatestReleasesExclusiveFilters(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL), WithToken(NewToken("t", "Bearer", 3600, "")))

	// A server-side filter and the favorites filter are mutually exclusive.
	_, err := client.LatestReleases(context.Background(), LatestOptions{Filter: "6", FavsFilter: true})
	require.ErrorIs(t, err, ErrExclusiveParams)
	assert.Zero(t, requests, "precondition failures must not reach the network")
}

func TestLatestReleasesFavsFilterNeedsToken(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	_, err := client.LatestReleases(context.Background(), LatestOptions{FavsFilter: true})
	require.ErrorIs(t, err, ErrMissingToken)
	assert.Zero(t, requests)
}

func TestReleaseInfoSelectors(t *testing.T) {
	tests := []struct {
		name     string
		opts     ReleaseInfoOptions
		wantErr  error
		wantID   string
		wantType string
	}{
		{
			name:    "neither id nor dirname",
			opts:    ReleaseInfoOptions{},
			wantErr: ErrMissingParameter,
		},
		{
			name:    "both id and dirname",
			opts:    ReleaseInfoOptions{ID: "abc", Dirname: "Example-GRP"},
			wantErr: ErrExclusiveParams,
		},
		{
			name:   "by id",
			opts:   ReleaseInfoOptions{ID: "abc"},
			wantID: "abc",
		},
		{
			name:     "by dirname",
			opts:     ReleaseInfoOptions{Dirname: "Example.Release-GRP"},
			wantID:   "Example.Release-GRP",
			wantType: "dirname",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var gotQuery map[string][]string
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				gotQuery = r.URL.Query()
				w.Write([]byte(`{"id":"abc","dirname":"Example.Release-GRP"}`))
			}))
			defer server.Close()

			client := New(WithBaseURL(server.URL))
			_, err := client.ReleaseInfo(context.Background(), tt.opts)

			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, gotQuery)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantID, gotQuery["id"][0])
			if tt.wantType != "" {
				assert.Equal(t, tt.wantType, gotQuery["id_type"][0])
			}
		})
	}
}

func TestBrowseCategoryRequiresName(t *testing.T) {
	client := New()
	_, err := client.BrowseCategory(context.Background(), "", BrowseOptions{})
	require.ErrorIs(t, err, ErrMissingParameter)
}

func TestP2pListSelectorsExclusive(t *testing.T) {
	client := New()
	_, err := client.P2pReleases(context.Background(), P2pListOptions{CategoryID: "a", GroupID: "b"})
	require.ErrorIs(t, err, ErrExclusiveParams)
}

func TestAddProofPreconditions(t *testing.T) {
	requests := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
	}))
	defer server.Close()

	image := []byte{0xff, 0xd8}

	noScope := New(WithBaseURL(server.URL), WithToken(NewToken("t", "Bearer", 3600, "")))
	_, err := noScope.AddProof(context.Background(), []string{"abc"}, image)
	require.ErrorIs(t, err, ErrMissingScope)

	withScope := New(
		WithBaseURL(server.URL),
		WithToken(NewToken("t", "Bearer", 3600, "")),
		WithOAuthApp(OAuthApp{Scopes: []string{ScopeAddProof}}),
	)
	_, err = withScope.AddProof(context.Background(), nil, image)
	require.ErrorIs(t, err, ErrMissingParameter)

	assert.Zero(t, requests)
}

func TestArchiveMonth(t *testing.T) {
	assert.Equal(t, "2025-06", ArchiveMonth(2025, 6))
	assert.Equal(t, "2024-12", ArchiveMonth(2024, 12))
}

func TestAllLatestReleases(t *testing.T) {
	pages := map[string]string{
		"1": `{"total_count":5,"pagination":{"current_page":1,"per_page":2,"total_pages":3},"list":[{"id":"a","dirname":"A"},{"id":"b","dirname":"B"}]}`,
		"2": `{"total_count":5,"pagination":{"current_page":2,"per_page":2,"total_pages":3},"list":[{"id":"c","dirname":"C"},{"id":"d","dirname":"D"}]}`,
		"3": `{"total_count":5,"pagination":{"current_page":3,"per_page":2,"total_pages":3},"list":[{"id":"e","dirname":"E"}]}`,
	}
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(pages[r.URL.Query().Get("page")]))
	}))
	defer server.Close()

	client := New(WithBaseURL(server.URL))
	all, err := client.AllLatestReleases(context.Background(), LatestOptions{PerPage: 5})
	require.NoError(t, err)

	var ids []string
	for _, rls := range all {
		ids = append(ids, rls.ID)
	}
	assert.Equal(t, []string{"a", "b", "c", "d", "e"}, ids, "pages must stay in order")
}
