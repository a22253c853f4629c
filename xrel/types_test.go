package xrel

import (
	"encoding/json"
	"encoding/xml"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleRelease() Release {
	return Release{
		ReleaseCommon: ReleaseCommon{
			ID:        "f638d1cbc768",
			Dirname:   "Example.Movie.2024.1080p.BluRay.x264-GRP",
			LinkHref:  "https://www.xrel.to/release/example.html",
			Time:      1717236000,
			GroupName: "GRP",
			Comments:  3,
			ExtInfo: &ExtInfoRef{
				ID:    "aabbcc",
				Type:  "movie",
				Title: "Example Movie",
			},
		},
		AudioType:   "DTS",
		VideoType:   "x264",
		NumRatings:  12,
		VideoRating: 8.5,
		AudioRating: 7.9,
		Size:        ReleaseSize{Number: 8, Unit: "GB"},
		Flags:       ReleaseFlags{TopRelease: true},
		ProofURL:    "https://www.xrel.to/proof/example.jpg",
	}
}

func TestReleaseRoundTrip(t *testing.T) {
	original := sampleRelease()

	t.Run("json", func(t *testing.T) {
		encoded, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Release
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("xml", func(t *testing.T) {
		encoded, err := xml.Marshal(original)
		require.NoError(t, err)

		var decoded Release
		require.NoError(t, xml.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestFavoriteRoundTrip(t *testing.T) {
	original := Favorite{
		ID:               17,
		Name:             "watchlist",
		Public:           true,
		NotifyOnReleases: true,
		IncludeP2P:       true,
		EntryCount:       42,
		UnreadReleases:   5,
	}

	t.Run("json", func(t *testing.T) {
		encoded, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Favorite
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("xml", func(t *testing.T) {
		encoded, err := xml.Marshal(original)
		require.NoError(t, err)

		var decoded Favorite
		require.NoError(t, xml.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestCommentRoundTrip(t *testing.T) {
	original := Comment{
		ID:     "c123",
		Time:   1717236000,
		Author: CommentAuthor{ID: "u1", Name: "tester"},
		Text:   "solid release",
		Rating: &Rating{Video: 9, Audio: 8},
		Votes:  CommentVotes{Positive: 4, Negative: 1},
		Edits:  1,
	}

	t.Run("json", func(t *testing.T) {
		encoded, err := json.Marshal(original)
		require.NoError(t, err)

		var decoded Comment
		require.NoError(t, json.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})

	t.Run("xml", func(t *testing.T) {
		encoded, err := xml.Marshal(original)
		require.NoError(t, err)

		var decoded Comment
		require.NoError(t, xml.Unmarshal(encoded, &decoded))
		assert.Equal(t, original, decoded)
	})
}

func TestPaginatedListDecoding(t *testing.T) {
	body := []byte(`{
		"total_count": 250,
		"pagination": {"current_page": 2, "per_page": 50, "total_pages": 5},
		"list": [{"id": "a", "dirname": "A-GRP"}, {"id": "b", "dirname": "B-GRP"}]
	}`)

	var page PaginatedList[Release]
	require.NoError(t, json.Unmarshal(body, &page))

	assert.Equal(t, 250, page.TotalCount)
	assert.Equal(t, 2, page.Pagination.CurrentPage)
	assert.Equal(t, 5, page.Pagination.TotalPages)
	require.Len(t, page.List, 2)
	assert.Equal(t, "A-GRP", page.List[0].Dirname)
}

func TestClampPerPage(t *testing.T) {
	tests := []struct {
		in   int
		want int
	}{
		{1, 5},
		{3, 5},
		{5, 5},
		{50, 50},
		{100, 100},
		{101, 100},
		{100000, 100},
		{-1, 5},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, clampPerPage(tt.in), "clampPerPage(%d)", tt.in)
	}
}

func TestClampPage(t *testing.T) {
	assert.Equal(t, 1, clampPage(-5))
	assert.Equal(t, 1, clampPage(0))
	assert.Equal(t, 1, clampPage(1))
	assert.Equal(t, 7, clampPage(7))
}

func TestReleaseRefValidate(t *testing.T) {
	assert.NoError(t, SceneRef("abc").validate())
	assert.NoError(t, P2pRef("abc").validate())
	assert.Error(t, ReleaseRef{Kind: KindScene}.validate())
	assert.Error(t, ReleaseRef{Kind: "weird", ID: "abc"}.validate())
}
