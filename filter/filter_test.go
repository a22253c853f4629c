package filter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/relwatch/relwatch/xrel"
)

func testRelease(dirname, group string) xrel.Release {
	return xrel.Release{
		ReleaseCommon: xrel.ReleaseCommon{
			ID:        "id-" + dirname,
			Dirname:   dirname,
			GroupName: group,
			Time:      time.Now().Add(-48 * time.Hour).Unix(),
			ExtInfo:   &xrel.ExtInfoRef{Type: "movie", Title: "Example"},
		},
	}
}

func TestCompileRejectsInvalidExpressions(t *testing.T) {
	tests := []struct {
		name       string
		expression string
	}{
		{"empty", ""},
		{"whitespace only", "   "},
		{"unbalanced parens", "contains(Release.Dirname, \"x\""},
		{"non-boolean result", "Release.Dirname"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Compile(tt.expression)
			require.Error(t, err)

			var compErr *CompilationError
			assert.ErrorAs(t, err, &compErr)
		})
	}
}

func TestFilterMatch(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		release    xrel.Release
		want       bool
	}{
		{
			name:       "dirname contains",
			expression: `contains(Release.Dirname, "1080p")`,
			release:    testRelease("Example.Movie.2024.1080p.BluRay.x264-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "dirname contains is case-insensitive",
			expression: `contains(Release.Dirname, "bluray")`,
			release:    testRelease("Example.Movie.2024.1080p.BluRay.x264-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "group equality",
			expression: `Release.GroupName == "GRP"`,
			release:    testRelease("Example-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "negated match",
			expression: `not contains(Release.Dirname, "720p")`,
			release:    testRelease("Example.1080p-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "recent release",
			expression: `daysSince(released(Release)) < 7`,
			release:    testRelease("Example-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "ext info type helper",
			expression: `typeIs(Release, "movie")`,
			release:    testRelease("Example-GRP", "GRP"),
			want:       true,
		},
		{
			name:       "nuke check on clean release",
			expression: `isNuked(Release)`,
			release:    testRelease("Example-GRP", "GRP"),
			want:       false,
		},
		{
			name:       "combined clauses",
			expression: `contains(Release.Dirname, "1080p") and Release.GroupName == "OTHER"`,
			release:    testRelease("Example.1080p-GRP", "GRP"),
			want:       false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Match(tt.release))
		})
	}
}

func TestFilterApplyPreservesOrder(t *testing.T) {
	f, err := Compile(`contains(Release.Dirname, "1080p")`)
	require.NoError(t, err)

	releases := []xrel.Release{
		testRelease("A.1080p-GRP", "GRP"),
		testRelease("B.720p-GRP", "GRP"),
		testRelease("C.1080p-GRP", "GRP"),
	}

	matched := f.Apply(releases)
	require.Len(t, matched, 2)
	assert.Equal(t, "A.1080p-GRP", matched[0].Dirname)
	assert.Equal(t, "C.1080p-GRP", matched[1].Dirname)
}

func TestFilterExpression(t *testing.T) {
	f, err := Compile(`  isTop(Release)  `)
	require.NoError(t, err)
	assert.Equal(t, "isTop(Release)", f.Expression())
}
