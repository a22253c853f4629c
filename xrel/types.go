package xrel

import (
	"fmt"
	"strconv"
)

// Pagination bounds enforced client-side before a request is sent.
// Per-page counts are clamped silently; page numbers below 1 become 1.
const (
	MinPerPage = 5
	MaxPerPage = 100
)

// Pagination describes the cursor of a paginated response. TotalPages is
// absent or meaningless on some feeds (the latest-releases list reports a
// rolling window, not a stable total), which the upstream service documents
// as intentional.
type Pagination struct {
	CurrentPage int `json:"current_page" xml:"current_page"`
	PerPage     int `json:"per_page" xml:"per_page"`
	TotalPages  int `json:"total_pages" xml:"total_pages"`
}

// PaginatedList is the envelope every list-returning endpoint uses.
type PaginatedList[T any] struct {
	TotalCount int        `json:"total_count" xml:"total_count"`
	Pagination Pagination `json:"pagination" xml:"pagination"`
	List       []T        `json:"list" xml:"list>item"`
}

// ReleaseCommon holds the fields scene and P2P releases share.
type ReleaseCommon struct {
	ID        string      `json:"id" xml:"id"`
	Dirname   string      `json:"dirname" xml:"dirname"`
	LinkHref  string      `json:"link_href,omitempty" xml:"link_href,omitempty"`
	Time      int64       `json:"time,omitempty" xml:"time,omitempty"`
	GroupName string      `json:"group_name,omitempty" xml:"group_name,omitempty"`
	Comments  int         `json:"comments,omitempty" xml:"comments,omitempty"`
	ExtInfo   *ExtInfoRef `json:"ext_info,omitempty" xml:"ext_info,omitempty"`
}

// Release is a scene-style release.
type Release struct {
	ReleaseCommon
	NukeReason  string       `json:"nuke_reason,omitempty" xml:"nuke_reason,omitempty"`
	AudioType   string       `json:"audio_type,omitempty" xml:"audio_type,omitempty"`
	VideoType   string       `json:"video_type,omitempty" xml:"video_type,omitempty"`
	NumRatings  int          `json:"num_ratings,omitempty" xml:"num_ratings,omitempty"`
	VideoRating float64      `json:"video_rating,omitempty" xml:"video_rating,omitempty"`
	AudioRating float64      `json:"audio_rating,omitempty" xml:"audio_rating,omitempty"`
	Size        ReleaseSize  `json:"size,omitempty" xml:"size,omitempty"`
	Flags       ReleaseFlags `json:"flags,omitempty" xml:"flags,omitempty"`
	ProofURL    string       `json:"proof_url,omitempty" xml:"proof_url,omitempty"`
}

// P2pRelease is a peer-to-peer-style release.
type P2pRelease struct {
	ReleaseCommon
	Category    *P2pCategory `json:"category,omitempty" xml:"category,omitempty"`
	MainLang    string       `json:"main_lang,omitempty" xml:"main_lang,omitempty"`
	PubTime     int64        `json:"pub_time,omitempty" xml:"pub_time,omitempty"`
	SizeMB      int64        `json:"size_mb,omitempty" xml:"size_mb,omitempty"`
	NumRatings  int          `json:"num_ratings,omitempty" xml:"num_ratings,omitempty"`
	VideoRating float64      `json:"video_rating,omitempty" xml:"video_rating,omitempty"`
	AudioRating float64      `json:"audio_rating,omitempty" xml:"audio_rating,omitempty"`
}

// ReleaseSize is the size a scene release was pred with.
type ReleaseSize struct {
	Number int64  `json:"number,omitempty" xml:"number,omitempty"`
	Unit   string `json:"unit,omitempty" xml:"unit,omitempty"`
}

// ReleaseFlags carries upstream's boolean markers on a release.
type ReleaseFlags struct {
	TopRelease  bool `json:"top_rls,omitempty" xml:"top_rls,omitempty"`
	FixRelease  bool `json:"fix_rls,omitempty" xml:"fix_rls,omitempty"`
	EnglishOnly bool `json:"english,omitempty" xml:"english,omitempty"`
}

// ReleaseKind tags which of the two release categories a reference names.
type ReleaseKind string

// The two release categories the API distinguishes.
const (
	KindScene ReleaseKind = "release"
	KindP2P   ReleaseKind = "p2p_rls"
)

// ReleaseRef identifies either a scene or a P2P release at call sites that
// accept both, such as comments and favorite-list read marks.
type ReleaseRef struct {
	Kind ReleaseKind
	ID   string
}

// SceneRef references a scene release by API id.
func SceneRef(id string) ReleaseRef {
	return ReleaseRef{Kind: KindScene, ID: id}
}

// P2pRef references a P2P release by API id.
func P2pRef(id string) ReleaseRef {
	return ReleaseRef{Kind: KindP2P, ID: id}
}

func (r ReleaseRef) validate() error {
	if r.ID == "" {
		return wrapMissing("release id")
	}
	if r.Kind != KindScene && r.Kind != KindP2P {
		return wrapMissing("release kind")
	}
	return nil
}

// ExtInfoRef is the compact ExtInfo embedded in release payloads.
type ExtInfoRef struct {
	ID       string `json:"id" xml:"id"`
	Type     string `json:"type,omitempty" xml:"type,omitempty"`
	Title    string `json:"title,omitempty" xml:"title,omitempty"`
	LinkHref string `json:"link_href,omitempty" xml:"link_href,omitempty"`
}

// ExtInfo is a creative work (movie, TV show, game, ...) independent of any
// specific release of it.
type ExtInfo struct {
	ID         string   `json:"id" xml:"id"`
	Type       string   `json:"type,omitempty" xml:"type,omitempty"`
	Title      string   `json:"title,omitempty" xml:"title,omitempty"`
	LinkHref   string   `json:"link_href,omitempty" xml:"link_href,omitempty"`
	Genre      string   `json:"genre,omitempty" xml:"genre,omitempty"`
	AltTitle   string   `json:"alt_title,omitempty" xml:"alt_title,omitempty"`
	CoverURL   string   `json:"cover_url,omitempty" xml:"cover_url,omitempty"`
	Rating     float64  `json:"rating,omitempty" xml:"rating,omitempty"`
	OwnRating  int      `json:"own_rating,omitempty" xml:"own_rating,omitempty"`
	NumRatings int      `json:"num_ratings,omitempty" xml:"num_ratings,omitempty"`
	URIs       []string `json:"uris,omitempty" xml:"uris>uri,omitempty"`
	Unread     bool     `json:"unread_releases,omitempty" xml:"unread_releases,omitempty"`
}

// ExtInfoMedia is one media item (image, video, ...) attached to an ExtInfo.
type ExtInfoMedia struct {
	Type        string `json:"type" xml:"type"`
	Description string `json:"description,omitempty" xml:"description,omitempty"`
	Time        int64  `json:"time,omitempty" xml:"time,omitempty"`
	URLFull     string `json:"url_full,omitempty" xml:"url_full,omitempty"`
	URLThumb    string `json:"url_thumb,omitempty" xml:"url_thumb,omitempty"`
	YoutubeID   string `json:"youtube_id,omitempty" xml:"youtube_id,omitempty"`
	VideoURL    string `json:"video_url,omitempty" xml:"video_url,omitempty"`
}

// Favorite is a user-owned favorite list of ExtInfo entries.
type Favorite struct {
	ID                int64  `json:"id" xml:"id"`
	Name              string `json:"name" xml:"name"`
	Public            bool   `json:"public,omitempty" xml:"public,omitempty"`
	NotifyOnReleases  bool   `json:"notify,omitempty" xml:"notify,omitempty"`
	AutoRead          bool   `json:"auto_read,omitempty" xml:"auto_read,omitempty"`
	IncludeP2P        bool   `json:"include_p2p,omitempty" xml:"include_p2p,omitempty"`
	EntryCount        int    `json:"entry_count,omitempty" xml:"entry_count,omitempty"`
	UnreadReleases    int    `json:"unread_releases,omitempty" xml:"unread_releases,omitempty"`
	PasswordProtected bool   `json:"password_protected,omitempty" xml:"password_protected,omitempty"`
}

// Comment is a user comment on a release, optionally carrying a rating.
type Comment struct {
	ID       string        `json:"id" xml:"id"`
	Time     int64         `json:"time,omitempty" xml:"time,omitempty"`
	Author   CommentAuthor `json:"author" xml:"author"`
	Text     string        `json:"text,omitempty" xml:"text,omitempty"`
	LinkHref string        `json:"link_href,omitempty" xml:"link_href,omitempty"`
	Rating   *Rating       `json:"rating,omitempty" xml:"rating,omitempty"`
	Votes    CommentVotes  `json:"votes,omitempty" xml:"votes,omitempty"`
	Edits    int           `json:"edits,omitempty" xml:"edits,omitempty"`
}

// CommentAuthor identifies the user who wrote a comment.
type CommentAuthor struct {
	ID   string `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

// Rating is a pair of 1-10 video/audio marks.
type Rating struct {
	Video int `json:"video,omitempty" xml:"video,omitempty"`
	Audio int `json:"audio,omitempty" xml:"audio,omitempty"`
}

// CommentVotes counts up/down votes on a comment.
type CommentVotes struct {
	Positive int `json:"positive,omitempty" xml:"positive,omitempty"`
	Negative int `json:"negative,omitempty" xml:"negative,omitempty"`
}

// User is the account behind the current token.
type User struct {
	ID             string `json:"id" xml:"id"`
	Name           string `json:"name" xml:"name"`
	AvatarURL      string `json:"avatar_url,omitempty" xml:"avatar_url,omitempty"`
	AvatarThumbURL string `json:"avatar_thumb_url,omitempty" xml:"avatar_thumb_url,omitempty"`
}

// Category is a scene release category.
type Category struct {
	Name      string `json:"name" xml:"name"`
	ParentCat string `json:"parent_cat,omitempty" xml:"parent_cat,omitempty"`
}

// P2pCategory is a P2P release category.
type P2pCategory struct {
	ID      string `json:"id" xml:"id"`
	MetaCat string `json:"meta_cat,omitempty" xml:"meta_cat,omitempty"`
	SubCat  string `json:"sub_cat,omitempty" xml:"sub_cat,omitempty"`
}

// Filter is a server-side latest-releases filter the user configured on
// the website.
type Filter struct {
	ID   int    `json:"id" xml:"id"`
	Name string `json:"name" xml:"name"`
}

// clampPerPage bounds a requested page size to what the API accepts.
// Zero means "not requested" and is left for the server default.
func clampPerPage(perPage int) int {
	if perPage < MinPerPage {
		return MinPerPage
	}
	if perPage > MaxPerPage {
		return MaxPerPage
	}
	return perPage
}

// clampPage bounds a requested page number; pages start at 1.
func clampPage(page int) int {
	if page < 1 {
		return 1
	}
	return page
}

// setPaging writes clamped pagination parameters into a query. A zero
// perPage is omitted so the server default applies.
func setPaging(params map[string][]string, page, perPage int) {
	params["page"] = []string{strconv.Itoa(clampPage(page))}
	if perPage != 0 {
		params["per_page"] = []string{strconv.Itoa(clampPerPage(perPage))}
	}
}

func wrapMissing(name string) error {
	return fmt.Errorf("%w: %s", ErrMissingParameter, name)
}
