// Package models contains the entity types for the NeoTube platform simulator.
package models

import (
	"time"

	"github.com/jinzhu/copier"
)

// VideoCategory classifies a video on the home feed.
type VideoCategory string

// VideoCategory constants define the closed set of feed categories.
// CategoryAll is the sentinel that matches every video.
const (
	CategoryAll       VideoCategory = "All"
	CategoryGaming    VideoCategory = "Gaming"
	CategoryMusic     VideoCategory = "Music"
	CategoryTech      VideoCategory = "Tech"
	CategorySports    VideoCategory = "Sports"
	CategoryEducation VideoCategory = "Education"
	CategoryComedy    VideoCategory = "Comedy"
)

// Categories returns the feed categories in display order, CategoryAll first.
func Categories() []VideoCategory {
	return []VideoCategory{
		CategoryAll,
		CategoryGaming,
		CategoryMusic,
		CategoryTech,
		CategorySports,
		CategoryEducation,
		CategoryComedy,
	}
}

// User represents a platform account. Subscribers and Subscriptions hold user
// IDs with set semantics; the two are kept symmetric by the subscription
// handler (A in B.Subscribers iff B in A.Subscriptions).
type User struct {
	ID            string   `json:"id"`
	Username      string   `json:"username"`
	Email         string   `json:"email"`
	Avatar        string   `json:"avatar"`
	Banner        string   `json:"banner,omitempty"`
	Subscribers   []string `json:"subscribers"`
	Subscriptions []string `json:"subscriptions"`
	IsPartner     bool     `json:"is_partner"`
	Revenue       float64  `json:"revenue"`
}

// Clone returns a deep copy of the user, including the id sets.
func (u *User) Clone() *User {
	var out User
	_ = copier.CopyWithOption(&out, u, copier.Option{DeepCopy: true})
	return &out
}

// IsSubscribedTo reports whether the user subscribes to the given uploader.
func (u *User) IsSubscribedTo(userID string) bool {
	return containsID(u.Subscriptions, userID)
}

// VideoAnalytics is the optional per-video analytics sub-record. The
// retention curve is an ordered sequence of audience-remaining percentages
// at successive points in the video's duration.
type VideoAnalytics struct {
	RetentionCurve []float64        `json:"retention_curve"`
	ViewsByCountry map[string]int64 `json:"views_by_country"`
	TrafficSources map[string]int64 `json:"traffic_sources"`
	Demographics   map[string]int64 `json:"demographics"`
}

// Video represents an uploaded video. Views only ever grows; Likes and
// Dislikes are sets of user IDs and are not kept mutually exclusive.
type Video struct {
	ID               string          `json:"id"`
	UploaderID       string          `json:"uploader_id"`
	Title            string          `json:"title"`
	Description      string          `json:"description"`
	Thumbnail        string          `json:"thumbnail"`
	VideoURL         string          `json:"video_url"`
	Views            int64           `json:"views"`
	Likes            []string        `json:"likes"`
	Dislikes         []string        `json:"dislikes"`
	Timestamp        time.Time       `json:"timestamp"`
	Category         VideoCategory   `json:"category"`
	Duration         string          `json:"duration"`
	EstimatedRevenue *float64        `json:"estimated_revenue,omitempty"`
	Analytics        *VideoAnalytics `json:"analytics,omitempty"`
}

// NewVideo creates a freshly uploaded video: zero views, empty like and
// dislike sets, and the given creation time. The id is minted by the caller.
func NewVideo(id, uploaderID, title, description string, category VideoCategory, videoURL, thumbnail string, ts time.Time) *Video {
	return &Video{
		ID:          id,
		UploaderID:  uploaderID,
		Title:       title,
		Description: description,
		Thumbnail:   thumbnail,
		VideoURL:    videoURL,
		Views:       0,
		Likes:       []string{},
		Dislikes:    []string{},
		Timestamp:   ts,
		Category:    category,
		Duration:    "00:00",
	}
}

// Clone returns a deep copy of the video, including like/dislike sets and
// the analytics sub-record.
func (v *Video) Clone() *Video {
	var out Video
	_ = copier.CopyWithOption(&out, v, copier.Option{DeepCopy: true})
	return &out
}

// LikedBy reports whether the given user is in the like set.
func (v *Video) LikedBy(userID string) bool {
	return containsID(v.Likes, userID)
}

// DislikedBy reports whether the given user is in the dislike set.
func (v *Video) DislikedBy(userID string) bool {
	return containsID(v.Dislikes, userID)
}

// Comment represents a comment on a video. Likes is a bare count; the
// platform never tracks who liked a comment.
type Comment struct {
	ID        string    `json:"id"`
	VideoID   string    `json:"video_id"`
	UserID    string    `json:"user_id"`
	Text      string    `json:"text"`
	Timestamp time.Time `json:"timestamp"`
	Likes     int       `json:"likes"`
}

// NewComment creates a comment with zero likes.
func NewComment(id, videoID, userID, text string, ts time.Time) *Comment {
	return &Comment{
		ID:        id,
		VideoID:   videoID,
		UserID:    userID,
		Text:      text,
		Timestamp: ts,
		Likes:     0,
	}
}

func containsID(ids []string, id string) bool {
	for _, v := range ids {
		if v == id {
			return true
		}
	}
	return false
}

// ToggleID adds id to the set if absent and removes it if present,
// returning a new slice either way.
func ToggleID(ids []string, id string) []string {
	if containsID(ids, id) {
		out := make([]string, 0, len(ids))
		for _, v := range ids {
			if v != id {
				out = append(out, v)
			}
		}
		return out
	}
	out := make([]string, len(ids), len(ids)+1)
	copy(out, ids)
	return append(out, id)
}
