// Package fixtures provides the seed data the simulator starts from. The
// collections mirror a small live platform: three accounts, five videos and
// a couple of comments, with timestamps relative to process start.
package fixtures

import (
	"time"

	"github.com/neotube/neotube-go/internal/models"
)

// DefaultUserID is the account signed in at startup unless the
// configuration requires an explicit login.
const DefaultUserID = "user_1"

// Users returns the seed accounts. user_1 and user_2 are partners with a
// running revenue balance; user_3 is not monetized.
func Users() []models.User {
	return []models.User{
		{
			ID:            "user_1",
			Username:      "NeoUser",
			Email:         "user@neotube.com",
			Avatar:        "https://picsum.photos/id/64/200/200",
			Banner:        "https://picsum.photos/id/180/1200/300",
			Subscribers:   []string{},
			Subscriptions: []string{"user_2"},
			IsPartner:     true,
			Revenue:       1250.45,
		},
		{
			ID:            "user_2",
			Username:      "TechMaster",
			Email:         "tech@master.com",
			Avatar:        "https://picsum.photos/id/2/200/200",
			Banner:        "https://picsum.photos/id/20/1200/300",
			Subscribers:   []string{"user_1"},
			Subscriptions: []string{},
			IsPartner:     true,
			Revenue:       4500.00,
		},
		{
			ID:            "user_3",
			Username:      "GamerPro",
			Email:         "gamer@pro.com",
			Avatar:        "https://picsum.photos/id/3/200/200",
			Banner:        "https://picsum.photos/id/45/1200/300",
			Subscribers:   []string{},
			Subscriptions: []string{},
			IsPartner:     false,
			Revenue:       0,
		},
	}
}

// Videos returns the seed videos. Media URLs point at public sample clips so
// playback works in any consumer that resolves them.
func Videos() []models.Video {
	now := time.Now()
	return []models.Video{
		{
			ID:          "vid_1",
			UploaderID:  "user_2",
			Title:       "The Future of Technology in 2025",
			Description: "Discover the incredible innovations ahead of us. AI, quantum computing and much more!",
			Thumbnail:   "https://picsum.photos/id/1/640/360",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/BigBuckBunny.mp4",
			Views:       12543,
			Likes:       []string{"user_1", "user_3"},
			Dislikes:    []string{},
			Timestamp:   now.Add(-24 * time.Hour),
			Category:    models.CategoryTech,
			Duration:    "10:34",
			Analytics: &models.VideoAnalytics{
				RetentionCurve: []float64{100, 92, 81, 74, 66, 52, 45, 38},
				ViewsByCountry: map[string]int64{"US": 5210, "FR": 3120, "DE": 1890, "JP": 2323},
				TrafficSources: map[string]int64{"search": 6100, "suggested": 4200, "external": 2243},
				Demographics:   map[string]int64{"18-24": 3400, "25-34": 5600, "35-44": 2500, "45+": 1043},
			},
		},
		{
			ID:          "vid_2",
			UploaderID:  "user_3",
			Title:       "Exclusive Gameplay: Cyber Adventure",
			Description: "Testing the hottest new game on ultra settings.",
			Thumbnail:   "https://picsum.photos/id/96/640/360",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ElephantsDream.mp4",
			Views:       8420,
			Likes:       []string{},
			Dislikes:    []string{},
			Timestamp:   now.Add(-48 * time.Hour),
			Category:    models.CategoryGaming,
			Duration:    "24:12",
		},
		{
			ID:          "vid_3",
			UploaderID:  "user_2",
			Title:       "React 18 Tutorial for Beginners",
			Description: "Learn React from scratch with this complete guide.",
			Thumbnail:   "https://picsum.photos/id/60/640/360",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerBlazes.mp4",
			Views:       45002,
			Likes:       []string{"user_1"},
			Dislikes:    []string{},
			Timestamp:   now.Add(-7 * 24 * time.Hour),
			Category:    models.CategoryEducation,
			Duration:    "45:00",
		},
		{
			ID:          "vid_4",
			UploaderID:  "user_1",
			Title:       "Travel Vlog: Japan",
			Description: "A week in Tokyo, between tradition and modernity.",
			Thumbnail:   "https://picsum.photos/id/122/640/360",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerJoyrides.mp4",
			Views:       1200,
			Likes:       []string{},
			Dislikes:    []string{},
			Timestamp:   now.Add(-12 * time.Hour),
			Category:    models.CategoryAll,
			Duration:    "12:20",
		},
		{
			ID:          "vid_5",
			UploaderID:  "user_3",
			Title:       "Best Goals of the Season",
			Description: "An incredible football compilation.",
			Thumbnail:   "https://picsum.photos/id/160/640/360",
			VideoURL:    "https://commondatastorage.googleapis.com/gtv-videos-bucket/sample/ForBiggerEscapes.mp4",
			Views:       99000,
			Likes:       []string{"user_1", "user_2"},
			Dislikes:    []string{},
			Timestamp:   now.Add(-200 * time.Second),
			Category:    models.CategorySports,
			Duration:    "08:45",
			Analytics: &models.VideoAnalytics{
				RetentionCurve: []float64{100, 97, 95, 90, 88, 85, 80, 71},
				ViewsByCountry: map[string]int64{"UK": 31000, "FR": 28000, "ES": 22000, "BR": 18000},
				TrafficSources: map[string]int64{"suggested": 51000, "search": 30000, "external": 18000},
				Demographics:   map[string]int64{"18-24": 42000, "25-34": 33000, "35-44": 15000, "45+": 9000},
			},
		},
	}
}

// Comments returns the seed comments, most recent first.
func Comments() []models.Comment {
	now := time.Now()
	return []models.Comment{
		{
			ID:        "c_2",
			VideoID:   "vid_1",
			UserID:    "user_3",
			Text:      "The quality is insane.",
			Timestamp: now.Add(-20 * time.Second),
			Likes:     5,
		},
		{
			ID:        "c_1",
			VideoID:   "vid_1",
			UserID:    "user_1",
			Text:      "Great video! Very instructive.",
			Timestamp: now.Add(-40 * time.Second),
			Likes:     12,
		},
	}
}
